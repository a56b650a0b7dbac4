package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ProfileKind selects one of the two independent ledgers every user owns.
type ProfileKind string

const (
	ProfilePJ ProfileKind = "PJ" // business
	ProfilePF ProfileKind = "PF" // personal
)

// ValidProfile reports whether s names one of the two profiles.
func ValidProfile(s string) (ProfileKind, bool) {
	switch ProfileKind(s) {
	case ProfilePJ, ProfilePF:
		return ProfileKind(s), true
	}
	return "", false
}

// SystemTransferCategoryID is the reserved id of the non-deletable transfer
// category seeded into both profiles.
const SystemTransferCategoryID = "sys-transfer-cat"

// Default provision rates applied to current-month income.
var (
	DefaultTaxRate = decimal.NewFromFloat(6.0)
	DefaultWarRate = decimal.NewFromFloat(10.0)
)

// AppState is the aggregate root for one profile. It is persisted wholesale:
// every write replaces the full tree for the profile.
type AppState struct {
	Transactions []Transaction          `json:"transactions"`
	Accounts     []Account              `json:"accounts"`
	Categories   []Category             `json:"categories"`
	Goals        []Goal                 `json:"goals"`
	Budgets      []Budget               `json:"budgets"`
	Recurring    []RecurringTransaction `json:"recurring"`
	Tags         []string               `json:"tags"`
	Rules        []DistributionRule     `json:"rules"`
	Stack        []StackItem            `json:"stack"`
	Checklist    []ChecklistItem        `json:"checklist"`
	DigitalTools []DigitalTool          `json:"digitalTools"`
	Automations  []AutomationRule       `json:"automations"`

	// Persisted but not derived from; round-trip untouched.
	LaunchEvents []json.RawMessage `json:"launchEvents"`
	CapTable     []json.RawMessage `json:"capTable"`

	// Provision rates are pointers so an explicit 0% survives the JSONB
	// round trip; only a truly absent rate is defaulted on load.
	TaxRate        *decimal.Decimal `json:"taxRate"`
	WarRate        *decimal.Decimal `json:"warRate"`
	ChecklistMonth string           `json:"checklistMonth"`
}

// RatePtr copies a rate onto the heap for the pointer-typed settings fields.
func RatePtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// DBState is the full persisted unit for one user.
type DBState struct {
	PJ AppState `json:"PJ"`
	PF AppState `json:"PF"`
}

// Profile returns the AppState selected by kind.
func (d *DBState) Profile(kind ProfileKind) *AppState {
	if kind == ProfilePF {
		return &d.PF
	}
	return &d.PJ
}

// DefaultCategories returns the starter category set for a profile, always
// ending with the reserved transfer category.
func DefaultCategories(kind ProfileKind) []Category {
	if kind == ProfilePF {
		return []Category{
			{ID: "pf1", Name: "Salário/Pró-labore", Type: Income, Sub: "renda"},
			{ID: "pf2", Name: "Aluguel/Moradia", Type: Expense, Sub: "essencial"},
			{ID: "pf3", Name: "Mercado", Type: Expense, Sub: "essencial"},
			{ID: "pf4", Name: "Lazer", Type: Expense, Sub: "estilo"},
			{ID: "pf5", Name: "Investimentos", Type: Expense, Sub: "objetivos"},
			{ID: SystemTransferCategoryID, Name: "Transferência", Type: Transfer, Sub: "none"},
		}
	}
	return []Category{
		{ID: "c1", Name: "Vendas", Type: Income, DRE: "receita_bruta"},
		{ID: "c2", Name: "Salários", Type: Expense, DRE: "despesas_op"},
		{ID: "c3", Name: "Impostos", Type: Expense, DRE: "impostos"},
		{ID: SystemTransferCategoryID, Name: "Transferência", Type: Transfer, DRE: "none"},
	}
}

// NewAppState builds the empty seeded state for a profile.
func NewAppState(kind ProfileKind) AppState {
	return AppState{
		Transactions: []Transaction{},
		Accounts:     []Account{},
		Categories:   DefaultCategories(kind),
		Goals:        []Goal{},
		Budgets:      []Budget{},
		Recurring:    []RecurringTransaction{},
		Tags:         []string{},
		Rules:        []DistributionRule{},
		Stack:        []StackItem{},
		Checklist:    []ChecklistItem{},
		DigitalTools: []DigitalTool{},
		Automations:  []AutomationRule{},
		LaunchEvents: []json.RawMessage{},
		CapTable:     []json.RawMessage{},
		TaxRate:      RatePtr(DefaultTaxRate),
		WarRate:      RatePtr(DefaultWarRate),
	}
}

// NewDBState builds the seeded pair persisted on a user's first access.
func NewDBState() DBState {
	return DBState{PJ: NewAppState(ProfilePJ), PF: NewAppState(ProfilePF)}
}

// Sanitize fills collections that arrive nil from storage so every consumer
// can range without nil checks, and restores defaults for missing scalars.
// Mirrors the tolerant read of the persisted tree: partial documents load as
// valid empty state rather than failing.
func (s *AppState) Sanitize(kind ProfileKind) {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	if len(s.Categories) == 0 {
		s.Categories = DefaultCategories(kind)
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.Budgets == nil {
		s.Budgets = []Budget{}
	}
	if s.Recurring == nil {
		s.Recurring = []RecurringTransaction{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	if s.Rules == nil {
		s.Rules = []DistributionRule{}
	}
	if s.Stack == nil {
		s.Stack = []StackItem{}
	}
	if s.Checklist == nil {
		s.Checklist = []ChecklistItem{}
	}
	if s.DigitalTools == nil {
		s.DigitalTools = []DigitalTool{}
	}
	if s.Automations == nil {
		s.Automations = []AutomationRule{}
	}
	if s.LaunchEvents == nil {
		s.LaunchEvents = []json.RawMessage{}
	}
	if s.CapTable == nil {
		s.CapTable = []json.RawMessage{}
	}
	if s.TaxRate == nil {
		s.TaxRate = RatePtr(DefaultTaxRate)
	}
	if s.WarRate == nil {
		s.WarRate = RatePtr(DefaultWarRate)
	}
}

// EffectiveTaxRate returns the tax provision rate, falling back to the
// default when the document carries none. An explicit zero is respected.
func (s *AppState) EffectiveTaxRate() decimal.Decimal {
	if s.TaxRate != nil {
		return *s.TaxRate
	}
	return DefaultTaxRate
}

// EffectiveWarRate is the war-chest counterpart of EffectiveTaxRate.
func (s *AppState) EffectiveWarRate() decimal.Decimal {
	if s.WarRate != nil {
		return *s.WarRate
	}
	return DefaultWarRate
}

// CategoryByID resolves a soft reference. A missing id returns nil, never an
// error; callers substitute a display sentinel.
func (s *AppState) CategoryByID(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// AccountByID resolves a soft reference, nil when dangling.
func (s *AppState) AccountByID(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}
