package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FinHubBR/finhub_backend/internal/apperrors"
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/ports/repositories"
	portssvc "github.com/FinHubBR/finhub_backend/internal/core/ports/services"
	"github.com/FinHubBR/finhub_backend/internal/core/reports"
	"github.com/FinHubBR/finhub_backend/internal/dto"
	"github.com/FinHubBR/finhub_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// saveRetries bounds how many times a mutation is reapplied after losing a
// compare-and-swap race before the conflict is surfaced to the caller.
const saveRetries = 3

var hundred = decimal.NewFromInt(100)

// ProfileService implements the profile-tree read and mutation operations on
// top of the versioned state repository. Every mutation loads the tree,
// applies the change in memory and writes the whole tree back.
type ProfileService struct {
	BaseService
	stateRepo repositories.ProfileStateRepositoryFacade
}

// NewProfileService creates a new profile service.
func NewProfileService(stateRepo repositories.ProfileStateRepositoryFacade) *ProfileService {
	return &ProfileService{stateRepo: stateRepo}
}

// Ensure ProfileService implements the facade.
var _ portssvc.ProfileSvcFacade = (*ProfileService)(nil)

// loadProfile fetches one sanitized profile tree, seeding the default pair on
// a user's first access.
func (s *ProfileService) loadProfile(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.AppState, int64, error) {
	state, version, err := s.stateRepo.LoadProfile(ctx, userID, kind)
	if err == nil {
		state.Sanitize(kind)
		return state, version, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, 0, fmt.Errorf("failed to load profile %s: %w", kind, err)
	}

	seeded := domain.NewAppState(kind)
	version, err = s.stateRepo.SaveProfile(ctx, userID, kind, seeded, 0)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaleWrite) {
			// Another request seeded first; read theirs.
			state, version, err = s.stateRepo.LoadProfile(ctx, userID, kind)
			if err != nil {
				return nil, 0, fmt.Errorf("failed to reload seeded profile %s: %w", kind, err)
			}
			state.Sanitize(kind)
			return state, version, nil
		}
		return nil, 0, fmt.Errorf("failed to seed profile %s: %w", kind, err)
	}
	s.LogInfo(ctx, "Seeded default profile tree", "profile", string(kind))
	return &seeded, version, nil
}

// mutate runs fn against a freshly loaded tree and persists the result,
// reapplying fn on a fresh copy when the save loses a concurrent-write race.
func (s *ProfileService) mutate(ctx context.Context, userID string, kind domain.ProfileKind, fn func(*domain.AppState) error) (*domain.AppState, error) {
	var lastErr error
	for attempt := 0; attempt < saveRetries; attempt++ {
		state, version, err := s.loadProfile(ctx, userID, kind)
		if err != nil {
			return nil, err
		}
		if err := fn(state); err != nil {
			return nil, err
		}
		if _, err := s.stateRepo.SaveProfile(ctx, userID, kind, *state, version); err != nil {
			if errors.Is(err, apperrors.ErrStaleWrite) {
				lastErr = err
				continue
			}
			s.LogError(ctx, err, "Failed to save profile tree", "profile", string(kind))
			return nil, fmt.Errorf("failed to save profile %s: %w", kind, err)
		}
		return state, nil
	}
	return nil, lastErr
}

// GetState returns both sanitized profile trees with their versions, seeding
// the default pair on first access.
func (s *ProfileService) GetState(ctx context.Context, userID string) (*domain.DBState, map[domain.ProfileKind]int64, error) {
	state, versions, err := s.stateRepo.LoadState(ctx, userID)
	if err == nil {
		state.PJ.Sanitize(domain.ProfilePJ)
		state.PF.Sanitize(domain.ProfilePF)
		// A partially seeded user gets the missing profile created here.
		if _, ok := versions[domain.ProfilePJ]; !ok {
			if _, v, serr := s.loadProfile(ctx, userID, domain.ProfilePJ); serr == nil {
				versions[domain.ProfilePJ] = v
			}
		}
		if _, ok := versions[domain.ProfilePF]; !ok {
			if _, v, serr := s.loadProfile(ctx, userID, domain.ProfilePF); serr == nil {
				versions[domain.ProfilePF] = v
			}
		}
		return state, versions, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}

	pj, pjVersion, err := s.loadProfile(ctx, userID, domain.ProfilePJ)
	if err != nil {
		return nil, nil, err
	}
	pf, pfVersion, err := s.loadProfile(ctx, userID, domain.ProfilePF)
	if err != nil {
		return nil, nil, err
	}
	return &domain.DBState{PJ: *pj, PF: *pf}, map[domain.ProfileKind]int64{
		domain.ProfilePJ: pjVersion,
		domain.ProfilePF: pfVersion,
	}, nil
}

// GetProfile returns one sanitized profile tree.
func (s *ProfileService) GetProfile(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.AppState, error) {
	state, _, err := s.loadProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// ListTransactions returns the profile's ledger sorted newest first with soft
// references resolved to display names.
func (s *ProfileService) ListTransactions(ctx context.Context, userID string, kind domain.ProfileKind) ([]domain.TransactionView, error) {
	state, _, err := s.loadProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	sorted := reports.SortTransactionsDesc(state.Transactions)
	views := make([]domain.TransactionView, 0, len(sorted))
	for i := range sorted {
		views = append(views, reports.ResolveTransaction(state, sorted[i]))
	}
	return views, nil
}

// AddTransaction appends a ledger entry, minting its id.
func (s *ProfileService) AddTransaction(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	tx := domain.Transaction{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Description: req.Description,
		Amount:      utils.ParseAmount(req.Amount),
		Type:        domain.TransactionType(req.Type),
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Pending:     req.Pending,
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		state.Transactions = append(state.Transactions, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transaction added", "transaction_id", tx.ID, "profile", string(kind))
	return &tx, nil
}

// DeleteTransaction removes a ledger entry by id.
func (s *ProfileService) DeleteTransaction(ctx context.Context, userID string, kind domain.ProfileKind, txID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Transactions {
			if state.Transactions[i].ID == txID {
				state.Transactions = append(state.Transactions[:i], state.Transactions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("transaction %s: %w", txID, apperrors.ErrNotFound)
	})
	return err
}

func accountFromRequest(id, name, accType, initialBalance, limit string, closingDay, dueDay int) domain.Account {
	acc := domain.Account{
		ID:             id,
		Name:           name,
		Type:           domain.AccountType(accType),
		InitialBalance: utils.ParseAmount(initialBalance),
	}
	// Card fields are meaningless on other account types and are dropped.
	if acc.Type == domain.CreditCard {
		acc.Limit = utils.ParseAmount(limit)
		acc.ClosingDay = closingDay
		acc.DueDay = dueDay
	}
	return acc
}

// AddAccount appends a new account, minting its id.
func (s *ProfileService) AddAccount(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateAccountRequest) (*domain.Account, error) {
	acc := accountFromRequest(uuid.NewString(), req.Name, req.Type, req.InitialBalance, req.Limit, req.ClosingDay, req.DueDay)
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		state.Accounts = append(state.Accounts, acc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// UpdateAccount replaces an existing account's fields, keeping its id.
func (s *ProfileService) UpdateAccount(ctx context.Context, userID string, kind domain.ProfileKind, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	updated := accountFromRequest(accountID, req.Name, req.Type, req.InitialBalance, req.Limit, req.ClosingDay, req.DueDay)
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Accounts {
			if state.Accounts[i].ID == accountID {
				state.Accounts[i] = updated
				return nil
			}
		}
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAccount removes an account. Transactions keep their accountId soft
// reference; readers resolve it to a removed-account placeholder.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string, kind domain.ProfileKind, accountID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Accounts {
			if state.Accounts[i].ID == accountID {
				state.Accounts = append(state.Accounts[:i], state.Accounts[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	})
	return err
}

// AddCategory appends a category, minting its id.
func (s *ProfileService) AddCategory(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateCategoryRequest) (*domain.Category, error) {
	cat := domain.Category{
		ID:   uuid.NewString(),
		Name: req.Name,
		Type: domain.TransactionType(req.Type),
		DRE:  req.DRE,
		Sub:  req.Sub,
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		state.Categories = append(state.Categories, cat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes a category. The reserved transfer category cannot be
// deleted. Transactions keep their categoryId soft reference.
func (s *ProfileService) DeleteCategory(ctx context.Context, userID string, kind domain.ProfileKind, categoryID string) error {
	if categoryID == domain.SystemTransferCategoryID {
		return fmt.Errorf("category %s is reserved: %w", categoryID, apperrors.ErrForbidden)
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Categories {
			if state.Categories[i].ID == categoryID {
				state.Categories = append(state.Categories[:i], state.Categories[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	})
	return err
}

// UpsertBudget replaces the budget for the category when one exists,
// otherwise appends a new one.
func (s *ProfileService) UpsertBudget(ctx context.Context, userID string, kind domain.ProfileKind, req dto.UpsertBudgetRequest) (*domain.Budget, error) {
	budget := domain.Budget{
		ID:         uuid.NewString(),
		CategoryID: req.CategoryID,
		Amount:     utils.ParseAmount(req.Amount),
		Period:     domain.Period(req.Period),
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Budgets {
			if state.Budgets[i].CategoryID == req.CategoryID {
				budget.ID = state.Budgets[i].ID
				state.Budgets[i] = budget
				return nil
			}
		}
		state.Budgets = append(state.Budgets, budget)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// DeleteBudget removes a budget by id.
func (s *ProfileService) DeleteBudget(ctx context.Context, userID string, kind domain.ProfileKind, budgetID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Budgets {
			if state.Budgets[i].ID == budgetID {
				state.Budgets = append(state.Budgets[:i], state.Budgets[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("budget %s: %w", budgetID, apperrors.ErrNotFound)
	})
	return err
}

// AddGoal appends a savings goal, minting its id.
func (s *ProfileService) AddGoal(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateGoalRequest) (*domain.Goal, error) {
	goal := domain.Goal{
		ID:            uuid.NewString(),
		Name:          req.Name,
		TargetAmount:  utils.ParseAmount(req.TargetAmount),
		CurrentAmount: utils.ParseAmount(req.CurrentAmount),
		Deadline:      req.Deadline,
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		state.Goals = append(state.Goals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal replaces an existing goal's fields, keeping its id.
func (s *ProfileService) UpdateGoal(ctx context.Context, userID string, kind domain.ProfileKind, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	updated := domain.Goal{
		ID:            goalID,
		Name:          req.Name,
		TargetAmount:  utils.ParseAmount(req.TargetAmount),
		CurrentAmount: utils.ParseAmount(req.CurrentAmount),
		Deadline:      req.Deadline,
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Goals {
			if state.Goals[i].ID == goalID {
				state.Goals[i] = updated
				return nil
			}
		}
		return fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteGoal removes a goal by id.
func (s *ProfileService) DeleteGoal(ctx context.Context, userID string, kind domain.ProfileKind, goalID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Goals {
			if state.Goals[i].ID == goalID {
				state.Goals = append(state.Goals[:i], state.Goals[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	})
	return err
}

// AddRecurring appends a recurring template, minting its id.
func (s *ProfileService) AddRecurring(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateRecurringRequest) (*domain.RecurringTransaction, error) {
	rec := domain.RecurringTransaction{
		ID:          uuid.NewString(),
		Description: req.Description,
		Amount:      utils.ParseAmount(req.Amount),
		Type:        domain.TransactionType(req.Type),
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Frequency:   domain.Period(req.Frequency),
		NextDate:    req.NextDate,
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		state.Recurring = append(state.Recurring, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteRecurring removes a recurring template by id.
func (s *ProfileService) DeleteRecurring(ctx context.Context, userID string, kind domain.ProfileKind, recurringID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Recurring {
			if state.Recurring[i].ID == recurringID {
				state.Recurring = append(state.Recurring[:i], state.Recurring[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("recurring %s: %w", recurringID, apperrors.ErrNotFound)
	})
	return err
}

// AddDistributionRule appends a rule after checking that its percentage is
// positive and the profile's total allocated percentage stays at or below 100.
func (s *ProfileService) AddDistributionRule(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateDistributionRuleRequest) (*domain.DistributionRule, error) {
	rule := domain.DistributionRule{
		ID:                   uuid.NewString(),
		Name:                 req.Name,
		Percentage:           utils.ParseAmount(req.Percentage),
		DestinationAccountID: req.DestinationAccountID,
	}
	if !rule.Percentage.IsPositive() {
		return nil, fmt.Errorf("percentage must be greater than zero: %w", apperrors.ErrValidation)
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		total := rule.Percentage
		for i := range state.Rules {
			total = total.Add(state.Rules[i].Percentage)
		}
		if total.GreaterThan(hundred) {
			return fmt.Errorf("distribution rules would allocate %s%%: %w", total.String(), apperrors.ErrValidation)
		}
		state.Rules = append(state.Rules, rule)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// DeleteDistributionRule removes a rule by id.
func (s *ProfileService) DeleteDistributionRule(ctx context.Context, userID string, kind domain.ProfileKind, ruleID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Rules {
			if state.Rules[i].ID == ruleID {
				state.Rules = append(state.Rules[:i], state.Rules[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("distribution rule %s: %w", ruleID, apperrors.ErrNotFound)
	})
	return err
}

// AddStackItem appends a subscription cost line, minting its id.
func (s *ProfileService) AddStackItem(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateStackItemRequest) (*domain.StackItem, error) {
	item := domain.StackItem{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Cost:         utils.ParseAmount(req.Cost),
		BillingCycle: domain.Period(req.BillingCycle),
		Category:     req.Category,
	}
	if item.Category == "" {
		item.Category = "Geral"
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		state.Stack = append(state.Stack, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteStackItem removes a stack item by id.
func (s *ProfileService) DeleteStackItem(ctx context.Context, userID string, kind domain.ProfileKind, itemID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Stack {
			if state.Stack[i].ID == itemID {
				state.Stack = append(state.Stack[:i], state.Stack[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("stack item %s: %w", itemID, apperrors.ErrNotFound)
	})
	return err
}

// AddChecklistItem appends a routine item for the given month, defaulting to
// the profile's current checklist month.
func (s *ProfileService) AddChecklistItem(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateChecklistItemRequest) (*domain.ChecklistItem, error) {
	item := domain.ChecklistItem{
		ID:    uuid.NewString(),
		Text:  req.Text,
		Month: req.Month,
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		if item.Month == "" {
			item.Month = state.ChecklistMonth
		}
		state.Checklist = append(state.Checklist, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ToggleChecklistItem flips an item's completed flag.
func (s *ProfileService) ToggleChecklistItem(ctx context.Context, userID string, kind domain.ProfileKind, itemID string) (*domain.ChecklistItem, error) {
	var toggled domain.ChecklistItem
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Checklist {
			if state.Checklist[i].ID == itemID {
				state.Checklist[i].Completed = !state.Checklist[i].Completed
				toggled = state.Checklist[i]
				return nil
			}
		}
		return fmt.Errorf("checklist item %s: %w", itemID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &toggled, nil
}

// DeleteChecklistItem removes a routine item by id.
func (s *ProfileService) DeleteChecklistItem(ctx context.Context, userID string, kind domain.ProfileKind, itemID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Checklist {
			if state.Checklist[i].ID == itemID {
				state.Checklist = append(state.Checklist[:i], state.Checklist[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("checklist item %s: %w", itemID, apperrors.ErrNotFound)
	})
	return err
}

// AddDigitalTool appends a bookmark, minting its id.
func (s *ProfileService) AddDigitalTool(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateDigitalToolRequest) (*domain.DigitalTool, error) {
	tool := domain.DigitalTool{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Purpose: req.Purpose,
		URL:     req.URL,
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		state.DigitalTools = append(state.DigitalTools, tool)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// DeleteDigitalTool removes a bookmark by id.
func (s *ProfileService) DeleteDigitalTool(ctx context.Context, userID string, kind domain.ProfileKind, toolID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.DigitalTools {
			if state.DigitalTools[i].ID == toolID {
				state.DigitalTools = append(state.DigitalTools[:i], state.DigitalTools[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("digital tool %s: %w", toolID, apperrors.ErrNotFound)
	})
	return err
}

// AddAutomation appends a descriptive automation rule, active by default.
func (s *ProfileService) AddAutomation(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateAutomationRequest) (*domain.AutomationRule, error) {
	rule := domain.AutomationRule{
		ID:      uuid.NewString(),
		Trigger: req.Trigger,
		Action:  req.Action,
		Active:  true,
	}
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		state.Automations = append(state.Automations, rule)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// ToggleAutomation flips a rule's active flag.
func (s *ProfileService) ToggleAutomation(ctx context.Context, userID string, kind domain.ProfileKind, ruleID string) (*domain.AutomationRule, error) {
	var toggled domain.AutomationRule
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Automations {
			if state.Automations[i].ID == ruleID {
				state.Automations[i].Active = !state.Automations[i].Active
				toggled = state.Automations[i]
				return nil
			}
		}
		return fmt.Errorf("automation %s: %w", ruleID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &toggled, nil
}

// DeleteAutomation removes an automation rule by id.
func (s *ProfileService) DeleteAutomation(ctx context.Context, userID string, kind domain.ProfileKind, ruleID string) error {
	_, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		for i := range state.Automations {
			if state.Automations[i].ID == ruleID {
				state.Automations = append(state.Automations[:i], state.Automations[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("automation %s: %w", ruleID, apperrors.ErrNotFound)
	})
	return err
}

// UpdateSettings patches the profile's scalar settings. Nil request fields are
// left unchanged.
func (s *ProfileService) UpdateSettings(ctx context.Context, userID string, kind domain.ProfileKind, req dto.UpdateSettingsRequest) (*domain.AppState, error) {
	updated, err := s.mutate(ctx, userID, kind, func(state *domain.AppState) error {
		if req.TaxRate != nil {
			state.TaxRate = domain.RatePtr(utils.ParseAmount(*req.TaxRate))
		}
		if req.WarRate != nil {
			state.WarRate = domain.RatePtr(utils.ParseAmount(*req.WarRate))
		}
		if req.ChecklistMonth != nil {
			state.ChecklistMonth = *req.ChecklistMonth
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
