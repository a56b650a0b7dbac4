package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of a ledger entry.
type TransactionType string

const (
	Income   TransactionType = "receita"
	Expense  TransactionType = "despesa"
	Transfer TransactionType = "transfer"
)

// AccountType defines what kind of account a record represents.
type AccountType string

const (
	Operational AccountType = "operational"
	GoalPot     AccountType = "goal_pot"
	Wallet      AccountType = "wallet"
	CreditCard  AccountType = "credit_card"
)

// Period is the recurrence cycle used by budgets, recurring templates and
// stack items.
type Period string

const (
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Transaction is a single dated ledger entry. The date is stored as a plain
// YYYY-MM-DD string; it is never converted through time.Time when windowing,
// so a client's calendar day is preserved regardless of server timezone.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	AccountID   string          `json:"accountId"`
	CategoryID  string          `json:"categoryId"`
	Pending     bool            `json:"pending,omitempty"`
}

// Account is a money container. Limit, ClosingDay and DueDay are meaningful
// only for credit_card accounts.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Limit          decimal.Decimal `json:"limit,omitempty"`
	ClosingDay     int             `json:"closingDay,omitempty"`
	DueDay         int             `json:"dueDay,omitempty"`
}

// Category labels transactions. DRE carries the income-statement bucket tag
// for the business profile; Sub carries the 50/30/20 bucket for the personal
// profile. Both are free strings validated only by the classification tables.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
	DRE  string          `json:"dre,omitempty"`
	Sub  string          `json:"sub,omitempty"`
}

// Goal is a savings target (pot). Its CurrentAmount always counts as an asset.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      string          `json:"deadline,omitempty"`
}

// Budget is a spending limit for one category. The mutation layer upserts by
// CategoryID, so at most one budget per category is expected.
type Budget struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Period     Period          `json:"period"`
}

// RecurringTransaction is a template only. Nothing materializes it into the
// ledger; NextDate is informational.
type RecurringTransaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	AccountID   string          `json:"accountId"`
	CategoryID  string          `json:"categoryId"`
	Frequency   Period          `json:"frequency"`
	NextDate    string          `json:"nextDate"`
}

// DistributionRule routes a percentage of monthly income to an account.
// The collection invariant Σpercentage <= 100 is enforced on insert.
type DistributionRule struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Percentage           decimal.Decimal `json:"percentage"`
	DestinationAccountID string          `json:"destinationAccountId"`
}

// StackItem is a subscription or tool cost line.
type StackItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
	BillingCycle Period          `json:"billingCycle"`
	Category     string          `json:"category"`
}

// ChecklistItem belongs to a month routine identified by a YYYY-MM key.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Month     string `json:"month"`
}

// AutomationRule is descriptive only; no engine evaluates the trigger.
type AutomationRule struct {
	ID      string `json:"id"`
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
	Active  bool   `json:"active"`
}

// DigitalTool is a bookmark record.
type DigitalTool struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	URL     string `json:"url,omitempty"`
}
