package dto

// Numeric fields arrive as strings and are coerced at the service boundary:
// a malformed amount becomes zero rather than a rejected request, matching
// the permissive data-entry behavior of the dashboard frontend.

// CreateTransactionRequest is the payload for a new ledger entry.
type CreateTransactionRequest struct {
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=receita despesa transfer"`
	AccountID   string `json:"accountId"`
	CategoryID  string `json:"categoryId"`
	Pending     bool   `json:"pending"`
}

// CreateAccountRequest is the payload for a new account. Limit and the two
// day fields only apply to credit cards and are dropped otherwise.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required"`
	Type           string `json:"type" binding:"required,oneof=operational goal_pot wallet credit_card"`
	InitialBalance string `json:"initialBalance"`
	Limit          string `json:"limit"`
	ClosingDay     int    `json:"closingDay" binding:"omitempty,min=1,max=31"`
	DueDay         int    `json:"dueDay" binding:"omitempty,min=1,max=31"`
}

// UpdateAccountRequest carries a full replacement for an existing account.
type UpdateAccountRequest struct {
	Name           string `json:"name" binding:"required"`
	Type           string `json:"type" binding:"required,oneof=operational goal_pot wallet credit_card"`
	InitialBalance string `json:"initialBalance"`
	Limit          string `json:"limit"`
	ClosingDay     int    `json:"closingDay" binding:"omitempty,min=1,max=31"`
	DueDay         int    `json:"dueDay" binding:"omitempty,min=1,max=31"`
}

// CreateCategoryRequest is the payload for a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=receita despesa transfer"`
	DRE  string `json:"dre"`
	Sub  string `json:"sub"`
}

// UpsertBudgetRequest sets the spending limit for a category. The service
// upserts by category id.
type UpsertBudgetRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Period     string `json:"period" binding:"required,oneof=monthly yearly"`
}

// CreateGoalRequest is the payload for a new savings goal.
type CreateGoalRequest struct {
	Name          string `json:"name" binding:"required"`
	TargetAmount  string `json:"targetAmount"`
	CurrentAmount string `json:"currentAmount"`
	Deadline      string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateGoalRequest carries a full replacement for an existing goal.
type UpdateGoalRequest struct {
	Name          string `json:"name" binding:"required"`
	TargetAmount  string `json:"targetAmount"`
	CurrentAmount string `json:"currentAmount"`
	Deadline      string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// CreateRecurringRequest is the payload for a new recurring template.
type CreateRecurringRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=receita despesa transfer"`
	AccountID   string `json:"accountId"`
	CategoryID  string `json:"categoryId"`
	Frequency   string `json:"frequency" binding:"required,oneof=monthly yearly"`
	NextDate    string `json:"nextDate" binding:"omitempty,datetime=2006-01-02"`
}

// CreateDistributionRuleRequest is the payload for a new distribution rule.
type CreateDistributionRuleRequest struct {
	Name                 string `json:"name" binding:"required"`
	Percentage           string `json:"percentage" binding:"required"`
	DestinationAccountID string `json:"destinationAccountId"`
}

// CreateStackItemRequest is the payload for a new subscription/tool cost.
type CreateStackItemRequest struct {
	Name         string `json:"name" binding:"required"`
	Cost         string `json:"cost" binding:"required"`
	BillingCycle string `json:"billingCycle" binding:"required,oneof=monthly yearly"`
	Category     string `json:"category"`
}

// CreateChecklistItemRequest is the payload for a new monthly routine item.
type CreateChecklistItemRequest struct {
	Text  string `json:"text" binding:"required"`
	Month string `json:"month" binding:"omitempty,datetime=2006-01"`
}

// CreateDigitalToolRequest is the payload for a new bookmark.
type CreateDigitalToolRequest struct {
	Name    string `json:"name" binding:"required"`
	Purpose string `json:"purpose"`
	URL     string `json:"url" binding:"omitempty,url"`
}

// CreateAutomationRequest is the payload for a new (descriptive) automation.
type CreateAutomationRequest struct {
	Trigger string `json:"trigger" binding:"required"`
	Action  string `json:"action" binding:"required"`
}

// UpdateSettingsRequest patches the profile's scalar settings. Nil fields are
// left unchanged.
type UpdateSettingsRequest struct {
	TaxRate        *string `json:"taxRate"`
	WarRate        *string `json:"warRate"`
	ChecklistMonth *string `json:"checklistMonth" binding:"omitempty,datetime=2006-01"`
}
