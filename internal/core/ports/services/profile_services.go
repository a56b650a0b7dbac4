package services

import (
	"context"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/dto"
)

// ProfileReaderSvc defines read operations over a user's profile trees.
type ProfileReaderSvc interface {
	// GetState returns both sanitized profile trees with their versions,
	// seeding and persisting the default pair on a user's first access.
	GetState(ctx context.Context, userID string) (*domain.DBState, map[domain.ProfileKind]int64, error)

	// GetProfile returns one sanitized profile tree.
	GetProfile(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.AppState, error)

	// ListTransactions returns the profile's ledger sorted newest first with
	// soft references resolved to display names.
	ListTransactions(ctx context.Context, userID string, kind domain.ProfileKind) ([]domain.TransactionView, error)
}

// LedgerWriterSvc defines mutations on the core ledger collections.
type LedgerWriterSvc interface {
	AddTransaction(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, kind domain.ProfileKind, txID string) error

	AddAccount(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, userID string, kind domain.ProfileKind, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID string, kind domain.ProfileKind, accountID string) error

	// AddCategory appends a category. DeleteCategory rejects the reserved
	// transfer category with apperrors.ErrForbidden.
	AddCategory(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID string, kind domain.ProfileKind, categoryID string) error
}

// PlanningWriterSvc defines mutations on the planning collections.
type PlanningWriterSvc interface {
	// UpsertBudget replaces the existing budget for the category when one
	// exists, otherwise appends a new one.
	UpsertBudget(ctx context.Context, userID string, kind domain.ProfileKind, req dto.UpsertBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID string, kind domain.ProfileKind, budgetID string) error

	AddGoal(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateGoalRequest) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, userID string, kind domain.ProfileKind, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID string, kind domain.ProfileKind, goalID string) error

	AddRecurring(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateRecurringRequest) (*domain.RecurringTransaction, error)
	DeleteRecurring(ctx context.Context, userID string, kind domain.ProfileKind, recurringID string) error

	// AddDistributionRule rejects a rule that would push the profile's total
	// percentage above 100 with apperrors.ErrValidation.
	AddDistributionRule(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateDistributionRuleRequest) (*domain.DistributionRule, error)
	DeleteDistributionRule(ctx context.Context, userID string, kind domain.ProfileKind, ruleID string) error
}

// WorkspaceWriterSvc defines mutations on the auxiliary collections and the
// profile's scalar settings.
type WorkspaceWriterSvc interface {
	AddStackItem(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateStackItemRequest) (*domain.StackItem, error)
	DeleteStackItem(ctx context.Context, userID string, kind domain.ProfileKind, itemID string) error

	AddChecklistItem(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateChecklistItemRequest) (*domain.ChecklistItem, error)
	ToggleChecklistItem(ctx context.Context, userID string, kind domain.ProfileKind, itemID string) (*domain.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, userID string, kind domain.ProfileKind, itemID string) error

	AddDigitalTool(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateDigitalToolRequest) (*domain.DigitalTool, error)
	DeleteDigitalTool(ctx context.Context, userID string, kind domain.ProfileKind, toolID string) error

	AddAutomation(ctx context.Context, userID string, kind domain.ProfileKind, req dto.CreateAutomationRequest) (*domain.AutomationRule, error)
	ToggleAutomation(ctx context.Context, userID string, kind domain.ProfileKind, ruleID string) (*domain.AutomationRule, error)
	DeleteAutomation(ctx context.Context, userID string, kind domain.ProfileKind, ruleID string) error

	UpdateSettings(ctx context.Context, userID string, kind domain.ProfileKind, req dto.UpdateSettingsRequest) (*domain.AppState, error)
}

// ProfileSvcFacade combines all profile-tree service interfaces.
type ProfileSvcFacade interface {
	ProfileReaderSvc
	LedgerWriterSvc
	PlanningWriterSvc
	WorkspaceWriterSvc
}
