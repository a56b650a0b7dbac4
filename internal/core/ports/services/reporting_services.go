package services

import (
	"context"
	"io"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
)

// ReportingSvcFacade defines operations for generating the derived reports.
// Month is 1-12; every report except the balance sheet, projection, stack and
// goal views is windowed to that calendar month.
type ReportingSvcFacade interface {
	// Dashboard generates the landing-page KPI report.
	Dashboard(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) (*domain.Dashboard, error)

	// DRE generates the income-statement waterfall for the month.
	DRE(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) (*domain.DRE, error)

	// ExportDRECSV writes the month's DRE as a flat CSV table.
	ExportDRECSV(ctx context.Context, userID string, kind domain.ProfileKind, month, year int, w io.Writer) error

	// BalanceSheet generates the all-time assets/liabilities snapshot.
	BalanceSheet(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.BalanceSheet, error)

	// BudgetUsage generates budget-vs-actual rows for the month.
	BudgetUsage(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) ([]domain.BudgetUsage, error)

	// Projection generates the cash-flow projection / runway / FIRE report.
	Projection(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.Projection, error)

	// CardUsage generates the month's credit-card invoices.
	CardUsage(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) ([]domain.CardUsage, error)

	// Distribution simulates the month's income split across the profile's
	// distribution rules.
	Distribution(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) (*domain.Distribution, error)

	// MonthlySummary generates the month's per-category flow breakdown.
	MonthlySummary(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) (*domain.MonthlySummary, error)

	// StackCosts generates the subscription-cost rollup.
	StackCosts(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.StackCosts, error)

	// GoalProgress generates per-goal completion ratios.
	GoalProgress(ctx context.Context, userID string, kind domain.ProfileKind) ([]domain.GoalProgress, error)
}
