package services

import (
	"context"
	"io"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	portssvc "github.com/FinHubBR/finhub_backend/internal/core/ports/services"
	"github.com/FinHubBR/finhub_backend/internal/core/reports"
)

// reportingService derives every report from the profile tree in memory.
// It owns no storage; the profile reader supplies the sanitized state.
type reportingService struct {
	BaseService
	profiles portssvc.ProfileReaderSvc
}

// NewReportingService creates a new reporting service.
func NewReportingService(profiles portssvc.ProfileReaderSvc) portssvc.ReportingSvcFacade {
	return &reportingService{profiles: profiles}
}

// Ensure reportingService implements the facade.
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Dashboard generates the landing-page KPI report.
func (s *reportingService) Dashboard(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) (*domain.Dashboard, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	dashboard := reports.BuildDashboard(state, month, year)
	return &dashboard, nil
}

// DRE generates the income-statement waterfall for the month.
func (s *reportingService) DRE(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) (*domain.DRE, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	dre := reports.BuildDRE(state, month, year)
	return &dre, nil
}

// ExportDRECSV writes the month's DRE as a flat CSV table.
func (s *reportingService) ExportDRECSV(ctx context.Context, userID string, kind domain.ProfileKind, month, year int, w io.Writer) error {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return err
	}
	return reports.WriteDRECSV(w, reports.BuildDRE(state, month, year))
}

// BalanceSheet generates the all-time assets/liabilities snapshot.
func (s *reportingService) BalanceSheet(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.BalanceSheet, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	sheet := reports.BuildBalanceSheet(state)
	return &sheet, nil
}

// BudgetUsage generates budget-vs-actual rows for the month.
func (s *reportingService) BudgetUsage(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) ([]domain.BudgetUsage, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	return reports.BuildBudgetUsage(state, month, year), nil
}

// Projection generates the cash-flow projection, runway and FIRE report.
func (s *reportingService) Projection(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.Projection, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	projection := reports.BuildProjection(state)
	return &projection, nil
}

// CardUsage generates the month's credit-card invoices.
func (s *reportingService) CardUsage(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) ([]domain.CardUsage, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	return reports.BuildCardUsage(state, month, year), nil
}

// Distribution simulates the month's income split across the distribution rules.
func (s *reportingService) Distribution(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) (*domain.Distribution, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	dist := reports.SimulateDistribution(state, month, year)
	return &dist, nil
}

// MonthlySummary generates the month's per-category flow breakdown.
func (s *reportingService) MonthlySummary(ctx context.Context, userID string, kind domain.ProfileKind, month, year int) (*domain.MonthlySummary, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	summary := reports.BuildMonthlySummary(state, month, year)
	return &summary, nil
}

// StackCosts generates the subscription-cost rollup.
func (s *reportingService) StackCosts(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.StackCosts, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	costs := reports.BuildStackCosts(state)
	return &costs, nil
}

// GoalProgress generates per-goal completion ratios.
func (s *reportingService) GoalProgress(ctx context.Context, userID string, kind domain.ProfileKind) ([]domain.GoalProgress, error) {
	state, err := s.profiles.GetProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	return reports.GoalProgressAll(state), nil
}
