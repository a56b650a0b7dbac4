package reports

import (
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectionHorizonMonths is the reference projection horizon.
const ProjectionHorizonMonths = 6

var (
	twelve     = decimal.NewFromInt(12)
	twentyFive = decimal.NewFromInt(25)
)

// BuildProjection derives average monthly flows over every month that has at
// least one transaction, then projects the consolidated balance six months
// out and computes runway and the FIRE target. The denominator is never
// below one, and zero average expense yields a nil runway rather than an
// infinity.
func BuildProjection(state *domain.AppState) domain.Projection {
	p := domain.Projection{
		CurrentBalance: ConsolidatedBalance(state),
		HorizonMonths:  ProjectionHorizonMonths,
		MonthsObserved: 1,
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	months := make(map[[2]int]struct{})
	for _, tx := range state.Transactions {
		switch tx.Type {
		case domain.Income:
			totalIncome = totalIncome.Add(tx.Amount)
		case domain.Expense:
			totalExpense = totalExpense.Add(tx.Amount)
		}
		if y, m, ok := ParseYearMonth(tx.Date); ok {
			months[[2]int{y, m}] = struct{}{}
		}
	}
	if len(months) > p.MonthsObserved {
		p.MonthsObserved = len(months)
	}

	monthCount := decimal.NewFromInt(int64(p.MonthsObserved))
	p.AvgMonthlyIncome = totalIncome.Div(monthCount)
	p.AvgMonthlyExpense = totalExpense.Div(monthCount)

	horizon := decimal.NewFromInt(ProjectionHorizonMonths)
	p.ProjectedBalance = p.CurrentBalance.Add(p.AvgMonthlyIncome.Sub(p.AvgMonthlyExpense).Mul(horizon))

	if p.AvgMonthlyExpense.IsPositive() {
		runway := p.CurrentBalance.Div(p.AvgMonthlyExpense)
		p.RunwayMonths = &runway
	}

	// Rule of 25: a year of average expenses times twenty-five.
	p.FireNumber = p.AvgMonthlyExpense.Mul(twelve).Mul(twentyFive)
	if p.FireNumber.IsPositive() {
		p.FireProgressRaw = p.CurrentBalance.Div(p.FireNumber).Mul(hundred)
	}
	p.FireProgress = clampPercent(p.FireProgressRaw)
	return p
}

// clampPercent bounds a percentage to [0, 100] for display.
func clampPercent(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}
