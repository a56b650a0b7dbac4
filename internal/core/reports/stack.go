package reports

import (
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
)

// BuildStackCosts rolls subscription costs up to both billing cycles:
// yearly items contribute cost/12 to the monthly total, monthly items
// contribute cost*12 to the yearly total.
func BuildStackCosts(state *domain.AppState) domain.StackCosts {
	costs := domain.StackCosts{Items: append([]domain.StackItem{}, state.Stack...)}
	for _, item := range costs.Items {
		if item.BillingCycle == domain.Yearly {
			costs.MonthlyTotal = costs.MonthlyTotal.Add(item.Cost.Div(twelve))
			costs.YearlyTotal = costs.YearlyTotal.Add(item.Cost)
		} else {
			costs.MonthlyTotal = costs.MonthlyTotal.Add(item.Cost)
			costs.YearlyTotal = costs.YearlyTotal.Add(item.Cost.Mul(twelve))
		}
	}
	return costs
}

// GoalProgressAll computes each goal's completion ratio, clamped to [0,1].
// A zero target reads as no progress.
func GoalProgressAll(state *domain.AppState) []domain.GoalProgress {
	out := make([]domain.GoalProgress, 0, len(state.Goals))
	for _, goal := range state.Goals {
		gp := domain.GoalProgress{Goal: goal}
		if goal.TargetAmount.IsPositive() {
			ratio := goal.CurrentAmount.Div(goal.TargetAmount)
			gp.Progress = clampPercent(ratio.Mul(hundred)).Div(hundred)
		}
		out = append(out, gp)
	}
	return out
}
