package reports

import (
	"sort"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildBudgetUsage sums the month's expense transactions per budgeted
// category and grades each budget against its limit. Output is sorted by
// utilization, most stretched first.
func BuildBudgetUsage(state *domain.AppState, month, year int) []domain.BudgetUsage {
	spentByCategory := make(map[string]decimal.Decimal)
	for _, tx := range state.Transactions {
		if tx.Type != domain.Expense || !InMonth(tx.Date, month, year) {
			continue
		}
		spentByCategory[tx.CategoryID] = spentByCategory[tx.CategoryID].Add(tx.Amount)
	}

	out := make([]domain.BudgetUsage, 0, len(state.Budgets))
	for _, b := range state.Budgets {
		usage := domain.BudgetUsage{
			Budget:       b,
			CategoryName: domain.UncategorizedLabel,
			Spent:        spentByCategory[b.CategoryID],
			Status:       domain.BudgetNominal,
		}
		if cat := state.CategoryByID(b.CategoryID); cat != nil {
			usage.CategoryName = cat.Name
		}
		if b.Amount.IsPositive() {
			usage.PercentUsed = usage.Spent.Div(b.Amount).Mul(hundred)
		}
		switch {
		case usage.PercentUsed.GreaterThan(hundred):
			usage.Status = domain.BudgetOver
			usage.Overflow = usage.Spent.Sub(b.Amount)
		case usage.PercentUsed.GreaterThan(decimal.NewFromInt(80)):
			usage.Status = domain.BudgetWarning
		case usage.PercentUsed.GreaterThan(decimal.NewFromInt(50)):
			usage.Status = domain.BudgetCaution
		}
		out = append(out, usage)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PercentUsed.GreaterThan(out[j].PercentUsed)
	})
	return out
}
