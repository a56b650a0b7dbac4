package reports

import (
	"sort"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildMonthlySummary groups one month's income and expenses by category,
// each list carrying its share of the column total and sorted by amount
// descending.
func BuildMonthlySummary(state *domain.AppState, month, year int) domain.MonthlySummary {
	s := domain.MonthlySummary{Month: month, Year: year}

	incomeByCat := make(map[string]decimal.Decimal)
	expenseByCat := make(map[string]decimal.Decimal)
	for _, tx := range state.Transactions {
		if !InMonth(tx.Date, month, year) {
			continue
		}
		switch tx.Type {
		case domain.Income:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			incomeByCat[tx.CategoryID] = incomeByCat[tx.CategoryID].Add(tx.Amount)
		case domain.Expense:
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
			expenseByCat[tx.CategoryID] = expenseByCat[tx.CategoryID].Add(tx.Amount)
		}
	}

	s.IncomeByCat = categoryBreakdown(state, incomeByCat, s.TotalIncome)
	s.ExpensesByCat = categoryBreakdown(state, expenseByCat, s.TotalExpense)
	return s
}

func categoryBreakdown(state *domain.AppState, byCat map[string]decimal.Decimal, total decimal.Decimal) []domain.CategoryAmount {
	out := make([]domain.CategoryAmount, 0, len(byCat))
	for id, amount := range byCat {
		item := domain.CategoryAmount{
			CategoryID: id,
			Name:       domain.UncategorizedLabel,
			Amount:     amount,
		}
		if cat := state.CategoryByID(id); cat != nil {
			item.Name = cat.Name
		}
		if total.IsPositive() {
			item.Percent = amount.Div(total).Mul(hundred)
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}
