package reports

import (
	"sort"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
)

const recentTransactionCount = 5

// SortTransactionsDesc returns the transactions ordered newest first. Dates
// are plain YYYY-MM-DD strings, so lexicographic order is chronological; ties
// keep insertion order.
func SortTransactionsDesc(txs []domain.Transaction) []domain.Transaction {
	sorted := append([]domain.Transaction{}, txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

// ResolveTransaction attaches display names for a transaction's soft
// references, substituting sentinels for dangling ids.
func ResolveTransaction(state *domain.AppState, tx domain.Transaction) domain.TransactionView {
	view := domain.TransactionView{
		Transaction:  tx,
		CategoryName: domain.UncategorizedLabel,
		AccountName:  domain.RemovedAccountLabel,
	}
	if cat := state.CategoryByID(tx.CategoryID); cat != nil {
		view.CategoryName = cat.Name
	}
	if acc := state.AccountByID(tx.AccountID); acc != nil {
		view.AccountName = acc.Name
	}
	return view
}

// BuildDashboard derives the landing-page KPIs: all-time consolidated
// balance, the month's income and expense totals, the tax and war-chest
// provisions over the month's income, a quick runway against the month's
// burn, and the five most recent movements.
func BuildDashboard(state *domain.AppState, month, year int) domain.Dashboard {
	dash := domain.Dashboard{
		ConsolidatedBalance: ConsolidatedBalance(state),
	}

	for _, tx := range FilterMonth(state.Transactions, month, year) {
		switch tx.Type {
		case domain.Income:
			dash.MonthIncome = dash.MonthIncome.Add(tx.Amount)
		case domain.Expense:
			dash.MonthExpense = dash.MonthExpense.Add(tx.Amount)
		}
	}

	dash.TaxProvision = dash.MonthIncome.Mul(state.EffectiveTaxRate()).Div(hundred)
	dash.WarChestProvision = dash.MonthIncome.Mul(state.EffectiveWarRate()).Div(hundred)

	if dash.MonthExpense.IsPositive() {
		runway := dash.ConsolidatedBalance.Div(dash.MonthExpense)
		dash.RunwayMonths = &runway
	}

	sorted := SortTransactionsDesc(state.Transactions)
	if len(sorted) > recentTransactionCount {
		sorted = sorted[:recentTransactionCount]
	}
	dash.RecentTransactions = make([]domain.TransactionView, 0, len(sorted))
	for _, tx := range sorted {
		dash.RecentTransactions = append(dash.RecentTransactions, ResolveTransaction(state, tx))
	}
	return dash
}
