package reports_test

import (
	"testing"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTransactionsDesc(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "old", Date: "2024-12-31"},
		{ID: "new", Date: "2025-02-01"},
		{ID: "mid-a", Date: "2025-01-15"},
		{ID: "mid-b", Date: "2025-01-15"},
	}

	sorted := reports.SortTransactionsDesc(txs)

	require.Len(t, sorted, 4)
	assert.Equal(t, "new", sorted[0].ID)
	// Stable sort keeps insertion order within the same day.
	assert.Equal(t, "mid-a", sorted[1].ID)
	assert.Equal(t, "mid-b", sorted[2].ID)
	assert.Equal(t, "old", sorted[3].ID)
	// Input untouched.
	assert.Equal(t, "old", txs[0].ID)
}

func TestResolveTransaction_DanglingRefs(t *testing.T) {
	state := pjState()
	state.Accounts = []domain.Account{{ID: "a1", Name: "Carteira", Type: domain.Wallet}}

	view := reports.ResolveTransaction(state, domain.Transaction{
		ID: "t1", CategoryID: "c1", AccountID: "a1",
	})
	assert.Equal(t, "Vendas", view.CategoryName)
	assert.Equal(t, "Carteira", view.AccountName)

	dangling := reports.ResolveTransaction(state, domain.Transaction{
		ID: "t2", CategoryID: "deleted", AccountID: "deleted",
	})
	assert.Equal(t, domain.UncategorizedLabel, dangling.CategoryName)
	assert.Equal(t, domain.RemovedAccountLabel, dangling.AccountName)
}

func TestBuildDashboard(t *testing.T) {
	state := pjState()
	state.Accounts = []domain.Account{
		{ID: "a1", Name: "Conta", Type: domain.Operational, InitialBalance: dec("500")},
	}
	state.Transactions = []domain.Transaction{
		{ID: "t1", Date: "2025-05-02", Amount: dec("2000"), Type: domain.Income, AccountID: "a1", CategoryID: "c1"},
		{ID: "t2", Date: "2025-05-10", Amount: dec("800"), Type: domain.Expense, AccountID: "a1", CategoryID: "c2"},
		// Previous month contributes to consolidated balance but not to the month KPIs.
		{ID: "t3", Date: "2025-04-10", Amount: dec("100"), Type: domain.Income, AccountID: "a1", CategoryID: "c1"},
	}

	dash := reports.BuildDashboard(state, 5, 2025)

	assertDec(t, "1800", dash.ConsolidatedBalance) // 500 + 2100 - 800
	assertDec(t, "2000", dash.MonthIncome)
	assertDec(t, "800", dash.MonthExpense)
	// Seeded default rates: 6% tax, 10% war chest.
	assertDec(t, "120", dash.TaxProvision)
	assertDec(t, "200", dash.WarChestProvision)
	require.NotNil(t, dash.RunwayMonths)
	assertDec(t, "2.25", *dash.RunwayMonths) // 1800 / 800
	require.Len(t, dash.RecentTransactions, 3)
	assert.Equal(t, "t2", dash.RecentTransactions[0].ID)
}

func TestBuildDashboard_RecentCappedAtFive(t *testing.T) {
	state := pjState()
	days := []string{"01", "02", "03", "04", "05", "06", "07"}
	for i, day := range days {
		state.Transactions = append(state.Transactions, domain.Transaction{
			ID: string(rune('a' + i)), Date: "2025-05-" + day, Amount: dec("10"), Type: domain.Income,
		})
	}

	dash := reports.BuildDashboard(state, 5, 2025)

	require.Len(t, dash.RecentTransactions, 5)
	assert.Equal(t, "g", dash.RecentTransactions[0].ID)
	assert.Equal(t, "c", dash.RecentTransactions[4].ID)
}

func TestBuildDashboard_NoExpenses(t *testing.T) {
	dash := reports.BuildDashboard(pjState(), 5, 2025)

	assert.Nil(t, dash.RunwayMonths)
	assertDec(t, "0", dash.TaxProvision)
	assert.Empty(t, dash.RecentTransactions)
}
