package reports_test

import (
	"testing"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthlySummary(t *testing.T) {
	state := pjState()
	state.Transactions = []domain.Transaction{
		{ID: "t1", Date: "2025-05-02", Amount: dec("700"), Type: domain.Income, CategoryID: "c1"},
		{ID: "t2", Date: "2025-05-05", Amount: dec("300"), Type: domain.Income, CategoryID: "gone"},
		{ID: "t3", Date: "2025-05-10", Amount: dec("100"), Type: domain.Expense, CategoryID: "c2"},
		{ID: "t4", Date: "2025-05-11", Amount: dec("400"), Type: domain.Expense, CategoryID: "c3"},
		{ID: "t5", Date: "2025-06-11", Amount: dec("9999"), Type: domain.Expense, CategoryID: "c3"},
	}

	s := reports.BuildMonthlySummary(state, 5, 2025)

	assert.Equal(t, 5, s.Month)
	assert.Equal(t, 2025, s.Year)
	assertDec(t, "1000", s.TotalIncome)
	assertDec(t, "500", s.TotalExpense)

	require.Len(t, s.IncomeByCat, 2)
	assert.Equal(t, "Vendas", s.IncomeByCat[0].Name)
	assertDec(t, "70", s.IncomeByCat[0].Percent)
	assert.Equal(t, domain.UncategorizedLabel, s.IncomeByCat[1].Name)
	assertDec(t, "30", s.IncomeByCat[1].Percent)

	require.Len(t, s.ExpensesByCat, 2)
	// Sorted by amount descending.
	assert.Equal(t, "Impostos", s.ExpensesByCat[0].Name)
	assertDec(t, "80", s.ExpensesByCat[0].Percent)
	assert.Equal(t, "Salários", s.ExpensesByCat[1].Name)
}

func TestBuildMonthlySummary_TieBreaksByCategoryID(t *testing.T) {
	state := pjState()
	state.Transactions = []domain.Transaction{
		{ID: "t1", Date: "2025-05-02", Amount: dec("100"), Type: domain.Expense, CategoryID: "c3"},
		{ID: "t2", Date: "2025-05-03", Amount: dec("100"), Type: domain.Expense, CategoryID: "c2"},
	}

	s := reports.BuildMonthlySummary(state, 5, 2025)

	require.Len(t, s.ExpensesByCat, 2)
	assert.Equal(t, "c2", s.ExpensesByCat[0].CategoryID)
	assert.Equal(t, "c3", s.ExpensesByCat[1].CategoryID)
}

func TestBuildMonthlySummary_Empty(t *testing.T) {
	s := reports.BuildMonthlySummary(pjState(), 5, 2025)

	assertDec(t, "0", s.TotalIncome)
	assert.Empty(t, s.IncomeByCat)
	assert.Empty(t, s.ExpensesByCat)
}
