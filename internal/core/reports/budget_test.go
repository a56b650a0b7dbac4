package reports_test

import (
	"testing"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBudgetUsage_StatusBuckets(t *testing.T) {
	state := pjState()
	state.Categories = []domain.Category{
		{ID: "food", Name: "Alimentação", Type: domain.Expense},
		{ID: "rent", Name: "Aluguel", Type: domain.Expense},
		{ID: "fun", Name: "Lazer", Type: domain.Expense},
		{ID: "misc", Name: "Diversos", Type: domain.Expense},
	}
	state.Budgets = []domain.Budget{
		{ID: "b1", CategoryID: "food", Amount: dec("300"), Period: domain.Monthly},
		{ID: "b2", CategoryID: "rent", Amount: dec("1000"), Period: domain.Monthly},
		{ID: "b3", CategoryID: "fun", Amount: dec("200"), Period: domain.Monthly},
		{ID: "b4", CategoryID: "misc", Amount: dec("500"), Period: domain.Monthly},
	}
	tx := func(id, cat, amount string) domain.Transaction {
		return domain.Transaction{ID: id, Date: "2025-04-15", Amount: dec(amount), Type: domain.Expense, CategoryID: cat}
	}
	state.Transactions = []domain.Transaction{
		tx("t1", "food", "350"), // 116.67% over
		tx("t2", "rent", "900"), // 90% warning
		tx("t3", "fun", "120"),  // 60% caution
		tx("t4", "misc", "100"), // 20% nominal
		// Income on a budgeted category never counts as spend.
		{ID: "t5", Date: "2025-04-16", Amount: dec("500"), Type: domain.Income, CategoryID: "misc"},
		// Previous month, ignored.
		{ID: "t6", Date: "2025-03-15", Amount: dec("9999"), Type: domain.Expense, CategoryID: "misc"},
	}

	usage := reports.BuildBudgetUsage(state, 4, 2025)

	require.Len(t, usage, 4)
	// Sorted by utilization descending.
	assert.Equal(t, "b1", usage[0].ID)
	assert.Equal(t, domain.BudgetOver, usage[0].Status)
	assertDec(t, "50", usage[0].Overflow)
	assert.Equal(t, "Alimentação", usage[0].CategoryName)

	assert.Equal(t, "b2", usage[1].ID)
	assert.Equal(t, domain.BudgetWarning, usage[1].Status)
	assertDec(t, "0", usage[1].Overflow)

	assert.Equal(t, "b3", usage[2].ID)
	assert.Equal(t, domain.BudgetCaution, usage[2].Status)

	assert.Equal(t, "b4", usage[3].ID)
	assert.Equal(t, domain.BudgetNominal, usage[3].Status)
	assertDec(t, "20", usage[3].PercentUsed)
}

func TestBuildBudgetUsage_BoundariesAndFallbacks(t *testing.T) {
	state := pjState()
	state.Budgets = []domain.Budget{
		{ID: "b1", CategoryID: "gone", Amount: dec("100"), Period: domain.Monthly},
		{ID: "b2", CategoryID: "zero", Amount: dec("0"), Period: domain.Monthly},
	}
	state.Transactions = []domain.Transaction{
		{ID: "t1", Date: "2025-04-10", Amount: dec("100"), Type: domain.Expense, CategoryID: "gone"},
		{ID: "t2", Date: "2025-04-11", Amount: dec("50"), Type: domain.Expense, CategoryID: "zero"},
	}

	usage := reports.BuildBudgetUsage(state, 4, 2025)

	require.Len(t, usage, 2)
	// Exactly 100% is warning, not over.
	assert.Equal(t, "b1", usage[0].ID)
	assert.Equal(t, domain.BudgetWarning, usage[0].Status)
	assert.Equal(t, domain.UncategorizedLabel, usage[0].CategoryName)
	// Zero limit never divides; spend reads as 0% nominal.
	assert.Equal(t, "b2", usage[1].ID)
	assertDec(t, "0", usage[1].PercentUsed)
	assert.Equal(t, domain.BudgetNominal, usage[1].Status)
}
