package reports_test

import (
	"testing"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProjection(t *testing.T) {
	state := pjState()
	state.Accounts = []domain.Account{
		{ID: "a1", Name: "Conta", Type: domain.Operational, InitialBalance: dec("10000")},
	}
	state.Transactions = []domain.Transaction{
		{ID: "t1", Date: "2025-01-05", Amount: dec("3000"), Type: domain.Income, AccountID: "a1"},
		{ID: "t2", Date: "2025-01-20", Amount: dec("1000"), Type: domain.Expense, AccountID: "a1"},
		{ID: "t3", Date: "2025-02-05", Amount: dec("3000"), Type: domain.Income, AccountID: "a1"},
		{ID: "t4", Date: "2025-02-20", Amount: dec("3000"), Type: domain.Expense, AccountID: "a1"},
	}

	p := reports.BuildProjection(state)

	assert.Equal(t, 2, p.MonthsObserved)
	assertDec(t, "12000", p.CurrentBalance) // 10000 + 6000 - 4000
	assertDec(t, "3000", p.AvgMonthlyIncome)
	assertDec(t, "2000", p.AvgMonthlyExpense)
	assert.Equal(t, reports.ProjectionHorizonMonths, p.HorizonMonths)
	assertDec(t, "18000", p.ProjectedBalance) // 12000 + (3000-2000)*6

	require.NotNil(t, p.RunwayMonths)
	assertDec(t, "6", *p.RunwayMonths) // 12000 / 2000

	assertDec(t, "600000", p.FireNumber) // 2000 * 12 * 25
	assertDec(t, "2", p.FireProgress)    // 12000 / 600000 * 100
}

func TestBuildProjection_NoExpenses(t *testing.T) {
	state := pjState()
	state.Transactions = []domain.Transaction{
		{ID: "t1", Date: "2025-01-05", Amount: dec("500"), Type: domain.Income},
	}

	p := reports.BuildProjection(state)

	assert.Equal(t, 1, p.MonthsObserved)
	assert.Nil(t, p.RunwayMonths, "zero burn must not produce an infinite runway")
	assertDec(t, "0", p.FireNumber)
	assertDec(t, "0", p.FireProgress)
}

func TestBuildProjection_EmptyState(t *testing.T) {
	p := reports.BuildProjection(pjState())

	assert.Equal(t, 1, p.MonthsObserved, "denominator floors at one month")
	assertDec(t, "0", p.CurrentBalance)
	assertDec(t, "0", p.ProjectedBalance)
	assert.Nil(t, p.RunwayMonths)
}

func TestBuildProjection_FireProgressClamped(t *testing.T) {
	state := pjState()
	state.Accounts = []domain.Account{
		{ID: "a1", Name: "Conta", Type: domain.Operational, InitialBalance: dec("1000000")},
	}
	state.Transactions = []domain.Transaction{
		{ID: "t1", Date: "2025-01-05", Amount: dec("100"), Type: domain.Expense, AccountID: "a1"},
	}

	p := reports.BuildProjection(state)

	// 100 * 12 * 25 = 30000 target; progress raw is far past 100.
	assertDec(t, "30000", p.FireNumber)
	assertDec(t, "100", p.FireProgress)
	assert.True(t, p.FireProgressRaw.GreaterThan(dec("100")))
}
