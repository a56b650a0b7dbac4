package reports_test

import (
	"testing"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCardUsage(t *testing.T) {
	state := pjState()
	state.Accounts = []domain.Account{
		{ID: "a1", Name: "Conta Corrente", Type: domain.Operational, InitialBalance: dec("1000")},
		{ID: "card1", Name: "Cartão Principal", Type: domain.CreditCard, Limit: dec("500"), ClosingDay: 28, DueDay: 5},
		{ID: "card2", Name: "Cartão Reserva", Type: domain.CreditCard, Limit: dec("1000")},
	}
	state.Transactions = []domain.Transaction{
		{ID: "t1", Date: "2025-05-10", Amount: dec("450"), Type: domain.Expense, AccountID: "card1"},
		{ID: "t2", Date: "2025-05-11", Amount: dec("100"), Type: domain.Expense, AccountID: "card2"},
		// Non-card spend and off-month spend stay out of the invoice.
		{ID: "t3", Date: "2025-05-12", Amount: dec("80"), Type: domain.Expense, AccountID: "a1"},
		{ID: "t4", Date: "2025-04-12", Amount: dec("300"), Type: domain.Expense, AccountID: "card1"},
		// Income on a card is not invoice spend.
		{ID: "t5", Date: "2025-05-13", Amount: dec("40"), Type: domain.Income, AccountID: "card1"},
	}

	cards := reports.BuildCardUsage(state, 5, 2025)

	require.Len(t, cards, 2)
	assert.Equal(t, "card1", cards[0].ID)
	assertDec(t, "450", cards[0].Spent)
	assertDec(t, "50", cards[0].Available)
	assertDec(t, "90", cards[0].UsagePercent)
	assert.True(t, cards[0].Warning)

	assert.Equal(t, "card2", cards[1].ID)
	assertDec(t, "10", cards[1].UsagePercent)
	assert.False(t, cards[1].Warning)
}

func TestBuildCardUsage_OverspendClamps(t *testing.T) {
	state := pjState()
	state.Accounts = []domain.Account{
		{ID: "card1", Name: "Cartão", Type: domain.CreditCard, Limit: dec("500")},
		{ID: "card2", Name: "Sem Limite", Type: domain.CreditCard},
	}
	state.Transactions = []domain.Transaction{
		{ID: "t1", Date: "2025-05-10", Amount: dec("700"), Type: domain.Expense, AccountID: "card1"},
		{ID: "t2", Date: "2025-05-10", Amount: dec("50"), Type: domain.Expense, AccountID: "card2"},
	}

	cards := reports.BuildCardUsage(state, 5, 2025)

	require.Len(t, cards, 2)
	assertDec(t, "0", cards[0].Available)
	assertDec(t, "100", cards[0].UsagePercent)
	assert.True(t, cards[0].Warning)
	// Zero limit reads as 0% usage, never a division error.
	assertDec(t, "0", cards[1].UsagePercent)
	assert.False(t, cards[1].Warning)
}
