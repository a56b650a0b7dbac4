package reports

import (
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var eighty = decimal.NewFromInt(80)

// BuildCardUsage computes each credit card's current invoice: the month's
// expenses on the card against its limit. Usage is capped at 100% and a zero
// limit reads as 0% rather than dividing by zero.
func BuildCardUsage(state *domain.AppState, month, year int) []domain.CardUsage {
	byID := make(map[string]int)
	out := make([]domain.CardUsage, 0)
	for _, acc := range state.Accounts {
		if acc.Type != domain.CreditCard {
			continue
		}
		byID[acc.ID] = len(out)
		out = append(out, domain.CardUsage{Account: acc})
	}

	for _, tx := range state.Transactions {
		i, ok := byID[tx.AccountID]
		if !ok || tx.Type != domain.Expense || !InMonth(tx.Date, month, year) {
			continue
		}
		out[i].Spent = out[i].Spent.Add(tx.Amount)
	}

	for i := range out {
		card := &out[i]
		card.Available = card.Limit.Sub(card.Spent)
		if card.Available.IsNegative() {
			card.Available = decimal.Zero
		}
		if card.Limit.IsPositive() {
			card.UsagePercent = clampPercent(card.Spent.Div(card.Limit).Mul(hundred))
		}
		card.Warning = card.UsagePercent.GreaterThan(eighty)
	}
	return out
}
