package reports

import (
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthIncome totals the month's income transactions.
func MonthIncome(state *domain.AppState, month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range state.Transactions {
		if tx.Type == domain.Income && InMonth(tx.Date, month, year) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// SimulateDistribution splits the month's income across the profile's
// distribution rules. The split is display-only; no allocation is persisted.
func SimulateDistribution(state *domain.AppState, month, year int) domain.Distribution {
	dist := domain.Distribution{
		BaseIncome: MonthIncome(state, month, year),
		Lines:      make([]domain.DistributionLine, 0, len(state.Rules)),
	}

	for _, rule := range state.Rules {
		line := domain.DistributionLine{
			RuleID:      rule.ID,
			Name:        rule.Name,
			AccountName: domain.RemovedAccountLabel,
			Percentage:  rule.Percentage,
			Amount:      dist.BaseIncome.Mul(rule.Percentage).Div(hundred),
		}
		if acc := state.AccountByID(rule.DestinationAccountID); acc != nil {
			line.AccountName = acc.Name
		}
		dist.TotalPercentage = dist.TotalPercentage.Add(rule.Percentage)
		dist.Lines = append(dist.Lines, line)
	}

	dist.RemainderPercent = hundred.Sub(dist.TotalPercentage)
	dist.RemainderAmount = dist.BaseIncome.Mul(dist.RemainderPercent).Div(hundred)
	return dist
}
