package reports

import (
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AccountBalances computes every account's all-time running balance:
// initial balance plus all income minus all expenses on the account,
// independent of any month window. Transactions pointing at removed accounts
// are skipped here, matching the tolerant reference behavior.
func AccountBalances(state *domain.AppState) []domain.AccountBalance {
	byID := make(map[string]int, len(state.Accounts))
	out := make([]domain.AccountBalance, len(state.Accounts))
	for i, acc := range state.Accounts {
		byID[acc.ID] = i
		out[i] = domain.AccountBalance{Account: acc, Balance: acc.InitialBalance}
	}
	for _, tx := range state.Transactions {
		i, ok := byID[tx.AccountID]
		if !ok {
			continue
		}
		switch tx.Type {
		case domain.Income:
			out[i].Balance = out[i].Balance.Add(tx.Amount)
		case domain.Expense:
			out[i].Balance = out[i].Balance.Sub(tx.Amount)
		}
	}
	for i := range out {
		out[i].IsLiability = out[i].Type == domain.CreditCard || out[i].Balance.IsNegative()
	}
	return out
}

// BuildBalanceSheet classifies accounts into assets and liabilities and adds
// goal pots to the asset side. An account is a liability when it is a credit
// card or its balance is negative; liabilities contribute their absolute
// value. All-time snapshot, never windowed.
func BuildBalanceSheet(state *domain.AppState) domain.BalanceSheet {
	sheet := domain.BalanceSheet{
		Accounts: AccountBalances(state),
		Goals:    append([]domain.Goal{}, state.Goals...),
	}
	for _, acc := range sheet.Accounts {
		if acc.IsLiability {
			sheet.TotalLiabilities = sheet.TotalLiabilities.Add(acc.Balance.Abs())
		} else {
			sheet.TotalAssets = sheet.TotalAssets.Add(acc.Balance)
		}
	}
	for _, goal := range sheet.Goals {
		sheet.TotalAssets = sheet.TotalAssets.Add(goal.CurrentAmount)
	}
	sheet.NetWorth = sheet.TotalAssets.Sub(sheet.TotalLiabilities)
	return sheet
}

// ConsolidatedBalance is the all-time balance across the whole profile:
// every account's initial balance plus every income minus every expense,
// including transactions whose account reference dangles.
func ConsolidatedBalance(state *domain.AppState) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range state.Accounts {
		total = total.Add(acc.InitialBalance)
	}
	for _, tx := range state.Transactions {
		switch tx.Type {
		case domain.Income:
			total = total.Add(tx.Amount)
		case domain.Expense:
			total = total.Sub(tx.Amount)
		}
	}
	return total
}
