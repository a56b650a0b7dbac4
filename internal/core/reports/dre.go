package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DRE bucket tags carried on expense categories.
const (
	dreTagFinancialIncome   = "receitas_fin"
	dreTagTaxes             = "impostos"
	dreTagDeductions        = "deducoes"
	dreTagDirectCosts       = "custos_diretos"
	dreTagOperating         = "despesas_op"
	dreTagPayroll           = "despesas_rh"
	dreTagMarketing         = "despesas_mkt"
	dreTagFinancialExpenses = "despesas_fin"
)

// BuildDRE classifies the month's transactions into the income-statement
// waterfall. Unknown or absent tags fall back to gross revenue (income) and
// other expenses (expense); transfers are ignored.
func BuildDRE(state *domain.AppState, month, year int) domain.DRE {
	d := domain.DRE{Month: month, Year: year}

	for _, tx := range state.Transactions {
		if !InMonth(tx.Date, month, year) {
			continue
		}
		var tag string
		if cat := state.CategoryByID(tx.CategoryID); cat != nil {
			tag = cat.DRE
		}
		switch tx.Type {
		case domain.Income:
			if tag == dreTagFinancialIncome {
				d.FinancialIncome = d.FinancialIncome.Add(tx.Amount)
			} else {
				d.GrossRevenue = d.GrossRevenue.Add(tx.Amount)
			}
		case domain.Expense:
			switch tag {
			case dreTagTaxes:
				d.Taxes = d.Taxes.Add(tx.Amount)
			case dreTagDeductions:
				d.Deductions = d.Deductions.Add(tx.Amount)
			case dreTagDirectCosts:
				d.DirectCosts = d.DirectCosts.Add(tx.Amount)
			case dreTagOperating:
				d.OperatingExpenses = d.OperatingExpenses.Add(tx.Amount)
			case dreTagPayroll:
				d.PayrollExpenses = d.PayrollExpenses.Add(tx.Amount)
			case dreTagMarketing:
				d.MarketingExpenses = d.MarketingExpenses.Add(tx.Amount)
			case dreTagFinancialExpenses:
				d.FinancialExpenses = d.FinancialExpenses.Add(tx.Amount)
			default:
				d.OtherExpenses = d.OtherExpenses.Add(tx.Amount)
			}
		}
	}

	d.NetRevenue = d.GrossRevenue.Sub(d.Taxes.Add(d.Deductions))
	d.GrossProfit = d.NetRevenue.Sub(d.DirectCosts)
	d.OperatingExpensesTotal = d.OperatingExpenses.Add(d.PayrollExpenses).Add(d.MarketingExpenses)
	d.OperatingProfit = d.GrossProfit.Sub(d.OperatingExpensesTotal)
	d.FinancialResult = d.FinancialIncome.Sub(d.FinancialExpenses)
	d.NetProfit = d.OperatingProfit.Add(d.FinancialResult).Sub(d.OtherExpenses)

	// Net revenue is the 100% base for every margin; non-positive net revenue
	// zeroes them all instead of propagating a division blowup.
	d.GrossMargin = verticalPercent(d.GrossProfit, d.NetRevenue)
	d.OperatingMargin = verticalPercent(d.OperatingProfit, d.NetRevenue)
	d.NetMargin = verticalPercent(d.NetProfit, d.NetRevenue)

	return d
}

// verticalPercent returns line/base as a percentage, zero when base <= 0.
func verticalPercent(line, base decimal.Decimal) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return line.Div(base).Mul(hundred)
}

// DRELines flattens the waterfall into export rows with vertical analysis
// against net revenue.
func DRELines(d domain.DRE) []domain.DRELine {
	row := func(label string, amount decimal.Decimal) domain.DRELine {
		return domain.DRELine{Label: label, Amount: amount, Vertical: verticalPercent(amount, d.NetRevenue)}
	}
	return []domain.DRELine{
		row("Receita Bruta", d.GrossRevenue),
		row("(-) Impostos", d.Taxes),
		row("(-) Deduções", d.Deductions),
		row("Receita Líquida", d.NetRevenue),
		row("(-) Custos Diretos", d.DirectCosts),
		row("Lucro Bruto", d.GrossProfit),
		row("(-) Despesas Operacionais", d.OperatingExpenses),
		row("(-) Despesas com Pessoal", d.PayrollExpenses),
		row("(-) Despesas de Marketing", d.MarketingExpenses),
		row("Lucro Operacional (EBITDA)", d.OperatingProfit),
		row("(+) Receitas Financeiras", d.FinancialIncome),
		row("(-) Despesas Financeiras", d.FinancialExpenses),
		row("Resultado Financeiro", d.FinancialResult),
		row("(-) Outras Despesas", d.OtherExpenses),
		row("Resultado Líquido", d.NetProfit),
	}
}

// WriteDRECSV serializes the waterfall as a flat comma-separated table: a
// header row naming the period, then one row per line item.
func WriteDRECSV(w io.Writer, d domain.DRE) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{fmt.Sprintf("DRE %02d/%d", d.Month, d.Year), "Valor", "Vertical %"}); err != nil {
		return err
	}
	for _, line := range DRELines(d) {
		rec := []string{line.Label, line.Amount.StringFixed(2), line.Vertical.StringFixed(1)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
