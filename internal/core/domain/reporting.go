package domain

import (
	"github.com/shopspring/decimal"
)

// Display sentinels substituted for dangling references.
const (
	UncategorizedLabel  = "Sem Categoria"
	RemovedAccountLabel = "Conta Removida"
)

// DRE holds the income-statement waterfall for one month. Margins use net
// revenue as the 100% base and are zero when net revenue is not positive.
type DRE struct {
	Month int `json:"month"`
	Year  int `json:"year"`

	GrossRevenue    decimal.Decimal `json:"grossRevenue"`
	FinancialIncome decimal.Decimal `json:"financialIncome"`

	Taxes             decimal.Decimal `json:"taxes"`
	Deductions        decimal.Decimal `json:"deductions"`
	DirectCosts       decimal.Decimal `json:"directCosts"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	PayrollExpenses   decimal.Decimal `json:"payrollExpenses"`
	MarketingExpenses decimal.Decimal `json:"marketingExpenses"`
	FinancialExpenses decimal.Decimal `json:"financialExpenses"`
	OtherExpenses     decimal.Decimal `json:"otherExpenses"`

	NetRevenue             decimal.Decimal `json:"netRevenue"`
	GrossProfit            decimal.Decimal `json:"grossProfit"`
	OperatingExpensesTotal decimal.Decimal `json:"operatingExpensesTotal"`
	OperatingProfit        decimal.Decimal `json:"operatingProfit"`
	FinancialResult        decimal.Decimal `json:"financialResult"`
	NetProfit              decimal.Decimal `json:"netProfit"`

	GrossMargin     decimal.Decimal `json:"grossMargin"`
	OperatingMargin decimal.Decimal `json:"operatingMargin"`
	NetMargin       decimal.Decimal `json:"netMargin"`
}

// DRELine is one row of the flat export table.
type DRELine struct {
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Vertical decimal.Decimal `json:"vertical"` // percent of net revenue
}

// AccountBalance is an account with its all-time running balance and the
// asset/liability classification derived from it.
type AccountBalance struct {
	Account
	Balance     decimal.Decimal `json:"balance"`
	IsLiability bool            `json:"isLiability"`
}

// BalanceSheet is the all-time assets/liabilities snapshot.
type BalanceSheet struct {
	Accounts         []AccountBalance `json:"accounts"`
	Goals            []Goal           `json:"goals"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	NetWorth         decimal.Decimal  `json:"netWorth"`
}

// BudgetStatus buckets a budget's utilization.
type BudgetStatus string

const (
	BudgetNominal BudgetStatus = "nominal"
	BudgetCaution BudgetStatus = "caution"
	BudgetWarning BudgetStatus = "warning"
	BudgetOver    BudgetStatus = "over"
)

// BudgetUsage is one budget with its windowed spend.
type BudgetUsage struct {
	Budget
	CategoryName string          `json:"categoryName"`
	Spent        decimal.Decimal `json:"spent"`
	PercentUsed  decimal.Decimal `json:"percentUsed"`
	Overflow     decimal.Decimal `json:"overflow"`
	Status       BudgetStatus    `json:"status"`
}

// Projection is the cash-flow projection report. RunwayMonths is nil when
// average expense is zero (rendered as a dash, never infinity).
type Projection struct {
	CurrentBalance    decimal.Decimal  `json:"currentBalance"`
	AvgMonthlyIncome  decimal.Decimal  `json:"avgMonthlyIncome"`
	AvgMonthlyExpense decimal.Decimal  `json:"avgMonthlyExpense"`
	MonthsObserved    int              `json:"monthsObserved"`
	ProjectedBalance  decimal.Decimal  `json:"projectedBalance"`
	HorizonMonths     int              `json:"horizonMonths"`
	RunwayMonths      *decimal.Decimal `json:"runwayMonths"`
	FireNumber        decimal.Decimal  `json:"fireNumber"`
	FireProgress      decimal.Decimal  `json:"fireProgress"`    // clamped [0,100]
	FireProgressRaw   decimal.Decimal  `json:"fireProgressRaw"` // unclamped
}

// CardUsage is one credit card with its current-month invoice.
type CardUsage struct {
	Account
	Spent        decimal.Decimal `json:"spent"`
	Available    decimal.Decimal `json:"available"`
	UsagePercent decimal.Decimal `json:"usagePercent"`
	Warning      bool            `json:"warning"`
}

// DistributionLine is one simulated allocation.
type DistributionLine struct {
	RuleID      string          `json:"ruleId"`
	Name        string          `json:"name"`
	AccountName string          `json:"accountName"`
	Percentage  decimal.Decimal `json:"percentage"`
	Amount      decimal.Decimal `json:"amount"`
}

// Distribution is the current-month income split simulation. Nothing here is
// persisted.
type Distribution struct {
	BaseIncome       decimal.Decimal    `json:"baseIncome"`
	Lines            []DistributionLine `json:"lines"`
	TotalPercentage  decimal.Decimal    `json:"totalPercentage"`
	RemainderPercent decimal.Decimal    `json:"remainderPercent"`
	RemainderAmount  decimal.Decimal    `json:"remainderAmount"`
}

// CategoryAmount is a per-category total with its share of the column total.
type CategoryAmount struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percent    decimal.Decimal `json:"percent"`
}

// MonthlySummary groups one month's flows by category.
type MonthlySummary struct {
	Month         int              `json:"month"`
	Year          int              `json:"year"`
	TotalIncome   decimal.Decimal  `json:"totalIncome"`
	TotalExpense  decimal.Decimal  `json:"totalExpense"`
	IncomeByCat   []CategoryAmount `json:"incomeByCategory"`
	ExpensesByCat []CategoryAmount `json:"expensesByCategory"`
}

// StackCosts is the subscription rollup: everything normalized to both cycles.
type StackCosts struct {
	MonthlyTotal decimal.Decimal `json:"monthlyTotal"`
	YearlyTotal  decimal.Decimal `json:"yearlyTotal"`
	Items        []StackItem     `json:"items"`
}

// TransactionView is a transaction with its soft references resolved for
// display.
type TransactionView struct {
	Transaction
	CategoryName string `json:"categoryName"`
	AccountName  string `json:"accountName"`
}

// GoalProgress is a goal with its completion ratio clamped to [0,1].
type GoalProgress struct {
	Goal
	Progress decimal.Decimal `json:"progress"`
}

// Dashboard aggregates the landing-page KPIs.
type Dashboard struct {
	ConsolidatedBalance decimal.Decimal   `json:"consolidatedBalance"`
	MonthIncome         decimal.Decimal   `json:"monthIncome"`
	MonthExpense        decimal.Decimal   `json:"monthExpense"`
	TaxProvision        decimal.Decimal   `json:"taxProvision"`
	WarChestProvision   decimal.Decimal   `json:"warChestProvision"`
	RunwayMonths        *decimal.Decimal  `json:"runwayMonths"`
	RecentTransactions  []TransactionView `json:"recentTransactions"`
}
