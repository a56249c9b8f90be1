package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// TrendDirection classifies how net savings moved between two windows.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendNeutral   TrendDirection = "neutral"
)

// trendWindowMonths is the width of each compared window.
const trendWindowMonths = 3

var (
	improvingFactor = decimal.RequireFromString("1.05")
	decliningFactor = decimal.RequireFromString("0.95")
)

// TrendSummary is the income-vs-expense headline for a set of records.
type TrendSummary struct {
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	NetSavings         decimal.Decimal `json:"netSavings"`
	SavingsRatePercent decimal.Decimal `json:"savingsRatePercent"`
	TrendDirection     TrendDirection  `json:"trendDirection"`
}

// NetPoint is one month of the income-vs-expense series.
type NetPoint struct {
	Period   string          `json:"period"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// IncomeExpenseSeries returns per-month income, expenses and net for every
// month that has at least one record, in ascending order.
func IncomeExpenseSeries(income, expenses []models.Transaction) []NetPoint {
	points := make(map[string]*NetPoint)
	get := func(t time.Time) *NetPoint {
		key := Monthly.Key(t)
		p, ok := points[key]
		if !ok {
			p = &NetPoint{Period: key, Income: decimal.Zero, Expenses: decimal.Zero, Net: decimal.Zero}
			points[key] = p
		}
		return p
	}

	for _, r := range income {
		p := get(r.Date)
		p.Income = p.Income.Add(r.Amount)
	}
	for _, r := range expenses {
		p := get(r.Date)
		p.Expenses = p.Expenses.Add(r.Amount)
	}

	out := make([]NetPoint, 0, len(points))
	for _, p := range points {
		p.Net = p.Income.Sub(p.Expenses)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// Trend summarizes income against expenses and classifies the direction of
// monthly net savings. The recent window is the month containing now and the
// two before it; the previous window is the three months before that. Each
// window averages over all three months, so months without records count as
// zero and two empty windows come out neutral.
func Trend(income, expenses []models.Transaction, now time.Time) TrendSummary {
	totalIncome := Sum(income)
	totalExpenses := Sum(expenses)
	net := totalIncome.Sub(totalExpenses)

	netByMonth := make(map[string]decimal.Decimal)
	for _, p := range IncomeExpenseSeries(income, expenses) {
		netByMonth[p.Period] = p.Net
	}

	y, m, _ := now.Date()
	windowAvg := func(offset int) decimal.Decimal {
		sum := decimal.Zero
		for i := 0; i < trendWindowMonths; i++ {
			month := time.Date(y, m-time.Month(offset+i), 1, 0, 0, 0, 0, now.Location())
			sum = sum.Add(netByMonth[Monthly.Key(month)])
		}
		return sum.Div(decimal.NewFromInt(trendWindowMonths))
	}
	recentAvg := windowAvg(0)
	previousAvg := windowAvg(trendWindowMonths)

	direction := TrendNeutral
	switch {
	case recentAvg.GreaterThan(previousAvg.Mul(improvingFactor)):
		direction = TrendImproving
	case recentAvg.LessThan(previousAvg.Mul(decliningFactor)):
		direction = TrendDeclining
	}

	return TrendSummary{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetSavings:         net,
		SavingsRatePercent: percentOf(net, totalIncome, 2),
		TrendDirection:     direction,
	}
}
