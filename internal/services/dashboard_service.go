package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"spendwise/internal/analytics"
	"spendwise/internal/models"
)

// Dashboard windows and limits.
const (
	expenseWindowDays   = 30
	incomeWindowDays    = 60
	yearWindowDays      = 12 * 30
	recentPerLedger     = 5
	recentLimit         = 10
	overviewMonthsShown = 6
	overviewYearsShown  = 5
)

// WindowedRecords is a rolling-window slice of one ledger with its total.
type WindowedRecords struct {
	Total        decimal.Decimal      `json:"total"`
	Transactions []models.Transaction `json:"transactions"`
}

// DashboardSummary is the payload of the main dashboard.
type DashboardSummary struct {
	TotalBalance       decimal.Decimal      `json:"totalBalance"`
	TotalIncome        decimal.Decimal      `json:"totalIncome"`
	TotalExpenses      decimal.Decimal      `json:"totalExpenses"`
	Last30DaysExpenses WindowedRecords      `json:"last30DaysExpenses"`
	Last60DaysIncome   WindowedRecords      `json:"last60DaysIncome"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
}

// MonthlyTrend is one month of expense totals.
type MonthlyTrend struct {
	Period           string          `json:"period"`
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TransactionCount int             `json:"transactionCount"`
}

// SpendingOverview compares expense totals per calendar month and year.
type SpendingOverview struct {
	Monthly analytics.PeriodOverview `json:"monthly"`
	Yearly  analytics.PeriodOverview `json:"yearly"`
}

// IncomeVsExpense summarizes net savings over the last twelve months.
type IncomeVsExpense struct {
	Summary analytics.TrendSummary `json:"summary"`
	Series  []analytics.NetPoint   `json:"series"`
}

// DashboardAnalytics is the payload of the analytics page.
type DashboardAnalytics struct {
	AllIncome            []models.Transaction       `json:"allIncome"`
	AllExpenses          []models.Transaction       `json:"allExpenses"`
	Last12MonthsIncome   []models.Transaction       `json:"last12MonthsIncome"`
	Last12MonthsExpenses []models.Transaction       `json:"last12MonthsExpenses"`
	CategoryBreakdown    []analytics.CategoryBucket `json:"categoryBreakdown"`
	IncomeBreakdown      []analytics.CategoryBucket `json:"incomeBreakdown"`
	MonthlyTrends        []MonthlyTrend             `json:"monthlyTrends"`
	SpendingOverview     SpendingOverview           `json:"spendingOverview"`
	IncomeVsExpense      IncomeVsExpense            `json:"incomeVsExpense"`
}

// dashboardService sequences store reads and hands the records to the
// analytics package.
type dashboardService struct {
	store RecordStore
	now   func() time.Time
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(store RecordStore) DashboardServicer {
	return &dashboardService{store: store, now: time.Now}
}

// Summary builds the main dashboard payload. The six store reads are
// independent and run concurrently; the first failure cancels the rest.
func (s *dashboardService) Summary(ctx context.Context, userID string) (*DashboardSummary, error) {
	now := s.now()

	var (
		totalIncome, totalExpenses   decimal.Decimal
		lastIncome, lastExpenses     WindowedRecords
		recentIncome, recentExpenses []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalIncome, err = s.store.SumByUser(gctx, models.TransactionKindIncome, userID, RecordFilter{})
		return err
	})
	g.Go(func() (err error) {
		totalExpenses, err = s.store.SumByUser(gctx, models.TransactionKindExpense, userID, RecordFilter{})
		return err
	})
	g.Go(func() (err error) {
		lastIncome, err = s.window(gctx, models.TransactionKindIncome, userID, incomeWindowDays, now)
		return err
	})
	g.Go(func() (err error) {
		lastExpenses, err = s.window(gctx, models.TransactionKindExpense, userID, expenseWindowDays, now)
		return err
	})
	g.Go(func() (err error) {
		recentIncome, err = s.store.FindByUser(gctx, models.TransactionKindIncome, userID, RecordFilter{Limit: recentPerLedger})
		return err
	})
	g.Go(func() (err error) {
		recentExpenses, err = s.store.FindByUser(gctx, models.TransactionKindExpense, userID, RecordFilter{Limit: recentPerLedger})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalBalance:       totalIncome.Sub(totalExpenses),
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		Last30DaysExpenses: lastExpenses,
		Last60DaysIncome:   lastIncome,
		RecentTransactions: analytics.MergeRecent(recentIncome, recentExpenses, recentLimit),
	}, nil
}

func (s *dashboardService) window(ctx context.Context, kind models.TransactionKind, userID string, days int, now time.Time) (WindowedRecords, error) {
	start := analytics.WindowStart(now, days)
	records, err := s.store.FindByUser(ctx, kind, userID, RecordFilter{StartDate: &start})
	if err != nil {
		return WindowedRecords{}, err
	}
	return WindowedRecords{Total: analytics.Sum(records), Transactions: records}, nil
}

// Analytics builds the extended analytics payload. The twelve-month window
// is 360 elapsed days, not calendar months.
func (s *dashboardService) Analytics(ctx context.Context, userID string) (*DashboardAnalytics, error) {
	now := s.now()

	income, err := s.store.FindByUser(ctx, models.TransactionKindIncome, userID, RecordFilter{})
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.FindByUser(ctx, models.TransactionKindExpense, userID, RecordFilter{})
	if err != nil {
		return nil, err
	}

	yearIncome := analytics.WithinDays(income, yearWindowDays, now)
	yearExpenses := analytics.WithinDays(expenses, yearWindowDays, now)

	buckets := analytics.PeriodTotals(yearExpenses, analytics.Monthly)
	trends := make([]MonthlyTrend, 0, len(buckets))
	for _, b := range buckets {
		trends = append(trends, MonthlyTrend{
			Period:           b.Period,
			Year:             b.Year,
			Month:            b.Month,
			TotalExpenses:    b.TotalAmount,
			TransactionCount: b.TransactionCount,
		})
	}

	return &DashboardAnalytics{
		AllIncome:            income,
		AllExpenses:          expenses,
		Last12MonthsIncome:   yearIncome,
		Last12MonthsExpenses: yearExpenses,
		CategoryBreakdown:    analytics.CategoryBreakdown(expenses),
		IncomeBreakdown:      analytics.CategoryBreakdown(income),
		MonthlyTrends:        trends,
		SpendingOverview: SpendingOverview{
			Monthly: analytics.Overview(expenses, analytics.Monthly, now, overviewMonthsShown),
			Yearly:  analytics.Overview(expenses, analytics.Yearly, now, overviewYearsShown),
		},
		IncomeVsExpense: IncomeVsExpense{
			Summary: analytics.Trend(yearIncome, yearExpenses, now),
			Series:  analytics.IncomeExpenseSeries(yearIncome, yearExpenses),
		},
	}, nil
}
