package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// Granularity selects calendar month or calendar year bucketing.
type Granularity string

const (
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// Key returns the bucket key of t: YYYY-MM for monthly, YYYY for yearly.
func (g Granularity) Key(t time.Time) string {
	if g == Yearly {
		return t.Format("2006")
	}
	return t.Format("2006-01")
}

// previous returns a time inside the calendar period preceding the one of t.
func (g Granularity) previous(t time.Time) time.Time {
	y, m, _ := t.Date()
	if g == Yearly {
		return time.Date(y-1, time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(y, m-1, 1, 0, 0, 0, 0, t.Location())
}

// PeriodBucket totals the records falling in one calendar period.
type PeriodBucket struct {
	Period           string          `json:"period"`
	Year             int             `json:"year"`
	Month            int             `json:"month,omitempty"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int             `json:"transactionCount"`
}

// PeriodTotals buckets records by calendar period of their date and returns
// the non-empty buckets in ascending period order.
func PeriodTotals(records []models.Transaction, g Granularity) []PeriodBucket {
	byKey := make(map[string]*PeriodBucket)
	for _, r := range records {
		key := g.Key(r.Date)
		b, ok := byKey[key]
		if !ok {
			b = &PeriodBucket{Period: key, Year: r.Date.Year(), TotalAmount: decimal.Zero}
			if g == Monthly {
				b.Month = int(r.Date.Month())
			}
			byKey[key] = b
		}
		b.TotalAmount = b.TotalAmount.Add(r.Amount)
		b.TransactionCount++
	}

	out := make([]PeriodBucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	// YYYY and YYYY-MM keys sort chronologically as strings.
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// ChangeDirection labels the sign of a period-over-period change.
type ChangeDirection string

const (
	ChangeIncrease ChangeDirection = "increase"
	ChangeDecrease ChangeDirection = "decrease"
)

// PeriodChange compares the current period total against the previous one.
type PeriodChange struct {
	CurrentPeriod  decimal.Decimal `json:"currentPeriod"`
	PreviousPeriod decimal.Decimal `json:"previousPeriod"`
	Change         decimal.Decimal `json:"change"`
	ChangePercent  decimal.Decimal `json:"changePercent"`
	Direction      ChangeDirection `json:"direction"`
}

// Change computes the difference between current and previous. The percent
// change is zero whenever previous is not positive.
func Change(current, previous decimal.Decimal) PeriodChange {
	change := current.Sub(previous)
	pct := decimal.Zero
	if previous.IsPositive() {
		pct = change.Div(previous).Mul(hundred).Round(2)
	}
	dir := ChangeIncrease
	if change.IsNegative() {
		dir = ChangeDecrease
	}
	return PeriodChange{
		CurrentPeriod:  current,
		PreviousPeriod: previous,
		Change:         change,
		ChangePercent:  pct,
		Direction:      dir,
	}
}

// PeriodOverview is a bucketed series plus the current-vs-previous change.
type PeriodOverview struct {
	Granularity Granularity    `json:"granularity"`
	Buckets     []PeriodBucket `json:"buckets"`
	PeriodChange
}

// Overview buckets records by g, keeps the latest keep buckets for charting,
// and compares the period containing now with the calendar period right
// before it. An absent bucket counts as zero; the previous period is never
// replaced by an older non-empty one.
func Overview(records []models.Transaction, g Granularity, now time.Time, keep int) PeriodOverview {
	all := PeriodTotals(records, g)

	current, previous := decimal.Zero, decimal.Zero
	currentKey, previousKey := g.Key(now), g.Key(g.previous(now))
	for _, b := range all {
		switch b.Period {
		case currentKey:
			current = b.TotalAmount
		case previousKey:
			previous = b.TotalAmount
		}
	}

	buckets := all
	if keep >= 0 && len(buckets) > keep {
		buckets = buckets[len(buckets)-keep:]
	}

	return PeriodOverview{
		Granularity:  g,
		Buckets:      buckets,
		PeriodChange: Change(current, previous),
	}
}
