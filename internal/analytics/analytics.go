// Package analytics reduces already-fetched income and expense records into
// the totals, buckets and trends shown on the dashboard.
//
// Every function here is pure: inputs are materialized record slices and an
// explicit "now", outputs are fresh values. Money is summed with
// decimal.Decimal so long series of cent amounts never drift.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Sum returns the total amount of records.
func Sum(records []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// WindowStart returns the inclusive lower bound of a rolling window of the
// given number of days ending at now. Records carry a calendar date, so the
// bound is the calendar day that many days back, not an instant.
func WindowStart(now time.Time, days int) time.Time {
	return models.CalendarDate(now.Add(-time.Duration(days) * 24 * time.Hour))
}

// WithinDays keeps the records dated on or after WindowStart(now, days).
func WithinDays(records []models.Transaction, days int, now time.Time) []models.Transaction {
	start := WindowStart(now, days)
	out := make([]models.Transaction, 0, len(records))
	for _, r := range records {
		if !r.Date.Before(start) {
			out = append(out, r)
		}
	}
	return out
}

// MergeRecent tags income and expense records with their kind, orders them
// newest first and keeps at most limit entries. Records sharing a date keep
// their relative input order, income before expenses. A negative limit
// keeps everything.
func MergeRecent(income, expenses []models.Transaction, limit int) []models.Transaction {
	merged := make([]models.Transaction, 0, len(income)+len(expenses))
	for _, r := range income {
		r.Kind = models.TransactionKindIncome
		merged = append(merged, r)
	}
	for _, r := range expenses {
		r.Kind = models.TransactionKindExpense
		merged = append(merged, r)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// percentOf returns part as a percentage of total rounded to places
// decimals, or zero when total is zero.
func percentOf(part, total decimal.Decimal, places int32) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(places)
}
