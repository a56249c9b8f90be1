package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// OtherCategory collects records whose category is empty.
const OtherCategory = "Other"

// CategoryBucket is the aggregate of all records sharing a category.
type CategoryBucket struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CategoryBreakdown groups records by exact, case-sensitive category and
// reports each group's share of the overall total to one decimal place.
// Buckets are ordered by amount descending; equal amounts keep the order in
// which their category was first seen.
func CategoryBreakdown(records []models.Transaction) []CategoryBucket {
	index := make(map[string]int)
	buckets := make([]CategoryBucket, 0)
	total := decimal.Zero

	for _, r := range records {
		category := r.Category
		if strings.TrimSpace(category) == "" {
			category = OtherCategory
		}

		i, ok := index[category]
		if !ok {
			i = len(buckets)
			index[category] = i
			buckets = append(buckets, CategoryBucket{Category: category, Amount: decimal.Zero})
		}
		buckets[i].Amount = buckets[i].Amount.Add(r.Amount)
		buckets[i].Count++
		total = total.Add(r.Amount)
	}

	for i := range buckets {
		buckets[i].Percentage = percentOf(buckets[i].Amount, total, 1)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Amount.GreaterThan(buckets[j].Amount)
	})
	return buckets
}
