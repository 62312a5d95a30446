package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the aggregated amount for one category within a window.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary aggregates a set of expenses for display.
type Summary struct {
	ByCategory []CategoryTotal
	Total      decimal.Decimal
	Count      int
}

// Summarize folds expenses into a Summary. Category totals are ordered by
// subtotal descending, ties broken by category name ascending, so rendered
// output is deterministic. An empty slice yields a zero summary.
func Summarize(expenses []Expense) Summary {
	summary := Summary{
		Total: decimal.Zero,
		Count: len(expenses),
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = CategoryOther
		}
		byCategory[category] = byCategory[category].Add(e.Amount)
		summary.Total = summary.Total.Add(e.Amount)
	}

	summary.ByCategory = make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		summary.ByCategory = append(summary.ByCategory, CategoryTotal{
			Category: category,
			Total:    total,
		})
	}

	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	return summary
}
