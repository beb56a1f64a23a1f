package aggregate

import (
	"strings"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategoryTotal is the sum of transactions in one category.
type CategoryTotal struct {
	CategoryID string          `json:"categoryId" example:"1"`
	Total      decimal.Decimal `json:"total" example:"2500000"`
}

// CategoryBreakdown sums the transactions of the given type per category.
// The result is in order of first appearance.
func CategoryBreakdown(transactions []models.Transaction, t models.EntryType) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, tx := range transactions {
		if tx.Type != t {
			continue
		}

		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{CategoryID: tx.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(tx.Amount)
	}

	return totals
}

// TopN returns the n categories with the highest totals, highest first.
// Ties are ordered by category ID. A non-positive n returns all.
func TopN(totals []CategoryTotal, n int) []CategoryTotal {
	sorted := slices.Clone(totals)
	slices.SortStableFunc(sorted, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.CategoryID, b.CategoryID)
	})

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
