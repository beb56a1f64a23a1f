package aggregate

import (
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
)

// Stats bundles the summaries shown on the dashboard.
type Stats struct {
	Summary
	Monthly  []MonthBucket   `json:"monthly"`
	Weekly   []WeekBucket    `json:"weekly"`
	Expenses []CategoryTotal `json:"expenses"` // Highest first
	Incomes  []CategoryTotal `json:"incomes"`  // Highest first
}

// Compute builds all dashboard summaries for the transactions.
func Compute(transactions []models.Transaction, now time.Time, months, weeks int) Stats {
	return Stats{
		Summary:  Totals(transactions),
		Monthly:  MonthlyBuckets(transactions, now, months),
		Weekly:   WeeklyBuckets(transactions, now, weeks),
		Expenses: TopN(CategoryBreakdown(transactions, models.Expense), 0),
		Incomes:  TopN(CategoryBreakdown(transactions, models.Income), 0),
	}
}
