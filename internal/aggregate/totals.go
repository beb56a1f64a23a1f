// Package aggregate computes summaries over snapshots of transactions,
// budgets and savings goals. All functions are pure and take the
// current time from the caller.
package aggregate

import (
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary is the total income and expense of a set of transactions.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"15000000"`
	TotalExpense decimal.Decimal `json:"totalExpense" example:"8200000"`
	Balance      decimal.Decimal `json:"balance" example:"6800000"`
}

// Totals sums the transactions by type.
func Totals(transactions []models.Transaction) Summary {
	s := Summary{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
	for _, t := range transactions {
		switch t.Type {
		case models.Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case models.Expense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// Bucket is the income and expense within a time span.
type Bucket struct {
	Income  decimal.Decimal `json:"income" example:"15000000"`
	Expense decimal.Decimal `json:"expense" example:"8200000"`
}

func newBucket() Bucket {
	return Bucket{Income: decimal.Zero, Expense: decimal.Zero}
}

func (b *Bucket) add(t models.Transaction) {
	switch t.Type {
	case models.Income:
		b.Income = b.Income.Add(t.Amount)
	case models.Expense:
		b.Expense = b.Expense.Add(t.Amount)
	}
}
