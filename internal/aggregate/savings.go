package aggregate

import (
	"math"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/shopspring/decimal"
)

// Progress is the state of a savings goal.
type Progress struct {
	Goal            models.SavingsGoal `json:"goal"`
	Percentage      decimal.Decimal    `json:"percentage" example:"40"`
	RemainingAmount decimal.Decimal    `json:"remainingAmount" example:"3000000"`
	DaysRemaining   *int               `json:"daysRemaining" example:"30"` // Negative when overdue, null without target date
}

// SavingsProgress computes the progress of the goal as of today.
func SavingsProgress(g models.SavingsGoal, today time.Time) Progress {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	p := Progress{
		Goal:            g,
		Percentage:      percentage(g.CurrentAmount, g.TargetAmount),
		RemainingAmount: remaining,
	}

	if g.TargetDate != nil {
		days := daysBetween(today, *g.TargetDate)
		p.DaysRemaining = &days
	}

	return p
}

// daysBetween counts the calendar days from one date to another,
// both taken in the location of from.
func daysBetween(from, to time.Time) int {
	start := startOfDay(from)
	end := startOfDay(to.In(from.Location()))
	return int(math.Round(end.Sub(start).Hours() / 24))
}
