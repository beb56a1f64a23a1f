package aggregate

import (
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/shopspring/decimal"
)

// Window is a closed time span.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports if t is within the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// PeriodWindow returns the window of the period that contains now.
// Weeks run from Sunday to Saturday.
func PeriodWindow(p models.Period, now time.Time) Window {
	y, m, d := now.Date()
	loc := now.Location()

	var start, next time.Time
	switch p {
	case models.PeriodWeek:
		start = time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, loc)
		next = start.AddDate(0, 0, 7)
	case models.PeriodYear:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(1, 0, 0)
	default:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 1, 0)
	}

	return Window{Start: start, End: next.Add(-time.Millisecond)}
}

// BudgetState is the spending against a budget in the current period.
type BudgetState struct {
	Budget       models.Budget   `json:"budget"`
	Window       Window          `json:"window"`
	Spending     decimal.Decimal `json:"spending" example:"1200000"`
	Percentage   decimal.Decimal `json:"percentage" example:"100"`  // Capped at 100
	Remaining    decimal.Decimal `json:"remaining" example:"-200000"` // Negative when over budget
	IsOverBudget bool            `json:"isOverBudget" example:"true"`
}

// BudgetStatus sums the expenses in the budget's category within the
// period window around now.
func BudgetStatus(b models.Budget, transactions []models.Transaction, now time.Time) BudgetState {
	w := PeriodWindow(b.Period, now)

	spending := decimal.Zero
	for _, t := range transactions {
		if t.Type == models.Expense && t.Category == b.CategoryID && w.Contains(t.CreatedAt) {
			spending = spending.Add(t.Amount)
		}
	}

	return BudgetState{
		Budget:       b,
		Window:       w,
		Spending:     spending,
		Percentage:   percentage(spending, b.Amount),
		Remaining:    b.Amount.Sub(spending),
		IsOverBudget: spending.GreaterThan(b.Amount),
	}
}

// FindBudget returns the first budget for the category and period.
func FindBudget(budgets []models.Budget, categoryID string, p models.Period) (models.Budget, bool) {
	for _, b := range budgets {
		if b.CategoryID == categoryID && b.Period == p {
			return b, true
		}
	}
	return models.Budget{}, false
}

// BudgetsByPeriod returns the budgets for the period.
func BudgetsByPeriod(budgets []models.Budget, p models.Period) []models.Budget {
	filtered := make([]models.Budget, 0)
	for _, b := range budgets {
		if b.Period == p {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// percentage returns part/whole in percent, capped at 100 and rounded
// to two decimal places. A zero whole counts as one.
func percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		whole = decimal.NewFromInt(1)
	}

	p := part.Div(whole).Mul(hundred)
	if p.GreaterThan(hundred) {
		p = hundred
	}
	return p.Round(2)
}
