package normalize

import (
	"strings"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
)

// Period restricts a value to week, month or year. Anything else is month.
func Period(v any) (models.Period, bool) {
	s, _ := v.(string)
	switch p := models.Period(strings.ToLower(strings.TrimSpace(s))); p {
	case models.PeriodWeek, models.PeriodMonth, models.PeriodYear:
		return p, true
	}
	return models.PeriodMonth, false
}

// Budget parses a budget. The period defaults to month.
func Budget(raw map[string]any) Result[models.Budget] {
	if raw == nil {
		return failure[models.Budget]("", "budget is empty")
	}

	var r Result[models.Budget]
	b := &r.Value

	b.CategoryID, _ = text(raw, "categoryId", "category_id", "category")

	var ok bool
	b.Amount, ok = amount(raw, "amount")
	if !ok {
		r.Defaulted = append(r.Defaulted, "amount")
	}

	p, _ := field(raw, "period")
	b.Period, ok = Period(p)
	if !ok {
		r.Defaulted = append(r.Defaulted, "period")
	}

	b.UserID, _ = text(raw, "userId", "user_id")

	b.ID, _ = text(raw, "id")
	if strings.TrimSpace(b.ID) == "" {
		r.Defaulted = append(r.Defaulted, "id")
		b.ID = NewID()
	}

	return r
}
