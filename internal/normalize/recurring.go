package normalize

import (
	"strings"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
)

// Frequency restricts a value to the supported frequencies. Anything
// else is monthly.
func Frequency(v any) (models.Frequency, bool) {
	s, _ := v.(string)
	f := models.Frequency(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range models.Frequencies {
		if f == known {
			return f, true
		}
	}
	return models.Monthly, false
}

// RecurringRule parses a recurring rule.
//
// The start date defaults to now, the next date to the start date and
// rules are active unless stated otherwise.
func RecurringRule(raw map[string]any, now time.Time) Result[models.RecurringRule] {
	if raw == nil {
		return failure[models.RecurringRule]("", "recurring rule is empty")
	}

	var r Result[models.RecurringRule]
	rule := &r.Value

	start, err := date(raw, "startDate", "start_date")
	if err != nil {
		return failure[models.RecurringRule]("startDate", "is not a valid date")
	}
	if start == nil {
		r.Defaulted = append(r.Defaulted, "startDate")
		start = &now
	}
	rule.StartDate = *start

	next, err := date(raw, "nextDate", "next_date")
	if err != nil {
		return failure[models.RecurringRule]("nextDate", "is not a valid date")
	}
	if next == nil {
		r.Defaulted = append(r.Defaulted, "nextDate")
		next = start
	}
	rule.NextDate = *next

	rule.EndDate, err = date(raw, "endDate", "end_date")
	if err != nil {
		return failure[models.RecurringRule]("endDate", "is not a valid date")
	}

	typ, _ := field(raw, "type")
	var ok bool
	rule.Type, ok = EntryType(typ)
	if !ok {
		r.Defaulted = append(r.Defaulted, "type")
	}

	rule.Amount, ok = amount(raw, "amount")
	if !ok {
		r.Defaulted = append(r.Defaulted, "amount")
	}

	f, _ := field(raw, "frequency")
	rule.Frequency, ok = Frequency(f)
	if !ok {
		r.Defaulted = append(r.Defaulted, "frequency")
	}

	rule.IsActive, ok = boolean(raw, "isActive", "is_active")
	if !ok {
		r.Defaulted = append(r.Defaulted, "isActive")
		rule.IsActive = true
	}

	rule.CategoryID, _ = text(raw, "categoryId", "category_id", "category")
	rule.Note, _ = text(raw, "note")
	rule.UserID, _ = text(raw, "userId", "user_id")

	rule.ID, _ = text(raw, "id")
	if strings.TrimSpace(rule.ID) == "" {
		r.Defaulted = append(r.Defaulted, "id")
		rule.ID = NewID()
	}
	rule.CreatedAt = now

	return r
}
