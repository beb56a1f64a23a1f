// Package recurring turns recurring rules into transactions.
package recurring

import (
	"fmt"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
)

// strategy returns the occurrence following current. The start date
// anchors the day of month and month of year.
type strategy func(current, start time.Time) time.Time

var strategies = map[models.Frequency]strategy{
	models.Daily: func(current, _ time.Time) time.Time {
		return current.AddDate(0, 0, 1)
	},
	models.Weekly: func(current, _ time.Time) time.Time {
		return current.AddDate(0, 0, 7)
	},
	models.Monthly: func(current, start time.Time) time.Time {
		year, month, _ := current.Date()
		return clamp(year, month+1, start.Day(), current)
	},
	models.Yearly: func(current, start time.Time) time.Time {
		return clamp(current.Year()+1, start.Month(), start.Day(), current)
	},
}

// clamp returns the date with the day limited to the last day of the
// month, keeping the clock time of ref.
func clamp(year int, month time.Month, day int, ref time.Time) time.Time {
	// Day 0 of the following month is the last day of this month
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, ref.Location()).Day()
	if day > last {
		day = last
	}

	h, m, s := ref.Clock()
	return time.Date(year, month, day, h, m, s, ref.Nanosecond(), ref.Location())
}

// Next returns the occurrence of the rule after current.
func Next(f models.Frequency, current, start time.Time) (time.Time, error) {
	next, ok := strategies[f]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown frequency: %s", f)
	}

	return next(current, start), nil
}

// Due returns the occurrences of the rule that are at or before now,
// starting with its next date, and the next date after them. Occurrences
// after the end date are not included.
func Due(rule models.RecurringRule, now time.Time, limit int) ([]time.Time, time.Time, error) {
	var due []time.Time
	current := rule.NextDate
	if current.IsZero() {
		return nil, current, fmt.Errorf("rule %s has no next date", rule.ID)
	}

	for !current.After(now) && len(due) < limit {
		if rule.EndDate != nil && current.After(*rule.EndDate) {
			break
		}

		due = append(due, current)

		next, err := Next(rule.Frequency, current, rule.StartDate)
		if err != nil {
			return nil, rule.NextDate, err
		}
		current = next
	}

	return due, current, nil
}
