package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/shopspring/decimal"
)

// field returns the first present, non-nil value for any of the keys.
func field(raw map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// text returns the value as string. Numbers are formatted, other types
// are treated as absent.
func text(raw map[string]any, keys ...string) (string, bool) {
	v, ok := field(raw, keys...)
	if !ok {
		return "", false
	}

	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	}
	return "", false
}

// Amount converts numbers and numeric strings to a non-negative decimal.
// Everything else is zero.
func Amount(v any) (decimal.Decimal, bool) {
	var d decimal.Decimal
	var err error

	switch a := v.(type) {
	case decimal.Decimal:
		d = a
	case float64:
		d = decimal.NewFromFloat(a)
	case float32:
		d = decimal.NewFromFloat32(a)
	case int:
		d = decimal.NewFromInt(int64(a))
	case int64:
		d = decimal.NewFromInt(a)
	case json.Number:
		d, err = decimal.NewFromString(a.String())
	case string:
		s := strings.TrimSpace(a)
		if s == "" {
			return decimal.Zero, false
		}
		d, err = decimal.NewFromString(s)
	default:
		return decimal.Zero, false
	}

	if err != nil {
		return decimal.Zero, false
	}
	return d.Abs(), true
}

func amount(raw map[string]any, keys ...string) (decimal.Decimal, bool) {
	v, ok := field(raw, keys...)
	if !ok {
		return decimal.Zero, false
	}
	return Amount(v)
}

// boolean accepts true/false, 1/0 and their string forms.
func boolean(raw map[string]any, keys ...string) (bool, bool) {
	v, ok := field(raw, keys...)
	if !ok {
		return false, false
	}

	switch b := v.(type) {
	case bool:
		return b, true
	case float64:
		return b != 0, true
	case int:
		return b != 0, true
	case json.Number:
		return b.String() != "0", true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, false
		}
		return parsed, true
	}
	return false, false
}

// EntryType restricts a value to income or expense. Anything else is expense.
func EntryType(v any) (models.EntryType, bool) {
	s, _ := v.(string)
	switch models.EntryType(strings.ToLower(strings.TrimSpace(s))) {
	case models.Income:
		return models.Income, true
	case models.Expense:
		return models.Expense, true
	}
	return models.Expense, false
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Time parses timestamps. Accepted are RFC3339, local date times
// without zone, Unix milliseconds and plain dates. Plain dates are set
// to noon local time so that they stay on the same day in every
// time zone close to the local one.
func Time(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case float64:
		return time.UnixMilli(int64(t)), nil
	case int64:
		return time.UnixMilli(t), nil
	case int:
		return time.UnixMilli(int64(t)), nil
	case json.Number:
		ms, err := t.Int64()
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ms), nil
	case string:
		return parseTime(strings.TrimSpace(t))
	}

	return time.Time{}, fmt.Errorf("unsupported type %T", v)
}

func parseTime(s string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}

	return time.Time{}, fmt.Errorf("cannot parse %q as time", s)
}

// date reads an optional timestamp. Absent values are not an error,
// unparseable ones are.
func date(raw map[string]any, keys ...string) (*time.Time, error) {
	v, ok := field(raw, keys...)
	if !ok {
		return nil, nil
	}

	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return nil, nil
	}

	t, err := Time(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
