package normalize_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func TestTransactionAmountNonNegative(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		want   decimal.Decimal
	}{
		{"negative number", -500.0, decimal.NewFromInt(500)},
		{"positive number", 120000.0, decimal.NewFromInt(120000)},
		{"numeric string", "-42.5", decimal.RequireFromString("42.5")},
		{"json number", json.Number("-7"), decimal.NewFromInt(7)},
		{"garbage string", "lots", decimal.Zero},
		{"boolean", true, decimal.Zero},
		{"absent", nil, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := normalize.Transaction(map[string]any{"amount": tt.amount, "type": "expense"}, now)
			require.True(t, r.OK())
			assert.True(t, tt.want.Equal(r.Value.Amount), "got %s, want %s", r.Value.Amount, tt.want)
			assert.False(t, r.Value.Amount.IsNegative())
		})
	}
}

func TestTransactionDefaults(t *testing.T) {
	r := normalize.Transaction(map[string]any{"type": "income", "amount": 1.0, "category": "9"}, now)
	require.True(t, r.OK())

	tx := r.Value
	assert.Equal(t, models.Income, tx.Type)
	assert.Equal(t, "9", tx.Category)
	assert.Equal(t, "", tx.Note)
	assert.Equal(t, now, tx.CreatedAt)
	assert.NotEmpty(t, tx.ID)
	assert.ElementsMatch(t, []string{"createdAt", "id"}, r.Defaulted)
}

func TestTransactionType(t *testing.T) {
	for _, input := range []any{"income", "INCOME", "expense", "transfer", "", nil, 3.0} {
		r := normalize.Transaction(map[string]any{"type": input}, now)
		require.True(t, r.OK())
		assert.Contains(t, []models.EntryType{models.Income, models.Expense}, r.Value.Type)
	}

	r := normalize.Transaction(map[string]any{"type": "transfer"}, now)
	assert.Equal(t, models.Expense, r.Value.Type)
	assert.Contains(t, r.Defaulted, "type")
}

func TestTransactionCreatedAt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Time
	}{
		{"RFC3339", "2024-01-02T03:04:05Z", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"date only is noon local", "2024-01-02", time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)},
		{"unix milliseconds", 1704164645000.0, time.UnixMilli(1704164645000)},
		{"date time without zone", "2024-01-02T08:15", time.Date(2024, 1, 2, 8, 15, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := normalize.Transaction(map[string]any{"createdAt": tt.value}, now)
			require.True(t, r.OK())
			assert.True(t, tt.want.Equal(r.Value.CreatedAt), "got %s, want %s", r.Value.CreatedAt, tt.want)
		})
	}
}

func TestTransactionFailures(t *testing.T) {
	r := normalize.Transaction(nil, now)
	assert.False(t, r.OK())
	assert.ErrorIs(t, r.Err, normalize.ErrInvalid)

	r = normalize.Transaction(map[string]any{"createdAt": "yesterday"}, now)
	assert.False(t, r.OK())

	var verr normalize.ValidationError
	require.ErrorAs(t, r.Err, &verr)
	assert.Equal(t, "createdAt", verr.Field)
}

func TestTransactionsBulk(t *testing.T) {
	values, failures := normalize.Transactions([]map[string]any{
		{"id": "a", "amount": 1.0},
		nil,
		{"id": "c", "createdAt": "not a date"},
		{"id": "d", "amount": "-3"},
	}, now)

	require.Len(t, values, 2)
	assert.Equal(t, "a", values[0].ID)
	assert.Equal(t, "d", values[1].ID)

	require.Len(t, failures, 2)
	assert.Equal(t, 1, failures[0].Index)
	assert.Equal(t, 2, failures[1].Index)
}

func TestCategory(t *testing.T) {
	r := normalize.Category(map[string]any{})
	require.True(t, r.OK())
	assert.Equal(t, normalize.DefaultCategoryName, r.Value.Name)
	assert.Equal(t, "#9d9dba", r.Value.Color)
	assert.Equal(t, "📌", r.Value.Icon)
	assert.Equal(t, models.Expense, r.Value.Type)
	assert.Nil(t, r.Value.UserID)
	assert.True(t, r.Value.Global())

	r = normalize.Category(map[string]any{"id": "x", "name": " Cafe ", "type": "income", "userId": "u1", "color": "#000000"})
	require.True(t, r.OK())
	assert.Equal(t, "x", r.Value.ID)
	assert.Equal(t, "Cafe", r.Value.Name)
	assert.Equal(t, models.Income, r.Value.Type)
	require.NotNil(t, r.Value.UserID)
	assert.Equal(t, "u1", *r.Value.UserID)
	assert.Equal(t, []string{"icon"}, r.Defaulted)

	assert.False(t, normalize.Category(nil).OK())
}

func TestCategoryTypeTwoValued(t *testing.T) {
	values, failures := normalize.Categories([]map[string]any{
		{"type": "income"}, {"type": "expense"}, {"type": "savings"}, {"type": 1.0}, {},
	})
	assert.Empty(t, failures)
	for _, c := range values {
		assert.Contains(t, []models.EntryType{models.Income, models.Expense}, c.Type)
	}
}

func TestBudget(t *testing.T) {
	r := normalize.Budget(map[string]any{"categoryId": "1", "amount": "1000000"})
	require.True(t, r.OK())
	assert.Equal(t, models.PeriodMonth, r.Value.Period)
	assert.True(t, decimal.NewFromInt(1000000).Equal(r.Value.Amount))

	r = normalize.Budget(map[string]any{"period": "week", "category_id": "2"})
	assert.Equal(t, models.PeriodWeek, r.Value.Period)
	assert.Equal(t, "2", r.Value.CategoryID)
}

func TestRecurringRule(t *testing.T) {
	r := normalize.RecurringRule(map[string]any{
		"type":      "expense",
		"amount":    250000.0,
		"frequency": "weekly",
		"startDate": "2024-01-05",
	}, now)
	require.True(t, r.OK())

	rule := r.Value
	assert.Equal(t, models.Weekly, rule.Frequency)
	assert.True(t, rule.IsActive)
	assert.Equal(t, rule.StartDate, rule.NextDate)
	assert.Nil(t, rule.EndDate)

	tests := []struct {
		input any
		want  bool
	}{
		{0.0, false}, {1.0, true}, {"false", false}, {true, true},
	}
	for _, tt := range tests {
		r := normalize.RecurringRule(map[string]any{"isActive": tt.input}, now)
		assert.Equal(t, tt.want, r.Value.IsActive, "input %v", tt.input)
	}

	r = normalize.RecurringRule(map[string]any{"frequency": "hourly", "endDate": "soon"}, now)
	assert.False(t, r.OK())

	r = normalize.RecurringRule(map[string]any{"frequency": "hourly"}, now)
	assert.Equal(t, models.Monthly, r.Value.Frequency)
	assert.Equal(t, now, r.Value.StartDate)
}

func TestSavingsGoal(t *testing.T) {
	r := normalize.SavingsGoal(map[string]any{"name": "Laptop", "target_amount": 5000000.0, "targetDate": "2024-12-31"})
	require.True(t, r.OK())
	assert.True(t, decimal.NewFromInt(5000000).Equal(r.Value.TargetAmount))
	assert.True(t, r.Value.CurrentAmount.IsZero())
	assert.False(t, r.Value.IsCompleted)
	require.NotNil(t, r.Value.TargetDate)
	assert.Equal(t, 31, r.Value.TargetDate.Day())
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := normalize.NewID()
		assert.Regexp(t, "^[0-9a-z]{13,}$", id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
