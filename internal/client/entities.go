package client

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/aggregate"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
	"github.com/shopspring/decimal"
)

var (
	entryAliases = [][]string{
		{"createdAt", "created_at", "date"},
		{"userId", "user_id"},
	}
	ruleAliases = [][]string{
		{"categoryId", "category_id", "category"},
		{"startDate", "start_date"},
		{"endDate", "end_date"},
		{"nextDate", "next_date"},
		{"isActive", "is_active"},
		{"userId", "user_id"},
	}
)

// Transactions are the income and expenses of the session.
type Transactions struct {
	*Collection[models.Transaction]
}

func NewTransactions(s *Session) *Transactions {
	return &Transactions{newCollection(s, kind[models.Transaction]{
		path:  "transactions",
		parse: normalize.Transaction,
		id:    func(t models.Transaction) string { return t.ID },
		base:  func(t *models.Transaction) *models.DefaultModel { return &t.DefaultModel },
		owner: func(t *models.Transaction, id string) { t.UserID = id },
		aliases: append([][]string{
			{"category", "categoryId", "category_id"},
		}, entryAliases...),
	})}
}

func (t *Transactions) Totals() aggregate.Summary {
	return aggregate.Totals(t.Items())
}

// MonthlyBuckets returns the income and expense of the count months up
// to the month of now, oldest first.
func (t *Transactions) MonthlyBuckets(now time.Time, count int) []aggregate.MonthBucket {
	return aggregate.MonthlyBuckets(t.Items(), now, count)
}

// CategoryBreakdown returns the totals per category for the type,
// largest first.
func (t *Transactions) CategoryBreakdown(typ models.EntryType) []aggregate.CategoryTotal {
	return aggregate.CategoryBreakdown(t.Items(), typ)
}

// Categories are the categories of the session. A guest session starts
// with the default categories.
type Categories struct {
	*Collection[models.Category]
}

func defaultCategories() []models.Category {
	return slices.Clone(models.DefaultCategories)
}

func NewCategories(s *Session) *Categories {
	c := &Categories{newCollection(s, kind[models.Category]{
		path: "categories",
		parse: func(raw map[string]any, _ time.Time) normalize.Result[models.Category] {
			return normalize.Category(raw)
		},
		id:        func(c models.Category) string { return c.ID },
		base:      func(c *models.Category) *models.DefaultModel { return &c.DefaultModel },
		owner:     func(c *models.Category, id string) { c.UserID = &id },
		aliases:   entryAliases,
		initial:   defaultCategories,
		appendNew: true,
	})}

	c.items = defaultCategories()
	return c
}

// ByType returns the categories of the type.
func (c *Categories) ByType(typ models.EntryType) []models.Category {
	return slices.DeleteFunc(c.Items(), func(cat models.Category) bool {
		return cat.Type != typ
	})
}

func (c *Categories) ByID(id string) (models.Category, bool) {
	cat := c.Get(id)
	if cat == nil {
		return models.Category{}, false
	}
	return *cat, true
}

// ResetDefaults replaces the categories in memory with the defaults.
func (c *Categories) ResetDefaults() {
	c.set(defaultCategories())
}

// ReplaceAll replaces the categories in memory. If none of them can
// be parsed, the defaults are used.
func (c *Categories) ReplaceAll(raw []map[string]any) []normalize.Failure {
	skipped := c.Collection.ReplaceAll(raw)
	if len(c.Items()) == 0 {
		c.ResetDefaults()
	}
	return skipped
}

// Budgets are the spending limits of the session.
type Budgets struct {
	*Collection[models.Budget]
}

func NewBudgets(s *Session) *Budgets {
	return &Budgets{newCollection(s, kind[models.Budget]{
		path: "budgets",
		parse: func(raw map[string]any, _ time.Time) normalize.Result[models.Budget] {
			return normalize.Budget(raw)
		},
		id:    func(b models.Budget) string { return b.ID },
		base:  func(b *models.Budget) *models.DefaultModel { return &b.DefaultModel },
		owner: func(b *models.Budget, id string) { b.UserID = id },
		aliases: append([][]string{
			{"categoryId", "category_id", "category"},
		}, entryAliases...),
	})}
}

// ByCategory returns the budget of the category for the period.
func (b *Budgets) ByCategory(categoryID string, p models.Period) (models.Budget, bool) {
	return aggregate.FindBudget(b.Items(), categoryID, p)
}

func (b *Budgets) ByPeriod(p models.Period) []models.Budget {
	return aggregate.BudgetsByPeriod(b.Items(), p)
}

// Status computes the spending against every budget at now.
func (b *Budgets) Status(transactions []models.Transaction, now time.Time) []aggregate.BudgetState {
	budgets := b.Items()
	states := make([]aggregate.BudgetState, 0, len(budgets))
	for _, budget := range budgets {
		states = append(states, aggregate.BudgetStatus(budget, transactions, now))
	}
	return states
}

// RecurringRules are the templates for repeating transactions.
type RecurringRules struct {
	*Collection[models.RecurringRule]
}

func NewRecurringRules(s *Session) *RecurringRules {
	return &RecurringRules{newCollection(s, kind[models.RecurringRule]{
		path:    "recurring",
		parse:   normalize.RecurringRule,
		id:      func(r models.RecurringRule) string { return r.ID },
		base:    func(r *models.RecurringRule) *models.DefaultModel { return &r.DefaultModel },
		owner:   func(r *models.RecurringRule, id string) { r.UserID = id },
		aliases: ruleAliases,
	})}
}

// ToggleActive pauses or resumes the rule.
func (r *RecurringRules) ToggleActive(ctx context.Context, id string, active bool) error {
	return r.Update(ctx, id, map[string]any{"isActive": active})
}

// SavingsGoals are the savings goals of the session.
type SavingsGoals struct {
	*Collection[models.SavingsGoal]
}

func NewSavingsGoals(s *Session) *SavingsGoals {
	return &SavingsGoals{newCollection(s, kind[models.SavingsGoal]{
		path: "savings",
		parse: func(raw map[string]any, _ time.Time) normalize.Result[models.SavingsGoal] {
			return normalize.SavingsGoal(raw)
		},
		id:    func(g models.SavingsGoal) string { return g.ID },
		base:  func(g *models.SavingsGoal) *models.DefaultModel { return &g.DefaultModel },
		owner: func(g *models.SavingsGoal, id string) { g.UserID = id },
		aliases: append([][]string{
			{"targetAmount", "target_amount"},
			{"currentAmount", "current_amount"},
			{"targetDate", "target_date"},
			{"isCompleted", "is_completed"},
		}, entryAliases...),
		appendNew: true,
	})}
}

// AddToGoal adds the amount to the saved amount of the goal.
func (s *SavingsGoals) AddToGoal(ctx context.Context, id string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return normalize.ValidationError{Field: "amount", Reason: "must be positive"}
	}

	goal := s.Get(id)
	if goal == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return s.Update(ctx, id, map[string]any{
		"currentAmount": goal.CurrentAmount.Add(amount),
	})
}

// Progress returns the progress of every goal as of today.
func (s *SavingsGoals) Progress(today time.Time) []aggregate.Progress {
	goals := s.Items()
	progress := make([]aggregate.Progress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, aggregate.SavingsProgress(g, today))
	}
	return progress
}
