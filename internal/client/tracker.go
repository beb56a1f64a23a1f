package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/exchange"
	"golang.org/x/sync/errgroup"
)

// Tracker holds a session and all collections that belong to it.
type Tracker struct {
	Session      *Session
	Transactions *Transactions
	Categories   *Categories
	Budgets      *Budgets
	Recurring    *RecurringRules
	Savings      *SavingsGoals
}

func New(api *API, store Store) *Tracker {
	s := NewSession(api, store)

	return &Tracker{
		Session:      s,
		Transactions: NewTransactions(s),
		Categories:   NewCategories(s),
		Budgets:      NewBudgets(s),
		Recurring:    NewRecurringRules(s),
		Savings:      NewSavingsGoals(s),
	}
}

// Load loads all collections. Every collection that fails is left
// empty, the first error is returned.
func (t *Tracker) Load(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error { return t.Transactions.Load(ctx) })
	g.Go(func() error { return t.Categories.Load(ctx) })
	g.Go(func() error { return t.Budgets.Load(ctx) })
	g.Go(func() error { return t.Recurring.Load(ctx) })
	g.Go(func() error { return t.Savings.Load(ctx) })

	return g.Wait()
}

// Login signs in and loads the data of the user.
func (t *Tracker) Login(ctx context.Context, email, password string) (User, error) {
	user, err := t.Session.Login(ctx, email, password)
	if err != nil {
		return User{}, err
	}
	return user, t.Load(ctx)
}

// Logout signs out. All collections are reset to a guest session.
func (t *Tracker) Logout(ctx context.Context) error {
	if err := t.Session.Logout(); err != nil {
		return err
	}
	return t.Load(ctx)
}

// Export returns the categories and transactions in memory as an
// export document.
func (t *Tracker) Export(now time.Time) exchange.Document {
	return exchange.Document{
		Version:      exchange.Version,
		CreationTime: now,
		Categories:   t.Categories.Items(),
		Transactions: t.Transactions.Items(),
	}
}

// Import reads an export document. With a signed in user, it is
// uploaded and both collections are reloaded. In guest mode it
// replaces the categories and transactions in memory.
func (t *Tracker) Import(ctx context.Context, r io.Reader) (exchange.Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return exchange.Summary{}, err
	}

	doc, skipped, err := exchange.Decode(bytes.NewReader(data), time.Now())
	if err != nil {
		return exchange.Summary{}, err
	}

	if api, userID, ok := t.Session.remote(); ok {
		summary, err := api.Import(ctx, userID, doc)
		if err != nil {
			return exchange.Summary{}, err
		}
		summary.Skipped = skipped

		var g errgroup.Group
		g.Go(func() error { return t.Categories.Load(ctx) })
		g.Go(func() error { return t.Transactions.Load(ctx) })
		return summary, g.Wait()
	}

	var raw struct {
		Categories   []map[string]any `json:"categories"`
		Transactions []map[string]any `json:"transactions"`
	}
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	if err := d.Decode(&raw); err != nil {
		return exchange.Summary{}, fmt.Errorf("invalid document: %w", err)
	}

	t.Categories.ReplaceAll(raw.Categories)
	t.Transactions.ReplaceAll(raw.Transactions)

	return exchange.Summary{
		Categories:   len(doc.Categories),
		Transactions: len(doc.Transactions),
		Skipped:      skipped,
	}, nil
}
