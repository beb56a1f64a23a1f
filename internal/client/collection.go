package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("no entry with this ID")

// State is the load state of a collection.
type State int

const (
	Unloaded State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unloaded"
}

// kind describes how the entities of a collection are parsed and
// where they live on the server.
type kind[T any] struct {
	path  string
	parse func(raw map[string]any, now time.Time) normalize.Result[T]
	id    func(T) string
	base  func(*T) *models.DefaultModel
	owner func(*T, string)

	// Groups of keys that name the same field, used when merging
	// updates into an entry
	aliases [][]string

	// initial returns the entries of a guest session
	initial func() []T

	// New entries are appended instead of put first
	appendNew bool
}

// Collection is the list of one kind of entity of a session.
//
// In guest mode, all mutations only change memory. With a signed in
// user, they are sent to the API first and memory is only changed when
// the API accepted them.
type Collection[T any] struct {
	mu      sync.RWMutex
	session *Session
	kind    kind[T]
	state   State
	items   []T
	err     error
	now     func() time.Time
}

func newCollection[T any](session *Session, k kind[T]) *Collection[T] {
	return &Collection[T]{session: session, kind: k, now: time.Now}
}

// Items returns a copy of the entries.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

// State returns the load state.
func (c *Collection[T]) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Err returns the error of the last failed load.
func (c *Collection[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.err
}

// Load fetches the entries of the signed in user. In guest mode, the
// collection is reset to its initial entries.
//
// When loading fails, the collection is emptied and its state is Failed.
func (c *Collection[T]) Load(ctx context.Context) error {
	api, userID, ok := c.session.remote()
	if !ok {
		c.mu.Lock()
		c.items = c.initial()
		c.state = Loaded
		c.err = nil
		c.mu.Unlock()
		return nil
	}

	c.mu.Lock()
	c.state = Loading
	c.mu.Unlock()

	raw, err := api.list(ctx, c.kind.path, userID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Str("collection", c.kind.path).Msg("loading")
		c.items = nil
		c.state = Failed
		c.err = err
		return err
	}

	items, skipped := c.parseAll(raw)
	for _, f := range skipped {
		log.Warn().Err(f.Err).Int("index", f.Index).Str("collection", c.kind.path).Msg("skipping entry")
	}

	c.items = items
	c.state = Loaded
	c.err = nil
	return nil
}

// Add normalizes the input and adds the entry. The added entry is
// returned.
func (c *Collection[T]) Add(ctx context.Context, raw map[string]any) (T, error) {
	now := c.now()
	value, err := c.parse(raw, now)
	if err != nil {
		return value, err
	}
	if b := c.kind.base(&value); b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}

	if api, userID, ok := c.session.remote(); ok {
		c.kind.owner(&value, userID)

		var created map[string]any
		if err := api.create(ctx, c.kind.path, value, &created); err != nil {
			return value, err
		}

		// Keep what the server stored
		if stored, err := c.parse(created, now); err == nil {
			value = stored
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kind.appendNew {
		c.items = append(c.items, value)
	} else {
		c.items = append([]T{value}, c.items...)
	}
	return value, nil
}

// Update changes the fields in patch of the entry with the ID. Keys
// not in patch keep their values.
func (c *Collection[T]) Update(ctx context.Context, id string, patch map[string]any) error {
	c.mu.RLock()
	i := c.index(id)
	var existing T
	if i >= 0 {
		existing = c.items[i]
	}
	c.mu.RUnlock()

	// In guest mode there is nothing to update but memory
	api, _, signedIn := c.session.remote()
	if i < 0 && !signedIn {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var updated T
	if i >= 0 {
		var err error
		updated, err = c.merge(existing, patch)
		if err != nil {
			return err
		}
	}

	if signedIn {
		if err := api.update(ctx, c.kind.path, id, patch); err != nil {
			return err
		}
	}

	if i < 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The entry may have moved while the request was running
	if i = c.index(id); i >= 0 {
		c.items[i] = updated
	}
	return nil
}

// Delete removes the entry with the ID.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if api, _, ok := c.session.remote(); ok {
		if err := api.delete(ctx, c.kind.path, id); err != nil {
			return err
		}
	} else if c.Get(id) == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = slices.DeleteFunc(c.items, func(v T) bool {
		return c.kind.id(v) == id
	})
	return nil
}

// ReplaceAll replaces the entries in memory, e.g. after an import.
// Entries that cannot be parsed are skipped and returned.
func (c *Collection[T]) ReplaceAll(raw []map[string]any) []normalize.Failure {
	items, skipped := c.parseAll(raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	c.state = Loaded
	c.err = nil
	return skipped
}

// Get returns a copy of the entry with the ID, or nil.
func (c *Collection[T]) Get(id string) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.index(id)
	if i < 0 {
		return nil
	}
	v := c.items[i]
	return &v
}

// set replaces the entries without parsing them.
func (c *Collection[T]) set(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	c.state = Loaded
	c.err = nil
}

func (c *Collection[T]) initial() []T {
	if c.kind.initial == nil {
		return nil
	}
	return c.kind.initial()
}

// index must be called with the lock held.
func (c *Collection[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(v T) bool {
		return c.kind.id(v) == id
	})
}

func (c *Collection[T]) parseAll(raw []map[string]any) ([]T, []normalize.Failure) {
	now := c.now()
	items := make([]T, 0, len(raw))
	var skipped []normalize.Failure

	for i, r := range raw {
		v, err := c.parse(r, now)
		if err != nil {
			skipped = append(skipped, normalize.Failure{Index: i, Err: err})
			continue
		}
		items = append(items, v)
	}

	return items, skipped
}

// merge applies the patch to the entry and normalizes the result. The
// ID of the entry never changes.
func (c *Collection[T]) merge(existing T, patch map[string]any) (T, error) {
	data, err := json.Marshal(existing)
	if err != nil {
		return existing, err
	}

	merged := make(map[string]any)
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	if err := d.Decode(&merged); err != nil {
		return existing, err
	}

	for key, value := range patch {
		for _, group := range c.kind.aliases {
			if slices.Contains(group, key) {
				for _, alias := range group {
					delete(merged, alias)
				}
			}
		}
		merged[key] = value
	}
	merged["id"] = c.kind.id(existing)

	return c.parse(merged, c.now())
}

// parse normalizes an entry and keeps its creation time if it has one.
func (c *Collection[T]) parse(raw map[string]any, now time.Time) (T, error) {
	v, err := c.kind.parse(raw, now).Get()
	if err != nil {
		return v, err
	}

	if created, ok := raw["createdAt"]; ok {
		if t, err := normalize.Time(created); err == nil {
			c.kind.base(&v).CreatedAt = t
		}
	}
	return v, nil
}
