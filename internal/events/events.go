// Package events publishes notifications about changes to transactions.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/rs/zerolog/log"
)

// Kind is the type of an event.
type Kind string

const (
	TransactionCreated Kind = "transaction.created"
	TransactionUpdated Kind = "transaction.updated"
	TransactionDeleted Kind = "transaction.deleted"
	RecurringApplied   Kind = "recurring.applied"
)

// Event is the message body sent to subscribers.
type Event struct {
	Kind          Kind      `json:"kind"`
	UserID        string    `json:"userId,omitempty"`
	TransactionID string    `json:"transactionId"`
	RuleID        string    `json:"ruleId,omitempty"`
	Amount        string    `json:"amount,omitempty"`
	Type          string    `json:"type,omitempty"`
	Time          time.Time `json:"time"`
}

// ForTransaction returns an event about the transaction.
func ForTransaction(kind Kind, t models.Transaction) Event {
	return Event{
		Kind:          kind,
		UserID:        t.UserID,
		TransactionID: t.ID,
		Amount:        t.Amount.String(),
		Type:          string(t.Type),
		Time:          time.Now(),
	}
}

func (e Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards all events.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error { return nil }

var (
	mu        sync.RWMutex
	publisher Publisher = Noop{}
)

// Use sets the publisher used by Publish. A nil publisher disables events.
func Use(p Publisher) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		p = Noop{}
	}
	publisher = p
}

// Publish sends the event with the configured publisher.
//
// Delivery is best effort, failures are logged and not returned to
// the caller.
func Publish(ctx context.Context, e Event) {
	mu.RLock()
	p := publisher
	mu.RUnlock()

	if err := p.Publish(ctx, e); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("kind", string(e.Kind)).Str("transaction", e.TransactionID).Msg("could not publish event")
	}
}
