package normalize

import (
	"strings"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
)

// Transaction parses a transaction.
//
// The type becomes income or expense, the amount its absolute value (or
// zero), the note an empty string and createdAt the given time when
// absent. An ID is generated when none is given.
func Transaction(raw map[string]any, now time.Time) Result[models.Transaction] {
	if raw == nil {
		return failure[models.Transaction]("", "transaction is empty")
	}

	var r Result[models.Transaction]
	tx := &r.Value

	createdAt, err := date(raw, "createdAt", "created_at", "date")
	if err != nil {
		return failure[models.Transaction]("createdAt", "is not a valid date")
	}
	if createdAt == nil {
		r.Defaulted = append(r.Defaulted, "createdAt")
		createdAt = &now
	}
	tx.CreatedAt = *createdAt

	typ, _ := field(raw, "type")
	entryType, ok := EntryType(typ)
	if !ok {
		r.Defaulted = append(r.Defaulted, "type")
	}
	tx.Type = entryType

	tx.Amount, ok = amount(raw, "amount")
	if !ok {
		r.Defaulted = append(r.Defaulted, "amount")
	}

	tx.Category, _ = text(raw, "category", "categoryId", "category_id")
	tx.Note, _ = text(raw, "note")
	tx.UserID, _ = text(raw, "userId", "user_id")

	tx.ID, _ = text(raw, "id")
	tx.ID = strings.TrimSpace(tx.ID)
	if tx.ID == "" {
		r.Defaulted = append(r.Defaulted, "id")
		tx.ID = NewID()
	}

	return r
}

// Transactions parses a list of transactions.
func Transactions(list []map[string]any, now time.Time) ([]models.Transaction, []Failure) {
	return all(list, func(raw map[string]any) Result[models.Transaction] {
		return Transaction(raw, now)
	})
}
