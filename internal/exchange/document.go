// Package exchange moves a user's data in and out of the tracker.
package exchange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
)

// Version is the version of the document format written by Export.
const Version = 1

// Document is a portable copy of the categories and transactions of a user.
type Document struct {
	Version      int                  `json:"version" example:"1"`
	CreationTime time.Time            `json:"creationTime" example:"2024-03-15T09:30:00Z"`
	Categories   []models.Category    `json:"categories"`
	Transactions []models.Transaction `json:"transactions"`
}

// Export returns the document for the user. Global categories are
// included so that the document is self-contained.
func Export(userID string, now time.Time) (Document, error) {
	categories, err := models.ListCategories(userID)
	if err != nil {
		return Document{}, err
	}

	transactions, err := models.List[models.Transaction](userID)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Version:      Version,
		CreationTime: now,
		Categories:   categories,
		Transactions: transactions,
	}, nil
}

// Summary reports what an import did.
type Summary struct {
	Categories   int                 `json:"categories" example:"14"`
	Transactions int                 `json:"transactions" example:"120"`
	Skipped      []normalize.Failure `json:"skipped,omitempty"`

	// IDs of entries that belong to another user and were not written
	Conflicts []string `json:"conflicts,omitempty" example:"1712345678901"`
}

// raw is a document whose entries have not been parsed yet.
type raw struct {
	Version      int              `json:"version"`
	Categories   []map[string]any `json:"categories"`
	Transactions []map[string]any `json:"transactions"`
}

// Decode reads a document. Entries are parsed leniently, the ones that
// cannot be parsed are reported as skipped.
func Decode(r io.Reader, now time.Time) (Document, []normalize.Failure, error) {
	var doc raw

	d := json.NewDecoder(r)
	d.UseNumber()
	if err := d.Decode(&doc); err != nil {
		return Document{}, nil, fmt.Errorf("invalid document: %w", err)
	}

	if doc.Version > Version {
		return Document{}, nil, fmt.Errorf("document version %d is not supported, the latest supported version is %d", doc.Version, Version)
	}

	categories, skippedCategories := normalize.Categories(doc.Categories)
	transactions, skippedTransactions := normalize.Transactions(doc.Transactions, now)

	// Indexes of transactions follow the categories
	for i := range skippedTransactions {
		skippedTransactions[i].Index += len(doc.Categories)
	}

	return Document{
		Version:      doc.Version,
		CreationTime: now,
		Categories:   categories,
		Transactions: transactions,
	}, append(skippedCategories, skippedTransactions...), nil
}

// Import writes the document for the user. User owned categories and
// all transactions are assigned to the user and overwrite the user's
// entries with the same ID. Global categories are only created when
// they are missing. Entries whose ID belongs to another user are not
// written and reported as conflicts.
func Import(userID string, doc Document) (Summary, error) {
	var global, owned []models.Category
	for _, c := range doc.Categories {
		if c.Global() {
			global = append(global, c)
			continue
		}
		c.UserID = &userID
		owned = append(owned, c)
	}

	for i := range doc.Transactions {
		doc.Transactions[i].UserID = userID
	}

	created, err := models.CreateMissing(global)
	if err != nil {
		return Summary{}, err
	}

	categories, takenCategories, err := models.UpsertOwned(userID, owned, func(c models.Category) string { return c.ID })
	if err != nil {
		return Summary{}, err
	}

	transactions, takenTransactions, err := models.UpsertOwned(userID, doc.Transactions, func(t models.Transaction) string { return t.ID })
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Categories:   int(created) + categories,
		Transactions: transactions,
		Conflicts:    append(takenCategories, takenTransactions...),
	}, nil
}

// ImportJSON decodes and imports a document.
func ImportJSON(userID string, data []byte, now time.Time) (Summary, error) {
	doc, skipped, err := Decode(bytes.NewReader(data), now)
	if err != nil {
		return Summary{}, err
	}

	summary, err := Import(userID, doc)
	summary.Skipped = skipped
	return summary, err
}
