package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single movement of money.
//
// CreatedAt is the business date chosen by the user, not an audit timestamp.
type Transaction struct {
	DefaultModel
	Type     EntryType       `json:"type" gorm:"not null" example:"expense"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null" example:"50000"`
	Category string          `json:"category" example:"1"` // ID of the category, not enforced
	Note     string          `json:"note" example:"Phở bò"`
	UserID   string          `json:"userId" gorm:"index" example:"1712345678901"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	t.Amount = t.Amount.Abs()

	return nil
}

func (Transaction) Export() (json.RawMessage, error) {
	return export[Transaction]()
}
