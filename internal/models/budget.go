package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending ceiling for a category over a period.
type Budget struct {
	DefaultModel
	CategoryID string          `json:"categoryId" example:"1"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null" example:"1000000"`
	Period     Period          `json:"period" gorm:"not null" example:"month"`
	UserID     string          `json:"userId" gorm:"index" example:"1712345678901"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Amount = b.Amount.Abs()
	return nil
}

func (Budget) Export() (json.RawMessage, error) {
	return export[Budget]()
}
