package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringRule is a template for a transaction that repeats.
type RecurringRule struct {
	DefaultModel
	Type       EntryType       `json:"type" gorm:"not null" example:"expense"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null" example:"250000"`
	CategoryID string          `json:"categoryId" example:"5"`
	Note       string          `json:"note" example:"Internet"`
	Frequency  Frequency       `json:"frequency" gorm:"not null" example:"monthly"`
	StartDate  time.Time       `json:"startDate" example:"2024-01-05T12:00:00Z"`
	EndDate    *time.Time      `json:"endDate" example:"2024-12-31T12:00:00Z"` // Optional, null means no end
	NextDate   time.Time       `json:"nextDate" example:"2024-02-05T12:00:00Z"`
	UserID     string          `json:"userId" gorm:"index" example:"1712345678901"`
	IsActive   bool            `json:"isActive" example:"true"`
}

func (RecurringRule) TableName() string {
	return "recurring_transactions"
}

func (r *RecurringRule) BeforeSave(_ *gorm.DB) error {
	r.Note = strings.TrimSpace(r.Note)
	r.Amount = r.Amount.Abs()

	return nil
}

func (r *RecurringRule) AfterFind(tx *gorm.DB) error {
	err := r.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	r.StartDate = r.StartDate.In(time.UTC)
	r.NextDate = r.NextDate.In(time.UTC)
	if r.EndDate != nil {
		end := r.EndDate.In(time.UTC)
		r.EndDate = &end
	}

	return nil
}

func (RecurringRule) Export() (json.RawMessage, error) {
	return export[RecurringRule]()
}
