package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Amounts are sent to clients as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultModel is the base model for all models.
//
// IDs are generated by clients and stored as opaque strings.
type DefaultModel struct {
	ID        string    `json:"id" gorm:"primaryKey" example:"lq2v8x1k4f9ab"`    // ID of the resource
	CreatedAt time.Time `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"-"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}

// EntryType is the direction of money for categories, transactions
// and recurring rules.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// Period is the time span a budget covers.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Frequency is how often a recurring rule repeats.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// Frequencies lists all supported frequencies.
var Frequencies = []Frequency{Daily, Weekly, Monthly, Yearly}
