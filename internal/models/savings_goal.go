package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal tracks money put aside for a target.
//
// IsCompleted is toggled by the user, it is not derived from the amounts.
type SavingsGoal struct {
	DefaultModel
	Name          string          `json:"name" gorm:"not null" example:"Laptop"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8);not null" example:"5000000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8);not null" example:"2000000"`
	TargetDate    *time.Time      `json:"targetDate" example:"2024-12-31T12:00:00Z"`
	UserID        string          `json:"userId" gorm:"index" example:"1712345678901"`
	IsCompleted   bool            `json:"isCompleted" example:"false"`
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.TargetAmount = g.TargetAmount.Abs()
	g.CurrentAmount = g.CurrentAmount.Abs()

	return nil
}

func (g *SavingsGoal) AfterFind(tx *gorm.DB) error {
	err := g.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	if g.TargetDate != nil {
		target := g.TargetDate.In(time.UTC)
		g.TargetDate = &target
	}

	return nil
}

func (SavingsGoal) Export() (json.RawMessage, error) {
	return export[SavingsGoal]()
}
