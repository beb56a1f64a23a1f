package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Category labels transactions. Categories without a user are global
// defaults visible to everyone.
type Category struct {
	DefaultModel
	Name   string    `json:"name" gorm:"not null" example:"Ăn uống"`
	Color  string    `json:"color" example:"#ff6b6b"`
	Icon   string    `json:"icon" example:"🍔"`
	Type   EntryType `json:"type" gorm:"not null" example:"expense"`
	UserID *string   `json:"userId" gorm:"index" example:"1712345678901"` // Owner, null for global defaults
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Global reports if the category is a default visible to all users.
func (c Category) Global() bool {
	return c.UserID == nil
}

func (Category) Export() (json.RawMessage, error) {
	return export[Category]()
}

// DefaultCategories are seeded as global categories and used as the
// initial category list in guest mode.
var DefaultCategories = []Category{
	{DefaultModel: DefaultModel{ID: "1"}, Name: "Ăn uống", Color: "#ff6b6b", Icon: "🍔", Type: Expense},
	{DefaultModel: DefaultModel{ID: "2"}, Name: "Di chuyển", Color: "#ffa502", Icon: "🚗", Type: Expense},
	{DefaultModel: DefaultModel{ID: "3"}, Name: "Mua sắm", Color: "#ff6348", Icon: "🛒", Type: Expense},
	{DefaultModel: DefaultModel{ID: "4"}, Name: "Giải trí", Color: "#a55eea", Icon: "🎮", Type: Expense},
	{DefaultModel: DefaultModel{ID: "5"}, Name: "Hóa đơn", Color: "#1e90ff", Icon: "📄", Type: Expense},
	{DefaultModel: DefaultModel{ID: "6"}, Name: "Sức khỏe", Color: "#2ed573", Icon: "💊", Type: Expense},
	{DefaultModel: DefaultModel{ID: "7"}, Name: "Giáo dục", Color: "#00cec9", Icon: "📚", Type: Expense},
	{DefaultModel: DefaultModel{ID: "8"}, Name: "Khác", Color: "#9d9dba", Icon: "📌", Type: Expense},
	{DefaultModel: DefaultModel{ID: "9"}, Name: "Lương", Color: "#00b894", Icon: "💰", Type: Income},
	{DefaultModel: DefaultModel{ID: "10"}, Name: "Thưởng", Color: "#2ed573", Icon: "🎁", Type: Income},
	{DefaultModel: DefaultModel{ID: "11"}, Name: "Đầu tư", Color: "#6c5ce7", Icon: "📈", Type: Income},
	{DefaultModel: DefaultModel{ID: "12"}, Name: "Freelance", Color: "#00cec9", Icon: "💻", Type: Income},
	{DefaultModel: DefaultModel{ID: "13"}, Name: "Thu nhập khác", Color: "#9d9dba", Icon: "💵", Type: Income},
}

// seedDefaultCategories creates the global default categories when
// there are no global categories yet.
func seedDefaultCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Where("user_id IS NULL").Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	defaults := make([]Category, len(DefaultCategories))
	copy(defaults, DefaultCategories)
	return db.Create(&defaults).Error
}
