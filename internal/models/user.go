package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account that owns all other resources.
type User struct {
	DefaultModel
	Name     string `json:"name" example:"Nguyễn Văn A"`
	Email    string `json:"email" gorm:"uniqueIndex;not null" example:"a@example.com"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	return nil
}
