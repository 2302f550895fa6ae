package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a cashier or admin account on the terminal
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"size:255;unique;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         enum.Role `gorm:"size:20;not null;default:'cashier'" json:"role"`
	DisplayName  string    `gorm:"size:255;not null" json:"display_name"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
