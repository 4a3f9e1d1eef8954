package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrNameRequired  = errors.New("display name is required")
)

// User identifies the owner of ledger records. Authentication and
// credential management live outside this service; the user row exists
// so that every Transaction, Budget and SavingsGoal is scoped to
// exactly one owner.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName string    `gorm:"type:varchar(100);not null" json:"display_name"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmailRequired
	}
	if strings.TrimSpace(u.DisplayName) == "" {
		return ErrNameRequired
	}
	return nil
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
