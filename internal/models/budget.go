package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBudgetUserRequired     = errors.New("budget owner is required")
	ErrBudgetCategoryRequired = errors.New("budget category is required")
	ErrInvalidBudgetAmount    = errors.New("budget amount must be positive")
	ErrInvalidMonth           = errors.New("month must be between 1 and 12")
	ErrInvalidYear            = errors.New("year is out of range")
)

// Budget is a spending ceiling for one expense category in one calendar
// month. At most one budget may exist per (user, category, month, year);
// the composite unique index enforces the key at the store level so
// concurrent creates cannot both succeed. Spent, remaining and
// percentage-used are always derived at read time, never stored.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_key" json:"user_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_key" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Month      int             `gorm:"not null;uniqueIndex:idx_budget_key" json:"month"`
	Year       int             `gorm:"not null;uniqueIndex:idx_budget_key" json:"year"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrBudgetUserRequired
	}
	if b.CategoryID == uuid.Nil {
		return ErrBudgetCategoryRequired
	}
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}
	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidMonth
	}
	if b.Year < 1970 || b.Year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
