package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionUserRequired = errors.New("transaction owner is required")
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrDescriptionRequired     = errors.New("transaction description is required")
)

// Transaction is one dated, signed ledger record. The amount is always a
// non-negative decimal; IsExpense carries the sign and is authoritative
// even when it disagrees with the referenced category's IsExpense flag.
// CategoryID is nullable so that deleting a category keeps its history.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	IsExpense   bool            `gorm:"not null" json:"is_expense"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.OccurredAt.IsZero() {
		t.OccurredAt = time.Now().UTC()
	}
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrTransactionUserRequired
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// SignedAmount returns the amount with the expense sign applied,
// negative for expenses and positive for income.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// CategoryName returns the display label of the referenced category, or
// an empty string when the category reference is nil.
func (t *Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
