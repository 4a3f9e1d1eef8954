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
	ErrGoalUserRequired     = errors.New("goal owner is required")
	ErrGoalNameRequired     = errors.New("goal name is required")
	ErrInvalidTargetAmount  = errors.New("target amount must be positive")
	ErrNegativeGoalProgress = errors.New("current amount cannot be negative")
)

// SavingsGoal tracks money set aside toward a named target. CurrentAmount
// grows through contributions; IsCompleted is the stored flag that is set
// exactly once, when a contribution first pushes CurrentAmount to the
// target. Whether the goal is achieved right now is always recomputed
// from the amounts, so raising the target after completion leaves
// IsCompleted untouched but reports the goal as ongoing again.
type SavingsGoal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	TargetDate    *time.Time      `json:"target_date,omitempty"`
	IsCompleted   bool            `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for SavingsGoal
func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return g.Validate()
}

// BeforeUpdate hook for SavingsGoal
func (g *SavingsGoal) BeforeUpdate(tx *gorm.DB) error {
	return g.Validate()
}

// Validate validates the savings goal fields
func (g *SavingsGoal) Validate() error {
	if g.UserID == uuid.Nil {
		return ErrGoalUserRequired
	}
	if strings.TrimSpace(g.Name) == "" {
		return ErrGoalNameRequired
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTargetAmount
	}
	if g.CurrentAmount.IsNegative() {
		return ErrNegativeGoalProgress
	}
	return nil
}

// TableName returns the table name for SavingsGoal
func (g *SavingsGoal) TableName() string {
	return "savings_goals"
}
