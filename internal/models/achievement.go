package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAchievementNameRequired = errors.New("achievement name is required")

// Achievement is the badge emitted when a savings goal is first reached.
// It is an append-only side-effect record; nothing in the engine reads
// it back for computation.
type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	EarnedAt    time.Time `gorm:"not null" json:"earned_at"`
}

// BeforeCreate hook for Achievement
func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.EarnedAt.IsZero() {
		a.EarnedAt = time.Now().UTC()
	}
	return a.Validate()
}

// Validate validates the achievement fields
func (a *Achievement) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("achievement owner is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrAchievementNameRequired
	}
	return nil
}

// TableName returns the table name for Achievement
func (a *Achievement) TableName() string {
	return "achievements"
}
