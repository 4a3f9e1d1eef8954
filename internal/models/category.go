package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// SavingsCategoryName is the reserved expense category that receives
	// the outflow transaction recorded for every savings goal contribution.
	SavingsCategoryName = "Savings"

	DefaultCategoryColor = "#4361ee"
	DefaultCategoryIcon  = "fa-tag"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidCategoryColor = errors.New("category color must be a hex color code")
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category labels transactions as either an expense or an income bucket.
// Name is the unique display label; color and icon are presentation
// attributes and may change after the category is referenced.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	IsExpense bool      `gorm:"not null" json:"is_expense"`
	Color     string    `gorm:"type:varchar(20);not null;default:'#4361ee'" json:"color"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}
	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	if c.Color != "" && !hexColorPattern.MatchString(c.Color) {
		return ErrInvalidCategoryColor
	}
	return nil
}

// IsReservedSavings reports whether this is the reserved contribution category.
func (c *Category) IsReservedSavings() bool {
	return c.Name == SavingsCategoryName
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
