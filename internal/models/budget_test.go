package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudget_Validate(t *testing.T) {
	validUserID := uuid.New()
	validCategoryID := uuid.New()

	base := Budget{
		UserID:     validUserID,
		CategoryID: validCategoryID,
		Amount:     decimal.NewFromInt(300),
		Month:      6,
		Year:       2026,
	}

	t.Run("valid budget", func(t *testing.T) {
		b := base
		assert.NoError(t, b.Validate())
	})

	t.Run("missing owner", func(t *testing.T) {
		b := base
		b.UserID = uuid.Nil
		assert.ErrorIs(t, b.Validate(), ErrBudgetUserRequired)
	})

	t.Run("missing category", func(t *testing.T) {
		b := base
		b.CategoryID = uuid.Nil
		assert.ErrorIs(t, b.Validate(), ErrBudgetCategoryRequired)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		b := base
		b.Amount = decimal.Zero
		assert.ErrorIs(t, b.Validate(), ErrInvalidBudgetAmount)
	})

	t.Run("month below range", func(t *testing.T) {
		b := base
		b.Month = 0
		assert.ErrorIs(t, b.Validate(), ErrInvalidMonth)
	})

	t.Run("month above range", func(t *testing.T) {
		b := base
		b.Month = 13
		assert.ErrorIs(t, b.Validate(), ErrInvalidMonth)
	})

	t.Run("year out of range", func(t *testing.T) {
		b := base
		b.Year = 1812
		assert.ErrorIs(t, b.Validate(), ErrInvalidYear)
	})
}
