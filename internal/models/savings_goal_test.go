package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSavingsGoal_Validate(t *testing.T) {
	base := SavingsGoal{
		UserID:        uuid.New(),
		Name:          "Emergency Fund",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(200),
	}

	t.Run("valid goal", func(t *testing.T) {
		g := base
		assert.NoError(t, g.Validate())
	})

	t.Run("missing owner", func(t *testing.T) {
		g := base
		g.UserID = uuid.Nil
		assert.ErrorIs(t, g.Validate(), ErrGoalUserRequired)
	})

	t.Run("blank name", func(t *testing.T) {
		g := base
		g.Name = "  "
		assert.ErrorIs(t, g.Validate(), ErrGoalNameRequired)
	})

	t.Run("zero target", func(t *testing.T) {
		g := base
		g.TargetAmount = decimal.Zero
		assert.ErrorIs(t, g.Validate(), ErrInvalidTargetAmount)
	})

	t.Run("negative current amount", func(t *testing.T) {
		g := base
		g.CurrentAmount = decimal.NewFromInt(-1)
		assert.ErrorIs(t, g.Validate(), ErrNegativeGoalProgress)
	})

	t.Run("overshoot past target is representable", func(t *testing.T) {
		g := base
		g.CurrentAmount = decimal.NewFromInt(1500)
		assert.NoError(t, g.Validate())
	})
}

func TestCategory_Validate(t *testing.T) {
	t.Run("valid category", func(t *testing.T) {
		c := Category{Name: "Food", Color: "#ff6b6b", IsExpense: true}
		assert.NoError(t, c.Validate())
	})

	t.Run("blank name", func(t *testing.T) {
		c := Category{Color: "#ff6b6b"}
		assert.ErrorIs(t, c.Validate(), ErrCategoryNameRequired)
	})

	t.Run("malformed color", func(t *testing.T) {
		c := Category{Name: "Food", Color: "red"}
		assert.ErrorIs(t, c.Validate(), ErrInvalidCategoryColor)
	})

	t.Run("reserved savings category", func(t *testing.T) {
		c := Category{Name: SavingsCategoryName}
		assert.True(t, c.IsReservedSavings())
	})
}
