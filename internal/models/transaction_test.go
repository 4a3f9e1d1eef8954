package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense transaction",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.NewFromFloat(42.50),
				Description: "Groceries at the corner shop",
				OccurredAt:  time.Now(),
				IsExpense:   true,
			},
		},
		{
			name: "valid income transaction without category",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.NewFromFloat(1500.00),
				Description: "Monthly salary",
				OccurredAt:  time.Now(),
				IsExpense:   false,
			},
		},
		{
			name: "missing owner",
			transaction: Transaction{
				Amount:      decimal.NewFromFloat(10),
				Description: "Coffee",
			},
			wantErr: ErrTransactionUserRequired,
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.Zero,
				Description: "Nothing",
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.NewFromFloat(-5),
				Description: "Refund recorded the wrong way",
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "blank description",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.NewFromFloat(5),
				Description: "   ",
			},
			wantErr: ErrDescriptionRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	expense := Transaction{Amount: decimal.NewFromFloat(25.00), IsExpense: true}
	income := Transaction{Amount: decimal.NewFromFloat(25.00), IsExpense: false}

	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromFloat(-25.00)))
	assert.True(t, income.SignedAmount().Equal(decimal.NewFromFloat(25.00)))
}

func TestTransaction_CategoryName(t *testing.T) {
	var txn Transaction
	assert.Empty(t, txn.CategoryName())

	txn.Category = &Category{Name: "Food"}
	assert.Equal(t, "Food", txn.CategoryName())
}
