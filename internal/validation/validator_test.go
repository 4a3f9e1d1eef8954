package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type budgetPayload struct {
	Amount string `json:"amount" validate:"required,positive_amount"`
	Month  int    `json:"month" validate:"budget_month"`
	Year   int    `json:"year" validate:"budget_year"`
}

type categoryPayload struct {
	Color string `json:"color" validate:"hex_color"`
}

func TestValidator_PositiveAmount(t *testing.T) {
	v := NewValidator().GetValidate()

	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"positive decimal", "325.50", false},
		{"zero", "0", true},
		{"negative", "-10", true},
		{"not a number", "lots", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(budgetPayload{Amount: tt.amount, Month: 6, Year: 2025})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_BudgetPeriod(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(budgetPayload{Amount: "100", Month: 12, Year: 9999}))
	assert.Error(t, v.Struct(budgetPayload{Amount: "100", Month: 13, Year: 2025}))
	assert.Error(t, v.Struct(budgetPayload{Amount: "100", Month: 0, Year: 2025}))
	assert.Error(t, v.Struct(budgetPayload{Amount: "100", Month: 6, Year: 1969}))
}

func TestValidator_HexColor(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(categoryPayload{Color: "#4361ee"}))
	assert.NoError(t, v.Struct(categoryPayload{Color: ""}), "color is optional")
	assert.Error(t, v.Struct(categoryPayload{Color: "#zzz999"}))
	assert.Error(t, v.Struct(categoryPayload{Color: "4361ee"}))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
