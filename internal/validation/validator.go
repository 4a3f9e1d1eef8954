package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("budget_month", validateBudgetMonth)
	_ = v.RegisterValidation("budget_year", validateBudgetYear)
	_ = v.RegisterValidation("hex_color", validateHexColor)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validatePositiveAmount validates that a monetary amount is greater
// than 0. Amounts arrive as strings so decimals survive JSON intact.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		amount, err := decimal.NewFromString(fl.Field().String())
		return err == nil && amount.GreaterThan(decimal.Zero)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validateBudgetMonth validates a calendar month number
func validateBudgetMonth(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 1 && month <= 12
}

// validateBudgetYear validates a budget year within the supported range
func validateBudgetYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 1970 && year <= 9999
}

// validateHexColor validates a six digit hex color like #4361ee
func validateHexColor(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if color == "" {
		return true
	}

	matched, _ := regexp.MatchString(`^#[0-9a-fA-F]{6}$`, color)
	return matched
}
