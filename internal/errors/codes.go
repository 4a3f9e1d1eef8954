package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthUnknownUser        ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionBadCategory   ErrorCode = "TRANSACTION_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryReserved      ErrorCode = "CATEGORY_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound        ErrorCode = "BUDGET_001"
	BudgetAlreadyExists   ErrorCode = "BUDGET_002"
	BudgetInvalidCategory ErrorCode = "BUDGET_003"
	BudgetInvalidPeriod   ErrorCode = "BUDGET_004"
	BudgetInvalidAmount   ErrorCode = "BUDGET_005"
)

// Savings goal error codes (GOAL_*)
const (
	GoalNotFound            ErrorCode = "GOAL_001"
	GoalInvalidTarget       ErrorCode = "GOAL_002"
	GoalInvalidContribution ErrorCode = "GOAL_003"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidWindow ErrorCode = "REPORT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthUnknownUser:        "Token does not resolve to a known user",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must be positive",
	TransactionBadCategory:   "Transaction references an unknown category",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryReserved:      "This category is system managed and cannot be changed",

	// Budget errors
	BudgetNotFound:        "Budget not found",
	BudgetAlreadyExists:   "A budget for this category and month already exists",
	BudgetInvalidCategory: "Budgets require an expense category",
	BudgetInvalidPeriod:   "Budget month or year is out of range",
	BudgetInvalidAmount:   "Budget amount must be positive",

	// Savings goal errors
	GoalNotFound:            "Savings goal not found",
	GoalInvalidTarget:       "Goal target amount must be positive",
	GoalInvalidContribution: "Contribution amount must be positive",

	// Report errors
	ReportInvalidWindow: "Report window must cover at least one month",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
