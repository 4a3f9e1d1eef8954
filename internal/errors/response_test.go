package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ErrorsTestSuite defines the test suite for the error envelope
type ErrorsTestSuite struct {
	suite.Suite
}

// TestErrorsTestSuite runs the test suite
func TestErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Budget Already Exists",
			code:     BudgetAlreadyExists,
			expected: "A budget for this category and month already exists",
		},
		{
			name:     "Goal Not Found",
			code:     GoalNotFound,
			expected: "Savings goal not found",
		},
		{
			name:     "Report Invalid Window",
			code:     ReportInvalidWindow,
			expected: "Report window must cover at least one month",
		},
		{
			name:     "Unknown code falls back",
			code:     ErrorCode("NOPE_999"),
			expected: "An error occurred",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *ErrorsTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(BudgetAlreadyExists))
	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
}

func (s *ErrorsTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(BudgetAlreadyExists, "trace-123")

	s.Equal("BUDGET_002", response.Error.Code)
	s.Equal("A budget for this category and month already exists", response.Error.Message)
	s.Equal("trace-123", response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ErrorsTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(ValidationGeneral, "trace-123",
		WithMessage("month is out of range"),
		WithDetails("month: must be between 1 and 12"))

	s.Equal("month is out of range", response.Error.Message)
	s.Equal([]string{"month: must be between 1 and 12"}, response.Error.Details)
}

func (s *ErrorsTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{"amount": "must be positive"}, "trace-9")

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Contains(response.Error.Details, "amount: must be positive")
}

func (s *ErrorsTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{BudgetAlreadyExists, http.StatusConflict},
		{CategoryAlreadyExists, http.StatusConflict},
		{GoalNotFound, http.StatusNotFound},
		{TransactionNotFound, http.StatusNotFound},
		{ReportInvalidWindow, http.StatusBadRequest},
		{GoalInvalidContribution, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{CategoryReserved, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ErrorsTestSuite) TestToJSON() {
	response := NewErrorResponse(GoalNotFound, "trace-42")

	raw, err := response.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(raw, &decoded))
	s.Equal("GOAL_001", decoded.Error.Code)
	s.Equal("trace-42", decoded.Error.TraceID)
}

func (s *ErrorsTestSuite) TestString() {
	response := NewErrorResponse(GoalNotFound, "trace-42")

	s.Equal("[GOAL_001] Savings goal not found (trace: trace-42)", response.String())
}
