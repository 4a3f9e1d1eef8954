package dto

import (
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
)

// CreateBudgetRequest is the payload for setting a monthly budget
type CreateBudgetRequest struct {
	CategoryID uuid.UUID `json:"categoryId" validate:"required"`
	Month      int       `json:"month" validate:"required,budget_month"`
	Year       int       `json:"year" validate:"required,budget_year"`
	Amount     string    `json:"amount" validate:"required,positive_amount"`
}

// UpdateBudgetRequest changes a budget's amount; the key fields are fixed
type UpdateBudgetRequest struct {
	Amount string `json:"amount" validate:"required,positive_amount"`
}

// BudgetResponse represents a budget joined with its period's spend
type BudgetResponse struct {
	ID             uuid.UUID `json:"id"`
	CategoryID     uuid.UUID `json:"categoryId"`
	CategoryName   string    `json:"categoryName,omitempty"`
	Month          int       `json:"month"`
	Year           int       `json:"year"`
	Amount         string    `json:"amount"`
	Spent          string    `json:"spent"`
	Remaining      string    `json:"remaining"`
	PercentageUsed string    `json:"percentageUsed"`
	ProgressTier   string    `json:"progressTier"`
}

// ListBudgetsResponse represents a period's budgets with alert shortcuts
type ListBudgetsResponse struct {
	Budgets  []BudgetResponse `json:"budgets"`
	Warning  []BudgetResponse `json:"warning"`
	Exceeded []BudgetResponse `json:"exceeded"`
}

// NewBudgetResponse maps a summary to its API representation
func NewBudgetResponse(summary *services.BudgetSummary) BudgetResponse {
	categoryName := ""
	if summary.Budget.Category.ID != uuid.Nil {
		categoryName = summary.Budget.Category.Name
	}

	return BudgetResponse{
		ID:             summary.Budget.ID,
		CategoryID:     summary.Budget.CategoryID,
		CategoryName:   categoryName,
		Month:          summary.Budget.Month,
		Year:           summary.Budget.Year,
		Amount:         summary.Budget.Amount.String(),
		Spent:          summary.Spent.String(),
		Remaining:      summary.Remaining.String(),
		PercentageUsed: summary.PercentageUsed.String(),
		ProgressTier:   summary.ProgressTier,
	}
}

// NewBudgetOnlyResponse maps a bare budget, used right after a write
// when no spend summary has been computed.
func NewBudgetOnlyResponse(budget *models.Budget) BudgetResponse {
	categoryName := ""
	if budget.Category.ID != uuid.Nil {
		categoryName = budget.Category.Name
	}

	return BudgetResponse{
		ID:             budget.ID,
		CategoryID:     budget.CategoryID,
		CategoryName:   categoryName,
		Month:          budget.Month,
		Year:           budget.Year,
		Amount:         budget.Amount.String(),
		Spent:          "0",
		Remaining:      budget.Amount.String(),
		PercentageUsed: "0",
		ProgressTier:   services.ProgressTierNormal,
	}
}

// NewBudgetListResponse maps summaries plus the derived alert lists
func NewBudgetListResponse(summaries []services.BudgetSummary) ListBudgetsResponse {
	response := ListBudgetsResponse{
		Budgets:  make([]BudgetResponse, 0, len(summaries)),
		Warning:  make([]BudgetResponse, 0),
		Exceeded: make([]BudgetResponse, 0),
	}

	for i := range summaries {
		item := NewBudgetResponse(&summaries[i])
		response.Budgets = append(response.Budgets, item)

		switch item.ProgressTier {
		case services.ProgressTierWarning:
			response.Warning = append(response.Warning, item)
		case services.ProgressTierDanger:
			response.Exceeded = append(response.Exceeded, item)
		}
	}

	return response
}
