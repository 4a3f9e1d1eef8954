package dto

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
)

// CreateGoalRequest is the payload for opening a savings goal
type CreateGoalRequest struct {
	Name         string     `json:"name" validate:"required,max=100"`
	TargetAmount string     `json:"targetAmount" validate:"required,positive_amount"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
}

// UpdateGoalRequest replaces the editable fields of a goal
type UpdateGoalRequest = CreateGoalRequest

// ContributionRequest is the payload for contributing toward a goal
type ContributionRequest struct {
	Amount string `json:"amount" validate:"required,positive_amount"`
}

// GoalResponse represents a savings goal with its derived progress
type GoalResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  string     `json:"targetAmount"`
	CurrentAmount string     `json:"currentAmount"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	Progress      string     `json:"progress"`
	IsAchieved    bool       `json:"isAchieved"`
	Status        string     `json:"status"`
}

// ListGoalsResponse splits goals by achievement
type ListGoalsResponse struct {
	Ongoing   []GoalResponse `json:"ongoing"`
	Completed []GoalResponse `json:"completed"`
}

// AchievementResponse represents an earned badge
type AchievementResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// ContributionResponse carries everything a contribution produced
type ContributionResponse struct {
	Goal        GoalResponse         `json:"goal"`
	Transaction TransactionResponse  `json:"transaction"`
	Achievement *AchievementResponse `json:"achievement,omitempty"`
}

// NewGoalResponse maps a summary to its API representation
func NewGoalResponse(summary *services.GoalSummary) GoalResponse {
	return GoalResponse{
		ID:            summary.Goal.ID,
		Name:          summary.Goal.Name,
		TargetAmount:  summary.Goal.TargetAmount.String(),
		CurrentAmount: summary.Goal.CurrentAmount.String(),
		TargetDate:    summary.Goal.TargetDate,
		Progress:      summary.Progress.String(),
		IsAchieved:    summary.IsAchieved,
		Status:        summary.Status,
	}
}

// NewGoalListResponse maps a split goal listing
func NewGoalListResponse(list *services.GoalList) ListGoalsResponse {
	response := ListGoalsResponse{
		Ongoing:   make([]GoalResponse, 0, len(list.Ongoing)),
		Completed: make([]GoalResponse, 0, len(list.Completed)),
	}

	for i := range list.Ongoing {
		response.Ongoing = append(response.Ongoing, NewGoalResponse(&list.Ongoing[i]))
	}
	for i := range list.Completed {
		response.Completed = append(response.Completed, NewGoalResponse(&list.Completed[i]))
	}

	return response
}

// NewAchievementResponse maps an earned badge
func NewAchievementResponse(achievement *models.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          achievement.ID,
		Name:        achievement.Name,
		Description: achievement.Description,
		Icon:        achievement.Icon,
		EarnedAt:    achievement.EarnedAt,
	}
}

// NewContributionResponse maps a contribution result, classifying the
// updated goal at the supplied instant.
func NewContributionResponse(result *services.ContributionResult, now time.Time) ContributionResponse {
	summary := services.SummarizeGoal(result.Goal, now)

	response := ContributionResponse{
		Goal:        NewGoalResponse(&summary),
		Transaction: NewTransactionResponse(result.Transaction),
	}

	if result.Achievement != nil {
		badge := NewAchievementResponse(result.Achievement)
		response.Achievement = &badge
	}

	return response
}
