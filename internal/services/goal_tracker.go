package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	GoalStatusCompleted      = "Completed"
	GoalStatusOnTrack        = "On Track"
	GoalStatusSlightlyBehind = "Slightly Behind"
	GoalStatusBehind         = "Behind"
	GoalStatusOverdue        = "Overdue"
)

var (
	goalBehindThreshold  = decimal.NewFromInt(25)
	goalOnTrackThreshold = decimal.NewFromInt(50)
)

// GoalSummary is a savings goal joined with its derived progress state.
type GoalSummary struct {
	Goal       models.SavingsGoal `json:"goal"`
	Progress   decimal.Decimal    `json:"progress"`
	IsAchieved bool               `json:"is_achieved"`
	Status     string             `json:"status"`
}

// GoalList splits a user's goals by achievement.
type GoalList struct {
	Ongoing   []GoalSummary `json:"ongoing"`
	Completed []GoalSummary `json:"completed"`
}

// ContributionResult carries everything a contribution produced. The
// achievement is nil unless this contribution was the one that reached
// the target.
type ContributionResult struct {
	Goal        *models.SavingsGoal `json:"goal"`
	Transaction *models.Transaction `json:"transaction"`
	Achievement *models.Achievement `json:"achievement,omitempty"`
}

type goalTracker struct {
	goalRepo        repositories.GoalRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	achievementRepo repositories.AchievementRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewGoalTracker(
	goalRepo repositories.GoalRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	achievementRepo repositories.AchievementRepositoryInterface,
	metrics MetricsRecorderInterface,
) GoalTrackerInterface {
	return &goalTracker{
		goalRepo:        goalRepo,
		categoryRepo:    categoryRepo,
		achievementRepo: achievementRepo,
		metrics:         metrics,
	}
}

func (s *goalTracker) CreateGoal(userID uuid.UUID, input GoalInput) (*models.SavingsGoal, error) {
	goal := &models.SavingsGoal{
		UserID:       userID,
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
		TargetDate:   input.TargetDate,
	}

	if err := s.goalRepo.Create(goal); err != nil {
		return nil, err
	}

	slog.Info("savings goal created",
		"user_id", userID,
		"goal_id", goal.ID,
		"name", goal.Name)

	return goal, nil
}

func (s *goalTracker) GetGoal(userID, id uuid.UUID, now time.Time) (*GoalSummary, error) {
	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	summary := SummarizeGoal(goal, now)
	return &summary, nil
}

func (s *goalTracker) ListGoals(userID uuid.UUID, now time.Time) (*GoalList, error) {
	goals, err := s.goalRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	list := &GoalList{
		Ongoing:   make([]GoalSummary, 0, len(goals)),
		Completed: make([]GoalSummary, 0),
	}

	for i := range goals {
		summary := SummarizeGoal(&goals[i], now)
		if summary.IsAchieved {
			list.Completed = append(list.Completed, summary)
		} else {
			list.Ongoing = append(list.Ongoing, summary)
		}
	}

	return list, nil
}

// UpdateGoal replaces the caller-editable fields. Raising the target
// past the saved amount moves the goal back to the ongoing list on the
// next read; the stored completion flag stays so the achievement is
// never re-issued.
func (s *goalTracker) UpdateGoal(userID, id uuid.UUID, input GoalInput) (*models.SavingsGoal, error) {
	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	goal.Name = input.Name
	goal.TargetAmount = input.TargetAmount
	goal.TargetDate = input.TargetDate

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, err
	}

	return s.goalRepo.GetByID(userID, id)
}

func (s *goalTracker) DeleteGoal(userID, id uuid.UUID) error {
	return s.goalRepo.Delete(userID, id)
}

// AddContribution applies a positive amount to a goal. The increment,
// the matching savings outflow in the ledger, and the one-time
// achievement all commit in a single store transaction.
func (s *goalTracker) AddContribution(userID, goalID uuid.UUID, amount decimal.Decimal, now time.Time) (*ContributionResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, repositories.ErrInvalidContributionAmount
	}

	goal, err := s.goalRepo.GetByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	savings, err := s.categoryRepo.EnsureSavingsCategory()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve savings category: %w", err)
	}

	outflow := &models.Transaction{
		UserID:      userID,
		CategoryID:  &savings.ID,
		Amount:      amount,
		Description: fmt.Sprintf("Contribution to %s", goal.Name),
		OccurredAt:  now.UTC(),
		IsExpense:   true,
	}

	badge := &models.Achievement{
		UserID:      userID,
		Name:        fmt.Sprintf("Goal Achieved: %s", goal.Name),
		Description: fmt.Sprintf("Reached the %s savings target", goal.Name),
		Icon:        "fa-trophy",
		EarnedAt:    now.UTC(),
	}

	updated, badgeEarned, err := s.goalRepo.ExecuteContribution(userID, goalID, amount, outflow, badge)
	if err != nil {
		slog.Error("contribution failed",
			"user_id", userID,
			"goal_id", goalID,
			"error", err)
		return nil, err
	}

	s.metrics.RecordContribution(badgeEarned)

	result := &ContributionResult{
		Goal:        updated,
		Transaction: outflow,
	}
	if badgeEarned {
		result.Achievement = badge
		slog.Info("savings goal achieved",
			"user_id", userID,
			"goal_id", goalID,
			"goal", updated.Name)
	}

	slog.Info("contribution recorded",
		"user_id", userID,
		"goal_id", goalID,
		"amount", amount.String(),
		"achievement_earned", badgeEarned)

	return result, nil
}

func (s *goalTracker) ListAchievements(userID uuid.UUID) ([]models.Achievement, error) {
	return s.achievementRepo.GetByUserID(userID)
}

// SummarizeGoal derives progress and status from a goal snapshot at a
// given instant. Classification order matters: a completed goal wins
// over everything (the stored flag counts, so a raised target keeps the
// status), then goals without a deadline use the single 25 percent
// band, then a passed deadline marks the goal overdue, and only then do
// the progress bands apply.
func SummarizeGoal(goal *models.SavingsGoal, now time.Time) GoalSummary {
	progress := decimal.Zero
	if goal.TargetAmount.GreaterThan(decimal.Zero) {
		progress = goal.CurrentAmount.Div(goal.TargetAmount).Mul(oneHundred).Round(0)
	}

	achieved := goal.TargetAmount.GreaterThan(decimal.Zero) &&
		goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)

	return GoalSummary{
		Goal:       *goal,
		Progress:   progress,
		IsAchieved: achieved,
		Status:     classifyGoal(goal, progress, achieved, now),
	}
}

func classifyGoal(goal *models.SavingsGoal, progress decimal.Decimal, achieved bool, now time.Time) string {
	if goal.IsCompleted || achieved {
		return GoalStatusCompleted
	}

	if goal.TargetDate == nil {
		if progress.GreaterThanOrEqual(goalBehindThreshold) {
			return GoalStatusOnTrack
		}
		return GoalStatusBehind
	}

	if now.After(*goal.TargetDate) {
		return GoalStatusOverdue
	}

	switch {
	case progress.GreaterThanOrEqual(goalOnTrackThreshold):
		return GoalStatusOnTrack
	case progress.GreaterThanOrEqual(goalBehindThreshold):
		return GoalStatusSlightlyBehind
	default:
		return GoalStatusBehind
	}
}
