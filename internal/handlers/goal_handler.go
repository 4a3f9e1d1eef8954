package handlers

import (
	"errors"
	"net/http"
	"time"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalTracker services.GoalTrackerInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalTracker services.GoalTrackerInterface) *GoalHandler {
	return &GoalHandler{goalTracker: goalTracker}
}

// ListGoals retrieves the caller's goals split by achievement
// @Summary List savings goals
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListGoalsResponse
// @Router /api/v1/goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	list, err := h.goalTracker.ListGoals(userID, time.Now().UTC())
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGoalListResponse(list))
}

// GetGoal retrieves one goal with its derived progress
// @Summary Get savings goal
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/v1/goals/{id} [get]
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	summary, err := h.goalTracker.GetGoal(userID, id, time.Now().UTC())
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGoalResponse(summary))
}

// CreateGoal opens a savings goal for the caller
// @Summary Create savings goal
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal payload"
// @Success 201 {object} dto.GoalResponse
// @Router /api/v1/goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateGoalRequest
	input, err := h.bindInput(c, &req)
	if err != nil {
		return err
	}

	goal, err := h.goalTracker.CreateGoal(userID, *input)
	if err != nil {
		return h.mapError(c, err)
	}

	summary := services.SummarizeGoal(goal, time.Now().UTC())
	return c.JSON(http.StatusCreated, dto.NewGoalResponse(&summary))
}

// UpdateGoal replaces the editable fields of a goal
// @Summary Update savings goal
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.UpdateGoalRequest true "Goal payload"
// @Success 200 {object} dto.GoalResponse
// @Router /api/v1/goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	var req dto.UpdateGoalRequest
	input, err := h.bindInput(c, &req)
	if err != nil {
		return err
	}

	goal, err := h.goalTracker.UpdateGoal(userID, id, *input)
	if err != nil {
		return h.mapError(c, err)
	}

	summary := services.SummarizeGoal(goal, time.Now().UTC())
	return c.JSON(http.StatusOK, dto.NewGoalResponse(&summary))
}

// DeleteGoal removes a goal owned by the caller
// @Summary Delete savings goal
// @Tags Goals
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 204
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	if err := h.goalTracker.DeleteGoal(userID, id); err != nil {
		return h.mapError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddContribution records money toward a goal and the matching ledger
// entry, returning the badge when the goal is first reached.
// @Summary Contribute toward a savings goal
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.ContributionRequest true "Contribution payload"
// @Success 201 {object} dto.ContributionResponse
// @Router /api/v1/goals/{id}/contributions [post]
func (h *GoalHandler) AddContribution(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	var req dto.ContributionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, apierrors.GoalInvalidContribution)
	}

	now := time.Now().UTC()
	result, err := h.goalTracker.AddContribution(userID, goalID, amount, now)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewContributionResponse(result, now))
}

// ListAchievements retrieves the badges the caller has earned
// @Summary List achievements
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.AchievementResponse
// @Router /api/v1/achievements [get]
func (h *GoalHandler) ListAchievements(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	achievements, err := h.goalTracker.ListAchievements(userID)
	if err != nil {
		return h.mapError(c, err)
	}

	items := make([]dto.AchievementResponse, 0, len(achievements))
	for i := range achievements {
		items = append(items, dto.NewAchievementResponse(&achievements[i]))
	}

	return c.JSON(http.StatusOK, items)
}

func (h *GoalHandler) bindInput(c echo.Context, req *dto.CreateGoalRequest) (*services.GoalInput, error) {
	if err := c.Bind(req); err != nil {
		return nil, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return nil, err
	}

	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return nil, SendError(c, apierrors.GoalInvalidTarget)
	}

	return &services.GoalInput{
		Name:         req.Name,
		TargetAmount: target,
		TargetDate:   req.TargetDate,
	}, nil
}

func (h *GoalHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrGoalNotFound):
		return SendError(c, apierrors.GoalNotFound)
	case errors.Is(err, repositories.ErrInvalidContributionAmount):
		return SendError(c, apierrors.GoalInvalidContribution)
	case errors.Is(err, models.ErrInvalidTargetAmount), errors.Is(err, models.ErrGoalNameRequired):
		return SendError(c, apierrors.GoalInvalidTarget)
	default:
		return SendSystemError(c, err)
	}
}
