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

// BudgetHandler handles monthly budget HTTP requests
type BudgetHandler struct {
	budgetTracker services.BudgetTrackerInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetTracker services.BudgetTrackerInterface) *BudgetHandler {
	return &BudgetHandler{budgetTracker: budgetTracker}
}

// ListBudgets retrieves a period's budgets with their spend summaries
// @Summary List budgets for a period
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query int false "Month 1-12 (defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Success 200 {object} dto.ListBudgetsResponse
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	month := getIntParam(c, "month", 0)
	year := getIntParam(c, "year", 0)

	summaries, err := h.budgetTracker.ListBudgets(userID, month, year, time.Now().UTC())
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetListResponse(summaries))
}

// CreateBudget sets a spending limit for one category and month
// @Summary Create budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget payload"
// @Success 201 {object} dto.BudgetResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, apierrors.BudgetInvalidAmount)
	}

	budget, err := h.budgetTracker.CreateBudget(userID, req.CategoryID, req.Month, req.Year, amount)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewBudgetOnlyResponse(budget))
}

// UpdateBudget changes the amount of an existing budget
// @Summary Update budget amount
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Budget ID"
// @Param request body dto.UpdateBudgetRequest true "Budget payload"
// @Success 200 {object} dto.BudgetResponse
// @Router /api/v1/budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, apierrors.BudgetInvalidAmount)
	}

	budget, err := h.budgetTracker.UpdateBudget(userID, id, amount)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetOnlyResponse(budget))
}

// DeleteBudget removes a budget owned by the caller
// @Summary Delete budget
// @Tags Budgets
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Success 204
// @Router /api/v1/budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	if err := h.budgetTracker.DeleteBudget(userID, id); err != nil {
		return h.mapError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *BudgetHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrBudgetNotFound):
		return SendError(c, apierrors.BudgetNotFound)
	case errors.Is(err, repositories.ErrDuplicateBudget):
		return SendError(c, apierrors.BudgetAlreadyExists)
	case errors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, apierrors.BudgetInvalidCategory)
	case errors.Is(err, services.ErrCategoryNotExpense):
		return SendError(c, apierrors.BudgetInvalidCategory)
	case errors.Is(err, models.ErrInvalidMonth), errors.Is(err, models.ErrInvalidYear):
		return SendError(c, apierrors.BudgetInvalidPeriod)
	case errors.Is(err, models.ErrInvalidBudgetAmount):
		return SendError(c, apierrors.BudgetInvalidAmount)
	default:
		return SendSystemError(c, err)
	}
}
