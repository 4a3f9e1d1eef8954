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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles ledger HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions retrieves a filtered page of the caller's ledger
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Filter by start date (RFC 3339)"
// @Param endDate query string false "Filter by end date (RFC 3339)"
// @Param type query string false "Filter by direction" Enums(expense, income)
// @Param categoryId query string false "Filter by category ID"
// @Param offset query int false "Page offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	filters, err := h.buildFilters(c, userID)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	transactions, total, err := h.transactionService.ListTransactions(*filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions, total, filters.Offset, filters.Limit))
}

// GetTransaction retrieves one ledger entry owned by the caller
// @Summary Get transaction
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	transaction, err := h.transactionService.GetTransaction(userID, id)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// CreateTransaction records a ledger entry
// @Summary Create transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} dto.TransactionResponse
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	input, err := h.bindInput(c, &req)
	if err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(userID, *input)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction replaces the editable fields of a ledger entry
// @Summary Update transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Transaction payload"
// @Success 200 {object} dto.TransactionResponse
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	var req dto.UpdateTransactionRequest
	input, err := h.bindInput(c, &req)
	if err != nil {
		return err
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, id, *input)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction removes a ledger entry owned by the caller
// @Summary Delete transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	if err := h.transactionService.DeleteTransaction(userID, id); err != nil {
		return h.mapError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TransactionHandler) bindInput(c echo.Context, req *dto.CreateTransactionRequest) (*services.TransactionInput, error) {
	if err := c.Bind(req); err != nil {
		return nil, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, SendError(c, apierrors.TransactionInvalidAmount)
	}

	return &services.TransactionInput{
		Amount:      amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		OccurredAt:  req.OccurredAt,
		IsExpense:   req.IsExpense,
	}, nil
}

func (h *TransactionHandler) buildFilters(c echo.Context, userID uuid.UUID) (*models.TransactionFilters, error) {
	filters := &models.TransactionFilters{
		UserID: userID,
		Offset: getIntParam(c, "offset", 0),
		Limit:  getIntParam(c, "limit", defaultPageLimit),
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	if raw := c.QueryParam("startDate"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = &start
	}

	if raw := c.QueryParam("endDate"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = &end
	}

	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		filters.CategoryID = &categoryID
	}

	switch c.QueryParam("type") {
	case "expense":
		isExpense := true
		filters.IsExpense = &isExpense
	case "income":
		isExpense := false
		filters.IsExpense = &isExpense
	}

	return filters, nil
}

func (h *TransactionHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, models.ErrInvalidAmount):
		return SendError(c, apierrors.TransactionInvalidAmount)
	case errors.Is(err, services.ErrUnknownCategory):
		return SendError(c, apierrors.TransactionBadCategory)
	default:
		return SendSystemError(c, err)
	}
}
