package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles aggregated read-model HTTP requests
type ReportHandler struct {
	reportBuilder services.ReportBuilderInterface
	defaultMonths int
}

// NewReportHandler creates a new report handler. defaultMonths is the
// window used when the caller does not pass months.
func NewReportHandler(reportBuilder services.ReportBuilderInterface, defaultMonths int) *ReportHandler {
	return &ReportHandler{
		reportBuilder: reportBuilder,
		defaultMonths: defaultMonths,
	}
}

// IncomeExpenseReport builds the N-month trend for the caller
// @Summary Income and expense trend report
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param months query int false "Window size in months" default(6)
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/v1/reports/income-expense [get]
func (h *ReportHandler) IncomeExpenseReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	months := h.defaultMonths
	if raw := c.QueryParam("months"); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil {
			return SendError(c, apierrors.ReportInvalidWindow, apierrors.WithDetails("months must be an integer"))
		}
	}

	report, err := h.reportBuilder.BuildReport(userID, months, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrInvalidReportWindow) {
			return SendError(c, apierrors.ReportInvalidWindow)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewReportResponse(report))
}

// Dashboard composes the current month's landing-page payload
// @Summary Dashboard summary
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /api/v1/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dashboard, err := h.reportBuilder.DashboardSummary(userID, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDashboardResponse(dashboard))
}
