package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/database"
	apierrors "fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports whether the service and its database are reachable
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} handlers.ErrorResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.db.Health(); err != nil {
		return SendError(c, apierrors.SystemServiceUnavailable, apierrors.WithDetails("database unreachable"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
