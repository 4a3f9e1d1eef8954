package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles catalog HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories retrieves the shared category catalog
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param type query string false "Filter by direction" Enums(expense, income)
// @Success 200 {array} dto.CategoryResponse
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	var isExpense *bool
	switch c.QueryParam("type") {
	case "expense":
		v := true
		isExpense = &v
	case "income":
		v := false
		isExpense = &v
	}

	categories, err := h.categoryService.ListCategories(isExpense)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// GetCategory retrieves a single category by ID
// @Summary Get category
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// CreateCategory adds a category to the shared catalog
// @Summary Create category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category payload"
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Color, req.Icon, req.IsExpense)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// UpdateCategory replaces the editable fields of a category
// @Summary Update category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Category payload"
// @Success 200 {object} dto.CategoryResponse
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name, req.Color, req.Icon)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// DeleteCategory removes a category from the catalog
// @Summary Delete category
// @Tags Categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id must be a UUID"))
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		return h.mapError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, apierrors.CategoryNotFound)
	case errors.Is(err, repositories.ErrDuplicateCategory):
		return SendError(c, apierrors.CategoryAlreadyExists)
	case errors.Is(err, services.ErrReservedCategory):
		return SendError(c, apierrors.CategoryReserved)
	default:
		return SendSystemError(c, err)
	}
}
