package dto

import (
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// CreateCategoryRequest is the payload for adding a catalog category
type CreateCategoryRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Color     string `json:"color" validate:"hex_color"`
	Icon      string `json:"icon" validate:"max=50"`
	IsExpense bool   `json:"isExpense"`
}

// UpdateCategoryRequest replaces the editable fields of a category
type UpdateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"hex_color"`
	Icon  string `json:"icon" validate:"max=50"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon,omitempty"`
	IsExpense bool      `json:"isExpense"`
}

// NewCategoryResponse maps a model to its API representation
func NewCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		IsExpense: category.IsExpense,
	}
}

// NewCategoryListResponse maps a catalog listing
func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, NewCategoryResponse(&categories[i]))
	}
	return items
}
