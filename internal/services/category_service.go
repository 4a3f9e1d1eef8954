package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var ErrReservedCategory = errors.New("category name is reserved")

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(name, color, icon string, isExpense bool) (*models.Category, error) {
	category := &models.Category{
		Name:      name,
		Color:     color,
		Icon:      icon,
		IsExpense: isExpense,
	}

	if category.IsReservedSavings() {
		return nil, ErrReservedCategory
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCategory) {
			return nil, err
		}
		slog.Error("failed to create category",
			"name", name,
			"error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("category created",
		"category_id", category.ID,
		"name", category.Name,
		"is_expense", category.IsExpense)

	return category, nil
}

func (s *categoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

func (s *categoryService) ListCategories(isExpense *bool) ([]models.Category, error) {
	if isExpense == nil {
		return s.categoryRepo.GetAll()
	}
	return s.categoryRepo.GetByType(*isExpense)
}

func (s *categoryService) UpdateCategory(id uuid.UUID, name, color, icon string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// The seeded savings category is the anchor for goal contributions
	// and cannot be renamed out from under them.
	if category.IsReservedSavings() && name != models.SavingsCategoryName {
		return nil, ErrReservedCategory
	}

	category.Name = name
	category.Color = color
	category.Icon = icon

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}

	if category.IsReservedSavings() {
		return ErrReservedCategory
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}

	slog.Info("category deleted",
		"category_id", id,
		"name", category.Name)

	return nil
}
