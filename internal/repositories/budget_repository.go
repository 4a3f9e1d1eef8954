package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound  = errors.New("budget not found")
	ErrDuplicateBudget = errors.New("budget already exists for this category and month")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

// Create creates a new budget. The composite unique index on
// (user_id, category_id, month, year) decides duplicates, so two
// concurrent creates for the same key cannot both succeed.
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateBudget
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget scoped to its owner
func (r *budgetRepository) GetByID(userID, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// GetByMonthYear retrieves all of a user's budgets for one calendar month
func (r *budgetRepository) GetByMonthYear(userID uuid.UUID, month, year int) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Preload("Category").
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// Update changes a budget's ceiling amount. Derived figures are always
// recomputed on read, so nothing else needs touching.
func (r *budgetRepository) Update(budget *models.Budget) error {
	result := r.db.Model(budget).
		Where("user_id = ?", budget.UserID).
		Update("amount", budget.Amount)

	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget scoped to its owner
func (r *budgetRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Delete(&models.Budget{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
