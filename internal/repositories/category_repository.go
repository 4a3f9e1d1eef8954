package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category with this name already exists")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCategory
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetByName retrieves a category by its unique display label
func (r *categoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// GetAll retrieves all categories ordered by name
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByType retrieves expense or income categories
func (r *categoryRepository) GetByType(isExpense bool) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("is_expense = ?", isExpense).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories by type: %w", err)
	}
	return categories, nil
}

// Update updates a category's display attributes
func (r *categoryRepository) Update(category *models.Category) error {
	result := r.db.Model(category).
		Updates(map[string]interface{}{
			"name":  category.Name,
			"color": category.Color,
			"icon":  category.Icon,
		})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCategory
		}
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete deletes a category. Transactions referencing it are detached
// first so ledger history survives with a nil category reference.
func (r *categoryRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Bulk detach has no single entity to validate, so per-row
		// hooks are skipped.
		if err := tx.Session(&gorm.Session{SkipHooks: true}).
			Model(&models.Transaction{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach transactions: %w", err)
		}

		result := tx.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}

// EnsureSavingsCategory returns the reserved contribution category,
// creating it on first use.
func (r *categoryRepository) EnsureSavingsCategory() (*models.Category, error) {
	category := models.Category{
		Name:      models.SavingsCategoryName,
		IsExpense: true,
		Icon:      "fa-piggy-bank",
	}
	if err := r.db.Where("name = ?", models.SavingsCategoryName).
		FirstOrCreate(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to ensure savings category: %w", err)
	}
	return &category, nil
}
