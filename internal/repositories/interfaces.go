package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	GetByType(isExpense bool) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
	EnsureSavingsCategory() (*models.Category, error)
}

// TransactionRepositoryInterface defines the contract for ledger queries
// and mutations. Every read is scoped to the owning user; rows owned by
// another user behave as if they do not exist.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(userID, id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Update(transaction *models.Transaction) error
	Delete(userID, id uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository
// operations. Create relies on the (user, category, month, year) unique
// index and reports ErrDuplicateBudget without touching the original row.
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(userID, id uuid.UUID) (*models.Budget, error)
	GetByMonthYear(userID uuid.UUID, month, year int) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(userID, id uuid.UUID) error
}

// GoalRepositoryInterface defines the contract for savings goal
// operations. ExecuteContribution performs the read-modify-write cycle
// (increment, outflow transaction, achievement check) inside a single
// store transaction so concurrent contributions cannot lose updates or
// double-emit the achievement.
type GoalRepositoryInterface interface {
	Create(goal *models.SavingsGoal) error
	GetByID(userID, id uuid.UUID) (*models.SavingsGoal, error)
	GetByUserID(userID uuid.UUID) ([]models.SavingsGoal, error)
	Update(goal *models.SavingsGoal) error
	Delete(userID, id uuid.UUID) error
	ExecuteContribution(userID, goalID uuid.UUID, amount decimal.Decimal, outflow *models.Transaction, badge *models.Achievement) (*models.SavingsGoal, bool, error)
}

// AchievementRepositoryInterface defines the contract for achievement records
type AchievementRepositoryInterface interface {
	Create(achievement *models.Achievement) error
	GetByUserID(userID uuid.UUID) ([]models.Achievement, error)
}
