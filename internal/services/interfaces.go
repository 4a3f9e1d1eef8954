package services

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionInput carries the caller-supplied fields of a ledger entry.
type TransactionInput struct {
	Amount      decimal.Decimal
	Description string
	CategoryID  *uuid.UUID
	OccurredAt  time.Time
	IsExpense   bool
}

// GoalInput carries the caller-supplied fields of a savings goal.
type GoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time
}

// TransactionServiceInterface defines ledger operations scoped to one user
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, input TransactionInput) (*models.Transaction, error)
	GetTransaction(userID, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	UpdateTransaction(userID, id uuid.UUID, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID, id uuid.UUID) error
}

// CategoryServiceInterface defines operations on the shared category catalog
type CategoryServiceInterface interface {
	CreateCategory(name, color, icon string, isExpense bool) (*models.Category, error)
	GetCategory(id uuid.UUID) (*models.Category, error)
	ListCategories(isExpense *bool) ([]models.Category, error)
	UpdateCategory(id uuid.UUID, name, color, icon string) (*models.Category, error)
	DeleteCategory(id uuid.UUID) error
}

// BudgetTrackerInterface defines monthly budget operations and the
// derived spend summaries.
type BudgetTrackerInterface interface {
	CreateBudget(userID, categoryID uuid.UUID, month, year int, amount decimal.Decimal) (*models.Budget, error)
	UpdateBudget(userID, id uuid.UUID, amount decimal.Decimal) (*models.Budget, error)
	DeleteBudget(userID, id uuid.UUID) error
	ListBudgets(userID uuid.UUID, month, year int, now time.Time) ([]BudgetSummary, error)
}

// GoalTrackerInterface defines savings goal operations and their
// derived progress summaries. Methods that classify status take the
// clock as an argument so a fixed snapshot always classifies the same
// way.
type GoalTrackerInterface interface {
	CreateGoal(userID uuid.UUID, input GoalInput) (*models.SavingsGoal, error)
	GetGoal(userID, id uuid.UUID, now time.Time) (*GoalSummary, error)
	ListGoals(userID uuid.UUID, now time.Time) (*GoalList, error)
	UpdateGoal(userID, id uuid.UUID, input GoalInput) (*models.SavingsGoal, error)
	DeleteGoal(userID, id uuid.UUID) error
	AddContribution(userID, goalID uuid.UUID, amount decimal.Decimal, now time.Time) (*ContributionResult, error)
	ListAchievements(userID uuid.UUID) ([]models.Achievement, error)
}

// ReportBuilderInterface defines the aggregated read models
type ReportBuilderInterface interface {
	BuildReport(userID uuid.UUID, monthsBack int, now time.Time) (*Report, error)
	DashboardSummary(userID uuid.UUID, now time.Time) (*Dashboard, error)
}

// MetricsRecorderInterface defines the contract for recording
// operational metrics.
type MetricsRecorderInterface interface {
	RecordTransactionCreated(isExpense bool)
	RecordBudgetAlert(tier string)
	RecordContribution(achievementEarned bool)
	RecordReportBuilt(months int, duration time.Duration)
}
