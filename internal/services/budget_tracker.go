package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ProgressTierNormal  = "normal"
	ProgressTierWarning = "warning"
	ProgressTierDanger  = "danger"
)

var budgetWarningThreshold = decimal.NewFromInt(75)

var ErrCategoryNotExpense = errors.New("budgets require an expense category")

// BudgetSummary is a budget joined with its period's actual spend.
type BudgetSummary struct {
	Budget         models.Budget   `json:"budget"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed decimal.Decimal `json:"percentage_used"`
	ProgressTier   string          `json:"progress_tier"`
}

type budgetTracker struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewBudgetTracker(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) BudgetTrackerInterface {
	return &budgetTracker{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

func (s *budgetTracker) CreateBudget(userID, categoryID uuid.UUID, month, year int, amount decimal.Decimal) (*models.Budget, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsExpense {
		return nil, ErrCategoryNotExpense
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Year:       year,
		Amount:     amount,
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		if errors.Is(err, repositories.ErrDuplicateBudget) {
			slog.Warn("duplicate budget rejected",
				"user_id", userID,
				"category_id", categoryID,
				"month", month,
				"year", year)
			return nil, err
		}
		return nil, err
	}

	slog.Info("budget created",
		"user_id", userID,
		"budget_id", budget.ID,
		"category", category.Name,
		"month", month,
		"year", year)

	return s.budgetRepo.GetByID(userID, budget.ID)
}

func (s *budgetTracker) UpdateBudget(userID, id uuid.UUID, amount decimal.Decimal) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	budget.Amount = amount
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Update(budget); err != nil {
		return nil, err
	}

	return s.budgetRepo.GetByID(userID, id)
}

func (s *budgetTracker) DeleteBudget(userID, id uuid.UUID) error {
	return s.budgetRepo.Delete(userID, id)
}

// ListBudgets returns the period's budgets joined with actual spend.
// A zero month or year defaults to the month containing now.
func (s *budgetTracker) ListBudgets(userID uuid.UUID, month, year int, now time.Time) ([]BudgetSummary, error) {
	if month == 0 {
		month = int(now.UTC().Month())
	}
	if year == 0 {
		year = now.UTC().Year()
	}
	if month < 1 || month > 12 {
		return nil, models.ErrInvalidMonth
	}

	budgets, err := s.budgetRepo.GetByMonthYear(userID, month, year)
	if err != nil {
		return nil, err
	}

	start, end := MonthBounds(year, time.Month(month))
	transactions, err := s.transactionRepo.GetByDateRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load period transactions: %w", err)
	}

	summaries := make([]BudgetSummary, 0, len(budgets))
	for i := range budgets {
		summary := s.summarize(&budgets[i], transactions, start, end)
		if summary.ProgressTier != ProgressTierNormal {
			s.metrics.RecordBudgetAlert(summary.ProgressTier)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *budgetTracker) summarize(budget *models.Budget, transactions []models.Transaction, start, end time.Time) BudgetSummary {
	spent := decimal.Zero
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense || txn.CategoryID == nil || *txn.CategoryID != budget.CategoryID {
			continue
		}
		if !inPeriod(txn, start, end) {
			continue
		}
		spent = spent.Add(txn.Amount)
	}

	// The tier is classified from the exact ratio; rounding applies to
	// the displayed percentage only, so an overspend that rounds down
	// to 100 still lands in danger.
	rawPercentage := decimal.Zero
	if budget.Amount.GreaterThan(decimal.Zero) {
		rawPercentage = spent.Div(budget.Amount).Mul(oneHundred)
	}

	return BudgetSummary{
		Budget:         *budget,
		Spent:          spent,
		Remaining:      budget.Amount.Sub(spent),
		PercentageUsed: rawPercentage.Round(0),
		ProgressTier:   progressTier(rawPercentage),
	}
}

// progressTier buckets the exact percentage: danger above 100, warning
// from 75 through 100 inclusive, normal below.
func progressTier(percentage decimal.Decimal) string {
	switch {
	case percentage.GreaterThan(oneHundred):
		return ProgressTierDanger
	case percentage.GreaterThanOrEqual(budgetWarningThreshold):
		return ProgressTierWarning
	default:
		return ProgressTierNormal
	}
}

// WarningBudgets filters summaries sitting in the warning band.
func WarningBudgets(summaries []BudgetSummary) []BudgetSummary {
	warnings := make([]BudgetSummary, 0)
	for _, summary := range summaries {
		if summary.ProgressTier == ProgressTierWarning {
			warnings = append(warnings, summary)
		}
	}
	return warnings
}

// ExceededBudgets filters summaries that overshot their amount.
func ExceededBudgets(summaries []BudgetSummary) []BudgetSummary {
	exceeded := make([]BudgetSummary, 0)
	for _, summary := range summaries {
		if summary.ProgressTier == ProgressTierDanger {
			exceeded = append(exceeded, summary)
		}
	}
	return exceeded
}
