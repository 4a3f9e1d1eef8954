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

const recentTransactionCount = 5

var ErrInvalidReportWindow = errors.New("report window must cover at least one month")

// Report is the income and expense trend over a window of months. The
// four series are parallel, oldest month first.
type Report struct {
	Labels           []string          `json:"labels"`
	Income           []decimal.Decimal `json:"income"`
	Expenses         []decimal.Decimal `json:"expenses"`
	SavingsRate      []decimal.Decimal `json:"savings_rate"`
	ExpenseBreakdown []CategoryTotal   `json:"expense_breakdown"`
	IncomeBreakdown  []CategoryTotal   `json:"income_breakdown"`
	GeneratedAt      time.Time         `json:"generated_at"`
}

// Dashboard is the landing-page read model composed from the other
// engine components.
type Dashboard struct {
	MonthLabel         string               `json:"month_label"`
	Income             decimal.Decimal      `json:"income"`
	Expenses           decimal.Decimal      `json:"expenses"`
	NetSavings         decimal.Decimal      `json:"net_savings"`
	SavingsRate        decimal.Decimal      `json:"savings_rate"`
	Budgets            []BudgetSummary      `json:"budgets"`
	WarningBudgets     []BudgetSummary      `json:"warning_budgets"`
	ExceededBudgets    []BudgetSummary      `json:"exceeded_budgets"`
	Goals              GoalList             `json:"goals"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
}

type reportBuilder struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetTracker   BudgetTrackerInterface
	goalTracker     GoalTrackerInterface
	metrics         MetricsRecorderInterface
	maxMonths       int
}

func NewReportBuilder(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetTracker BudgetTrackerInterface,
	goalTracker GoalTrackerInterface,
	metrics MetricsRecorderInterface,
	maxMonths int,
) ReportBuilderInterface {
	return &reportBuilder{
		transactionRepo: transactionRepo,
		budgetTracker:   budgetTracker,
		goalTracker:     goalTracker,
		metrics:         metrics,
		maxMonths:       maxMonths,
	}
}

// BuildReport aggregates the trailing monthsBack calendar months ending
// at the month containing now. The whole window is fetched in one
// ledger query and bucketed in memory.
func (s *reportBuilder) BuildReport(userID uuid.UUID, monthsBack int, now time.Time) (*Report, error) {
	if monthsBack < 1 {
		return nil, ErrInvalidReportWindow
	}
	if monthsBack > s.maxMonths {
		monthsBack = s.maxMonths
	}

	started := time.Now()
	buckets := BucketsEndingAt(now, monthsBack)
	windowStart := buckets[0].Start
	windowEnd := buckets[len(buckets)-1].End

	transactions, err := s.transactionRepo.GetByDateRange(userID, windowStart, windowEnd)
	if err != nil {
		slog.Error("failed to load report window",
			"user_id", userID,
			"months", monthsBack,
			"error", err)
		return nil, fmt.Errorf("failed to load report window: %w", err)
	}

	report := &Report{
		Labels:      make([]string, 0, len(buckets)),
		Income:      make([]decimal.Decimal, 0, len(buckets)),
		Expenses:    make([]decimal.Decimal, 0, len(buckets)),
		SavingsRate: make([]decimal.Decimal, 0, len(buckets)),
		GeneratedAt: now.UTC(),
	}

	for _, bucket := range buckets {
		income := SumByType(transactions, false, bucket.Start, bucket.End)
		expenses := SumByType(transactions, true, bucket.Start, bucket.End)

		report.Labels = append(report.Labels, bucket.Label)
		report.Income = append(report.Income, income)
		report.Expenses = append(report.Expenses, expenses)
		report.SavingsRate = append(report.SavingsRate, SavingsRate(income, expenses))
	}

	current := buckets[len(buckets)-1]
	report.ExpenseBreakdown = CategoryBreakdown(transactions, true, current.Start, current.End)
	report.IncomeBreakdown = CategoryBreakdown(transactions, false, current.Start, current.End)

	s.metrics.RecordReportBuilt(monthsBack, time.Since(started))

	slog.Info("report built",
		"user_id", userID,
		"months", monthsBack,
		"transaction_count", len(transactions))

	return report, nil
}

// DashboardSummary composes the current month's aggregates, budget
// states, goal states and recent ledger activity into one payload.
func (s *reportBuilder) DashboardSummary(userID uuid.UUID, now time.Time) (*Dashboard, error) {
	start, end := MonthBounds(now.UTC().Year(), now.UTC().Month())

	transactions, err := s.transactionRepo.GetByDateRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load current month: %w", err)
	}

	budgets, err := s.budgetTracker.ListBudgets(userID, int(now.UTC().Month()), now.UTC().Year(), now)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalTracker.ListGoals(userID, now)
	if err != nil {
		return nil, err
	}

	recent, _, err := s.transactionRepo.GetByUserID(userID, 0, recentTransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	income := SumByType(transactions, false, start, end)
	expenses := SumByType(transactions, true, start, end)

	return &Dashboard{
		MonthLabel:         start.Format("January 2006"),
		Income:             income,
		Expenses:           expenses,
		NetSavings:         NetSavings(income, expenses),
		SavingsRate:        SavingsRate(income, expenses),
		Budgets:            budgets,
		WarningBudgets:     WarningBudgets(budgets),
		ExceededBudgets:    ExceededBudgets(budgets),
		Goals:              *goals,
		RecentTransactions: recent,
	}, nil
}
