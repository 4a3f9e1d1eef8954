package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// stubBudgetTracker is an inline stub for BudgetTrackerInterface to
// avoid wiring the full tracker in report tests.
type stubBudgetTracker struct {
	summaries []BudgetSummary
}

func (t *stubBudgetTracker) CreateBudget(uuid.UUID, uuid.UUID, int, int, decimal.Decimal) (*models.Budget, error) {
	return nil, nil
}
func (t *stubBudgetTracker) UpdateBudget(uuid.UUID, uuid.UUID, decimal.Decimal) (*models.Budget, error) {
	return nil, nil
}
func (t *stubBudgetTracker) DeleteBudget(uuid.UUID, uuid.UUID) error { return nil }
func (t *stubBudgetTracker) ListBudgets(uuid.UUID, int, int, time.Time) ([]BudgetSummary, error) {
	return t.summaries, nil
}

// stubGoalTracker is an inline stub for GoalTrackerInterface.
type stubGoalTracker struct {
	list GoalList
}

func (t *stubGoalTracker) CreateGoal(uuid.UUID, GoalInput) (*models.SavingsGoal, error) {
	return nil, nil
}
func (t *stubGoalTracker) GetGoal(uuid.UUID, uuid.UUID, time.Time) (*GoalSummary, error) {
	return nil, nil
}
func (t *stubGoalTracker) ListGoals(uuid.UUID, time.Time) (*GoalList, error) {
	return &t.list, nil
}
func (t *stubGoalTracker) UpdateGoal(uuid.UUID, uuid.UUID, GoalInput) (*models.SavingsGoal, error) {
	return nil, nil
}
func (t *stubGoalTracker) DeleteGoal(uuid.UUID, uuid.UUID) error { return nil }
func (t *stubGoalTracker) AddContribution(uuid.UUID, uuid.UUID, decimal.Decimal, time.Time) (*ContributionResult, error) {
	return nil, nil
}
func (t *stubGoalTracker) ListAchievements(uuid.UUID) ([]models.Achievement, error) {
	return nil, nil
}

// ReportBuilderTestSuite defines the test suite for ReportBuilderInterface
type ReportBuilderTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	budgetTracker       *stubBudgetTracker
	goalTracker         *stubGoalTracker
	metrics             *stubMetrics
	service             ReportBuilderInterface

	userID uuid.UUID
	now    time.Time
}

// SetupTest runs before each test
func (s *ReportBuilderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.budgetTracker = &stubBudgetTracker{}
	s.goalTracker = &stubGoalTracker{}
	s.metrics = newStubMetrics()
	s.service = NewReportBuilder(s.mockTransactionRepo, s.budgetTracker, s.goalTracker, s.metrics, 36)

	s.userID = uuid.New()
	s.now = time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
}

// TearDownTest runs after each test
func (s *ReportBuilderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestReportBuilderSuite runs the test suite
func TestReportBuilderSuite(t *testing.T) {
	suite.Run(t, new(ReportBuilderTestSuite))
}

func (s *ReportBuilderTestSuite) monthTxn(year int, month time.Month, amount float64, isExpense bool, category *models.Category) models.Transaction {
	return testTxn(amount, isExpense, time.Date(year, month, 12, 10, 0, 0, 0, time.UTC), category)
}

func (s *ReportBuilderTestSuite) TestBuildReport_ParallelSeries() {
	groceries := testCategory("Groceries")
	txns := []models.Transaction{
		s.monthTxn(2025, time.April, 2500, false, nil),
		s.monthTxn(2025, time.April, 500, true, groceries),
		s.monthTxn(2025, time.June, 1000, false, nil),
		s.monthTxn(2025, time.June, 1500, true, groceries),
	}

	s.mockTransactionRepo.EXPECT().
		GetByDateRange(s.userID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), gomock.Any()).
		Return(txns, nil)

	report, err := s.service.BuildReport(s.userID, 3, s.now)

	s.NoError(err)
	s.Equal([]string{"April 2025", "May 2025", "June 2025"}, report.Labels)
	s.Require().Len(report.Income, 3)
	s.Require().Len(report.Expenses, 3)
	s.Require().Len(report.SavingsRate, 3)

	s.Equal("80", report.SavingsRate[0].String())
	// May has no activity and still occupies its slot.
	s.True(report.Income[1].IsZero())
	s.True(report.Expenses[1].IsZero())
	s.True(report.SavingsRate[1].IsZero())
	s.Equal("-50", report.SavingsRate[2].String())

	s.Equal(1, s.metrics.reports)
}

func (s *ReportBuilderTestSuite) TestBuildReport_CurrentMonthBreakdowns() {
	groceries := testCategory("Groceries")
	dining := testCategory("Dining")

	txns := []models.Transaction{
		s.monthTxn(2025, time.May, 900, true, groceries),
		s.monthTxn(2025, time.June, 100, true, groceries),
		s.monthTxn(2025, time.June, 250, true, dining),
		s.monthTxn(2025, time.June, 2000, false, testCategory("Salary")),
	}

	s.mockTransactionRepo.EXPECT().
		GetByDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return(txns, nil)

	report, err := s.service.BuildReport(s.userID, 2, s.now)

	s.NoError(err)
	// Breakdowns cover only the newest bucket, so May's 900 is absent.
	s.Require().Len(report.ExpenseBreakdown, 2)
	s.Equal("Dining", report.ExpenseBreakdown[0].Name)
	s.True(report.ExpenseBreakdown[1].Total.Equal(decimal.NewFromInt(100)))
	s.Require().Len(report.IncomeBreakdown, 1)
	s.Equal("Salary", report.IncomeBreakdown[0].Name)
}

func (s *ReportBuilderTestSuite) TestBuildReport_WindowBelowOneMonth() {
	_, err := s.service.BuildReport(s.userID, 0, s.now)

	s.ErrorIs(err, ErrInvalidReportWindow)
}

func (s *ReportBuilderTestSuite) TestBuildReport_WindowCapped() {
	s.mockTransactionRepo.EXPECT().
		GetByDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return([]models.Transaction{}, nil)

	report, err := s.service.BuildReport(s.userID, 120, s.now)

	s.NoError(err)
	s.Len(report.Labels, 36)
}

func (s *ReportBuilderTestSuite) TestDashboardSummary() {
	groceries := testCategory("Groceries")
	txns := []models.Transaction{
		s.monthTxn(2025, time.June, 2500, false, nil),
		s.monthTxn(2025, time.June, 500, true, groceries),
	}
	recent := txns[:1]

	s.budgetTracker.summaries = []BudgetSummary{
		{ProgressTier: ProgressTierNormal},
		{ProgressTier: ProgressTierWarning},
		{ProgressTier: ProgressTierDanger},
	}
	s.goalTracker.list = GoalList{
		Ongoing:   []GoalSummary{{Status: GoalStatusOnTrack}},
		Completed: []GoalSummary{{Status: GoalStatusCompleted}},
	}

	s.mockTransactionRepo.EXPECT().
		GetByDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return(txns, nil)
	s.mockTransactionRepo.EXPECT().
		GetByUserID(s.userID, 0, recentTransactionCount).
		Return(recent, int64(2), nil)

	dashboard, err := s.service.DashboardSummary(s.userID, s.now)

	s.NoError(err)
	s.Equal("June 2025", dashboard.MonthLabel)
	s.True(dashboard.Income.Equal(decimal.NewFromInt(2500)))
	s.True(dashboard.NetSavings.Equal(decimal.NewFromInt(2000)))
	s.Equal("80", dashboard.SavingsRate.String())
	s.Len(dashboard.Budgets, 3)
	s.Len(dashboard.WarningBudgets, 1)
	s.Len(dashboard.ExceededBudgets, 1)
	s.Len(dashboard.Goals.Ongoing, 1)
	s.Len(dashboard.RecentTransactions, 1)
}
