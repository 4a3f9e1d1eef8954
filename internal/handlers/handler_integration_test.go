package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// HandlerIntegrationTestSuite exercises the handlers against real
// services backed by an in-memory database.
type HandlerIntegrationTestSuite struct {
	suite.Suite
	db   *database.DB
	echo *echo.Echo
	user *models.User

	categoryRepo repositories.CategoryRepositoryInterface

	transactionHandler *TransactionHandler
	budgetHandler      *BudgetHandler
	goalHandler        *GoalHandler
	reportHandler      *ReportHandler
}

func (suite *HandlerIntegrationTestSuite) SetupTest() {
	suite.db = database.SetupTestDB(suite.T())
	suite.echo = echo.New()
	suite.echo.Validator = NewValidator()

	userRepo := repositories.NewUserRepository(suite.db.DB)
	categoryRepo := repositories.NewCategoryRepository(suite.db.DB)
	transactionRepo := repositories.NewTransactionRepository(suite.db.DB)
	budgetRepo := repositories.NewBudgetRepository(suite.db.DB)
	goalRepo := repositories.NewGoalRepository(suite.db.DB)
	achievementRepo := repositories.NewAchievementRepository(suite.db.DB)
	suite.categoryRepo = categoryRepo

	metrics := services.NewNoopMetrics()
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, metrics)
	budgetTracker := services.NewBudgetTracker(budgetRepo, transactionRepo, categoryRepo, metrics)
	goalTracker := services.NewGoalTracker(goalRepo, categoryRepo, achievementRepo, metrics)
	reportBuilder := services.NewReportBuilder(transactionRepo, budgetTracker, goalTracker, metrics, 36)

	suite.transactionHandler = NewTransactionHandler(transactionService)
	suite.budgetHandler = NewBudgetHandler(budgetTracker)
	suite.goalHandler = NewGoalHandler(goalTracker)
	suite.reportHandler = NewReportHandler(reportBuilder, 6)

	suite.user = &models.User{Email: "ingrid@example.com", DisplayName: "Ingrid"}
	suite.Require().NoError(userRepo.Create(suite.user))
}

func (suite *HandlerIntegrationTestSuite) request(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := suite.echo.NewContext(req, rec)
	c.Set("user_id", suite.user.ID)
	return c, rec
}

func (suite *HandlerIntegrationTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload.Error.Code
}

func (suite *HandlerIntegrationTestSuite) createCategory(name string, isExpense bool) *models.Category {
	category := &models.Category{Name: name, Color: "#336699", IsExpense: isExpense}
	suite.Require().NoError(suite.categoryRepo.Create(category))
	return category
}

func (suite *HandlerIntegrationTestSuite) TestCreateTransaction() {
	groceries := suite.createCategory("Groceries", true)

	body := fmt.Sprintf(`{"amount":"42.50","description":"weekly shop","categoryId":%q,"occurredAt":"2025-06-10T12:00:00Z","isExpense":true}`, groceries.ID)
	c, rec := suite.request(http.MethodPost, "/api/v1/transactions", body)

	suite.Require().NoError(suite.transactionHandler.CreateTransaction(c))
	suite.Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.Equal("42.5", response.Amount)
	suite.Equal("Groceries", response.CategoryName)
}

func (suite *HandlerIntegrationTestSuite) TestCreateTransactionUnknownCategory() {
	body := fmt.Sprintf(`{"amount":"10","description":"x","categoryId":%q,"occurredAt":"2025-06-10T12:00:00Z","isExpense":true}`, uuid.New())
	c, rec := suite.request(http.MethodPost, "/api/v1/transactions", body)

	suite.Require().NoError(suite.transactionHandler.CreateTransaction(c))
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("TRANSACTION_003", suite.errorCode(rec))
}

func (suite *HandlerIntegrationTestSuite) TestGetMissingTransactionReturnsNotFound() {
	c, rec := suite.request(http.MethodGet, "/api/v1/transactions/x", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	suite.Require().NoError(suite.transactionHandler.GetTransaction(c))
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal("TRANSACTION_001", suite.errorCode(rec))
}

func (suite *HandlerIntegrationTestSuite) TestDuplicateBudgetReturnsConflict() {
	groceries := suite.createCategory("Groceries", true)
	body := fmt.Sprintf(`{"categoryId":%q,"month":6,"year":2025,"amount":"300"}`, groceries.ID)

	c, rec := suite.request(http.MethodPost, "/api/v1/budgets", body)
	suite.Require().NoError(suite.budgetHandler.CreateBudget(c))
	suite.Require().Equal(http.StatusCreated, rec.Code)

	c, rec = suite.request(http.MethodPost, "/api/v1/budgets", body)
	suite.Require().NoError(suite.budgetHandler.CreateBudget(c))
	suite.Equal(http.StatusConflict, rec.Code)
	suite.Equal("BUDGET_002", suite.errorCode(rec))
}

func (suite *HandlerIntegrationTestSuite) TestCreateBudgetForIncomeCategoryRejected() {
	salary := suite.createCategory("Salary", false)
	body := fmt.Sprintf(`{"categoryId":%q,"month":6,"year":2025,"amount":"300"}`, salary.ID)

	c, rec := suite.request(http.MethodPost, "/api/v1/budgets", body)
	suite.Require().NoError(suite.budgetHandler.CreateBudget(c))
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("BUDGET_003", suite.errorCode(rec))
}

func (suite *HandlerIntegrationTestSuite) TestContributionFlow() {
	body := `{"name":"Emergency Fund","targetAmount":"100"}`
	c, rec := suite.request(http.MethodPost, "/api/v1/goals", body)
	suite.Require().NoError(suite.goalHandler.CreateGoal(c))
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var goal dto.GoalResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &goal))

	c, rec = suite.request(http.MethodPost, "/api/v1/goals/x/contributions", `{"amount":"100"}`)
	c.SetParamNames("id")
	c.SetParamValues(goal.ID.String())
	suite.Require().NoError(suite.goalHandler.AddContribution(c))
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var contribution dto.ContributionResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &contribution))
	suite.Equal("Completed", contribution.Goal.Status)
	suite.True(contribution.Goal.IsAchieved)
	suite.True(contribution.Transaction.IsExpense)
	suite.Equal("Contribution to Emergency Fund", contribution.Transaction.Description)
	suite.Require().NotNil(contribution.Achievement)
	suite.Equal("Goal Achieved: Emergency Fund", contribution.Achievement.Name)
}

func (suite *HandlerIntegrationTestSuite) TestContributionToStrangersGoalReturnsNotFound() {
	c, rec := suite.request(http.MethodPost, "/api/v1/goals/x/contributions", `{"amount":"50"}`)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	suite.Require().NoError(suite.goalHandler.AddContribution(c))
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal("GOAL_001", suite.errorCode(rec))
}

func (suite *HandlerIntegrationTestSuite) TestIncomeExpenseReportDefaultsToSixMonths() {
	c, rec := suite.request(http.MethodGet, "/api/v1/reports/income-expense", "")

	suite.Require().NoError(suite.reportHandler.IncomeExpenseReport(c))
	suite.Require().Equal(http.StatusOK, rec.Code)

	var report dto.ReportResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &report))
	suite.Len(report.Labels, 6)
	suite.Len(report.Income, 6)
	suite.Len(report.Expenses, 6)
	suite.Len(report.SavingsRate, 6)

	suite.Equal(time.Now().UTC().Format("January 2006"), report.Labels[5])
}

func (suite *HandlerIntegrationTestSuite) TestIncomeExpenseReportRejectsNonIntegerWindow() {
	c, rec := suite.request(http.MethodGet, "/api/v1/reports/income-expense?months=abc", "")

	suite.Require().NoError(suite.reportHandler.IncomeExpenseReport(c))
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("REPORT_001", suite.errorCode(rec))
}

func (suite *HandlerIntegrationTestSuite) TestIncomeExpenseReportRejectsZeroWindow() {
	c, rec := suite.request(http.MethodGet, "/api/v1/reports/income-expense?months=0", "")

	suite.Require().NoError(suite.reportHandler.IncomeExpenseReport(c))
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("REPORT_001", suite.errorCode(rec))
}

func (suite *HandlerIntegrationTestSuite) TestDashboard() {
	c, rec := suite.request(http.MethodGet, "/api/v1/dashboard", "")

	suite.Require().NoError(suite.reportHandler.Dashboard(c))
	suite.Require().Equal(http.StatusOK, rec.Code)

	var dashboard dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &dashboard))
	suite.Equal("0", dashboard.Income)
	suite.NotNil(dashboard.Budgets.Budgets)
	suite.NotNil(dashboard.Goals.Ongoing)
	suite.NotNil(dashboard.RecentTransactions)
}

func TestHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerIntegrationTestSuite))
}
