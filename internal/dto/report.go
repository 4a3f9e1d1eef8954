package dto

import (
	"time"

	"fintrack/internal/services"
)

// CategoryTotalResponse is one slice of a breakdown
type CategoryTotalResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Total string `json:"total"`
}

// ReportResponse is the income and expense trend payload. The four
// series are parallel, oldest month first.
type ReportResponse struct {
	Labels           []string                `json:"labels"`
	Income           []string                `json:"income"`
	Expenses         []string                `json:"expenses"`
	SavingsRate      []string                `json:"savingsRate"`
	ExpenseBreakdown []CategoryTotalResponse `json:"expenseBreakdown"`
	IncomeBreakdown  []CategoryTotalResponse `json:"incomeBreakdown"`
	GeneratedAt      time.Time               `json:"generatedAt"`
}

// DashboardResponse is the landing-page payload
type DashboardResponse struct {
	MonthLabel         string                `json:"monthLabel"`
	Income             string                `json:"income"`
	Expenses           string                `json:"expenses"`
	NetSavings         string                `json:"netSavings"`
	SavingsRate        string                `json:"savingsRate"`
	Budgets            ListBudgetsResponse   `json:"budgets"`
	Goals              ListGoalsResponse     `json:"goals"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

func newBreakdown(totals []services.CategoryTotal) []CategoryTotalResponse {
	items := make([]CategoryTotalResponse, 0, len(totals))
	for _, total := range totals {
		items = append(items, CategoryTotalResponse{
			Name:  total.Name,
			Color: total.Color,
			Total: total.Total.String(),
		})
	}
	return items
}

// NewReportResponse maps an engine report to its API representation
func NewReportResponse(report *services.Report) ReportResponse {
	response := ReportResponse{
		Labels:           report.Labels,
		Income:           make([]string, 0, len(report.Income)),
		Expenses:         make([]string, 0, len(report.Expenses)),
		SavingsRate:      make([]string, 0, len(report.SavingsRate)),
		ExpenseBreakdown: newBreakdown(report.ExpenseBreakdown),
		IncomeBreakdown:  newBreakdown(report.IncomeBreakdown),
		GeneratedAt:      report.GeneratedAt,
	}

	for i := range report.Income {
		response.Income = append(response.Income, report.Income[i].String())
		response.Expenses = append(response.Expenses, report.Expenses[i].String())
		response.SavingsRate = append(response.SavingsRate, report.SavingsRate[i].String())
	}

	return response
}

// NewDashboardResponse maps the composed dashboard read model
func NewDashboardResponse(dashboard *services.Dashboard) DashboardResponse {
	recent := make([]TransactionResponse, 0, len(dashboard.RecentTransactions))
	for i := range dashboard.RecentTransactions {
		recent = append(recent, NewTransactionResponse(&dashboard.RecentTransactions[i]))
	}

	goals := services.GoalList{
		Ongoing:   dashboard.Goals.Ongoing,
		Completed: dashboard.Goals.Completed,
	}

	return DashboardResponse{
		MonthLabel:         dashboard.MonthLabel,
		Income:             dashboard.Income.String(),
		Expenses:           dashboard.Expenses.String(),
		NetSavings:         dashboard.NetSavings.String(),
		SavingsRate:        dashboard.SavingsRate.String(),
		Budgets:            NewBudgetListResponse(dashboard.Budgets),
		Goals:              NewGoalListResponse(&goals),
		RecentTransactions: recent,
	}
}
