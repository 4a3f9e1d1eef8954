package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	demoMonths           = 6
	demoExpensesPerMonth = 12
	demoSalaryDayOfMonth = 1
	demoMinExpenseAmount = 5
	demoMaxExpenseAmount = 220
	demoMinSalaryAmount  = 2400
	demoMaxSalaryAmount  = 3200
)

type demoCategorySeed struct {
	name      string
	color     string
	icon      string
	isExpense bool
}

var demoCategorySeeds = []demoCategorySeed{
	{"Groceries", "#2a9d8f", "fa-cart-shopping", true},
	{"Dining", "#e76f51", "fa-utensils", true},
	{"Transport", "#264653", "fa-bus", true},
	{"Entertainment", "#9b5de5", "fa-film", true},
	{"Utilities", "#f4a261", "fa-bolt", true},
	{"Rent", "#e63946", "fa-house", true},
	{"Salary", "#40916c", "fa-briefcase", false},
	{"Freelance", "#52b788", "fa-laptop", false},
}

// SampleDataGenerator seeds a demo ledger so a fresh install has
// something to aggregate.
type SampleDataGenerator struct {
	userRepo        repositories.UserRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	goalRepo        repositories.GoalRepositoryInterface
	faker           *gofakeit.Faker
}

func NewSampleDataGenerator(
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	goalRepo repositories.GoalRepositoryInterface,
	seed uint64,
) *SampleDataGenerator {
	return &SampleDataGenerator{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
		faker:           gofakeit.New(seed),
	}
}

// Generate creates a demo user with several months of transactions,
// budgets for the current month, and a pair of savings goals. Safe to
// call once per empty database; a second call fails on the unique
// email.
func (g *SampleDataGenerator) Generate(now time.Time) (*models.User, error) {
	user := &models.User{
		Email:       "demo@fintrack.local",
		DisplayName: g.faker.Name(),
	}
	if err := g.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	categories, err := g.seedCategories()
	if err != nil {
		return nil, err
	}

	if err := g.seedTransactions(user.ID, categories, now); err != nil {
		return nil, err
	}

	if err := g.seedBudgets(user.ID, categories, now); err != nil {
		return nil, err
	}

	if err := g.seedGoals(user.ID, now); err != nil {
		return nil, err
	}

	slog.Info("sample data generated",
		"user_id", user.ID,
		"email", user.Email,
		"months", demoMonths)

	return user, nil
}

func (g *SampleDataGenerator) seedCategories() (map[string]*models.Category, error) {
	categories := make(map[string]*models.Category, len(demoCategorySeeds))

	for _, seed := range demoCategorySeeds {
		category := &models.Category{
			Name:      seed.name,
			Color:     seed.color,
			Icon:      seed.icon,
			IsExpense: seed.isExpense,
		}
		if err := g.categoryRepo.Create(category); err != nil {
			return nil, fmt.Errorf("failed to seed category %s: %w", seed.name, err)
		}
		categories[seed.name] = category
	}

	return categories, nil
}

func (g *SampleDataGenerator) seedTransactions(userID uuid.UUID, categories map[string]*models.Category, now time.Time) error {
	buckets := BucketsEndingAt(now, demoMonths)

	expenseNames := make([]string, 0, len(demoCategorySeeds))
	for _, seed := range demoCategorySeeds {
		if seed.isExpense {
			expenseNames = append(expenseNames, seed.name)
		}
	}

	for _, bucket := range buckets {
		salary := &models.Transaction{
			UserID:      userID,
			CategoryID:  &categories["Salary"].ID,
			Amount:      decimal.NewFromFloat(g.faker.Float64Range(demoMinSalaryAmount, demoMaxSalaryAmount)).Round(2),
			Description: "Monthly salary",
			OccurredAt:  time.Date(bucket.Year, bucket.Month, demoSalaryDayOfMonth, 9, 0, 0, 0, time.UTC),
			IsExpense:   false,
		}
		if err := g.transactionRepo.Create(salary); err != nil {
			return fmt.Errorf("failed to seed salary: %w", err)
		}

		for i := 0; i < demoExpensesPerMonth; i++ {
			name := expenseNames[g.faker.IntRange(0, len(expenseNames)-1)]
			expense := &models.Transaction{
				UserID:      userID,
				CategoryID:  &categories[name].ID,
				Amount:      decimal.NewFromFloat(g.faker.Float64Range(demoMinExpenseAmount, demoMaxExpenseAmount)).Round(2),
				Description: g.faker.ProductName(),
				OccurredAt:  g.faker.DateRange(bucket.Start, bucket.End.Truncate(time.Second)),
				IsExpense:   true,
			}
			if err := g.transactionRepo.Create(expense); err != nil {
				return fmt.Errorf("failed to seed expense: %w", err)
			}
		}
	}

	return nil
}

func (g *SampleDataGenerator) seedBudgets(userID uuid.UUID, categories map[string]*models.Category, now time.Time) error {
	month := int(now.UTC().Month())
	year := now.UTC().Year()

	for _, name := range []string{"Groceries", "Dining", "Entertainment"} {
		budget := &models.Budget{
			UserID:     userID,
			CategoryID: categories[name].ID,
			Month:      month,
			Year:       year,
			Amount:     decimal.NewFromInt(int64(g.faker.IntRange(300, 600))),
		}
		if err := g.budgetRepo.Create(budget); err != nil {
			return fmt.Errorf("failed to seed budget for %s: %w", name, err)
		}
	}

	return nil
}

func (g *SampleDataGenerator) seedGoals(userID uuid.UUID, now time.Time) error {
	deadline := now.UTC().AddDate(0, demoMonths, 0)

	goals := []*models.SavingsGoal{
		{
			UserID:        userID,
			Name:          "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(3000),
			CurrentAmount: decimal.NewFromInt(int64(g.faker.IntRange(200, 1500))),
		},
		{
			UserID:        userID,
			Name:          "Vacation",
			TargetAmount:  decimal.NewFromInt(1200),
			CurrentAmount: decimal.NewFromInt(int64(g.faker.IntRange(0, 600))),
			TargetDate:    &deadline,
		},
	}

	for _, goal := range goals {
		if err := g.goalRepo.Create(goal); err != nil {
			return fmt.Errorf("failed to seed goal %s: %w", goal.Name, err)
		}
	}

	return nil
}
