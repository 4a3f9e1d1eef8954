package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	testUser *models.User
	food     *models.Category
	salary   *models.Category
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)

	s.testUser = database.CreateTestUser(s.T(), s.db, "ledger@example.com")
	s.food = database.CreateTestCategory(s.T(), s.db, "Food", true)
	s.salary = database.CreateTestCategory(s.T(), s.db, "Salary", false)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) createTransaction(category *models.Category, amount float64, isExpense bool, occurredAt time.Time) *models.Transaction {
	txn := &models.Transaction{
		UserID:      s.testUser.ID,
		Amount:      decimal.NewFromFloat(amount),
		Description: gofakeit.Sentence(4),
		OccurredAt:  occurredAt,
		IsExpense:   isExpense,
	}
	if category != nil {
		txn.CategoryID = &category.ID
	}
	s.Require().NoError(s.repo.Create(txn))
	return txn
}

func (s *TransactionRepositorySuite) TestCreate_AssignsID() {
	txn := s.createTransaction(s.food, 42.50, true, time.Now())

	s.NotEqual(uuid.Nil, txn.ID)
}

func (s *TransactionRepositorySuite) TestGetByID_ScopedToOwner() {
	txn := s.createTransaction(s.food, 10, true, time.Now())

	found, err := s.repo.GetByID(s.testUser.ID, txn.ID)
	s.NoError(err)
	s.Equal(txn.ID, found.ID)
	s.Require().NotNil(found.Category)
	s.Equal("Food", found.Category.Name)

	stranger := database.CreateTestUser(s.T(), s.db, "stranger@example.com")
	_, err = s.repo.GetByID(stranger.ID, txn.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByUserID_NewestFirst() {
	now := time.Now().UTC()
	older := s.createTransaction(s.food, 5, true, now.Add(-48*time.Hour))
	newer := s.createTransaction(s.food, 7, true, now)

	transactions, total, err := s.repo.GetByUserID(s.testUser.ID, 0, 10)

	s.NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(transactions, 2)
	s.Equal(newer.ID, transactions[0].ID)
	s.Equal(older.ID, transactions[1].ID)
}

func (s *TransactionRepositorySuite) TestGetByDateRange_InclusiveBounds() {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	inside := s.createTransaction(s.food, 20, true, time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC))
	onStart := s.createTransaction(s.food, 30, true, start)
	s.createTransaction(s.food, 40, true, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	transactions, err := s.repo.GetByDateRange(s.testUser.ID, start, end)

	s.NoError(err)
	s.Require().Len(transactions, 2)
	ids := []uuid.UUID{transactions[0].ID, transactions[1].ID}
	s.Contains(ids, inside.ID)
	s.Contains(ids, onStart.ID)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_ByTypeAndCategory() {
	now := time.Now().UTC()
	expense := s.createTransaction(s.food, 20, true, now)
	s.createTransaction(s.salary, 1500, false, now)
	s.createTransaction(nil, 5, true, now)

	isExpense := true
	filters := models.TransactionFilters{
		UserID:     s.testUser.ID,
		CategoryID: &s.food.ID,
		IsExpense:  &isExpense,
	}

	transactions, total, err := s.repo.GetWithFilters(filters)

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(transactions, 1)
	s.Equal(expense.ID, transactions[0].ID)
}

func (s *TransactionRepositorySuite) TestUpdate_FullEditReplace() {
	txn := s.createTransaction(s.food, 20, true, time.Now().UTC())

	txn.Amount = decimal.NewFromFloat(25.75)
	txn.Description = "Corrected grocery run"
	txn.CategoryID = nil
	txn.IsExpense = true

	s.Require().NoError(s.repo.Update(txn))

	updated, err := s.repo.GetByID(s.testUser.ID, txn.ID)
	s.NoError(err)
	s.True(updated.Amount.Equal(decimal.NewFromFloat(25.75)))
	s.Equal("Corrected grocery run", updated.Description)
	s.Nil(updated.CategoryID)
}

func (s *TransactionRepositorySuite) TestDelete_OtherUsersRowIsNotFound() {
	txn := s.createTransaction(s.food, 20, true, time.Now())
	stranger := database.CreateTestUser(s.T(), s.db, "stranger@example.com")

	s.ErrorIs(s.repo.Delete(stranger.ID, txn.ID), ErrTransactionNotFound)
	s.NoError(s.repo.Delete(s.testUser.ID, txn.ID))
}

func (s *TransactionRepositorySuite) TestCategoryDelete_KeepsTransactionHistory() {
	txn := s.createTransaction(s.food, 20, true, time.Now())

	categoryRepo := NewCategoryRepository(s.db.DB)
	s.Require().NoError(categoryRepo.Delete(s.food.ID))

	kept, err := s.repo.GetByID(s.testUser.ID, txn.ID)
	s.NoError(err)
	s.Nil(kept.CategoryID)
	s.Nil(kept.Category)
}
