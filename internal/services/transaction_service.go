package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownCategory = errors.New("category does not exist")

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

func (s *transactionService) CreateTransaction(userID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, models.ErrInvalidAmount
	}

	if err := s.resolveCategory(input.CategoryID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Description: input.Description,
		OccurredAt:  input.OccurredAt.UTC(),
		IsExpense:   input.IsExpense,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.RecordTransactionCreated(transaction.IsExpense)

	slog.Info("transaction created",
		"user_id", userID,
		"transaction_id", transaction.ID,
		"is_expense", transaction.IsExpense)

	return s.transactionRepo.GetByID(userID, transaction.ID)
}

func (s *transactionService) GetTransaction(userID, id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(userID, id)
}

func (s *transactionService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	return s.transactionRepo.GetWithFilters(filters)
}

func (s *transactionService) UpdateTransaction(userID, id uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, models.ErrInvalidAmount
	}

	if err := s.resolveCategory(input.CategoryID); err != nil {
		return nil, err
	}

	transaction, err := s.transactionRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	transaction.Amount = input.Amount
	transaction.Description = input.Description
	transaction.CategoryID = input.CategoryID
	transaction.OccurredAt = input.OccurredAt.UTC()
	transaction.IsExpense = input.IsExpense

	if err := s.transactionRepo.Update(transaction); err != nil {
		slog.Error("failed to update transaction",
			"user_id", userID,
			"transaction_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return s.transactionRepo.GetByID(userID, id)
}

func (s *transactionService) DeleteTransaction(userID, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(userID, id); err != nil {
		return err
	}

	slog.Info("transaction deleted",
		"user_id", userID,
		"transaction_id", id)

	return nil
}

func (s *transactionService) resolveCategory(categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}

	if _, err := s.categoryRepo.GetByID(*categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrUnknownCategory
		}
		return fmt.Errorf("failed to resolve category: %w", err)
	}

	return nil
}
