package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves one transaction scoped to its owner. A row owned by
// a different user is reported as not found.
func (r *transactionRepository) GetByID(userID, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByUserID retrieves transactions for a user with pagination,
// newest first.
func (r *transactionRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByDateRange retrieves a user's transactions within an inclusive
// date range, with their category references loaded for breakdowns.
func (r *transactionRepository) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ? AND occurred_at BETWEEN ? AND ?", userID, startDate, endDate).
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetWithFilters retrieves transactions with multiple filters
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", filters.UserID)

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.IsExpense != nil {
		query = query.Where("is_expense = ?", *filters.IsExpense)
	}
	if filters.StartDate != nil {
		query = query.Where("occurred_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("occurred_at <= ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Offset(filters.Offset).Limit(filters.Limit)
	}

	if err := query.Preload("Category").
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// Update replaces an existing transaction's editable fields
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(transaction).
		Where("user_id = ?", transaction.UserID).
		Updates(map[string]interface{}{
			"category_id": transaction.CategoryID,
			"amount":      transaction.Amount,
			"description": transaction.Description,
			"occurred_at": transaction.OccurredAt,
			"is_expense":  transaction.IsExpense,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction scoped to its owner
func (r *transactionRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
