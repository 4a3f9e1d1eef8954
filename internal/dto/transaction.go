package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// TransactionQuery contains filtering options for ledger queries
type TransactionQuery struct {
	StartDate  *time.Time `query:"startDate"`
	EndDate    *time.Time `query:"endDate"`
	CategoryID *uuid.UUID `query:"categoryId"`
	Type       string     `query:"type"`
	Offset     int        `query:"offset"`
	Limit      int        `query:"limit"`
}

// CreateTransactionRequest is the payload for recording a ledger entry.
// Amounts travel as strings so decimal values survive JSON intact.
type CreateTransactionRequest struct {
	Amount      string     `json:"amount" validate:"required,positive_amount"`
	Description string     `json:"description" validate:"max=255"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt" validate:"required"`
	IsExpense   bool       `json:"isExpense"`
}

// UpdateTransactionRequest fully replaces the editable fields of an entry
type UpdateTransactionRequest = CreateTransactionRequest

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID           uuid.UUID  `json:"id"`
	Amount       string     `json:"amount"`
	SignedAmount string     `json:"signedAmount"`
	Description  string     `json:"description"`
	CategoryID   *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName string     `json:"categoryName,omitempty"`
	OccurredAt   time.Time  `json:"occurredAt"`
	IsExpense    bool       `json:"isExpense"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing ledger entries
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// NewTransactionResponse maps a model to its API representation
func NewTransactionResponse(txn *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID,
		Amount:       txn.Amount.String(),
		SignedAmount: txn.SignedAmount().String(),
		Description:  txn.Description,
		CategoryID:   txn.CategoryID,
		CategoryName: txn.CategoryName(),
		OccurredAt:   txn.OccurredAt,
		IsExpense:    txn.IsExpense,
		CreatedAt:    txn.CreatedAt,
	}
}

// NewTransactionListResponse maps a page of entries
func NewTransactionListResponse(txns []models.Transaction, total int64, offset, limit int) ListTransactionsResponse {
	items := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, NewTransactionResponse(&txns[i]))
	}

	return ListTransactionsResponse{
		Transactions: items,
		Pagination: PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	}
}
