package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters narrows ledger queries. Zero values mean "not set";
// UserID is mandatory because every query is owner-scoped.
type TransactionFilters struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	IsExpense  *bool
	StartDate  *time.Time
	EndDate    *time.Time
	Offset     int
	Limit      int
}
