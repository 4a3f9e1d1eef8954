package services

import (
	"sort"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CategoryTotal is the aggregated spend or income of one category
// within a period.
type CategoryTotal struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
}

func inPeriod(txn *models.Transaction, start, end time.Time) bool {
	return !txn.OccurredAt.Before(start) && !txn.OccurredAt.After(end)
}

// SumByType totals the transactions of one direction (expense or
// income) that occurred within [start, end]. Rows without a category
// still count toward the total.
func SumByType(txns []models.Transaction, isExpense bool, start, end time.Time) decimal.Decimal {
	total := decimal.Zero

	for i := range txns {
		txn := &txns[i]
		if txn.IsExpense != isExpense || !inPeriod(txn, start, end) {
			continue
		}
		total = total.Add(txn.Amount)
	}

	return total
}

// CategoryBreakdown groups one direction's transactions within
// [start, end] by category. Rows without a category are skipped since
// they have nothing to group under. The result is ordered by total
// descending, name ascending on ties, so repeated calls over the same
// snapshot always agree.
func CategoryBreakdown(txns []models.Transaction, isExpense bool, start, end time.Time) []CategoryTotal {
	totals := make(map[uuid.UUID]*CategoryTotal)

	for i := range txns {
		txn := &txns[i]
		if txn.IsExpense != isExpense || !inPeriod(txn, start, end) {
			continue
		}
		if txn.CategoryID == nil || txn.Category == nil {
			continue
		}

		entry, ok := totals[*txn.CategoryID]
		if !ok {
			entry = &CategoryTotal{
				CategoryID: *txn.CategoryID,
				Name:       txn.Category.Name,
				Color:      txn.Category.Color,
				Total:      decimal.Zero,
			}
			totals[*txn.CategoryID] = entry
		}
		entry.Total = entry.Total.Add(txn.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for _, entry := range totals {
		breakdown = append(breakdown, *entry)
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].Name < breakdown[j].Name
	})

	return breakdown
}

// NetSavings is income minus expenses. Negative when the period
// overspent.
func NetSavings(income, expenses decimal.Decimal) decimal.Decimal {
	return income.Sub(expenses)
}

// SavingsRate is the net savings share of income as a percentage with
// two decimal places. Zero income (or a refund-dominated negative one)
// yields zero rather than a division blowup.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return NetSavings(income, expenses).Div(income).Mul(oneHundred).Round(2)
}
