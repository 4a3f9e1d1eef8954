package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrGoalNotFound              = errors.New("savings goal not found")
	ErrInvalidContributionAmount = errors.New("contribution amount must be positive")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new savings goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{db: db}
}

// Create creates a new savings goal
func (r *goalRepository) Create(goal *models.SavingsGoal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create savings goal: %w", err)
	}
	return nil
}

// GetByID retrieves a savings goal scoped to its owner
func (r *goalRepository) GetByID(userID, id uuid.UUID) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get savings goal: %w", err)
	}
	return &goal, nil
}

// GetByUserID retrieves all of a user's savings goals, oldest first
func (r *goalRepository) GetByUserID(userID uuid.UUID) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get savings goals: %w", err)
	}
	return goals, nil
}

// Update replaces a goal's name, target amount and target date. The
// stored completion flag is deliberately left alone; raising the target
// past the saved amount makes the goal ongoing again on read without
// rewriting history.
func (r *goalRepository) Update(goal *models.SavingsGoal) error {
	result := r.db.Model(goal).
		Where("user_id = ?", goal.UserID).
		Updates(map[string]interface{}{
			"name":          goal.Name,
			"target_amount": goal.TargetAmount,
			"target_date":   goal.TargetDate,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update savings goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// Delete removes a savings goal scoped to its owner
func (r *goalRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Delete(&models.SavingsGoal{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete savings goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// ExecuteContribution atomically applies a contribution to a goal: it
// locks the goal row, increments current_amount, records the prepared
// outflow transaction, and, when the increment first reaches the target
// while the stored completion flag is still unset, persists the badge
// and flips the flag. Returns the updated goal and whether the badge was
// persisted. The row lock serializes concurrent contributions to the
// same goal, so the achievement is emitted at most once.
func (r *goalRepository) ExecuteContribution(userID, goalID uuid.UUID, amount decimal.Decimal, outflow *models.Transaction, badge *models.Achievement) (*models.SavingsGoal, bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, false, ErrInvalidContributionAmount
	}

	var updated models.SavingsGoal
	badgeEarned := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var goal models.SavingsGoal
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", goalID, userID).
			First(&goal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return fmt.Errorf("failed to lock savings goal: %w", err)
		}

		goal.CurrentAmount = goal.CurrentAmount.Add(amount)

		reachedTarget := goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
		if reachedTarget && !goal.IsCompleted {
			goal.IsCompleted = true
			badgeEarned = true
		}

		if err := tx.Model(&goal).
			Updates(map[string]interface{}{
				"current_amount": goal.CurrentAmount,
				"is_completed":   goal.IsCompleted,
			}).Error; err != nil {
			return fmt.Errorf("failed to update savings goal amount: %w", err)
		}

		if err := tx.Create(outflow).Error; err != nil {
			return fmt.Errorf("failed to record contribution transaction: %w", err)
		}

		if badgeEarned {
			if err := tx.Create(badge).Error; err != nil {
				return fmt.Errorf("failed to record achievement: %w", err)
			}
		}

		updated = goal
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &updated, badgeEarned, nil
}
