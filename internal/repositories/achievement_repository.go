package repositories

import (
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// achievementRepository implements AchievementRepositoryInterface
type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *gorm.DB) AchievementRepositoryInterface {
	return &achievementRepository{db: db}
}

// Create appends an achievement record
func (r *achievementRepository) Create(achievement *models.Achievement) error {
	if err := r.db.Create(achievement).Error; err != nil {
		return fmt.Errorf("failed to create achievement: %w", err)
	}
	return nil
}

// GetByUserID retrieves a user's achievements, most recent first
func (r *achievementRepository) GetByUserID(userID uuid.UUID) ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := r.db.Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error; err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	return achievements, nil
}
