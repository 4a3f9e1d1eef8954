package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// GoalRepositorySuite defines the test suite for GoalRepository
type GoalRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     GoalRepositoryInterface
	testUser *models.User
	savings  *models.Category
}

// SetupTest runs before each test in the suite
func (s *GoalRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewGoalRepository(s.db.DB)

	s.testUser = database.CreateTestUser(s.T(), s.db, "goals@example.com")
	s.savings = database.CreateTestCategory(s.T(), s.db, models.SavingsCategoryName, true)
}

// TestGoalRepositorySuite runs the test suite
func TestGoalRepositorySuite(t *testing.T) {
	suite.Run(t, new(GoalRepositorySuite))
}

func (s *GoalRepositorySuite) createGoal(target, current int64) *models.SavingsGoal {
	goal := &models.SavingsGoal{
		UserID:        s.testUser.ID,
		Name:          "Emergency Fund",
		TargetAmount:  decimal.NewFromInt(target),
		CurrentAmount: decimal.NewFromInt(current),
	}
	s.Require().NoError(s.repo.Create(goal))
	return goal
}

func (s *GoalRepositorySuite) newOutflow(amount decimal.Decimal) *models.Transaction {
	return &models.Transaction{
		UserID:      s.testUser.ID,
		CategoryID:  &s.savings.ID,
		Amount:      amount,
		Description: "Contribution to Emergency Fund",
		OccurredAt:  time.Now().UTC(),
		IsExpense:   true,
	}
}

func (s *GoalRepositorySuite) newBadge() *models.Achievement {
	return &models.Achievement{
		UserID:      s.testUser.ID,
		Name:        "Goal Achieved: Emergency Fund",
		Description: "Reached the Emergency Fund savings target",
		Icon:        "fa-trophy",
	}
}

func (s *GoalRepositorySuite) TestExecuteContribution_IncrementsAndRecordsOutflow() {
	goal := s.createGoal(1000, 200)
	amount := decimal.NewFromInt(300)

	updated, badgeEarned, err := s.repo.ExecuteContribution(
		s.testUser.ID, goal.ID, amount, s.newOutflow(amount), s.newBadge())

	s.NoError(err)
	s.False(badgeEarned)
	s.True(updated.CurrentAmount.Equal(decimal.NewFromInt(500)))
	s.False(updated.IsCompleted)

	var txnCount int64
	s.db.Model(&models.Transaction{}).Where("user_id = ?", s.testUser.ID).Count(&txnCount)
	s.Equal(int64(1), txnCount)
}

func (s *GoalRepositorySuite) TestExecuteContribution_ReachingTargetEmitsOneBadge() {
	goal := s.createGoal(1000, 800)
	amount := decimal.NewFromInt(200)

	updated, badgeEarned, err := s.repo.ExecuteContribution(
		s.testUser.ID, goal.ID, amount, s.newOutflow(amount), s.newBadge())

	s.NoError(err)
	s.True(badgeEarned)
	s.True(updated.IsCompleted)
	s.True(updated.CurrentAmount.Equal(decimal.NewFromInt(1000)))

	// A second identical contribution overshoots but must not duplicate
	// the achievement.
	updated, badgeEarned, err = s.repo.ExecuteContribution(
		s.testUser.ID, goal.ID, amount, s.newOutflow(amount), s.newBadge())

	s.NoError(err)
	s.False(badgeEarned)
	s.True(updated.CurrentAmount.Equal(decimal.NewFromInt(1200)))

	var badges int64
	s.db.Model(&models.Achievement{}).Where("user_id = ?", s.testUser.ID).Count(&badges)
	s.Equal(int64(1), badges)
}

func (s *GoalRepositorySuite) TestExecuteContribution_NonPositiveAmount() {
	goal := s.createGoal(1000, 0)

	_, _, err := s.repo.ExecuteContribution(
		s.testUser.ID, goal.ID, decimal.Zero, s.newOutflow(decimal.Zero), s.newBadge())

	s.ErrorIs(err, ErrInvalidContributionAmount)
}

func (s *GoalRepositorySuite) TestExecuteContribution_OtherUsersGoalIsNotFound() {
	goal := s.createGoal(1000, 0)
	stranger := database.CreateTestUser(s.T(), s.db, "stranger@example.com")
	amount := decimal.NewFromInt(50)

	outflow := s.newOutflow(amount)
	outflow.UserID = stranger.ID

	_, _, err := s.repo.ExecuteContribution(stranger.ID, goal.ID, amount, outflow, s.newBadge())

	s.ErrorIs(err, ErrGoalNotFound)
}

func (s *GoalRepositorySuite) TestUpdate_RaisingTargetKeepsCompletionFlag() {
	goal := s.createGoal(1000, 0)
	amount := decimal.NewFromInt(1000)

	_, badgeEarned, err := s.repo.ExecuteContribution(
		s.testUser.ID, goal.ID, amount, s.newOutflow(amount), s.newBadge())
	s.Require().NoError(err)
	s.Require().True(badgeEarned)

	goal.TargetAmount = decimal.NewFromInt(1500)
	s.Require().NoError(s.repo.Update(goal))

	updated, err := s.repo.GetByID(s.testUser.ID, goal.ID)
	s.NoError(err)
	s.True(updated.TargetAmount.Equal(decimal.NewFromInt(1500)))
	s.True(updated.IsCompleted, "stored completion flag must survive target edits")
}

func (s *GoalRepositorySuite) TestGetByUserID_OnlyOwnGoals() {
	s.createGoal(1000, 0)
	stranger := database.CreateTestUser(s.T(), s.db, "stranger@example.com")
	strangerGoal := &models.SavingsGoal{
		UserID:       stranger.ID,
		Name:         "Vacation",
		TargetAmount: decimal.NewFromInt(500),
	}
	s.Require().NoError(s.repo.Create(strangerGoal))

	goals, err := s.repo.GetByUserID(s.testUser.ID)

	s.NoError(err)
	s.Require().Len(goals, 1)
	s.Equal("Emergency Fund", goals[0].Name)
}

func (s *GoalRepositorySuite) TestDelete_MissingGoal() {
	s.ErrorIs(s.repo.Delete(s.testUser.ID, uuid.New()), ErrGoalNotFound)
}
