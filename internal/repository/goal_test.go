package repository

import (
	"testing"
	"time"

	"teamquest-backend/internal/database/models"
	"teamquest-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GoalRepositoryTestSuite tests the goal and off-season repositories
type GoalRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	teamGoalRepo  *TeamGoalRepository
	userGoalRepo  *UserGoalRepository
	offSeasonRepo *OffSeasonRepository
	teamRepo      *TeamRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *GoalRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.teamGoalRepo = NewTeamGoalRepository(suite.baseTestSuite.DB)
	suite.userGoalRepo = NewUserGoalRepository(suite.baseTestSuite.DB)
	suite.offSeasonRepo = NewOffSeasonRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GoalRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GoalRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GoalRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GoalRepositoryTestSuite) seedTeam() (*models.Team, *models.User) {
	coach := suite.factories.User.WithRole(models.UserRoleCoach)
	suite.Require().NoError(suite.userRepo.Create(coach))
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.teamRepo.CreateWithCoach(team, coach.ID))
	return team, coach
}

// TestTeamGoalLifecycle tests creating, listing and deleting team goals
func (suite *GoalRepositoryTestSuite) TestTeamGoalLifecycle() {
	team, coach := suite.seedTeam()

	goal := suite.factories.TeamGoal.Create(team.ID, coach.ID)
	suite.NoError(suite.teamGoalRepo.Create(goal))
	suite.NotZero(goal.ID)

	goals, err := suite.teamGoalRepo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Require().Len(goals, 1)
	suite.Equal(coach.Email, goals[0].CreatedBy.Email)

	suite.NoError(suite.teamGoalRepo.Delete(goal.ID))
	_, err = suite.teamGoalRepo.GetByID(goal.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserGoalOwnerScoping tests that foreign goals behave like missing ones
func (suite *GoalRepositoryTestSuite) TestUserGoalOwnerScoping() {
	owner := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(owner))
	stranger := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(stranger))

	goal := suite.factories.UserGoal.Create(owner.ID)
	suite.NoError(suite.userGoalRepo.Create(goal))

	found, err := suite.userGoalRepo.GetByIDForUser(goal.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(goal.Title, found.Title)

	_, err = suite.userGoalRepo.GetByIDForUser(goal.ID, stranger.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Scoped delete from a non-owner is a no-op.
	suite.NoError(suite.userGoalRepo.Delete(goal.ID, stranger.ID))
	_, err = suite.userGoalRepo.GetByIDForUser(goal.ID, owner.ID)
	suite.NoError(err)
}

// TestOffSeasonOrdering tests that a team's off-seasons come back most
// recent first
func (suite *GoalRepositoryTestSuite) TestOffSeasonOrdering() {
	team, coach := suite.seedTeam()

	older := suite.factories.OffSeason.Create(team.ID, coach.ID)
	older.StartDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	older.EndDate = older.StartDate.AddDate(0, 2, 0)
	suite.NoError(suite.offSeasonRepo.Create(older))

	newer := suite.factories.OffSeason.Create(team.ID, coach.ID)
	newer.StartDate = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	newer.EndDate = newer.StartDate.AddDate(0, 2, 0)
	suite.NoError(suite.offSeasonRepo.Create(newer))

	offSeasons, err := suite.offSeasonRepo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Require().Len(offSeasons, 2)
	suite.Equal(newer.ID, offSeasons[0].ID)
	suite.Equal(older.ID, offSeasons[1].ID)
}

// TestGoalRepositoryTestSuite runs the test suite
func TestGoalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GoalRepositoryTestSuite))
}
