package repository

import (
	"testing"
	"time"

	"teamquest-backend/internal/database/models"
	"teamquest-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ChallengeRepositoryTestSuite tests the ChallengeRepository
type ChallengeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ChallengeRepository
	teamRepo      *TeamRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ChallengeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewChallengeRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ChallengeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ChallengeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ChallengeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ChallengeRepositoryTestSuite) seedTeam() (*models.Team, *models.User) {
	coach := suite.factories.User.WithRole(models.UserRoleCoach)
	suite.Require().NoError(suite.userRepo.Create(coach))
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.teamRepo.CreateWithCoach(team, coach.ID))
	return team, coach
}

// TestCreateAndGetByID tests creating a challenge and loading it with the
// team's membership links
func (suite *ChallengeRepositoryTestSuite) TestCreateAndGetByID() {
	team, coach := suite.seedTeam()

	challenge := suite.factories.Challenge.Create(team.ID, coach.ID)
	suite.NoError(suite.repo.Create(challenge))
	suite.NotZero(challenge.ID)

	loaded, err := suite.repo.GetByID(challenge.ID)
	suite.NoError(err)
	suite.Equal(challenge.Name, loaded.Name)
	suite.Equal(team.ID, loaded.Team.ID)
}

// TestGetByTeamID tests listing a team's challenges with completions
func (suite *ChallengeRepositoryTestSuite) TestGetByTeamID() {
	team, coach := suite.seedTeam()

	first := suite.factories.Challenge.Create(team.ID, coach.ID)
	suite.NoError(suite.repo.Create(first))
	second := suite.factories.Challenge.WithType(team.ID, coach.ID, models.ChallengeTypeStrength)
	second.Name = "Squats"
	suite.NoError(suite.repo.Create(second))

	suite.NoError(suite.repo.AddCompletion(&models.ChallengeCompletion{
		ChallengeID: first.ID,
		UserID:      coach.ID,
		CompletedAt: time.Now().UTC(),
	}))

	challenges, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Require().Len(challenges, 2)

	byName := map[string]models.Challenge{}
	for _, c := range challenges {
		byName[c.Name] = c
	}
	suite.Len(byName[first.Name].Completions, 1)
	suite.Empty(byName["Squats"].Completions)
}

// TestRepeatedCompletions tests that completions accumulate as separate rows
func (suite *ChallengeRepositoryTestSuite) TestRepeatedCompletions() {
	team, coach := suite.seedTeam()
	challenge := suite.factories.Challenge.Create(team.ID, coach.ID)
	suite.NoError(suite.repo.Create(challenge))

	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.AddCompletion(&models.ChallengeCompletion{
			ChallengeID: challenge.ID,
			UserID:      coach.ID,
			CompletedAt: time.Now().UTC(),
			Notes:       "again",
		}))
	}

	challenges, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Require().Len(challenges, 1)
	suite.Len(challenges[0].Completions, 3)
}

// TestDeleteRemovesCompletions tests that deleting a challenge drops its log
func (suite *ChallengeRepositoryTestSuite) TestDeleteRemovesCompletions() {
	team, coach := suite.seedTeam()
	challenge := suite.factories.Challenge.Create(team.ID, coach.ID)
	suite.NoError(suite.repo.Create(challenge))
	suite.NoError(suite.repo.AddCompletion(&models.ChallengeCompletion{
		ChallengeID: challenge.ID,
		UserID:      coach.ID,
		CompletedAt: time.Now().UTC(),
	}))

	suite.NoError(suite.repo.Delete(challenge.ID))

	_, err := suite.repo.GetByID(challenge.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.ChallengeCompletion{}).
		Where("challenge_id = ?", challenge.ID).Count(&count).Error)
	suite.Zero(count)
}

// TestGetByCreator tests listing challenges across teams by creator
func (suite *ChallengeRepositoryTestSuite) TestGetByCreator() {
	team, coach := suite.seedTeam()
	other := suite.factories.Team.WithName("Other Team")
	suite.NoError(suite.teamRepo.CreateWithCoach(other, coach.ID))

	suite.NoError(suite.repo.Create(suite.factories.Challenge.Create(team.ID, coach.ID)))
	c2 := suite.factories.Challenge.Create(other.ID, coach.ID)
	c2.Name = "Away Run"
	suite.NoError(suite.repo.Create(c2))

	mine, err := suite.repo.GetByCreator(coach.ID)
	suite.NoError(err)
	suite.Len(mine, 2)
}

// TestChallengeRepositoryTestSuite runs the test suite
func TestChallengeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ChallengeRepositoryTestSuite))
}
