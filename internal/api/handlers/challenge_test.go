package handlers_test

import (
	"net/http"
	"testing"

	"teamquest-backend/internal/api/handlers"
	"teamquest-backend/internal/database/models"
	apperrors "teamquest-backend/internal/errors"
	"teamquest-backend/internal/mocks"
	"teamquest-backend/internal/service"
	"teamquest-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ChallengeHandlerTestSuite defines the test suite for ChallengeHandler
type ChallengeHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockChallengeServiceInterface
	handler     *handlers.ChallengeHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ChallengeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockChallengeServiceInterface(suite.ctrl)
	suite.handler = handlers.NewChallengeHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api", fakeAuth(42, models.UserRoleCoach))
	challenges := api.Group("/challenges")
	{
		challenges.POST("", suite.handler.CreateChallenge)
		challenges.GET("/mine", suite.handler.GetMyChallenges)
		challenges.GET("/:id", suite.handler.GetChallenge)
		challenges.PUT("/:id", suite.handler.UpdateChallenge)
		challenges.DELETE("/:id", suite.handler.DeleteChallenge)
		challenges.POST("/:id/complete", suite.handler.LogCompletion)
	}
	api.GET("/teams/:id/challenges", suite.handler.GetTeamChallenges)
}

// TearDownTest cleans up after each test
func (suite *ChallengeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateChallenge tests the CreateChallenge handler
func (suite *ChallengeHandlerTestSuite) TestCreateChallenge() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.ChallengeResponse{
			ID:        1,
			Name:      "Morning Run",
			Type:      models.ChallengeTypeCardio,
			Frequency: models.ChallengeFrequencyDaily,
			TeamID:    7,
		}

		suite.mockService.EXPECT().
			Create(gomock.Any(), uint(42)).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/challenges", map[string]interface{}{
			"team_id":   7,
			"name":      "Morning Run",
			"type":      "cardio",
			"frequency": "daily",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.ChallengeResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expected.Name, response.Name)
	})

	suite.T().Run("TeamNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), uint(42)).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/challenges", map[string]interface{}{
			"team_id": 99,
			"name":    "Morning Run",
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGetChallenge tests the GetChallenge handler
func (suite *ChallengeHandlerTestSuite) TestGetChallenge() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(uint(5), uint(42)).
			Return(&service.ChallengeResponse{ID: 5, Name: "Morning Run"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/challenges/5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("MaskedForOutsider", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(uint(5), uint(42)).
			Return(nil, apperrors.ErrChallengeNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/challenges/5", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGetTeamChallenges tests the GetTeamChallenges handler
func (suite *ChallengeHandlerTestSuite) TestGetTeamChallenges() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByTeam(uint(7)).
			Return([]service.ChallengeResponse{
				{ID: 1, Name: "Morning Run", CompletionCount: 3},
				{ID: 2, Name: "Pushups", CompletionCount: 0},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/7/challenges", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.ChallengeResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, 3, response[0].CompletionCount)
	})
}

// TestUpdateChallenge tests the UpdateChallenge handler
func (suite *ChallengeHandlerTestSuite) TestUpdateChallenge() {
	suite.T().Run("NotOwner", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(5), gomock.Any(), uint(42)).
			Return(nil, apperrors.ErrNotOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/challenges/5", map[string]interface{}{
			"name": "Renamed",
		})

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestDeleteChallenge tests the DeleteChallenge handler
func (suite *ChallengeHandlerTestSuite) TestDeleteChallenge() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(uint(5), uint(42)).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/challenges/5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestLogCompletion tests the LogCompletion handler
func (suite *ChallengeHandlerTestSuite) TestLogCompletion() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.CompletionResponse{
			ID:          1,
			ChallengeID: 5,
			UserID:      42,
			Notes:       "Felt great",
		}

		suite.mockService.EXPECT().
			LogCompletion(uint(5), uint(42), gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/challenges/5/complete", map[string]interface{}{
			"notes": "Felt great",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.CompletionResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expected.Notes, response.Notes)
	})
}

// TestGetMyChallenges tests the GetMyChallenges handler
func (suite *ChallengeHandlerTestSuite) TestGetMyChallenges() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetMine(uint(42)).
			Return([]service.ChallengeResponse{{ID: 1}, {ID: 2}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/challenges/mine", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.ChallengeResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})
}

// TestChallengeHandlerTestSuite runs the test suite
func TestChallengeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChallengeHandlerTestSuite))
}
