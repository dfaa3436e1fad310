package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teamquest-backend/internal/api/handlers"
	"teamquest-backend/internal/database/models"
	apperrors "teamquest-backend/internal/errors"
	"teamquest-backend/internal/mocks"
	"teamquest-backend/internal/service"
	"teamquest-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth injects an authenticated user the way the JWT middleware would.
func fakeAuth(userID uint, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api", fakeAuth(42, models.UserRoleCoach))
	teams := api.Group("/teams")
	{
		teams.GET("", suite.handler.GetAllTeams)
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.POST("/:id/members", suite.handler.AddMember)
		teams.DELETE("/:id/members/:userId", suite.handler.RemoveMember)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":        "Morning Runners",
			"description": "Early-bird cardio crew",
		}

		expected := &service.TeamResponse{
			ID:          1,
			Name:        "Morning Runners",
			Description: "Early-bird cardio crew",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any(), uint(42)).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expected.Name, response.Name)
		assert.Equal(t, expected.ID, response.ID)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/teams", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("ValidationError", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), uint(42)).
			Return(nil, apperrors.NewValidationError("name", "required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.TeamDetailResponse{
			TeamResponse: service.TeamResponse{ID: 7, Name: "Morning Runners"},
			Members: []service.TeamMemberResponse{
				{UserID: 3, Email: "alice@test.com", Role: models.TeamRolePlayer, JoinedAt: time.Now().UTC()},
			},
		}

		suite.mockService.EXPECT().
			GetByID(uint(7)).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/7", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamDetailResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expected.Name, response.Name)
		assert.Len(t, response.Members, 1)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(uint(99)).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("MalformedID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/not-a-number", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUpdateTeam tests the UpdateTeam handler
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.TeamResponse{ID: 7, Name: "Evening Runners"}

		suite.mockService.EXPECT().
			Update(uint(7), gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/teams/7", map[string]interface{}{
			"name": "Evening Runners",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Evening Runners", response.Name)
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(uint(7)).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/7", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(uint(99)).
			Return(apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestAddMember tests the AddMember handler
func (suite *TeamHandlerTestSuite) TestAddMember() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.TeamMemberResponse{
			UserID: 9,
			Email:  "new@test.com",
			Role:   models.TeamRolePlayer,
		}

		suite.mockService.EXPECT().
			AddMember(uint(7), gomock.Any(), uint(42)).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/7/members", map[string]interface{}{
			"email": "new@test.com",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.TeamMemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expected.Email, response.Email)
	})

	suite.T().Run("AlreadyMember", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddMember(uint(7), gomock.Any(), uint(42)).
			Return(nil, &apperrors.AlreadyExistsError{Entity: "team membership"}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/7/members", map[string]interface{}{
			"email": "dup@test.com",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestRemoveMember tests the RemoveMember handler
func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			RemoveMember(uint(7), uint(9)).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/7/members/9", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("NotAMember", func(t *testing.T) {
		suite.mockService.EXPECT().
			RemoveMember(uint(7), uint(9)).
			Return(apperrors.ErrMembershipNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/7/members/9", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
