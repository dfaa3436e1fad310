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

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAuthServiceInterface
	handler     *handlers.AuthHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAuthServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAuthHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	authRoutes := suite.httpSuite.Router.Group("/api/auth")
	{
		authRoutes.POST("/register", suite.handler.Register)
		authRoutes.POST("/login", suite.handler.Login)
		authRoutes.POST("/setup-admin", suite.handler.SetupFirstAdmin)
		authRoutes.POST("/forgot-password", suite.handler.ForgotPassword)
		authRoutes.POST("/set-password", suite.handler.SetPassword)
		authRoutes.POST("/verify-email", suite.handler.VerifyEmail)
	}
	suite.httpSuite.Router.GET("/api/auth/me", fakeAuth(42, models.UserRolePlayer), suite.handler.Me)
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegister tests the Register handler
func (suite *AuthHandlerTestSuite) TestRegister() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Register(gomock.Any()).
			Return(&service.AuthResponse{Token: "jwt-token"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", map[string]interface{}{
			"email":    "player@test.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.AuthResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "jwt-token", response.Token)
	})

	suite.T().Run("EmailTaken", func(t *testing.T) {
		suite.mockService.EXPECT().
			Register(gomock.Any()).
			Return(nil, apperrors.ErrEmailTaken).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", map[string]interface{}{
			"email":    "taken@test.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestLogin tests the Login handler
func (suite *AuthHandlerTestSuite) TestLogin() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Login(gomock.Any()).
			Return(&service.AuthResponse{Token: "jwt-token"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/login", map[string]interface{}{
			"email":    "player@test.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidCredentials", func(t *testing.T) {
		suite.mockService.EXPECT().
			Login(gomock.Any()).
			Return(nil, apperrors.ErrInvalidCredentials).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/login", map[string]interface{}{
			"email":    "player@test.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

// TestSetupFirstAdmin tests the SetupFirstAdmin handler
func (suite *AuthHandlerTestSuite) TestSetupFirstAdmin() {
	suite.T().Run("AdminExists", func(t *testing.T) {
		suite.mockService.EXPECT().
			SetupFirstAdmin(gomock.Any()).
			Return(nil, apperrors.ErrAdminExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/setup-admin", map[string]interface{}{
			"email":    "admin@test.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestForgotPassword tests the ForgotPassword handler
func (suite *AuthHandlerTestSuite) TestForgotPassword() {
	suite.T().Run("AlwaysGeneric", func(t *testing.T) {
		suite.mockService.EXPECT().
			ForgotPassword(gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/forgot-password", map[string]interface{}{
			"email": "whoever@test.com",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]string
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Contains(t, response["message"], "if the account exists")
	})
}

// TestSetPassword tests the SetPassword handler
func (suite *AuthHandlerTestSuite) TestSetPassword() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			SetPassword(gomock.Any()).
			Return(&service.AuthResponse{Token: "jwt-token"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/set-password", map[string]interface{}{
			"token":    "some-token",
			"password": "newpassword1",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("ExpiredToken", func(t *testing.T) {
		suite.mockService.EXPECT().
			SetPassword(gomock.Any()).
			Return(nil, apperrors.ErrInvalidOrExpiredToken).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/set-password", map[string]interface{}{
			"token":    "stale-token",
			"password": "newpassword1",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestVerifyEmail tests the VerifyEmail handler
func (suite *AuthHandlerTestSuite) TestVerifyEmail() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			VerifyEmail("verify-token").
			Return(&service.UserResponse{ID: 1, EmailVerified: true}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/verify-email", map[string]string{
			"token": "verify-token",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.UserResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.EmailVerified)
	})

	suite.T().Run("MissingToken", func(t *testing.T) {
		suite.mockService.EXPECT().
			VerifyEmail("").
			Return(nil, apperrors.ErrInvalidOrExpiredToken).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/verify-email", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestMe tests the Me handler
func (suite *AuthHandlerTestSuite) TestMe() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Me(uint(42)).
			Return(&service.UserResponse{ID: 42, Email: "me@test.com", Role: models.UserRolePlayer}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/auth/me", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.UserResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "me@test.com", response.Email)
	})
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
