package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"teamquest-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer := newTestIssuer(t)
	mw := NewMiddleware(issuer)

	router := gin.New()
	protected := router.Group("/", mw.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": role})
	})
	protected.POST("/teams", mw.RequireRole(models.UserRoleCoach, models.UserRoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	return router, issuer
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _ := setupAuthRouter(t)
	recorder := doRequest(router, http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abcdef")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router, _ := setupAuthRouter(t)
	recorder := doRequest(router, http.MethodGet, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	router, issuer := setupAuthRouter(t)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	recorder := doRequest(router, http.MethodGet, "/me", token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"user_id":42`)
}

func TestRequireRoleForbidsPlayer(t *testing.T) {
	router, issuer := setupAuthRouter(t)

	player := &models.User{ID: 7, Email: "player@example.com", Role: models.UserRolePlayer}
	token, err := issuer.Issue(player)
	require.NoError(t, err)

	recorder := doRequest(router, http.MethodPost, "/teams", token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRoleAllowsCoach(t *testing.T) {
	router, issuer := setupAuthRouter(t)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	recorder := doRequest(router, http.MethodPost, "/teams", token)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}
