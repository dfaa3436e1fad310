package handlers

import (
	"net/http"

	"teamquest-backend/internal/auth"
	"teamquest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication and account flows
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/auth/register
// @Summary Register a new account
// @Description Create a player or coach account and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.AuthResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid request or email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify credentials and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "Credentials"
// @Success 200 {object} service.AuthResponse "Session token"
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetupFirstAdmin handles POST /api/auth/setup-admin
// @Summary Create the first admin account
// @Description Create the bootstrap admin; fails once any admin exists
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.CreateAdminRequest true "Admin credentials"
// @Success 201 {object} service.AuthResponse "Admin created"
// @Failure 400 {object} ErrorResponse "Admin already exists"
// @Router /auth/setup-admin [post]
func (h *AuthHandler) SetupFirstAdmin(c *gin.Context) {
	var req service.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.SetupFirstAdmin(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateAdmin handles POST /api/auth/admin
// @Summary Create an additional admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.CreateAdminRequest true "Admin credentials"
// @Success 201 {object} service.UserResponse "Admin created"
// @Failure 400 {object} ErrorResponse "Email already registered"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /auth/admin [post]
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req service.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.CreateAdmin(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ForgotPassword handles POST /api/auth/forgot-password
// @Summary Start a password reset
// @Description Email a reset link; the response never reveals whether the address is registered
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse "Reset link sent if the account exists"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req service.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ForgotPassword(&req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "if the account exists, a reset link has been sent"})
}

// SetPassword handles POST /api/auth/set-password
// @Summary Set a password with a single-use token
// @Description Redeem an invitation or reset token, set the password and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.SetPasswordRequest true "Token and new password"
// @Success 200 {object} service.AuthResponse "Session token"
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Router /auth/set-password [post]
func (h *AuthHandler) SetPassword(c *gin.Context) {
	var req service.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.SetPassword(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyEmail handles POST /api/auth/verify-email
// @Summary Verify an email address
// @Description Redeem a verification token and mark the account's email verified
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.VerifyEmailRequest true "Verification token"
// @Success 200 {object} service.UserResponse "Verified account"
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req service.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.VerifyEmail(req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/auth/me
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} service.UserResponse "Profile with team memberships"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	resp, err := h.authService.Me(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DevLogin handles POST /api/auth/dev-login. The route is registered only
// outside production.
// @Summary Development login bypass
// @Description Issue a long-lived token for the seed account
// @Tags auth
// @Produce json
// @Success 200 {object} service.AuthResponse "Long-lived session token"
// @Failure 404 {object} ErrorResponse "Seed account missing"
// @Router /auth/dev-login [post]
func (h *AuthHandler) DevLogin(c *gin.Context) {
	resp, err := h.authService.DevLogin()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
