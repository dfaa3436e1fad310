package service

import (
	"errors"
	"fmt"
	"time"

	"teamquest-backend/internal/auth"
	"teamquest-backend/internal/database/models"
	apperrors "teamquest-backend/internal/errors"
	"teamquest-backend/internal/mailer"
	"teamquest-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// devLoginUserID is the account the development login bypass signs in as.
const devLoginUserID = 1

// AuthService handles registration, login and the single-use token flows
// (invitation acceptance, password reset, email verification).
type AuthService struct {
	userRepo  repository.UserRepositoryInterface
	issuer    *auth.TokenIssuer
	mail      mailer.EmailSender
	validator *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepositoryInterface, issuer *auth.TokenIssuer, mail mailer.EmailSender, validator *validator.Validate) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		issuer:    issuer,
		mail:      mail,
		validator: validator,
	}
}

// RegisterRequest represents the request to register a new account.
// Admin accounts are created through the dedicated admin endpoints only.
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email,max=255"`
	Password string          `json:"password" validate:"required,min=8,max=72"`
	Role     models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=player coach"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateAdminRequest represents the request to create an admin account
type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// ForgotPasswordRequest represents the request to start a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SetPasswordRequest redeems a single-use token from an invitation or a
// password reset email and sets the account password.
type SetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// VerifyEmailRequest redeems a single-use email verification token
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// AuthResponse carries a signed session token
type AuthResponse struct {
	Token string `json:"token"`
}

// UserTeamResponse is one team membership in a user profile
type UserTeamResponse struct {
	TeamID   uint            `json:"team_id"`
	Name     string          `json:"name"`
	Role     models.TeamRole `json:"role"`
	JoinedAt time.Time       `json:"joined_at"`
}

// InviterResponse identifies the user who sent an invitation
type InviterResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// UserResponse represents a user profile
type UserResponse struct {
	ID            uint               `json:"id"`
	Email         string             `json:"email"`
	Role          models.UserRole    `json:"role"`
	Invited       bool               `json:"invited"`
	EmailVerified bool               `json:"email_verified"`
	CreatedAt     time.Time          `json:"created_at"`
	InvitedBy     *InviterResponse   `json:"invited_by,omitempty"`
	Teams         []UserTeamResponse `json:"teams"`
}

// Register creates a new account and returns a session token. A
// verification link is emailed best-effort; delivery failures never fail
// the registration.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.UserRolePlayer
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: &hash,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.sendVerification(user)

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &AuthResponse{Token: token}, nil
}

// Login verifies credentials and returns a session token. Unknown emails,
// accounts still pending invitation setup and wrong passwords all produce
// the same error.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.PasswordHash == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(req.Password, *user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &AuthResponse{Token: token}, nil
}

// SetupFirstAdmin creates the very first admin account and returns a
// session token. It refuses to run once any admin exists.
func (s *AuthService) SetupFirstAdmin(req *CreateAdminRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	adminExists, err := s.userRepo.AdminExists()
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if adminExists {
		return nil, apperrors.ErrAdminExists
	}

	user, err := s.createAdmin(req)
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &AuthResponse{Token: token}, nil
}

// CreateAdmin creates an additional admin account. Unlike SetupFirstAdmin
// it does not log the new admin in.
func (s *AuthService) CreateAdmin(req *CreateAdminRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.createAdmin(req)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *AuthService) createAdmin(req *CreateAdminRequest) (*models.User, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:         req.Email,
		PasswordHash:  &hash,
		Role:          models.UserRoleAdmin,
		EmailVerified: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return user, nil
}

// ForgotPassword mints a 24-hour reset token and emails the reset link.
// The outcome is identical whether or not the email belongs to an account,
// so the endpoint cannot be used to probe for registered addresses.
func (s *AuthService) ForgotPassword(req *ForgotPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := auth.NewSecureToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	if err := s.userRepo.SetToken(user.ID, token, auth.TokenExpiry(auth.PasswordResetTTL)); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.mail.SendPasswordReset(user.Email, token); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to send password reset email")
	}
	return nil
}

// SetPassword redeems a single-use token, stores the new password hash and
// returns a session token. The token is consumed atomically: a second
// redemption of the same token fails even under concurrent requests.
func (s *AuthService) SetPassword(req *SetPasswordRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.ConsumePasswordToken(req.Token, hash)
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &AuthResponse{Token: token}, nil
}

// VerifyEmail redeems a verification token and marks the email verified.
func (s *AuthService) VerifyEmail(token string) (*UserResponse, error) {
	if token == "" {
		return nil, apperrors.NewValidationError("token", "token is required")
	}

	user, err := s.userRepo.ConsumeVerificationToken(token)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Me returns the authenticated user's profile with team memberships and,
// for invited accounts, the inviter.
func (s *AuthService) Me(userID uint) (*UserResponse, error) {
	user, err := s.userRepo.GetWithRelations(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return toUserResponse(user), nil
}

// DevLogin issues a long-lived session token for the seed account. The
// route serving it is only registered outside production.
func (s *AuthService) DevLogin() (*AuthResponse, error) {
	user, err := s.userRepo.GetByID(devLoginUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	token, err := s.issuer.IssueLongLived(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &AuthResponse{Token: token}, nil
}

func (s *AuthService) sendVerification(user *models.User) {
	token, err := auth.NewSecureToken()
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to generate verification token")
		return
	}
	if err := s.userRepo.SetToken(user.ID, token, auth.TokenExpiry(auth.EmailVerificationTTL)); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to store verification token")
		return
	}
	if err := s.mail.SendVerification(user.Email, token); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to send verification email")
	}
}

func toUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Role:          user.Role,
		Invited:       user.Invited,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		Teams:         make([]UserTeamResponse, 0, len(user.TeamUsers)),
	}
	if user.InvitedBy != nil {
		resp.InvitedBy = &InviterResponse{
			ID:    user.InvitedBy.ID,
			Email: user.InvitedBy.Email,
		}
	}
	for _, tu := range user.TeamUsers {
		resp.Teams = append(resp.Teams, UserTeamResponse{
			TeamID:   tu.TeamID,
			Name:     tu.Team.Name,
			Role:     tu.Role,
			JoinedAt: tu.JoinedAt,
		})
	}
	return resp
}
