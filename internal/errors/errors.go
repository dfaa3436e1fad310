package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrMembershipNotFound = &NotFoundError{Entity: "team membership"}
	ErrChallengeNotFound  = &NotFoundError{Entity: "challenge"}
	ErrTeamGoalNotFound   = &NotFoundError{Entity: "team goal"}
	ErrUserGoalNotFound   = &NotFoundError{Entity: "user goal"}
	ErrOffSeasonNotFound  = &NotFoundError{Entity: "off-season"}
)

// Already Exists Errors
var (
	ErrEmailTaken  = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrAdminExists = &AlreadyExistsError{Entity: "admin", Context: "- use the regular admin creation endpoint"}
)

// Authentication Errors
var (
	// ErrInvalidCredentials covers unknown email, missing password (pending
	// invite) and wrong password alike, so responses never reveal which
	// accounts exist.
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingAuthHeader  = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidAuthToken   = &AuthenticationError{Message: "invalid or expired session token"}
)

// Authorization Errors
var (
	ErrInsufficientRole = &AuthorizationError{Message: "insufficient role for this operation"}
	ErrNotOwner         = &AuthorizationError{Message: "only the creator may modify this resource"}
	ErrNotTeamMember    = &AuthorizationError{Message: "user is not a member of this team"}
)

// Business Logic Errors
var (
	// ErrInvalidOrExpiredToken is returned for both unknown and expired
	// single-use tokens; callers must not be able to tell the two apart.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrInvalidDateRange      = errors.New("end date must be after start date")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
