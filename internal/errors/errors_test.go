package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Entity: "team"}
	assert.Equal(t, "team not found", err.Error())
	assert.True(t, errors.Is(err, ErrTeamNotFound))
	assert.False(t, errors.Is(err, ErrUserNotFound))
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "user already exists with this email", ErrEmailTaken.Error())
	assert.True(t, IsAlreadyExists(ErrEmailTaken))
	assert.True(t, errors.Is(&AlreadyExistsError{Entity: "user"}, ErrEmailTaken))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("end_date", "must be after start date")
	assert.Equal(t, "validation error: end_date - must be after start date", err.Error())
	assert.True(t, IsValidation(err))

	bare := &ValidationError{Message: "bad input"}
	assert.Equal(t, "validation error: bad input", bare.Error())
}

func TestAuthenticationAndAuthorization(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.False(t, IsAuthentication(ErrInsufficientRole))

	assert.True(t, IsAuthorization(ErrInsufficientRole))
	assert.True(t, IsAuthorization(fmt.Errorf("wrapped: %w", ErrNotOwner)))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("JWT secret is not configured")
	assert.True(t, IsConfiguration(err))
	assert.Equal(t, "JWT secret is not configured", err.Error())
}

func TestSentinelTokenError(t *testing.T) {
	wrapped := fmt.Errorf("set password: %w", ErrInvalidOrExpiredToken)
	assert.True(t, errors.Is(wrapped, ErrInvalidOrExpiredToken))
}
