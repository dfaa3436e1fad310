package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "teamquest-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse represents a standard API message response
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// respondError maps service errors onto HTTP status codes. Anything not
// covered by the error taxonomy is a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err),
		apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidOrExpiredToken),
		errors.Is(err, apperrors.ErrInvalidDateRange):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseIDParam parses a numeric path parameter, responding with 400 on
// malformed input.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}
