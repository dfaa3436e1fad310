package mailer

import (
	"testing"

	"teamquest-backend/internal/config"
	apperrors "teamquest-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvitation(t *testing.T) {
	body, err := render(invitationTemplate, map[string]string{
		"InviterName": "coach@x.com",
		"TeamName":    "Eagles",
		"Link":        "http://localhost:8085/welcome/?token=abc123",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "coach@x.com")
	assert.Contains(t, body, "Eagles")
	assert.Contains(t, body, "http://localhost:8085/welcome/?token=abc123")
	assert.Contains(t, body, "48 hours")
}

func TestRenderPasswordReset(t *testing.T) {
	body, err := render(passwordResetTemplate, map[string]string{
		"Link": "http://localhost:8085/reset-password?token=xyz",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "reset-password?token=xyz")
	assert.Contains(t, body, "24 hours")
}

func TestRenderVerification(t *testing.T) {
	body, err := render(verificationTemplate, map[string]string{
		"Link": "http://localhost:8085/verify-email?token=xyz",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "verify-email?token=xyz")
}

func TestSendFailsWithoutConfiguration(t *testing.T) {
	m := New(&config.Config{FrontendBaseURL: "http://localhost:8085"})

	err := m.SendPasswordReset("user@example.com", "tok")
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))

	m = New(&config.Config{
		SMTPHost:        "smtp.example.com",
		SMTPPort:        2525,
		FrontendBaseURL: "http://localhost:8085",
	})
	err = m.SendPasswordReset("user@example.com", "tok")
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}
