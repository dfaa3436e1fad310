package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// TTL policy for single-use tokens. Password reset and email verification
// links expire after a day, team invitations after two.
const (
	PasswordResetTTL     = 24 * time.Hour
	EmailVerificationTTL = 24 * time.Hour
	InvitationTTL        = 48 * time.Hour
)

const tokenEntropyBytes = 32

// NewSecureToken generates a cryptographically random single-use token,
// URL-safe encoded without padding so it survives links and query strings.
func NewSecureToken() (string, error) {
	buf := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// TokenExpiry returns the absolute expiry for a token minted now with the
// given TTL.
func TokenExpiry(ttl time.Duration) time.Time {
	return time.Now().UTC().Add(ttl)
}
