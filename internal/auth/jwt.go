package auth

import (
	"fmt"
	"time"

	"teamquest-backend/internal/database/models"
	apperrors "teamquest-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenTTL is the validity window of a regular session token.
const SessionTokenTTL = 24 * time.Hour

// devTokenTTL backs the development-only login bypass; it is never used
// when the route is absent from the production router.
const devTokenTTL = 365 * 24 * time.Hour

// Claims represents the session token claims: who the user is and what
// platform role their token was minted with. Role changes take effect only
// when a new token is issued.
type Claims struct {
	UserID uint            `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer builds and signs session tokens from a user's identity.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenIssuer creates a token issuer from the signing configuration.
// All three settings are required.
func NewTokenIssuer(secret, issuer, audience string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is not configured")
	}
	if issuer == "" {
		return nil, apperrors.NewConfigurationError("JWT issuer is not configured")
	}
	if audience == "" {
		return nil, apperrors.NewConfigurationError("JWT audience is not configured")
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}, nil
}

// Issue signs a session token for the user with a 24 hour validity window.
func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	return i.issue(user, SessionTokenTTL)
}

// IssueLongLived signs a long-lived token for the development login bypass.
func (i *TokenIssuer) IssueLongLived(user *models.User) (string, error) {
	return i.issue(user, devTokenTTL)
}

func (i *TokenIssuer) issue(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Validate parses and verifies a session token and returns its claims.
func (i *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(i.issuer), jwt.WithAudience(i.audience))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
