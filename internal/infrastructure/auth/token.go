package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrOpaqueToken is returned for access tokens that are not JWTs.
var ErrOpaqueToken = errors.New("access token is not a JWT")

// TokenInfo is what the client can read from an access token without the
// signing key. It is informational: the session is never expired locally.
type TokenInfo struct {
	Subject   string     `json:"subject,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the token carries an expiry earlier than now.
func (i TokenInfo) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}

type castmateClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspect decodes the claims of a JWT access token without verifying its
// signature.
func Inspect(token string) (TokenInfo, error) {
	token = strings.TrimSpace(token)
	if strings.Count(token, ".") != 2 {
		return TokenInfo{}, ErrOpaqueToken
	}

	var claims castmateClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, errors.Join(ErrOpaqueToken, err)
	}

	info := TokenInfo{Subject: claims.Subject, Email: claims.Email, Role: claims.Role}
	if claims.IssuedAt != nil {
		t := claims.IssuedAt.Time.UTC()
		info.IssuedAt = &t
	}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time.UTC()
		info.ExpiresAt = &t
	}
	return info, nil
}
