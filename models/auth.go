package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials is the body of POST /login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /register.
type Registration struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthSession is the login/registration response:
// {access_token, token_type, user?}. The user record may be absent on older
// backend builds; callers fall back to GET /users/me in that case.
type AuthSession struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user,omitempty"`
}

// TokenClaims is the subset of JWT claims the client reads: the subject
// (account id), the role baked into the token, and the expiry.
// The signature is NOT verified: the backend is the authority and the client
// parses claims only for display and local role hints.
type TokenClaims struct {
	Subject   string
	Role      Role
	ExpiresAt time.Time
}

// ParseTokenClaims decodes the claims of a compact JWT without verifying its
// signature. Returns an error if the token cannot be parsed or carries no
// subject.
func ParseTokenClaims(token string) (TokenClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return TokenClaims{}, errors.New("token has no subject claim")
	}

	out := TokenClaims{Subject: sub}
	if role, ok := claims["role"].(string); ok {
		out.Role = ParseRole(role)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}

// Expired reports whether the token expiry lies in the past. Tokens without
// an exp claim never report expired.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
