// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// DefaultTokenTTL is used when no TTL is configured.
const DefaultTokenTTL = 30 * time.Minute

// Claims is the payload of an access token. Email is the sole
// identity claim; everything else is standard JWT bookkeeping.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, time-bound access tokens.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenService creates a TokenService signing with the given
// symmetric secret. defaultTTL applies when Issue is called with a
// zero TTL; a non-positive defaultTTL falls back to DefaultTokenTTL.
func NewTokenService(secret string, defaultTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, oops.Code("AUTH_EMPTY_SECRET").Errorf("signing secret is required")
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), defaultTTL: defaultTTL}, nil
}

// Issue produces a signed token carrying the email claim, expiring
// after ttl. A zero ttl means the configured default.
func (s *TokenService) Issue(email string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", oops.Code("AUTH_TOKEN_SIGN_FAILED").
			With("operation", "sign token").
			Wrap(err)
	}
	return signed, nil
}

// Validate verifies the token signature and expiry and returns the
// email claim. All failure modes collapse to ErrInvalidToken; the
// underlying cause is kept in the error context for logging only.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, oops.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", oops.Code("AUTH_INVALID_TOKEN").
			With("cause", err.Error()).
			Wrap(ErrInvalidToken)
	}
	if !token.Valid {
		return "", oops.Code("AUTH_INVALID_TOKEN").Wrap(ErrInvalidToken)
	}

	return claims.Email, nil
}
