// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package auth

import (
	"context"
	"errors"

	"github.com/samber/oops"
)

// TokenType is the fixed label returned alongside access tokens.
const TokenType = "bearer"

// Token is the result of a successful login.
type Token struct {
	AccessToken string
	TokenType   string
}

// Service provides registration and login.
//
// Login distinguishes an unknown email (ErrUserNotFound) from a wrong
// password (ErrWrongPassword). That split leaks whether an email is
// registered; it is kept because it is the documented contract, and
// flagged as a known hardening gap.
type Service struct {
	users  UserRepository
	hasher PasswordHasher
	tokens *TokenService
}

// NewService creates a new auth Service.
func NewService(users UserRepository, hasher PasswordHasher, tokens *TokenService) (*Service, error) {
	if users == nil {
		return nil, oops.Errorf("user repository is required")
	}
	if hasher == nil {
		return nil, oops.Errorf("password hasher is required")
	}
	if tokens == nil {
		return nil, oops.Errorf("token service is required")
	}
	return &Service{users: users, hasher: hasher, tokens: tokens}, nil
}

// Register creates a new user. No token is issued; the caller logs in
// afterwards. The Exists pre-check is a fast path only: a concurrent
// registration can still pass it, and the repository's unique
// constraint settles the race with ErrEmailTaken.
func (s *Service) Register(ctx context.Context, email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}

	taken, err := Exists(ctx, s.users, email)
	if err != nil {
		return oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "check email availability").
			Wrap(err)
	}
	if taken {
		return oops.Code("AUTH_EMAIL_TAKEN").
			With("email", email).
			Wrap(ErrEmailTaken)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	if _, err := s.users.Create(ctx, email, digest); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return oops.Code("AUTH_EMAIL_TAKEN").
				With("email", email).
				Wrap(ErrEmailTaken)
		}
		return oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "create user").
			Wrap(err)
	}
	return nil
}

// Login authenticates a user and issues an access token with the
// default TTL.
func (s *Service) Login(ctx context.Context, email, password string) (*Token, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, oops.Code("AUTH_USER_NOT_FOUND").Wrap(ErrUserNotFound)
		}
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "get user by email").
			Wrap(err)
	}

	valid, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(err)
	}
	if !valid {
		return nil, oops.Code("AUTH_WRONG_PASSWORD").Wrap(ErrWrongPassword)
	}

	accessToken, err := s.tokens.Issue(user.Email, 0)
	if err != nil {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "issue token").
			Wrap(err)
	}

	return &Token{AccessToken: accessToken, TokenType: TokenType}, nil
}
