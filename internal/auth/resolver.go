// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"
)

// Resolver turns a bearer token into the authenticated principal.
// It is the sole gate in front of every owner-scoped operation.
type Resolver struct {
	tokens *TokenService
	users  UserRepository
	logger *slog.Logger
}

// NewResolver creates a new Resolver. A nil logger defaults to
// slog.Default().
func NewResolver(tokens *TokenService, users UserRepository, logger *slog.Logger) (*Resolver, error) {
	if tokens == nil {
		return nil, oops.Errorf("token service is required")
	}
	if users == nil {
		return nil, oops.Errorf("user repository is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{tokens: tokens, users: users, logger: logger}, nil
}

// Resolve validates the token and looks up the user behind its email
// claim. Every failure branch collapses to ErrUnauthorized so callers
// cannot tell a bad signature from an expired token from a deleted
// user; the detailed cause is only logged.
func (r *Resolver) Resolve(ctx context.Context, token string) (*User, error) {
	email, err := r.tokens.Validate(token)
	if err != nil {
		r.logger.DebugContext(ctx, "token validation failed", "error", err)
		return nil, r.unauthorized()
	}
	if email == "" {
		r.logger.DebugContext(ctx, "token carries no email claim")
		return nil, r.unauthorized()
	}

	user, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			r.logger.DebugContext(ctx, "token refers to unknown user")
			return nil, r.unauthorized()
		}
		return nil, oops.Code("AUTH_RESOLVE_FAILED").
			With("operation", "get user by email").
			Wrap(err)
	}

	return user, nil
}

func (r *Resolver) unauthorized() error {
	return oops.Code("AUTH_UNAUTHORIZED").Wrap(ErrUnauthorized)
}
