// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package web

import (
	"context"

	"github.com/FAbrickA/TaskApp/internal/auth"
)

// contextKey is a private type to avoid context key collisions.
type contextKey struct{ name string }

var principalKey = contextKey{"principal"}

// withPrincipal stores the authenticated user in the context.
func withPrincipal(ctx context.Context, user *auth.User) context.Context {
	return context.WithValue(ctx, principalKey, user)
}

// PrincipalFromContext returns the authenticated user, if any.
func PrincipalFromContext(ctx context.Context) (*auth.User, bool) {
	user, ok := ctx.Value(principalKey).(*auth.User)
	return user, ok
}
