// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/oops"
)

// MaxEmailLength bounds stored email addresses.
const MaxEmailLength = 255

// User is an identity record. ID is assigned by storage on creation;
// the email is unique across all users and case-sensitive as stored.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
}

// ValidateEmail checks that an email is usable as an identity key.
func ValidateEmail(email string) error {
	if email == "" {
		return oops.Code("AUTH_INVALID_EMAIL").Wrapf(ErrInvalidInput, "email cannot be empty")
	}
	if len(email) > MaxEmailLength {
		return oops.Code("AUTH_INVALID_EMAIL").
			With("max", MaxEmailLength).
			Wrapf(ErrInvalidInput, "email must be at most %d characters", MaxEmailLength)
	}
	if !strings.Contains(email, "@") {
		return oops.Code("AUTH_INVALID_EMAIL").Wrapf(ErrInvalidInput, "email must contain @")
	}
	return nil
}

// UserRepository manages user persistence.
type UserRepository interface {
	// Create stores a new user and returns it with the
	// storage-assigned ID. Returns ErrEmailTaken if the email is
	// already registered; the unique constraint on email is the
	// authority for that check.
	Create(ctx context.Context, email, passwordHash string) (*User, error)

	// GetByEmail retrieves a user by exact email match.
	// Returns ErrUserNotFound if no user has the given email.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// Exists reports whether a user with the given email is registered.
func Exists(ctx context.Context, users UserRepository, email string) (bool, error) {
	_, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, oops.Code("AUTH_LOOKUP_FAILED").
			With("operation", "check user exists").
			Wrap(err)
	}
	return true, nil
}
