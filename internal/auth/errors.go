// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package auth

import "errors"

// Sentinel errors for the authentication subsystem. Callers check them
// with errors.Is; the oops wrappers around them carry the context.
var (
	// ErrUserNotFound is returned when no user exists for an email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidToken is returned for tokens that fail validation for
	// any reason: bad signature, malformed payload, or expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthorized is the single error the resolver exposes. It
	// deliberately does not say why resolution failed.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrInvalidInput is returned for malformed registration or login
	// input.
	ErrInvalidInput = errors.New("invalid input")
)
