// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

// Package auth provides authentication primitives for TaskApp.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/samber/oops"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. The salt is the SHA-256 digest of the password
// itself, which keeps the scheme deterministic per password; the
// stretch factor is what resists brute force.
const (
	pbkdf2Iterations = 100_000
	pbkdf2KeyLen     = 32 // output length in bytes, 64 hex chars
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = oops.Code("AUTH_EMPTY_PASSWORD").Wrapf(ErrInvalidInput, "password cannot be empty")

// PasswordHasher provides password hashing and verification.
type PasswordHasher interface {
	// Hash produces an irreversible digest of the password.
	Hash(password string) (string, error)

	// Verify checks if the password matches the digest.
	// Returns (true, nil) on match, (false, nil) on mismatch, or error on invalid digest.
	Verify(password, digest string) (bool, error)
}

// PBKDF2Hasher implements PasswordHasher using PBKDF2-HMAC-SHA256.
type PBKDF2Hasher struct{}

// NewPBKDF2Hasher creates a new PBKDF2Hasher.
func NewPBKDF2Hasher() *PBKDF2Hasher {
	return &PBKDF2Hasher{}
}

// Hash produces a hex-encoded PBKDF2-HMAC-SHA256 digest of the password.
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	return hex.EncodeToString(h.derive(password)), nil
}

// Verify checks if the password matches the digest.
func (h *PBKDF2Hasher) Verify(password, digest string) (bool, error) {
	expected, err := hex.DecodeString(digest)
	if err != nil {
		return false, oops.Code("AUTH_INVALID_DIGEST").
			With("operation", "decode stored digest").
			Wrap(err)
	}
	if password == "" {
		return false, nil
	}

	computed := h.derive(password)
	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

func (h *PBKDF2Hasher) derive(password string) []byte {
	salt := sha256.Sum256([]byte(password))
	return pbkdf2.Key([]byte(password), salt[:], pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
}

// Compile-time interface check.
var _ PasswordHasher = (*PBKDF2Hasher)(nil)
