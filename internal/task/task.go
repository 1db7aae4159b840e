// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

// Package task provides owner-scoped task records and their store.
package task

import (
	"context"
	"errors"
	"time"

	"github.com/samber/oops"
)

// Field length limits.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 2000
)

// Sentinel errors for the task subsystem.
var (
	// ErrNotFound is returned when a task does not exist for the
	// given owner. A task belonging to another owner is
	// indistinguishable from a missing one.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidInput is returned for malformed task input.
	ErrInvalidInput = errors.New("invalid task input")
)

// Task is a single task record. UserID references the owning user and
// never changes after creation.
type Task struct {
	ID          int64
	Title       string
	Description *string
	IsDone      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
}

// Update is a field mask for partial updates. Nil fields are left
// untouched.
type Update struct {
	Title       *string
	Description *string
	IsDone      *bool
}

// IsEmpty reports whether the mask selects no fields.
func (u Update) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.IsDone == nil
}

// Validate checks the mask's field lengths.
func (u Update) Validate() error {
	if u.Title != nil {
		if err := validateTitle(*u.Title); err != nil {
			return err
		}
	}
	if u.Description != nil {
		if err := validateDescription(u.Description); err != nil {
			return err
		}
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return oops.Code("TASK_INVALID_TITLE").Wrapf(ErrInvalidInput, "title cannot be empty")
	}
	if len(title) > MaxTitleLength {
		return oops.Code("TASK_INVALID_TITLE").
			With("max", MaxTitleLength).
			Wrapf(ErrInvalidInput, "title must be at most %d characters", MaxTitleLength)
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && len(*description) > MaxDescriptionLength {
		return oops.Code("TASK_INVALID_DESCRIPTION").
			With("max", MaxDescriptionLength).
			Wrapf(ErrInvalidInput, "description must be at most %d characters", MaxDescriptionLength)
	}
	return nil
}

// Repository manages task persistence. Every operation is scoped to
// an owner; implementations must filter by owner in the query itself,
// not after the fact.
type Repository interface {
	// Create stores a new task and returns it with the
	// storage-assigned ID and timestamps.
	Create(ctx context.Context, t *Task) (*Task, error)

	// GetByID retrieves a task by ID for the given owner.
	// Returns ErrNotFound if the task does not exist for that owner.
	GetByID(ctx context.Context, ownerID, taskID int64) (*Task, error)

	// ListByOwner returns all tasks owned by ownerID, ordered by ID.
	ListByOwner(ctx context.Context, ownerID int64) ([]Task, error)

	// Update applies the field mask to the owner's task and refreshes
	// updated_at. Returns ErrNotFound under the same rule as GetByID.
	Update(ctx context.Context, ownerID, taskID int64, u Update) error

	// Delete removes the owner's task permanently.
	// Returns ErrNotFound under the same rule as GetByID.
	Delete(ctx context.Context, ownerID, taskID int64) error
}
