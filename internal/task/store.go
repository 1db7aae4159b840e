// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package task

import (
	"context"

	"github.com/samber/oops"

	"github.com/FAbrickA/TaskApp/internal/auth"
)

// Store provides ownership-scoped CRUD over tasks. The owner is the
// already-resolved principal; cross-tenant isolation is enforced at
// the repository query level on every operation.
type Store struct {
	tasks Repository
}

// NewStore creates a new Store.
func NewStore(tasks Repository) (*Store, error) {
	if tasks == nil {
		return nil, oops.Errorf("task repository is required")
	}
	return &Store{tasks: tasks}, nil
}

// Create validates and persists a new task owned by owner.
func (s *Store) Create(ctx context.Context, owner *auth.User, title string, description *string, isDone bool) (*Task, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	created, err := s.tasks.Create(ctx, &Task{
		Title:       title,
		Description: description,
		IsDone:      isDone,
		UserID:      owner.ID,
	})
	if err != nil {
		return nil, oops.Code("TASK_CREATE_FAILED").
			With("operation", "create task").
			With("user_id", owner.ID).
			Wrap(err)
	}
	return created, nil
}

// Get returns the owner's task with the given ID.
func (s *Store) Get(ctx context.Context, owner *auth.User, taskID int64) (*Task, error) {
	t, err := s.tasks.GetByID(ctx, owner.ID, taskID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List returns all tasks owned by owner. No tasks is an empty slice,
// not an error.
func (s *Store) List(ctx context.Context, owner *auth.User) ([]Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// Update applies a partial update to the owner's task. An empty mask
// is rejected before storage is touched.
func (s *Store) Update(ctx context.Context, owner *auth.User, taskID int64, u Update) error {
	if u.IsEmpty() {
		return oops.Code("TASK_EMPTY_UPDATE").Wrapf(ErrInvalidInput, "update must set at least one field")
	}
	if err := u.Validate(); err != nil {
		return err
	}
	return s.tasks.Update(ctx, owner.ID, taskID, u)
}

// Delete removes the owner's task permanently.
func (s *Store) Delete(ctx context.Context, owner *auth.User, taskID int64) error {
	return s.tasks.Delete(ctx, owner.ID, taskID)
}
