// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

// Package postgres implements the task repository using PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/FAbrickA/TaskApp/internal/task"
)

// poolIface abstracts query execution so tests can substitute a
// pgxmock pool for *pgxpool.Pool.
type poolIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TaskRepository implements task.Repository using PostgreSQL. Every
// statement filters by user_id; ownership is never checked after the
// query.
type TaskRepository struct {
	pool poolIface
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool poolIface) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// Create stores a new task with storage-assigned ID and timestamps.
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	created := *t

	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, is_done, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, t.Title, t.Description, t.IsDone, t.UserID).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, oops.Code("TASK_CREATE_FAILED").
			With("operation", "insert task").
			With("user_id", t.UserID).
			Wrap(err)
	}
	return &created, nil
}

// GetByID retrieves the owner's task with the given ID.
func (r *TaskRepository) GetByID(ctx context.Context, ownerID, taskID int64) (*task.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, is_done, created_at, updated_at, user_id
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`, taskID, ownerID)

	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("TASK_NOT_FOUND").
			With("task_id", taskID).
			Wrap(task.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("TASK_GET_FAILED").
			With("operation", "get task by id").
			With("task_id", taskID).
			Wrap(err)
	}
	return t, nil
}

// ListByOwner returns all tasks owned by ownerID, ordered by ID.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]task.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, is_done, created_at, updated_at, user_id
		FROM tasks
		WHERE user_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, oops.Code("TASK_LIST_FAILED").
			With("operation", "list tasks").
			With("user_id", ownerID).
			Wrap(err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, oops.Code("TASK_LIST_FAILED").
				With("operation", "scan task row").
				Wrap(err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("TASK_LIST_FAILED").
			With("operation", "iterate tasks").
			Wrap(err)
	}
	return tasks, nil
}

// Update applies the field mask in a single UPDATE statement and
// refreshes updated_at.
func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID int64, u task.Update) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if u.Title != nil {
		add("title", *u.Title)
	}
	if u.Description != nil {
		add("description", *u.Description)
	}
	if u.IsDone != nil {
		add("is_done", *u.IsDone)
	}
	if len(sets) == 0 {
		return oops.Code("TASK_EMPTY_UPDATE").Wrapf(task.ErrInvalidInput, "update must set at least one field")
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, taskID, ownerID)
	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return oops.Code("TASK_UPDATE_FAILED").
			With("operation", "update task").
			With("task_id", taskID).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("TASK_NOT_FOUND").
			With("task_id", taskID).
			Wrap(task.ErrNotFound)
	}
	return nil
}

// Delete removes the owner's task permanently.
func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID int64) error {
	result, err := r.pool.Exec(ctx, `
		DELETE FROM tasks WHERE id = $1 AND user_id = $2
	`, taskID, ownerID)
	if err != nil {
		return oops.Code("TASK_DELETE_FAILED").
			With("operation", "delete task").
			With("task_id", taskID).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("TASK_NOT_FOUND").
			With("task_id", taskID).
			Wrap(task.ErrNotFound)
	}
	return nil
}

func scanTask(row pgx.Row) (*task.Task, error) {
	t := &task.Task{}
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.IsDone,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.UserID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck // callers wrap with context-specific info
	}
	return t, nil
}

// Compile-time interface check.
var _ task.Repository = (*TaskRepository)(nil)
