// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/FAbrickA/TaskApp/internal/auth"
	"github.com/FAbrickA/TaskApp/internal/task"
)

type taskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsDone      bool      `json:"is_done"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsDone      bool    `json:"is_done"`
}

// updateTaskRequest is a field mask: absent fields stay untouched.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsDone      *bool   `json:"is_done"`
}

func toTaskResponse(t *task.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsDone:      t.IsDone,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// principal returns the resolved user; requireAuth guarantees it is
// present on every task route.
func (s *Server) principal(w http.ResponseWriter, r *http.Request) (*auth.User, bool) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		s.unauthorized(w)
		return nil, false
	}
	return user, true
}

func taskID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	user, ok := s.principal(w, r)
	if !ok {
		return
	}
	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	t, err := s.tasks.Get(r.Context(), user, id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, toTaskResponse(t))
	case errors.Is(err, task.ErrNotFound):
		writeError(w, http.StatusNotFound, "Cannot find the task")
	default:
		s.internalError(w, "get task failed", err)
	}
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := s.principal(w, r)
	if !ok {
		return
	}

	tasks, err := s.tasks.List(r.Context(), user)
	if err != nil {
		s.internalError(w, "list tasks failed", err)
		return
	}

	body := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		body = append(body, toTaskResponse(&tasks[i]))
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := s.principal(w, r)
	if !ok {
		return
	}
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := s.tasks.Create(r.Context(), user, req.Title, req.Description, req.IsDone)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, task.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.internalError(w, "create task failed", err)
	}
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := s.principal(w, r)
	if !ok {
		return
	}
	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return
	}
	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.tasks.Update(r.Context(), user, id, task.Update{
		Title:       req.Title,
		Description: req.Description,
		IsDone:      req.IsDone,
	})
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, task.ErrNotFound):
		writeError(w, http.StatusNotFound, "Cannot find the task")
	case errors.Is(err, task.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.internalError(w, "update task failed", err)
	}
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := s.principal(w, r)
	if !ok {
		return
	}
	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	err := s.tasks.Delete(r.Context(), user, id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, task.ErrNotFound):
		writeError(w, http.StatusNotFound, "Cannot find the task")
	default:
		s.internalError(w, "delete task failed", err)
	}
}
