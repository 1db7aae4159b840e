// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

// Package web provides the HTTP API: registration, token issuance,
// and owner-scoped task CRUD behind bearer authentication.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/samber/oops"

	"github.com/FAbrickA/TaskApp/internal/auth"
	"github.com/FAbrickA/TaskApp/internal/observability"
	"github.com/FAbrickA/TaskApp/internal/task"
)

// DBPinger checks database connectivity for the health endpoints.
type DBPinger func(ctx context.Context) error

// Server holds the API's collaborators and builds its handler.
type Server struct {
	auth     *auth.Service
	resolver *auth.Resolver
	tasks    *task.Store
	pingDB   DBPinger
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewServer creates a new API server. metrics may be nil (requests
// are then not counted); pingDB may be nil (ping_db then reports
// healthy). A nil logger defaults to slog.Default().
func NewServer(authSvc *auth.Service, resolver *auth.Resolver, tasks *task.Store, pingDB DBPinger, logger *slog.Logger, metrics *observability.Metrics) (*Server, error) {
	if authSvc == nil {
		return nil, oops.Errorf("auth service is required")
	}
	if resolver == nil {
		return nil, oops.Errorf("resolver is required")
	}
	if tasks == nil {
		return nil, oops.Errorf("task store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		auth:     authSvc,
		resolver: resolver,
		tasks:    tasks,
		pingDB:   pingDB,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/ping", s.handlePing)
	mux.HandleFunc("GET /api/v1/health/ping_app", s.handlePingApp)
	mux.HandleFunc("GET /api/v1/health/ping_db", s.handlePingDB)

	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/token", s.handleToken)

	mux.Handle("GET /api/v1/tasks", s.requireAuth(s.handleListTasks))
	mux.Handle("POST /api/v1/tasks", s.requireAuth(s.handleCreateTask))
	mux.Handle("GET /api/v1/tasks/{id}", s.requireAuth(s.handleGetTask))
	mux.Handle("PUT /api/v1/tasks/{id}", s.requireAuth(s.handleUpdateTask))
	mux.Handle("DELETE /api/v1/tasks/{id}", s.requireAuth(s.handleDeleteTask))

	return s.countRequests(mux)
}

// countRequests records per-route request counters when metrics are
// configured.
func (s *Server) countRequests(next http.Handler) http.Handler {
	if s.metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	})
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
