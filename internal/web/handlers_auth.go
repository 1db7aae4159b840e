// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/FAbrickA/TaskApp/internal/auth"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.auth.Register(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusCreated)
	case errors.Is(err, auth.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, auth.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.internalError(w, "registration failed", err)
	}
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, tokenResponse{
			AccessToken: token.AccessToken,
			TokenType:   token.TokenType,
		})
	case errors.Is(err, auth.ErrUserNotFound):
		s.countAuthFailure("unknown_user")
		writeError(w, http.StatusNotFound, "Cannot find the user")
	case errors.Is(err, auth.ErrWrongPassword):
		s.countAuthFailure("wrong_password")
		writeError(w, http.StatusForbidden, "Incorrect password")
	default:
		s.internalError(w, "login failed", err)
	}
}

func (s *Server) countAuthFailure(kind string) {
	if s.metrics != nil {
		s.metrics.AuthFailuresTotal.WithLabelValues(kind).Inc()
	}
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // health check write error is acceptable
	w.Write([]byte("pong"))
}

func (s *Server) handlePingApp(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Application is working!"})
}

func (s *Server) handlePingDB(w http.ResponseWriter, r *http.Request) {
	if !s.databaseHealthy(r.Context()) {
		writeError(w, http.StatusServiceUnavailable, "Database isn't working")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Database is working!"})
}

func (s *Server) databaseHealthy(ctx context.Context) bool {
	if s.pingDB == nil {
		return true
	}
	return s.pingDB(ctx) == nil
}
