// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package web

import (
	"encoding/json"
	"net/http"

	"github.com/FAbrickA/TaskApp/pkg/errutil"
)

// errorResponse is the error body shape: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // response write error means the client went away
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// internalError logs the full error server-side and sends a safe,
// detail-free message to the client.
func (s *Server) internalError(w http.ResponseWriter, msg string, err error) {
	errutil.LogError(s.logger, msg, err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeJSON reads the request body into v.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v) //nolint:wrapcheck // handlers map this to a 400 directly
}
