// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package web

import (
	"net/http"
	"strings"
)

// requireAuth authenticates the request via the Authorization header
// and stores the resolved principal in the request context. Every
// failure returns the same 401; the resolver already logged the cause.
func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.unauthorized(w)
			return
		}

		user, err := s.resolver.Resolve(r.Context(), token)
		if err != nil {
			s.unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), user)))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer x"
// header. The scheme comparison is case-insensitive.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", false
	}
	return token, true
}

func (s *Server) unauthorized(w http.ResponseWriter) {
	if s.metrics != nil {
		s.metrics.AuthFailuresTotal.WithLabelValues("token").Inc()
	}
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "Could not validate credentials")
}
