// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"net/http"
	"time"
)

// handleStatus serves the full status report. Probes degrade to
// their fallback values rather than failing, so the response is
// always 200.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	statusReport := s.builder.Build(r.Context())
	s.writeJSON(w, statusReport)
}

// handleHealth serves the liveness payload. It reads nothing from
// the host, so it stays fast even when probes are slow.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.builder.Health())
}

// handleIndex serves the HTML status page. The "GET /" pattern
// matches every path without a more specific route, so anything but
// the root itself is a 404.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderPage(w, r)
}

// writeJSON encodes value to the response with the JSON content
// type.
func (s *Server) writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		s.logger.Warn("writing JSON response", "error", err)
	}
}

// statusRecorder captures the response code written by the inner
// handler so the request log line can include it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// logRequests logs one line per request: method, path, status, and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}
