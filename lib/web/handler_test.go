// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/kush-gupt/bootc-demo/lib/report"
	"github.com/kush-gupt/bootc-demo/lib/schema"
)

// newTestServer builds an unstarted server whose handlers can be
// driven directly through routes().
func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(ServerConfig{
		Address: "127.0.0.1:0",
		Builder: report.NewBuilder(),
		Logger:  logger,
	})
}

func TestStatusEndpoint(t *testing.T) {
	// An empty PATH forces every exec-based probe onto its fallback
	// value, making the response shape deterministic.
	t.Setenv("PATH", t.TempDir())

	server := newTestServer(t)
	recorder := httptest.NewRecorder()
	server.routes().ServeHTTP(recorder, httptest.NewRequest("GET", "/api/status", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("GET /api/status status = %d, want 200", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}

	var payload map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	for _, key := range []string{"timestamp", "system", "security", "bootc_status"} {
		if _, present := payload[key]; !present {
			t.Errorf("response missing key %q", key)
		}
	}
	if payload["bootc_status"] != nil {
		t.Errorf("bootc_status = %v, want null without the bootc tool", payload["bootc_status"])
	}

	system, ok := payload["system"].(map[string]any)
	if !ok {
		t.Fatalf("system is %T, want object", payload["system"])
	}
	hostname, _ := os.Hostname()
	if system["hostname"] != hostname {
		t.Errorf("hostname = %v, want %q", system["hostname"], hostname)
	}
	if system["uptime"] != "Unknown" {
		t.Errorf("uptime = %v, want Unknown without the uptime tool", system["uptime"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)
	recorder := httptest.NewRecorder()
	server.routes().ServeHTTP(recorder, httptest.NewRequest("GET", "/api/health", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("GET /api/health status = %d, want 200", recorder.Code)
	}

	var health schema.HealthStatus
	if err := json.Unmarshal(recorder.Body.Bytes(), &health); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("status = %q, want healthy", health.Status)
	}
	if _, err := time.Parse(time.RFC3339Nano, health.Timestamp); err != nil {
		t.Errorf("timestamp %q does not parse: %v", health.Timestamp, err)
	}
}

func TestIndexPage(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	server := newTestServer(t)
	recorder := httptest.NewRecorder()
	server.routes().ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); !strings.HasPrefix(contentType, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", contentType)
	}

	body := recorder.Body.String()
	hostname, _ := os.Hostname()
	for _, want := range []string{hostname, "System", "Security", "Boot Status", "/api/status"} {
		if !strings.Contains(body, want) {
			t.Errorf("page should contain %q", want)
		}
	}
	if !strings.Contains(body, "bootc not detected") {
		t.Error("page should show the bootc-absent notice without the bootc tool")
	}
}

func TestIndexPageGzip(t *testing.T) {
	server := newTestServer(t)
	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Accept-Encoding", "gzip")
	recorder := httptest.NewRecorder()
	server.routes().ServeHTTP(recorder, request)

	if encoding := recorder.Header().Get("Content-Encoding"); encoding != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", encoding)
	}

	reader, err := gzip.NewReader(recorder.Body)
	if err != nil {
		t.Fatalf("opening gzip body: %v", err)
	}
	defer reader.Close()
	body, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("decompressing body: %v", err)
	}
	if !strings.Contains(string(body), "Boot Status") {
		t.Error("decompressed page should contain the Boot Status section")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	server := newTestServer(t)
	recorder := httptest.NewRecorder()
	server.routes().ServeHTTP(recorder, httptest.NewRequest("GET", "/api/nope", nil))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("GET /api/nope status = %d, want 404", recorder.Code)
	}
}

func TestWrongMethodIs405(t *testing.T) {
	server := newTestServer(t)
	recorder := httptest.NewRecorder()
	server.routes().ServeHTTP(recorder, httptest.NewRequest("POST", "/api/status", nil))

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/status status = %d, want 405", recorder.Code)
	}
}
