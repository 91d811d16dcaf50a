// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package apiclient provides a typed HTTP client for the bootc-demo
// status API. The CLI uses it for every call against a running
// service; it decodes the same schema types the server serializes.
package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kush-gupt/bootc-demo/lib/netutil"
	"github.com/kush-gupt/bootc-demo/lib/schema"
)

// DefaultTimeout bounds a client request when the caller does not
// choose one. Status builds on the server side are themselves bounded
// by the probe timeout, so a healthy service answers well within this.
const DefaultTimeout = 10 * time.Second

// Client is a typed HTTP client for the status API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the service at baseURL (e.g.
// "http://127.0.0.1:8080"). A trailing slash is tolerated. Zero or
// negative timeout means DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the service URL this client was configured with.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// Status fetches the full status report from /api/status.
func (client *Client) Status(ctx context.Context) (*schema.StatusReport, error) {
	var result schema.StatusReport
	if err := client.get(ctx, "/api/status", &result); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return &result, nil
}

// Health fetches the liveness payload from /api/health.
func (client *Client) Health(ctx context.Context) (*schema.HealthStatus, error) {
	var result schema.HealthStatus
	if err := client.get(ctx, "/api/health", &result); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	return &result, nil
}

// get issues a GET against the service and decodes the JSON response
// into v. Non-200 responses surface the response body in the error.
func (client *Client) get(ctx context.Context, path string, v any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+path, nil)
	if err != nil {
		return err
	}
	response, err := client.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", response.StatusCode,
			strings.TrimSpace(netutil.ErrorBody(response.Body)))
	}
	return netutil.DecodeResponse(response.Body, v)
}
