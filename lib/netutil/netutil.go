// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides bounded HTTP response-body helpers. Every
// read of a response body in this project goes through these so that a
// misbehaving server cannot drive unbounded memory allocation in the
// client.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxResponseSize bounds API response body reads: 8 MB. Status
// documents are a few kilobytes even with a full bootc payload; the
// limit is generous so it never interferes with normal operation.
const MaxResponseSize int64 = 8 << 20

// DecodeResponse reads a JSON response body (up to MaxResponseSize
// bytes) and decodes it into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return json.Unmarshal(data, v)
}

// ErrorBody reads an HTTP error response body and returns it as a
// string for diagnostic error messages. Read errors are ignored; a
// partial or empty body is still useful in an error message.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	return string(data)
}
