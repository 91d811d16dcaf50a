// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package runcmd runs external probe commands with a bounded timeout.
// Every shell-out in this project (uptime, update-crypto-policies,
// bootc) goes through one Runner so the timeout and capture discipline
// is identical everywhere: capture stdout, bound the run, and surface
// any failure as a single error for the caller to map to its field's
// default value.
package runcmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a probe command invocation. Probes are status
// reads, not work: anything slower than this is treated as unavailable.
const DefaultTimeout = 5 * time.Second

// Runner executes external commands. The zero value is usable and
// applies DefaultTimeout.
type Runner struct {
	// Timeout bounds each invocation. Zero or negative means
	// DefaultTimeout.
	Timeout time.Duration
}

// Output runs the command and returns its whitespace-trimmed stdout.
// Stderr is captured separately and included in error messages on
// failure. A command that is missing, exits non-zero, or exceeds the
// timeout returns an error with no output; partial output from a
// failed run is discarded.
func (r *Runner) Output(ctx context.Context, name string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, name, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w (stderr: %s)",
			name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}
