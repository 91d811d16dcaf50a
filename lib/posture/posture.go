// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package posture probes the host's security posture: kernel FIPS
// mode, the active system-wide crypto policy, presence of SCAP/STIG
// compliance content, and bootc boot status. Each probe is
// individually fault-isolated and fails safe: a missing tool or a
// restricted environment reads as "not enabled" or "unavailable",
// never as an error. Probes do not distinguish between a tool that is
// absent, forbidden, or timed out.
package posture

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/kush-gupt/bootc-demo/lib/runcmd"
)

// policyUnknown is reported when the crypto policy query fails.
const policyUnknown = "Unknown"

// stigContentPath is the SCAP security guide content directory shipped
// by the scap-security-guide package. Its presence is the whole check;
// the content itself is never read.
const stigContentPath = "usr/share/xml/scap/ssg/content"

// FIPSEnabled reports whether the kernel is running in FIPS mode.
// True only when /proc/sys/crypto/fips_enabled reads as exactly "1"
// after trimming; any read error or other content is false.
func FIPSEnabled() bool {
	return fipsEnabledFrom("/proc")
}

// fipsEnabledFrom is the testable implementation of FIPSEnabled.
func fipsEnabledFrom(procRoot string) bool {
	data, err := os.ReadFile(filepath.Join(procRoot, "sys/crypto/fips_enabled"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}

// CryptoPolicy returns the active system-wide crypto policy name from
// update-crypto-policies --show, or "Unknown" on any failure.
func CryptoPolicy(ctx context.Context, runner *runcmd.Runner) string {
	policy, err := runner.Output(ctx, "update-crypto-policies", "--show")
	if err != nil || policy == "" {
		return policyUnknown
	}
	return policy
}

// STIGContentInstalled reports whether SCAP security guide content is
// present on disk. Pure existence check, no content validation.
func STIGContentInstalled() bool {
	return stigContentInstalledFrom("/")
}

// stigContentInstalledFrom is the testable implementation of
// STIGContentInstalled.
func stigContentInstalledFrom(root string) bool {
	_, err := os.Stat(filepath.Join(root, stigContentPath))
	return err == nil
}

// BootcStatus returns the raw JSON payload from bootc status --json,
// or nil when the host is not bootc-managed, the tool is missing, the
// command times out, or it reports nothing. Absent and empty are the
// same condition: status unavailable.
func BootcStatus(ctx context.Context, runner *runcmd.Runner) *string {
	status, err := runner.Output(ctx, "bootc", "status", "--json")
	if err != nil || status == "" {
		return nil
	}
	return &status
}
