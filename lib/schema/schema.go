// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the JSON documents served by the status API
// and consumed by the CLI client. The field sets are a wire contract:
// /api/status serializes exactly these keys, so additions here are
// additions to the public surface.
package schema

// SystemInfo describes the host: identity, runtime, and point-in-time
// utilization figures. Probe failures leave the affected field at its
// documented default rather than omitting it.
type SystemInfo struct {
	// Hostname is the kernel hostname. Empty if unavailable.
	Hostname string `json:"hostname" yaml:"hostname"`

	// OS is the operating system name from uname(2) (e.g. "Linux").
	OS string `json:"os" yaml:"os"`

	// Release is the kernel release string (e.g. "5.14.0-508.el9.x86_64").
	Release string `json:"release" yaml:"release"`

	// Architecture is the machine hardware name (e.g. "x86_64").
	Architecture string `json:"architecture" yaml:"architecture"`

	// RuntimeVersion is the language runtime that built the service
	// (e.g. "go1.25.6"). Informational only.
	RuntimeVersion string `json:"runtime_version" yaml:"runtime_version"`

	// Uptime is a human-readable uptime description as produced by
	// uptime -p, or "Unknown" when the command fails.
	Uptime string `json:"uptime" yaml:"uptime"`

	// LoadAverage holds the 1, 5, and 15 minute load averages.
	// All zero when /proc/loadavg is unreadable.
	LoadAverage [3]float64 `json:"load_average" yaml:"load_average"`

	// CPUCount is the logical CPU count.
	CPUCount int `json:"cpu_count" yaml:"cpu_count"`
}

// SecurityInfo describes the host's security posture. Every field
// fails safe: a probe error reads as "not enabled" or "Unknown",
// never as a report failure.
type SecurityInfo struct {
	// FIPSEnabled is true only when the kernel reports FIPS mode
	// active (/proc/sys/crypto/fips_enabled contains "1").
	FIPSEnabled bool `json:"fips_enabled" yaml:"fips_enabled"`

	// CryptoPolicy is the active system-wide crypto policy name
	// (e.g. "FIPS", "DEFAULT"), or "Unknown" when the query fails.
	CryptoPolicy string `json:"crypto_policy" yaml:"crypto_policy"`

	// STIGInstalled is true when the SCAP security guide content
	// directory is present on disk.
	STIGInstalled bool `json:"stig_installed" yaml:"stig_installed"`
}

// StatusReport is the full document returned by /api/status. Each
// report is freshly built per request; nothing is cached between
// requests.
type StatusReport struct {
	// Timestamp is the report build time, RFC 3339 with sub-second
	// precision, UTC.
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	System   SystemInfo   `json:"system" yaml:"system"`
	Security SecurityInfo `json:"security" yaml:"security"`

	// BootcStatus is the raw JSON payload from bootc status --json.
	// Nil (serialized as null) when the tool is missing, times out,
	// or reports nothing. Absence is unavailability, not an error.
	BootcStatus *string `json:"bootc_status" yaml:"bootc_status"`
}

// HealthStatus is the liveness payload returned by /api/health. The
// status is constant: the endpoint reports process liveness, not probe
// health.
type HealthStatus struct {
	Status    string `json:"status" yaml:"status"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Healthy is the only status value /api/health reports.
const Healthy = "healthy"
