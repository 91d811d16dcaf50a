// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/kush-gupt/bootc-demo/lib/runcmd"
	"github.com/kush-gupt/bootc-demo/lib/schema"
)

// uptimeUnknown is reported when the uptime command is missing, slow,
// or failing.
const uptimeUnknown = "Unknown"

// Collect gathers the current host facts into a SystemInfo. It never
// returns an error: a restricted environment (minimal container, no
// procps, masked /proc) produces default-valued fields rather than a
// failure.
func Collect(ctx context.Context, runner *runcmd.Runner) schema.SystemInfo {
	return collectFrom(ctx, runner, "/proc")
}

// collectFrom is the testable implementation of Collect. It accepts a
// root path for /proc so tests can point at synthetic filesystems.
func collectFrom(ctx context.Context, runner *runcmd.Runner, procRoot string) schema.SystemInfo {
	info := schema.SystemInfo{
		RuntimeVersion: runtime.Version(),
		CPUCount:       runtime.NumCPU(),
	}

	info.Hostname, _ = os.Hostname()
	info.OS, info.Release, info.Architecture = readUname()
	info.Uptime = uptimeDescription(ctx, runner)
	info.LoadAverage = readLoadAverage(filepath.Join(procRoot, "loadavg"))

	return info
}

// readUname returns the OS name, kernel release, and machine hardware
// name from uname(2). The build-time platform constants stand in if
// the syscall fails.
func readUname() (osName, release, architecture string) {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return runtime.GOOS, "", runtime.GOARCH
	}
	return utsString(utsname.Sysname), utsString(utsname.Release), utsString(utsname.Machine)
}

// utsString converts a fixed-size Utsname field to a Go string,
// stopping at the first null byte.
func utsString(field [65]byte) string {
	for i, value := range field {
		if value == 0 {
			return string(field[:i])
		}
	}
	return string(field[:])
}

// uptimeDescription returns the human-readable uptime from uptime -p
// ("up 3 hours, 4 minutes"), or "Unknown" on any failure.
func uptimeDescription(ctx context.Context, runner *runcmd.Runner) string {
	uptime, err := runner.Output(ctx, "uptime", "-p")
	if err != nil || uptime == "" {
		return uptimeUnknown
	}
	return uptime
}

// readLoadAverage parses the first three fields of /proc/loadavg. Any
// read or parse failure yields all zeroes; the averages are reported
// as a unit or not at all.
func readLoadAverage(path string) [3]float64 {
	var loads [3]float64

	data, err := os.ReadFile(path)
	if err != nil {
		return loads
	}
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return loads
	}
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return [3]float64{}
		}
		loads[i] = value
	}
	return loads
}
