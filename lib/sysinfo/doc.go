// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package sysinfo collects host system facts for status reporting:
// identity from uname(2) and the kernel hostname, load averages from
// /proc/loadavg, the logical CPU count, and a human-readable uptime
// description from the uptime command. Collection never fails: every
// probe degrades to a documented default when its source is missing
// or unreadable.
package sysinfo
