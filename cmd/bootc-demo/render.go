// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kush-gupt/bootc-demo/lib/schema"
)

// printReport renders a status report as aligned text sections. The
// boot status payload is passed through verbatim; everything else is
// labeled fields.
func printReport(w io.Writer, report *schema.StatusReport) {
	fmt.Fprintln(w, "Host")
	printField(w, "Hostname:", report.System.Hostname)
	printField(w, "OS:", fmt.Sprintf("%s %s", report.System.OS, report.System.Release))
	printField(w, "Architecture:", report.System.Architecture)
	printField(w, "Runtime:", report.System.RuntimeVersion)
	printField(w, "Uptime:", report.System.Uptime)
	printField(w, "Load average:", fmt.Sprintf("%.2f %.2f %.2f",
		report.System.LoadAverage[0], report.System.LoadAverage[1], report.System.LoadAverage[2]))
	printField(w, "CPUs:", fmt.Sprintf("%d", report.System.CPUCount))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Security")
	printField(w, "FIPS mode:", enabledWord(report.Security.FIPSEnabled))
	printField(w, "Crypto policy:", report.Security.CryptoPolicy)
	printField(w, "STIG content:", installedWord(report.Security.STIGInstalled))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Boot status")
	if report.BootcStatus != nil {
		for _, line := range strings.Split(strings.TrimRight(*report.BootcStatus, "\n"), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	} else {
		fmt.Fprintln(w, "  bootc not detected on this host")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Generated at %s\n", report.Timestamp)
}

// printHealth renders the liveness payload as a single line.
func printHealth(w io.Writer, health *schema.HealthStatus) {
	fmt.Fprintf(w, "%s (reported at %s)\n", health.Status, health.Timestamp)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-15s %s\n", label, value)
}

func enabledWord(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func installedWord(installed bool) string {
	if installed {
		return "installed"
	}
	return "not installed"
}
