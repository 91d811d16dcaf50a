// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"strings"
)

// Status is the outcome of a single posture check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single posture check. Checks report
// the host's current state; none of them mutate the host, so a failed
// check carries guidance in its message rather than a fix action.
type Result struct {
	Name    string `json:"name" yaml:"name"`
	Status  Status `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// Warn creates a warning check result. Warnings do not cause the check
// command to exit with a non-zero status.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result. Checks are skipped when a
// prerequisite is absent (e.g., bootc checks skip on non-bootc hosts).
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// ChecklistOutput is the structured output shape for check commands.
type ChecklistOutput struct {
	Checks []Result `json:"checks" yaml:"checks"`
	OK     bool     `json:"ok" yaml:"ok"`
}

// AnyFailed reports whether any result in the list failed.
func AnyFailed(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}

// PrintChecklist prints check results as a human-readable checklist
// and returns an [ExitError] with code 1 when any check failed.
func PrintChecklist(results []Result) error {
	for _, result := range results {
		prefix := strings.ToUpper(string(result.Status))
		fmt.Fprintf(os.Stdout, "[%-5s]  %-40s  %s\n", prefix, result.Name, result.Message)
	}

	fmt.Fprintln(os.Stdout)

	if AnyFailed(results) {
		fmt.Fprintln(os.Stdout, "Some checks failed.")
		return &ExitError{Code: 1}
	}

	fmt.Fprintln(os.Stdout, "All checks passed.")
	return nil
}
