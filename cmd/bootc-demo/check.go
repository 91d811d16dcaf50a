// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kush-gupt/bootc-demo/cmd/bootc-demo/cli"
	"github.com/kush-gupt/bootc-demo/lib/schema"
)

// checkCommand returns the "bootc-demo check" command.
func checkCommand() *cli.Command {
	var connection clientFlags
	var output string

	return &cli.Command{
		Name:    "check",
		Summary: "Run security posture checks against a service",
		Description: `Fetch the status report and evaluate the host's security posture
as a checklist.

FIPS mode, crypto policy, and STIG content are required: a host that
fails any of them exits with code 1. bootc management is reported but
never required, since the service also runs on package-mode hosts.`,
		Usage: "bootc-demo check [flags]",
		Examples: []cli.Example{
			{
				Description: "Check the local host's posture",
				Command:     "bootc-demo check",
			},
			{
				Description: "Gate a pipeline step on a remote host's posture",
				Command:     "bootc-demo check --api-url http://demo-host:8080 --output json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
			connection.register(flagSet)
			flagSet.StringVar(&output, "output", "text", "output format: text, json, or yaml")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			format, err := cli.ParseFormat(output)
			if err != nil {
				return err
			}

			client := connection.client()
			report, err := client.Status(context.Background())
			if err != nil {
				return fmt.Errorf("fetching status from %s: %w", client.BaseURL(), err)
			}

			results := postureChecks(report)

			if format != cli.FormatText {
				if _, err := cli.Emit(format, cli.ChecklistOutput{
					Checks: results,
					OK:     !cli.AnyFailed(results),
				}); err != nil {
					return err
				}
				if cli.AnyFailed(results) {
					return &cli.ExitError{Code: 1}
				}
				return nil
			}

			return cli.PrintChecklist(results)
		},
	}
}

// postureChecks derives checklist results from a status report. The
// report's own fields fail safe (a probe error reads as "disabled" or
// "Unknown"), so every check here is a plain value comparison.
func postureChecks(report *schema.StatusReport) []cli.Result {
	var results []cli.Result

	if report.Security.FIPSEnabled {
		results = append(results, cli.Pass("FIPS mode", "enabled in the kernel"))
	} else {
		results = append(results, cli.Fail("FIPS mode", "not enabled (boot with fips=1 to enable)"))
	}

	// FIPS subpolicies like FIPS:OSPP count as FIPS.
	policy := report.Security.CryptoPolicy
	switch {
	case strings.HasPrefix(policy, "FIPS"):
		results = append(results, cli.Pass("crypto policy", fmt.Sprintf("active policy is %s", policy)))
	case policy == "Unknown":
		results = append(results, cli.Warn("crypto policy", "active policy could not be determined"))
	default:
		results = append(results, cli.Fail("crypto policy", fmt.Sprintf("active policy is %s, want FIPS", policy)))
	}

	if report.Security.STIGInstalled {
		results = append(results, cli.Pass("STIG content", "SCAP security guide content is installed"))
	} else {
		results = append(results, cli.Fail("STIG content", "SCAP security guide content not found"))
	}

	if report.BootcStatus != nil {
		results = append(results, cli.Pass("bootc management", "host is bootc-managed"))
	} else {
		results = append(results, cli.Skip("bootc management", "bootc not detected on this host"))
	}

	return results
}
