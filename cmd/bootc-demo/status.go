// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kush-gupt/bootc-demo/cmd/bootc-demo/cli"
)

// statusCommand returns the "bootc-demo status" command.
func statusCommand() *cli.Command {
	var connection clientFlags
	var output string

	return &cli.Command{
		Name:    "status",
		Summary: "Show the full status report",
		Description: `Fetch the status report from a running service and render it.

The report covers host identity (hostname, kernel, architecture),
utilization (uptime, load average, CPU count), security posture
(FIPS mode, crypto policy, STIG content), and the bootc deployment
state when the host is bootc-managed.`,
		Usage: "bootc-demo status [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the report from the local service",
				Command:     "bootc-demo status",
			},
			{
				Description: "Machine-readable output from a remote host",
				Command:     "bootc-demo status --api-url http://demo-host:8080 --output json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
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

			if done, err := cli.Emit(format, report); done {
				return err
			}
			printReport(os.Stdout, report)
			return nil
		},
	}
}
