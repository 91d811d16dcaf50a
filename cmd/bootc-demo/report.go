// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kush-gupt/bootc-demo/cmd/bootc-demo/cli"
	"github.com/kush-gupt/bootc-demo/lib/report"
)

// reportCommand returns the "bootc-demo report" command.
func reportCommand() *cli.Command {
	var output string

	return &cli.Command{
		Name:    "report",
		Summary: "Build the status report locally",
		Description: `Build the status report by probing the local host directly, with
the same collectors the service uses. No service needs to be
running; the output matches what /api/status would serve from
this host.`,
		Usage: "bootc-demo report [flags]",
		Examples: []cli.Example{
			{
				Description: "Inspect a host that is not running the service",
				Command:     "bootc-demo report --output yaml",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("report", pflag.ContinueOnError)
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

			statusReport := report.NewBuilder().Build(context.Background())

			if done, err := cli.Emit(format, statusReport); done {
				return err
			}
			printReport(os.Stdout, &statusReport)
			return nil
		},
	}
}
