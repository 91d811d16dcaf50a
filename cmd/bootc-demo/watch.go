// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/kush-gupt/bootc-demo/cmd/bootc-demo/cli"
	"github.com/kush-gupt/bootc-demo/lib/statusui"
)

// watchCommand returns the "bootc-demo watch" command.
func watchCommand() *cli.Command {
	var connection clientFlags
	var interval time.Duration

	return &cli.Command{
		Name:    "watch",
		Summary: "Watch the status report in a live terminal view",
		Description: `Open a full-screen terminal view of the status report, refreshed
on an interval. Security posture values are color-coded; the boot
status payload is shown verbatim.

Press q or Ctrl-C to quit, r to refresh immediately.`,
		Usage: "bootc-demo watch [flags]",
		Examples: []cli.Example{
			{
				Description: "Watch the local service",
				Command:     "bootc-demo watch",
			},
			{
				Description: "Watch a remote host at a slower cadence",
				Command:     "bootc-demo watch --api-url http://demo-host:8080 --interval 30s",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("watch", pflag.ContinueOnError)
			connection.register(flagSet)
			flagSet.DurationVar(&interval, "interval", statusui.DefaultInterval, "refresh interval")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			model := statusui.NewModel(connection.client(), interval)
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
}
