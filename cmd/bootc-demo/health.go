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

// healthCommand returns the "bootc-demo health" command.
func healthCommand() *cli.Command {
	var connection clientFlags
	var output string

	return &cli.Command{
		Name:    "health",
		Summary: "Check that the service is up",
		Description: `Probe the service's liveness endpoint.

Prints the health payload and exits 0 when the service answers.
Exits 1 when it is unreachable, which makes this suitable for
scripted readiness checks.`,
		Usage: "bootc-demo health [flags]",
		Examples: []cli.Example{
			{
				Description: "Wait for the local service in a script",
				Command:     "until bootc-demo health; do sleep 1; done",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("health", pflag.ContinueOnError)
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
			health, err := client.Health(context.Background())
			if err != nil {
				fmt.Fprintf(os.Stderr, "service unreachable at %s: %v\n", client.BaseURL(), err)
				return &cli.ExitError{Code: 1}
			}

			if done, err := cli.Emit(format, health); done {
				return err
			}
			printHealth(os.Stdout, health)
			return nil
		},
	}
}
