// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/kush-gupt/bootc-demo/cmd/bootc-demo/cli"
	"github.com/kush-gupt/bootc-demo/lib/apiclient"
	"github.com/kush-gupt/bootc-demo/lib/version"
)

// defaultAPIURL is where bootc-demo-web listens on the local host.
const defaultAPIURL = "http://127.0.0.1:8080"

func main() {
	if err := rootCommand().Execute(os.Args[1:]); err != nil {
		// Commands that print their own output (like check) return an
		// ExitError with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rootCommand builds the complete bootc-demo command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "bootc-demo",
		Description: `bootc-demo: host status and security posture reporting.

Query a running bootc-demo-web service for the host's status report,
evaluate its security posture (FIPS mode, crypto policy, STIG content,
bootc management), or build the report locally without a service.`,
		Subcommands: []*cli.Command{
			statusCommand(),
			healthCommand(),
			checkCommand(),
			reportCommand(),
			watchCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("bootc-demo %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Show the report from the local service",
				Command:     "bootc-demo status",
			},
			{
				Description: "Query a remote host as JSON",
				Command:     "bootc-demo status --api-url http://demo-host:8080 --output json",
			},
			{
				Description: "Evaluate the security posture checklist",
				Command:     "bootc-demo check",
			},
			{
				Description: "Build the report locally (no service required)",
				Command:     "bootc-demo report",
			},
			{
				Description: "Watch the report in a live terminal view",
				Command:     "bootc-demo watch --interval 10s",
			},
		},
	}
}

// clientFlags are the connection flags shared by every command that
// talks to a running service.
type clientFlags struct {
	apiURL  string
	timeout time.Duration
}

func (f *clientFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.apiURL, "api-url", defaultAPIURL, "base URL of the status service")
	flagSet.DurationVar(&f.timeout, "timeout", apiclient.DefaultTimeout, "request timeout for API calls")
}

func (f *clientFlags) client() *apiclient.Client {
	return apiclient.New(f.apiURL, f.timeout)
}
