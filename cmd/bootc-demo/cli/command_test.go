// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "bootc-demo",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "status",
				Run: func(args []string) error {
					called = "status"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"status"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "status" {
		t.Errorf("dispatched to %q, want %q", called, "status")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "bootc-demo",
		Subcommands: []*Command{
			{
				Name: "check",
				Subcommands: []*Command{
					{
						Name: "fips",
						Run: func(args []string) error {
							called = "check fips"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"check", "fips", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "check fips" {
		t.Errorf("dispatched to %q, want %q", called, "check fips")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var apiURL string
	var target string

	command := &Command{
		Name: "status",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
			flagSet.StringVar(&apiURL, "api-url", "http://127.0.0.1:8080", "service base URL")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--api-url", "http://demo-host:8080", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if apiURL != "http://demo-host:8080" {
		t.Errorf("apiURL = %q, want %q", apiURL, "http://demo-host:8080")
	}
	if target != "extra" {
		t.Errorf("target = %q, want %q", target, "extra")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "status",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
			flagSet.String("output", "text", "output format")
			flagSet.String("api-url", "http://127.0.0.1:8080", "service base URL")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--outptu"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --output") {
		t.Errorf("error = %q, want suggestion for '--output'", errStr)
	}
	// Suggestion should be on the same line as the error, not buried.
	if !strings.Contains(errStr, "outptu") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	// Should include a pointer to --help.
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "status",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
			flagSet.String("output", "text", "output format")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "bootc-demo",
		Subcommands: []*Command{
			{Name: "status"},
			{Name: "check"},
			{Name: "version"},
		},
	}

	err := root.Execute([]string{"statu"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"status\"") {
		t.Errorf("error = %q, want suggestion for 'status'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "bootc-demo",
		Subcommands: []*Command{
			{Name: "status"},
			{Name: "check"},
		},
	}

	err := root.Execute([]string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "bootc-demo",
				Summary: "Host status and security posture reporting",
				Subcommands: []*Command{
					{Name: "status", Summary: "Show the full status report"},
				},
			}

			err := root.Execute([]string{helpArg})
			if err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "bootc-demo",
		Subcommands: []*Command{
			{Name: "status", Summary: "Show the full status report"},
		},
	}

	err := root.Execute([]string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "bootc-demo",
		Description: "Inspect host status and security posture for bootc systems.",
		Subcommands: []*Command{
			{Name: "status", Summary: "Show the full status report"},
			{Name: "check", Summary: "Run local security posture checks"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Show the report from a remote service",
				Command:     "bootc-demo status --api-url http://demo-host:8080",
			},
			{
				Description: "Run posture checks against the local host",
				Command:     "bootc-demo check",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	// Verify structural elements are present.
	for _, want := range []string{
		"Inspect host status and security posture for bootc systems.",
		"Usage:",
		"bootc-demo <command> [flags]",
		"Commands:",
		"status",
		"Show the full status report",
		"check",
		"Run local security posture checks",
		"Examples:",
		"bootc-demo status --api-url http://demo-host:8080",
		"bootc-demo check",
		"Run 'bootc-demo <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "watch",
		Summary: "Watch the status report in a live terminal view",
		Usage:   "bootc-demo watch [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("watch", pflag.ContinueOnError)
			flagSet.String("api-url", "http://127.0.0.1:8080", "service base URL")
			flagSet.Duration("interval", 0, "refresh interval")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"bootc-demo watch [flags]",
		"Flags:",
		"api-url",
		"interval",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "bootc-demo"}
	check := &Command{Name: "check", parent: root}
	fips := &Command{Name: "fips", parent: check}

	if got := root.fullName(); got != "bootc-demo" {
		t.Errorf("root.fullName() = %q, want %q", got, "bootc-demo")
	}
	if got := check.fullName(); got != "bootc-demo check" {
		t.Errorf("check.fullName() = %q, want %q", got, "bootc-demo check")
	}
	if got := fips.fullName(); got != "bootc-demo check fips" {
		t.Errorf("fips.fullName() = %q, want %q", got, "bootc-demo check fips")
	}
}
