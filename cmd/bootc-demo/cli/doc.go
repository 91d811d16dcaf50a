// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the bootc-demo
// client.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a [pflag.FlagSet]
// factory, and a Run function. Commands are assembled into a tree in
// cmd/bootc-demo/main.go and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help
// output with examples.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3). This is
// implemented in suggest.go.
//
// Output helpers live in output.go: [Format] selects between text,
// JSON, and YAML rendering, with [WriteJSON] and [WriteYAML] as the
// low-level serializers. checklist.go provides the [Result] type and
// [PrintChecklist] for posture check reporting.
package cli
