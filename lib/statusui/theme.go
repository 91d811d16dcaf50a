// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package statusui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the watch dashboard. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Section headings and the top title line.
	HeaderForeground lipgloss.Color

	// Posture verdicts: enabled/installed vs disabled/missing vs
	// unknown or degraded readings.
	GoodValue    lipgloss.Color
	BadValue     lipgloss.Color
	UnknownValue lipgloss.Color

	// UI chrome.
	BorderColor lipgloss.Color
	HelpText    lipgloss.Color
	ErrorText   lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),

	GoodValue:    lipgloss.Color("114"), // green
	BadValue:     lipgloss.Color("196"), // red
	UnknownValue: lipgloss.Color("220"), // yellow/amber

	BorderColor: lipgloss.Color("240"),
	HelpText:    lipgloss.Color("241"),
	ErrorText:   lipgloss.Color("196"), // red
}
