// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package statusui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the watch dashboard.
type KeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
