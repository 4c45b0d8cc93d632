// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/nvis/internal/config"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the viewer actions. Every other key edits the input line.
type KeyMap struct {
	FocusNext  key.Binding
	FocusPrev  key.Binding
	ToggleMode key.Binding
	Export     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeys())
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(k config.KeysConfig) KeyMap {
	return KeyMap{
		FocusNext:  binding(k.FocusNext, "next panel"),
		FocusPrev:  binding(k.FocusPrev, "prev panel"),
		ToggleMode: binding(k.ToggleMode, "raw/smart"),
		Export:     binding(k.Export, "copy panel"),
		Quit:       binding(k.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys shortens "ctrl+s" to "C-s" and joins alternatives with "/".
func helpKeys(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		switch {
		case strings.HasPrefix(k, "ctrl+"):
			out[i] = "C-" + strings.TrimPrefix(k, "ctrl+")
		case strings.HasPrefix(k, "alt+"):
			out[i] = "M-" + strings.TrimPrefix(k, "alt+")
		default:
			out[i] = k
		}
	}
	return strings.Join(out, "/")
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the bindings for the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.FocusPrev, k.ToggleMode, k.Export, k.Quit}
}

// FullHelp groups the bindings by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.FocusNext, k.FocusPrev},
		// Actions
		{k.ToggleMode, k.Export, k.Quit},
	}
}
