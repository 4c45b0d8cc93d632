// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/jeranaias/nvis/internal/ui/styles"
)

// =============================================================================
// HELP BAR
// =============================================================================

// HelpBar renders key hints below the status bar.
type HelpBar struct {
	model help.Model
}

// NewHelpBar styles a bubbles help model with the theme's shortcut colors.
func NewHelpBar(theme *styles.Theme) *HelpBar {
	m := help.New()
	m.Styles.ShortKey = theme.ShortcutKey
	m.Styles.ShortDesc = theme.ShortcutDesc
	m.Styles.ShortSeparator = theme.ShortcutDesc
	m.Styles.FullKey = theme.ShortcutKey
	m.Styles.FullDesc = theme.ShortcutDesc
	m.Styles.FullSeparator = theme.ShortcutDesc
	return &HelpBar{model: m}
}

// SetWidth limits the help line; bindings that do not fit are elided.
func (h *HelpBar) SetWidth(width int) {
	h.model.Width = width
}

// ToggleFull switches between the one-line and grouped help.
func (h *HelpBar) ToggleFull() {
	h.model.ShowAll = !h.model.ShowAll
}

// ShowingFull reports whether grouped help is shown.
func (h *HelpBar) ShowingFull() bool {
	return h.model.ShowAll
}

// View renders the bindings of km.
func (h *HelpBar) View(km help.KeyMap) string {
	return h.model.View(km)
}
