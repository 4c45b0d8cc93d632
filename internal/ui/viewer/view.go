// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"strings"

	"github.com/jeranaias/nvis/internal/ui/components"
)

// View renders the input line, the panel grid, the status bar and, when
// enabled, the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	input := m.input.View()
	status := m.status.View()
	var help string
	if m.cfg.UI.ShowHelp {
		help = m.help.View(m.keys)
	}

	used := 2 // input line and the blank line below it
	used++    // status bar
	if help != "" {
		used++
	}
	gridHeight := m.height - used
	if gridHeight < 0 {
		gridHeight = 0
	}

	grid := components.Grid{
		Panels:  m.session.Panels(),
		Focus:   m.session.Focus(),
		Marker:  m.cfg.UI.FocusMarker,
		Columns: m.theme.Columns(m.cfg.UI.Columns),
		Width:   m.width,
		Height:  gridHeight,
	}

	var b strings.Builder
	b.WriteString(input)
	b.WriteString("\n\n")
	b.WriteString(grid.Render(m.theme))
	b.WriteString("\n")
	b.WriteString(status)
	if help != "" {
		b.WriteString("\n")
		b.WriteString(help)
	}
	return b.String()
}
