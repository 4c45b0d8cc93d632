// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/nvis/internal/transform"
	"github.com/jeranaias/nvis/internal/ui/styles"
	"github.com/jeranaias/nvis/internal/util"
)

// MinPanelWidth is the narrowest box that still shows a title and one
// column of output.
const MinPanelWidth = 8

// PanelView renders one transformer panel.
type PanelView struct {
	Panel   transform.Panel
	Focused bool
	// Marker is appended to the title of the focused panel.
	Marker string
	// Width is the outer width including the border.
	Width int
	// Lines is the number of body lines; output beyond it is cut.
	Lines int
}

// Title returns the panel heading with the focus marker when focused.
func (v PanelView) Title() string {
	if v.Focused {
		return v.Panel.Label + v.Marker
	}
	return v.Panel.Label
}

// Render draws the panel as a bordered box.
func (v PanelView) Render(theme *styles.Theme) string {
	width := v.Width
	if width < MinPanelWidth {
		width = MinPanelWidth
	}
	inner := width - 4
	lines := v.Lines
	if lines < 1 {
		lines = 1
	}

	box := theme.Panel
	titleStyle := theme.PanelTitle
	if v.Focused {
		box = theme.PanelFocused
		titleStyle = theme.PanelTitleFocused
	}

	textStyle := theme.PanelText
	if v.Panel.Text == transform.Placeholder {
		textStyle = theme.PanelPlaceholder
	}

	body := util.WrapWidth(v.Panel.Text, inner)
	if len(body) > lines {
		body = body[:lines]
		last := body[lines-1]
		body[lines-1] = util.TruncateWidth(last+util.Ellipsis, inner)
	}
	for len(body) < lines {
		body = append(body, "")
	}
	for i, line := range body {
		body[i] = textStyle.Render(util.PadWidth(line, inner))
	}

	title := titleStyle.Render(util.TruncateWidth(v.Title(), inner))
	content := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(body, "\n"))
	return box.Width(width - 2).Render(content)
}

// RenderLine draws the panel as a single "label: text" row for layouts
// too short for boxes.
func (v PanelView) RenderLine(theme *styles.Theme, labelWidth int) string {
	titleStyle := theme.PanelTitle
	if v.Focused {
		titleStyle = theme.PanelTitleFocused
	}
	textStyle := theme.PanelText
	if v.Panel.Text == transform.Placeholder {
		textStyle = theme.PanelPlaceholder
	}

	title := util.PadWidth(v.Title(), labelWidth)
	room := v.Width - labelWidth - 1
	if room < 1 {
		return titleStyle.Render(util.TruncateWidth(v.Title(), v.Width))
	}
	return titleStyle.Render(title) + " " + textStyle.Render(util.TruncateWidth(v.Panel.Text, room))
}
