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

// panelChrome is the border plus title rows a boxed panel adds to its body.
const panelChrome = 3

// Grid lays out every panel in Columns columns. Panels fill the first
// column top to bottom before moving right.
type Grid struct {
	Panels  []transform.Panel
	Focus   int
	Marker  string
	Columns int
	Width   int
	Height  int
}

// Rows returns the number of rows needed for the panel count.
func (g Grid) Rows() int {
	cols := g.columns()
	return (len(g.Panels) + cols - 1) / cols
}

func (g Grid) columns() int {
	cols := g.Columns
	if cols < 1 {
		cols = 1
	}
	if n := len(g.Panels); n > 0 && cols > n {
		cols = n
	}
	return cols
}

// Cell returns the column and row panel i occupies.
func (g Grid) Cell(i int) (col, row int) {
	rows := g.Rows()
	if rows == 0 {
		return 0, 0
	}
	return i / rows, i % rows
}

// bodyLines is the number of output lines each boxed panel gets, or 0 when
// boxes do not fit.
func (g Grid) bodyLines() int {
	rows := g.Rows()
	if rows == 0 {
		return 0
	}
	per := g.Height / rows
	if per < panelChrome+1 {
		return 0
	}
	return per - panelChrome
}

// Render draws the grid.
func (g Grid) Render(theme *styles.Theme) string {
	if len(g.Panels) == 0 {
		return ""
	}
	cols := g.columns()
	rows := g.Rows()
	colWidth := g.Width / cols
	lines := g.bodyLines()

	labelWidth := 0
	if lines == 0 {
		for i, p := range g.Panels {
			title := p.Label
			if i == g.Focus {
				title += g.Marker
			}
			if w := util.StringWidth(title); w > labelWidth {
				labelWidth = w
			}
		}
	}

	columns := make([]string, 0, cols)
	for c := 0; c < cols; c++ {
		var cells []string
		for r := 0; r < rows; r++ {
			i := c*rows + r
			if i >= len(g.Panels) {
				break
			}
			v := PanelView{
				Panel:   g.Panels[i],
				Focused: i == g.Focus,
				Marker:  g.Marker,
				Width:   colWidth,
				Lines:   lines,
			}
			if lines == 0 {
				cells = append(cells, lipgloss.PlaceHorizontal(colWidth, lipgloss.Left, v.RenderLine(theme, labelWidth)))
			} else {
				cells = append(cells, v.Render(theme))
			}
		}
		if lines == 0 {
			columns = append(columns, strings.Join(cells, "\n"))
		} else {
			columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, cells...))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
