// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth cuts s to at most maxWidth columns, ending with an ellipsis
// when anything was removed.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadWidth right-pads s with spaces to exactly width columns, truncating
// first if s is wider.
func PadWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(TruncateWidth(s, width), width)
}

// WrapWidth splits s into lines of at most width columns. Text without
// spaces (encodings, escapes) is broken at the column limit rather than at
// word boundaries. Existing newlines are preserved.
func WrapWidth(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if para == "" {
			lines = append(lines, "")
			continue
		}
		var cur strings.Builder
		curWidth := 0
		for _, r := range para {
			rw := runewidth.RuneWidth(r)
			if curWidth+rw > width && curWidth > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
				curWidth = 0
			}
			cur.WriteRune(r)
			curWidth += rw
		}
		lines = append(lines, cur.String())
	}
	return lines
}
