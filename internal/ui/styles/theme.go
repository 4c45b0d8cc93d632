// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the viewer.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// INPUT LINE
	// ==========================================================================

	InputPrompt lipgloss.Style
	InputText   lipgloss.Style
	InputHint   lipgloss.Style

	// ==========================================================================
	// PANELS
	// ==========================================================================

	Panel             lipgloss.Style
	PanelFocused      lipgloss.Style
	PanelTitle        lipgloss.Style
	PanelTitleFocused lipgloss.Style
	PanelText         lipgloss.Style
	PanelPlaceholder  lipgloss.Style

	// ==========================================================================
	// STATUS BAR
	// ==========================================================================

	StatusBar     lipgloss.Style
	ModeRaw       lipgloss.Style
	ModeSmart     lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	ShortcutKey   lipgloss.Style
	ShortcutDesc  lipgloss.Style
}

// NewTheme detects terminal capabilities and builds the styles. variant
// "dark" or "light" overrides background detection; anything else keeps it.
func NewTheme(variant string) *Theme {
	colorProfile := termenv.ColorProfile()
	isDark := termenv.HasDarkBackground()

	switch strings.ToLower(variant) {
	case "dark":
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case "light":
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	// Input line
	t.InputPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Panels
	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.PanelFocused = t.Panel.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(FocusRing)

	t.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.PanelTitleFocused = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.PanelText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.PanelPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.ModeRaw = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.ModeSmart = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	t.StatusInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatusSuccess = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.StatusError = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// Columns caps the configured panel column count for the current width.
// Narrow terminals always get a single column.
func (t *Theme) Columns(configured int) int {
	if configured < 1 {
		configured = 1
	}
	switch t.GetLayoutMode() {
	case LayoutNarrow:
		return 1
	case LayoutMedium:
		if configured > 2 {
			return 2
		}
	}
	return configured
}
