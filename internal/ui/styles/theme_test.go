// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme("auto")
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Panel", theme.Panel},
		{"PanelFocused", theme.PanelFocused},
		{"StatusBar", theme.StatusBar},
		{"InputPrompt", theme.InputPrompt},
	}
	for _, s := range styles {
		if s.style.Render("test") == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

func TestNewTheme_ForcedVariant(t *testing.T) {
	t.Cleanup(func() { NewTheme("dark") })

	if !NewTheme("dark").IsDark {
		t.Error(`NewTheme("dark").IsDark = false`)
	}
	if NewTheme("light").IsDark {
		t.Error(`NewTheme("light").IsDark = true`)
	}
}

// =============================================================================
// LAYOUT TESTS
// =============================================================================

func TestTheme_Columns(t *testing.T) {
	tests := []struct {
		width      int
		configured int
		want       int
	}{
		{40, 2, 1},
		{80, 1, 1},
		{80, 2, 2},
		{80, 4, 2},
		{120, 4, 4},
		{120, 0, 1},
	}

	theme := NewTheme("auto")
	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		if got := theme.Columns(tt.configured); got != tt.want {
			t.Errorf("width %d, Columns(%d) = %d, want %d", tt.width, tt.configured, got, tt.want)
		}
	}
}

func TestTheme_GetLayoutMode(t *testing.T) {
	theme := NewTheme("auto")
	theme.SetSize(59, 24)
	if theme.GetLayoutMode() != LayoutNarrow {
		t.Error("59 columns should be narrow")
	}
	theme.SetSize(99, 24)
	if theme.GetLayoutMode() != LayoutMedium {
		t.Error("99 columns should be medium")
	}
	theme.SetSize(100, 24)
	if theme.GetLayoutMode() != LayoutWide {
		t.Error("100 columns should be wide")
	}
}
