// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/nvis/internal/input"
	"github.com/jeranaias/nvis/internal/ui/styles"
	"github.com/jeranaias/nvis/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status classifies the transient message shown after the mode and index.
type Status int

const (
	StatusReady Status = iota
	StatusSuccess
	StatusError
	StatusInfo
)

// String returns the display string for the status
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusSuccess:
		return "Success"
	case StatusError:
		return "Error"
	case StatusInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// Icon returns an ASCII marker so the status is readable without color.
func (s Status) Icon() string {
	switch s {
	case StatusSuccess:
		return styles.StatusIndicators.Success
	case StatusError:
		return styles.StatusIndicators.Error
	case StatusInfo:
		return styles.StatusIndicators.Info
	default:
		return ""
	}
}

// StatusText is the fixed mode/index summary, e.g. "M: Raw, I: 0".
func StatusText(mode input.Mode, focus int) string {
	return fmt.Sprintf("M: %s, I: %d", mode, focus)
}

// StatusBar is the bottom line of the viewer.
type StatusBar struct {
	Mode    input.Mode
	Focus   int
	Status  Status
	Message string
	Width   int
	theme   *styles.Theme
}

// NewStatusBar creates a new StatusBar component
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Mode:   input.Raw,
		Status: StatusReady,
		Width:  80,
		theme:  theme,
	}
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetState records the session mode and focus index.
func (s *StatusBar) SetState(mode input.Mode, focus int) {
	s.Mode = mode
	s.Focus = focus
}

// SetMessage shows msg until it is replaced or cleared.
func (s *StatusBar) SetMessage(status Status, msg string) {
	s.Status = status
	s.Message = msg
}

// ClearMessage removes the transient message.
func (s *StatusBar) ClearMessage() {
	s.Status = StatusReady
	s.Message = ""
}

// Text returns the unstyled status line.
func (s *StatusBar) Text() string {
	text := StatusText(s.Mode, s.Focus)
	if s.Message != "" {
		if icon := s.Status.Icon(); icon != "" {
			text += "  " + icon
		}
		text += " " + s.Message
	}
	return text
}

// View renders the status bar at its width.
func (s *StatusBar) View() string {
	modeStyle := s.theme.ModeRaw
	if s.Mode == input.Smart {
		modeStyle = s.theme.ModeSmart
	}

	left := "M: " + modeStyle.Render(s.Mode.String()) + fmt.Sprintf(", I: %d", s.Focus)

	if s.Message != "" {
		msgStyle := s.theme.StatusInfo
		switch s.Status {
		case StatusSuccess:
			msgStyle = s.theme.StatusSuccess
		case StatusError:
			msgStyle = s.theme.StatusError
		}
		msg := s.Message
		if icon := s.Status.Icon(); icon != "" {
			msg = icon + " " + msg
		}
		room := s.Width - lipgloss.Width(left) - 4
		if room > 0 {
			left += "  " + msgStyle.Render(util.TruncateWidth(msg, room))
		}
	}

	width := s.Width - s.theme.StatusBar.GetHorizontalPadding()
	if width < 0 {
		width = 0
	}
	return s.theme.StatusBar.Width(s.Width).Render(lipgloss.PlaceHorizontal(width, lipgloss.Left, left))
}
