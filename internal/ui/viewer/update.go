// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/nvis/internal/clipboard"
	"github.com/jeranaias/nvis/internal/ui/components"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case ConfigErrorMsg:
		m.status.SetMessage(components.StatusError, fmt.Sprintf("config: %v", msg.Err))
		return m, nil

	case PasteMsg:
		return m.handlePaste(msg)
	}

	return m, m.updateInput(msg)
}

// updateInput forwards msg to the text input and recomputes the session
// whenever the line changed, whatever kind of message changed it.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.syncInput(before)
	return cmd
}

func (m *Model) syncInput(before string) {
	if after := m.input.Value(); after != before {
		m.session.SetInput(after)
		m.status.ClearMessage()
	}
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logSessionEnd()
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleMode):
		m.session.ToggleMode()
		m.status.ClearMessage()
		m.syncStatus()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		m.export()
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		m.session.FocusNext()
		m.syncStatus()
		return m, nil

	case key.Matches(msg, m.keys.FocusPrev):
		m.session.FocusPrev()
		m.syncStatus()
		return m, nil

	case key.Matches(msg, m.input.KeyMap.Paste):
		return m, m.readPaste()
	}

	return m, m.updateInput(msg)
}

// =============================================================================
// PASTE
// =============================================================================

func (m Model) readPaste() tea.Cmd {
	src := m.paste
	return func() tea.Msg {
		text, err := src.ReadAll()
		return PasteMsg{Text: text, Err: err}
	}
}

// pasteFlattener keeps pasted text on one line.
var pasteFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// handlePaste inserts msg.Text at the cursor, honoring the char limit.
func (m Model) handlePaste(msg PasteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.status.SetMessage(components.StatusError, "paste: "+msg.Err.Error())
		return m, nil
	}
	if msg.Text == "" {
		return m, nil
	}

	before := m.input.Value()
	value := []rune(before)
	pos := m.input.Position()
	if pos > len(value) {
		pos = len(value)
	}
	ins := []rune(pasteFlattener.Replace(msg.Text))
	if limit := m.input.CharLimit; limit > 0 {
		room := limit - len(value)
		if room <= 0 {
			return m, nil
		}
		if len(ins) > room {
			ins = ins[:room]
		}
	}

	next := make([]rune, 0, len(value)+len(ins))
	next = append(next, value[:pos]...)
	next = append(next, ins...)
	next = append(next, value[pos:]...)
	m.input.SetValue(string(next))
	m.input.SetCursor(pos + len(ins))
	m.syncInput(before)
	return m, nil
}

func (m *Model) export() {
	if m.sink == nil {
		m.status.SetMessage(components.StatusError, clipboard.ErrUnavailable.Error())
		return
	}
	err := m.session.Export(m.sink)
	switch {
	case err == nil:
		p, _ := m.session.Focused()
		m.status.SetMessage(components.StatusSuccess, "copied "+p.Label)
	case errors.Is(err, clipboard.ErrThrottled):
		m.status.SetMessage(components.StatusInfo, err.Error())
	default:
		m.status.SetMessage(components.StatusError, err.Error())
	}
}

func (m Model) logSessionEnd() {
	st := m.session.GetStatus()
	m.logger.Debug("session ended",
		zap.String("session_id", st.SessionID),
		zap.Duration("duration", st.Duration),
		zap.Stringer("mode", st.Mode),
		zap.String("focus", st.Label),
		zap.Int("input_len", st.InputLen),
		zap.Int("byte_len", st.ByteLen),
		zap.Int("exports", st.Exports),
	)
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

// handleConfigReloaded applies presentation settings. The session's mode
// and input are left alone; input.default_mode only applies at startup.
func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return m, nil
	}
	m.cfg = msg.Config
	m.keys = NewKeyMap(msg.Config.Keys)
	if msg.Sink != nil {
		m.sink = msg.Sink
	}
	m.logger.Info("config reloaded", zap.String("source", msg.Config.Source))
	m.status.SetMessage(components.StatusInfo, "config reloaded")
	return m, nil
}
