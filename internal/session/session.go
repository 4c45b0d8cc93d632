// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeranaias/nvis/internal/clipboard"
	"github.com/jeranaias/nvis/internal/input"
	"github.com/jeranaias/nvis/internal/logging"
	"github.com/jeranaias/nvis/internal/transform"
)

// ErrNoPanels is returned by Export when the registry is empty.
var ErrNoPanels = errors.New("no panels to export")

// =============================================================================
// SESSION
// =============================================================================

// Session is the viewing context for one process lifetime. It is never
// persisted.
type Session struct {
	mu sync.Mutex

	id        string
	startTime time.Time
	registry  *transform.Registry
	logger    *zap.Logger

	raw    string
	mode   input.Mode
	buf    []byte
	panels []transform.Panel
	focus  int

	exports int
}

// Config holds options for New.
type Config struct {
	// Registry defaults to transform.Default().
	Registry *transform.Registry
	// Mode is the initial input mode.
	Mode input.Mode
	// Logger defaults to logging.L().
	Logger *zap.Logger
}

// New creates a session with empty input. Every panel starts at the
// placeholder and focus starts at 0.
func New(cfg Config) *Session {
	reg := cfg.Registry
	if reg == nil {
		reg = transform.Default()
	}
	id := uuid.NewString()
	l := cfg.Logger
	if l == nil {
		l = logging.L()
	}

	s := &Session{
		id:        id,
		startTime: time.Now(),
		registry:  reg,
		logger:    l.With(zap.String("session", id)),
		mode:      cfg.Mode,
		buf:       []byte{},
		panels:    reg.Placeholders(),
	}
	s.logger.Debug("session started",
		zap.Stringer("mode", s.mode),
		zap.Int("transformers", reg.Len()))
	return s
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string {
	return s.id
}

// Registry returns the transformer registry driving this session.
func (s *Session) Registry() *transform.Registry {
	return s.registry
}

// =============================================================================
// INPUT EVENTS
// =============================================================================

// SetInput replaces the raw text and recomputes every panel.
func (s *Session) SetInput(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = raw
	s.recompute()
}

// Input returns the stored raw text.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// Bytes returns a copy of the resolved buffer.
func (s *Session) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Mode returns the current input mode.
func (s *Session) Mode() input.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches to m and re-resolves the stored text.
func (s *Session) SetMode(m input.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == m {
		return
	}
	s.mode = m
	s.recompute()
}

// ToggleMode flips between Raw and Smart, re-resolves the stored text
// immediately and returns the new mode.
func (s *Session) ToggleMode() input.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = s.mode.Toggle()
	s.recompute()
	s.logger.Debug("mode toggled", zap.Stringer("mode", s.mode))
	return s.mode
}

// recompute must be called with mu held.
func (s *Session) recompute() {
	s.buf = input.Resolve(s.raw, s.mode)
	s.panels = s.registry.Render(s.buf)
}

// =============================================================================
// FOCUS EVENTS
// =============================================================================

// Focus returns the focused panel index.
func (s *Session) Focus() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus
}

// FocusNext moves focus forward, wrapping past the last panel.
func (s *Session) FocusNext() int {
	return s.moveFocus(1)
}

// FocusPrev moves focus backward, wrapping before the first panel.
func (s *Session) FocusPrev() int {
	return s.moveFocus(-1)
}

// SetFocus focuses index i, reduced modulo the panel count.
func (s *Session) SetFocus(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.focus = wrap(i, s.registry.Len())
	return s.focus
}

func (s *Session) moveFocus(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.focus = wrap(s.focus+delta, s.registry.Len())
	return s.focus
}

// wrap reduces i into [0, n). An empty set always yields 0.
func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// =============================================================================
// PANELS
// =============================================================================

// Panels returns a copy of the rendered panels in registry order.
func (s *Session) Panels() []transform.Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]transform.Panel, len(s.panels))
	copy(out, s.panels)
	return out
}

// Panel returns the rendered text for label.
func (s *Session) Panel(label string) (string, bool) {
	i, ok := s.registry.Index(label)
	if !ok {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panels[i].Text, true
}

// Focused returns the focused panel. It reports false when the registry
// is empty.
func (s *Session) Focused() (transform.Panel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.panels) == 0 {
		return transform.Panel{}, false
	}
	return s.panels[s.focus], true
}

// =============================================================================
// EXPORT
// =============================================================================

// Export writes the focused panel's text to sink. The placeholder is
// exported as-is. A sink failure is returned and leaves the session
// unchanged.
func (s *Session) Export(sink clipboard.Sink) error {
	p, ok := s.Focused()
	if !ok {
		return ErrNoPanels
	}

	if err := sink.WriteAll(p.Text); err != nil {
		s.logger.Warn("export failed", zap.String("label", p.Label), zap.Error(err))
		return fmt.Errorf("export %s: %w", p.Label, err)
	}

	s.mu.Lock()
	s.exports++
	s.mu.Unlock()

	s.logger.Info("panel exported", zap.String("label", p.Label), zap.Int("bytes", len(p.Text)))
	return nil
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status represents the current session status.
type Status struct {
	SessionID string
	StartTime time.Time
	Duration  time.Duration
	Mode      input.Mode
	Focus     int
	Label     string
	InputLen  int
	ByteLen   int
	Exports   int
}

// GetStatus returns the current session status.
func (s *Session) GetStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		SessionID: s.id,
		StartTime: s.startTime,
		Duration:  time.Since(s.startTime),
		Mode:      s.mode,
		Focus:     s.focus,
		InputLen:  len(s.raw),
		ByteLen:   len(s.buf),
		Exports:   s.exports,
	}
	if len(s.panels) > 0 {
		st.Label = s.panels[s.focus].Label
	}
	return st
}
