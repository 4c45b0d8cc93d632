// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
	"golang.org/x/time/rate"
)

var (
	// ErrUnavailable is returned when no system clipboard utility exists.
	ErrUnavailable = errors.New("system clipboard unavailable")
	// ErrThrottled is returned when exports arrive faster than allowed.
	ErrThrottled = errors.New("clipboard export throttled")
)

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
)

// Sink receives exported text.
type Sink interface {
	WriteAll(text string) error
}

// Source supplies text to paste.
type Source interface {
	ReadAll() (string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (string, error)

// ReadAll calls f().
func (f SourceFunc) ReadAll() (string, error) {
	return f()
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text string) error

// WriteAll calls f(text).
func (f SinkFunc) WriteAll(text string) error {
	return f(text)
}

// =============================================================================
// SYSTEM CLIPBOARD
// =============================================================================

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, win32).
type System struct{}

// WriteAll copies text to the system clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// ReadAll returns the system clipboard contents.
func (System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("system clipboard: %w", err)
	}
	return text, nil
}

// =============================================================================
// OSC 52
// =============================================================================

// OSC52 asks the terminal emulator to set its clipboard.
type OSC52 struct {
	out *termenv.Output
}

// NewOSC52 creates an OSC 52 sink writing escape sequences to w.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{out: termenv.NewOutput(w)}
}

// WriteAll emits the OSC 52 sequence. The terminal gives no acknowledgement,
// so success only means the sequence was written.
func (o *OSC52) WriteAll(text string) error {
	o.out.Copy(text)
	return nil
}

// =============================================================================
// THROTTLING
// =============================================================================

// Throttled rejects writes that exceed a per-second budget.
type Throttled struct {
	next    Sink
	limiter *rate.Limiter
}

// NewThrottled wraps next with a limiter allowing perSecond writes per second.
func NewThrottled(next Sink, perSecond int) *Throttled {
	return &Throttled{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

// WriteAll forwards to the wrapped sink when the budget allows.
func (t *Throttled) WriteAll(text string) error {
	if !t.limiter.Allow() {
		return ErrThrottled
	}
	return t.next.WriteAll(text)
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

// New selects a sink by backend name. "auto" prefers the system clipboard
// and falls back to OSC 52 on w when no clipboard utility is installed.
// A positive maxPerSecond wraps the sink in a Throttled.
func New(backend string, maxPerSecond int, w io.Writer) (Sink, error) {
	var sink Sink
	switch strings.ToLower(backend) {
	case BackendSystem:
		sink = System{}
	case BackendOSC52:
		sink = NewOSC52(w)
	case BackendAuto, "":
		if clipboard.Unsupported {
			sink = NewOSC52(w)
		} else {
			sink = System{}
		}
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q, must be one of: auto, system, osc52", backend)
	}

	if maxPerSecond > 0 {
		sink = NewThrottled(sink, maxPerSecond)
	}
	return sink, nil
}
