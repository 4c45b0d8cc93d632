// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package input

import (
	"fmt"
	"strings"
)

// Mode selects how raw text is interpreted.
type Mode int

const (
	// Raw uses the text's UTF-8 bytes verbatim.
	Raw Mode = iota
	// Smart interprets 0x/0o/0b prefixed literals.
	Smart
)

// String returns the display name used in the status bar.
func (m Mode) String() string {
	switch m {
	case Raw:
		return "Raw"
	case Smart:
		return "Smart"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Smart {
		return Raw
	}
	return Smart
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return Raw, nil
	case "smart":
		return Smart, nil
	default:
		return Raw, fmt.Errorf("invalid input mode %q, must be one of: raw, smart", s)
	}
}
