// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"github.com/jeranaias/nvis/internal/clipboard"
	"github.com/jeranaias/nvis/internal/config"
)

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a freshly loaded and validated config. Sink,
// when non-nil, replaces the export target.
type ConfigReloadedMsg struct {
	Config *config.Config
	Sink   clipboard.Sink
}

// ConfigErrorMsg reports a config file that failed to load. The running
// config stays in effect.
type ConfigErrorMsg struct {
	Err error
}

// =============================================================================
// INPUT MESSAGES
// =============================================================================

// PasteMsg carries clipboard text to insert at the cursor.
type PasteMsg struct {
	Text string
	Err  error
}
