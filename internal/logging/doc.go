// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the zap logger used across nvis.
//
// The viewer owns the terminal, so log records never go to stdout or
// stderr. They are written to a file when one is configured and dropped
// otherwise. L returns a no-op logger until Set is called.
package logging
