// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package viewer is the bubbletea program behind "nvis tui".
//
// The Model owns one session.Session. Every edit, focus move, mode toggle
// and export is handled inside Update, so the session is only ever touched
// from the event loop. The config watcher runs on its own goroutine and
// talks to the model through ConfigReloadedMsg and ConfigErrorMsg.
//
// File layout:
//   - keys.go: KeyMap built from config key bindings
//   - messages.go: messages posted from outside the program
//   - model.go: Model construction and accessors
//   - update.go: message and key handling
//   - view.go: layout of input line, panel grid, status and help
package viewer
