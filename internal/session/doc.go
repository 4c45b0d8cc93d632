// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one viewing session.
//
// A Session owns the raw input, the input mode, the resolved byte buffer,
// the rendered panels and the focus index. Every state change goes through
// one of its event methods, and every input or mode change recomputes the
// buffer and all panels from scratch.
//
// # Key Types
//
//   - Session: the per-process viewing context
//   - Config: construction options
//   - Status: a point-in-time snapshot for display and logging
//
// # Usage
//
//	s := session.New(session.Config{Mode: input.Smart})
//	s.SetInput("0x0100")
//	s.FocusNext()
//	err := s.Export(clipboard.System{})
package session
