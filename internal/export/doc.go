// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export formats a session snapshot for output outside the viewer.
//
// Supported formats:
//   - text: aligned "label  value" lines
//   - json: machine-readable object
//   - markdown: a table, rendered with glamour on a terminal
//   - toml: for pasting into notes or fixtures
//
// # Usage
//
//	snap := export.FromSession(s)
//	exp, _ := export.New(export.FormatJSON)
//	data, err := exp.Export(snap)
package export
