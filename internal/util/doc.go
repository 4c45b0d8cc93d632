// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the nvis packages.
//
// # Key Functions
//
// Display width (terminal columns, via go-runewidth):
//   - StringWidth: columns occupied by a string
//   - TruncateWidth: cut to a column budget with an ellipsis
//   - PadWidth: right-pad to an exact column count
//   - WrapWidth: hard-wrap unbroken text such as base64 output
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
