// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package input turns a line of user text into the byte buffer every
// transformer renders.
//
// # Modes
//
//   - Raw: the UTF-8 bytes of the text, unchanged
//   - Smart: radix prefixes are honoured ("0x" hex bytes, "0o" octal
//     integer, "0b" binary integer); any other text falls back to Raw
//
// # Usage
//
//	buf := input.Resolve("0x48656c6c6f", input.Smart) // "Hello"
//	buf = input.Resolve("0x48656c6c6f", input.Raw)    // the 12 literal bytes
//
// Octal and binary literals are serialized in the host's native byte
// order, so their buffers differ between little- and big-endian machines.
package input
