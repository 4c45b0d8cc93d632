// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clipboard provides the export targets for a focused panel.
//
// # Key Types
//
//   - Sink: anything that accepts exported text
//   - System: the operating system clipboard
//   - OSC52: terminal clipboard via OSC 52 escape sequences (works over SSH)
//   - Throttled: rate-limits another sink
//
// Failures are returned to the caller; nothing in this package retries.
package clipboard
