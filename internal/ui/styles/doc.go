// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the nvis viewer.
//
// Colors are lipgloss AdaptiveColors, so one palette serves light and dark
// terminals. NewTheme can force either variant when background detection
// guesses wrong.
package styles
