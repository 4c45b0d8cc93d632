// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the rendering pieces of the nvis viewer.

# Components

PanelView (panel.go) - one transformer's output in a bordered box, or a
single line in compact layouts.

Grid (grid.go) - arranges all panels in columns, filling the first column
before the next so the first half of the registry reads down the left side.

StatusBar (statusbar.go) - "M: <mode>, I: <index>" followed by the last
export or reload message.

HelpBar (help.go) - key hints rendered with bubbles/help.

All components are pure renderers: they take state, return strings, and
never mutate the session.
*/
package components
