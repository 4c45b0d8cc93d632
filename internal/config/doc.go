// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for nvis.
//
// TOML, JSON and YAML files are supported, with built-in defaults,
// environment variable overrides and validation. JSON files are also
// checked against an embedded JSON schema before decoding.
//
// Configuration file locations (in order of precedence):
//   - --config PATH
//   - ~/.nvis/config.toml
//   - ~/.nvis/config.json
//   - ~/.nvis/config.yaml
//   - Built-in defaults
//
// # Environment Overrides
//
//   - NVIS_MODE: input.default_mode
//   - NVIS_THEME: ui.theme
//   - NVIS_COLUMNS: ui.columns
//   - NVIS_CLIPBOARD: clipboard.backend
//   - NVIS_LOG: logging.path
//   - NVIS_LOG_LEVEL: logging.level
//
// # Hot Reload
//
// Watcher observes the loaded file and delivers every valid new revision
// to a callback. Invalid revisions are reported and otherwise ignored.
package config
