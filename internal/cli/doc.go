// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive
// commands of nvis.
//
// # Key Types
//
//   - Command: enumeration of the available commands
//   - Args: parsed global and command-specific flags
//   - ArgParser: flag/positional splitting shared by every command
//   - IO: the streams a handler reads and writes
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdRender:
//	    return cli.HandleRender(cfg, args, cli.StdIO())
//	// ...
//	}
//
// # Commands Overview
//
//   - tui: the interactive viewer (started by main)
//   - render: print every panel for one input
//   - repl: line-editing loop printing panels per line
//   - list: transformer labels, widths and order
//   - config: show, path, init, get
//   - version, help
package cli
