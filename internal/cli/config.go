// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation for nvis.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Display the effective configuration as TOML
//   path                Show the configuration file path
//   init                Write a default configuration file
//   get <key>           Print one value, e.g. "ui.columns"
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jeranaias/nvis/internal/config"
	"github.com/jeranaias/nvis/internal/export"
)

// ErrConfigExists is returned by "config init" when the file is present.
var ErrConfigExists = errors.New("config file already exists")

// HandleConfig handles the "config" command.
func HandleConfig(cfg *config.Config, args Args, stdio IO) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(cfg, stdio)
	case "path":
		return handleConfigPath(cfg, args, stdio)
	case "init":
		return handleConfigInit(args, stdio)
	case "get":
		return handleConfigGet(cfg, args.ConfigKey, stdio)
	default:
		return fmt.Errorf("unknown config subcommand: %s", args.Subcommand)
	}
}

func handleConfigShow(cfg *config.Config, stdio IO) error {
	source := cfg.Source
	if source == "" {
		source = "built-in defaults"
	}
	body := fmt.Sprintf("# source: %s\n%s", source, cfg.String())

	if IsTerminal(stdio.Out) && ColorsEnabled() {
		if out, err := export.Highlight([]byte(body), export.FormatTOML); err == nil {
			fmt.Fprint(stdio.Out, out)
			return nil
		}
	}
	fmt.Fprint(stdio.Out, body)
	return nil
}

// configFilePath is the file "path" and "init" act on: --config, then the
// loaded file, then the default TOML location.
func configFilePath(cfg *config.Config, args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	if cfg != nil && cfg.Source != "" {
		return cfg.Source, nil
	}
	return config.ConfigPathTOML()
}

func handleConfigPath(cfg *config.Config, args Args, stdio IO) error {
	path, err := configFilePath(cfg, args)
	if err != nil {
		return err
	}
	state := "not found"
	if _, err := os.Stat(path); err == nil {
		state = "exists"
	}
	fmt.Fprintf(stdio.Out, "%s %s\n", path, DimStyle.Render("("+state+")"))
	return nil
}

func handleConfigInit(args Args, stdio IO) error {
	path, err := configFilePath(nil, args)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	def := config.Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = config.SaveJSON(def, path)
	case ".yaml", ".yml":
		err = config.SaveYAML(def, path)
	default:
		err = config.SaveTOML(def, path)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(stdio.Out, "Wrote %s\n", path)
	return nil
}

func handleConfigGet(cfg *config.Config, key string, stdio IO) error {
	if key == "" {
		return errors.New("usage: nvis config get KEY")
	}
	v, err := cfg.Get(key)
	if err != nil {
		if s := suggestConfigKey(key); s != "" {
			return fmt.Errorf("%w (did you mean %q?)", err, s)
		}
		return err
	}
	switch val := v.(type) {
	case []string:
		fmt.Fprintln(stdio.Out, strings.Join(val, ", "))
	default:
		fmt.Fprintln(stdio.Out, val)
	}
	return nil
}

// suggestConfigKey returns the closest dotted key within three edits.
func suggestConfigKey(key string) string {
	best, bestDist := "", 4
	for _, k := range config.GetAllKeys() {
		if d := levenshtein.ComputeDistance(strings.ToLower(key), k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
