// nvis - an interactive byte viewer for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/nvis/internal/cli"
	"github.com/jeranaias/nvis/internal/clipboard"
	"github.com/jeranaias/nvis/internal/config"
	"github.com/jeranaias/nvis/internal/input"
	"github.com/jeranaias/nvis/internal/logging"
	"github.com/jeranaias/nvis/internal/session"
	"github.com/jeranaias/nvis/internal/ui/styles"
	"github.com/jeranaias/nvis/internal/ui/viewer"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()
	if err := run(cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd cli.Command, args cli.Args) error {
	stdio := cli.StdIO()

	// Commands that need no config
	switch cmd {
	case cli.CmdVersion:
		cli.HandleVersion(stdio)
		return nil
	case cli.CmdHelp:
		cli.HandleHelp(stdio)
		return nil
	case cli.CmdUnknown:
		return cli.UnknownCommandError(args.Unknown)
	case cli.CmdList:
		return cli.HandleList(stdio)
	}

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	logging.Set(logger)
	logger.Debug("starting", zap.Stringer("command", cmd), zap.String("config", cfg.Source))

	switch cmd {
	case cli.CmdRender:
		return cli.HandleRender(cfg, args, stdio)
	case cli.CmdREPL:
		return cli.HandleREPL(cfg, stdio)
	case cli.CmdConfig:
		return cli.HandleConfig(cfg, args, stdio)
	default:
		return runTUI(cfg, args, logger)
	}
}

// loadConfig reads --config when given, otherwise the first config file
// found, then applies the global flag overrides.
func loadConfig(args cli.Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
		if errors.Is(err, fs.ErrNotExist) {
			// "config init --config PATH" creates it
			cfg, err = config.Default(), nil
			cfg.ApplyEnvOverrides()
		}
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cli.ApplyOverrides(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runTUI starts the interactive viewer.
func runTUI(cfg *config.Config, args cli.Args, logger *zap.Logger) error {
	theme := styles.NewTheme(cfg.UI.Theme)

	sink, err := clipboard.New(cfg.Clipboard.Backend, cfg.Clipboard.MaxPerSecond, os.Stdout)
	if err != nil {
		return err
	}

	mode, err := input.ParseMode(cfg.Input.DefaultMode)
	if err != nil {
		return err
	}
	sess := session.New(session.Config{Mode: mode, Logger: logger})

	m := viewer.New(viewer.Options{
		Session: sess,
		Config:  cfg,
		Theme:   theme,
		Sink:    sink,
		Logger:  logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	if cfg.Watch && cfg.Source != "" {
		w, err := config.NewWatcher(cfg.Source,
			func(next *config.Config) {
				if err := cli.ApplyOverrides(next, args); err != nil {
					p.Send(viewer.ConfigErrorMsg{Err: err})
					return
				}
				s, err := clipboard.New(next.Clipboard.Backend, next.Clipboard.MaxPerSecond, os.Stdout)
				if err != nil {
					p.Send(viewer.ConfigErrorMsg{Err: err})
					return
				}
				p.Send(viewer.ConfigReloadedMsg{Config: next, Sink: s})
			},
			func(err error) {
				p.Send(viewer.ConfigErrorMsg{Err: err})
			},
		)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running nvis: %w", err)
	}
	return nil
}
