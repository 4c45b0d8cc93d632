// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - One-shot rendering of every panel for a single input.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/nvis/internal/config"
	"github.com/jeranaias/nvis/internal/export"
	"github.com/jeranaias/nvis/internal/input"
	"github.com/jeranaias/nvis/internal/session"
	"github.com/jeranaias/nvis/internal/transform"
)

// HandleRender handles "nvis render".
func HandleRender(cfg *config.Config, args Args, stdio IO) error {
	f, err := export.ParseFormat(args.Format)
	if err != nil {
		return err
	}

	text := args.Text
	if args.FromStdin {
		data, err := io.ReadAll(stdio.In)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = TrimNewline(string(data))
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	sess.SetInput(text)

	snap := export.FromSession(sess)
	if args.Out != "" {
		return writeSnapshotFile(snap, f, args.Only, args.Out, stdio.Out)
	}
	return writeSnapshot(snap, f, args.Only, stdio.Out)
}

// writeSnapshotFile writes snap to path in format f and reports the file
// written. A path without an extension gets the format's one.
func writeSnapshotFile(snap *export.Snapshot, f export.Format, only, path string, out io.Writer) error {
	if only != "" {
		one, ok := snap.Only(strings.ToLower(only))
		if !ok {
			return unknownLabelError(transform.Default(), only)
		}
		snap = one
	}
	exp, err := export.New(f)
	if err != nil {
		return err
	}
	written, err := export.ExportToFile(snap, exp, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", written)
	return nil
}

// newSession starts a session in the configured input mode.
func newSession(cfg *config.Config) (*session.Session, error) {
	mode, err := input.ParseMode(cfg.Input.DefaultMode)
	if err != nil {
		return nil, err
	}
	return session.New(session.Config{Mode: mode}), nil
}

// writeSnapshot prints snap in format f. With only set, a text render
// prints the bare panel value so it can be piped.
func writeSnapshot(snap *export.Snapshot, f export.Format, only string, out io.Writer) error {
	if only != "" {
		one, ok := snap.Only(strings.ToLower(only))
		if !ok {
			return unknownLabelError(transform.Default(), only)
		}
		if f == export.FormatText {
			_, err := fmt.Fprintln(out, one.Panels[0].Text)
			return err
		}
		snap = one
	}

	if f != export.FormatText && IsTerminal(out) && ColorsEnabled() {
		if pretty, err := export.Pretty(snap, f, TerminalWidth(out)); err == nil {
			_, err = fmt.Fprint(out, pretty)
			return err
		}
	}
	return export.Write(out, snap, f)
}

func unknownLabelError(reg *transform.Registry, label string) error {
	if s := reg.Suggest(label); s != "" {
		return fmt.Errorf("unknown transformer %q (did you mean %q?)", label, s)
	}
	return fmt.Errorf("unknown transformer %q, run 'nvis list' for the available ones", label)
}

// TrimNewline drops exactly one trailing "\n" or "\r\n".
func TrimNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
