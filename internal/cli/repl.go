// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-editing loop that renders each entered line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/nvis/internal/clipboard"
	"github.com/jeranaias/nvis/internal/config"
	"github.com/jeranaias/nvis/internal/export"
	"github.com/jeranaias/nvis/internal/input"
	"github.com/jeranaias/nvis/internal/session"
)

const replHelp = `:mode           toggle raw/smart and re-render the last line
:mode raw|smart set the mode
:only LABEL     print one panel of the last line
:focus LABEL|N  focus a panel
:copy           copy the focused panel to the clipboard
:help           this help
::text          input starting with a colon
:q              quit`

// REPL evaluates lines against one session.
type REPL struct {
	session *session.Session
	sink    clipboard.Sink
	out     io.Writer
}

// NewREPL creates a REPL writing to out.
func NewREPL(sess *session.Session, out io.Writer) *REPL {
	return &REPL{session: sess, out: out}
}

// SetSink sets where :copy sends the focused panel.
func (r *REPL) SetSink(sink clipboard.Sink) {
	r.sink = sink
}

// Prompt shows the current mode.
func (r *REPL) Prompt() string {
	return fmt.Sprintf("nvis[%s]> ", strings.ToLower(r.session.Mode().String()))
}

// Eval handles one line. It returns true when the loop should end.
// Lines starting with ":" are commands; "::" escapes a leading colon.
// Anything else is new input.
func (r *REPL) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, "::") {
		line = line[1:]
	} else if strings.HasPrefix(line, ":") {
		return r.command(line)
	}
	r.session.SetInput(line)
	return false, r.render()
}

func (r *REPL) command(line string) (bool, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":q", ":quit", ":exit":
		return true, nil

	case ":mode":
		if len(fields) > 1 {
			m, err := input.ParseMode(fields[1])
			if err != nil {
				return false, err
			}
			r.session.SetMode(m)
		} else {
			r.session.ToggleMode()
		}
		fmt.Fprintf(r.out, "mode: %s\n", r.session.Mode())
		if r.session.Input() == "" {
			return false, nil
		}
		return false, r.render()

	case ":only":
		if len(fields) < 2 {
			return false, errors.New("usage: :only LABEL")
		}
		return false, writeSnapshot(export.FromSession(r.session), export.FormatText, fields[1], r.out)

	case ":focus":
		if len(fields) < 2 {
			return false, errors.New("usage: :focus LABEL|N")
		}
		return false, r.focus(fields[1])

	case ":copy":
		return false, r.copyFocused()

	case ":help", ":h", ":?":
		fmt.Fprintln(r.out, replHelp)
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %s, try :help", fields[0])
	}
}

// focus accepts a transformer label or a display index.
func (r *REPL) focus(arg string) error {
	reg := r.session.Registry()
	i, ok := reg.Index(strings.ToLower(arg))
	if !ok {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return unknownLabelError(reg, arg)
		}
		i = n
	}
	r.session.SetFocus(i)
	p, _ := r.session.Focused()
	fmt.Fprintf(r.out, "focus: %d %s\n", r.session.Focus(), p.Label)
	return nil
}

func (r *REPL) copyFocused() error {
	if r.sink == nil {
		return clipboard.ErrUnavailable
	}
	if err := r.session.Export(r.sink); err != nil {
		return err
	}
	p, _ := r.session.Focused()
	fmt.Fprintf(r.out, "copied %s\n", p.Label)
	return nil
}

func (r *REPL) render() error {
	snap := export.FromSession(r.session)
	exp := &export.TextExporter{}
	data, err := exp.Export(snap)
	if err != nil {
		return err
	}
	_, err = r.out.Write(data)
	return err
}

// HandleREPL runs the interactive loop until :q, Ctrl+C or EOF. History
// is kept for the life of the process only.
func HandleREPL(cfg *config.Config, stdio IO) error {
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	repl := NewREPL(sess, stdio.Out)
	if sink, err := clipboard.New(cfg.Clipboard.Backend, cfg.Clipboard.MaxPerSecond, stdio.Out); err == nil {
		repl.SetSink(sink)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		text, err := line.Prompt(repl.Prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(stdio.Out)
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}
		if strings.TrimSpace(text) != "" {
			line.AppendHistory(text)
		}

		quit, err := repl.Eval(text)
		if err != nil {
			fmt.Fprintf(stdio.Err, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		}
		if quit {
			return nil
		}
	}
}
