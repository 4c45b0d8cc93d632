// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and the version/help handlers for nvis.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jeranaias/nvis/internal/config"
	"github.com/jeranaias/nvis/internal/export"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdRender
	CmdREPL
	CmdList
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// String returns the command name as typed.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdRender:
		return "render"
	case CmdREPL:
		return "repl"
	case CmdList:
		return "list"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string
	Mode       string
	LogPath    string
	NoWatch    bool

	// render
	Format    string
	Only      string
	Out       string
	Text      string
	FromStdin bool

	// config
	Subcommand string
	ConfigKey  string

	// Unknown is the unrecognized command word for CmdUnknown.
	Unknown string

	// Raw args (remaining after the command word)
	Raw []string
}

// IO bundles the streams a handler uses.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdIO returns the process streams.
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

const usageText = `nvis - interactive byte viewer

Type one line of text and see it as base64, base32, hex, C escapes and
little/big-endian integers of every width at once.

Usage:
  nvis                              Start the viewer (default)
  nvis tui                          Same
  nvis render [flags] [TEXT | -]    Print every panel for TEXT (or stdin)
  nvis repl                         Line-editing loop; ":mode" toggles, ":q" quits
  nvis list                         List transformers in display order
  nvis config [show|path|init|get KEY]
                                    Configuration management
  nvis version                      Show version information
  nvis help                         Show this help

Global Flags:
  --config PATH                     Use this config file
  --mode raw|smart                  Input mode at startup
  --log PATH                        Write a diagnostic log
  --no-watch                        Do not reload the config file on change

Render Flags:
  --format text|json|markdown|toml  Output format (default: text)
  --only LABEL                      Print a single panel
  --out PATH                        Write to PATH instead of stdout

Input Modes:
  raw     the typed text is the bytes
  smart   0x.. is hex, 0o.. is octal, 0b.. is binary; anything else is raw

Viewer Keys:
  down/tab, up/shift+tab            Move focus
  ctrl+t                            Toggle raw/smart
  ctrl+s                            Copy the focused panel
  ctrl+v                            Paste into the input line
  ctrl+q, ctrl+c                    Quit

Examples:
  nvis render --mode smart 0xdeadbeef
  echo -n hello | nvis render --format json -
  nvis render --only beu32 --mode smart 0x0000002a
  nvis render --format markdown --out panels hello

Version: %s
`

// Usage returns the help text.
func Usage() string {
	return fmt.Sprintf(usageText, Version)
}

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Print(Usage())
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "nvis version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses os.Args and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses argv without the program name.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui", "view":
		return CmdTUI, parsedArgs

	case "render", "r":
		parseRenderArgs(&parsedArgs, remaining)
		return CmdRender, parsedArgs

	case "repl":
		return CmdREPL, parsedArgs

	case "list", "ls":
		return CmdList, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "--version", "-V":
		return CmdVersion, parsedArgs

	case "help", "--help", "-h":
		return CmdHelp, parsedArgs

	default:
		parsedArgs.Unknown = cmd
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags pulls the global flags out of args wherever they appear.
// Everything after "--" is passed through untouched.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		if arg == "--" {
			remaining = append(remaining, args[i:]...)
			break
		}

		switch arg {
		case "--no-watch":
			parsedArgs.NoWatch = true
		case "--config", "-c":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		case "--mode", "-m":
			if i+1 < len(args) {
				i++
				parsedArgs.Mode = args[i]
			}
		case "--log":
			if i+1 < len(args) {
				i++
				parsedArgs.LogPath = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--mode="):
				parsedArgs.Mode = strings.TrimPrefix(arg, "--mode=")
			case strings.HasPrefix(arg, "--log="):
				parsedArgs.LogPath = strings.TrimPrefix(arg, "--log=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseRenderArgs reads --format, --only, --out and the input text. A lone "-"
// selects stdin; several positionals are joined with single spaces.
func parseRenderArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Format = p.Flag("format")
	args.Only = p.Flag("only")
	args.Out = p.Flag("out")

	text := p.PositionalFrom(0)
	if len(text) == 1 && text[0] == "-" {
		args.FromStdin = true
		return
	}
	args.Text = strings.Join(text, " ")
}

func parseConfigArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Subcommand = p.Subcommand()
	args.ConfigKey = p.Positional(1)
}

// ApplyOverrides folds the global flags into cfg and revalidates it. On a
// validation error cfg is left as it was.
func ApplyOverrides(cfg *config.Config, args Args) error {
	next := cfg.Clone()
	if args.Mode != "" {
		next.Input.DefaultMode = strings.ToLower(strings.TrimSpace(args.Mode))
	}
	if args.LogPath != "" {
		next.Logging.Path = args.LogPath
	}
	if args.NoWatch {
		next.Watch = false
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*cfg = *next
	return nil
}

// =============================================================================
// VERSION / HELP
// =============================================================================

// HandleVersion handles the "version" command.
func HandleVersion(stdio IO) {
	PrintVersion(stdio.Out)
}

// HandleHelp prints the usage text, rendered as Markdown when stdout is a
// terminal.
func HandleHelp(stdio IO) {
	if IsTerminal(stdio.Out) && ColorsEnabled() {
		md := "```\n" + strings.TrimRight(Usage(), "\n") + "\n```\n"
		if out, err := export.RenderMarkdown(md, TerminalWidth(stdio.Out)); err == nil {
			fmt.Fprint(stdio.Out, out)
			return
		}
	}
	fmt.Fprint(stdio.Out, Usage())
}

// UnknownCommandError formats the error for CmdUnknown with a suggestion
// when one is close.
func UnknownCommandError(name string) error {
	if s := SuggestCommand(name); s != "" {
		return fmt.Errorf("unknown command %q (did you mean %q?)", name, s)
	}
	return fmt.Errorf("unknown command %q, run 'nvis help' for usage", name)
}
