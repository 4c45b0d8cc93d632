// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/nvis/internal/clipboard"
	"github.com/jeranaias/nvis/internal/config"
	"github.com/jeranaias/nvis/internal/input"
	"github.com/jeranaias/nvis/internal/session"
)

func bufIO(in string) (IO, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return IO{In: strings.NewReader(in), Out: &out, Err: &errOut}, &out, &errOut
}

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"show"},
			wantSub: "show",
		},
		{
			name:    "flag with value",
			args:    []string{"--format", "json", "hello"},
			wantSub: "hello",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("format") != "json" {
					t.Errorf("Flag(format) = %q, want %q", p.Flag("format"), "json")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"--only=hex", "x"},
			wantSub: "x",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("only") != "hex" {
					t.Errorf("Flag(only) = %q, want %q", p.Flag("only"), "hex")
				}
			},
		},
		{
			name:    "dash is positional",
			args:    []string{"--format", "toml", "-"},
			wantSub: "-",
			validate: func(t *testing.T, p *ArgParser) {
				if p.PositionalCount() != 1 {
					t.Errorf("PositionalCount() = %d, want 1", p.PositionalCount())
				}
			},
		},
		{
			name:    "double dash ends flags",
			args:    []string{"--", "--format", "-x"},
			wantSub: "--format",
			validate: func(t *testing.T, p *ArgParser) {
				if p.HasFlag("format") {
					t.Error("format should not be parsed as a flag after --")
				}
				assert.Equal(t, []string{"--format", "-x"}, p.PositionalFrom(0))
			},
		},
		{
			name:    "declared bool flag does not consume",
			args:    []string{"--quiet", "text"},
			wantSub: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewArgParser(tt.args, "quiet")
			if parser.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", parser.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, parser)
			}
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"true", "YES", "y", "1", "on"} {
		b, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, b, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

// =============================================================================
// COMMAND PARSING TESTS (cli.go)
// =============================================================================

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{nil, CmdTUI},
		{[]string{"tui"}, CmdTUI},
		{[]string{"render", "x"}, CmdRender},
		{[]string{"repl"}, CmdREPL},
		{[]string{"ls"}, CmdList},
		{[]string{"config", "show"}, CmdConfig},
		{[]string{"version"}, CmdVersion},
		{[]string{"--help"}, CmdHelp},
		{[]string{"rendr"}, CmdUnknown},
	}
	for _, tt := range tests {
		got, _ := ParseArgs(tt.argv)
		if got != tt.want {
			t.Errorf("ParseArgs(%v) = %v, want %v", tt.argv, got, tt.want)
		}
	}
}

func TestParseArgs_GlobalFlagsAnywhere(t *testing.T) {
	cmd, args := ParseArgs([]string{"render", "--mode", "smart", "--config=/tmp/c.toml", "--no-watch", "0x41"})
	assert.Equal(t, CmdRender, cmd)
	assert.Equal(t, "smart", args.Mode)
	assert.Equal(t, "/tmp/c.toml", args.ConfigPath)
	assert.True(t, args.NoWatch)
	assert.Equal(t, "0x41", args.Text)
}

func TestParseArgs_Render(t *testing.T) {
	_, args := ParseArgs([]string{"render", "--format", "json", "--only", "hex", "hello", "world"})
	assert.Equal(t, "json", args.Format)
	assert.Equal(t, "hex", args.Only)
	assert.Equal(t, "hello world", args.Text)
	assert.False(t, args.FromStdin)

	_, args = ParseArgs([]string{"render", "-"})
	assert.True(t, args.FromStdin)

	_, args = ParseArgs([]string{"render", "--out", "panels.md", "hi"})
	assert.Equal(t, "panels.md", args.Out)
	assert.Equal(t, "hi", args.Text)

	// text that looks like a global flag survives after --
	_, args = ParseArgs([]string{"render", "--", "--mode"})
	assert.Equal(t, "--mode", args.Text)
	assert.Equal(t, "", args.Mode)
}

func TestParseArgs_Config(t *testing.T) {
	_, args := ParseArgs([]string{"config", "get", "ui.columns"})
	assert.Equal(t, "get", args.Subcommand)
	assert.Equal(t, "ui.columns", args.ConfigKey)
}

func TestUnknownCommandError(t *testing.T) {
	err := UnknownCommandError("rendr")
	assert.Contains(t, err.Error(), `did you mean "render"`)

	err = UnknownCommandError("zzzzzzz")
	assert.Contains(t, err.Error(), "nvis help")
}

func TestSuggestCommand(t *testing.T) {
	assert.Equal(t, "list", SuggestCommand("lsit"))
	assert.Equal(t, "", SuggestCommand("list"))
	assert.Equal(t, "", SuggestCommand("x"))
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, ApplyOverrides(cfg, Args{Mode: " Smart ", NoWatch: true, LogPath: "/tmp/nvis.log"}))
	assert.Equal(t, "smart", cfg.Input.DefaultMode)
	assert.False(t, cfg.Watch)
	assert.Equal(t, "/tmp/nvis.log", cfg.Logging.Path)

	cfg = config.Default()
	assert.Error(t, ApplyOverrides(cfg, Args{Mode: "hex", NoWatch: true, LogPath: "/tmp/x.log"}))
	assert.Equal(t, config.Default().Input.DefaultMode, cfg.Input.DefaultMode)
	assert.True(t, cfg.Watch, "rejected overrides leave cfg untouched")
	assert.Equal(t, config.Default().Logging.Path, cfg.Logging.Path)
}

// =============================================================================
// RENDER TESTS (render.go)
// =============================================================================

func TestTrimNewline(t *testing.T) {
	assert.Equal(t, "abc", TrimNewline("abc\n"))
	assert.Equal(t, "abc", TrimNewline("abc\r\n"))
	assert.Equal(t, "abc\n", TrimNewline("abc\n\n"))
	assert.Equal(t, "abc", TrimNewline("abc"))
	assert.Equal(t, "", TrimNewline("\n"))
}

func TestHandleRender_Text(t *testing.T) {
	stdio, out, _ := bufIO("")
	cfg := config.Default()

	require.NoError(t, HandleRender(cfg, Args{Text: "AB"}, stdio))
	s := out.String()
	assert.Contains(t, s, "input: AB")
	assert.Contains(t, s, "hex     4142")
	assert.Contains(t, s, "leu16   16961")
	assert.Contains(t, s, "leu32   <none>")
}

func TestHandleRender_StdinSmart(t *testing.T) {
	stdio, out, _ := bufIO("0x0100\n")
	cfg := config.Default()
	cfg.Input.DefaultMode = "smart"

	require.NoError(t, HandleRender(cfg, Args{FromStdin: true, Only: "beu16"}, stdio))
	assert.Equal(t, "256\n", out.String())
}

func TestHandleRender_JSON(t *testing.T) {
	stdio, out, _ := bufIO("")
	require.NoError(t, HandleRender(config.Default(), Args{Text: "hi", Format: "json"}, stdio))

	var doc struct {
		Input  string `json:"input"`
		Bytes  string `json:"bytes"`
		Panels []struct {
			Label string `json:"label"`
			Text  string `json:"text"`
		} `json:"panels"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "hi", doc.Input)
	assert.Equal(t, "6869", doc.Bytes)
	require.Len(t, doc.Panels, 16)
	assert.Equal(t, "base64", doc.Panels[0].Label)
	assert.Equal(t, "aGk", doc.Panels[0].Text)
}

func TestHandleRender_UnknownLabel(t *testing.T) {
	stdio, _, _ := bufIO("")
	err := HandleRender(config.Default(), Args{Text: "x", Only: "leu1"}, stdio)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "leu16"`)
}

func TestHandleRender_OutFile(t *testing.T) {
	dir := t.TempDir()
	stdio, out, _ := bufIO("")
	base := filepath.Join(dir, "panels")

	require.NoError(t, HandleRender(config.Default(), Args{Text: "hi", Format: "json", Out: base}, stdio))
	assert.Equal(t, "Wrote "+base+".json\n", out.String())

	data, err := os.ReadFile(base + ".json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, string(data), "6869")
}

func TestHandleRender_OutFileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hex.txt")
	stdio, _, _ := bufIO("")

	require.NoError(t, HandleRender(config.Default(), Args{Text: "AB", Only: "hex", Out: path}, stdio))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "4142")
	assert.NotContains(t, string(data), "base64")

	err = HandleRender(config.Default(), Args{Text: "AB", Only: "hexx", Out: path}, stdio)
	assert.ErrorContains(t, err, `did you mean "hex"`)
}

func TestHandleRender_BadFormat(t *testing.T) {
	stdio, _, _ := bufIO("")
	assert.Error(t, HandleRender(config.Default(), Args{Text: "x", Format: "xml"}, stdio))
}

// =============================================================================
// LIST TESTS (list.go)
// =============================================================================

func TestHandleList(t *testing.T) {
	stdio, out, _ := bufIO("")
	require.NoError(t, HandleList(stdio))
	s := out.String()
	assert.Contains(t, s, " 0 base64")
	assert.Contains(t, s, "15 bei64")
	assert.Contains(t, s, "8 bytes")
	assert.Contains(t, s, "any")
}

// =============================================================================
// REPL TESTS (repl.go)
// =============================================================================

func TestREPL_Eval(t *testing.T) {
	var out bytes.Buffer
	r := NewREPL(session.New(session.Config{Mode: input.Raw}), &out)
	assert.Equal(t, "nvis[raw]> ", r.Prompt())

	quit, err := r.Eval("0x41")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "hex     30783431")

	out.Reset()
	_, err = r.Eval(":mode")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "mode: Smart")
	assert.Contains(t, out.String(), "hex     41")
	assert.Equal(t, "nvis[smart]> ", r.Prompt())

	out.Reset()
	_, err = r.Eval(":only hex")
	require.NoError(t, err)
	assert.Equal(t, "41\n", out.String())

	quit, err = r.Eval(":q")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestREPL_EvalErrors(t *testing.T) {
	var out bytes.Buffer
	r := NewREPL(session.New(session.Config{}), &out)

	_, err := r.Eval(":bogus")
	assert.Error(t, err)
	_, err = r.Eval(":mode hex")
	assert.Error(t, err)
	_, err = r.Eval(":only")
	assert.Error(t, err)
}

func TestREPL_FocusAndCopy(t *testing.T) {
	var out bytes.Buffer
	var copied []string
	sess := session.New(session.Config{Mode: input.Raw})
	r := NewREPL(sess, &out)

	_, err := r.Eval(":copy")
	assert.ErrorIs(t, err, clipboard.ErrUnavailable)

	r.SetSink(clipboard.SinkFunc(func(text string) error {
		copied = append(copied, text)
		return nil
	}))

	_, err = r.Eval("AB")
	require.NoError(t, err)

	out.Reset()
	_, err = r.Eval(":focus HEX")
	require.NoError(t, err)
	assert.Equal(t, "focus: 2 hex\n", out.String())

	out.Reset()
	_, err = r.Eval(":copy")
	require.NoError(t, err)
	assert.Equal(t, "copied hex\n", out.String())
	assert.Equal(t, []string{"4142"}, copied)

	// indexes wrap like the viewer's focus keys
	_, err = r.Eval(":focus -1")
	require.NoError(t, err)
	assert.Equal(t, 15, sess.Focus())

	_, err = r.Eval(":focus hx")
	assert.ErrorContains(t, err, `did you mean "hex"`)
	_, err = r.Eval(":focus")
	assert.Error(t, err)
}

func TestREPL_ColonEscape(t *testing.T) {
	var out bytes.Buffer
	sess := session.New(session.Config{})
	r := NewREPL(sess, &out)

	_, err := r.Eval("::q")
	require.NoError(t, err)
	assert.Equal(t, ":q", sess.Input())
}

// =============================================================================
// CONFIG COMMAND TESTS (config.go)
// =============================================================================

func TestHandleConfig_InitAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "nvis.toml")
	stdio, out, _ := bufIO("")

	require.NoError(t, HandleConfig(nil, Args{Subcommand: "init", ConfigPath: path}, stdio))
	assert.Contains(t, out.String(), "Wrote "+path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	err = HandleConfig(nil, Args{Subcommand: "init", ConfigPath: path}, stdio)
	assert.ErrorIs(t, err, ErrConfigExists)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, HandleConfig(cfg, Args{Subcommand: "get", ConfigKey: "ui.columns"}, stdio))
	assert.Equal(t, "2\n", out.String())

	out.Reset()
	require.NoError(t, HandleConfig(cfg, Args{Subcommand: "get", ConfigKey: "keys.export"}, stdio))
	assert.Equal(t, "ctrl+s\n", out.String())
}

func TestHandleConfig_InitJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvis.json")
	stdio, _, _ := bufIO("")
	require.NoError(t, HandleConfig(nil, Args{Subcommand: "init", ConfigPath: path}, stdio))

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "raw", cfg.Input.DefaultMode)
}

func TestHandleConfig_GetSuggests(t *testing.T) {
	stdio, _, _ := bufIO("")
	err := HandleConfig(config.Default(), Args{Subcommand: "get", ConfigKey: "ui.colums"}, stdio)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ui.columns"`)
}

func TestHandleConfig_ShowAndPath(t *testing.T) {
	stdio, out, _ := bufIO("")
	require.NoError(t, HandleConfig(config.Default(), Args{}, stdio))
	assert.Contains(t, out.String(), "# source: built-in defaults")
	assert.Contains(t, out.String(), "default_mode = \"raw\"")

	out.Reset()
	missing := filepath.Join(t.TempDir(), "none.toml")
	require.NoError(t, HandleConfig(config.Default(), Args{Subcommand: "path", ConfigPath: missing}, stdio))
	assert.Contains(t, out.String(), missing)
	assert.Contains(t, out.String(), "not found")
}

func TestHandleConfig_UnknownSubcommand(t *testing.T) {
	stdio, _, _ := bufIO("")
	assert.Error(t, HandleConfig(config.Default(), Args{Subcommand: "nope"}, stdio))
}

// =============================================================================
// VERSION / HELP
// =============================================================================

func TestHandleVersionAndHelp(t *testing.T) {
	stdio, out, _ := bufIO("")
	HandleVersion(stdio)
	assert.Contains(t, out.String(), "nvis version "+Version)

	out.Reset()
	HandleHelp(stdio)
	assert.Contains(t, out.String(), "nvis render")
	assert.Contains(t, out.String(), "Version: "+Version)
}
