// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
)

// =============================================================================
// TERMINAL PRESENTATION
// =============================================================================

// lexerFor maps a format to a chroma lexer name.
func lexerFor(f Format) string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return ""
	}
}

// Highlight colors code for a 256-color terminal. Formats without a lexer
// are returned unchanged.
func Highlight(code []byte, f Format) (string, error) {
	name := lexerFor(f)
	if name == "" {
		return string(code), nil
	}

	lexer := lexers.Get(name)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(code))
	if err != nil {
		return "", fmt.Errorf("tokenise: %w", err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return buf.String(), nil
}

// RenderMarkdown renders markdown for the terminal, wrapping at width.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Pretty formats snap for an interactive terminal: Markdown is rendered,
// JSON and TOML are highlighted, text is left as-is.
func Pretty(snap *Snapshot, f Format, width int) (string, error) {
	exp, err := New(f)
	if err != nil {
		return "", err
	}
	data, err := exp.Export(snap)
	if err != nil {
		return "", err
	}
	if f == FormatMarkdown {
		return RenderMarkdown(string(data), width)
	}
	return Highlight(data, f)
}
