// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/nvis/internal/util"
)

// =============================================================================
// TEXT EXPORTER
// =============================================================================

// TextExporter writes one aligned line per panel.
type TextExporter struct {
	// Header adds input, mode and byte lines above the panels.
	Header bool
}

// Export converts a snapshot to plain text.
func (e *TextExporter) Export(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}

	var buf bytes.Buffer
	if e.Header {
		fmt.Fprintf(&buf, "input: %s\n", snap.Input)
		fmt.Fprintf(&buf, "mode:  %s\n", snap.Mode)
		fmt.Fprintf(&buf, "bytes: %s (%d)\n\n", hex.EncodeToString(snap.Bytes), len(snap.Bytes))
	}

	width := labelWidth(snap.Panels)
	for _, p := range snap.Panels {
		buf.WriteString(util.PadWidth(p.Label, width))
		buf.WriteString("  ")
		buf.WriteString(p.Text)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for text.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// MimeType returns the MIME type for text.
func (e *TextExporter) MimeType() string {
	return "text/plain"
}

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter writes an indented JSON document.
type JSONExporter struct{}

type jsonSnapshot struct {
	*Snapshot
	Hex    string `json:"bytes"`
	Length int    `json:"length"`
}

// Export converts a snapshot to JSON. Bytes are hex encoded.
func (e *JSONExporter) Export(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	data, err := json.MarshalIndent(jsonSnapshot{
		Snapshot: snap,
		Hex:      hex.EncodeToString(snap.Bytes),
		Length:   len(snap.Bytes),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter writes a heading and a two-column table.
type MarkdownExporter struct{}

// Export converts a snapshot to Markdown.
func (e *MarkdownExporter) Export(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}

	var buf bytes.Buffer
	buf.WriteString("# nvis\n\n")
	fmt.Fprintf(&buf, "- **Input:** %s\n", codeSpan(snap.Input))
	fmt.Fprintf(&buf, "- **Mode:** %s\n", snap.Mode)
	fmt.Fprintf(&buf, "- **Bytes:** %d\n\n", len(snap.Bytes))

	buf.WriteString("| Transformer | Output |\n")
	buf.WriteString("|---|---|\n")
	for _, p := range snap.Panels {
		fmt.Fprintf(&buf, "| %s | %s |\n", p.Label, codeSpan(p.Text))
	}
	return buf.Bytes(), nil
}

// codeSpan wraps s in a code span that survives table cells.
func codeSpan(s string) string {
	if s == "" {
		return "` `"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// =============================================================================
// TOML EXPORTER
// =============================================================================

// TOMLExporter writes the snapshot as a TOML document.
type TOMLExporter struct{}

type tomlSnapshot struct {
	Input  string      `toml:"input"`
	Mode   string      `toml:"mode"`
	Bytes  string      `toml:"bytes"`
	Panels []tomlPanel `toml:"panel"`
}

type tomlPanel struct {
	Label string `toml:"label"`
	Text  string `toml:"text"`
}

// Export converts a snapshot to TOML.
func (e *TOMLExporter) Export(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	doc := tomlSnapshot{
		Input: snap.Input,
		Mode:  snap.Mode,
		Bytes: hex.EncodeToString(snap.Bytes),
	}
	for _, p := range snap.Panels {
		doc.Panels = append(doc.Panels, tomlPanel{Label: p.Label, Text: p.Text})
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for TOML.
func (e *TOMLExporter) FileExtension() string {
	return ".toml"
}

// MimeType returns the MIME type for TOML.
func (e *TOMLExporter) MimeType() string {
	return "application/toml"
}
