// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/nvis/internal/session"
	"github.com/jeranaias/nvis/internal/transform"
	"github.com/jeranaias/nvis/internal/util"
)

// ErrNilSnapshot is returned when an exporter is given no snapshot.
var ErrNilSnapshot = errors.New("snapshot is nil")

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter converts a snapshot to one output format.
type Exporter interface {
	// Export returns the formatted snapshot.
	Export(snap *Snapshot) ([]byte, error)

	// FileExtension returns the file extension, including the dot.
	FileExtension() string

	// MimeType returns the MIME type of the output.
	MimeType() string
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is everything a session shows at one moment.
type Snapshot struct {
	Input  string            `json:"input" toml:"input"`
	Mode   string            `json:"mode" toml:"mode"`
	Bytes  []byte            `json:"-" toml:"-"`
	Panels []transform.Panel `json:"panels" toml:"panels"`
}

// FromSession captures the current state of s.
func FromSession(s *session.Session) *Snapshot {
	return &Snapshot{
		Input:  s.Input(),
		Mode:   s.Mode().String(),
		Bytes:  s.Bytes(),
		Panels: s.Panels(),
	}
}

// Only returns a copy of snap restricted to the panel with label.
func (s *Snapshot) Only(label string) (*Snapshot, bool) {
	for _, p := range s.Panels {
		if p.Label == label {
			out := *s
			out.Panels = []transform.Panel{p}
			return &out, true
		}
	}
	return nil, false
}

// =============================================================================
// FORMATS
// =============================================================================

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatTOML     Format = "toml"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatMarkdown, FormatTOML}
}

// ParseFormat parses a format name; "md" and "txt" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown format %q, must be one of: text, json, markdown, toml", s)
	}
}

// New returns the exporter for f.
func New(f Format) (Exporter, error) {
	switch f {
	case FormatText:
		return &TextExporter{Header: true}, nil
	case FormatJSON:
		return &JSONExporter{}, nil
	case FormatMarkdown:
		return &MarkdownExporter{}, nil
	case FormatTOML:
		return &TOMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// Write formats snap with f and writes it to w.
func Write(w io.Writer, snap *Snapshot, f Format) error {
	exp, err := New(f)
	if err != nil {
		return err
	}
	data, err := exp.Export(snap)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportToFile writes snap to path atomically. An empty extension on path
// is filled in from the exporter.
func ExportToFile(snap *Snapshot, exp Exporter, path string) (string, error) {
	data, err := exp.Export(snap)
	if err != nil {
		return "", err
	}
	if !strings.Contains(lastElem(path), ".") {
		path += exp.FileExtension()
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

func lastElem(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// labelWidth returns the widest label in panels.
func labelWidth(panels []transform.Panel) int {
	w := 0
	for _, p := range panels {
		if lw := util.StringWidth(p.Label); lw > w {
			w = lw
		}
	}
	return w
}
