// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrDuplicateLabel is returned when two transformers share a label.
var ErrDuplicateLabel = errors.New("duplicate transformer label")

// ErrUnknownKind is returned for a kind outside the closed set.
var ErrUnknownKind = errors.New("unknown transformer kind")

// Panel is the rendered output of one transformer.
type Panel struct {
	Label string `json:"label" toml:"label"`
	Text  string `json:"text" toml:"text"`
}

// Registry is an ordered, label-unique set of transformers.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	kinds []Kind
	index map[string]int
}

// defaultRegistry is built at program initialization.
var defaultRegistry = MustNewRegistry(AllKinds()...)

// Default returns the registry of all sixteen transformers in display order.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from kinds, preserving their order.
// Duplicate labels are rejected before any rendering can happen.
func NewRegistry(kinds ...Kind) (*Registry, error) {
	r := &Registry{
		kinds: make([]Kind, 0, len(kinds)),
		index: make(map[string]int, len(kinds)),
	}
	for _, k := range kinds {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
		}
		label := k.Label()
		if _, dup := r.index[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		r.index[label] = len(r.kinds)
		r.kinds = append(r.kinds, k)
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(kinds ...Kind) *Registry {
	r, err := NewRegistry(kinds...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of transformers.
func (r *Registry) Len() int {
	return len(r.kinds)
}

// At returns the kind at position i.
func (r *Registry) At(i int) Kind {
	return r.kinds[i]
}

// Kinds returns a copy of the kinds in order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Labels returns the labels in order.
func (r *Registry) Labels() []string {
	labels := make([]string, len(r.kinds))
	for i, k := range r.kinds {
		labels[i] = k.Label()
	}
	return labels
}

// Lookup finds a transformer by label.
func (r *Registry) Lookup(label string) (Kind, bool) {
	i, ok := r.index[label]
	if !ok {
		return 0, false
	}
	return r.kinds[i], true
}

// Index returns the position of label in display order.
func (r *Registry) Index(label string) (int, bool) {
	i, ok := r.index[label]
	return i, ok
}

// Render invokes every transformer once, in order, against buf.
func (r *Registry) Render(buf []byte) []Panel {
	panels := make([]Panel, len(r.kinds))
	for i, k := range r.kinds {
		panels[i] = Panel{Label: k.Label(), Text: k.Transform(buf)}
	}
	return panels
}

// Placeholders returns the panels shown before any input has been entered.
func (r *Registry) Placeholders() []Panel {
	return r.Render(nil)
}

// maxSuggestDistance bounds how different a label may be and still be offered.
const maxSuggestDistance = 3

// Suggest returns the known label closest to label, or "" when nothing is
// reasonably close.
func (r *Registry) Suggest(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, k := range r.kinds {
		d := levenshtein.ComputeDistance(label, k.Label())
		if d < bestDist {
			best, bestDist = k.Label(), d
		}
	}
	return best
}
