// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := AtomicWriteFile(path, []byte("[ui]\n"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "[ui]\n" {
		t.Errorf("content = %q, want %q", got, "[ui]\n")
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c.json")
	require.NoError(t, AtomicWriteFile(path, []byte("{}"), 0644))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestAtomicWriteFile_OverwritesWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, AtomicWriteFile(path, []byte("old"), 0600))
	require.NoError(t, AtomicWriteFile(path, []byte("new"), 0600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// =============================================================================
// WIDTH TESTS
// =============================================================================

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 5, StringWidth("hello"))
	assert.Equal(t, 4, StringWidth("日本"))
	assert.Equal(t, 0, StringWidth(""))
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hel..."},
		{"日本語", 4, "..."},
		{"日本語", 5, "日..."},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TruncateWidth(tt.in, tt.width), "%q/%d", tt.in, tt.width)
	}
}

func TestPadWidth(t *testing.T) {
	assert.Equal(t, "ab   ", PadWidth("ab", 5))
	assert.Equal(t, "ab...", PadWidth("abcdefgh", 5))
	assert.Equal(t, "日 ", PadWidth("日", 3))
	assert.Equal(t, "", PadWidth("x", 0))
}

func TestWrapWidth(t *testing.T) {
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, WrapWidth("abcdefghij", 4))
	assert.Equal(t, []string{"ab", "", "c"}, WrapWidth("ab\n\nc", 4))
	assert.Equal(t, []string{"日本", "語"}, WrapWidth("日本語", 5))
	assert.Equal(t, []string{"<none>"}, WrapWidth("<none>", 20))
	assert.Nil(t, WrapWidth("x", 0))
}
