// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from NVIS_* variables set in the caller's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NVIS_MODE", "NVIS_THEME", "NVIS_COLUMNS", "NVIS_CLIPBOARD", "NVIS_LOG", "NVIS_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// =============================================================================
// DEFAULT TESTS
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "raw", cfg.Input.DefaultMode)
	assert.Equal(t, 2, cfg.UI.Columns)
	assert.Equal(t, " (F)", cfg.UI.FocusMarker)
	assert.Equal(t, []string{"ctrl+s"}, cfg.Keys.Export)
	assert.Equal(t, []string{"ctrl+t"}, cfg.Keys.ToggleMode)
	assert.True(t, cfg.Watch)
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoadFromPath_TOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.toml", `
[input]
default_mode = "Smart"

[ui]
columns = 3

[keys]
export = ["ctrl+y"]
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "smart", cfg.Input.DefaultMode)
	assert.Equal(t, 3, cfg.UI.Columns)
	assert.Equal(t, []string{"ctrl+y"}, cfg.Keys.Export)
	assert.Equal(t, []string{"ctrl+t"}, cfg.Keys.ToggleMode, "unset keys keep defaults")
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowHelp)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadFromPath_JSON(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.json", `{
  "ui": {"theme": "dark", "show_help": false},
  "clipboard": {"backend": "osc52", "max_per_second": 0}
}`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.False(t, cfg.UI.ShowHelp)
	assert.Equal(t, "osc52", cfg.Clipboard.Backend)
	assert.Equal(t, 0, cfg.Clipboard.MaxPerSecond)
}

func TestLoadFromPath_JSONSchemaRejects(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := map[string]string{
		"unknown field": `{"ui": {"colour": "red"}}`,
		"bad enum":      `{"clipboard": {"backend": "fax"}}`,
		"wrong type":    `{"ui": {"columns": "two"}}`,
		"out of range":  `{"ui": {"columns": 9}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, "config.json", body)
			_, err := LoadFromPath(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestLoadFromPath_YAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.yaml", `
input:
  default_mode: smart
keys:
  focus_next: ["j"]
  focus_prev: ["k"]
logging:
  level: debug
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "smart", cfg.Input.DefaultMode)
	assert.Equal(t, []string{"j"}, cfg.Keys.FocusNext)
	assert.Equal(t, []string{"k"}, cfg.Keys.FocusPrev)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromPath_EmptyYAMLIsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.yml", "")
	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.UI.Columns)
}

func TestLoadFromPath_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = LoadFromPath(writeFile(t, dir, "config.ini", "x=1"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = LoadFromPath(writeFile(t, dir, "bad.toml", "[ui\ncolumns = "))
	assert.ErrorContains(t, err, "decode TOML")

	_, err = LoadFromPath(writeFile(t, dir, "invalid.toml", "[ui]\ntheme = \"neon\"\n"))
	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "ui.theme", verrs[0].Field)
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Source)
	assert.Equal(t, "raw", cfg.Input.DefaultMode)
}

func TestLoad_PrefersTOML(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	dir := filepath.Join(home, ".nvis")
	require.NoError(t, os.MkdirAll(dir, 0700))
	writeFile(t, dir, "config.json", `{"ui": {"columns": 1}}`)
	writeFile(t, dir, "config.toml", "[ui]\ncolumns = 4\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.UI.Columns)
	assert.Equal(t, filepath.Join(dir, "config.toml"), cfg.Source)
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"mode", func(c *Config) { c.Input.DefaultMode = "clever" }, "input.default_mode"},
		{"theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"columns low", func(c *Config) { c.UI.Columns = 0 }, "ui.columns"},
		{"columns high", func(c *Config) { c.UI.Columns = 5 }, "ui.columns"},
		{"backend", func(c *Config) { c.Clipboard.Backend = "fax" }, "clipboard.backend"},
		{"rate", func(c *Config) { c.Clipboard.MaxPerSecond = -1 }, "clipboard.max_per_second"},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"empty keys", func(c *Config) { c.Keys.Quit = nil }, "keys.quit"},
		{"blank key", func(c *Config) { c.Keys.Export = []string{" "} }, "keys.export"},
		{"conflict", func(c *Config) { c.Keys.Export = []string{"ctrl+t"} }, "keys.export"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestValidateErrors_Error(t *testing.T) {
	errs := ValidateErrors{
		{Field: "ui.theme", Message: "bad"},
		{Field: "ui.columns", Message: "worse"},
	}
	assert.Equal(t, "ui.theme: bad; ui.columns: worse", errs.Error())
	assert.Equal(t, "no validation errors", ValidateErrors{}.Error())
}

// =============================================================================
// ENVIRONMENT TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NVIS_MODE", "smart")
	t.Setenv("NVIS_THEME", "light")
	t.Setenv("NVIS_COLUMNS", "1")
	t.Setenv("NVIS_CLIPBOARD", "osc52")
	t.Setenv("NVIS_LOG", "/tmp/nvis.log")
	t.Setenv("NVIS_LOG_LEVEL", "warn")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "smart", cfg.Input.DefaultMode)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, 1, cfg.UI.Columns)
	assert.Equal(t, "osc52", cfg.Clipboard.Backend)
	assert.Equal(t, "/tmp/nvis.log", cfg.Logging.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestApplyEnvOverrides_IgnoresNonNumericColumns(t *testing.T) {
	clearEnv(t)
	t.Setenv("NVIS_COLUMNS", "many")
	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 2, cfg.UI.Columns)
}

// =============================================================================
// SAVE TESTS
// =============================================================================

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg := Default()
	cfg.Input.DefaultMode = "smart"
	cfg.UI.Columns = 4
	cfg.Keys.Export = []string{"ctrl+e"}

	savers := map[string]func(*Config, string) error{
		"config.toml": SaveTOML,
		"config.json": SaveJSON,
		"config.yaml": SaveYAML,
	}
	for name, save := range savers {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, save(cfg, path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			got, err := LoadFromPath(path)
			require.NoError(t, err)
			assert.Equal(t, "smart", got.Input.DefaultMode)
			assert.Equal(t, 4, got.UI.Columns)
			assert.Equal(t, []string{"ctrl+e"}, got.Keys.Export)
		})
	}
}

// =============================================================================
// DOT-NOTATION TESTS
// =============================================================================

func TestGet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("ui.columns")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = cfg.Get("input.default_mode")
	require.NoError(t, err)
	assert.Equal(t, "raw", v)

	v, err = cfg.Get("keys.quit")
	require.NoError(t, err)
	assert.Equal(t, []string{"ctrl+q", "ctrl+c"}, v)

	_, err = cfg.Get("ui.nope")
	assert.ErrorContains(t, err, "unknown field")

	_, err = cfg.Get("watch.deeper")
	assert.ErrorContains(t, err, "not a struct")

	_, err = cfg.Get("source")
	assert.Error(t, err)

	_, err = cfg.Get("")
	assert.Error(t, err)
}

func TestGetAllKeys(t *testing.T) {
	keys := GetAllKeys()
	assert.Contains(t, keys, "input.default_mode")
	assert.Contains(t, keys, "keys.toggle_mode")
	assert.Contains(t, keys, "watch")
	assert.NotContains(t, keys, "source")

	for _, k := range keys {
		_, err := Default().Get(k)
		assert.NoError(t, err, k)
	}
}

func TestClone_IsDeep(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.Keys.Export[0] = "ctrl+x"
	clone.UI.Columns = 1

	assert.Equal(t, "ctrl+s", cfg.Keys.Export[0])
	assert.Equal(t, 2, cfg.UI.Columns)
}

func TestSchemaCompiles(t *testing.T) {
	s, err := Schema()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.NotEmpty(t, SchemaJSON())
}
