// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/nvis/internal/util"
)

// CurrentVersion is written into newly saved config files.
const CurrentVersion = "1"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete nvis configuration.
type Config struct {
	Version string `toml:"version" json:"version" yaml:"version"`

	Input     InputConfig     `toml:"input" json:"input" yaml:"input"`
	UI        UIConfig        `toml:"ui" json:"ui" yaml:"ui"`
	Keys      KeysConfig      `toml:"keys" json:"keys" yaml:"keys"`
	Clipboard ClipboardConfig `toml:"clipboard" json:"clipboard" yaml:"clipboard"`
	Logging   LoggingConfig   `toml:"logging" json:"logging" yaml:"logging"`

	// Watch reloads the file while the viewer runs.
	Watch bool `toml:"watch" json:"watch" yaml:"watch"`

	// Source is the file this config was read from, empty for defaults.
	Source string `toml:"-" json:"-" yaml:"-"`
}

// InputConfig controls how typed text is interpreted.
type InputConfig struct {
	// DefaultMode is "raw" or "smart".
	DefaultMode string `toml:"default_mode" json:"default_mode" yaml:"default_mode"`
}

// UIConfig controls the viewer layout.
type UIConfig struct {
	// Theme is "auto", "dark" or "light".
	Theme string `toml:"theme" json:"theme" yaml:"theme"`
	// Columns is the number of panel columns (1-4).
	Columns int `toml:"columns" json:"columns" yaml:"columns"`
	// ShowHelp shows the key help line under the status bar.
	ShowHelp bool `toml:"show_help" json:"show_help" yaml:"show_help"`
	// FocusMarker is appended to the focused panel's title.
	FocusMarker string `toml:"focus_marker" json:"focus_marker" yaml:"focus_marker"`
}

// KeysConfig maps viewer actions to bubbletea key names ("ctrl+s", "down").
type KeysConfig struct {
	FocusNext  []string `toml:"focus_next" json:"focus_next" yaml:"focus_next"`
	FocusPrev  []string `toml:"focus_prev" json:"focus_prev" yaml:"focus_prev"`
	ToggleMode []string `toml:"toggle_mode" json:"toggle_mode" yaml:"toggle_mode"`
	Export     []string `toml:"export" json:"export" yaml:"export"`
	Quit       []string `toml:"quit" json:"quit" yaml:"quit"`
}

// ClipboardConfig selects the export target.
type ClipboardConfig struct {
	// Backend is "auto", "system" or "osc52".
	Backend string `toml:"backend" json:"backend" yaml:"backend"`
	// MaxPerSecond limits exports per second (0 = unlimited).
	MaxPerSecond int `toml:"max_per_second" json:"max_per_second" yaml:"max_per_second"`
}

// LoggingConfig controls the diagnostic log file.
type LoggingConfig struct {
	// Path is the log file; empty disables logging.
	Path string `toml:"path" json:"path" yaml:"path"`
	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level" json:"level" yaml:"level"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Input: InputConfig{
			DefaultMode: "raw",
		},
		UI: UIConfig{
			Theme:       "auto",
			Columns:     2,
			ShowHelp:    true,
			FocusMarker: " (F)",
		},
		Keys: DefaultKeys(),
		Clipboard: ClipboardConfig{
			Backend:      "auto",
			MaxPerSecond: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Watch: true,
	}
}

// DefaultKeys returns the built-in key bindings.
func DefaultKeys() KeysConfig {
	return KeysConfig{
		FocusNext:  []string{"down", "tab"},
		FocusPrev:  []string{"up", "shift+tab"},
		ToggleMode: []string{"ctrl+t"},
		Export:     []string{"ctrl+s"},
		Quit:       []string{"ctrl+q", "ctrl+c"},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the nvis configuration directory (~/.nvis).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".nvis"), nil
}

// ConfigPaths returns the candidate config files in precedence order.
func ConfigPaths() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.json"),
		filepath.Join(dir, "config.yaml"),
	}, nil
}

// ConfigPathTOML returns the default TOML config path.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load finds the first existing config file and loads it. When none exists
// the defaults are returned, after environment overrides.
func Load() (*Config, error) {
	paths, err := ConfigPaths()
	if err == nil {
		for _, p := range paths {
			if _, statErr := os.Stat(p); statErr == nil {
				return LoadFromPath(p)
			}
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads a config file, choosing the format by extension.
// Unset fields keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext (".toml", ".json",
// ".yaml"/".yml") on top of the defaults. It does not apply environment
// overrides or validation.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json":
		if err := validateJSONSchema(data); err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	return cfg, nil
}

// fillKeys restores default bindings for actions left empty.
func (k *KeysConfig) fillKeys() {
	d := DefaultKeys()
	if len(k.FocusNext) == 0 {
		k.FocusNext = d.FocusNext
	}
	if len(k.FocusPrev) == 0 {
		k.FocusPrev = d.FocusPrev
	}
	if len(k.ToggleMode) == 0 {
		k.ToggleMode = d.ToggleMode
	}
	if len(k.Export) == 0 {
		k.Export = d.Export
	}
	if len(k.Quit) == 0 {
		k.Quit = d.Quit
	}
}

// SetDefaults fills zero-valued fields with defaults and normalizes case.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.Input.DefaultMode == "" {
		c.Input.DefaultMode = d.Input.DefaultMode
	}
	c.Input.DefaultMode = strings.ToLower(c.Input.DefaultMode)
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	if c.UI.Columns == 0 {
		c.UI.Columns = d.UI.Columns
	}
	if c.Clipboard.Backend == "" {
		c.Clipboard.Backend = d.Clipboard.Backend
	}
	c.Clipboard.Backend = strings.ToLower(c.Clipboard.Backend)
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Keys.fillKeys()
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to the default TOML path.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg as TOML with owner-only permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# nvis configuration file\n")
	buf.WriteString("# Key names follow bubbletea: \"ctrl+s\", \"shift+tab\", \"down\".\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// SaveJSON writes cfg as indented JSON with owner-only permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, append(data, '\n'), 0600)
}

// SaveYAML writes cfg as YAML with owner-only permissions.
func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, data, 0600)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and returns all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validModes := map[string]bool{"raw": true, "smart": true}
	if !validModes[strings.ToLower(c.Input.DefaultMode)] {
		errs = append(errs, ValidationError{
			Field:   "input.default_mode",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: raw, smart", c.Input.DefaultMode),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.UI.Columns < 1 || c.UI.Columns > 4 {
		errs = append(errs, ValidationError{
			Field:   "ui.columns",
			Message: fmt.Sprintf("columns must be 1-4, got %d", c.UI.Columns),
		})
	}

	validBackends := map[string]bool{"auto": true, "system": true, "osc52": true}
	if !validBackends[strings.ToLower(c.Clipboard.Backend)] {
		errs = append(errs, ValidationError{
			Field:   "clipboard.backend",
			Message: fmt.Sprintf("invalid backend '%s', must be one of: auto, system, osc52", c.Clipboard.Backend),
		})
	}

	if c.Clipboard.MaxPerSecond < 0 || c.Clipboard.MaxPerSecond > 100 {
		errs = append(errs, ValidationError{
			Field:   "clipboard.max_per_second",
			Message: fmt.Sprintf("max_per_second must be 0-100, got %d", c.Clipboard.MaxPerSecond),
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	errs = append(errs, c.Keys.validate()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validate rejects empty bindings and keys bound to more than one action.
func (k KeysConfig) validate() ValidateErrors {
	var errs ValidateErrors
	owner := make(map[string]string)

	actions := []struct {
		field string
		keys  []string
	}{
		{"keys.focus_next", k.FocusNext},
		{"keys.focus_prev", k.FocusPrev},
		{"keys.toggle_mode", k.ToggleMode},
		{"keys.export", k.Export},
		{"keys.quit", k.Quit},
	}
	for _, a := range actions {
		if len(a.keys) == 0 {
			errs = append(errs, ValidationError{Field: a.field, Message: "at least one key is required"})
			continue
		}
		for _, key := range a.keys {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				errs = append(errs, ValidationError{Field: a.field, Message: "empty key name"})
				continue
			}
			if prev, ok := owner[key]; ok && prev != a.field {
				errs = append(errs, ValidationError{
					Field:   a.field,
					Message: fmt.Sprintf("key '%s' is already bound by %s", key, prev),
				})
				continue
			}
			owner[key] = a.field
		}
	}
	return errs
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies NVIS_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	// NVIS_MODE
	if mode := os.Getenv("NVIS_MODE"); mode != "" {
		c.Input.DefaultMode = mode
	}

	// NVIS_THEME
	if theme := os.Getenv("NVIS_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	// NVIS_COLUMNS (ignored unless numeric)
	if cols := os.Getenv("NVIS_COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil {
			c.UI.Columns = n
		}
	}

	// NVIS_CLIPBOARD
	if backend := os.Getenv("NVIS_CLIPBOARD"); backend != "" {
		c.Clipboard.Backend = backend
	}

	// NVIS_LOG / NVIS_LOG_LEVEL
	if path := os.Getenv("NVIS_LOG"); path != "" {
		c.Logging.Path = path
	}
	if level := os.Getenv("NVIS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// =============================================================================
// DOT-NOTATION ACCESS
// =============================================================================

// Get returns the value at a dotted key such as "ui.columns".
func (c *Config) Get(key string) (interface{}, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() || fieldName == "Source" {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field.Interface(), nil
		}
		if field.Kind() != reflect.Struct {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName turns "default_mode" into "DefaultMode".
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		result.WriteString(strings.ToUpper(part[:1]))
		result.WriteString(strings.ToLower(part[1:]))
	}
	return result.String()
}

// GetAllKeys lists every dotted key accepted by Get, sorted.
func GetAllKeys() []string {
	var keys []string
	walkKeys(reflect.TypeOf(Config{}), "", &keys)
	sort.Strings(keys)
	return keys
}

func walkKeys(t reflect.Type, prefix string, keys *[]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := strings.Split(f.Tag.Get("toml"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}
		name := prefix + tag
		if f.Type.Kind() == reflect.Struct {
			walkKeys(f.Type, name+".", keys)
			continue
		}
		*keys = append(*keys, name)
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Keys = KeysConfig{
		FocusNext:  append([]string(nil), c.Keys.FocusNext...),
		FocusPrev:  append([]string(nil), c.Keys.FocusPrev...),
		ToggleMode: append([]string(nil), c.Keys.ToggleMode...),
		Export:     append([]string(nil), c.Keys.Export...),
		Quit:       append([]string(nil), c.Keys.Quit...),
	}
	return &out
}

// String renders c as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config encode error: %v>", err)
	}
	return buf.String()
}
