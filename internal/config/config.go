// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management
// for the recodex client.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.recodex/config.toml
//   - ~/.recodex/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/recodex/recodex-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete recodex client configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// API holds backend connection settings.
	API APIConfig `toml:"api" json:"api"`

	// Editor holds code-input defaults.
	Editor EditorConfig `toml:"editor" json:"editor"`

	// History holds local history-cache settings.
	History HistoryConfig `toml:"history" json:"history"`

	// UI holds terminal UI settings.
	UI UIConfig `toml:"ui" json:"ui"`
}

// APIConfig contains backend connection configuration.
type APIConfig struct {
	// BaseURL is the origin of the ReCodeX backend.
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs bounds each request. The backend enforces no timeout
	// of its own; this keeps busy indicators from hanging forever.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// EditorConfig contains code editor defaults.
type EditorConfig struct {
	// DefaultLanguage is preselected in the language picker.
	DefaultLanguage string `toml:"default_language" json:"default_language"`
	// TabWidth is the number of spaces a tab inserts in the editor.
	TabWidth int `toml:"tab_width" json:"tab_width"`
}

// HistoryConfig contains local history-cache configuration. The cache
// only mirrors what the server returned; the server stays the owner.
type HistoryConfig struct {
	// CacheEnabled controls the offline sqlite mirror of fetched history.
	CacheEnabled bool `toml:"cache_enabled" json:"cache_enabled"`
	// CachePath overrides the database location (empty = ~/.recodex/history.db).
	CachePath string `toml:"cache_path" json:"cache_path"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark" or "light".
	Theme string `toml:"theme" json:"theme"`
	// CompactMode collapses summary cards to a single line.
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		API: APIConfig{
			BaseURL:     "http://127.0.0.1:8000",
			TimeoutSecs: 30,
		},
		Editor: EditorConfig{
			DefaultLanguage: "python",
			TabWidth:        4,
		},
		History: HistoryConfig{
			CacheEnabled: true,
		},
		UI: UIConfig{
			Theme:       "dark",
			CompactMode: false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the recodex configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".recodex"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Used by the --config flag.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, err
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	}
	return finish(cfg)
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaults.API.BaseURL
	}
	if cfg.API.TimeoutSecs == 0 {
		cfg.API.TimeoutSecs = defaults.API.TimeoutSecs
	}
	if cfg.Editor.DefaultLanguage == "" {
		cfg.Editor.DefaultLanguage = defaults.Editor.DefaultLanguage
	}
	if cfg.Editor.TabWidth == 0 {
		cfg.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies RECODEX_* environment variables on top of
// the loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("RECODEX_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("RECODEX_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.API.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("RECODEX_LANGUAGE"); v != "" {
		c.Editor.DefaultLanguage = v
	}
	if v := os.Getenv("RECODEX_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("RECODEX_HISTORY_CACHE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History.CacheEnabled = b
		}
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// SECURITY: Creates config files with 0600 permissions (owner read/write only).
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# recodex configuration file")
	fmt.Fprintln(file, "# Generated by recodex - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
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
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("must be an absolute URL, got %q", c.API.BaseURL),
		})
	}
	if c.API.TimeoutSecs < 1 || c.API.TimeoutSecs > 600 {
		errs = append(errs, ValidationError{
			Field:   "api.timeout_secs",
			Message: fmt.Sprintf("must be between 1 and 600, got %d", c.API.TimeoutSecs),
		})
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be \"dark\" or \"light\", got %q", c.UI.Theme),
		})
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 8 {
		errs = append(errs, ValidationError{
			Field:   "editor.tab_width",
			Message: fmt.Sprintf("must be between 1 and 8, got %d", c.Editor.TabWidth),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// KEY ACCESS (recodex config get/set)
// =============================================================================

// Get returns the string form of a dotted config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.base_url":
		return c.API.BaseURL, nil
	case "api.timeout_secs":
		return strconv.Itoa(c.API.TimeoutSecs), nil
	case "editor.default_language":
		return c.Editor.DefaultLanguage, nil
	case "editor.tab_width":
		return strconv.Itoa(c.Editor.TabWidth), nil
	case "history.cache_enabled":
		return strconv.FormatBool(c.History.CacheEnabled), nil
	case "history.cache_path":
		return c.History.CachePath, nil
	case "ui.theme":
		return c.UI.Theme, nil
	case "ui.compact_mode":
		return strconv.FormatBool(c.UI.CompactMode), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set assigns a dotted config key from its string form. The new value
// is validated before it sticks.
func (c *Config) Set(key, value string) error {
	saved := *c
	switch key {
	case "api.base_url":
		c.API.BaseURL = value
	case "api.timeout_secs":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: not an integer: %q", key, value)
		}
		c.API.TimeoutSecs = secs
	case "editor.default_language":
		c.Editor.DefaultLanguage = value
	case "editor.tab_width":
		w, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: not an integer: %q", key, value)
		}
		c.Editor.TabWidth = w
	case "history.cache_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: not a boolean: %q", key, value)
		}
		c.History.CacheEnabled = b
	case "history.cache_path":
		c.History.CachePath = value
	case "ui.theme":
		c.UI.Theme = value
	case "ui.compact_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: not a boolean: %q", key, value)
		}
		c.UI.CompactMode = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	if err := c.Validate(); err != nil {
		*c = saved
		return err
	}
	return nil
}

// Keys lists the dotted keys Get and Set understand.
func Keys() []string {
	return []string{
		"api.base_url",
		"api.timeout_secs",
		"editor.default_language",
		"editor.tab_width",
		"history.cache_enabled",
		"history.cache_path",
		"ui.theme",
		"ui.compact_mode",
	}
}
