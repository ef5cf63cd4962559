// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.API.TimeoutSecs != 30 {
		t.Errorf("default timeout = %d, want 30", cfg.API.TimeoutSecs)
	}
}

func TestLoadFromPathTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
version = "1.0.0"

[api]
base_url = "https://recodex.example.com"
timeout_secs = 10

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.API.BaseURL != "https://recodex.example.com" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSecs != 10 {
		t.Errorf("timeout_secs = %d", cfg.API.TimeoutSecs)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q", cfg.UI.Theme)
	}
	// Unset fields get defaults.
	if cfg.Editor.DefaultLanguage != "python" {
		t.Errorf("default_language = %q, want python default", cfg.Editor.DefaultLanguage)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative url", func(c *Config) { c.API.BaseURL = "not-a-url" }},
		{"zero timeout", func(c *Config) { c.API.TimeoutSecs = 0 }},
		{"huge timeout", func(c *Config) { c.API.TimeoutSecs = 10000 }},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }},
		{"bad tab width", func(c *Config) { c.Editor.TabWidth = 99 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RECODEX_API_URL", "https://env.example.com")
	t.Setenv("RECODEX_TIMEOUT_SECS", "5")
	t.Setenv("RECODEX_THEME", "light")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSecs != 5 {
		t.Errorf("timeout_secs = %d", cfg.API.TimeoutSecs)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q", cfg.UI.Theme)
	}
}

func TestEnvOverrideIgnoresMalformed(t *testing.T) {
	t.Setenv("RECODEX_TIMEOUT_SECS", "banana")
	cfg := Default()
	cfg.ApplyEnvOverrides()
	if cfg.API.TimeoutSecs != 30 {
		t.Errorf("malformed timeout override should be ignored, got %d", cfg.API.TimeoutSecs)
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	cfg := Default()
	if err := cfg.Set("api.timeout_secs", "15"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := cfg.Get("api.timeout_secs")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "15" {
		t.Errorf("Get = %q, want 15", got)
	}
}

func TestSetRevertsOnInvalid(t *testing.T) {
	cfg := Default()
	if err := cfg.Set("ui.theme", "solarized"); err == nil {
		t.Fatal("expected error for invalid theme")
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("failed Set must not stick, theme = %q", cfg.UI.Theme)
	}
}

func TestSetUnknownKey(t *testing.T) {
	cfg := Default()
	if err := cfg.Set("nope.nope", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := cfg.Get("nope.nope"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestGlobalConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()
	SetGlobal(Default())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = Global().API.BaseURL
		}()
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
	}
	wg.Wait()
}
