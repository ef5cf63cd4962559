// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		severity string
		want     string // dark variant
	}{
		{"critical", Rose.Dark},
		{"high", Amber.Dark},
		{"medium", Cyan.Dark},
		{"low", Emerald.Dark},
		{"bogus", TextMuted.Dark},
		{"", TextMuted.Dark},
	}

	for _, tt := range tests {
		got := SeverityColor(tt.severity)
		if got.Dark != tt.want {
			t.Errorf("SeverityColor(%q).Dark = %q, want %q", tt.severity, got.Dark, tt.want)
		}
	}
}

func TestSeverityBadgeText(t *testing.T) {
	tests := []struct {
		severity string
		label    string
	}{
		{"critical", "CRITICAL"},
		{"high", "HIGH"},
		{"medium", "MEDIUM"},
		{"low", "LOW"},
		{"garbage", "UNKNOWN"},
	}

	for _, tt := range tests {
		badge := SeverityBadge(tt.severity)
		if !strings.Contains(badge, tt.label) {
			t.Errorf("SeverityBadge(%q) = %q, want it to contain %q", tt.severity, badge, tt.label)
		}
	}
}

func TestStatusIndicatorsAreASCII(t *testing.T) {
	indicators := []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
		StatusIndicators.Pending,
	}

	for _, ind := range indicators {
		if ind == "" {
			t.Error("status indicator is empty")
		}
		for _, r := range ind {
			if r > 127 {
				t.Errorf("status indicator %q contains non-ASCII rune %q", ind, r)
			}
		}
	}
}

func TestRenderHelpersIncludeIndicator(t *testing.T) {
	if !strings.Contains(RenderSuccess("done"), StatusIndicators.Success) {
		t.Error("RenderSuccess missing success indicator")
	}
	if !strings.Contains(RenderError("boom"), StatusIndicators.Error) {
		t.Error("RenderError missing error indicator")
	}
	if !strings.Contains(RenderWarning("careful"), StatusIndicators.Warning) {
		t.Error("RenderWarning missing warning indicator")
	}
	if !strings.Contains(RenderInfo("fyi"), StatusIndicators.Info) {
		t.Error("RenderInfo missing info indicator")
	}
}

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize: got %dx%d, want 120x40", theme.Width, theme.Height)
	}
}
