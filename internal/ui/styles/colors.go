// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the recodex TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Primary accent, brand color, active tab
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// PurpleDeep - Darker purple for backgrounds
var PurpleDeep = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#4C1D95"}

// Cyan - Info, user side of the chat, medium-severity findings
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// CyanDeep - Darker cyan for backgrounds
var CyanDeep = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#164E63"}

// Emerald - Success states, improvements, low-severity findings
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// EmeraldDeep - Darker emerald for backgrounds
var EmeraldDeep = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#064E3B"}

// Rose - Errors, critical findings
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// RoseDeep - Darker rose for backgrounds
var RoseDeep = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#881337"}

// Amber - Warnings, high-severity findings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// AmberDeep - Darker amber for backgrounds
var AmberDeep = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#78350F"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Dimmed background for cards and toasts
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F4F4F5", Dark: "#181825"}

// SurfaceBright - Raised background for selected elements
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#313244"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E4E4E7", Dark: "#45475A"}

// OverlayDim - Subtle borders
var OverlayDim = lipgloss.AdaptiveColor{Light: "#D4D4D8", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main text color
var TextPrimary = lipgloss.AdaptiveColor{Light: "#18181B", Dark: "#CDD6F4"}

// TextSecondary - Secondary text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#3F3F46", Dark: "#BAC2DE"}

// TextMuted - Hints, timestamps, line numbers
var TextMuted = lipgloss.AdaptiveColor{Light: "#71717A", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#1E1E2E"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicators pairs each status with an ASCII shape so state is never
// communicated by color alone.
var StatusIndicators = struct {
	Success string
	Error   string
	Warning string
	Info    string
	Pending string
}{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Pending: "[~]",
}

// RenderSuccess renders text in the success style with its indicator.
func RenderSuccess(text string) string {
	return lipgloss.NewStyle().Foreground(Emerald).Bold(true).
		Render(StatusIndicators.Success + " " + text)
}

// RenderError renders text in the error style with its indicator.
func RenderError(text string) string {
	return lipgloss.NewStyle().Foreground(Rose).Bold(true).
		Render(StatusIndicators.Error + " " + text)
}

// RenderWarning renders text in the warning style with its indicator.
func RenderWarning(text string) string {
	return lipgloss.NewStyle().Foreground(Amber).Bold(true).
		Render(StatusIndicators.Warning + " " + text)
}

// RenderInfo renders text in the info style with its indicator.
func RenderInfo(text string) string {
	return lipgloss.NewStyle().Foreground(Cyan).Render(StatusIndicators.Info + " " + text)
}

// =============================================================================
// SEVERITY STYLING
// =============================================================================

// SeverityColor maps an issue severity name to its display color.
// Unknown severities fall back to the muted text color.
func SeverityColor(severity string) lipgloss.AdaptiveColor {
	switch severity {
	case "critical":
		return Rose
	case "high":
		return Amber
	case "medium":
		return Cyan
	case "low":
		return Emerald
	default:
		return TextMuted
	}
}

// SeverityBadge renders a severity label like "CRITICAL" on a colored
// background, always paired with the uppercase text itself.
func SeverityBadge(severity string) string {
	return lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(SeverityColor(severity)).
		Bold(true).
		Padding(0, 1).
		Render(severityLabel(severity))
}

func severityLabel(severity string) string {
	switch severity {
	case "critical":
		return "CRITICAL"
	case "high":
		return "HIGH"
	case "medium":
		return "MEDIUM"
	case "low":
		return "LOW"
	default:
		return "UNKNOWN"
	}
}
