// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/ui/styles"
	"github.com/recodex/recodex-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// maxNameWidth caps the identity segment so a long display name cannot
// push the shortcut hints off the bar.
const maxNameWidth = 24

// Shortcut is one key binding hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// RenderStatusBar renders the bottom status bar: session identity on the
// left, pending indicator in the middle, shortcuts on the right.
func RenderStatusBar(session model.Session, language string, busy bool, shortcuts []Shortcut, width int) string {
	var left string
	if session.IsGuest {
		left = lipgloss.NewStyle().Foreground(styles.Amber).Bold(true).Render("guest")
	} else {
		name := util.TruncateWidth(session.User.Name, maxNameWidth)
		left = lipgloss.NewStyle().Foreground(styles.Emerald).Bold(true).Render(name)
	}
	left += lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  " + language)

	var middle string
	if busy {
		middle = lipgloss.NewStyle().Foreground(styles.Purple).
			Render(styles.StatusIndicators.Pending + " working")
	}

	keyStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	parts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		parts = append(parts, keyStyle.Render(sc.Key)+" "+descStyle.Render(sc.Desc))
	}
	right := strings.Join(parts, "  ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right) - 2
	if gap < 2 {
		return lipgloss.NewStyle().Background(styles.SurfaceDim).Padding(0, 1).
			Render(left + "  " + right)
	}

	pad := strings.Repeat(" ", gap/2)
	return lipgloss.NewStyle().Background(styles.SurfaceDim).Padding(0, 1).
		Render(left + pad + middle + pad + right)
}
