// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/ui/styles"
)

// =============================================================================
// CHAT TRANSCRIPT
// =============================================================================

// Transcript renders the chat transcript in order. User turns render as
// plain text in cyan-bordered bubbles; assistant turns render their
// markdown through glamour in purple-bordered bubbles.
func Transcript(turns []model.ChatTurn, width int) string {
	if len(turns) == 0 {
		return lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render("Ask the assistant about your code.")
	}

	bubbleWidth := width - 4
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	rendered := make([]string, 0, len(turns))
	for _, turn := range turns {
		rendered = append(rendered, chatBubble(turn, bubbleWidth))
	}
	return strings.Join(rendered, "\n")
}

func chatBubble(turn model.ChatTurn, width int) string {
	var borderColor lipgloss.AdaptiveColor
	var content string

	switch turn.Role {
	case model.RoleUser:
		borderColor = styles.Cyan
		content = turn.Content
	default:
		borderColor = styles.Purple
		content = Markdown(turn.Content)
	}

	name := lipgloss.NewStyle().Foreground(borderColor).Bold(true).
		Render(turn.Role.DisplayName())

	bubble := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		MaxWidth(width).
		Render(content)

	return name + "\n" + bubble
}
