// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/ui/styles"
	"github.com/recodex/recodex-tui/internal/util"
)

// =============================================================================
// HISTORY VIEW
// =============================================================================

const previewRunes = 60

// History renders the history list in server order, one card per entry,
// with the selected entry highlighted.
func History(entries []model.HistoryEntry, selected, width int) string {
	if len(entries) == 0 {
		return lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render("History is empty.")
	}

	cards := make([]string, 0, len(entries))
	for i, entry := range entries {
		cards = append(cards, historyCard(entry, i == selected, width))
	}
	return strings.Join(cards, "\n")
}

// HistoryLine renders one entry as a single plain line for CLI output.
func HistoryLine(index int, entry model.HistoryEntry) string {
	preview := util.TruncateRunes(util.FirstLine(entry.OriginalCode), previewRunes)
	return fmt.Sprintf("%3d  %-7s  %-10s  %s  %s",
		index+1,
		entry.Type,
		entry.Language,
		entry.Timestamp.Format("2006-01-02 15:04"),
		preview)
}

func historyCard(entry model.HistoryEntry, selected bool, width int) string {
	typeColor := styles.Cyan
	if entry.Type == model.HistoryRewrite {
		typeColor = styles.Purple
	}

	badge := lipgloss.NewStyle().
		Foreground(styles.TextInverse).
		Background(typeColor).
		Padding(0, 1).
		Render(string(entry.Type))

	meta := lipgloss.NewStyle().Foreground(styles.TextMuted).
		Render(entry.Language + "  " + entry.Timestamp.Format("2006-01-02 15:04"))

	preview := util.TruncateRunes(util.FirstLine(entry.OriginalCode), previewRunes)

	body := badge + " " + meta + "\n" + preview

	borderColor := styles.Overlay
	if selected {
		borderColor = styles.Purple
	}

	cardStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)
	if width > 4 {
		cardStyle = cardStyle.MaxWidth(width)
	}

	return cardStyle.Render(body)
}
