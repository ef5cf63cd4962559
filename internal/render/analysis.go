// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/ui/styles"
)

// =============================================================================
// ANALYSIS VIEW
// =============================================================================

// Analysis renders a full analysis result: summary counts, the markdown
// summary, per-issue cards styled by severity, and the complexity estimate.
func Analysis(result *model.AnalysisResult, width int) string {
	if result == nil {
		return lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render("No analysis yet. Submit some code to get started.")
	}

	var sections []string
	sections = append(sections, severitySummary(result))

	if result.Summary != "" {
		sections = append(sections, Markdown(result.Summary))
	}

	if len(result.Issues) == 0 {
		sections = append(sections, styles.RenderSuccess("No issues found."))
	}
	for i, issue := range result.Issues {
		sections = append(sections, issueCard(i+1, issue, width))
	}

	if result.Complexity != nil {
		sections = append(sections, complexityLine("Complexity", result.Complexity))
	}

	return strings.Join(sections, "\n\n")
}

// severitySummary renders the count cards across the top of the analysis
// view. Counts come from the backend as sent.
func severitySummary(result *model.AnalysisResult) string {
	cards := []struct {
		label string
		count int
		color lipgloss.AdaptiveColor
	}{
		{"Total", result.TotalIssues, styles.Purple},
		{"Critical", result.CriticalCount, styles.Rose},
		{"High", result.HighCount, styles.Amber},
		{"Medium", result.MediumCount, styles.Cyan},
		{"Low", result.LowCount, styles.Emerald},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		card := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.color).
			Padding(0, 1).
			Render(fmt.Sprintf("%d %s", c.count, c.label))
		rendered = append(rendered, card)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// issueCard renders one finding with its severity badge, category,
// description, suggestion, and line number when present.
func issueCard(index int, issue model.Issue, width int) string {
	sev := string(issue.Severity)

	header := styles.SeverityBadge(sev)
	if issue.Category != "" {
		header += " " + lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true).
			Render(issue.Category)
	}
	if issue.Line > 0 {
		header += " " + lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render(fmt.Sprintf("line %d", issue.Line))
	}

	var body strings.Builder
	body.WriteString(header)
	body.WriteString("\n")
	body.WriteString(issue.Description)
	if issue.Suggestion != "" {
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().Foreground(styles.Emerald).
			Render("Suggestion: " + issue.Suggestion))
	}

	cardStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.SeverityColor(sev)).
		Padding(0, 1)
	if width > 4 {
		cardStyle = cardStyle.MaxWidth(width)
	}

	num := lipgloss.NewStyle().Foreground(styles.TextMuted).
		Render(fmt.Sprintf("#%d", index))
	return num + "\n" + cardStyle.Render(body.String())
}

func complexityLine(label string, c *model.Complexity) string {
	value := fmt.Sprintf("time %s, space %s", c.Time, c.Space)
	return lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true).Render(label+": ") +
		lipgloss.NewStyle().Foreground(styles.Cyan).Render(value)
}
