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
// COMPARISON VIEW
// =============================================================================

// Comparison renders a rewrite result: the original and rewritten code
// blocks, the improvements list, the explanation, and the complexity
// change when the backend supplied one.
func Comparison(result *model.RewriteResult, language string, width int) string {
	if result == nil {
		return lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render("No rewrite yet. Submit some code to see a comparison.")
	}

	sectionTitle := lipgloss.NewStyle().Foreground(styles.Purple).Bold(true)

	var sections []string

	sections = append(sections,
		sectionTitle.Render("Original")+"\n"+CodeBlock(result.OriginalCode, language, width))
	sections = append(sections,
		sectionTitle.Render("Rewritten")+"\n"+CodeBlock(result.RewrittenCode, language, width))

	if len(result.Improvements) > 0 {
		var buf strings.Builder
		buf.WriteString(sectionTitle.Render("Improvements"))
		for _, imp := range result.Improvements {
			buf.WriteString("\n")
			buf.WriteString(styles.RenderSuccess(imp))
		}
		sections = append(sections, buf.String())
	}

	if result.Explanation != "" {
		sections = append(sections,
			sectionTitle.Render("Explanation")+"\n"+Markdown(result.Explanation))
	}

	if result.OriginalComplexity != nil && result.RewrittenComplexity != nil {
		sections = append(sections,
			complexityLine("Before", result.OriginalComplexity)+"\n"+
				complexityLine("After", result.RewrittenComplexity))
	}

	return strings.Join(sections, "\n\n")
}
