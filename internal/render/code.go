// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns API results into terminal output. Every function is a
// pure transformation: the same input always produces the same string, so
// views can re-render freely without flicker or drift.
package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/recodex/recodex-tui/internal/ui/styles"
)

// =============================================================================
// SYNTAX HIGHLIGHTING
// =============================================================================

// Highlight applies syntax highlighting to code using chroma.
// Falls back to plain text if the language is unknown or highlighting fails.
func Highlight(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// CodeBlock renders highlighted code with line numbers inside a rounded
// border, with a language badge in the header.
func CodeBlock(code, language string, width int) string {
	code = strings.TrimRight(code, "\n")

	highlighted := Highlight(code, language)
	lines := strings.Split(highlighted, "\n")

	lineNumStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Width(4).
		Align(lipgloss.Right)

	var buf strings.Builder
	for i, line := range lines {
		buf.WriteString(lineNumStyle.Render(fmt.Sprintf("%d", i+1)))
		buf.WriteString(" ")
		buf.WriteString(line)
		if i < len(lines)-1 {
			buf.WriteString("\n")
		}
	}

	badge := lipgloss.NewStyle().
		Foreground(styles.TextInverse).
		Background(styles.Purple).
		Padding(0, 1).
		Render(languageLabel(language))

	blockStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(0, 1)
	if width > 4 {
		blockStyle = blockStyle.MaxWidth(width)
	}

	return badge + "\n" + blockStyle.Render(buf.String())
}

func languageLabel(language string) string {
	if language == "" {
		return "text"
	}
	return strings.ToLower(language)
}
