// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/ui/styles"
)

// =============================================================================
// CONSOLE VIEW
// =============================================================================

// Console renders the output of a code execution. A failed program is
// still a completed run; its error text renders in the error style with
// the execution time, not as a request failure.
func Console(result *model.RunResult) string {
	if result == nil {
		return lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render("No runs yet. Execute some code to see its output here.")
	}

	timing := lipgloss.NewStyle().Foreground(styles.TextMuted).
		Render(fmt.Sprintf("finished in %.3fs", result.ExecutionTime))

	if result.Error != "" {
		header := styles.RenderError("Program error")
		body := lipgloss.NewStyle().Foreground(styles.Rose).Render(result.Error)
		return header + "\n" + body + "\n" + timing
	}

	header := styles.RenderSuccess("Program output")
	body := result.Output
	if body == "" {
		body = lipgloss.NewStyle().Foreground(styles.TextMuted).Render("(no output)")
	}
	return header + "\n" + body + "\n" + timing
}
