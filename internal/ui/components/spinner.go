// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recodex/recodex-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER
// =============================================================================

// Spinner is the loading indicator shown while a request is pending.
// It uses ASCII frames so it renders on any terminal.
type Spinner struct {
	spinner   spinner.Model
	message   string
	startTime time.Time
	active    bool
	showTimer bool
}

// NewSpinner creates a spinner with the default frames and message.
func NewSpinner(message string) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(styles.Purple)

	return Spinner{
		spinner:   s,
		message:   message,
		showTimer: true,
	}
}

// Start activates the spinner and resets its timer.
func (s *Spinner) Start() tea.Cmd {
	s.active = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.active = false
}

// Active reports whether the spinner is running.
func (s *Spinner) Active() bool {
	return s.active
}

// SetMessage changes the text shown next to the frames.
func (s *Spinner) SetMessage(message string) {
	s.message = message
}

// Update advances the animation. Inactive spinners swallow ticks.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.active {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// View renders the spinner with its message and elapsed time.
func (s *Spinner) View() string {
	if !s.active {
		return ""
	}

	out := s.spinner.View() + " " +
		lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(s.message)

	if s.showTimer {
		elapsed := time.Since(s.startTime).Round(time.Second)
		out += " " + lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render(fmt.Sprintf("(%s)", elapsed))
	}
	return out
}
