// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recodex/recodex-tui/internal/action"
	"github.com/recodex/recodex-tui/internal/render"
	"github.com/recodex/recodex-tui/internal/ui/components"
	"github.com/recodex/recodex-tui/internal/ui/styles"
)

const appName = "ReCodeX"

// layout resizes the inner components after a terminal resize.
func (a *App) layout() {
	bodyHeight := a.height - 4 // header, tabs, status bar
	if bodyHeight < 5 {
		bodyHeight = 5
	}
	bodyWidth := a.width - 2
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	a.editor.SetWidth(bodyWidth)
	a.editor.SetHeight(bodyHeight)
	a.content.Width = bodyWidth
	a.content.Height = bodyHeight - 2
	a.chatInput.Width = bodyWidth - 4
}

// refreshContent re-renders the active view's result into the viewport.
// Rendering is pure, so this is safe to call on every state change.
func (a *App) refreshContent() {
	view := a.ctrl.View()
	width := a.content.Width

	switch a.active {
	case viewAnalysis:
		a.content.SetContent(render.Analysis(view.LastAnalysis, width))
	case viewComparison:
		out := render.Comparison(view.LastRewrite, a.language, width)
		if view.HasSuggestion {
			hint := styles.RenderInfo("A chat suggestion is waiting. Press ctrl+s to apply it to the editor.")
			out = hint + "\n\n" + out
		}
		a.content.SetContent(out)
	case viewConsole:
		a.content.SetContent(render.Console(view.LastRun))
	case viewHistory:
		a.content.SetContent(render.History(view.History, a.historyIndex, width))
	case viewChat:
		a.content.SetContent(render.Transcript(view.Chat, width))
	}
}

// View renders the whole screen.
func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	if a.showWelcome {
		return a.welcomeView()
	}

	sections := []string{
		a.headerView(),
		a.tabsView(),
		a.bodyView(),
		a.statusBarView(),
	}

	out := strings.Join(sections, "\n")

	if a.toasts.HasToasts() {
		out += "\n" + components.RenderToastStack(a.toasts.Toasts(), a.width, 0)
	}
	return out
}

func (a *App) headerView() string {
	brand := a.theme.HeaderBrand.Render(appName)
	title := a.theme.HeaderTitle.Render(" AI Code Analyzer")

	var spin string
	if a.spinner.Active() {
		spin = "  " + a.spinner.View()
	}

	return a.theme.Header.Width(a.width).Render(brand + title + spin)
}

func (a *App) tabsView() string {
	tabs := make([]string, 0, len(tabOrder))
	for _, v := range tabOrder {
		if v == a.active {
			tabs = append(tabs, a.theme.TabActive.Render(v.title()))
		} else {
			tabs = append(tabs, a.theme.Tab.Render(v.title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) bodyView() string {
	switch a.active {
	case viewEditor:
		return a.theme.Container.Render(a.editor.View())
	case viewChat:
		input := a.theme.InputContainer.Render(
			a.theme.InputPrompt.Render("> ") + a.chatInput.View())
		return a.theme.Container.Render(a.content.View() + "\n" + input)
	case viewAccount:
		return a.theme.Container.Render(a.accountView())
	default:
		return a.theme.Container.Render(a.content.View())
	}
}

func (a *App) statusBarView() string {
	shortcuts := []components.Shortcut{
		{Key: "ctrl+a", Desc: "analyze"},
		{Key: "ctrl+r", Desc: "rewrite"},
		{Key: "ctrl+x", Desc: "run"},
		{Key: "ctrl+h", Desc: "history"},
		{Key: "f2", Desc: "view"},
		{Key: "ctrl+c", Desc: "quit"},
	}
	return components.RenderStatusBar(a.ctrl.Session(), a.language, a.anyBusy(), shortcuts, a.width)
}

// =============================================================================
// ACCOUNT AND AUTH VIEWS
// =============================================================================

func (a *App) accountView() string {
	session := a.ctrl.Session()
	if session.IsGuest {
		return a.authView()
	}

	title := a.theme.CardTitle.Render("Account")
	identity := lipgloss.NewStyle().Foreground(styles.TextSecondary).
		Render(session.User.Name + " <" + session.User.Email + ">")

	nameLabel := a.theme.FormLabel.Render("Display name")
	deleteLabel := a.theme.FormError.Render("Delete account")

	deleteHint := lipgloss.NewStyle().Foreground(styles.TextMuted).
		Render("Type " + action.DeleteConfirmPhrase + " and press enter twice. This cannot be undone.")

	form := strings.Join([]string{
		title,
		identity,
		"",
		nameLabel,
		a.account.name.View(),
		"",
		deleteLabel,
		deleteHint,
		a.account.deleteInput.View(),
		"",
		a.theme.ShortcutKey.Render("tab") + a.theme.ShortcutDesc.Render(" switch field  ") +
			a.theme.ShortcutKey.Render("ctrl+o") + a.theme.ShortcutDesc.Render(" logout"),
	}, "\n")

	return a.theme.FormBox.Render(form)
}

func (a *App) authView() string {
	var title string
	if a.auth.mode == authLogin {
		title = a.theme.CardTitle.Render("Sign in")
	} else {
		title = a.theme.CardTitle.Render("Create account")
	}

	lines := []string{title, ""}
	if a.auth.mode == authRegister {
		lines = append(lines, a.theme.FormLabel.Render("Name"), a.auth.name.View(), "")
	}
	lines = append(lines,
		a.theme.FormLabel.Render("Email"), a.auth.email.View(), "",
		a.theme.FormLabel.Render("Password"), a.auth.pass.View(), "",
	)
	if a.auth.mode == authRegister {
		lines = append(lines, a.theme.FormLabel.Render("Confirm password"), a.auth.conf.View(), "")
	}

	if a.auth.errMsg != "" {
		lines = append(lines, a.theme.FormError.Render(a.auth.errMsg), "")
	}

	toggle := "need an account? ctrl+t"
	if a.auth.mode == authRegister {
		toggle = "have an account? ctrl+t"
	}
	lines = append(lines,
		a.theme.ShortcutKey.Render("enter")+a.theme.ShortcutDesc.Render(" next/submit  ")+
			a.theme.ShortcutDesc.Render(toggle))

	return a.theme.FormBox.Render(strings.Join(lines, "\n"))
}

// =============================================================================
// WELCOME
// =============================================================================

func (a *App) welcomeView() string {
	logo := a.theme.HeaderBrand.Render(appName)
	tagline := lipgloss.NewStyle().Foreground(styles.TextSecondary).
		Render("Analyze, rewrite, and run code with AI assistance.")

	session := a.ctrl.Session()
	var who string
	if session.IsGuest {
		who = lipgloss.NewStyle().Foreground(styles.Amber).
			Render("Browsing as guest. Sign in from the Account view for analysis and history.")
	} else {
		who = lipgloss.NewStyle().Foreground(styles.Emerald).
			Render("Welcome back, " + session.User.Name + ".")
	}

	pressKey := lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true).
		Render("press any key to continue")

	box := a.theme.FormBox.Render(strings.Join([]string{logo, tagline, "", who, "", pressKey}, "\n"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}
