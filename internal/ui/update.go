// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/recodex/recodex-tui/internal/action"
	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/ui/components"
)

var allKinds = []action.Kind{
	action.KindLogin, action.KindRegister, action.KindAnalyze,
	action.KindRewrite, action.KindChat, action.KindHistoryFetch,
	action.KindHistoryClear, action.KindProfileUpdate,
	action.KindAccountDelete, action.KindRun,
}

func (a *App) anyBusy() bool {
	for _, k := range allKinds {
		if a.ctrl.Busy(k) {
			return true
		}
	}
	return false
}

// Update is the single event loop entry point.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.theme.SetSize(msg.Width, msg.Height)
		a.layout()
		a.refreshContent()
		return a, nil

	case components.ToastTickMsg:
		a.toasts.Tick()
		return a, components.ToastTickCmd()

	case sessionChangedMsg:
		// Another process changed the session file. The controller reads
		// the store directly, so a repaint is enough.
		a.refreshContent()
		if a.sessionCh != nil {
			cmds = append(cmds, watchSessionCmd(a.sessionCh))
		}
		return a, tea.Batch(cmds...)

	case loginDoneMsg:
		notice := a.ctrl.FinishLogin(msg.resp, msg.err)
		a.toasts.Add(notice)
		if msg.err == nil {
			a.auth.reset()
			a.setView(viewEditor)
		}
		return a, a.settleSpinner()

	case registerDoneMsg:
		notice := a.ctrl.FinishRegister(msg.resp, msg.err)
		a.toasts.Add(notice)
		if msg.err == nil {
			a.auth.reset()
			a.setView(viewEditor)
		}
		return a, a.settleSpinner()

	case profileDoneMsg:
		a.toasts.Add(a.ctrl.FinishProfileUpdate(msg.user, msg.err))
		a.refreshContent()
		return a, a.settleSpinner()

	case accountDeleteDoneMsg:
		a.toasts.Add(a.ctrl.FinishAccountDelete(msg.err))
		if msg.err == nil {
			a.account.deleteArmed = false
			a.account.deleteInput.SetValue("")
			a.setView(viewEditor)
		}
		return a, a.settleSpinner()

	case analyzeDoneMsg:
		a.toasts.Add(a.ctrl.FinishAnalyze(msg.result, msg.err))
		if msg.err == nil {
			a.setView(viewAnalysis)
		}
		a.refreshContent()
		return a, a.settleSpinner()

	case rewriteDoneMsg:
		a.toasts.Add(a.ctrl.FinishRewrite(msg.result, msg.err))
		if msg.err == nil {
			a.setView(viewComparison)
		}
		a.refreshContent()
		return a, a.settleSpinner()

	case runDoneMsg:
		a.toasts.Add(a.ctrl.FinishRun(msg.result, msg.err))
		if msg.err == nil {
			a.setView(viewConsole)
		}
		a.refreshContent()
		return a, a.settleSpinner()

	case chatDoneMsg:
		a.toasts.Add(a.ctrl.FinishChat(msg.reply, msg.err))
		a.refreshContent()
		a.content.GotoBottom()
		return a, a.settleSpinner()

	case historyFetchedMsg:
		a.toasts.Add(a.ctrl.FinishHistoryFetch(msg.resp, msg.err))
		a.historyIndex = 0
		if msg.err == nil {
			a.setView(viewHistory)
		}
		a.refreshContent()
		return a, a.settleSpinner()

	case historyClearedMsg:
		a.toasts.Add(a.ctrl.FinishHistoryClear(msg.err))
		a.historyIndex = 0
		a.refreshContent()
		return a, a.settleSpinner()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if cmd := a.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// settleSpinner stops the spinner once nothing is pending.
func (a *App) settleSpinner() tea.Cmd {
	if !a.anyBusy() {
		a.spinner.Stop()
	}
	return nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		a.Close()
		return a, tea.Quit
	}

	if a.showWelcome {
		a.showWelcome = false
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.NextView):
		a.nextView()
		return a, nil

	case key.Matches(msg, a.keys.PrevView):
		a.prevView()
		return a, nil

	case key.Matches(msg, a.keys.Dismiss):
		a.toasts.DismissNewest()
		return a, nil

	case key.Matches(msg, a.keys.CycleLanguage):
		a.cycleLanguage()
		return a, nil

	case key.Matches(msg, a.keys.CopyCode):
		if code := a.editor.Value(); code != "" {
			termenv.Copy(code)
			a.toasts.Add(action.Notice{Title: "Copied", Message: "Code copied to clipboard", Kind: action.NoticeInfo})
		}
		return a, nil

	case key.Matches(msg, a.keys.Logout):
		notice, err := a.ctrl.Logout()
		if err == nil {
			a.toasts.Add(notice)
			a.refreshContent()
		}
		return a, nil

	case key.Matches(msg, a.keys.Analyze):
		return a, a.startCode(action.KindAnalyze)

	case key.Matches(msg, a.keys.Rewrite):
		return a, a.startCode(action.KindRewrite)

	case key.Matches(msg, a.keys.Run):
		return a, a.startCode(action.KindRun)

	case key.Matches(msg, a.keys.FetchHistory):
		if err := a.ctrl.StartHistoryFetch(); err != nil {
			a.startFailed("History", err)
			return a, nil
		}
		a.spinner.SetMessage("Fetching history")
		return a, tea.Batch(a.spinner.Start(), a.historyFetchCmd())

	case key.Matches(msg, a.keys.ApplyCode):
		if code, ok := a.ctrl.ApplySuggestion(); ok {
			a.editor.SetValue(code)
			a.setView(viewEditor)
			a.toasts.Add(action.Notice{Title: "Suggestion applied", Kind: action.NoticeSuccess})
		}
		return a, nil
	}

	switch a.active {
	case viewEditor:
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd

	case viewChat:
		return a.handleChatKey(msg)

	case viewHistory:
		return a.handleHistoryKey(msg)

	case viewAccount:
		return a.handleAccountKey(msg)

	default:
		var cmd tea.Cmd
		a.content, cmd = a.content.Update(msg)
		return a, cmd
	}
}

// startCode begins an analyze, rewrite, or run for the editor contents.
func (a *App) startCode(kind action.Kind) tea.Cmd {
	code := a.editor.Value()

	var err error
	switch kind {
	case action.KindAnalyze:
		err = a.ctrl.StartAnalyze(code)
	case action.KindRewrite:
		err = a.ctrl.StartRewrite(code)
	case action.KindRun:
		err = a.ctrl.StartRun(code)
	}
	if err != nil {
		a.startFailed(titleFor(kind), err)
		return nil
	}

	a.spinner.SetMessage(spinnerMessageFor(kind))
	var req tea.Cmd
	switch kind {
	case action.KindAnalyze:
		req = a.analyzeCmd(code, a.language)
	case action.KindRewrite:
		req = a.rewriteCmd(code, a.language)
	case action.KindRun:
		req = a.runCmd(code, a.language)
	}
	return tea.Batch(a.spinner.Start(), req)
}

func titleFor(kind action.Kind) string {
	switch kind {
	case action.KindAnalyze:
		return "Analysis"
	case action.KindRewrite:
		return "Rewrite"
	case action.KindRun:
		return "Run"
	default:
		return "Request"
	}
}

func spinnerMessageFor(kind action.Kind) string {
	switch kind {
	case action.KindAnalyze:
		return "Analyzing code"
	case action.KindRewrite:
		return "Rewriting code"
	case action.KindRun:
		return "Running code"
	default:
		return "Working"
	}
}

// startFailed reports a rejected Start call. Guest rejections route to
// the account view so the user can sign in.
func (a *App) startFailed(title string, err error) {
	var verr *action.ValidationError

	switch {
	case errors.Is(err, action.ErrGuest):
		a.toasts.Add(action.Notice{
			Title:   "Sign in required",
			Message: "Log in or create an account to use this feature.",
			Kind:    action.NoticeWarning,
		})
		a.setView(viewAccount)
	case errors.Is(err, action.ErrBusy):
		a.toasts.Add(action.Notice{
			Title:   title,
			Message: "Still working on the previous request.",
			Kind:    action.NoticeWarning,
		})
	case errors.As(err, &verr):
		a.toasts.Add(action.Notice{Title: title, Message: verr.Message, Kind: action.NoticeError})
	default:
		a.toasts.Add(action.Notice{Title: title, Message: err.Error(), Kind: action.NoticeError})
	}
}

// =============================================================================
// CHAT KEYS
// =============================================================================

func (a *App) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Send) {
		message := a.chatInput.Value()
		turns, err := a.ctrl.StartChat(message)
		if err != nil {
			a.startFailed("Chat", err)
			return a, nil
		}
		a.chatInput.SetValue("")
		a.refreshContent()
		a.content.GotoBottom()
		a.spinner.SetMessage("Thinking")
		return a, tea.Batch(a.spinner.Start(), a.chatCmd(turns, a.editor.Value(), a.language))
	}

	var cmd tea.Cmd
	a.chatInput, cmd = a.chatInput.Update(msg)
	return a, cmd
}

// =============================================================================
// HISTORY KEYS
// =============================================================================

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := a.ctrl.View().History

	switch msg.String() {
	case "up", "k":
		if a.historyIndex > 0 {
			a.historyIndex--
			a.refreshContent()
		}
		return a, nil

	case "down", "j":
		if a.historyIndex < len(entries)-1 {
			a.historyIndex++
			a.refreshContent()
		}
		return a, nil

	case "enter":
		if a.historyIndex < 0 || a.historyIndex >= len(entries) {
			return a, nil
		}
		restored, err := a.ctrl.RestoreHistory(entries[a.historyIndex])
		if err != nil {
			a.toasts.Add(action.Notice{Title: "History", Message: err.Error(), Kind: action.NoticeError})
			return a, nil
		}
		a.editor.SetValue(restored.Code)
		if restored.Language != "" {
			a.language = restored.Language
		}
		if restored.Type == model.HistoryRewrite {
			a.setView(viewComparison)
		} else {
			a.setView(viewAnalysis)
		}
		return a, nil
	}

	if key.Matches(msg, a.keys.ClearHistory) {
		if err := a.ctrl.StartHistoryClear(); err != nil {
			a.startFailed("History", err)
			return a, nil
		}
		a.spinner.SetMessage("Clearing history")
		return a, tea.Batch(a.spinner.Start(), a.historyClearCmd())
	}

	var cmd tea.Cmd
	a.content, cmd = a.content.Update(msg)
	return a, cmd
}

// =============================================================================
// ACCOUNT KEYS
// =============================================================================

func (a *App) handleAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.ctrl.Session().IsGuest {
		return a.handleAuthKey(msg)
	}

	switch msg.String() {
	case "tab", "shift+tab":
		a.account.focus = 1 - a.account.focus
		if a.account.focus == 0 {
			a.account.name.Focus()
			a.account.deleteInput.Blur()
		} else {
			a.account.name.Blur()
			a.account.deleteInput.Focus()
		}
		return a, nil

	case "enter":
		if a.account.focus == 0 {
			if err := a.ctrl.StartProfileUpdate(a.account.name.Value()); err != nil {
				a.startFailed("Profile", err)
				return a, nil
			}
			a.spinner.SetMessage("Updating profile")
			return a, tea.Batch(a.spinner.Start(), a.profileCmd(a.account.name.Value()))
		}

		if !a.account.deleteArmed {
			a.account.deleteArmed = true
			a.toasts.Add(action.Notice{
				Title:   "Delete account",
				Message: "This cannot be undone. Type " + action.DeleteConfirmPhrase + " and press enter again.",
				Kind:    action.NoticeWarning,
			})
			return a, nil
		}

		if err := a.ctrl.StartAccountDelete(a.account.deleteInput.Value()); err != nil {
			a.startFailed("Delete account", err)
			return a, nil
		}
		a.spinner.SetMessage("Deleting account")
		return a, tea.Batch(a.spinner.Start(), a.accountDeleteCmd())
	}

	var cmd tea.Cmd
	if a.account.focus == 0 {
		a.account.name, cmd = a.account.name.Update(msg)
	} else {
		a.account.deleteInput, cmd = a.account.deleteInput.Update(msg)
	}
	return a, cmd
}

func (a *App) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		if a.auth.mode == authLogin {
			a.auth.mode = authRegister
		} else {
			a.auth.mode = authLogin
		}
		a.auth.reset()
		return a, nil

	case "tab", "down":
		a.auth.setFocus(a.auth.focus + 1)
		return a, nil

	case "shift+tab", "up":
		a.auth.setFocus(a.auth.focus - 1)
		return a, nil

	case "enter":
		fields := a.auth.fields()
		if a.auth.focus < len(fields)-1 {
			a.auth.setFocus(a.auth.focus + 1)
			return a, nil
		}
		return a, a.submitAuth()
	}

	var cmd tea.Cmd
	fields := a.auth.fields()
	*fields[a.auth.focus], cmd = fields[a.auth.focus].Update(msg)
	return a, cmd
}

func (a *App) submitAuth() tea.Cmd {
	if a.auth.mode == authLogin {
		email := a.auth.email.Value()
		password := a.auth.pass.Value()
		if err := a.ctrl.StartLogin(email, password); err != nil {
			a.authStartFailed(err)
			return nil
		}
		a.spinner.SetMessage("Signing in")
		return tea.Batch(a.spinner.Start(), a.loginCmd(email, password))
	}

	name := a.auth.name.Value()
	email := a.auth.email.Value()
	password := a.auth.pass.Value()
	confirm := a.auth.conf.Value()
	if err := a.ctrl.StartRegister(name, email, password, confirm); err != nil {
		a.authStartFailed(err)
		return nil
	}
	a.spinner.SetMessage("Creating account")
	return tea.Batch(a.spinner.Start(), a.registerCmd(name, email, password))
}

// authStartFailed shows validation problems inline on the form instead
// of as toasts.
func (a *App) authStartFailed(err error) {
	var verr *action.ValidationError
	if errors.As(err, &verr) {
		a.auth.errMsg = verr.Message
		return
	}
	a.startFailed("Sign in", err)
}
