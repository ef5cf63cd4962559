// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/recodex/recodex-tui/internal/action"
	"github.com/recodex/recodex-tui/internal/config"
	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/session"
	"github.com/recodex/recodex-tui/internal/ui/components"
	"github.com/recodex/recodex-tui/internal/ui/styles"
)

// =============================================================================
// VIEWS
// =============================================================================

type view int

const (
	viewEditor view = iota
	viewAnalysis
	viewComparison
	viewConsole
	viewHistory
	viewChat
	viewAccount
)

func (v view) title() string {
	switch v {
	case viewEditor:
		return "Editor"
	case viewAnalysis:
		return "Analysis"
	case viewComparison:
		return "Rewrite"
	case viewConsole:
		return "Console"
	case viewHistory:
		return "History"
	case viewChat:
		return "Chat"
	case viewAccount:
		return "Account"
	default:
		return "?"
	}
}

// tabOrder is the cycle order for view switching.
var tabOrder = []view{
	viewEditor, viewAnalysis, viewComparison, viewConsole,
	viewHistory, viewChat, viewAccount,
}

// Languages the editor can submit. The backend decides what it actually
// supports; this list only drives the language cycle key.
var Languages = []string{
	"python", "javascript", "typescript", "java", "c", "cpp", "go", "rust",
}

// =============================================================================
// AUTH FORM
// =============================================================================

type authMode int

const (
	authLogin authMode = iota
	authRegister
)

// authForm holds the login/register inputs. Field order for register is
// name, email, password, confirm; login uses email and password only.
type authForm struct {
	mode   authMode
	name   textinput.Model
	email  textinput.Model
	pass   textinput.Model
	conf   textinput.Model
	focus  int
	errMsg string
}

func newAuthForm() authForm {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 100

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 200

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	conf := textinput.New()
	conf.Placeholder = "Confirm password"
	conf.EchoMode = textinput.EchoPassword
	conf.EchoCharacter = '*'

	f := authForm{mode: authLogin, name: name, email: email, pass: pass, conf: conf}
	f.email.Focus()
	return f
}

// fields returns the active inputs for the current mode, in focus order.
func (f *authForm) fields() []*textinput.Model {
	if f.mode == authRegister {
		return []*textinput.Model{&f.name, &f.email, &f.pass, &f.conf}
	}
	return []*textinput.Model{&f.email, &f.pass}
}

func (f *authForm) setFocus(i int) {
	fields := f.fields()
	if i < 0 {
		i = len(fields) - 1
	}
	if i >= len(fields) {
		i = 0
	}
	f.focus = i
	for j, field := range fields {
		if j == i {
			field.Focus()
		} else {
			field.Blur()
		}
	}
}

func (f *authForm) reset() {
	f.pass.SetValue("")
	f.conf.SetValue("")
	f.errMsg = ""
	f.setFocus(0)
}

// =============================================================================
// ACCOUNT FORM
// =============================================================================

// accountForm holds the profile rename input and the typed delete
// confirmation. Deleting takes two steps: arm, then type the phrase.
type accountForm struct {
	name        textinput.Model
	deleteInput textinput.Model
	deleteArmed bool
	focus       int // 0 = name, 1 = delete
}

func newAccountForm() accountForm {
	name := textinput.New()
	name.Placeholder = "Display name"
	name.CharLimit = 100
	name.Focus()

	del := textinput.New()
	del.Placeholder = "Type " + action.DeleteConfirmPhrase + " to confirm"
	del.CharLimit = 20

	return accountForm{name: name, deleteInput: del}
}

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root bubbletea model.
type App struct {
	ctrl  *action.Controller
	cfg   *config.Config
	theme *styles.Theme
	keys  keyMap

	active      view
	width       int
	height      int
	showWelcome bool

	editor    textarea.Model
	chatInput textinput.Model
	content   viewport.Model

	language     string
	historyIndex int

	auth    authForm
	account accountForm

	toasts  *components.ToastManager
	spinner components.Spinner

	sessionCh   <-chan model.Session
	watchCancel context.CancelFunc
}

// New builds the application model around a controller.
func New(ctrl *action.Controller, cfg *config.Config, store *session.Store) *App {
	editor := textarea.New()
	editor.Placeholder = "Paste or type code here..."
	editor.CharLimit = 0
	editor.Focus()

	chatInput := textinput.New()
	chatInput.Placeholder = "Ask about your code..."
	chatInput.CharLimit = 2000

	language := cfg.Editor.DefaultLanguage
	if language == "" {
		language = Languages[0]
	}

	app := &App{
		ctrl:        ctrl,
		cfg:         cfg,
		theme:       styles.NewTheme(),
		keys:        defaultKeyMap(),
		active:      viewEditor,
		showWelcome: true,
		editor:      editor,
		chatInput:   chatInput,
		content:     viewport.New(80, 20),
		language:    language,
		auth:        newAuthForm(),
		account:     newAccountForm(),
		toasts:      components.NewToastManager(),
		spinner:     components.NewSpinner("Working"),
	}

	// RELIABILITY: session changes made by other processes (login in a
	// second terminal, logout elsewhere) propagate through the watcher.
	if store != nil {
		ctx, cancel := context.WithCancel(context.Background())
		if ch, err := store.Watch(ctx); err == nil {
			app.sessionCh = ch
			app.watchCancel = cancel
		} else {
			cancel()
		}
	}

	return app
}

// Init starts background commands.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		components.ToastTickCmd(),
	}
	if a.sessionCh != nil {
		cmds = append(cmds, watchSessionCmd(a.sessionCh))
	}

	// A warm cache paints the history view before the first fetch.
	_ = a.ctrl.LoadCachedHistory()

	return tea.Batch(cmds...)
}

// Close releases the session watcher.
func (a *App) Close() {
	if a.watchCancel != nil {
		a.watchCancel()
	}
}

func (a *App) setView(v view) {
	a.active = v
	a.refreshContent()
	switch v {
	case viewEditor:
		a.editor.Focus()
		a.chatInput.Blur()
	case viewChat:
		a.chatInput.Focus()
		a.editor.Blur()
	default:
		a.editor.Blur()
		a.chatInput.Blur()
	}
}

func (a *App) nextView() {
	for i, v := range tabOrder {
		if v == a.active {
			a.setView(tabOrder[(i+1)%len(tabOrder)])
			return
		}
	}
	a.setView(viewEditor)
}

func (a *App) prevView() {
	for i, v := range tabOrder {
		if v == a.active {
			a.setView(tabOrder[(i+len(tabOrder)-1)%len(tabOrder)])
			return
		}
	}
	a.setView(viewEditor)
}

func (a *App) cycleLanguage() {
	for i, lang := range Languages {
		if lang == a.language {
			a.language = Languages[(i+1)%len(Languages)]
			return
		}
	}
	a.language = Languages[0]
}
