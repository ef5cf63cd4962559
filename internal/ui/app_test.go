// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/recodex/recodex-tui/internal/action"
	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/config"
	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/session"
)

func newTestApp(t *testing.T, handler http.Handler) (*App, *session.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	ctrl := action.NewController(api.New(server.URL), store)
	cfg := config.Default()

	app := New(ctrl, cfg, nil)
	app.width = 100
	app.height = 30
	app.showWelcome = false
	app.layout()
	return app, store
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestWelcomeDismissedByAnyKey(t *testing.T) {
	app, _ := newTestApp(t, http.NotFoundHandler())
	app.showWelcome = true

	if !strings.Contains(app.View(), "press any key") {
		t.Error("welcome screen missing prompt")
	}

	app.handleKey(keyMsg("a"))
	if app.showWelcome {
		t.Error("welcome still showing after keypress")
	}
}

func TestGuestAnalyzeRoutesToAccountView(t *testing.T) {
	requests := 0
	app, _ := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	app.editor.SetValue("print('hi')")
	app.handleKey(keyMsg("ctrl+a"))

	if app.active != viewAccount {
		t.Errorf("active view = %v, want account", app.active)
	}
	if requests != 0 {
		t.Errorf("guest analyze hit the network %d times", requests)
	}
}

func TestAuthenticatedAnalyzeShowsResult(t *testing.T) {
	app, store := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_issues":1,"critical_count":1,"issues":[{"severity":"critical","category":"security","description":"bad"}],"summary":"one issue"}`))
	}))

	if err := store.Set("tok", model.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatal(err)
	}

	app.editor.SetValue("eval(input())")
	_, cmd := app.handleKey(keyMsg("ctrl+a"))
	if cmd == nil {
		t.Fatal("analyze produced no command")
	}

	// Drain the batch and feed the result message back through Update.
	msg := drainCmd(t, cmd)
	app.Update(msg)

	if app.active != viewAnalysis {
		t.Errorf("active view = %v, want analysis", app.active)
	}
	if view := app.ctrl.View(); view.LastAnalysis == nil || view.LastAnalysis.TotalIssues != 1 {
		t.Error("analysis result not stored")
	}
	if !strings.Contains(app.View(), "CRITICAL") {
		t.Error("analysis view missing severity badge")
	}
}

// drainCmd executes a command tree until it yields a non-tick message.
func drainCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case analyzeDoneMsg, rewriteDoneMsg, runDoneMsg, chatDoneMsg,
			loginDoneMsg, registerDoneMsg, historyFetchedMsg:
			return msg
		}
	}
	t.Fatal("no result message produced")
	return nil
}

func TestLanguageCycle(t *testing.T) {
	app, _ := newTestApp(t, http.NotFoundHandler())
	app.language = Languages[0]

	app.handleKey(keyMsg("ctrl+l"))
	if app.language != Languages[1] {
		t.Errorf("language = %q, want %q", app.language, Languages[1])
	}

	app.language = Languages[len(Languages)-1]
	app.handleKey(keyMsg("ctrl+l"))
	if app.language != Languages[0] {
		t.Error("language cycle did not wrap")
	}
}

func TestViewCycleWraps(t *testing.T) {
	app, _ := newTestApp(t, http.NotFoundHandler())

	start := app.active
	for range tabOrder {
		app.nextView()
	}
	if app.active != start {
		t.Errorf("cycling %d views did not return to start", len(tabOrder))
	}
}

func TestAccountViewShowsAuthFormForGuest(t *testing.T) {
	app, _ := newTestApp(t, http.NotFoundHandler())
	app.setView(viewAccount)

	out := app.View()
	if !strings.Contains(out, "Sign in") {
		t.Error("guest account view missing sign-in form")
	}
}

func TestAccountViewShowsProfileForUser(t *testing.T) {
	app, store := newTestApp(t, http.NotFoundHandler())
	if err := store.Set("tok", model.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatal(err)
	}
	app.setView(viewAccount)

	out := app.View()
	if !strings.Contains(out, "ada@example.com") {
		t.Error("account view missing user identity")
	}
	if strings.Contains(out, "Sign in\n") {
		t.Error("authenticated account view shows sign-in form")
	}
}

func TestStatusBarShowsGuest(t *testing.T) {
	app, _ := newTestApp(t, http.NotFoundHandler())
	if !strings.Contains(app.View(), "guest") {
		t.Error("status bar missing guest marker")
	}
}
