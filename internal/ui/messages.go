// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the interactive terminal interface.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/model"
)

// =============================================================================
// RESULT MESSAGES
// =============================================================================

// Each pending request resolves to exactly one of these messages. The
// Update loop hands the payload to the matching Finish method, which
// decides what sticks and what gets reported.

type loginDoneMsg struct {
	resp *api.AuthResponse
	err  error
}

type registerDoneMsg struct {
	resp *api.AuthResponse
	err  error
}

type profileDoneMsg struct {
	user *model.User
	err  error
}

type accountDeleteDoneMsg struct {
	err error
}

type analyzeDoneMsg struct {
	result *model.AnalysisResult
	err    error
}

type rewriteDoneMsg struct {
	result *model.RewriteResult
	err    error
}

type runDoneMsg struct {
	result *model.RunResult
	err    error
}

type chatDoneMsg struct {
	reply *model.ChatReply
	err   error
}

type historyFetchedMsg struct {
	resp *api.HistoryResponse
	err  error
}

type historyClearedMsg struct {
	err error
}

// sessionChangedMsg arrives when another process rewrote the session
// file on disk.
type sessionChangedMsg struct {
	session model.Session
}

// =============================================================================
// REQUEST COMMANDS
// =============================================================================

const requestTimeout = 60 * time.Second

func (a *App) loginCmd(email, password string) tea.Cmd {
	client := a.ctrl.Client()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := client.Login(ctx, api.Credentials{Email: email, Password: password})
		return loginDoneMsg{resp: resp, err: err}
	}
}

func (a *App) registerCmd(name, email, password string) tea.Cmd {
	client := a.ctrl.Client()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := client.Register(ctx, api.Registration{Name: name, Email: email, Password: password})
		return registerDoneMsg{resp: resp, err: err}
	}
}

func (a *App) profileCmd(name string) tea.Cmd {
	client := a.ctrl.Client()
	token := a.ctrl.Session().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := client.UpdateProfile(ctx, token, name)
		return profileDoneMsg{user: user, err: err}
	}
}

func (a *App) accountDeleteCmd() tea.Cmd {
	client := a.ctrl.Client()
	token := a.ctrl.Session().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return accountDeleteDoneMsg{err: client.DeleteAccount(ctx, token)}
	}
}

func (a *App) analyzeCmd(code, language string) tea.Cmd {
	client := a.ctrl.Client()
	token := a.ctrl.Session().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := client.Analyze(ctx, token, api.CodeRequest{Code: code, Language: language})
		return analyzeDoneMsg{result: result, err: err}
	}
}

func (a *App) rewriteCmd(code, language string) tea.Cmd {
	client := a.ctrl.Client()
	token := a.ctrl.Session().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := client.Rewrite(ctx, token, api.CodeRequest{Code: code, Language: language})
		return rewriteDoneMsg{result: result, err: err}
	}
}

func (a *App) runCmd(code, language string) tea.Cmd {
	client := a.ctrl.Client()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := client.RunCode(ctx, api.CodeRequest{Code: code, Language: language})
		return runDoneMsg{result: result, err: err}
	}
}

func (a *App) chatCmd(turns []model.ChatTurn, code, language string) tea.Cmd {
	client := a.ctrl.Client()
	token := a.ctrl.Session().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		reply, err := client.Chat(ctx, token, api.ChatRequest{
			Messages: turns,
			Code:     code,
			Language: language,
		})
		return chatDoneMsg{reply: reply, err: err}
	}
}

func (a *App) historyFetchCmd() tea.Cmd {
	client := a.ctrl.Client()
	token := a.ctrl.Session().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := client.FetchHistory(ctx, token)
		return historyFetchedMsg{resp: resp, err: err}
	}
}

func (a *App) historyClearCmd() tea.Cmd {
	client := a.ctrl.Client()
	token := a.ctrl.Session().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return historyClearedMsg{err: client.ClearHistory(ctx, token)}
	}
}

// watchSessionCmd blocks on the session watcher channel and surfaces the
// next externally observed session state.
func watchSessionCmd(ch <-chan model.Session) tea.Cmd {
	return func() tea.Msg {
		session, ok := <-ch
		if !ok {
			return nil
		}
		return sessionChangedMsg{session: session}
	}
}
