// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the application-level bindings. View-local keys (cursor
// movement, typing) stay with their bubbles components.
type keyMap struct {
	Quit          key.Binding
	NextView      key.Binding
	PrevView      key.Binding
	Analyze       key.Binding
	Rewrite       key.Binding
	Run           key.Binding
	FetchHistory  key.Binding
	ClearHistory  key.Binding
	CycleLanguage key.Binding
	ApplyCode     key.Binding
	CopyCode      key.Binding
	Logout        key.Binding
	Dismiss       key.Binding
	Send          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextView: key.NewBinding(
			key.WithKeys("ctrl+right", "f2"),
			key.WithHelp("f2", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("ctrl+left", "f1"),
			key.WithHelp("f1", "prev view"),
		),
		Analyze: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "analyze"),
		),
		Rewrite: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rewrite"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "run"),
		),
		FetchHistory: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "history"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "clear history"),
		),
		CycleLanguage: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "language"),
		),
		ApplyCode: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "apply suggestion"),
		),
		CopyCode: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy code"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "logout"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "dismiss toast"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
	}
}
