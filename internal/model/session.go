// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures exchanged with the ReCodeX
// backend and held in client state.
package model

import "time"

// User is the profile the backend returns on login, register, and
// profile update.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Session is the client-held authentication state. IsGuest is true
// exactly when no token is held; a token always comes with a user.
type Session struct {
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	IsGuest bool   `json:"-"`
}

// Guest returns the unauthenticated session.
func Guest() Session {
	return Session{IsGuest: true}
}

// Authenticated reports whether the session carries a usable token.
func (s Session) Authenticated() bool {
	return !s.IsGuest && s.Token != ""
}
