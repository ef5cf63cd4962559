// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/recodex/recodex-tui/internal/model"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is the success shape of login and register.
type AuthResponse struct {
	AccessToken string     `json:"access_token"`
	User        model.User `json:"user"`
}

// Login exchanges credentials for a token and profile.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns a token and profile.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// profileUpdate is the profile PUT body.
type profileUpdate struct {
	Name string `json:"name"`
}

// UpdateProfile changes the display name and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, token, name string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile", token, profileUpdate{Name: name}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteAccount permanently removes the authenticated account.
func (c *Client) DeleteAccount(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/account", token, nil, nil)
}
