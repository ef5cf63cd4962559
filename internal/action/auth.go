// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package action

import (
	"context"
	"strings"

	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/model"
)

// MinPasswordLen matches the backend's registration rule; checking it
// locally saves a round trip.
const MinPasswordLen = 6

// DeleteConfirmPhrase is the exact text the user must type before the
// account-delete request is issued. Deliberate friction, not a backend
// contract.
const DeleteConfirmPhrase = "DELETE"

// =============================================================================
// LOGIN
// =============================================================================

// StartLogin validates the form and marks the login in flight.
func (c *Controller) StartLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: "Please enter your email"}
	}
	if password == "" {
		return &ValidationError{Field: "password", Message: "Please enter your password"}
	}
	return c.begin(KindLogin)
}

// FinishLogin persists the session on success. Token and user land
// together or not at all.
func (c *Controller) FinishLogin(resp *api.AuthResponse, err error) Notice {
	if err != nil {
		c.settle(KindLogin, false)
		return failNotice(KindLogin, err)
	}
	if storeErr := c.sessions.Set(resp.AccessToken, resp.User); storeErr != nil {
		c.settle(KindLogin, false)
		return errorNotice("Login failed", "Could not save your session: "+storeErr.Error())
	}
	c.settle(KindLogin, true)
	return successNotice("Welcome back", "Signed in as "+resp.User.Name)
}

// Login runs the whole login flow synchronously. The CLI path.
func (c *Controller) Login(ctx context.Context, email, password string) (Notice, error) {
	if err := c.StartLogin(email, password); err != nil {
		return Notice{}, err
	}
	resp, err := c.client.Login(ctx, api.Credentials{Email: email, Password: password})
	return c.FinishLogin(resp, err), err
}

// =============================================================================
// REGISTER
// =============================================================================

// StartRegister validates the signup form locally before any call.
func (c *Controller) StartRegister(name, email, password, confirm string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter your name"}
	}
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: "Please enter your email"}
	}
	if len(password) < MinPasswordLen {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	if password != confirm {
		return &ValidationError{Field: "confirm", Message: "Passwords do not match"}
	}
	return c.begin(KindRegister)
}

// FinishRegister persists the new session; registration signs the user
// in directly.
func (c *Controller) FinishRegister(resp *api.AuthResponse, err error) Notice {
	if err != nil {
		c.settle(KindRegister, false)
		return failNotice(KindRegister, err)
	}
	if storeErr := c.sessions.Set(resp.AccessToken, resp.User); storeErr != nil {
		c.settle(KindRegister, false)
		return errorNotice("Register failed", "Could not save your session: "+storeErr.Error())
	}
	c.settle(KindRegister, true)
	return successNotice("Welcome to ReCodeX", "Account created for "+resp.User.Email)
}

// Register runs the whole signup flow synchronously.
func (c *Controller) Register(ctx context.Context, name, email, password, confirm string) (Notice, error) {
	if err := c.StartRegister(name, email, password, confirm); err != nil {
		return Notice{}, err
	}
	resp, err := c.client.Register(ctx, api.Registration{Name: name, Email: email, Password: password})
	return c.FinishRegister(resp, err), err
}

// =============================================================================
// PROFILE
// =============================================================================

// StartProfileUpdate validates the new display name.
func (c *Controller) StartProfileUpdate(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter a name"}
	}
	return c.begin(KindProfileUpdate)
}

// FinishProfileUpdate re-persists the session with the updated user so
// the new name survives a restart.
func (c *Controller) FinishProfileUpdate(user *model.User, err error) Notice {
	if err != nil {
		c.settle(KindProfileUpdate, false)
		return failNotice(KindProfileUpdate, err)
	}
	sess := c.Session()
	if storeErr := c.sessions.Set(sess.Token, *user); storeErr != nil {
		c.settle(KindProfileUpdate, false)
		return errorNotice("Profile update failed", "Could not save your session: "+storeErr.Error())
	}
	c.settle(KindProfileUpdate, true)
	return successNotice("Profile updated", "You are now "+user.Name)
}

// UpdateProfile runs the whole profile update synchronously.
func (c *Controller) UpdateProfile(ctx context.Context, name string) (Notice, error) {
	if err := c.StartProfileUpdate(name); err != nil {
		return Notice{}, err
	}
	user, err := c.client.UpdateProfile(ctx, c.Session().Token, strings.TrimSpace(name))
	return c.FinishProfileUpdate(user, err), err
}

// =============================================================================
// ACCOUNT DELETION
// =============================================================================

// StartAccountDelete requires the typed confirmation phrase to match
// exactly. The first "are you sure" confirmation lives in the UI; this
// is the second, stronger one.
func (c *Controller) StartAccountDelete(confirmPhrase string) error {
	if confirmPhrase != DeleteConfirmPhrase {
		return &ValidationError{Field: "confirm", Message: `Type "DELETE" to confirm`}
	}
	return c.begin(KindAccountDelete)
}

// FinishAccountDelete clears all local state after the backend confirms
// the deletion.
func (c *Controller) FinishAccountDelete(err error) Notice {
	if err != nil {
		c.settle(KindAccountDelete, false)
		return failNotice(KindAccountDelete, err)
	}
	if storeErr := c.sessions.Clear(); storeErr != nil {
		c.settle(KindAccountDelete, false)
		return errorNotice("Account delete failed", "Could not clear your session: "+storeErr.Error())
	}
	c.mu.Lock()
	c.view = ViewState{}
	c.mu.Unlock()
	if c.cache != nil {
		_ = c.cache.Clear()
	}
	c.settle(KindAccountDelete, true)
	return successNotice("Account deleted", "Your account and data are gone.")
}

// DeleteAccount runs the whole deletion synchronously.
func (c *Controller) DeleteAccount(ctx context.Context, confirmPhrase string) (Notice, error) {
	if err := c.StartAccountDelete(confirmPhrase); err != nil {
		return Notice{}, err
	}
	err := c.client.DeleteAccount(ctx, c.Session().Token)
	return c.FinishAccountDelete(err), err
}
