// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package action

import (
	"fmt"
	"sync"

	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/session"
	"github.com/recodex/recodex-tui/internal/storage"
)

// Controller is the injectable container coordinating every operation.
// It holds no UI: the TUI drives it from its update loop, the CLI calls
// it synchronously, and tests construct one per case with no shared
// fixtures.
//
// Each operation is two-phase. Start validates input, applies the guest
// guard, and moves the kind to Pending; the caller then performs the
// gateway call (a tea.Cmd in the TUI) and hands the outcome to Finish,
// which applies the result to the view state and produces the Notice to
// show. Finish never touches a slice on failure, so the last good
// result stays visible.
type Controller struct {
	mu       sync.Mutex
	client   *api.Client
	sessions *session.Store
	cache    *storage.HistoryCache
	states   map[Kind]State
	view     ViewState
}

// Option configures a Controller.
type Option func(*Controller)

// WithHistoryCache attaches the offline history mirror.
func WithHistoryCache(cache *storage.HistoryCache) Option {
	return func(c *Controller) {
		c.cache = cache
	}
}

// NewController wires the gateway and session store together.
func NewController(client *api.Client, sessions *session.Store, opts ...Option) *Controller {
	c := &Controller{
		client:   client,
		sessions: sessions,
		states:   make(map[Kind]State),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Client exposes the gateway for the caller performing the network
// phase between Start and Finish.
func (c *Controller) Client() *api.Client {
	return c.client
}

// Session reads the current session from the store.
func (c *Controller) Session() model.Session {
	return c.sessions.Get()
}

// View returns a copy of the view state for rendering.
func (c *Controller) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// StateOf returns the lifecycle position of one operation kind.
func (c *Controller) StateOf(k Kind) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[k]
}

// Busy reports whether an operation of this kind is in flight. The UI
// disables the triggering control while true, which is what keeps two
// calls of the same kind from racing on one slice.
func (c *Controller) Busy(k Kind) bool {
	return c.StateOf(k) == StatePending
}

// begin moves a kind from Idle to Pending after the guest guard.
func (c *Controller) begin(k Kind) error {
	if k.Privileged() && !c.Session().Authenticated() {
		return ErrGuest
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.states[k] == StatePending {
		return ErrBusy
	}
	if err := transition(c.states[k], StatePending); err != nil {
		return err
	}
	c.states[k] = StatePending
	return nil
}

// settle moves a Pending kind through Succeeded/Failed back to Idle.
// The terminal state is momentary: the busy indicator clears and the
// control re-enables as soon as the outcome is known.
func (c *Controller) settle(k Kind, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	terminal := StateFailed
	if ok {
		terminal = StateSucceeded
	}
	if err := transition(c.states[k], terminal); err != nil {
		// Finish without a matching Start; nothing sane to apply.
		return
	}
	c.states[k] = StateIdle
}

// Logout drops the persisted session. Purely local.
func (c *Controller) Logout() (Notice, error) {
	if err := c.sessions.Clear(); err != nil {
		return errorNotice("Logout failed", err.Error()), err
	}
	c.mu.Lock()
	c.view = ViewState{}
	c.mu.Unlock()
	return infoNotice("Logged out", "See you next time."), nil
}

// failNotice builds the standard failure notice for an operation.
func failNotice(k Kind, err error) Notice {
	title := fmt.Sprintf("%s failed", titleCase(k.String()))
	return errorNotice(title, api.UserMessage(err))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
