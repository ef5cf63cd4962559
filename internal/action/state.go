// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package action sequences every user-initiated operation through
// validation, the backend call, and result application. Each operation
// kind runs its own Idle -> Pending -> Succeeded/Failed -> Idle machine;
// different kinds may overlap, the same kind may not.
package action

import (
	"errors"
	"fmt"
)

// Kind identifies one user-initiated operation type.
type Kind int

const (
	KindLogin Kind = iota
	KindRegister
	KindAnalyze
	KindRewrite
	KindChat
	KindHistoryFetch
	KindHistoryClear
	KindProfileUpdate
	KindAccountDelete
	KindRun
)

// String returns the operation name used in notices and logs.
func (k Kind) String() string {
	switch k {
	case KindLogin:
		return "login"
	case KindRegister:
		return "register"
	case KindAnalyze:
		return "analyze"
	case KindRewrite:
		return "rewrite"
	case KindChat:
		return "chat"
	case KindHistoryFetch:
		return "history fetch"
	case KindHistoryClear:
		return "history clear"
	case KindProfileUpdate:
		return "profile update"
	case KindAccountDelete:
		return "account delete"
	case KindRun:
		return "run"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Privileged reports whether the kind requires an authenticated
// session. This is a UX shortcut: the backend enforces auth on its own.
func (k Kind) Privileged() bool {
	switch k {
	case KindAnalyze, KindRewrite, KindHistoryFetch, KindHistoryClear,
		KindProfileUpdate, KindAccountDelete:
		return true
	}
	return false
}

// State is the lifecycle position of one operation kind.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrBusy means an operation of the same kind is still in flight.
	// The triggering control stays disabled while Pending, so hitting
	// this is a double-submit race the caller should swallow.
	ErrBusy = errors.New("operation already in progress")

	// ErrGuest means a privileged operation was attempted without a
	// session. The caller redirects to the auth view instead of
	// issuing a request that would fail server-side.
	ErrGuest = errors.New("authentication required")
)

// ValidationError is a local input rejection, surfaced before any
// network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// transition is the single authoritative state-transition path. Any
// move it does not list is a programming error.
func transition(from, to State) error {
	switch {
	case from == StateIdle && to == StatePending:
	case from == StatePending && (to == StateSucceeded || to == StateFailed):
	case (from == StateSucceeded || from == StateFailed) && to == StateIdle:
	default:
		return fmt.Errorf("illegal transition %s -> %s", from, to)
	}
	return nil
}
