// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrServerOffline wraps transport-level failures: the request never
	// reached the backend. Callers show the generic offline notice
	// instead of a backend message.
	ErrServerOffline = errors.New("server unreachable")

	// ErrAuthFailed is the unwrap target for 401 responses so callers
	// can drop a stale session with errors.Is.
	ErrAuthFailed = errors.New("authentication failed")
)

// OfflineMessage is the user-facing text for ErrServerOffline.
const OfflineMessage = "Network error or server is offline"

// APIError is a non-2xx backend response. Detail carries the backend's
// `detail` message verbatim when it sent one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend error (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend error (HTTP %d)", e.Status)
}

// Unwrap lets errors.Is(err, ErrAuthFailed) match 401s.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrAuthFailed
	}
	return nil
}

// detailBody is the backend's error envelope.
type detailBody struct {
	Detail string `json:"detail"`
}

// errorFromResponse converts a non-2xx response into an *APIError,
// pulling the detail message out of the body when parseable.
func errorFromResponse(status int, body []byte) error {
	var db detailBody
	if err := json.Unmarshal(body, &db); err == nil && db.Detail != "" {
		return &APIError{Status: status, Detail: db.Detail}
	}
	return &APIError{Status: status}
}

// UserMessage maps any gateway error to the text shown in a toast.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrServerOffline) {
		return OfflineMessage
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Something went wrong. Please try again."
}
