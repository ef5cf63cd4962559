// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "github.com/google/uuid"

// Role identifies the speaker of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DisplayName returns the label shown next to a transcript turn.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "ReCodeX"
	default:
		return string(r)
	}
}

// ChatTurn is one entry of the in-memory chat transcript. The transcript
// lives only for the process lifetime and is never persisted.
type ChatTurn struct {
	ID      string `json:"-"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewChatTurn creates a turn with a generated local ID. The ID is client
// bookkeeping only and never crosses the wire.
func NewChatTurn(role Role, content string) ChatTurn {
	return ChatTurn{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}
}

// ChatReply is the backend's answer to one /api/chat call. NewCode, when
// present, carries a suggested revision of the user's code.
type ChatReply struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
	NewCode string `json:"new_code,omitempty"`
}
