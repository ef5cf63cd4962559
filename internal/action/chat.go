// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package action

import (
	"context"
	"strings"

	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/model"
)

// StartChat appends the user's message to the transcript tentatively,
// before the call resolves, and returns the transcript snapshot to send.
// The optimistic append is what keeps the chat feeling immediate; the
// matching Finish confirms or corrects it.
func (c *Controller) StartChat(message string) ([]model.ChatTurn, error) {
	if strings.TrimSpace(message) == "" {
		return nil, &ValidationError{Field: "message", Message: "Please type a message"}
	}
	if err := c.begin(KindChat); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Chat = append(c.view.Chat, model.NewChatTurn(model.RoleUser, message))
	return c.view.snapshotChat(), nil
}

// FinishChat appends the assistant's reply. On any failure an
// error-text assistant turn lands instead, so the transcript always
// alternates and never silently drops a turn. A new code suggestion
// overwrites any unapplied prior one.
func (c *Controller) FinishChat(reply *model.ChatReply, err error) Notice {
	if err == nil && reply != nil && !reply.Success {
		err = &api.APIError{Status: 200, Detail: reply.Reply}
	}
	if err != nil {
		c.mu.Lock()
		c.view.Chat = append(c.view.Chat, model.NewChatTurn(
			model.RoleAssistant,
			"Sorry, I ran into a problem: "+api.UserMessage(err),
		))
		c.mu.Unlock()
		c.settle(KindChat, false)
		return failNotice(KindChat, err)
	}

	c.mu.Lock()
	c.view.Chat = append(c.view.Chat, model.NewChatTurn(model.RoleAssistant, reply.Reply))
	if reply.NewCode != "" {
		c.view.PendingSuggestion = reply.NewCode
		c.view.HasSuggestion = true
	}
	c.mu.Unlock()
	c.settle(KindChat, true)
	return Notice{}
}

// Chat runs one chat turn synchronously.
func (c *Controller) Chat(ctx context.Context, message, code, language string) (Notice, error) {
	transcript, err := c.StartChat(message)
	if err != nil {
		return Notice{}, err
	}
	reply, err := c.client.Chat(ctx, c.Session().Token, api.ChatRequest{
		Messages: transcript,
		Code:     code,
		Language: language,
	})
	return c.FinishChat(reply, err), err
}

// ApplySuggestion hands back the pending suggested code for the editor
// and clears the pending flag. A second call without a new suggestion
// is a no-op.
func (c *Controller) ApplySuggestion() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.view.HasSuggestion {
		return "", false
	}
	code := c.view.PendingSuggestion
	c.view.PendingSuggestion = ""
	c.view.HasSuggestion = false
	return code, true
}
