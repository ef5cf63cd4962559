// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth_cmd.go - login, register, logout, profile, delete-account.
package cli

import (
	"context"
	"fmt"

	"github.com/recodex/recodex-tui/internal/action"
	"github.com/recodex/recodex-tui/internal/session"
	"github.com/recodex/recodex-tui/internal/ui/styles"
)

// printNotice renders an operation outcome on the terminal.
func printNotice(n action.Notice) {
	text := n.Title
	if n.Message != "" {
		text += ": " + n.Message
	}

	switch n.Kind {
	case action.NoticeSuccess:
		fmt.Println(styles.RenderSuccess(text))
	case action.NoticeError:
		fmt.Println(styles.RenderError(text))
	case action.NoticeWarning:
		fmt.Println(styles.RenderWarning(text))
	default:
		fmt.Println(styles.RenderInfo(text))
	}
}

// HandleLogin signs in interactively. A register run that just finished
// prefills the email prompt.
func HandleLogin(ctx context.Context, ctrl *action.Controller, store *session.Store) error {
	if ctrl.Session().Authenticated() {
		fmt.Println(styles.RenderInfo("Already signed in as " + ctrl.Session().User.Email))
		return nil
	}

	prefill, _ := store.TakePendingEmail()
	email, err := promptLine("Email", prefill)
	if err != nil {
		return err
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	notice, err := ctrl.Login(ctx, email, password)
	printNotice(notice)
	return err
}

// HandleRegister creates an account interactively and signs in.
func HandleRegister(ctx context.Context, ctrl *action.Controller) error {
	name, err := promptLine("Name", "")
	if err != nil {
		return err
	}
	email, err := promptLine("Email", "")
	if err != nil {
		return err
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}
	confirmPass, err := promptPassword("Confirm password")
	if err != nil {
		return err
	}

	notice, err := ctrl.Register(ctx, name, email, password, confirmPass)
	printNotice(notice)
	return err
}

// HandleLogout clears the local session. The email sticks around to
// prefill the next login.
func HandleLogout(ctrl *action.Controller, store *session.Store) error {
	sess := ctrl.Session()
	if sess.IsGuest {
		fmt.Println(styles.RenderInfo("Not signed in."))
		return nil
	}

	email := sess.User.Email
	notice, err := ctrl.Logout()
	if err != nil {
		return err
	}
	_ = store.SetPendingEmail(email)
	printNotice(notice)
	return nil
}

// HandleProfile changes the display name.
func HandleProfile(ctx context.Context, ctrl *action.Controller, args []string) error {
	sess := ctrl.Session()
	if sess.IsGuest {
		fmt.Println(styles.RenderWarning("Not signed in."))
		return nil
	}

	parser := NewArgParser(args)
	name := parser.Subcommand()
	if name == "" {
		var err error
		name, err = promptLine("New display name", sess.User.Name)
		if err != nil {
			return err
		}
	}

	notice, err := ctrl.UpdateProfile(ctx, name)
	printNotice(notice)
	return err
}

// HandleDeleteAccount permanently deletes the account after the typed
// confirmation phrase.
func HandleDeleteAccount(ctx context.Context, ctrl *action.Controller) error {
	sess := ctrl.Session()
	if sess.IsGuest {
		fmt.Println(styles.RenderWarning("Not signed in."))
		return nil
	}

	fmt.Println(styles.RenderWarning("This permanently deletes the account " + sess.User.Email + " and all its history."))
	phrase, err := promptLine("Type "+action.DeleteConfirmPhrase+" to confirm", "")
	if err != nil {
		return err
	}

	notice, err := ctrl.DeleteAccount(ctx, phrase)
	printNotice(notice)
	return err
}
