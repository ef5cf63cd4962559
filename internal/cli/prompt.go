// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prompt.go - Interactive input helpers shared by the auth commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// promptLine reads one line of input with line editing.
func promptLine(label, prefill string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	var value string
	var err error
	if prefill != "" {
		value, err = line.PromptWithSuggestion(label+": ", prefill, len(prefill))
	} else {
		value, err = line.Prompt(label + ": ")
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(value), nil
}

// promptPassword reads a password without echo.
// SECURITY: term.ReadPassword keeps the password off the terminal.
func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

// confirm asks a yes/no question and defaults to no.
func confirm(question string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}

	answer, err := promptLine(question+" [y/N]", "")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
