// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// code_cmd.go - analyze, rewrite, run, chat.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/recodex/recodex-tui/internal/action"
	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/config"
	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/render"
	"github.com/recodex/recodex-tui/internal/ui/styles"
)

const outputWidth = 100

// maxCodeSize bounds what we read from files and stdin.
const maxCodeSize = 1 << 20 // 1MB

// readCode loads the code to submit: --file flag, positional file
// argument, or stdin.
func readCode(parser *ArgParser) (string, error) {
	path := parser.Flag("file")
	if path == "" && len(parser.Positional()) > 0 {
		path = parser.Positional()[0]
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read code: %w", err)
		}
		if len(data) > maxCodeSize {
			return "", fmt.Errorf("read code: %s exceeds %d bytes", path, maxCodeSize)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(io.LimitReader(os.Stdin, maxCodeSize))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("no code given: pass a file or pipe code on stdin")
	}
	return string(data), nil
}

// resolveLanguage picks the language: flag, file extension, config
// default.
func resolveLanguage(parser *ArgParser, cfg *config.Config) string {
	if lang := parser.Flag("lang"); lang != "" {
		return lang
	}

	path := parser.Flag("file")
	if path == "" && len(parser.Positional()) > 0 {
		path = parser.Positional()[0]
	}
	if lang := languageFromExtension(path); lang != "" {
		return lang
	}

	return cfg.Editor.DefaultLanguage
}

func languageFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return "python"
	case ".js":
		return "javascript"
	case ".ts":
		return "typescript"
	case ".java":
		return "java"
	case ".c":
		return "c"
	case ".cc", ".cpp", ".cxx":
		return "cpp"
	case ".go":
		return "go"
	case ".rs":
		return "rust"
	default:
		return ""
	}
}

// HandleAnalyze submits code for analysis and prints the findings.
func HandleAnalyze(ctx context.Context, ctrl *action.Controller, cfg *config.Config, args []string) error {
	parser := NewArgParser(args)
	code, err := readCode(parser)
	if err != nil {
		return err
	}
	language := resolveLanguage(parser, cfg)

	result, notice, err := ctrl.Analyze(ctx, code, language)
	if err != nil {
		printNotice(notice)
		return err
	}

	if parser.BoolFlag("json") {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Println(render.Analysis(result, outputWidth))
	return nil
}

// HandleRewrite submits code for rewriting and prints the comparison.
func HandleRewrite(ctx context.Context, ctrl *action.Controller, cfg *config.Config, args []string) error {
	parser := NewArgParser(args)
	code, err := readCode(parser)
	if err != nil {
		return err
	}
	language := resolveLanguage(parser, cfg)

	result, notice, err := ctrl.Rewrite(ctx, code, language)
	if err != nil {
		printNotice(notice)
		return err
	}

	if parser.BoolFlag("json") {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Println(render.Comparison(result, language, outputWidth))
	return nil
}

// HandleRun executes code on the backend sandbox. A program that failed
// is still a successful run; the exit status reflects the program.
func HandleRun(ctx context.Context, ctrl *action.Controller, cfg *config.Config, args []string) error {
	parser := NewArgParser(args)
	code, err := readCode(parser)
	if err != nil {
		return err
	}
	language := resolveLanguage(parser, cfg)

	result, notice, err := ctrl.Run(ctx, code, language)
	if err != nil {
		printNotice(notice)
		return err
	}

	if parser.BoolFlag("json") {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Println(render.Console(result))
	if result.Error != "" {
		os.Exit(1)
	}
	return nil
}

// HandleChat sends a one-shot chat message about a piece of code.
func HandleChat(ctx context.Context, ctrl *action.Controller, cfg *config.Config, args []string) error {
	parser := NewArgParser(args)
	positional := parser.Positional()
	if len(positional) == 0 {
		return errors.New("usage: recodex chat \"message\" [--file code.py]")
	}
	message := strings.Join(positional, " ")

	var code string
	if parser.Flag("file") != "" {
		var err error
		code, err = readCode(parser)
		if err != nil {
			return err
		}
	}
	turns, err := ctrl.StartChat(message)
	if err != nil {
		return err
	}
	language := resolveLanguage(parser, cfg)

	reply, chatErr := ctrl.Client().Chat(ctx, ctrl.Session().Token, chatRequest(turns, code, language))
	notice := ctrl.FinishChat(reply, chatErr)
	if chatErr != nil {
		printNotice(notice)
		return chatErr
	}

	fmt.Println(render.Markdown(reply.Reply))
	if reply.NewCode != "" {
		fmt.Println()
		fmt.Println(styles.RenderInfo("Suggested code:"))
		fmt.Println(render.CodeBlock(reply.NewCode, language, outputWidth))
	}
	return nil
}

func chatRequest(turns []model.ChatTurn, code, language string) api.ChatRequest {
	return api.ChatRequest{Messages: turns, Code: code, Language: language}
}
