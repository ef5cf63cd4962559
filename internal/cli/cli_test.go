// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func TestParseCommands(t *testing.T) {
	tests := []struct {
		args []string
		want Command
	}{
		{nil, CmdTUI},
		{[]string{"login"}, CmdLogin},
		{[]string{"register"}, CmdRegister},
		{[]string{"signup"}, CmdRegister},
		{[]string{"logout"}, CmdLogout},
		{[]string{"analyze", "main.py"}, CmdAnalyze},
		{[]string{"a"}, CmdAnalyze},
		{[]string{"rewrite"}, CmdRewrite},
		{[]string{"run"}, CmdRun},
		{[]string{"chat", "hello"}, CmdChat},
		{[]string{"history"}, CmdHistory},
		{[]string{"profile", "Ada"}, CmdProfile},
		{[]string{"delete-account"}, CmdDeleteAccount},
		{[]string{"config", "show"}, CmdConfig},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"bogus"}, CmdHelp},
	}

	for _, tt := range tests {
		os.Args = append([]string{"recodex"}, tt.args...)
		cmd, _ := Parse()
		if cmd != tt.want {
			t.Errorf("Parse(%v) = %v, want %v", tt.args, cmd, tt.want)
		}
	}
}

func TestParsePassesRemainingArgs(t *testing.T) {
	os.Args = []string{"recodex", "analyze", "main.py", "--lang", "python"}
	cmd, rest := Parse()
	if cmd != CmdAnalyze {
		t.Fatalf("cmd = %v, want CmdAnalyze", cmd)
	}
	if len(rest) != 3 || rest[0] != "main.py" {
		t.Errorf("rest = %v", rest)
	}
}

func TestArgParserFlags(t *testing.T) {
	p := NewArgParser([]string{"clear", "--lang", "python", "--file=main.py", "--json"})

	if p.Subcommand() != "clear" {
		t.Errorf("Subcommand = %q, want clear", p.Subcommand())
	}
	if p.Flag("lang") != "python" {
		t.Errorf("lang = %q", p.Flag("lang"))
	}
	if p.Flag("file") != "main.py" {
		t.Errorf("file = %q", p.Flag("file"))
	}
	if !p.BoolFlag("json") {
		t.Error("json flag not detected")
	}
	if p.BoolFlag("confirm") {
		t.Error("absent bool flag reported true")
	}
}

func TestArgParserPositionalOrder(t *testing.T) {
	p := NewArgParser([]string{"set", "api.base_url", "http://localhost:9000"})

	positional := p.Positional()
	if len(positional) != 3 {
		t.Fatalf("got %d positional args, want 3", len(positional))
	}
	if positional[2] != "http://localhost:9000" {
		t.Errorf("positional[2] = %q", positional[2])
	}
}

func TestLanguageFromExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.py", "python"},
		{"src/app.ts", "typescript"},
		{"thing.cpp", "cpp"},
		{"lib.rs", "rust"},
		{"README.md", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := languageFromExtension(tt.path); got != tt.want {
			t.Errorf("languageFromExtension(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
