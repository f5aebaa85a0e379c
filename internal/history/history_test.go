package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseZshHistory(t *testing.T) {
	content := ": 1751143244:0;git status\n" +
		": 1751143250:0;huh\n" +
		": 1751143260:2;cargo build\n" +
		"not an extended line\n" +
		": 1751143270:0;history | tail\n" +
		": 1751143280:0;ls -la\n"

	entries := parseZshHistory(content, 2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Command != "cargo build" || entries[1].Command != "ls -la" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestParseBashHistory(t *testing.T) {
	content := "git status\n\nwut\nhistory\nmake test\n"
	entries := parseBashHistory(content, 5)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Command != "git status" || entries[1].Command != "make test" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestParseFishHistory(t *testing.T) {
	content := "- cmd: git status\n" +
		"  when: 1751143244\n" +
		"- cmd: huh\n" +
		"  when: 1751143250\n" +
		"- cmd: make build\n" +
		"  when: 1751143260\n"

	entries := parseFishHistory(content, 5)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Command != "git status" || entries[1].Command != "make build" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestParseReverseOrder(t *testing.T) {
	content := "one\ntwo\nthree\nfour\n"
	entries := parseBashHistory(content, 2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// The two most recent commands, oldest first.
	if entries[0].Command != "three" || entries[1].Command != "four" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestReadHistoryFileFormatDetection(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		exp     string
	}{
		{"zsh", ": 1751143244:0;echo zsh\n", "echo zsh"},
		{"fish", "- cmd: echo fish\n  when: 1\n", "echo fish"},
		{"bash", "echo bash\n", "echo bash"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(dir, test.name)
			if err := os.WriteFile(path, []byte(test.content), 0o600); err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			entries, err := readHistoryFile(path, 1)
			if err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			if len(entries) != 1 || entries[0].Command != test.exp {
				t.Fatalf("unexpected entries: %+v", entries)
			}
		})
	}
}

func TestLastCommandsUsesHistfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom_history")
	if err := os.WriteFile(path, []byte("echo one\necho two\n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	t.Setenv("HISTFILE", path)
	t.Setenv("HOME", dir)

	entries, err := LastCommands(ShellUnknown, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if len(entries) != 1 || entries[0].Command != "echo two" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestLastCommandsNoHistory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HISTFILE", "")
	t.Setenv("HOME", dir)

	_, err := LastCommands(ShellZsh, 2)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestFindHistoryFilesPriority(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{".bash_history", ".zsh_history"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("x\n"), 0o600); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
	}
	t.Setenv("HISTFILE", "")
	t.Setenv("HOME", dir)

	files := findHistoryFiles(ShellZsh)
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != ".zsh_history" {
		t.Fatalf("expected zsh history first, got %v", files)
	}
}

func TestParseShell(t *testing.T) {
	tests := []struct {
		in  string
		exp Shell
		ok  bool
	}{
		{"zsh", ShellZsh, true},
		{"Bash", ShellBash, true},
		{" fish ", ShellFish, true},
		{"tcsh", ShellUnknown, false},
		{"", ShellUnknown, false},
	}
	for _, test := range tests {
		shell, ok := ParseShell(test.in)
		if shell != test.exp || ok != test.ok {
			t.Fatalf("ParseShell(%q) = %v, %v", test.in, shell, ok)
		}
	}
}

func TestShellFromName(t *testing.T) {
	tests := []struct {
		in  string
		exp Shell
		ok  bool
	}{
		{"/usr/bin/zsh", ShellZsh, true},
		{"-bash", ShellBash, true},
		{"fish", ShellFish, true},
		{"/bin/sh", ShellUnknown, false},
	}
	for _, test := range tests {
		shell, ok := shellFromName(test.in)
		if shell != test.exp || ok != test.ok {
			t.Fatalf("shellFromName(%q) = %v, %v", test.in, shell, ok)
		}
	}
}
