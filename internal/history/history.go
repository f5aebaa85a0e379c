// Package history reads recent commands from the invoking shell's history
// file.
package history

import (
	"os"
	"path/filepath"
	"strings"
)

// Entry is a single command from shell history, optionally paired with its
// captured output.
type Entry struct {
	Command string `json:"command"`
	Output  string `json:"output"`
}

// NoHistoryError is returned when no readable history file yields any
// commands.
type NoHistoryError struct {
	Shell Shell
}

func (err NoHistoryError) Error() string {
	if err.Shell == ShellBash {
		return "could not read bash history; bash does not write to its history file immediately. " +
			`Add 'PROMPT_COMMAND="history -a"' to your ~/.bashrc to write history after each command`
	}
	return "could not read any history files"
}

// LastCommands returns up to n of the most recent commands from the given
// shell's history, oldest first. Invocations of this tool itself and history
// commands are skipped. Pass ShellUnknown to try all known locations.
func LastCommands(shell Shell, n int) ([]Entry, error) {
	for _, path := range findHistoryFiles(shell) {
		entries, err := readHistoryFile(path, n)
		if err == nil && len(entries) > 0 {
			return entries, nil
		}
	}
	return nil, NoHistoryError{Shell: shell}
}

// findHistoryFiles returns candidate history files in priority order: the
// HISTFILE environment variable first, then the detected shell's default
// location, then the other shells' defaults. Only existing files are
// returned.
func findHistoryFiles(shell Shell) []string {
	var files []string
	if histfile := os.Getenv("HISTFILE"); histfile != "" {
		files = append(files, histfile)
	}

	if home, err := os.UserHomeDir(); err == nil {
		bash := filepath.Join(home, ".bash_history")
		zsh := filepath.Join(home, ".zsh_history")
		sh := filepath.Join(home, ".history")
		fish := filepath.Join(home, ".local", "share", "fish", "fish_history")

		switch shell {
		case ShellZsh:
			files = append(files, zsh, bash, sh, fish)
		case ShellBash:
			files = append(files, bash, sh, zsh, fish)
		case ShellFish:
			files = append(files, fish, bash, zsh, sh)
		default:
			files = append(files, bash, zsh, sh, fish)
		}
	}

	seen := make(map[string]struct{}, len(files))
	var out []string
	for _, f := range files {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		if _, err := os.Stat(f); err == nil {
			out = append(out, f)
		}
	}
	return out
}

func readHistoryFile(path string, n int) ([]Entry, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := strings.ToValidUTF8(string(buf), "�")

	switch {
	case strings.Contains(content, ": ") && strings.Contains(content, ";"):
		return parseZshHistory(content, n), nil
	case strings.Contains(content, "- cmd: "):
		return parseFishHistory(content, n), nil
	default:
		return parseBashHistory(content, n), nil
	}
}

// parseZshHistory handles the extended format ": <timestamp>:<duration>;<cmd>".
func parseZshHistory(content string, n int) []Entry {
	return parseReverse(content, n, func(line string) (string, bool) {
		if !strings.HasPrefix(line, ": ") {
			return "", false
		}
		_, cmd, ok := strings.Cut(line, ";")
		if !ok {
			return "", false
		}
		return strings.TrimSpace(cmd), true
	})
}

func parseBashHistory(content string, n int) []Entry {
	return parseReverse(content, n, func(line string) (string, bool) {
		return strings.TrimSpace(line), true
	})
}

// parseFishHistory extracts the "- cmd: " lines from fish's YAML-ish history.
func parseFishHistory(content string, n int) []Entry {
	return parseReverse(content, n, func(line string) (string, bool) {
		cmd, ok := strings.CutPrefix(line, "- cmd: ")
		if !ok {
			return "", false
		}
		return strings.TrimSpace(cmd), true
	})
}

// parseReverse walks lines newest-first, extracting commands with extract and
// skipping filtered ones, then returns up to n entries oldest-first.
func parseReverse(content string, n int, extract func(string) (string, bool)) []Entry {
	lines := strings.Split(content, "\n")

	var entries []Entry
	for i := len(lines) - 1; i >= 0 && len(entries) < n; i-- {
		cmd, ok := extract(lines[i])
		if !ok || skipCommand(cmd) {
			continue
		}
		entries = append(entries, Entry{Command: cmd})
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// skipCommand filters out empty lines, invocations of this tool, and history
// commands, none of which are useful analysis context.
func skipCommand(cmd string) bool {
	return cmd == "" || cmd == "huh" || cmd == "wut" || strings.HasPrefix(cmd, "history")
}
