package history

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Shell identifies the shell whose history should be read.
type Shell string

const (
	ShellUnknown Shell = "unknown"
	ShellZsh     Shell = "zsh"
	ShellBash    Shell = "bash"
	ShellFish    Shell = "fish"
)

// ParseShell converts a user-provided shell name to a Shell.
func ParseShell(s string) (Shell, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zsh":
		return ShellZsh, true
	case "bash":
		return ShellBash, true
	case "fish":
		return ShellFish, true
	default:
		return ShellUnknown, false
	}
}

// DetectShell determines the shell this process is running under: shell
// version environment variables first, then the parent process name, then
// the SHELL environment variable.
func DetectShell() Shell {
	if os.Getenv("ZSH_VERSION") != "" {
		return ShellZsh
	}
	if os.Getenv("BASH_VERSION") != "" {
		return ShellBash
	}

	if shell, ok := parentProcessShell(); ok {
		return shell
	}

	// SHELL is the login shell, not necessarily the current one.
	if shell, ok := shellFromName(os.Getenv("SHELL")); ok {
		return shell
	}
	return ShellUnknown
}

func parentProcessShell() (Shell, bool) {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ShellUnknown, false
	}
	out, err := exec.Command("ps", "-p", strconv.Itoa(ppid), "-o", "comm=").Output()
	if err != nil {
		return ShellUnknown, false
	}
	return shellFromName(strings.TrimSpace(string(out)))
}

func shellFromName(name string) (Shell, bool) {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "zsh"):
		return ShellZsh, true
	case strings.Contains(name, "bash"):
		return ShellBash, true
	case strings.Contains(name, "fish"):
		return ShellFish, true
	default:
		return ShellUnknown, false
	}
}
