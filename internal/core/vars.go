package core

import (
	"os"
	"runtime/debug"

	"golang.org/x/term"
)

var (
	IsStdinTerm  bool
	IsStderrTerm bool
	IsStdoutTerm bool

	UserAgent string
	Version   string
)

func init() {
	// Determine if stdin, stderr and stdout are TTYs.
	IsStdinTerm = term.IsTerminal(int(os.Stdin.Fd()))
	IsStderrTerm = term.IsTerminal(int(os.Stderr.Fd()))
	IsStdoutTerm = term.IsTerminal(int(os.Stdout.Fd()))

	// Set executable version and user-agent.
	Version = getVersion()
	UserAgent = "huh/" + Version
}

// getVersion attempts to read the executable's BuildInfo, returning the version.
func getVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "v(dev)"
	}
	return info.Main.Version
}
