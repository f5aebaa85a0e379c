//go:build unix

package core

import (
	"os"

	"golang.org/x/sys/unix"
)

// GetTerminalCols returns the number of columns in the terminal, or 0 if
// unavailable.
func GetTerminalCols() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}
