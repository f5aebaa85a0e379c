//go:build windows

package core

import (
	"os"

	"golang.org/x/term"
)

// GetTerminalCols returns the number of columns in the terminal, or 0 if
// unavailable.
func GetTerminalCols() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return cols
}
