package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ANSI escape sequences used by the rendering pipeline. These are emitted
// directly into rendered strings; color on/off policy for surrounding
// messages is handled by core.Printer.
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Italic = "\x1b[3m"
	Red    = "\x1b[31m"
	Yellow = "\x1b[33m"
	Blue   = "\x1b[34m"
	Cyan   = "\x1b[36m"
)

// StripANSI removes all terminated ANSI CSI sequences ("ESC [ ... letter")
// from s. An unterminated sequence is left in place as ordinary characters.
func StripANSI(s string) string {
	// Fast path: no escape byte at all.
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '\x1b' || i+1 >= len(s) || s[i+1] != '[' {
			b.WriteByte(s[i])
			i++
			continue
		}

		// Scan past parameter and intermediate bytes (0x20-0x3f)
		// looking for a final byte (0x40-0x7e).
		j := i + 2
		for j < len(s) && s[j] >= 0x20 && s[j] <= 0x3f {
			j++
		}
		if j < len(s) && s[j] >= 0x40 && s[j] <= 0x7e {
			// Terminated sequence: skip it entirely.
			i = j + 1
			continue
		}

		// Unterminated: keep the introducer as literal characters.
		b.WriteByte(s[i])
		i++
	}

	return b.String()
}

// VisibleWidth returns the number of terminal columns s occupies once all
// ANSI escape sequences are removed.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
