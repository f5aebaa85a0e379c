package format

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle is the fixed dark palette used for all code blocks. The
// chroma style registry is populated at init time and read-only afterwards,
// so concurrent highlighting needs no locking.
var highlightStyle = styles.Get("monokai")

// HighlightBlock renders the lines of one fenced code block as ANSI-escaped
// strings, one output line per input line. Lexical state carries across lines
// within the block (e.g. open multi-line comments). Lines that receive no
// styling are returned unmodified. Highlighting is best-effort: on any
// tokenizer failure the input lines are returned as-is.
func HighlightBlock(lines []string, lang string) []string {
	if len(lines) == 0 {
		return nil
	}

	lexer := ResolveLexer(lang)
	it, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		out := make([]string, len(lines))
		copy(out, lines)
		return out
	}

	// Tokens whose style matches the theme's base text entry are written
	// bare so that plain-text blocks contain no escape codes at all.
	base := highlightStyle.Get(chroma.Text)

	var out []string
	var b strings.Builder
	for _, tok := range it.Tokens() {
		esc := tokenEscape(highlightStyle.Get(tok.Type), base)
		for i, seg := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				out = append(out, b.String())
				b.Reset()
			}
			if seg == "" {
				continue
			}
			if esc == "" {
				b.WriteString(seg)
			} else {
				b.WriteString(esc)
				b.WriteString(seg)
				b.WriteString(Reset)
			}
		}
	}
	out = append(out, b.String())

	// The lexer may normalize a trailing newline; keep the output aligned
	// one-to-one with the input lines.
	for len(out) > len(lines) && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for len(out) < len(lines) {
		out = append(out, lines[len(out)])
	}

	return out
}

// tokenEscape returns the SGR sequence for a style entry, or "" when the
// entry would render identically to unstyled text.
func tokenEscape(entry, base chroma.StyleEntry) string {
	sameColour := !entry.Colour.IsSet() || entry.Colour == base.Colour
	if sameColour && entry.Bold != chroma.Yes && entry.Italic != chroma.Yes && entry.Underline != chroma.Yes {
		return ""
	}

	var parts []string
	if entry.Bold == chroma.Yes {
		parts = append(parts, "1")
	}
	if entry.Italic == chroma.Yes {
		parts = append(parts, "3")
	}
	if entry.Underline == chroma.Yes {
		parts = append(parts, "4")
	}
	if entry.Colour.IsSet() {
		parts = append(parts, fmt.Sprintf("38;2;%d;%d;%d",
			entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}
