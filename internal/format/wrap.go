package format

import (
	"fmt"
	"strings"

	"github.com/ryanfowler/huh/internal/core"
)

// DefaultMaxWidth is the wrap width used when the terminal width is unknown
// or wider than we want prose to run.
const DefaultMaxWidth = 100

// InvalidWrapConfigError is returned by Wrap when the requested indent does
// not leave any room within the maximum line width.
type InvalidWrapConfigError struct {
	MaxWidth int
	Indent   int
}

func (err InvalidWrapConfigError) Error() string {
	return fmt.Sprintf("wrap indent %d must be non-negative and less than max width %d",
		err.Indent, err.MaxWidth)
}

func (err InvalidWrapConfigError) PrintTo(p *core.Printer) {
	p.WriteString(err.Error())
}

// Wrap reflows text to at most maxWidth visible columns, prefixing every line
// after the first with indent spaces. Words are never split: a single word
// longer than the width budget is emitted unshortened on its own line.
// Escape sequences do not count toward the width.
func Wrap(text string, maxWidth, indent int) (string, error) {
	if indent < 0 || indent >= maxWidth {
		return "", InvalidWrapConfigError{MaxWidth: maxWidth, Indent: indent}
	}

	budget := maxWidth - indent

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(text) {
		w := VisibleWidth(word)

		switch {
		case current.Len() == 0:
			current.WriteString(word)
			currentWidth = w
		case currentWidth+1+w <= budget:
			current.WriteByte(' ')
			current.WriteString(word)
			currentWidth += 1 + w
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = w
		}
	}
	lines = append(lines, current.String())

	if len(lines) == 1 {
		return lines[0], nil
	}

	sep := "\n" + strings.Repeat(" ", indent)
	return strings.Join(lines, sep), nil
}
