package format

import (
	"regexp"
	"strings"
)

var (
	collapseNewlinesRe = regexp.MustCompile(`\n{3,}`)
	numberedListRe     = regexp.MustCompile(`^(\d+\.\s+)(.*)$`)
	nextStepsRe        = regexp.MustCompile(`(?i)next steps:`)

	// Bold must be substituted before italic so that "**bold**" is not
	// mis-parsed as two italic markers. The italic pattern requires
	// non-whitespace immediately inside the delimiters to avoid false
	// positives on stray asterisks.
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*|__(.*?)__`)
	italicRe  = regexp.MustCompile(`\*([^*\s][^*]*[^*\s])\*|_([^_\s][^_]*[^_\s])_`)
	codeRe    = regexp.MustCompile("`([^`]+)`")
	headingRe = regexp.MustCompile(`^#+\s*(.*)$`)
)

// RenderMarkdown transforms Markdown-ish text into ANSI-decorated terminal
// output: headings, bold/italic emphasis, inline code spans, numbered lists
// with continuation-line indentation, a "Next Steps" section, and fenced code
// blocks. Prose is wrapped to maxWidth visible columns.
//
// This is a single forward pass over lines with two states (normal and
// in-code-block) plus scalar list context, not a Markdown parser.
func RenderMarkdown(text string, maxWidth int) string {
	if maxWidth <= 1 {
		maxWidth = DefaultMaxWidth
	}

	// Collapse runs of 3+ newlines to a single blank line before the
	// per-line pass.
	text = collapseNewlinesRe.ReplaceAllString(text, "\n\n")

	var out []string

	listIndent := 0
	inNextSteps := false

	inCodeBlock := false
	var codeLang string
	var codeLines []string

	for line := range strings.SplitSeq(text, "\n") {
		if strings.HasPrefix(line, "```") {
			if inCodeBlock {
				inCodeBlock = false
				if strings.TrimSpace(strings.Join(codeLines, "\n")) != "" {
					out = append(out, HighlightBlock(codeLines, codeLang)...)
				}
				codeLines = nil
			} else {
				inCodeBlock = true
				codeLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				if codeLang == "" {
					codeLang = "text"
				}
			}
			continue
		}

		if inCodeBlock {
			codeLines = append(codeLines, line)
			continue
		}

		indent := 0
		continuation := false

		switch {
		case nextStepsRe.MatchString(line):
			inNextSteps = true
			listIndent = 0
		case numberedListRe.MatchString(line):
			m := numberedListRe.FindStringSubmatch(line)
			listIndent = len(m[1])
			if inNextSteps {
				listIndent += 4
			}
			indent = listIndent
		case listIndent > 0 && strings.TrimSpace(line) != "":
			indent = listIndent
			continuation = true
		default:
			// Note: the list indent only resets on a non-empty
			// unindented line or at a new list item; blank lines
			// inside a list keep the context alive.
			if strings.TrimSpace(line) != "" {
				listIndent = 0
				inNextSteps = false
			}
		}
		if indent >= maxWidth {
			indent = maxWidth - 1
		}

		line = boldRe.ReplaceAllString(line, Bold+"${1}${2}"+Reset)
		line = italicRe.ReplaceAllString(line, Italic+"${1}${2}"+Reset)
		line = codeRe.ReplaceAllString(line, Cyan+"${1}"+Reset)

		if m := headingRe.FindStringSubmatch(line); m != nil {
			wrapped, err := Wrap(m[1], maxWidth, 0)
			if err != nil {
				wrapped = m[1]
			}
			out = append(out, "", Bold+wrapped+Reset, "")
			continue
		}

		wrapped, err := Wrap(line, maxWidth, indent)
		if err != nil {
			wrapped = line
		}
		if continuation {
			wrapped = strings.Repeat(" ", indent) + wrapped
		}
		out = append(out, wrapped)
	}

	return strings.Join(out, "\n")
}
