package huh

import (
	"regexp"
	"strings"

	"github.com/ryanfowler/huh/internal/format"
)

var (
	suggestionCaptureRe = regexp.MustCompile("(?im)^did you mean[:\\s`*]*([^`*\n\r]+?)[`*\\s]*$")
	suggestionLineRe    = regexp.MustCompile("(?im)^did you mean[:\\s`*].*$")
	blankRunsRe         = regexp.MustCompile(`\n{3,}`)

	analysisHeadingRe  = regexp.MustCompile(`(?i)Analysis:`)
	nextStepsHeadingRe = regexp.MustCompile(`(?i)Next Steps:`)
)

// ExtractSuggestion pulls a "Did you mean" command suggestion out of the
// model's analysis, returning the suggestion (or "") and the text with the
// suggestion lines removed.
func ExtractSuggestion(text string) (suggestion, cleaned string) {
	if m := suggestionCaptureRe.FindStringSubmatch(text); m != nil {
		suggestion = strings.TrimSpace(m[1])
	}

	cleaned = suggestionLineRe.ReplaceAllString(text, "")
	if suggestion != "" {
		// Remove stray repetitions of the suggested command.
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(suggestion))
		if err == nil {
			cleaned = re.ReplaceAllString(cleaned, "")
		}
	}
	cleaned = strings.TrimSpace(blankRunsRe.ReplaceAllString(cleaned, "\n\n"))
	return suggestion, cleaned
}

// DecorateAnalysis recolors the "Analysis:" and "Next Steps:" section labels
// of rendered analysis output and appends the "Did you mean" trailer when a
// suggestion was extracted.
func DecorateAnalysis(rendered, suggestion string) string {
	rendered = analysisHeadingRe.ReplaceAllString(rendered,
		"\n"+format.Blue+"Analysis:"+format.Reset)
	rendered = nextStepsHeadingRe.ReplaceAllString(rendered,
		"\n\n"+format.Yellow+"Next Steps:"+format.Reset)

	if suggestion != "" {
		rendered += "\n\n\n" + format.Red + "Did you mean:" + format.Reset + "\n" + suggestion
	}
	return rendered
}
