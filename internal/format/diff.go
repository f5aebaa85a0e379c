package format

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/aymanbagabas/go-udiff/myers"
	"github.com/mattn/go-runewidth"
)

const (
	previewMaxLines = 5
	previewMaxCols  = 60
)

type change struct {
	insert  bool
	content string
}

// Diff summarizes the line-level differences between two versions of a file.
type Diff struct {
	Additions int
	Deletions int

	changes []change
}

// ComputeDiff diffs original against proposed line by line. The edit
// script is line-anchored so an inserted or deleted line never drags a
// neighboring unchanged line into the diff.
func ComputeDiff(original, proposed string) Diff {
	edits := myers.ComputeEdits(original, proposed)
	if len(edits) == 0 {
		return Diff{}
	}

	// A context size covering both inputs folds the entire file into a
	// single hunk, so every changed line is visible below.
	context := strings.Count(original, "\n") + strings.Count(proposed, "\n") + 2
	unified, err := udiff.ToUnifiedDiff("original", "proposed", original, edits, context)
	if err != nil {
		return Diff{}
	}

	var d Diff
	for _, hunk := range unified.Hunks {
		for _, line := range hunk.Lines {
			content := strings.TrimSuffix(line.Content, "\n")
			switch line.Kind {
			case udiff.Insert:
				d.Additions++
				d.changes = append(d.changes, change{insert: true, content: content})
			case udiff.Delete:
				d.Deletions++
				d.changes = append(d.changes, change{insert: false, content: content})
			}
		}
	}
	return d
}

// Zero reports whether the diff contains no changes.
func (d Diff) Zero() bool {
	return d.Additions == 0 && d.Deletions == 0
}

// Preview renders up to five changed lines with colored +/- markers,
// truncating long lines to fit a narrow summary column.
func (d Diff) Preview() string {
	if d.Zero() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(Bold + "Key changes:" + Reset + "\n")

	n := min(len(d.changes), previewMaxLines)
	for _, c := range d.changes[:n] {
		marker, color := "-", Red
		if c.insert {
			marker, color = "+", Blue
		}
		content := runewidth.Truncate(c.content, previewMaxCols, "...")
		fmt.Fprintf(&sb, "  %s%s%s %s%s%s\n", color, marker, Reset, color, content, Reset)
	}

	if rest := d.Additions + d.Deletions - n; rest > 0 {
		fmt.Fprintf(&sb, "  %s... and %d more changes%s\n", Yellow, rest, Reset)
	}
	return sb.String()
}
