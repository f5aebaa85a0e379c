package format

import (
	"strings"
	"testing"
)

func TestRenderMarkdownInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		exp  string
	}{
		{
			name: "bold",
			in:   "this is **important** text",
			exp:  "this is " + Bold + "important" + Reset + " text",
		},
		{
			name: "bold underscores",
			in:   "__loud__ words",
			exp:  Bold + "loud" + Reset + " words",
		},
		{
			name: "italic",
			in:   "an *emphasized* word",
			exp:  "an " + Italic + "emphasized" + Reset + " word",
		},
		{
			name: "inline code",
			in:   "run `ls -la` now",
			exp:  "run " + Cyan + "ls -la" + Reset + " now",
		},
		{
			name: "bold and code together",
			in:   "**note**: use `grep`",
			exp:  Bold + "note" + Reset + ": use " + Cyan + "grep" + Reset,
		},
		{
			name: "lone asterisk untouched",
			in:   "2 * 3 = 6",
			exp:  "2 * 3 = 6",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if out := RenderMarkdown(test.in, 100); out != test.exp {
				t.Fatalf("expected %q, got %q", test.exp, out)
			}
		})
	}
}

func TestRenderMarkdownHeading(t *testing.T) {
	out := RenderMarkdown("# Summary", 100)
	exp := "\n" + Bold + "Summary" + Reset + "\n"
	if out != exp {
		t.Fatalf("expected %q, got %q", exp, out)
	}
}

func TestRenderMarkdownCollapsesBlankRuns(t *testing.T) {
	out := RenderMarkdown("one\n\n\n\n\ntwo", 100)
	exp := "one\n\ntwo"
	if out != exp {
		t.Fatalf("expected %q, got %q", exp, out)
	}
}

func TestRenderMarkdownNumberedList(t *testing.T) {
	in := "1. first item that is long enough to wrap onto another line easily here\n2. second"
	out := RenderMarkdown(in, 40)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected a wrapped list, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "1. first") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	// "1. " is three columns, so continuation lines align under "first".
	for _, line := range lines[1 : len(lines)-1] {
		if !strings.HasPrefix(line, "   ") || strings.HasPrefix(line, "    ") {
			t.Fatalf("continuation line %q not indented by 3", line)
		}
	}
	if !strings.HasPrefix(lines[len(lines)-1], "2. second") {
		t.Fatalf("unexpected last line %q", lines[len(lines)-1])
	}
}

func TestRenderMarkdownListContinuation(t *testing.T) {
	in := "1. install it\nthen check the version"
	out := RenderMarkdown(in, 100)
	exp := "1. install it\n   then check the version"
	if out != exp {
		t.Fatalf("expected %q, got %q", exp, out)
	}
}

func TestRenderMarkdownBlankLineKeepsListContext(t *testing.T) {
	in := "1. install it\n\nstill part of the item"
	out := RenderMarkdown(in, 100)
	exp := "1. install it\n\n   still part of the item"
	if out != exp {
		t.Fatalf("expected %q, got %q", exp, out)
	}
}

func TestRenderMarkdownNextSteps(t *testing.T) {
	in := "Next steps:\n1. do the thing\nmore about the thing"
	out := RenderMarkdown(in, 100)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out)
	}
	if lines[1] != "1. do the thing" {
		t.Fatalf("unexpected list line %q", lines[1])
	}
	// "1. " plus the extra section indent of 4.
	if lines[2] != "       more about the thing" {
		t.Fatalf("unexpected continuation %q", lines[2])
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	in := "before\n```python\nx = 1\n```\nafter"
	out := RenderMarkdown(in, 100)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out)
	}
	if lines[0] != "before" || lines[2] != "after" {
		t.Fatalf("surrounding prose damaged: %q", out)
	}
	if StripANSI(lines[1]) != "x = 1" {
		t.Fatalf("code content changed: %q", StripANSI(lines[1]))
	}
}

func TestRenderMarkdownEmptyCodeBlockDropped(t *testing.T) {
	in := "before\n```\n\n```\nafter"
	out := RenderMarkdown(in, 100)
	if out != "before\nafter" {
		t.Fatalf("expected empty block dropped, got %q", out)
	}
}

func TestRenderMarkdownUnclosedCodeBlock(t *testing.T) {
	in := "before\n```text\necho hi"
	out := RenderMarkdown(in, 100)
	// Content after an unclosed fence is swallowed rather than rendered
	// as prose.
	if out != "before" {
		t.Fatalf("expected %q, got %q", "before", out)
	}
}

func TestRenderMarkdownNoFormattingInCodeBlock(t *testing.T) {
	in := "```text\na **literal** example\n```"
	out := RenderMarkdown(in, 100)
	if strings.Contains(out, Bold) {
		t.Fatalf("emphasis applied inside a code block: %q", out)
	}
	if !strings.Contains(out, "**literal**") {
		t.Fatalf("code block content changed: %q", out)
	}
}

func TestRenderMarkdownWrapsProse(t *testing.T) {
	in := strings.Repeat("word ", 40)
	out := RenderMarkdown(in, 30)
	for i, line := range strings.Split(out, "\n") {
		if w := VisibleWidth(line); w > 30 {
			t.Fatalf("line %d has visible width %d: %q", i, w, line)
		}
	}
}
