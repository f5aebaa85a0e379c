package format

import (
	"errors"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		indent   int
		exp      string
	}{
		{
			name:     "fits on one line",
			in:       "short line",
			maxWidth: 80,
			exp:      "short line",
		},
		{
			name:     "wraps at word boundary",
			in:       "aaa bbb ccc ddd",
			maxWidth: 8,
			exp:      "aaa bbb\nccc ddd",
		},
		{
			name:     "indent applies to continuation lines only",
			in:       "aaa bbb ccc",
			maxWidth: 8,
			indent:   3,
			exp:      "aaa\n   bbb\n   ccc",
		},
		{
			name:     "word longer than budget stands alone",
			in:       "a verylongwordhere b",
			maxWidth: 6,
			exp:      "a\nverylongwordhere\nb",
		},
		{
			name:     "collapses internal whitespace",
			in:       "a   b\tc",
			maxWidth: 80,
			exp:      "a b c",
		},
		{
			name:     "empty input",
			in:       "",
			maxWidth: 80,
			exp:      "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := Wrap(test.in, test.maxWidth, test.indent)
			if err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			if out != test.exp {
				t.Fatalf("expected %q, got %q", test.exp, out)
			}
		})
	}
}

func TestWrapInvalidConfig(t *testing.T) {
	for _, test := range []struct {
		name     string
		maxWidth int
		indent   int
	}{
		{"negative indent", 80, -1},
		{"indent equals width", 10, 10},
		{"indent exceeds width", 10, 20},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Wrap("hello", test.maxWidth, test.indent)
			var cfgErr InvalidWrapConfigError
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected InvalidWrapConfigError, got %T", err)
			}
		})
	}
}

func TestWrapIgnoresEscapesForWidth(t *testing.T) {
	// Heavily-styled words must wrap by visible width, not byte length.
	word := Bold + "aaaa" + Reset
	in := strings.Join([]string{word, word, word}, " ")
	out, err := Wrap(in, 9, 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	for i, line := range strings.Split(out, "\n") {
		if w := VisibleWidth(line); w > 9 {
			t.Fatalf("line %d has visible width %d", i, w)
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	in := "the quick brown fox jumps over the lazy dog again and again"
	out, err := Wrap(in, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	for _, line := range strings.Split(out, "\n") {
		again, err := Wrap(line, 20, 0)
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if again != line {
			t.Fatalf("re-wrapping changed %q to %q", line, again)
		}
	}
}
