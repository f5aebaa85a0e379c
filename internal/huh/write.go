package huh

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ryanfowler/huh/internal/core"
	"github.com/ryanfowler/huh/internal/format"
	"github.com/ryanfowler/huh/internal/gemini"
)

// writeFile creates or edits path according to the instructions, showing a
// diff preview for edits before writing.
func (r *Request) writeFile(ctx context.Context, path, instructions string) error {
	var original string
	exists := false
	if buf, err := os.ReadFile(path); err == nil {
		original = string(buf)
		exists = true
	} else if !os.IsNotExist(err) {
		return err
	}

	var prompt string
	if exists {
		prompt = gemini.EditFilePrompt(path, original, instructions)
	} else {
		prompt = gemini.CreateFilePrompt(path, instructions)
	}

	text, err := r.generate(ctx, prompt, gemini.WriteConfig)
	if err != nil {
		return err
	}
	content := stripFences(text)

	p := r.PrinterHandle.Stdout()
	switch {
	case exists && strings.TrimSpace(original) == strings.TrimSpace(content):
		p.WriteString("\n✓ No changes needed - file content is already up to date\n")
		return p.Flush()
	case exists:
		writeDiffSummary(p, format.ComputeDiff(original, content))
	default:
		fmt.Fprintf(p, "\n+ Creating new file: %s\n", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(p, "✓ File %s has been successfully written/edited!\n", path)
	return p.Flush()
}

func writeDiffSummary(p *core.Printer, d format.Diff) {
	p.WriteString("\n  ")
	p.Set(core.Blue)
	p.Set(core.Bold)
	p.WriteString(strconv.Itoa(d.Additions))
	p.Reset()
	p.WriteString(" additions (+), ")
	p.Set(core.Red)
	p.Set(core.Bold)
	p.WriteString(strconv.Itoa(d.Deletions))
	p.Reset()
	p.WriteString(" deletions (-)\n\n")
	p.WriteString(d.Preview())
}

// stripFences removes a surrounding Markdown code fence, including any
// language tag on the opening fence.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return strings.Trim(text, "`")
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
