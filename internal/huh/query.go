package huh

import (
	"context"
	"time"

	"github.com/ryanfowler/huh/internal/core"
	"github.com/ryanfowler/huh/internal/format"
	"github.com/ryanfowler/huh/internal/gemini"
)

const streamCharDelay = 3 * time.Millisecond

// query answers a free-form question, streaming the rendered answer
// character by character when stdout is a terminal.
func (r *Request) query(ctx context.Context, q string) error {
	prompt := gemini.QueryPrompt(q, r.ResponseLength.Instruction())
	text, err := r.generate(ctx, prompt, gemini.QueryConfig)
	if err != nil {
		return err
	}

	rendered := format.RenderMarkdown(text, r.maxWidth())

	p := r.PrinterHandle.Stdout()
	if !core.IsStdoutTerm {
		p.WriteString(rendered)
		p.WriteString("\n")
		return p.Flush()
	}

	for _, c := range rendered {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.WriteRune(c)
		if err := p.Flush(); err != nil {
			return err
		}
		time.Sleep(streamCharDelay)
	}
	p.WriteString("\n")
	return p.Flush()
}
