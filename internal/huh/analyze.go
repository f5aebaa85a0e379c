package huh

import (
	"context"

	"github.com/ryanfowler/huh/internal/format"
	"github.com/ryanfowler/huh/internal/gemini"
	"github.com/ryanfowler/huh/internal/history"
)

// analyze explains the most recent shell command.
func (r *Request) analyze(ctx context.Context) error {
	shell := r.Shell
	if shell == "" || shell == history.ShellUnknown {
		shell = history.DetectShell()
	}

	entries, err := history.LastCommands(shell, 2)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		p := r.PrinterHandle.Stdout()
		p.WriteString("No commands found in history.\n")
		return p.Flush()
	}

	// Inside tmux, the pane scrollback provides the command's output.
	if pane := history.CapturePane(ctx); pane != "" {
		entries[len(entries)-1].Output = pane
	}

	text, err := r.generate(ctx, gemini.AnalysisPrompt(entries), gemini.AnalysisConfig)
	if err != nil {
		return err
	}

	suggestion, cleaned := ExtractSuggestion(text)
	rendered := format.RenderMarkdown(cleaned, r.maxWidth())
	rendered = DecorateAnalysis(rendered, suggestion)

	p := r.PrinterHandle.Stdout()
	p.WriteString(rendered)
	p.WriteString("\n")
	return p.Flush()
}
