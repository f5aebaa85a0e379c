// Package huh implements the analyze, query, and write workflows.
package huh

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ryanfowler/huh/internal/client"
	"github.com/ryanfowler/huh/internal/config"
	"github.com/ryanfowler/huh/internal/core"
	"github.com/ryanfowler/huh/internal/format"
	"github.com/ryanfowler/huh/internal/gemini"
	"github.com/ryanfowler/huh/internal/history"
	"github.com/ryanfowler/huh/internal/progress"
)

const defaultTimeout = 30 * time.Second

// Request represents the full configuration for a huh invocation.
type Request struct {
	PrinterHandle *core.Handle

	APIKey          string
	Args            []string
	MaxOutputTokens *int
	Model           string
	ResponseLength  config.ResponseLength
	Shell           history.Shell
	Temperature     *float64
	Timeout         time.Duration
	Width           int
	Write           bool
}

type usageError string

func (err usageError) Error() string {
	return string(err)
}

// Run executes the request, returning the exit code.
func Run(ctx context.Context, r *Request) int {
	err := run(ctx, r)
	if err != nil {
		core.WriteErrorMsg(r.PrinterHandle.Stderr(), err)
		return 1
	}
	return 0
}

func run(ctx context.Context, r *Request) error {
	if len(r.Args) == 0 {
		if r.Write {
			return usageError("write mode requires arguments. Usage: huh -w @<file> <instructions>")
		}
		return r.analyze(ctx)
	}

	first := r.Args[0]
	if !strings.HasPrefix(first, "@") {
		if r.Write {
			return usageError("write mode requires a file path starting with @. Usage: huh -w @<file> <instructions>")
		}
		return r.query(ctx, strings.Join(r.Args, " "))
	}

	path := first[1:]
	rest := r.Args[1:]

	if r.Write {
		if len(rest) == 0 {
			return usageError("write mode requires instructions. Usage: huh -w @<file> <instructions>")
		}
		return r.writeFile(ctx, path, strings.Join(rest, " "))
	}

	// Query mode with a file as context.
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.FileNotExistsError(path)
		}
		return err
	}
	query := fmt.Sprintf("Content from %s:\n---\n%s\n---\n", path, buf)
	if len(rest) > 0 {
		query += strings.Join(rest, " ")
	}
	return r.query(ctx, query)
}

func (r *Request) newClient() *gemini.Client {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return gemini.NewClient(gemini.ClientConfig{
		APIKey: r.APIKey,
		Model:  r.Model,
		HTTP:   client.NewClient(client.ClientConfig{Timeout: timeout}),
	})
}

// generate calls the model with a spinner on stderr while the request is in
// flight.
func (r *Request) generate(ctx context.Context, prompt string, cfg gemini.GenerationConfig) (string, error) {
	if r.Temperature != nil {
		cfg.Temperature = *r.Temperature
	}
	if r.MaxOutputTokens != nil {
		cfg.MaxOutputTokens = *r.MaxOutputTokens
	}

	var spinner *progress.Spinner
	if core.IsStderrTerm {
		spinner = progress.NewSpinner(r.PrinterHandle.Stderr(), "Analyzing...")
	}

	text, err := r.newClient().Generate(ctx, prompt, cfg)

	if spinner != nil {
		spinner.Stop()
	}
	return text, err
}

func (r *Request) maxWidth() int {
	if r.Width > 1 {
		return r.Width
	}
	if cols := core.GetTerminalCols(); cols > 1 {
		return min(cols, format.DefaultMaxWidth)
	}
	return format.DefaultMaxWidth
}
