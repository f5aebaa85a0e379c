package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ryanfowler/huh/internal/cli"
	"github.com/ryanfowler/huh/internal/config"
	"github.com/ryanfowler/huh/internal/core"
	"github.com/ryanfowler/huh/internal/gemini"
	"github.com/ryanfowler/huh/internal/huh"
)

func main() {
	// Cancel the context when one of the below signals are caught.
	ctx, cancel := context.WithCancelCause(context.Background())
	chSig := make(chan os.Signal, 1)
	signal.Notify(chSig, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		sig := <-chSig
		cancel(core.SignalError(sig.String()))
	}()

	// Parse the CLI args.
	app, err := cli.Parse(os.Args[1:])
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		writeCLIErr(p, err)
		os.Exit(1)
	}

	// Parse any config file, and merge with it.
	file, err := config.GetFile(app.ConfigPath)
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		core.WriteErrorMsg(p, err)
		os.Exit(1)
	}
	if file != nil {
		app.Cfg.Merge(file)
	}

	handle := core.NewHandle(app.Cfg.Color)

	// Print help to stdout.
	if app.Help {
		p := handle.Stdout()
		app.PrintHelp(p)
		p.Flush()
		os.Exit(0)
	}

	// Print version to stdout.
	if app.Version {
		fmt.Fprintln(os.Stdout, "huh", core.Version)
		os.Exit(0)
	}

	model := getValue(app.Cfg.Model)
	if model == "" {
		model = gemini.DefaultModel
	}

	// Show the configured default model.
	if app.ModelNow {
		p := handle.Stdout()
		core.WriteInfoMsg(p, "current default model: "+model)
		os.Exit(0)
	}

	// Show the full merged configuration.
	if app.ShowConfig {
		printConfig(handle.Stdout(), app, model)
		os.Exit(0)
	}

	// Persist a new default model.
	if app.SetModel != nil {
		os.Exit(setModel(handle, app.ConfigPath, *app.SetModel))
	}

	apiKey := getValue(app.Cfg.APIKey)
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		p := handle.Stderr()
		writeCLIErr(p, missingAPIKeyError{})
		os.Exit(1)
	}

	req := huh.Request{
		APIKey:          apiKey,
		Args:            app.Args,
		MaxOutputTokens: app.Cfg.MaxOutputTokens,
		Model:           model,
		PrinterHandle:   handle,
		ResponseLength:  app.Cfg.ResponseLength,
		Shell:           app.Cfg.Shell,
		Temperature:     app.Cfg.Temperature,
		Timeout:         getValue(app.Cfg.Timeout),
		Width:           getValue(app.Cfg.Width),
		Write:           app.Write,
	}
	status := huh.Run(ctx, &req)
	os.Exit(status)
}

// setModel validates and persists the default model, returning an exit code.
func setModel(handle *core.Handle, configPath, model string) int {
	if !gemini.IsKnownModel(model) {
		p := handle.Stderr()
		core.WriteErrorMsg(p, unknownModelError(model))
		return 1
	}
	if err := config.SaveModel(configPath, model); err != nil {
		core.WriteErrorMsg(handle.Stderr(), err)
		return 1
	}
	p := handle.Stdout()
	core.WriteInfoMsg(p, "default model changed to: "+model)
	return 0
}

func printConfig(p *core.Printer, app *cli.App, model string) {
	writeConfigLine := func(key, val string) {
		p.WriteString("  ")
		p.WriteString(key)
		p.WriteString(": ")
		p.Set(core.Cyan)
		p.WriteString(val)
		p.Reset()
		p.WriteString("\n")
	}

	p.WriteString("Current configuration:\n")
	writeConfigLine("model", model)
	writeConfigLine("response-length", app.Cfg.ResponseLength.String())
	if app.Cfg.Temperature != nil {
		writeConfigLine("temperature", fmt.Sprintf("%g", *app.Cfg.Temperature))
	}
	if app.Cfg.MaxOutputTokens != nil {
		writeConfigLine("max-output-tokens", fmt.Sprintf("%d", *app.Cfg.MaxOutputTokens))
	}
	if app.Cfg.Timeout != nil {
		writeConfigLine("timeout", app.Cfg.Timeout.String())
	}
	if app.Cfg.Shell != "" {
		writeConfigLine("shell", string(app.Cfg.Shell))
	}
	if app.Cfg.Width != nil {
		writeConfigLine("width", fmt.Sprintf("%d", *app.Cfg.Width))
	}
	p.Flush()
}

type missingAPIKeyError struct{}

func (missingAPIKeyError) Error() string {
	return "API key must be provided via --api-key or the GEMINI_API_KEY environment variable"
}

type unknownModelError string

func (err unknownModelError) Error() string {
	return fmt.Sprintf("unknown model '%s'; known models:\n%s", string(err), modelList())
}

func (err unknownModelError) PrintTo(p *core.Printer) {
	p.WriteString("unknown model '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'; known models:\n")
	p.WriteString(modelList())
}

func modelList() string {
	var out string
	for _, m := range gemini.Models {
		out += "  " + m.Key + " - " + m.Val + "\n"
	}
	return out
}

func getValue[T any](v *T) T {
	if v == nil {
		var t T
		return t
	}
	return *v
}

// writeCLIErr writes the provided CLI error to the Printer.
func writeCLIErr(p *core.Printer, err error) {
	core.WriteErrorMsgNoFlush(p, err)

	p.WriteString("\nFor more information, try '")

	p.Set(core.Bold)
	p.WriteString("--help")
	p.Reset()

	p.WriteString("'.\n")
	p.Flush()
}
