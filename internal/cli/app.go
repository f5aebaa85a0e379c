package cli

import (
	"github.com/ryanfowler/huh/internal/config"
	"github.com/ryanfowler/huh/internal/core"
)

// App represents the full configuration for a huh invocation.
type App struct {
	// Args holds the trailing arguments: a free-form query, optionally
	// starting with an @<file> reference.
	Args []string

	Cfg config.Config

	ConfigPath string
	Help       bool
	ModelNow   bool
	SetModel   *string
	ShowConfig bool
	Version    bool
	Write      bool
}

func (a *App) PrintHelp(p *core.Printer) {
	printHelp(a.CLI(), p)
}

func (a *App) CLI() *CLI {
	return &CLI{
		Description: "huh is an AI-powered shell command analysis tool",
		Args: []Arguments{
			{Name: "QUERY", Description: "Question to ask, optionally starting with @<file>"},
		},
		ArgFn: func(s string) error {
			a.Args = append(a.Args, s)
			return nil
		},
		ExclusiveFlags: [][]string{
			{"model", "model-now"},
		},
		Flags: []Flag{
			{
				Short:       "k",
				Long:        "api-key",
				Args:        "KEY",
				Description: "Gemini API key (overrides GEMINI_API_KEY)",
				IsSet: func() bool {
					return a.Cfg.APIKey != nil
				},
				Fn: func(value string) error {
					a.Cfg.APIKey = core.PointerTo(value)
					return nil
				},
			},
			{
				Short:       "",
				Long:        "color",
				Aliases:     []string{"colour"},
				Args:        "OPTION",
				Description: "Use colored output",
				Values:      []string{"auto", "off", "on"},
				IsSet: func() bool {
					return a.Cfg.Color != core.ColorUnknown
				},
				Fn: func(value string) error {
					return a.Cfg.ParseColor(value)
				},
			},
			{
				Short:       "",
				Long:        "config",
				Args:        "PATH",
				Description: "Path to the config file",
				IsSet: func() bool {
					return a.ConfigPath != ""
				},
				Fn: func(value string) error {
					a.ConfigPath = value
					return nil
				},
			},
			{
				Short:       "h",
				Long:        "help",
				Description: "Print help",
				IsSet: func() bool {
					return a.Help
				},
				Fn: func(string) error {
					a.Help = true
					return nil
				},
			},
			{
				Short:       "",
				Long:        "length",
				Args:        "OPTION",
				Description: "Detail level",
				Values:      []string{"brief", "balanced", "detailed", "verbose"},
				IsSet: func() bool {
					return a.Cfg.ResponseLength != config.LengthUnknown
				},
				Fn: func(value string) error {
					return a.Cfg.ParseResponseLength(value)
				},
			},
			{
				Short:       "m",
				Long:        "model",
				Args:        "MODEL",
				Description: "Set the default model (persistent)",
				IsSet: func() bool {
					return a.SetModel != nil
				},
				Fn: func(value string) error {
					a.SetModel = core.PointerTo(value)
					return nil
				},
			},
			{
				Short:       "n",
				Long:        "model-now",
				Description: "Show the configured default model",
				IsSet: func() bool {
					return a.ModelNow
				},
				Fn: func(string) error {
					a.ModelNow = true
					return nil
				},
			},
			{
				Short:       "",
				Long:        "shell",
				Args:        "SHELL",
				Description: "Shell to read history from",
				Values:      []string{"zsh", "bash", "fish"},
				IsSet: func() bool {
					return a.Cfg.Shell != ""
				},
				Fn: func(value string) error {
					return a.Cfg.ParseShell(value)
				},
			},
			{
				Short:       "",
				Long:        "show-config",
				Description: "Show the current configuration",
				IsSet: func() bool {
					return a.ShowConfig
				},
				Fn: func(string) error {
					a.ShowConfig = true
					return nil
				},
			},
			{
				Short:       "",
				Long:        "timeout",
				Args:        "DURATION",
				Description: "Timeout for API requests",
				Default:     "30s",
				IsSet: func() bool {
					return a.Cfg.Timeout != nil
				},
				Fn: func(value string) error {
					return a.Cfg.ParseTimeout(value)
				},
			},
			{
				Short:       "V",
				Long:        "version",
				Description: "Print version",
				IsSet: func() bool {
					return a.Version
				},
				Fn: func(string) error {
					a.Version = true
					return nil
				},
			},
			{
				Short:       "",
				Long:        "width",
				Args:        "NUM",
				Description: "Maximum output width in columns",
				Default:     "100",
				IsSet: func() bool {
					return a.Cfg.Width != nil
				},
				Fn: func(value string) error {
					return a.Cfg.ParseWidth(value)
				},
			},
			{
				Short:       "w",
				Long:        "write",
				Description: "Write/edit mode, use with @<file> <instructions>",
				IsSet: func() bool {
					return a.Write
				},
				Fn: func(string) error {
					a.Write = true
					return nil
				},
			},
		},
	}
}
