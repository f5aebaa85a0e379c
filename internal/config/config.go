package config

import (
	"strconv"
	"time"

	"github.com/ryanfowler/huh/internal/core"
	"github.com/ryanfowler/huh/internal/history"
)

// ResponseLength controls how detailed model answers should be.
type ResponseLength int

const (
	LengthUnknown ResponseLength = iota
	LengthBrief
	LengthBalanced
	LengthDetailed
	LengthVerbose
)

func (l ResponseLength) String() string {
	switch l {
	case LengthBrief:
		return "brief"
	case LengthBalanced:
		return "balanced"
	case LengthDetailed:
		return "detailed"
	case LengthVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// Instruction returns the prompt fragment steering answer detail.
func (l ResponseLength) Instruction() string {
	switch l {
	case LengthBrief:
		return "Keep your response brief and concise. Provide only the essential information without elaborate explanations."
	case LengthDetailed:
		return "Provide a detailed response with comprehensive explanations. Include relevant context and examples where helpful."
	case LengthVerbose:
		return "Provide a very detailed and thorough response. Include comprehensive explanations, examples, context, and additional relevant information."
	default:
		return "Provide a balanced response with moderate detail."
	}
}

// Config represents the configuration options for huh.
type Config struct {
	isFile bool

	APIKey          *string
	Color           core.Color
	MaxOutputTokens *int
	Model           *string
	ResponseLength  ResponseLength
	Shell           history.Shell
	Temperature     *float64
	Timeout         *time.Duration
	Width           *int
}

// Merge merges the two Configs together, with "c" taking priority.
func (c *Config) Merge(c2 *Config) {
	if c.APIKey == nil {
		c.APIKey = c2.APIKey
	}
	if c.Color == core.ColorUnknown {
		c.Color = c2.Color
	}
	if c.MaxOutputTokens == nil {
		c.MaxOutputTokens = c2.MaxOutputTokens
	}
	if c.Model == nil {
		c.Model = c2.Model
	}
	if c.ResponseLength == LengthUnknown {
		c.ResponseLength = c2.ResponseLength
	}
	if c.Shell == "" || c.Shell == history.ShellUnknown {
		c.Shell = c2.Shell
	}
	if c.Temperature == nil {
		c.Temperature = c2.Temperature
	}
	if c.Timeout == nil {
		c.Timeout = c2.Timeout
	}
	if c.Width == nil {
		c.Width = c2.Width
	}
}

// Set sets the provided key and value pair, returning any error encountered.
func (c *Config) Set(key, val string) error {
	var err error
	switch key {
	case "api-key":
		c.APIKey = core.PointerTo(val)
	case "color", "colour":
		err = c.ParseColor(val)
	case "max-output-tokens":
		err = c.ParseMaxOutputTokens(val)
	case "model":
		c.Model = core.PointerTo(val)
	case "response-length", "length":
		err = c.ParseResponseLength(val)
	case "shell":
		err = c.ParseShell(val)
	case "temperature":
		err = c.ParseTemperature(val)
	case "timeout":
		err = c.ParseTimeout(val)
	case "width":
		err = c.ParseWidth(val)
	default:
		err = invalidOptionError(key)
	}
	return err
}

func (c *Config) ParseColor(value string) error {
	switch value {
	case "auto":
		c.Color = core.ColorAuto
	case "off":
		c.Color = core.ColorOff
	case "on":
		c.Color = core.ColorOn
	default:
		const usage = "must be one of [auto, off, on]"
		return core.NewValueError("color", value, usage, c.isFile)
	}
	return nil
}

func (c *Config) ParseMaxOutputTokens(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil || v <= 0 {
		return core.NewValueError("max-output-tokens", value, "must be a positive integer", c.isFile)
	}
	c.MaxOutputTokens = &v
	return nil
}

func (c *Config) ParseResponseLength(value string) error {
	switch value {
	case "brief":
		c.ResponseLength = LengthBrief
	case "balanced":
		c.ResponseLength = LengthBalanced
	case "detailed":
		c.ResponseLength = LengthDetailed
	case "verbose":
		c.ResponseLength = LengthVerbose
	default:
		const usage = "must be one of [brief, balanced, detailed, verbose]"
		return core.NewValueError("response-length", value, usage, c.isFile)
	}
	return nil
}

func (c *Config) ParseShell(value string) error {
	shell, ok := history.ParseShell(value)
	if !ok {
		const usage = "must be one of [zsh, bash, fish]"
		return core.NewValueError("shell", value, usage, c.isFile)
	}
	c.Shell = shell
	return nil
}

func (c *Config) ParseTemperature(value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 || v > 2 {
		return core.NewValueError("temperature", value, "must be a number between 0 and 2", c.isFile)
	}
	c.Temperature = &v
	return nil
}

func (c *Config) ParseTimeout(value string) error {
	t, err := time.ParseDuration(value)
	if err != nil {
		// Plain numbers are treated as seconds.
		secs, err2 := strconv.ParseFloat(value, 64)
		if err2 != nil {
			return core.NewValueError("timeout", value, "must be a duration or number of seconds", c.isFile)
		}
		t = time.Duration(secs * float64(time.Second))
	}
	if t <= 0 {
		return core.NewValueError("timeout", value, "must be positive", c.isFile)
	}
	c.Timeout = &t
	return nil
}

func (c *Config) ParseWidth(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil || v <= 1 {
		return core.NewValueError("width", value, "must be an integer greater than 1", c.isFile)
	}
	c.Width = &v
	return nil
}

type invalidOptionError string

func (err invalidOptionError) Error() string {
	return "invalid config option '" + string(err) + "'"
}

func (err invalidOptionError) PrintTo(p *core.Printer) {
	p.WriteString("invalid config option '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'")
}
