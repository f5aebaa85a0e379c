package core

import "fmt"

// SignalError represents the error when a signal is caught.
type SignalError string

func (err SignalError) Error() string {
	return fmt.Sprintf("received signal: %s", string(err))
}

// ValueError represents an error for an invalid option value.
type ValueError struct {
	Flag   string
	Value  string
	Usage  string
	IsFile bool
}

// NewValueError returns a new ValueError.
func NewValueError(flag, value, usage string, isFile bool) ValueError {
	return ValueError{Flag: flag, Value: value, Usage: usage, IsFile: isFile}
}

func (err ValueError) Error() string {
	kind := "flag"
	if err.IsFile {
		kind = "config option"
	}
	return fmt.Sprintf("invalid value '%s' for %s '%s': %s", err.Value, kind, err.Flag, err.Usage)
}

func (err ValueError) PrintTo(p *Printer) {
	kind := "flag"
	if err.IsFile {
		kind = "config option"
	}

	p.WriteString("invalid value '")
	p.Set(Bold)
	p.WriteString(err.Value)
	p.Reset()
	p.WriteString("' for ")
	p.WriteString(kind)
	p.WriteString(" '")
	p.Set(Bold)
	p.WriteString(err.Flag)
	p.Reset()
	p.WriteString("': ")
	p.WriteString(err.Usage)
}

// FileNotExistsError represents the error when a file does not exist.
type FileNotExistsError string

func (err FileNotExistsError) Error() string {
	return fmt.Sprintf("file '%s' does not exist", string(err))
}

func (err FileNotExistsError) PrintTo(p *Printer) {
	p.WriteString("file '")
	p.Set(Dim)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("' does not exist")
}
