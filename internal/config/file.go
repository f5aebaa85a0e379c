package config

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/ryanfowler/huh/internal/core"
)

// GetFile loads and parses the config file, or returns nil if none exists.
// When path is empty the default locations are searched.
func GetFile(path string) (*Config, error) {
	path, buf, err := getConfigFile(path)
	if err != nil || path == "" {
		return nil, err
	}
	return parseFile(path, string(buf))
}

// getConfigFile searches for a local config file, returning the file contents
// if it exists.
func getConfigFile(path string) (string, []byte, error) {
	if path != "" {
		// Expand '~' to the home directory.
		if len(path) >= 2 && path[0] == '~' && path[1] == os.PathSeparator {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", nil, err
			}
			path = home + path[1:]
		}
		// Direct config path was provided. A missing file is not an
		// error so that saving a model can create it later.
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", nil, err
		}
		out, buf, err := readFile(abs)
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, nil
		}
		return out, buf, err
	}

	path = DefaultPath()
	if path == "" {
		return "", nil, nil
	}
	out, buf, err := readFile(path)
	if err != nil {
		return "", nil, nil
	}
	return out, buf, nil
}

// DefaultPath returns the default config file location for the platform, or
// "" when it cannot be determined.
func DefaultPath() string {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("AppData")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, "huh", "config")
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "huh", "config")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "huh", "config")
	}
	return ""
}

func readFile(path string) (string, []byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, buf, nil
}

// parseFile parses the provided file, returning any error encountered.
func parseFile(path, s string) (*Config, error) {
	config := &Config{isFile: true}

	for num, line := range lines(s) {
		line = strings.TrimSpace(line)

		if line == "" || line[0] == '#' {
			// Skip empty lines and comments.
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, newFileError(path, num, fmt.Errorf("invalid key/value pair '%s'", line))
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)

		if err := config.Set(key, val); err != nil {
			return nil, newFileError(path, num, err)
		}
	}

	return config, nil
}

// SaveModel persists model as the default in the config file at path,
// preserving all other lines. The file and its parent directory are created
// if needed.
func SaveModel(path, model string) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("unable to determine config file location")
	}

	var out []string
	replaced := false
	if buf, err := os.ReadFile(path); err == nil {
		for _, line := range lines(string(buf)) {
			key, _, ok := strings.Cut(line, "=")
			if ok && strings.TrimSpace(key) == "model" {
				if !replaced {
					out = append(out, "model = "+model)
					replaced = true
				}
				continue
			}
			out = append(out, line)
		}
	}
	if !replaced {
		out = append(out, "model = "+model)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(out, "\n")+"\n"), 0o644)
}

// lines returns an iterator over lines and line numbers.
func lines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		var num int
		for len(s) > 0 {
			num++

			i := strings.IndexFunc(s, func(r rune) bool {
				return r == '\n' || r == '\r'
			})
			if i < 0 {
				yield(num, s)
				return
			}

			if !yield(num, s[:i]) {
				return
			}

			n := 1
			if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
				n = 2
			}
			s = s[i+n:]
		}
	}
}

// fileError represents an error that prints a config file line with an err.
type fileError struct {
	file string
	line int
	err  error
}

func newFileError(file string, line int, err error) fileError {
	return fileError{file: file, line: line, err: err}
}

func (err fileError) Error() string {
	return fmt.Sprintf("config file '%s': line %d: %s", err.file, err.line, err.err.Error())
}

func (err fileError) PrintTo(p *core.Printer) {
	p.WriteString("config file '")
	p.Set(core.Dim)
	p.WriteString(err.file)
	p.Reset()
	p.WriteString("': line ")
	p.WriteString(strconv.Itoa(err.line))
	p.WriteString(": ")

	if pt, ok := err.err.(core.PrinterTo); ok {
		pt.PrintTo(p)
	} else {
		p.WriteString(err.err.Error())
	}
}
