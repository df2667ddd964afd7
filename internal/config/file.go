package config

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ryanfowler/iterm2img/internal/core"
)

const configDir = "iterm2img"

// File represents a configuration file.
type File struct {
	Global *Config
	Hosts  map[string]*Config
}

// GetFile returns a config File, or nil if one cannot be found.
func GetFile(path string) (*File, error) {
	path, buf, err := getConfigFile(path)
	if err != nil || path == "" {
		return nil, err
	}
	return parseFile(path, string(buf))
}

// Resolve returns a copy of c merged with the host section matching host
// (if any) and then the global section. Values in c take priority. A nil
// File returns a copy of c.
func (f *File) Resolve(c *Config, host string) *Config {
	out := c.Clone()
	if f == nil {
		return out
	}
	if host != "" {
		if hostCfg, ok := f.Hosts[host]; ok {
			out.Merge(hostCfg)
		}
	}
	if f.Global != nil {
		out.Merge(f.Global)
	}
	return out
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
		// Direct config path was provided.
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", nil, err
		}
		path, buf, err := readFile(abs)
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, core.FileNotExistsError(abs)
		}
		return path, buf, err
	}

	// Search $XDG_CONFIG_HOME and $XDG_CONFIG_DIRS, which default to the
	// platform directories (including %AppData% on Windows) when unset.
	xdg.Reload()
	if path, err := xdg.SearchConfigFile(filepath.Join(configDir, "config")); err == nil {
		if path, buf, err := readFile(path); err == nil {
			return path, buf, nil
		}
	}

	// macOS resolves the default config home to ~/Library/Application Support.
	if home, err := os.UserHomeDir(); err == nil {
		path, buf, err := readFile(filepath.Join(home, ".config", configDir, "config"))
		if err == nil {
			return path, buf, nil
		}
	}

	return "", nil, nil
}

func readFile(path string) (string, []byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, buf, nil
}

// parseFile parses the provided File, returning any error encountered.
func parseFile(path, s string) (*File, error) {
	f := File{Global: &Config{isFile: true}}

	config := f.Global
	for num, line := range lines(s) {
		line = strings.TrimSpace(line)

		if line == "" || line[0] == '#' {
			// Skip empty lines and comments.
			continue
		}

		// Parse out a hostname.
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			hostStr := strings.TrimSpace(line[1 : len(line)-1])
			if hostStr == "" {
				return nil, newFileError(path, num, errors.New("hostname cannot be empty"))
			}

			config = &Config{isFile: true}
			if f.Hosts == nil {
				f.Hosts = make(map[string]*Config)
			}
			f.Hosts[hostStr] = config
			continue
		}

		// Parse a key and value pair.
		key, val, ok := cut(line, "=")
		if !ok {
			return nil, newFileError(path, num, fmt.Errorf("invalid key/value pair '%s'", line))
		}

		err := config.Set(key, val)
		if err != nil {
			return nil, newFileError(path, num, err)
		}
	}

	return &f, nil
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

func (err fileError) Unwrap() error {
	return err.err
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
