package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ryanfowler/iterm2img"
	"github.com/ryanfowler/iterm2img/internal/core"
)

const testFile = `
# global options
width = 40
inline = true
tmux = off

[images.example.com]
width = 100%
insecure = true
`

func TestParseFile(t *testing.T) {
	f, err := parseFile("config", testFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Global.Width == nil || *f.Global.Width != iterm2img.Cells(40) {
		t.Fatalf("unexpected global width: %v", f.Global.Width)
	}
	if f.Global.Inline == nil || !*f.Global.Inline {
		t.Fatalf("unexpected global inline: %v", f.Global.Inline)
	}
	host, ok := f.Hosts["images.example.com"]
	if !ok {
		t.Fatal("expected host section")
	}
	if host.Width == nil || *host.Width != iterm2img.Percent(100) {
		t.Fatalf("unexpected host width: %v", host.Width)
	}
}

func TestParseFileErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{name: "empty host", input: "width = 1\n[ ]\n", line: 2},
		{name: "missing equals", input: "# c\nwidth 1\n", line: 2},
		{name: "invalid value", input: "width = wide", line: 1},
		{name: "unknown key", input: "\r\n\r\nbogus = 1", line: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseFile("config", test.input)
			var fe fileError
			if !errors.As(err, &fe) {
				t.Fatalf("expected fileError, got %v", err)
			}
			if fe.line != test.line {
				t.Fatalf("got line %d, want %d", fe.line, test.line)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	f, err := parseFile("config", testFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cli := &Config{Tmux: core.TmuxOn}

	c := f.Resolve(cli, "images.example.com")
	if *c.Width != iterm2img.Percent(100) {
		t.Errorf("expected host width, got %v", *c.Width)
	}
	if c.Insecure == nil || !*c.Insecure {
		t.Error("expected host insecure")
	}
	if c.Tmux != core.TmuxOn {
		t.Errorf("expected cli tmux to take priority, got %v", c.Tmux)
	}

	c = f.Resolve(cli, "other.example.com")
	if *c.Width != iterm2img.Cells(40) {
		t.Errorf("expected global width, got %v", *c.Width)
	}
	if c.Insecure != nil {
		t.Error("expected insecure to be unset")
	}

	if cli.Width != nil {
		t.Error("Resolve modified its input")
	}

	var nilFile *File
	if c = nilFile.Resolve(cli, ""); c.Tmux != core.TmuxOn {
		t.Error("expected nil file to return a copy")
	}
}

func TestGetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	if err := os.WriteFile(path, []byte("fit = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := GetFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Global.Fit == nil || !*f.Global.Fit {
		t.Fatalf("unexpected fit: %v", f.Global.Fit)
	}

	_, err = GetFile(filepath.Join(dir, "missing"))
	var notExist core.FileNotExistsError
	if !errors.As(err, &notExist) {
		t.Fatalf("expected FileNotExistsError, got %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	t.Setenv("HOME", dir)
	f, err = GetFile("")
	if err != nil || f != nil {
		t.Fatalf("expected no config file, got %v (err=%v)", f, err)
	}

	// Discovered in the XDG config home.
	if err := os.MkdirAll(filepath.Join(dir, "iterm2img"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("width = 40\n")
	if err := os.WriteFile(filepath.Join(dir, "iterm2img", "config"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err = GetFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f == nil || f.Global.Width == nil || f.Global.Width.String() != "40" {
		t.Fatalf("expected discovered config, got %v", f)
	}
}
