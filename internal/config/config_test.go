package config

import (
	"testing"
	"time"

	"github.com/ryanfowler/iterm2img"
	"github.com/ryanfowler/iterm2img/internal/core"
)

func TestParseLengths(t *testing.T) {
	t.Run("width cells", func(t *testing.T) {
		c := &Config{}
		if err := c.ParseWidth("40"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Width == nil || *c.Width != iterm2img.Cells(40) {
			t.Errorf("expected width=40, got %v", c.Width)
		}
	})

	t.Run("height percent", func(t *testing.T) {
		c := &Config{}
		if err := c.ParseHeight("50%"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Height == nil || *c.Height != iterm2img.Percent(50) {
			t.Errorf("expected height=50%%, got %v", c.Height)
		}
	})

	t.Run("invalid unit", func(t *testing.T) {
		c := &Config{}
		if err := c.ParseWidth("10em"); err == nil {
			t.Error("expected error for invalid unit")
		}
		if c.Width != nil {
			t.Error("expected width to be unset")
		}
	})
}

func TestParseBools(t *testing.T) {
	fns := map[string]func(c *Config) *bool{
		"fit":                   func(c *Config) *bool { return c.Fit },
		"inline":                func(c *Config) *bool { return c.Inline },
		"insecure":              func(c *Config) *bool { return c.Insecure },
		"no-encode":             func(c *Config) *bool { return c.NoEncode },
		"preserve-aspect-ratio": func(c *Config) *bool { return c.PreserveAspectRatio },
		"silent":                func(c *Config) *bool { return c.Silent },
	}

	for key, get := range fns {
		t.Run(key, func(t *testing.T) {
			c := &Config{}
			if err := c.Set(key, "false"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v := get(c); v == nil || *v {
				t.Fatalf("expected %s=false, got %v", key, v)
			}
			if err := c.Set(key, "yes please"); err == nil {
				t.Fatalf("expected error for non-boolean %s", key)
			}
		})
	}
}

func TestParseTimeout(t *testing.T) {
	c := &Config{}
	if err := c.ParseTimeout("2.5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Timeout == nil || *c.Timeout != 2500*time.Millisecond {
		t.Fatalf("expected timeout=2.5s, got %v", c.Timeout)
	}
	if err := c.ParseTimeout("-1"); err == nil {
		t.Error("expected error for negative timeout")
	}
	if err := c.ParseTimeout("abc"); err == nil {
		t.Error("expected error for non-numeric timeout")
	}
}

func TestParseMaxSize(t *testing.T) {
	c := &Config{}
	if err := c.ParseMaxSize("10M"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MaxSize == nil || *c.MaxSize != 10<<20 {
		t.Fatalf("expected max-size=10M, got %v", c.MaxSize)
	}
	if err := c.ParseMaxSize("ten"); err == nil {
		t.Error("expected error for invalid size")
	}
}

func TestParseEnums(t *testing.T) {
	c := &Config{}
	if err := c.Set("colour", "off"); err != nil || c.Color != core.ColorOff {
		t.Fatalf("expected color=off, got %v (err=%v)", c.Color, err)
	}
	if err := c.Set("tmux", "on"); err != nil || c.Tmux != core.TmuxOn {
		t.Fatalf("expected tmux=on, got %v (err=%v)", c.Tmux, err)
	}
	if err := c.Set("tmux", "maybe"); err == nil {
		t.Error("expected error for invalid tmux value")
	}
	if err := c.Set("unknown", "1"); err == nil {
		t.Error("expected error for unknown option")
	}
}

func TestMerge(t *testing.T) {
	c := &Config{Width: core.PointerTo(iterm2img.Cells(10))}
	c2 := &Config{
		Width:  core.PointerTo(iterm2img.Cells(20)),
		Height: core.PointerTo(iterm2img.Auto()),
		Tmux:   core.TmuxOff,
	}
	c.Merge(c2)

	if *c.Width != iterm2img.Cells(10) {
		t.Errorf("expected width to keep priority, got %v", *c.Width)
	}
	if c.Height == nil || *c.Height != iterm2img.Auto() {
		t.Errorf("expected height to be merged, got %v", c.Height)
	}
	if c.Tmux != core.TmuxOff {
		t.Errorf("expected tmux to be merged, got %v", c.Tmux)
	}
}
