package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ryanfowler/iterm2img"
	"github.com/ryanfowler/iterm2img/internal/core"
)

// Config represents the configuration options for iterm2img.
type Config struct {
	isFile bool

	Color               core.Color
	Fit                 *bool
	Height              *iterm2img.Length
	Inline              *bool
	Insecure            *bool
	MaxSize             *int64
	NoEncode            *bool
	PreserveAspectRatio *bool
	Proxy               *url.URL
	Silent              *bool
	Timeout             *time.Duration
	Tmux                core.Tmux
	Verbosity           *int
	Width               *iterm2img.Length
}

// Merge merges the two Configs together, with "c" taking priority.
func (c *Config) Merge(c2 *Config) {
	if c.Color == core.ColorUnknown {
		c.Color = c2.Color
	}
	if c.Fit == nil {
		c.Fit = c2.Fit
	}
	if c.Height == nil {
		c.Height = c2.Height
	}
	if c.Inline == nil {
		c.Inline = c2.Inline
	}
	if c.Insecure == nil {
		c.Insecure = c2.Insecure
	}
	if c.MaxSize == nil {
		c.MaxSize = c2.MaxSize
	}
	if c.NoEncode == nil {
		c.NoEncode = c2.NoEncode
	}
	if c.PreserveAspectRatio == nil {
		c.PreserveAspectRatio = c2.PreserveAspectRatio
	}
	if c.Proxy == nil {
		c.Proxy = c2.Proxy
	}
	if c.Silent == nil {
		c.Silent = c2.Silent
	}
	if c.Timeout == nil {
		c.Timeout = c2.Timeout
	}
	if c.Tmux == core.TmuxUnknown {
		c.Tmux = c2.Tmux
	}
	if c.Verbosity == nil {
		c.Verbosity = c2.Verbosity
	}
	if c.Width == nil {
		c.Width = c2.Width
	}
}

// Clone returns a shallow copy of the Config.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}

// Set sets the provided key and value pair, returning any error encountered.
func (c *Config) Set(key, val string) error {
	var err error
	switch key {
	case "color", "colour":
		err = c.ParseColor(val)
	case "fit":
		err = c.ParseFit(val)
	case "height":
		err = c.ParseHeight(val)
	case "inline":
		err = c.ParseInline(val)
	case "insecure":
		err = c.ParseInsecure(val)
	case "max-size":
		err = c.ParseMaxSize(val)
	case "no-encode":
		err = c.ParseNoEncode(val)
	case "preserve-aspect-ratio":
		err = c.ParsePreserveAspectRatio(val)
	case "proxy":
		err = c.ParseProxy(val)
	case "silent":
		err = c.ParseSilent(val)
	case "timeout":
		err = c.ParseTimeout(val)
	case "tmux":
		err = c.ParseTmux(val)
	case "verbosity":
		err = c.ParseVerbosity(val)
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

func (c *Config) ParseFit(value string) error {
	v, err := c.parseBool("fit", value)
	if err != nil {
		return err
	}
	c.Fit = &v
	return nil
}

func (c *Config) ParseHeight(value string) error {
	l, err := c.parseLength("height", value)
	if err != nil {
		return err
	}
	c.Height = &l
	return nil
}

func (c *Config) ParseInline(value string) error {
	v, err := c.parseBool("inline", value)
	if err != nil {
		return err
	}
	c.Inline = &v
	return nil
}

func (c *Config) ParseInsecure(value string) error {
	v, err := c.parseBool("insecure", value)
	if err != nil {
		return err
	}
	c.Insecure = &v
	return nil
}

func (c *Config) ParseMaxSize(value string) error {
	n, err := core.ParseSize(value)
	if err != nil {
		const usage = "must be a size in bytes, optionally with a unit [K, M, G]"
		return core.NewValueError("max-size", value, usage, c.isFile)
	}
	c.MaxSize = &n
	return nil
}

func (c *Config) ParseNoEncode(value string) error {
	v, err := c.parseBool("no-encode", value)
	if err != nil {
		return err
	}
	c.NoEncode = &v
	return nil
}

func (c *Config) ParsePreserveAspectRatio(value string) error {
	v, err := c.parseBool("preserve-aspect-ratio", value)
	if err != nil {
		return err
	}
	c.PreserveAspectRatio = &v
	return nil
}

func (c *Config) ParseProxy(value string) error {
	proxy, err := url.Parse(value)
	if err != nil {
		return core.NewValueError("proxy", value, err.Error(), c.isFile)
	}
	c.Proxy = proxy
	return nil
}

func (c *Config) ParseSilent(value string) error {
	v, err := c.parseBool("silent", value)
	if err != nil {
		return err
	}
	c.Silent = &v
	return nil
}

func (c *Config) ParseTimeout(value string) error {
	secs, err := strconv.ParseFloat(value, 64)
	if err != nil || secs < 0 {
		return core.NewValueError("timeout", value, "must be a valid number", c.isFile)
	}
	c.Timeout = core.PointerTo(time.Duration(float64(time.Second) * secs))
	return nil
}

func (c *Config) ParseTmux(value string) error {
	switch value {
	case "auto":
		c.Tmux = core.TmuxAuto
	case "off":
		c.Tmux = core.TmuxOff
	case "on":
		c.Tmux = core.TmuxOn
	default:
		const usage = "must be one of [auto, off, on]"
		return core.NewValueError("tmux", value, usage, c.isFile)
	}
	return nil
}

func (c *Config) ParseVerbosity(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil || v < 0 {
		return core.NewValueError("verbosity", value, "must be a valid integer", c.isFile)
	}
	c.Verbosity = &v
	return nil
}

func (c *Config) ParseWidth(value string) error {
	l, err := c.parseLength("width", value)
	if err != nil {
		return err
	}
	c.Width = &l
	return nil
}

func (c *Config) parseBool(option, value string) (bool, error) {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false, core.NewValueError(option, value, "must be a boolean", c.isFile)
	}
	return v, nil
}

func (c *Config) parseLength(option, value string) (iterm2img.Length, error) {
	l, err := iterm2img.ParseLength(value)
	if err != nil {
		const usage = "must be one of [N, Npx, N%, auto]"
		return l, core.NewValueError(option, value, usage, c.isFile)
	}
	return l, nil
}

func cut(s, sep string) (string, string, bool) {
	key, val, ok := strings.Cut(s, sep)
	key, val = strings.TrimSpace(key), strings.TrimSpace(val)
	return key, val, ok
}

type invalidOptionError string

func (err invalidOptionError) Error() string {
	return fmt.Sprintf("invalid option: '%s'", string(err))
}

func (err invalidOptionError) PrintTo(p *core.Printer) {
	p.WriteString("invalid option: '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'")
}
