// Package source reads image payloads from files, stdin and HTTP(S) URLs.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ryanfowler/iterm2img/internal/core"
)

// Stdin is the argument that selects standard input.
const Stdin = "-"

// Config represents the options used when reading a source.
type Config struct {
	Insecure bool
	MaxSize  int64 // 0 means unlimited
	NoEncode bool
	Proxy    *url.URL
	Stdin    io.Reader // defaults to os.Stdin
	Timeout  time.Duration
}

// Source is a payload and where it came from.
type Source struct {
	Name   string // base name, empty for stdin
	Origin string // path, URL, or "<stdin>"
	Data   []byte
}

// IsURL reports whether arg refers to an HTTP(S) URL.
func IsURL(arg string) bool {
	scheme, _, ok := strings.Cut(arg, "://")
	if !ok {
		return false
	}
	scheme = strings.ToLower(scheme)
	return scheme == "http" || scheme == "https"
}

// Host returns the hostname for a URL argument, or an empty string.
func Host(arg string) string {
	if !IsURL(arg) {
		return ""
	}
	u, err := url.Parse(arg)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Read returns the Source for the provided argument.
func Read(ctx context.Context, cfg Config, arg string) (*Source, error) {
	switch {
	case arg == Stdin:
		return readStdin(cfg)
	case IsURL(arg):
		return readURL(ctx, cfg, arg)
	default:
		return readFile(cfg, arg)
	}
}

func readStdin(cfg Config) (*Source, error) {
	r := cfg.Stdin
	if r == nil {
		r = os.Stdin
	}
	data, err := readAll(r, cfg.MaxSize, "<stdin>")
	if err != nil {
		return nil, err
	}
	return &Source{Origin: "<stdin>", Data: data}, nil
}

func readFile(cfg Config, name string) (*Source, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.FileNotExistsError(name)
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fileIsDirError(name)
	}
	if cfg.MaxSize > 0 && info.Mode().IsRegular() && info.Size() > cfg.MaxSize {
		return nil, sizeExceededError{origin: name, limit: cfg.MaxSize}
	}

	data, err := readAll(f, cfg.MaxSize, name)
	if err != nil {
		return nil, err
	}
	return &Source{Name: filepath.Base(name), Origin: name, Data: data}, nil
}

func readURL(ctx context.Context, cfg Config, arg string) (*Source, error) {
	u, err := url.Parse(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	u.Scheme = strings.ToLower(u.Scheme)

	c := newClient(cfg)
	req, err := c.newRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) && ue.Timeout() && cfg.Timeout > 0 {
			return nil, timeoutError{timeout: cfg.Timeout}
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError{url: u.String(), code: resp.StatusCode}
	}
	if cfg.MaxSize > 0 && resp.ContentLength > cfg.MaxSize {
		return nil, sizeExceededError{origin: u.String(), limit: cfg.MaxSize}
	}

	data, err := readAll(resp.Body, cfg.MaxSize, u.String())
	if err != nil {
		return nil, err
	}

	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = ""
	}
	return &Source{Name: name, Origin: u.String(), Data: data}, nil
}

// readAll reads the full contents of r, returning an error if more than
// limit bytes are available. A limit of 0 is unlimited.
func readAll(r io.Reader, limit int64, origin string) ([]byte, error) {
	if limit <= 0 || limit == math.MaxInt64 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, sizeExceededError{origin: origin, limit: limit}
	}
	return data, nil
}

type fileIsDirError string

func (err fileIsDirError) Error() string {
	return fmt.Sprintf("file '%s' is a directory", string(err))
}

func (err fileIsDirError) PrintTo(p *core.Printer) {
	p.WriteString("file '")
	p.Set(core.Dim)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("' is a directory")
}

type statusError struct {
	url  string
	code int
}

func (err statusError) Error() string {
	return fmt.Sprintf("request to '%s' failed with status %d", err.url, err.code)
}

func (err statusError) PrintTo(p *core.Printer) {
	p.WriteString("request to '")
	p.Set(core.Dim)
	p.WriteString(err.url)
	p.Reset()
	p.WriteString("' failed with status ")
	p.Set(core.Bold)
	p.Set(core.Red)
	p.WriteString(strconv.Itoa(err.code))
	p.Reset()
}

type sizeExceededError struct {
	origin string
	limit  int64
}

func (err sizeExceededError) Error() string {
	return fmt.Sprintf("'%s' exceeds the maximum size of %s", err.origin, core.FormatSize(err.limit))
}

func (err sizeExceededError) PrintTo(p *core.Printer) {
	p.WriteString("'")
	p.Set(core.Dim)
	p.WriteString(err.origin)
	p.Reset()
	p.WriteString("' exceeds the maximum size of ")
	p.Set(core.Bold)
	p.WriteString(core.FormatSize(err.limit))
	p.Reset()
}
