// Package imgcat writes images from files, stdin and URLs to the terminal
// using the inline image protocol.
package imgcat

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/ryanfowler/iterm2img"
	"github.com/ryanfowler/iterm2img/internal/config"
	"github.com/ryanfowler/iterm2img/internal/core"
	"github.com/ryanfowler/iterm2img/internal/image"
	"github.com/ryanfowler/iterm2img/internal/source"
)

// Request represents the images to display and how to display them.
type Request struct {
	Args          []string
	Config        *config.Config // options from the command line
	DryRun        bool
	File          *config.File // may be nil
	Name          string
	NoName        bool
	Output        string
	PrinterHandle *core.Handle
	Stdin         io.Reader
	Terminal      image.Terminal
	TerminalSize  func() (core.TerminalSize, error)
}

// Display writes each image in the Request, returning the exit status.
func Display(ctx context.Context, r *Request) int {
	if err := display(ctx, r); err != nil {
		core.WriteErrorMsg(r.PrinterHandle.Stderr(), err)
		return 1
	}
	return 0
}

func display(ctx context.Context, r *Request) (err error) {
	out, closeFn, err := r.openOutput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(err == nil); err == nil {
			err = cerr
		}
	}()

	errPrinter := r.PrinterHandle.Stderr()
	if !r.DryRun && r.Output == "" && core.IsStdoutTerm && !r.Terminal.Emulator.SupportsInline() &&
		getVerbosity(r.File.Resolve(r.Config, "")) >= core.VNormal {
		msg := fmt.Sprintf("terminal '%s' may not support inline images", r.Terminal.Emulator)
		core.WriteWarningMsg(errPrinter, msg)
	}

	var params []imageParams
	for _, arg := range r.Args {
		if err := ctx.Err(); err != nil {
			return context.Cause(ctx)
		}

		cfg := r.File.Resolve(r.Config, source.Host(arg))
		img, p, err := r.prepare(ctx, cfg, arg)
		if err != nil {
			return err
		}

		if r.DryRun {
			params = append(params, p)
			continue
		}

		seq := img.Build()
		if p.Tmux {
			seq = image.WrapTmux(seq)
		}
		if _, err = io.WriteString(out, seq+"\n"); err != nil {
			return err
		}
	}

	if r.DryRun {
		b, err := yaml.Marshal(params)
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	}
	return nil
}

// imageParams are the parameters an image is encoded with.
type imageParams struct {
	Source              string            `yaml:"source"`
	Name                string            `yaml:"name,omitempty"`
	Size                int               `yaml:"size"`
	Width               *iterm2img.Length `yaml:"width,omitempty"`
	Height              *iterm2img.Length `yaml:"height,omitempty"`
	PreserveAspectRatio *bool             `yaml:"preserve_aspect_ratio,omitempty"`
	Inline              bool              `yaml:"inline"`
	Tmux                bool              `yaml:"tmux"`
}

// prepare reads the source and builds the Image for it.
func (r *Request) prepare(ctx context.Context, cfg *config.Config, arg string) (iterm2img.Image, imageParams, error) {
	errPrinter := r.PrinterHandle.Stderr()
	verbosity := getVerbosity(cfg)

	src, err := source.Read(ctx, source.Config{
		Insecure: getValue(cfg.Insecure),
		MaxSize:  getValue(cfg.MaxSize),
		NoEncode: getValue(cfg.NoEncode),
		Proxy:    cfg.Proxy,
		Stdin:    r.Stdin,
		Timeout:  getValue(cfg.Timeout),
	}, arg)
	if err != nil {
		return iterm2img.Image{}, imageParams{}, err
	}

	if verbosity >= core.VVerbose {
		errPrinter.WriteInfoPrefix()
		errPrinter.Set(core.Bold)
		errPrinter.WriteString(src.Origin)
		errPrinter.Reset()
		errPrinter.WriteString(" (")
		errPrinter.WriteString(core.FormatSize(int64(len(src.Data))))
		errPrinter.WriteString(")\n")
		errPrinter.Flush()
	}

	data := src.Data
	if getValue(cfg.Fit) {
		data = r.fit(ctx, data, verbosity)
	}

	p := imageParams{
		Source: src.Origin,
		Size:   len(data),
		Inline: true,
		Tmux:   r.useTmux(cfg.Tmux),
	}

	img := iterm2img.FromBytes(data)
	switch {
	case r.Name != "":
		p.Name = r.Name
	case !r.NoName:
		p.Name = src.Name
	}
	if p.Name != "" {
		img = img.Name(p.Name)
		if img.UnsafeName() {
			return img, p, unsafeNameError(p.Name)
		}
	}
	if cfg.Width != nil {
		img = img.WidthLength(*cfg.Width)
		p.Width = cfg.Width
	}
	if cfg.Height != nil {
		img = img.HeightLength(*cfg.Height)
		p.Height = cfg.Height
	}
	if cfg.PreserveAspectRatio != nil {
		img = img.PreserveAspectRatio(*cfg.PreserveAspectRatio)
		p.PreserveAspectRatio = cfg.PreserveAspectRatio
	}
	if cfg.Inline != nil {
		p.Inline = *cfg.Inline
	}
	img = img.Inline(p.Inline)

	return img, p, nil
}

// fit scales the image data down to the terminal size. Images that cannot be
// decoded are returned unchanged with a warning.
func (r *Request) fit(ctx context.Context, data []byte, v core.Verbosity) []byte {
	errPrinter := r.PrinterHandle.Stderr()

	termSize := r.TerminalSize
	if termSize == nil {
		termSize = core.GetTerminalSize
	}
	ts, err := termSize()
	if err != nil && v >= core.VVerbose {
		core.WriteWarningMsg(errPrinter, "unable to get terminal size: "+err.Error())
	}

	res, err := image.Fit(ctx, data, ts)
	if err != nil {
		if v >= core.VNormal {
			core.WriteWarningMsg(errPrinter, "unable to fit image: "+err.Error())
		}
		return data
	}

	if v >= core.VVerbose && res.Changed {
		errPrinter.WriteInfoPrefix()
		errPrinter.WriteString("resized to ")
		errPrinter.WriteString(strconv.Itoa(res.Width))
		errPrinter.WriteString("x")
		errPrinter.WriteString(strconv.Itoa(res.Height))
		errPrinter.WriteString("px (")
		errPrinter.WriteString(core.FormatSize(int64(len(res.Data))))
		errPrinter.WriteString(")\n")
		errPrinter.Flush()
	}
	return res.Data
}

func (r *Request) useTmux(t core.Tmux) bool {
	switch t {
	case core.TmuxOn:
		return true
	case core.TmuxOff:
		return false
	default:
		return r.Terminal.Tmux
	}
}

// openOutput returns the writer for image output, along with a function that
// closes it. An output file is removed when closed after a failure.
func (r *Request) openOutput() (io.Writer, func(ok bool) error, error) {
	if r.Output == "" || r.Output == "-" {
		return &printerWriter{p: r.PrinterHandle.Stdout()}, func(bool) error { return nil }, nil
	}

	f, err := os.Create(r.Output)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func(ok bool) error {
		err := f.Close()
		if !ok || err != nil {
			os.Remove(f.Name())
		}
		return err
	}
	return f, closeFn, nil
}

// printerWriter writes through a Printer, flushing after every write.
type printerWriter struct {
	p *core.Printer
}

func (w *printerWriter) Write(b []byte) (int, error) {
	n, _ := w.p.Write(b)
	return n, w.p.Flush()
}

func getVerbosity(cfg *config.Config) core.Verbosity {
	if getValue(cfg.Silent) {
		return core.VSilent
	}
	switch getValue(cfg.Verbosity) {
	case 0:
		return core.VNormal
	case 1:
		return core.VVerbose
	default:
		return core.VExtraVerbose
	}
}

func getValue[T any](v *T) T {
	if v == nil {
		var t T
		return t
	}
	return *v
}

type unsafeNameError string

func (err unsafeNameError) Error() string {
	return fmt.Sprintf("name %q contains characters that cannot be sent to the terminal", string(err))
}

func (err unsafeNameError) PrintTo(p *core.Printer) {
	p.WriteString("name ")
	p.Set(core.Yellow)
	p.WriteString(strconv.Quote(string(err)))
	p.Reset()
	p.WriteString(" contains characters that cannot be sent to the terminal")
}
