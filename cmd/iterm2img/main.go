package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ryanfowler/iterm2img/internal/cli"
	"github.com/ryanfowler/iterm2img/internal/config"
	"github.com/ryanfowler/iterm2img/internal/core"
	"github.com/ryanfowler/iterm2img/internal/image"
	"github.com/ryanfowler/iterm2img/internal/imgcat"
	"github.com/ryanfowler/iterm2img/internal/source"
)

func main() {
	// Cancel the context when one of the below signals are caught.
	ctx, cancel := context.WithCancelCause(context.Background())
	chSig := make(chan os.Signal, 1)
	signal.Notify(chSig, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		sig := <-chSig
		cancel(core.SignalError(sig.String()))
	}()

	// Parse the CLI args.
	app, err := cli.Parse(os.Args[1:])
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		writeCLIErr(p, err)
		os.Exit(1)
	}

	// Parse any config file. Host sections are merged per source.
	file, err := config.GetFile(app.ConfigPath)
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		core.WriteErrorMsg(p, err)
		os.Exit(1)
	}
	if file != nil && app.Cfg.Color == core.ColorUnknown {
		app.Cfg.Color = file.Global.Color
	}

	handle := core.NewHandle(app.Cfg.Color)

	// Print help to stdout.
	if app.Help {
		p := handle.Stdout()
		app.PrintHelp(p)
		p.Flush()
		os.Exit(0)
	}

	// Print version to stdout.
	if app.Version {
		fmt.Fprintln(os.Stdout, "iterm2img", core.Version)
		os.Exit(0)
	}

	// Print build info to stdout.
	if app.BuildInfo {
		os.Stdout.Write(core.GetBuildInfo())
		os.Exit(0)
	}

	// Read from stdin when it is piped and no sources are provided.
	args := app.Args
	if len(args) == 0 {
		if core.IsStdinTerm {
			p := handle.Stderr()
			writeCLIErr(p, errors.New("<FILE|URL> must be provided"))
			os.Exit(1)
		}
		args = []string{source.Stdin}
	}

	req := imgcat.Request{
		Args:          args,
		Config:        &app.Cfg,
		DryRun:        app.DryRun,
		File:          file,
		Name:          app.Name,
		NoName:        app.NoName,
		Output:        app.Output,
		PrinterHandle: handle,
		Terminal:      image.DetectTerminal(),
		TerminalSize:  core.GetTerminalSize,
	}
	status := imgcat.Display(ctx, &req)
	os.Exit(status)
}

// writeCLIErr writes the provided CLI error to the Printer.
func writeCLIErr(p *core.Printer, err error) {
	core.WriteErrorMsgNoFlush(p, err)

	p.WriteString("\nFor more information, try '")

	p.Set(core.Bold)
	p.WriteString("--help")
	p.Reset()

	p.WriteString("'.\n")
	p.Flush()
}
