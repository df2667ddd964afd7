package cli

import (
	"errors"
	"strings"

	"github.com/ryanfowler/iterm2img/internal/config"
	"github.com/ryanfowler/iterm2img/internal/core"
	"github.com/ryanfowler/iterm2img/internal/source"
)

// App represents the full configuration for an iterm2img invocation.
type App struct {
	Args []string

	Cfg config.Config

	BuildInfo  bool
	ConfigPath string
	DryRun     bool
	Help       bool
	Name       string
	NoName     bool
	Output     string
	Version    bool
}

func (a *App) PrintHelp(p *core.Printer) {
	printHelp(a.CLI(), p)
}

func (a *App) CLI() *CLI {
	return &CLI{
		Name:        "iterm2img",
		Description: "iterm2img displays images inline in the terminal",
		Args: []Arguments{
			{Name: "FILE|URL", Description: "Image file, HTTP(S) URL, or '-' for stdin"},
		},
		ArgFn: func(s string) error {
			if s == "" {
				return errors.New("empty argument provided")
			}
			if scheme, _, ok := strings.Cut(s, "://"); ok && !source.IsURL(s) {
				return unsupportedSchemeError(strings.ToLower(scheme))
			}
			a.Args = append(a.Args, s)
			return nil
		},
		ExclusiveFlags: [][]string{
			{"name", "no-name"},
			{"silent", "verbose"},
		},
		Flags: []Flag{
			boolFlag(&a.BuildInfo, "buildinfo", "", "Print build information"),
			{
				Long:        "color",
				Aliases:     []string{"colour"},
				Args:        "OPTION",
				Description: "Enable/disable color",
				Values:      []string{"auto", "off", "on"},
				Default:     "auto",
				IsSet: func() bool {
					return a.Cfg.Color != core.ColorUnknown
				},
				Fn: a.Cfg.ParseColor,
			},
			stringFlag(&a.ConfigPath, "config", "c", "PATH", "Path to config file"),
			boolFlag(&a.DryRun, "dry-run", "", "Print the image parameters as YAML without writing images"),
			cfgBoolFlag("fit", "", "Scale images down to fit the terminal",
				func() bool { return a.Cfg.Fit != nil },
				a.Cfg.ParseFit),
			cfgFlag("height", "H", "LENGTH", "Display height (N cells, Npx, N%, or auto)",
				func() bool { return a.Cfg.Height != nil },
				a.Cfg.ParseHeight),
			boolFlag(&a.Help, "help", "h", "Print help"),
			{
				Long:        "inline",
				Args:        "BOOL",
				Description: "Display the image inline, rather than downloading it",
				Default:     "true",
				IsSet: func() bool {
					return a.Cfg.Inline != nil
				},
				Fn: a.Cfg.ParseInline,
			},
			cfgBoolFlag("insecure", "", "Accept invalid TLS certificates",
				func() bool { return a.Cfg.Insecure != nil },
				a.Cfg.ParseInsecure),
			cfgFlag("max-size", "", "SIZE", "Maximum image size to read (e.g. 10M)",
				func() bool { return a.Cfg.MaxSize != nil },
				a.Cfg.ParseMaxSize),
			stringFlag(&a.Name, "name", "n", "NAME", "Filename sent to the terminal [default: base name]"),
			cfgBoolFlag("no-encode", "", "Do not request compressed HTTP responses",
				func() bool { return a.Cfg.NoEncode != nil },
				a.Cfg.ParseNoEncode),
			boolFlag(&a.NoName, "no-name", "", "Do not send a filename"),
			stringFlag(&a.Output, "output", "o", "PATH", "Write escape sequences to a file"),
			{
				Long:        "preserve-aspect-ratio",
				Args:        "BOOL",
				Description: "Preserve the aspect ratio when both dimensions are set",
				IsSet: func() bool {
					return a.Cfg.PreserveAspectRatio != nil
				},
				Fn: a.Cfg.ParsePreserveAspectRatio,
			},
			cfgFlag("proxy", "", "PROXY", "Proxy for HTTP(S) sources",
				func() bool { return a.Cfg.Proxy != nil },
				a.Cfg.ParseProxy),
			cfgBoolFlag("silent", "s", "Print no warnings",
				func() bool { return a.Cfg.Silent != nil },
				a.Cfg.ParseSilent),
			cfgFlag("timeout", "t", "SECONDS", "Timeout for HTTP(S) sources",
				func() bool { return a.Cfg.Timeout != nil },
				a.Cfg.ParseTimeout),
			{
				Long:        "tmux",
				Args:        "OPTION",
				Description: "Wrap output for tmux passthrough",
				Values:      []string{"auto", "off", "on"},
				Default:     "auto",
				IsSet: func() bool {
					return a.Cfg.Tmux != core.TmuxUnknown
				},
				Fn: a.Cfg.ParseTmux,
			},
			{
				Short:       "v",
				Long:        "verbose",
				Description: "Verbosity of the output to stderr",
				IsSet: func() bool {
					return a.Cfg.Verbosity != nil
				},
				Fn: func(string) error {
					if a.Cfg.Verbosity == nil {
						a.Cfg.Verbosity = core.PointerTo(0)
					}
					*a.Cfg.Verbosity++
					return nil
				},
			},
			boolFlag(&a.Version, "version", "V", "Print version"),
			cfgFlag("width", "w", "LENGTH", "Display width (N cells, Npx, N%, or auto)",
				func() bool { return a.Cfg.Width != nil },
				a.Cfg.ParseWidth),
		},
	}
}
