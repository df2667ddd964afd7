package cli

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ryanfowler/iterm2img/internal/core"
)

type CLI struct {
	Name           string
	Description    string
	ArgFn          func(s string) error
	Args           []Arguments
	Flags          []Flag
	ExclusiveFlags [][]string
}

type Arguments struct {
	Name        string
	Description string
}

type Flag struct {
	Short       string
	Long        string
	Aliases     []string
	Args        string
	Description string
	Default     string
	Values      []string
	IsSet       func() bool
	Fn          func(value string) error
}

func parse(cli *CLI, args []string) error {
	short := make(map[string]Flag)
	long := make(map[string]Flag)
	for _, flag := range cli.Flags {
		if flag.Short != "" {
			short[flag.Short] = flag
		}
		if flag.Long != "" {
			long[flag.Long] = flag
		}
		for _, alias := range flag.Aliases {
			if len(alias) == 1 {
				short[alias] = flag
			} else {
				long[alias] = flag
			}
		}
	}

	var err error
	for len(args) > 0 {
		arg := args[0]
		args = args[1:]

		// Parse argument. A lone "-" is an argument.
		if len(arg) <= 1 || arg[0] != '-' {
			err = cli.ArgFn(arg)
			if err != nil {
				return err
			}
			continue
		}

		// Parse short flag(s).
		if arg[1] != '-' {
			args, err = parseShortFlag(arg, args, short)
			if err != nil {
				return err
			}
			continue
		}

		// Parse long flag.
		if len(arg) > 2 {
			args, err = parseLongFlag(arg, args, long)
			if err != nil {
				return err
			}
			continue
		}

		// "--" means consider everything else arguments.
		for _, arg := range args {
			err = cli.ArgFn(arg)
			if err != nil {
				return err
			}
		}
		break
	}

	// Check exclusive flags.
	for _, exc := range cli.ExclusiveFlags {
		err = validateExclusives(exc, long)
		if err != nil {
			return err
		}
	}

	return nil
}

func parseShortFlag(arg string, args []string, short map[string]Flag) ([]string, error) {
	arg = arg[1:]

	for arg != "" {
		c := arg[:1]
		flag, exists := short[c]
		if !exists {
			return nil, unknownFlagError("-" + c)
		}

		var value string
		if len(arg) >= 2 && arg[1] == '=' {
			// -f=val
			value = arg[2:]
			arg = ""
			if flag.Args == "" {
				return nil, flagNoArgsError("-" + c)
			}
		} else if flag.Args != "" {
			if len(arg) > 1 {
				// -fval
				value = arg[1:]
			} else if len(args) > 0 {
				// -f val
				value = args[0]
				args = args[1:]
			} else {
				return nil, argRequiredError("-" + c)
			}
			arg = ""
		} else {
			arg = arg[1:]
		}

		if err := flag.Fn(value); err != nil {
			return nil, err
		}
	}

	return args, nil
}

func parseLongFlag(arg string, args []string, long map[string]Flag) ([]string, error) {
	name, value, ok := strings.Cut(arg[2:], "=")

	flag, exists := long[name]
	if !exists {
		return nil, unknownFlagError("--" + name)
	}

	if ok && flag.Args == "" {
		return nil, flagNoArgsError("--" + name)
	}

	if flag.Args != "" && !ok {
		if len(args) == 0 {
			return nil, argRequiredError("--" + name)
		}

		value = args[0]
		args = args[1:]
	}

	if err := flag.Fn(value); err != nil {
		return nil, err
	}

	return args, nil
}

func validateExclusives(exc []string, long map[string]Flag) error {
	var lastSet string
	for _, name := range exc {
		flag := long[name]
		if !flag.IsSet() {
			continue
		}

		if lastSet == "" {
			lastSet = name
			continue
		}

		return newExclusiveFlagsError(lastSet, name)
	}
	return nil
}

// Parse parses the command line arguments into an App. The returned App is
// never nil, so its color setting can be used to report any error.
func Parse(args []string) (*App, error) {
	var app App

	cli := app.CLI()
	err := parse(cli, args)
	if err != nil {
		return &app, err
	}

	return &app, nil
}

func printHelp(cli *CLI, p *core.Printer) {
	p.WriteString(cli.Description)
	p.WriteString("\n\n")

	writeHeading(p, "Usage")
	p.WriteString(" ")
	p.Set(core.Bold)
	p.WriteString(cli.Name)
	p.Reset()
	if len(cli.Flags) > 0 {
		p.WriteString(" [OPTIONS]")
	}
	for _, arg := range cli.Args {
		p.WriteString(" [" + arg.Name + "]...")
	}
	p.WriteString("\n")

	if len(cli.Args) > 0 {
		p.WriteString("\n")
		writeHeading(p, "Arguments")
		p.WriteString("\n")
		for _, arg := range cli.Args {
			p.WriteString("  [" + arg.Name + "]  " + arg.Description + "\n")
		}
	}

	if len(cli.Flags) == 0 {
		return
	}
	p.WriteString("\n")
	writeHeading(p, "Options")
	p.WriteString("\n")

	width := maxFlagLength(cli.Flags)
	for _, flag := range cli.Flags {
		writeFlag(p, flag, width)
	}
}

// writeHeading writes a bold, underlined section title followed by a colon.
func writeHeading(p *core.Printer, title string) {
	p.Set(core.Bold)
	p.Set(core.Underline)
	p.WriteString(title)
	p.Reset()
	p.WriteString(":")
}

// writeFlag writes a single help line, padding the flag column to width.
func writeFlag(p *core.Printer, flag Flag, width int) {
	short := "    "
	if flag.Short != "" {
		short = "-" + flag.Short + ", "
	}
	p.Set(core.Bold)
	p.WriteString("  " + short + "--" + flag.Long)
	p.Reset()
	if flag.Args != "" {
		p.WriteString(" <" + flag.Args + ">")
	}
	p.WriteString(strings.Repeat(" ", 2+width-flagLength(flag)))

	p.WriteString(flag.Description)
	if len(flag.Values) > 0 {
		p.WriteString(" [" + strings.Join(flag.Values, ", ") + "]")
	}
	if flag.Default != "" {
		p.WriteString(" [default: " + flag.Default + "]")
	}
	p.WriteString("\n")
}

func maxFlagLength(fs []Flag) int {
	var out int
	for _, f := range fs {
		out = max(out, flagLength(f))
	}
	return out
}

// flagLength returns the display width of the flag's long name and args.
func flagLength(f Flag) int {
	out := runewidth.StringWidth(f.Long)
	if f.Args != "" {
		out += 3 + runewidth.StringWidth(f.Args)
	}
	return out
}
