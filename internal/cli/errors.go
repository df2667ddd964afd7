package cli

import (
	"github.com/ryanfowler/iterm2img/internal/core"
)

// flagError is a parse error about a single flag, rendered as the message
// prefix, the quoted flag, then the message suffix.
type flagError struct {
	prefix string
	flag   string
	suffix string
}

func unknownFlagError(flag string) flagError {
	return flagError{prefix: "unknown flag ", flag: flag}
}

func flagNoArgsError(flag string) flagError {
	return flagError{prefix: "flag ", flag: flag, suffix: " does not take any arguments"}
}

func argRequiredError(flag string) flagError {
	return flagError{prefix: "argument required for flag ", flag: flag}
}

func (err flagError) Error() string {
	return err.prefix + "'" + err.flag + "'" + err.suffix
}

func (err flagError) PrintTo(p *core.Printer) {
	p.WriteString(err.prefix)
	p.WriteString("'")
	p.Set(core.Bold)
	p.WriteString(err.flag)
	p.Reset()
	p.WriteString("'")
	p.WriteString(err.suffix)
}

type exclusiveFlagsError struct {
	first, second string
}

func newExclusiveFlagsError(first, second string) exclusiveFlagsError {
	return exclusiveFlagsError{first: first, second: second}
}

func (err exclusiveFlagsError) Error() string {
	return "flags '--" + err.first + "' and '--" + err.second + "' cannot be used together"
}

func (err exclusiveFlagsError) PrintTo(p *core.Printer) {
	for i, name := range []string{err.first, err.second} {
		if i == 0 {
			p.WriteString("flags '")
		} else {
			p.WriteString("' and '")
		}
		p.Set(core.Bold)
		p.WriteString("--")
		p.WriteString(name)
		p.Reset()
	}
	p.WriteString("' cannot be used together")
}

type unsupportedSchemeError string

func (err unsupportedSchemeError) Error() string {
	return "unsupported url scheme: " + string(err)
}

func (err unsupportedSchemeError) PrintTo(p *core.Printer) {
	p.WriteString("unsupported url scheme: ")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
}
