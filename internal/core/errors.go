package core

import (
	"fmt"
)

// SignalError represents the error when a signal is caught.
type SignalError string

func (err SignalError) Error() string {
	return fmt.Sprintf("received signal: %s", string(err))
}

// FileNotExistsError represents the error when a file does not exist.
type FileNotExistsError string

func (err FileNotExistsError) Error() string {
	return fmt.Sprintf("file '%s' does not exist", string(err))
}

func (err FileNotExistsError) PrintTo(p *Printer) {
	p.WriteString("file '")
	p.Set(Dim)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("' does not exist")
}

// ValueError represents an invalid value for a flag or config option.
type ValueError struct {
	option string
	value  string
	usage  string
	isFile bool
}

// NewValueError returns a new ValueError. If isFile is true, the option is
// reported as a config file key rather than a flag.
func NewValueError(option, value, usage string, isFile bool) *ValueError {
	return &ValueError{option: option, value: value, usage: usage, isFile: isFile}
}

func (err *ValueError) Error() string {
	if err.isFile {
		return fmt.Sprintf("invalid value '%s' for option '%s': %s", err.value, err.option, err.usage)
	}
	return fmt.Sprintf("invalid value '%s' for option '--%s': %s", err.value, err.option, err.usage)
}

func (err *ValueError) PrintTo(p *Printer) {
	p.WriteString("invalid value '")
	p.Set(Yellow)
	p.WriteString(err.value)
	p.Reset()

	p.WriteString("' for option '")
	p.Set(Bold)
	if !err.isFile {
		p.WriteString("--")
	}
	p.WriteString(err.option)
	p.Reset()

	p.WriteString("': ")
	p.WriteString(err.usage)
}
