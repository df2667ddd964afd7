//go:build windows

package core

import (
	"os"

	"golang.org/x/sys/windows"
)

func init() {
	// Escape sequences, both colors and inline images, are only interpreted
	// once virtual terminal processing is enabled on the console.
	for _, f := range []*os.File{os.Stderr, os.Stdout} {
		h := windows.Handle(f.Fd())
		var mode uint32
		if windows.GetConsoleMode(h, &mode) == nil {
			_ = windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
		}
	}
}

// GetTerminalSize returns the terminal size, or an error if unavailable. The
// Windows console does not report pixel dimensions.
func GetTerminalSize() (TerminalSize, error) {
	var info windows.ConsoleScreenBufferInfo
	err := windows.GetConsoleScreenBufferInfo(windows.Handle(os.Stdout.Fd()), &info)
	if err != nil {
		return TerminalSize{}, err
	}
	return TerminalSize{
		Cols: int(info.Window.Right - info.Window.Left + 1),
		Rows: int(info.Window.Bottom - info.Window.Top + 1),
	}, nil
}
