//go:build unix

package core

import (
	"os"

	"golang.org/x/sys/unix"
)

// GetTerminalSize returns the terminal size, or an error if unavailable.
// Stderr is queried when stdout is not a terminal, so that the size is still
// known when output is piped or redirected.
func GetTerminalSize() (TerminalSize, error) {
	var ws *unix.Winsize
	var err error
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		ws, err = unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err == nil {
			break
		}
	}
	if err != nil {
		return TerminalSize{}, err
	}
	return TerminalSize{
		Cols:     int(ws.Col),
		Rows:     int(ws.Row),
		WidthPx:  int(ws.Xpixel),
		HeightPx: int(ws.Ypixel),
	}, nil
}
