package image

import (
	"os"
	"strings"
)

// Emulator identifies a terminal emulator.
type Emulator int

const (
	EmulatorUnknown Emulator = iota
	EmulatorAlacritty
	EmulatorApple
	EmulatorGhostty
	EmulatorHyper
	EmulatorIterm2
	EmulatorKitty
	EmulatorKonsole
	EmulatorMintty
	EmulatorVSCode
	EmulatorWarp
	EmulatorWezTerm
	EmulatorWindows
)

var emulatorNames = [...]string{
	EmulatorUnknown:   "unknown",
	EmulatorAlacritty: "Alacritty",
	EmulatorApple:     "Apple Terminal",
	EmulatorGhostty:   "Ghostty",
	EmulatorHyper:     "Hyper",
	EmulatorIterm2:    "iTerm2",
	EmulatorKitty:     "kitty",
	EmulatorKonsole:   "Konsole",
	EmulatorMintty:    "mintty",
	EmulatorVSCode:    "VS Code",
	EmulatorWarp:      "Warp",
	EmulatorWezTerm:   "WezTerm",
	EmulatorWindows:   "Windows Terminal",
}

func (e Emulator) String() string {
	if e < 0 || int(e) >= len(emulatorNames) {
		return emulatorNames[EmulatorUnknown]
	}
	return emulatorNames[e]
}

// SupportsInline reports whether the emulator is known to render the
// inline image protocol.
func (e Emulator) SupportsInline() bool {
	switch e {
	case EmulatorHyper, EmulatorIterm2, EmulatorMintty, EmulatorVSCode, EmulatorWarp, EmulatorWezTerm:
		return true
	default:
		return false
	}
}

// Terminal describes the environment the output is written to.
type Terminal struct {
	Emulator Emulator
	Tmux     bool
}

// DetectTerminal inspects environment variables to determine the terminal
// emulator and whether the process is running inside tmux. Nothing is
// written to or read from the terminal.
func DetectTerminal() Terminal {
	return detectTerminal(os.Getenv)
}

func detectTerminal(getenv func(string) string) Terminal {
	t := Terminal{
		Tmux: getenv("TMUX") != "" || getenv("TERM_PROGRAM") == "tmux" ||
			strings.HasPrefix(getenv("TERM"), "tmux"),
	}

	// Inside tmux, TERM_PROGRAM and TERM describe tmux itself, while
	// LC_TERMINAL is forwarded by iTerm2 over ssh and tmux.
	if getenv("LC_TERMINAL") == "iTerm2" {
		t.Emulator = EmulatorIterm2
		return t
	}

	for _, fn := range []func(func(string) string) (Emulator, bool){
		detectProgramVar,
		detectTermVar,
		detectCustomVar,
	} {
		if em, ok := fn(getenv); ok {
			t.Emulator = em
			return t
		}
	}
	return t
}

func detectProgramVar(getenv func(string) string) (Emulator, bool) {
	switch getenv("TERM_PROGRAM") {
	case "Apple_Terminal":
		return EmulatorApple, true
	case "ghostty":
		return EmulatorGhostty, true
	case "Hyper":
		return EmulatorHyper, true
	case "iTerm.app":
		return EmulatorIterm2, true
	case "mintty":
		return EmulatorMintty, true
	case "vscode":
		return EmulatorVSCode, true
	case "WarpTerminal":
		return EmulatorWarp, true
	case "WezTerm":
		return EmulatorWezTerm, true
	default:
		return EmulatorUnknown, false
	}
}

func detectTermVar(getenv func(string) string) (Emulator, bool) {
	switch getenv("TERM") {
	case "alacritty":
		return EmulatorAlacritty, true
	case "xterm-ghostty":
		return EmulatorGhostty, true
	case "xterm-kitty":
		return EmulatorKitty, true
	default:
		return EmulatorUnknown, false
	}
}

func detectCustomVar(getenv func(string) string) (Emulator, bool) {
	switch {
	case getenv("GHOSTTY_BIN_DIR") != "":
		return EmulatorGhostty, true
	case getenv("ITERM_SESSION_ID") != "":
		return EmulatorIterm2, true
	case getenv("KITTY_PID") != "":
		return EmulatorKitty, true
	case getenv("KONSOLE_VERSION") != "":
		return EmulatorKonsole, true
	case getenv("WEZTERM_EXECUTABLE") != "":
		return EmulatorWezTerm, true
	case getenv("WT_SESSION") != "":
		return EmulatorWindows, true
	default:
		return EmulatorUnknown, false
	}
}
