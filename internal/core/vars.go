package core

import (
	"encoding/json"
	"os"
	"runtime/debug"

	"golang.org/x/term"
)

// TerminalSize represents the dimensions of the terminal.
type TerminalSize struct {
	Cols     int // Number of columns (characters)
	Rows     int // Number of rows (characters)
	WidthPx  int // Width in pixels (0 if unavailable)
	HeightPx int // Height in pixels (0 if unavailable)
}

var (
	IsStdinTerm  bool
	IsStderrTerm bool
	IsStdoutTerm bool

	UserAgent string
	Version   string

	buildInfo *debug.BuildInfo
)

func init() {
	// Determine if stdin, stderr and stdout are TTYs.
	IsStdinTerm = term.IsTerminal(int(os.Stdin.Fd()))
	IsStderrTerm = term.IsTerminal(int(os.Stderr.Fd()))
	IsStdoutTerm = term.IsTerminal(int(os.Stdout.Fd()))

	// Set executable version and user-agent.
	Version = getVersion()
	UserAgent = "iterm2img/" + Version
}

// getVersion attempts to read the executable's BuildInfo, returning the version.
func getVersion() string {
	var ok bool
	buildInfo, ok = debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "v(dev)"
	}
	return buildInfo.Main.Version
}

// GetBuildInfo returns the JSON encoded build information for the executable.
func GetBuildInfo() []byte {
	type BuildInfo struct {
		Iterm2img string            `json:"iterm2img"`
		Go        string            `json:"go,omitzero"`
		Settings  map[string]string `json:"settings,omitzero"`
		Deps      map[string]string `json:"deps,omitzero"`
	}

	bi := BuildInfo{Iterm2img: Version}
	if buildInfo != nil {
		bi.Go = buildInfo.GoVersion

		if len(buildInfo.Deps) > 0 {
			bi.Deps = make(map[string]string, len(buildInfo.Deps))
			for _, dep := range buildInfo.Deps {
				bi.Deps[dep.Path] = dep.Version
			}
		}

		if len(buildInfo.Settings) > 0 {
			bi.Settings = make(map[string]string, len(buildInfo.Settings))
			for _, setting := range buildInfo.Settings {
				bi.Settings[setting.Key] = setting.Value
			}
		}
	}

	out, _ := json.MarshalIndent(bi, "", "  ")
	return append(out, '\n')
}
