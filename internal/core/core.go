package core

// Color represents the options for enabling or disabling color output.
type Color int

const (
	ColorUnknown Color = iota
	ColorAuto
	ColorOn
	ColorOff
)

// Tmux represents the options for wrapping output in tmux passthrough
// sequences.
type Tmux int

const (
	TmuxUnknown Tmux = iota
	TmuxAuto
	TmuxOn
	TmuxOff
)

// Verbosity represents how verbose the output should be.
type Verbosity int

const (
	VSilent Verbosity = iota
	VNormal
	VVerbose
	VExtraVerbose
)

// PointerTo returns a pointer to the provided value.
func PointerTo[T any](v T) *T {
	return &v
}
