package image

import "strings"

// WrapTmux wraps an escape sequence in a tmux DCS passthrough so that tmux
// forwards it to the outer terminal. Every ESC in seq is doubled.
//
// Passthrough must be enabled in tmux with "set -g allow-passthrough on".
func WrapTmux(seq string) string {
	var sb strings.Builder
	sb.Grow(len(seq) + 16)
	sb.WriteString("\x1bPtmux;")
	for i := 0; i < len(seq); {
		j := strings.IndexByte(seq[i:], 0x1b)
		if j < 0 {
			sb.WriteString(seq[i:])
			break
		}
		sb.WriteString(seq[i : i+j+1])
		sb.WriteByte(0x1b)
		i += j + 1
	}
	sb.WriteString("\x1b\\")
	return sb.String()
}
