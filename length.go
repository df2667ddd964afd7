package iterm2img

import (
	"fmt"
	"strconv"
	"strings"
)

type unit uint8

const (
	unitCells unit = iota
	unitPixels
	unitPercent
	unitAuto
)

// Length is the size of an image along one axis. It is one of Cells,
// Pixels, Percent or Auto.
type Length struct {
	unit unit
	n    uint64
}

// Cells returns a Length of n terminal character cells.
func Cells(n uint64) Length {
	return Length{unit: unitCells, n: n}
}

// Pixels returns a Length of n pixels.
func Pixels(n uint64) Length {
	return Length{unit: unitPixels, n: n}
}

// Percent returns a Length of n percent of the session size.
func Percent(n uint64) Length {
	return Length{unit: unitPercent, n: n}
}

// Auto returns a Length chosen by the terminal.
func Auto() Length {
	return Length{unit: unitAuto}
}

// String returns the wire representation of the Length.
func (l Length) String() string {
	switch l.unit {
	case unitPixels:
		return strconv.FormatUint(l.n, 10) + "px"
	case unitPercent:
		return strconv.FormatUint(l.n, 10) + "%"
	case unitAuto:
		return "auto"
	default:
		return strconv.FormatUint(l.n, 10)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Length) UnmarshalText(b []byte) error {
	v, err := ParseLength(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLength parses the wire representation of a Length: "auto", "N",
// "Npx" or "N%".
func ParseLength(s string) (Length, error) {
	if s == "auto" {
		return Auto(), nil
	}

	u := unitCells
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		u = unitPixels
		num = s[:len(s)-2]
	case strings.HasSuffix(s, "%"):
		u = unitPercent
		num = s[:len(s)-1]
	}

	// ParseUint accepts a leading '+', which is not a valid length.
	if num == "" || num[0] < '0' || num[0] > '9' {
		return Length{}, fmt.Errorf("invalid length %q", s)
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q", s)
	}
	return Length{unit: u, n: n}, nil
}
