// Package iterm2img builds iTerm2 inline image escape sequences.
//
// An Image is created from raw bytes, configured with chained setters, and
// serialized with Build:
//
//	seq := iterm2img.FromBytes(data).
//		Name("photo.jpg").
//		Width(40).
//		PreserveAspectRatio(true).
//		Inline(true).
//		Build()
//
// The payload is not inspected; any byte sequence is accepted.
package iterm2img

import (
	"encoding/base64"
	"strconv"
	"strings"
)

const (
	prefix     = "\x1b]1337;File="
	terminator = '\a'
)

// Image represents a pending inline image. The zero value is an empty
// payload with no options set.
//
// Setters use value receivers and return the updated Image, so an Image held
// by the caller is never modified by a later call.
type Image struct {
	data                []byte
	name                *string
	width               *Length
	height              *Length
	preserveAspectRatio *bool
	inline              *bool
}

// FromBytes returns an Image for the provided payload. The slice is retained
// and must not be modified until Build returns.
func FromBytes(b []byte) Image {
	return Image{data: b}
}

// Size returns the payload length in bytes.
func (img Image) Size() int {
	return len(img.data)
}

// Name sets the suggested filename. It is written verbatim.
func (img Image) Name(v string) Image {
	img.name = &v
	return img
}

// UnsafeName reports whether the name contains characters that would
// terminate or corrupt the escape sequence.
func (img Image) UnsafeName() bool {
	if img.name == nil {
		return false
	}
	return strings.ContainsFunc(*img.name, func(r rune) bool {
		return r == ';' || r == ':' || r < 0x20 || r == 0x7f
	})
}

// Width sets the width in terminal cells.
func (img Image) Width(v uint64) Image {
	return img.WidthLength(Cells(v))
}

// WidthPx sets the width in pixels.
func (img Image) WidthPx(v uint64) Image {
	return img.WidthLength(Pixels(v))
}

// WidthPercent sets the width as a percentage of the session width.
func (img Image) WidthPercent(v uint64) Image {
	return img.WidthLength(Percent(v))
}

// WidthAuto lets the terminal pick the width.
func (img Image) WidthAuto() Image {
	return img.WidthLength(Auto())
}

// WidthLength sets the width to the provided Length.
func (img Image) WidthLength(l Length) Image {
	img.width = &l
	return img
}

// Height sets the height in terminal cells.
func (img Image) Height(v uint64) Image {
	return img.HeightLength(Cells(v))
}

// HeightPx sets the height in pixels.
func (img Image) HeightPx(v uint64) Image {
	return img.HeightLength(Pixels(v))
}

// HeightPercent sets the height as a percentage of the session height.
func (img Image) HeightPercent(v uint64) Image {
	return img.HeightLength(Percent(v))
}

// HeightAuto lets the terminal pick the height.
func (img Image) HeightAuto() Image {
	return img.HeightLength(Auto())
}

// HeightLength sets the height to the provided Length.
func (img Image) HeightLength(l Length) Image {
	img.height = &l
	return img
}

// PreserveAspectRatio sets whether the terminal keeps the aspect ratio when
// both dimensions are given.
func (img Image) PreserveAspectRatio(v bool) Image {
	img.preserveAspectRatio = &v
	return img
}

// Inline sets whether the image is displayed inline, rather than downloaded.
func (img Image) Inline(v bool) Image {
	img.inline = &v
	return img
}

// Build returns the escape sequence for the image.
func (img Image) Build() string {
	var sb strings.Builder
	sb.Grow(len(prefix) + 128 + base64.StdEncoding.EncodedLen(len(img.data)))

	sb.WriteString(prefix)
	sb.WriteString("size=")
	sb.WriteString(strconv.Itoa(len(img.data)))

	if img.name != nil {
		sb.WriteString(";name=")
		sb.WriteString(*img.name)
	}
	if img.width != nil {
		sb.WriteString(";width=")
		sb.WriteString(img.width.String())
	}
	if img.height != nil {
		sb.WriteString(";height=")
		sb.WriteString(img.height.String())
	}
	if img.preserveAspectRatio != nil {
		sb.WriteString(";preserve_aspect_ratio=")
		sb.WriteByte(boolByte(*img.preserveAspectRatio))
	}
	if img.inline != nil {
		sb.WriteString(";inline=")
		sb.WriteByte(boolByte(*img.inline))
	}

	sb.WriteByte(':')
	sb.WriteString(base64.StdEncoding.EncodeToString(img.data))
	sb.WriteByte(terminator)

	return sb.String()
}

func boolByte(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}
