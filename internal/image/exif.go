package image

import (
	"bytes"
	"encoding/binary"
	"image"
	"io"
)

// orientation is an EXIF orientation tag value in the range [1, 8]. Zero
// means no orientation was found.
type orientation int

// orientImage returns img rotated and mirrored according to o.
func orientImage(img image.Image, o orientation) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// Each mapping takes source coordinates to destination coordinates.
	var (
		swap bool
		fn   func(x, y int) (int, int)
	)
	switch o {
	case 2:
		fn = func(x, y int) (int, int) { return w - x - 1, y }
	case 3:
		fn = func(x, y int) (int, int) { return w - x - 1, h - y - 1 }
	case 4:
		fn = func(x, y int) (int, int) { return x, h - y - 1 }
	case 5:
		swap, fn = true, func(x, y int) (int, int) { return y, x }
	case 6:
		swap, fn = true, func(x, y int) (int, int) { return h - y - 1, x }
	case 7:
		swap, fn = true, func(x, y int) (int, int) { return h - y - 1, w - x - 1 }
	case 8:
		swap, fn = true, func(x, y int) (int, int) { return y, w - x - 1 }
	default:
		return img
	}

	rect := image.Rect(0, 0, w, h)
	if swap {
		rect = image.Rect(0, 0, h, w)
	}
	out := image.NewRGBA(rect)
	for y := range h {
		for x := range w {
			dx, dy := fn(x, y)
			out.Set(dx, dy, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

// parseOrientation returns the EXIF orientation of a JPEG image, or 0 if the
// image has no valid orientation tag.
func parseOrientation(r io.Reader) orientation {
	var marker uint16
	if binary.Read(r, binary.BigEndian, &marker) != nil || marker != 0xffd8 {
		return 0
	}

	// Find the APP1 segment.
	buf := make([]byte, 1<<12)
	for {
		var length uint16
		if binary.Read(r, binary.BigEndian, &marker) != nil {
			return 0
		}
		if binary.Read(r, binary.BigEndian, &length) != nil || length < 2 {
			return 0
		}
		if marker == 0xffe1 {
			r = io.LimitReader(r, int64(length-2))
			break
		}
		if discardBytes(r, buf, int64(length-2)) != nil {
			return 0
		}
	}

	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil || !bytes.Equal(header[:], []byte("Exif\x00\x00")) {
		return 0
	}

	var orderMarker uint16
	if binary.Read(r, binary.BigEndian, &orderMarker) != nil {
		return 0
	}
	var order binary.ByteOrder
	switch orderMarker {
	case 0x4d4d:
		order = binary.BigEndian
	case 0x4949:
		order = binary.LittleEndian
	default:
		return 0
	}

	var tiff struct {
		Magic     uint16
		IFDOffset uint32
	}
	if binary.Read(r, order, &tiff) != nil || tiff.Magic != 42 || tiff.IFDOffset < 8 {
		return 0
	}
	if discardBytes(r, buf, int64(tiff.IFDOffset-8)) != nil {
		return 0
	}

	var numEntries uint16
	if binary.Read(r, order, &numEntries) != nil {
		return 0
	}
	for range int(numEntries) {
		var entry struct {
			Tag   uint16
			Type  uint16
			Count uint32
			Value uint16
			_     uint16
		}
		if binary.Read(r, order, &entry) != nil {
			return 0
		}
		if entry.Tag != 0x0112 {
			continue
		}
		if entry.Value < 1 || entry.Value > 8 {
			return 0
		}
		return orientation(entry.Value)
	}
	return 0
}

func discardBytes(src io.Reader, buf []byte, n int64) error {
	written, err := io.CopyBuffer(io.Discard, io.LimitReader(src, n), buf)
	if written == n {
		return nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return err
}
