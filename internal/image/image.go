// Package image prepares image payloads for display in a terminal.
package image

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ryanfowler/iterm2img/internal/core"
)

// FitResult is the outcome of fitting an image to the terminal.
type FitResult struct {
	Data    []byte // PNG data, or the original payload if Changed is false
	Width   int    // width in pixels
	Height  int    // height in pixels
	Changed bool
}

// Fit decodes the payload and scales it down so that it fits within the
// terminal's pixel dimensions, applying any EXIF orientation. If the image
// already fits and needs no rotation, the original payload is returned.
//
// Formats the standard decoders cannot handle are converted with an external
// adaptor (vips, magick or ffmpeg) when one is installed.
func Fit(ctx context.Context, data []byte, ts core.TerminalSize) (FitResult, error) {
	img, err := decodeImageStd(data)
	converted := false
	if err != nil {
		img, err = decodeWithAdaptors(ctx, data)
		if err != nil {
			return FitResult{}, err
		}
		converted = true
	}

	orientation := parseOrientation(bytes.NewReader(data))
	oriented := orientImage(img, orientation)
	resized := resizeForTerm(oriented, ts.WidthPx, ts.HeightPx)

	bounds := resized.Bounds()
	res := FitResult{Width: bounds.Dx(), Height: bounds.Dy()}
	if !converted && resized == img {
		res.Data = data
		return res, nil
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, resized); err != nil {
		return FitResult{}, err
	}
	res.Data = buf.Bytes()
	res.Changed = true
	return res, nil
}

func decodeImageStd(b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	return img, err
}

// resizeForTerm returns the image scaled to fit within 4/5ths of the terminal
// height and the full terminal width. Unknown terminal dimensions leave the
// image unchanged.
func resizeForTerm(img image.Image, termWidthPx, termHeightPx int) image.Image {
	if termWidthPx <= 0 || termHeightPx <= 0 {
		return img
	}
	termHeightPx = termHeightPx * 4 / 5

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= termWidthPx && height <= termHeightPx {
		return img
	}

	aspectRatio := float64(width) / float64(height)
	termAspectRatio := float64(termWidthPx) / float64(termHeightPx)
	if aspectRatio > termAspectRatio {
		h := max(int(float64(termWidthPx)/aspectRatio), 1)
		return resizeImage(img, termWidthPx, h)
	}
	w := max(int(float64(termHeightPx)*aspectRatio), 1)
	return resizeImage(img, w, termHeightPx)
}

func resizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, img.Bounds(), draw.Over, nil)
	return dst
}
