package image

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"os/exec"
	"slices"
)

const imagePathArg = "IMAGE_PATH"

// adaptor is an external program that converts an image to PNG on stdout.
type adaptor struct {
	name string
	args []string
	env  []string
}

var adaptors = []adaptor{
	{
		name: "vips",
		args: []string{"copy", imagePathArg, ".png"},
		env:  []string{"VIPS_MAX_MEM=512MB"},
	},
	{
		name: "magick",
		args: []string{imagePathArg, "-flatten", "-auto-orient", "png:-"},
		env:  []string{"MAGICK_MEMORY_LIMIT=512MiB"},
	},
	{
		name: "ffmpeg",
		args: []string{"-loglevel", "error", "-i", imagePathArg, "-frames:v", "1", "-f", "image2pipe", "-vcodec", "png", "pipe:1"},
	},
}

var errUnsupportedImage = errors.New("unable to decode image: unsupported format")

// decodeWithAdaptors decodes the image using the first external adaptor that
// is installed and succeeds.
func decodeWithAdaptors(ctx context.Context, b []byte) (image.Image, error) {
	f, err := os.CreateTemp("", "iterm2img-*")
	if err != nil {
		return nil, err
	}
	defer os.Remove(f.Name())

	_, err = f.Write(b)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return nil, err
	}

	for _, a := range adaptors {
		img, err := decodeAdaptor(ctx, f.Name(), a)
		if err == nil {
			return img, nil
		}
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}
	}
	return nil, errUnsupportedImage
}

func decodeAdaptor(ctx context.Context, imgPath string, a adaptor) (image.Image, error) {
	path, err := exec.LookPath(a.name)
	if err != nil {
		return nil, err
	}

	args := slices.Clone(a.args)
	for i, arg := range args {
		if arg == imagePathArg {
			args[i] = imgPath
		}
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	if len(a.env) > 0 {
		cmd.Env = append(slices.Clone(a.env), os.Environ()...)
	}
	cmd.Stdout = &stdout
	if err = cmd.Run(); err != nil {
		return nil, err
	}
	return decodeImageStd(stdout.Bytes())
}
