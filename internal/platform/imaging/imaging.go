package imaging

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/image/draw"
)

const jpegQuality = 85

// Normalize scales the image at path down so neither side exceeds
// maxDim, re-encoding it in place. Images already within the bound are
// left untouched. Only JPEG and PNG payloads are supported.
func Normalize(path string, maxDim int) error {
	if maxDim <= 0 {
		return errors.Newf("imaging: invalid max dimension %d", maxDim)
	}

	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "imaging: open image")
	}
	src, format, err := image.Decode(file)
	closeErr := file.Close()
	if err != nil {
		return errors.Wrap(err, "imaging: decode image")
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, "imaging: close image")
	}

	if format != "jpeg" && format != "png" {
		return errors.Newf("imaging: unsupported format %q", format)
	}

	bounds := src.Bounds()
	width, height, resized := Fit(bounds.Dx(), bounds.Dy(), maxDim)
	if !resized {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	switch format {
	case "png":
		err = png.Encode(buf, dst)
	default:
		err = jpeg.Encode(buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return errors.Wrap(err, "imaging: encode image")
	}

	return replaceFile(path, buf.Bytes())
}

// Fit returns the target dimensions for an image of the given size so
// the longer side equals maxDim, preserving aspect ratio. The third
// return reports whether scaling is needed at all.
func Fit(width, height, maxDim int) (int, int, bool) {
	if width <= maxDim && height <= maxDim {
		return width, height, false
	}

	if width >= height {
		scaled := height * maxDim / width
		if scaled < 1 {
			scaled = 1
		}
		return maxDim, scaled, true
	}

	scaled := width * maxDim / height
	if scaled < 1 {
		scaled = 1
	}
	return scaled, maxDim, true
}

// SupportedExt reports whether the file extension is one Normalize can
// re-encode.
func SupportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

func replaceFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "imaging: write temp image")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "imaging: replace image")
	}
	return nil
}
