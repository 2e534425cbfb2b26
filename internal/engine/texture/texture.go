// Package texture decodes images into RGBA pixel data ready for upload.
//
// Names starting with "builtin:" are generated procedurally instead of read,
// so the renderer runs without any image files on disk.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// BuiltinPrefix marks a procedurally generated texture name.
const BuiltinPrefix = "builtin:"

// ErrUnknownBuiltin is returned for a builtin name with no generator.
var ErrUnknownBuiltin = errors.New("unknown builtin texture")

// Reader reads an asset by path.
type Reader interface {
	Read(path string) ([]byte, error)
}

// Load resolves name to an RGBA image: builtin names are generated, anything
// else is read through r and decoded.
func Load(r Reader, name string) (*image.RGBA, error) {
	if strings.HasPrefix(name, BuiltinPrefix) {
		return Builtin(strings.TrimPrefix(name, BuiltinPrefix))
	}
	data, err := r.Read(name)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// Decode decodes PNG, JPEG, GIF, BMP, TIFF or WebP data.
func Decode(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ImageToRGBA(img), nil
}

// ImageToRGBA converts any image.Image to *image.RGBA with its origin at (0, 0).
func ImageToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(rgba, image.Point{}, img, b, xdraw.Src, nil)
	return rgba
}
