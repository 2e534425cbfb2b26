// Package screenshot writes rendered frames to PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

const timeLayout = "2006-01-02_15-04-05"

// Capture names and writes screenshot files.
type Capture struct {
	dir    string
	prefix string
	now    func() time.Time
	seq    int
}

// New returns a Capture writing "<prefix>_<timestamp>.png" files into dir.
// An empty dir means the working directory.
func New(dir, prefix string) *Capture {
	return &Capture{dir: dir, prefix: prefix, now: time.Now}
}

// FromPixels converts bottom-up RGBA rows, as read back from the framebuffer,
// into a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: %dx%d needs %d bytes, got %d",
			width, height, width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}

// SavePixels flips and writes framebuffer pixels. Returns the file written.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return c.Save(img)
}

// Save writes img as PNG. Returns the file written.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := c.nextName()
	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, file.Close()
}

// nextName adds a counter when two captures land in the same second.
func (c *Capture) nextName() string {
	stamp := c.now().Format(timeLayout)
	name := filepath.Join(c.dir, fmt.Sprintf("%s_%s.png", c.prefix, stamp))
	for {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name
		}
		c.seq++
		name = filepath.Join(c.dir, fmt.Sprintf("%s_%s_%d.png", c.prefix, stamp, c.seq))
	}
}
