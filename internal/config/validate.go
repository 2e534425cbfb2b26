package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meadow/internal/logger"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that values are usable. It does not touch the filesystem.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, g.Width, g.Height)
	}
	if g.FPSLimit < 0 {
		return fmt.Errorf("%w: fps_limit %d", ErrInvalid, g.FPSLimit)
	}
	switch g.MSAA {
	case 0, 2, 4, 8, 16:
	default:
		return fmt.Errorf("%w: msaa %d (0, 2, 4, 8 or 16)", ErrInvalid, g.MSAA)
	}

	cam := c.Camera
	if cam.FOVDegrees <= 0 || cam.FOVDegrees >= 180 {
		return fmt.Errorf("%w: fov_degrees %v", ErrInvalid, cam.FOVDegrees)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, cam.Near, cam.Far)
	}
	l := cam.Limits
	if l.MinZoom <= 0 || l.MaxZoom < l.MinZoom {
		return fmt.Errorf("%w: zoom range [%v, %v]", ErrInvalid, l.MinZoom, l.MaxZoom)
	}
	if l.MaxHeight < l.MinHeight {
		return fmt.Errorf("%w: height range [%v, %v]", ErrInvalid, l.MinHeight, l.MaxHeight)
	}

	gr := c.Grass
	if gr.BladeCount < 0 {
		return fmt.Errorf("%w: blade_count %d", ErrInvalid, gr.BladeCount)
	}
	if gr.MinWidth < 0 || gr.MaxWidth < gr.MinWidth {
		return fmt.Errorf("%w: blade width range [%v, %v]", ErrInvalid, gr.MinWidth, gr.MaxWidth)
	}
	if gr.MinHeight < 0 || gr.MaxHeight < gr.MinHeight {
		return fmt.Errorf("%w: blade height range [%v, %v]", ErrInvalid, gr.MinHeight, gr.MaxHeight)
	}
	if gr.GridExtent < 0 || gr.GridExtent > 16 {
		return fmt.Errorf("%w: grid_extent %d (0..16)", ErrInvalid, gr.GridExtent)
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
