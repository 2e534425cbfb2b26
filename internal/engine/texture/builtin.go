package texture

import (
	"fmt"
	"image"
	"image/color"
	gomath "math"
)

// Builtin texture names, without the prefix.
const (
	GrassAlpha   = "grass_alpha"
	GrassDiffuse = "grass_diffuse"
	ForceMap     = "force_map"
)

// Builtin generates the named procedural texture.
func Builtin(name string) (*image.RGBA, error) {
	switch name {
	case GrassAlpha:
		return grassAlpha(64, 256), nil
	case GrassDiffuse:
		return grassDiffuse(64, 256), nil
	case ForceMap:
		return forceMap(128, 128), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, name)
}

// grassAlpha is a tapering blade silhouette. u runs along the blade (x axis,
// base at 0) and v across it (y axis).
func grassAlpha(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			half := 0.5 * (1 - gomath.Pow(u, 1.5))
			a := uint8(0)
			if gomath.Abs(v-0.5) < half {
				a = 255
			}
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: a})
		}
	}
	return img
}

// grassDiffuse darkens towards the root and carries a faint centre vein.
func grassDiffuse(w, h int) *image.RGBA {
	root := [3]float64{0.13, 0.30, 0.07}
	tip := [3]float64{0.55, 0.72, 0.25}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		vein := 1 - 0.15*gomath.Exp(-gomath.Pow((v-0.5)*12, 2))
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			var c [3]uint8
			for i := range c {
				c[i] = uint8(255 * clamp01((root[i]+(tip[i]-root[i])*u)*vein))
			}
			img.SetRGBA(x, y, color.RGBA{R: c[0], G: c[1], B: c[2], A: 255})
		}
	}
	return img
}

// forceMap encodes a gentle swirl: red and green hold the x and z force
// remapped from [-1, 1] to [0, 255].
func forceMap(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		fy := (float64(y)+0.5)/float64(h)*2 - 1
		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)/float64(w)*2 - 1
			// prevailing wind along +x bent around the centre
			dx := 0.7 - 0.3*fy
			dz := 0.3 * fx
			n := gomath.Hypot(dx, dz)
			if n > 1 {
				dx, dz = dx/n, dz/n
			}
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * clamp01(0.5+0.5*dx)),
				G: uint8(255 * clamp01(0.5+0.5*dz)),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func clamp01(v float64) float64 {
	return gomath.Max(0, gomath.Min(1, v))
}
