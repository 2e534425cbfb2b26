// Package grass generates the per-blade vertex records of a grass patch.
//
// Each blade is one tessellation patch of four control points. Every control
// point is four consecutive Vec4 records:
//
//	+0 shape corner  (xyz position, w = per-blade noise)
//	+1 root marker   (blade centre x, 0 at the base or 1 at the tip, centre z, noise)
//	+2 texture coord (uv, noise, noise)
//	+3 noise vector  (four uniform values shared by the whole blade)
//
// Control points run base-left, tip-left, tip-right, base-right.
package grass

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meadow/pkg/math"
)

// RecordsPerBlade is the number of Vec4 records in one blade.
const RecordsPerBlade = 16

// CornersPerBlade is the tessellation patch size.
const CornersPerBlade = 4

// RecordsPerCorner is the number of vertex attributes per control point.
const RecordsPerCorner = RecordsPerBlade / CornersPerBlade

// Blade is one grass blade in wire order.
type Blade [RecordsPerBlade]math.Vec4

// Corner returns the shape corner of control point i.
func (b *Blade) Corner(i int) math.Vec4 { return b[i*RecordsPerCorner] }

// Root returns the root marker of control point i.
func (b *Blade) Root(i int) math.Vec4 { return b[i*RecordsPerCorner+1] }

// UV returns the texture coordinate record of control point i.
func (b *Blade) UV(i int) math.Vec4 { return b[i*RecordsPerCorner+2] }

// Noise returns the noise vector of control point i.
func (b *Blade) Noise(i int) math.Vec4 { return b[i*RecordsPerCorner+3] }

// Field is the blade set of one patch. It is generated once and drawn once per tile.
type Field []Blade

// VertexCount returns the number of control points in the field.
func (f Field) VertexCount() int {
	return len(f) * CornersPerBlade
}

// Floats flattens the field into the vertex buffer layout.
func (f Field) Floats() []float32 {
	out := make([]float32, 0, len(f)*RecordsPerBlade*4)
	for i := range f {
		for _, r := range f[i] {
			out = append(out, r.X, r.Y, r.Z, r.W)
		}
	}
	return out
}

// Bounds returns the smallest and largest blade width and height in the field.
func (f Field) Bounds() (minW, maxW, minH, maxH float32) {
	for i := range f {
		b := &f[i]
		w := b.Corner(3).X - b.Corner(0).X
		h := b.Corner(1).Y - b.Corner(0).Y
		if i == 0 {
			minW, maxW, minH, maxH = w, w, h, h
			continue
		}
		minW = min(minW, w)
		maxW = max(maxW, w)
		minH = min(minH, h)
		maxH = max(maxH, h)
	}
	return minW, maxW, minH, maxH
}

// Source yields uniform values in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float32() float32
}

// Config controls blade count and size ranges.
type Config struct {
	BladeCount int
	MinWidth   float32
	MaxWidth   float32
	MinHeight  float32
	MaxHeight  float32
}

// DefaultConfig returns the stock patch settings.
func DefaultConfig() Config {
	return Config{
		BladeCount: 7500,
		MinWidth:   0.0025,
		MaxWidth:   0.0075,
		MinHeight:  0.05,
		MaxHeight:  0.125,
	}
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid grass config")

// Validate rejects negative counts, negative sizes and inverted ranges.
func (c Config) Validate() error {
	switch {
	case c.BladeCount < 0:
		return fmt.Errorf("%w: blade count %d", ErrInvalidConfig, c.BladeCount)
	case c.MinWidth < 0 || c.MinWidth > c.MaxWidth:
		return fmt.Errorf("%w: width range [%v, %v]", ErrInvalidConfig, c.MinWidth, c.MaxWidth)
	case c.MinHeight < 0 || c.MinHeight > c.MaxHeight:
		return fmt.Errorf("%w: height range [%v, %v]", ErrInvalidConfig, c.MinHeight, c.MaxHeight)
	}
	return nil
}

// UnitPlane returns the corners of the unit ground plane centred on the origin.
func UnitPlane() [4]math.Vec3 {
	return [4]math.Vec3{
		{X: -0.5, Y: 0, Z: -0.5},
		{X: 0.5, Y: 0, Z: -0.5},
		{X: 0.5, Y: 0, Z: 0.5},
		{X: -0.5, Y: 0, Z: 0.5},
	}
}

// Generate builds cfg.BladeCount blades scattered over plane.
// plane[0] and plane[2] are opposite corners; blades sit at plane[0].Y.
func Generate(cfg Config, plane [4]math.Vec3, rnd Source) Field {
	return GenerateFunc(cfg, plane, rnd, nil)
}

// GenerateFunc is Generate with a callback after every blade, for progress
// reporting. fn may be nil.
func GenerateFunc(cfg Config, plane [4]math.Vec3, rnd Source, fn func(done int)) Field {
	if cfg.BladeCount <= 0 {
		return Field{}
	}
	field := make(Field, 0, cfg.BladeCount)
	for i := 0; i < cfg.BladeCount; i++ {
		field = append(field, newBlade(cfg, plane, rnd))
		if fn != nil {
			fn(i + 1)
		}
	}
	return field
}

func newBlade(cfg Config, plane [4]math.Vec3, rnd Source) Blade {
	var noise [8]float32
	for i := range noise {
		noise[i] = rnd.Float32()
	}

	width := cfg.MinWidth + rnd.Float32()*(cfg.MaxWidth-cfg.MinWidth)
	height := cfg.MinHeight + rnd.Float32()*(cfg.MaxHeight-cfg.MinHeight)

	lo, hi := plane[0], plane[2]
	x := lo.X + rnd.Float32()*(hi.X-lo.X)
	z := lo.Z + rnd.Float32()*(hi.Z-lo.Z)
	centre := math.Vec4{X: x, Y: lo.Y, Z: z, W: noise[0]}

	half := 0.5 * width
	var b Blade

	b[0] = centre.Sub(math.Vec4{X: half})
	b[4] = centre.Add(math.Vec4{X: -half, Y: height})
	b[8] = centre.Add(math.Vec4{X: half, Y: height})
	b[12] = centre.Add(math.Vec4{X: half})

	base := math.Vec4{X: x, Y: 0, Z: z, W: noise[1]}
	tip := math.Vec4{X: x, Y: 1, Z: z, W: noise[1]}
	b[1] = base
	b[5] = tip
	b[9] = tip
	b[13] = base

	b[2] = math.Vec4{X: 0, Y: 1, Z: noise[2], W: noise[3]}
	b[6] = math.Vec4{X: 1, Y: 1, Z: noise[2], W: noise[3]}
	b[10] = math.Vec4{X: 1, Y: 0, Z: noise[2], W: noise[3]}
	b[14] = math.Vec4{X: 0, Y: 0, Z: noise[2], W: noise[3]}

	v := math.Vec4{X: noise[4], Y: noise[5], Z: noise[6], W: noise[7]}
	b[3] = v
	b[7] = v
	b[11] = v
	b[15] = v

	return b
}
