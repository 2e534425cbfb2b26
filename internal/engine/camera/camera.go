// Package camera provides the orbiting camera used to view the grass field.
package camera

import (
	gomath "math"

	"github.com/Faultbox/meadow/pkg/math"
)

// Limits bounds and tunes camera movement.
type Limits struct {
	MinZoom float32 // closest distance to the target
	MaxZoom float32 // farthest distance to the target

	MinHeight  float32
	MaxHeight  float32
	HeightStep float32 // per-frame height change while up/down is held

	MaxPanSpeed         float32
	RotationSensitivity float32 // radians per pixel of horizontal drag

	ZoomRatio      float32 // distance per pixel of vertical drag
	CloseZoomRatio float32 // used instead of ZoomRatio below MaxZoom/5
}

// DefaultLimits returns the stock tuning.
func DefaultLimits() Limits {
	return Limits{
		MinZoom:             0.5,
		MaxZoom:             15.0,
		MinHeight:           0.5,
		MaxHeight:           6.5,
		HeightStep:          0.025,
		MaxPanSpeed:         0.005,
		RotationSensitivity: 0.005,
		ZoomRatio:           0.01,
		CloseZoomRatio:      0.006,
	}
}

// Camera looks from Position towards Target. The orbit always happens around
// the origin; panning moves the world, not the camera.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FOV  float32 // radians, measured along the shorter viewport axis
	Near float32
	Far  float32

	Limits Limits
}

// New creates a camera at pos looking at the origin.
func New(pos math.Vec3, fov, near, far float32, limits Limits) *Camera {
	return &Camera{
		Position: pos,
		Target:   math.Vec3{},
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
		FOV:      fov,
		Near:     near,
		Far:      far,
		Limits:   limits,
	}
}

// Distance returns the distance from the camera to its target.
func (c *Camera) Distance() float32 {
	return c.Position.Distance(c.Target)
}

// View builds the view matrix from an orthonormal basis around the viewing direction.
func (c *Camera) View() math.Transform {
	z := c.Position.Sub(c.Target).Normalize()
	x := c.Up.Cross(z).Normalize()
	y := z.Cross(x)

	orientation := math.NewTransform()
	orientation.SetRow(0, x)
	orientation.SetRow(1, y)
	orientation.SetRow(2, z)

	translation := math.NewTransform()
	translation.SetTranslation(c.Position.Neg())

	return orientation.Mul(translation)
}

// Projection builds the perspective matrix for a viewport of the given size.
// The longer axis is squeezed so that FOV spans the shorter one.
func (c *Camera) Projection(width, height int) math.Transform {
	aspectX, aspectY := float32(1), float32(1)
	if width > 0 && height > 0 {
		if width > height {
			aspectX = float32(height) / float32(width)
		} else {
			aspectY = float32(width) / float32(height)
		}
	}
	return math.TransformFromMat4(math.Perspective(c.FOV, c.Near, c.Far, aspectX, aspectY))
}

// Orbit rotates the camera about the world up axis by a horizontal drag of dx pixels.
func (c *Camera) Orbit(dx float32) {
	angle := -dx * c.Limits.RotationSensitivity
	c.Position = math.RotateY(angle).TransformPoint(c.Position)
}

// Zoom moves the camera along its viewing direction by a vertical drag of dy
// pixels, positive when the pointer moves up. The resulting distance is
// clamped to [MinZoom, MaxZoom].
func (c *Camera) Zoom(dy float32) {
	dist := c.Position.Length()

	ratio := c.Limits.ZoomRatio
	if dist < c.Limits.MaxZoom/5 {
		ratio = c.Limits.CloseZoomRatio
	}
	dist -= dy * ratio
	dist = clamp(dist, c.Limits.MinZoom, c.Limits.MaxZoom)

	c.Position = c.Position.Normalize().Scale(dist)
}

// AdjustHeight raises (dir > 0) or lowers (dir < 0) the camera by one step.
// It reports whether the camera moved.
func (c *Camera) AdjustHeight(dir int) bool {
	switch {
	case dir > 0 && c.Position.Y < c.Limits.MaxHeight:
		c.Position.Y = clamp(c.Position.Y+c.Limits.HeightStep, c.Limits.MinHeight, c.Limits.MaxHeight)
		return true
	case dir < 0 && c.Position.Y > c.Limits.MinHeight:
		c.Position.Y = clamp(c.Position.Y-c.Limits.HeightStep, c.Limits.MinHeight, c.Limits.MaxHeight)
		return true
	}
	return false
}

// PanOffset converts a pointer drag into a world translation along the
// camera's left and back axes. The step grows with the zoom distance.
func (c *Camera) PanOffset(dx, dy float32) math.Vec3 {
	factor := c.Limits.MaxPanSpeed * (c.Distance() / c.Limits.MaxZoom)

	dir := c.Position.Sub(c.Target).Normalize()
	left := math.Vec3{X: 0, Y: 1, Z: 0}.Cross(dir)
	back := left.Cross(math.Vec3{X: 0, Y: -1, Z: 0})

	return left.Scale(dx * factor).Add(back.Scale(-dy * factor))
}

// FOVFromDegrees converts a field of view in degrees to radians.
func FOVFromDegrees(deg float32) float32 {
	return deg * gomath.Pi / 180
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
