package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meadow/pkg/math"
)

func newTestCamera() *Camera {
	return New(math.Vec3{X: 0, Y: 3, Z: 5}, FOVFromDegrees(15), 0.5, 30, DefaultLimits())
}

func TestViewMatchesLookAt(t *testing.T) {
	positions := []math.Vec3{
		{X: 0, Y: 3, Z: 5},
		{X: -2, Y: 1, Z: 0.5},
		{X: 7, Y: 6.5, Z: -3},
	}

	for _, pos := range positions {
		c := newTestCamera()
		c.Position = pos

		got := c.View().Matrix()
		want := mgl32.LookAtV(
			mgl32.Vec3{pos.X, pos.Y, pos.Z},
			mgl32.Vec3{0, 0, 0},
			mgl32.Vec3{0, 1, 0},
		)
		for i := 0; i < 16; i++ {
			if abs(got[i]-want[i]) > 1e-4 {
				t.Errorf("view from %v element %d: got %f, want %f", pos, i, got[i], want[i])
			}
		}
	}
}

func TestViewMovesCameraToOrigin(t *testing.T) {
	c := newTestCamera()
	eye := c.View().TransformVec3(c.Position)
	if eye.Length() > 1e-5 {
		t.Errorf("camera position in view space = %v, want origin", eye)
	}
}

func TestProjectionShorterAxis(t *testing.T) {
	c := newTestCamera()
	f := float32(1 / gomath.Tan(float64(c.FOV)/2))

	wide := c.Projection(1600, 900).Matrix()
	if abs(wide.At(1, 1)-f) > 1e-4 {
		t.Errorf("wide viewport y focal = %v, want %v", wide.At(1, 1), f)
	}
	if abs(wide.At(0, 0)-f*900/1600) > 1e-4 {
		t.Errorf("wide viewport x focal = %v, want %v", wide.At(0, 0), f*900/1600)
	}

	tall := c.Projection(600, 1000).Matrix()
	if abs(tall.At(0, 0)-f) > 1e-4 {
		t.Errorf("tall viewport x focal = %v, want %v", tall.At(0, 0), f)
	}
	if abs(tall.At(1, 1)-f*600/1000) > 1e-4 {
		t.Errorf("tall viewport y focal = %v, want %v", tall.At(1, 1), f*600/1000)
	}

	// A zero-sized viewport (minimised window) must not produce NaNs
	empty := c.Projection(0, 0).Matrix()
	for i, v := range empty {
		if v != v {
			t.Fatalf("projection element %d is NaN for empty viewport", i)
		}
	}
}

func TestZoomStaysInRange(t *testing.T) {
	c := newTestCamera()
	deltas := []float32{5000, -20000, 3, -3, 900, 1e6, -1e6, 0, 12, -7}

	for _, dy := range deltas {
		c.Zoom(dy)
		d := c.Distance()
		if d < c.Limits.MinZoom-1e-4 || d > c.Limits.MaxZoom+1e-4 {
			t.Fatalf("after Zoom(%v) distance = %v, want within [%v, %v]",
				dy, d, c.Limits.MinZoom, c.Limits.MaxZoom)
		}
	}
}

func TestZoomCloseRatio(t *testing.T) {
	c := newTestCamera()
	c.Position = math.Vec3{X: 0, Y: 0, Z: 2} // below MaxZoom/5

	c.Zoom(100)
	want := 2 - 100*c.Limits.CloseZoomRatio
	if abs(c.Distance()-want) > 1e-4 {
		t.Errorf("close zoom distance = %v, want %v", c.Distance(), want)
	}

	c.Position = math.Vec3{X: 0, Y: 0, Z: 10}
	c.Zoom(100)
	want = 10 - 100*c.Limits.ZoomRatio
	if abs(c.Distance()-want) > 1e-4 {
		t.Errorf("far zoom distance = %v, want %v", c.Distance(), want)
	}
}

func TestOrbitKeepsDistanceAndHeight(t *testing.T) {
	c := newTestCamera()
	before := c.Distance()

	c.Orbit(120)
	c.Orbit(-37)

	if abs(c.Distance()-before) > 1e-4 {
		t.Errorf("orbit changed distance: %v -> %v", before, c.Distance())
	}
	if abs(c.Position.Y-3) > 1e-5 {
		t.Errorf("orbit changed height: %v", c.Position.Y)
	}
}

func TestOrbitDirection(t *testing.T) {
	c := newTestCamera()
	c.Position = math.Vec3{X: 0, Y: 0, Z: 5}

	// Dragging right by pi/2 worth of pixels swings the camera to -x
	c.Orbit(float32(gomath.Pi/2) / c.Limits.RotationSensitivity)
	if abs(c.Position.X+5) > 1e-3 || abs(c.Position.Z) > 1e-3 {
		t.Errorf("orbit position = %v, want (-5, 0, 0)", c.Position)
	}
}

func TestAdjustHeightClamps(t *testing.T) {
	c := newTestCamera()
	for i := 0; i < 1000; i++ {
		c.AdjustHeight(1)
	}
	if c.Position.Y != c.Limits.MaxHeight {
		t.Errorf("height after raising = %v, want %v", c.Position.Y, c.Limits.MaxHeight)
	}
	if c.AdjustHeight(1) {
		t.Error("AdjustHeight should report no movement at the ceiling")
	}

	for i := 0; i < 1000; i++ {
		c.AdjustHeight(-1)
	}
	if c.Position.Y != c.Limits.MinHeight {
		t.Errorf("height after lowering = %v, want %v", c.Position.Y, c.Limits.MinHeight)
	}
}

func TestPanOffsetScalesWithDistance(t *testing.T) {
	near := newTestCamera()
	near.Position = math.Vec3{X: 0, Y: 0, Z: 1}
	far := newTestCamera()
	far.Position = math.Vec3{X: 0, Y: 0, Z: 10}

	a := near.PanOffset(10, 0)
	b := far.PanOffset(10, 0)
	if abs(b.Length()/a.Length()-10) > 1e-3 {
		t.Errorf("pan ratio = %v, want 10", b.Length()/a.Length())
	}

	// Looking down -z, left is +x in world space for a positive drag
	if a.X <= 0 || abs(a.Y) > 1e-6 {
		t.Errorf("horizontal pan = %v, want +x only", a)
	}

	// Dragging down pulls the world towards the camera
	v := near.PanOffset(0, 10)
	if abs(v.X) > 1e-6 || abs(v.Y) > 1e-6 || v.Z <= 0 {
		t.Errorf("vertical pan = %v, want +z only", v)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
