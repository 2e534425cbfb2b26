// Package math provides vector, matrix and rectangle types for the grass renderer.
package math

import "math"

// Vec2 is a 2D vector. It doubles as a width/height pair via W and H.
type Vec2 struct {
	X, Y float32
}

// W returns the X component read as a width.
func (v Vec2) W() float32 { return v.X }

// H returns the Y component read as a height.
func (v Vec2) H() float32 { return v.Y }

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v / scalar.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	x, y := float64(v.X), float64(v.Y)
	return float32(math.Sqrt(x*x + y*y))
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Vec2i truncates both components to integers.
func (v Vec2) Vec2i() Vec2i {
	return Vec2i{int32(v.X), int32(v.Y)}
}

// Vec2i is an integer 2D vector, used for pointer positions and pixel sizes.
type Vec2i struct {
	X, Y int32
}

// W returns the X component read as a width.
func (v Vec2i) W() int32 { return v.X }

// H returns the Y component read as a height.
func (v Vec2i) H() int32 { return v.Y }

// Add returns v + other.
func (v Vec2i) Add(other Vec2i) Vec2i {
	return Vec2i{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2i) Sub(other Vec2i) Vec2i {
	return Vec2i{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2i) Scale(s int32) Vec2i {
	return Vec2i{v.X * s, v.Y * s}
}

// Div returns v / scalar using integer division.
func (v Vec2i) Div(s int32) Vec2i {
	return Vec2i{v.X / s, v.Y / s}
}

// Length returns the magnitude.
func (v Vec2i) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Vec2 converts to a float vector.
func (v Vec2i) Vec2() Vec2 {
	return Vec2{float32(v.X), float32(v.Y)}
}

// Slope returns dy/dx of the line through a and b.
func Slope(a, b Vec2i) float32 {
	return float32(b.Y-a.Y) / float32(b.X-a.X)
}

// InverseSlope returns dx/dy of the line through a and b.
func InverseSlope(a, b Vec2i) float32 {
	return float32(b.X-a.X) / float32(b.Y-a.Y)
}

// PointInCircle reports whether p lies inside the square bounding the circle at center.
func PointInCircle(p, center Vec2, radius float32) bool {
	return p.X > center.X-radius && p.X < center.X+radius &&
		p.Y > center.Y-radius && p.Y < center.Y+radius
}
