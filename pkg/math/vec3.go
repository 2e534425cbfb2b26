package math

import "math"

// Vec3 is a 3D vector. Colors use the R, G and B accessors.
type Vec3 struct {
	X, Y, Z float32
}

// R returns the X component read as a red channel.
func (v Vec3) R() float32 { return v.X }

// G returns the Y component read as a green channel.
func (v Vec3) G() float32 { return v.Y }

// B returns the Z component read as a blue channel.
func (v Vec3) B() float32 { return v.Z }

// XY returns the X and Y components.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// ScaleVec3 returns s * v. It is identical to v.Scale(s).
func ScaleVec3(s float32, v Vec3) Vec3 {
	return v.Scale(s)
}

// Div returns v / scalar.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Hadamard returns the componentwise product.
func (v Vec3) Hadamard(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp interpolates linearly from v to other.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
		v.Z + t*(other.Z-v.Z),
	}
}

// Vec4 extends v with the given w.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3i is an integer 3D vector. Index triples for triangle lists are stored as Vec3i.
type Vec3i struct {
	X, Y, Z int32
}

// R returns the X component read as a red channel.
func (v Vec3i) R() int32 { return v.X }

// G returns the Y component read as a green channel.
func (v Vec3i) G() int32 { return v.Y }

// B returns the Z component read as a blue channel.
func (v Vec3i) B() int32 { return v.Z }

// XY returns the X and Y components.
func (v Vec3i) XY() Vec2i { return Vec2i{v.X, v.Y} }

// Add returns v + other.
func (v Vec3i) Add(other Vec3i) Vec3i {
	return Vec3i{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3i) Sub(other Vec3i) Vec3i {
	return Vec3i{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3i) Scale(s int32) Vec3i {
	return Vec3i{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / scalar using integer division.
func (v Vec3i) Div(s int32) Vec3i {
	return Vec3i{v.X / s, v.Y / s, v.Z / s}
}

// Cross returns the cross product.
func (v Vec3i) Cross(other Vec3i) Vec3i {
	return Vec3i{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Vec3 converts to a float vector.
func (v Vec3i) Vec3() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
