package math

// Vec4 is a 4-component vector. Vertex records and RGBA colors are both Vec4.
type Vec4 struct {
	X, Y, Z, W float32
}

// R returns the red channel.
func (v Vec4) R() float32 { return v.X }

// G returns the green channel.
func (v Vec4) G() float32 { return v.Y }

// B returns the blue channel.
func (v Vec4) B() float32 { return v.Z }

// A returns the alpha channel.
func (v Vec4) A() float32 { return v.W }

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / scalar.
func (v Vec4) Div(s float32) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Dot returns the dot product of all four components.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Cross returns the cross product of the xyz parts with w set to 1.
func (v Vec4) Cross(other Vec4) Vec4 {
	return v.XYZ().Cross(other.XYZ()).Vec4(1)
}

// Array returns the components in x, y, z, w order.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}
