package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row, col.
func (m Mat4) At(row, col int) float32 {
	return m[col*4+row]
}

// Set writes the element at row, col.
func (m *Mat4) Set(row, col int, v float32) {
	m[col*4+row] = v
}

// Perspective returns a perspective projection whose field of view is scaled
// per axis by aspectX and aspectY. Depth maps near..far to 0..1 after the divide.
func Perspective(fov, near, far, aspectX, aspectY float32) Mat4 {
	f := float32(1.0 / math.Tan(float64(fov)/2.0))

	m := Identity()
	m.Set(0, 0, f*aspectX)
	m.Set(1, 1, f*aspectY)
	m.Set(2, 2, -far/(far-near))
	m.Set(2, 3, -(far*near)/(far-near))
	m.Set(3, 2, -1)
	m.Set(3, 3, 0)
	return m
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)
	return m
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	m := Identity()
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return m
}

// planeRotation rotates counter-clockwise in the plane spanned by axes a
// then b, looking down the remaining axis.
func planeRotation(a, b int, angle float32) Mat4 {
	sin, cos := math.Sincos(float64(angle))
	c, s := float32(cos), float32(sin)

	m := Identity()
	m.Set(a, a, c)
	m.Set(b, b, c)
	m.Set(b, a, s)
	m.Set(a, b, -s)
	return m
}

// RotateX rotates by angle radians about the X axis.
func RotateX(angle float32) Mat4 { return planeRotation(1, 2, angle) }

// RotateY rotates by angle radians about the Y axis.
func RotateY(angle float32) Mat4 { return planeRotation(2, 0, angle) }

// RotateZ rotates by angle radians about the Z axis.
func RotateZ(angle float32) Mat4 { return planeRotation(0, 1, angle) }

// RotateXYZ returns Rz * Ry * Rx: x is applied first, then y, then z.
func RotateXYZ(angles Vec3) Mat4 {
	return RotateZ(angles.Z).Mul(RotateY(angles.Y)).Mul(RotateX(angles.X))
}

// Row returns row i as a Vec4.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m.At(i, 0), m.At(i, 1), m.At(i, 2), m.At(i, 3)}
}

// Col returns column j as a Vec4.
func (m Mat4) Col(j int) Vec4 {
	return Vec4{m[j*4], m[j*4+1], m[j*4+2], m[j*4+3]}
}

// Mul returns m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		r := m.Row(row)
		for col := 0; col < 4; col++ {
			out.Set(row, col, r.Dot(other.Col(col)))
		}
	}
	return out
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v), m.Row(3).Dot(v)}
}

// TransformPoint transforms a 3D point by this matrix with w=1 and drops w.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.MulVec4(p.Vec4(1)).XYZ()
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
