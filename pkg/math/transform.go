package math

// Transform is an affine 4x4 transform that remembers how much scale is baked
// into its diagonal. Scale and rotation changes go through the cached scale so
// that repeated SetScale calls replace the scale instead of compounding it.
type Transform struct {
	m     Mat4
	scale Vec3
}

// NewTransform returns the identity transform with unit scale.
func NewTransform() Transform {
	return Transform{m: Identity(), scale: Vec3{1, 1, 1}}
}

// TransformFromMat4 wraps a raw matrix. The cached scale is assumed to be 1.
func TransformFromMat4(m Mat4) Transform {
	return Transform{m: m, scale: Vec3{1, 1, 1}}
}

// Matrix returns the underlying matrix.
func (t Transform) Matrix() Mat4 {
	return t.m
}

// At returns the element at row, col.
func (t Transform) At(row, col int) float32 {
	return t.m.At(row, col)
}

// SetRow overwrites the first three columns of a row. Rows outside 0..3 are ignored.
func (t *Transform) SetRow(row int, v Vec3) {
	if row < 0 || row > 3 {
		return
	}
	t.m.Set(row, 0, v.X)
	t.m.Set(row, 1, v.Y)
	t.m.Set(row, 2, v.Z)
}

// SetRow4 overwrites a full row. Rows outside 0..3 are ignored.
func (t *Transform) SetRow4(row int, v Vec4) {
	if row < 0 || row > 3 {
		return
	}
	t.m.Set(row, 0, v.X)
	t.m.Set(row, 1, v.Y)
	t.m.Set(row, 2, v.Z)
	t.m.Set(row, 3, v.W)
}

// Translation returns the translation column.
func (t Transform) Translation() Vec3 {
	return Vec3{t.m[12], t.m[13], t.m[14]}
}

// SetTranslation overwrites the translation column.
func (t *Transform) SetTranslation(v Vec3) {
	t.m[12] = v.X
	t.m[13] = v.Y
	t.m[14] = v.Z
}

// Translate adds v to the translation column.
func (t *Transform) Translate(v Vec3) {
	t.m[12] += v.X
	t.m[13] += v.Y
	t.m[14] += v.Z
}

// Scale returns the cached scale.
func (t Transform) Scale() Vec3 {
	return t.scale
}

// SetScale divides the cached scale out of the diagonal, multiplies the new
// scale in and caches it.
func (t *Transform) SetScale(v Vec3) {
	t.m[0] /= t.scale.X
	t.m[5] /= t.scale.Y
	t.m[10] /= t.scale.Z

	t.m[0] *= v.X
	t.m[5] *= v.Y
	t.m[10] *= v.Z

	t.scale = v
}

// ScaleBy multiplies the current scale componentwise by v.
func (t *Transform) ScaleBy(v Vec3) {
	t.SetScale(t.scale.Hadamard(v))
}

// SetRotation replaces the orientation with Rz*Ry*Rx built from angles
// (radians), keeping translation and scale.
func (t *Transform) SetRotation(angles Vec3) {
	translation := t.Translation()
	scale := t.scale

	t.m = RotateXYZ(angles)
	t.scale = Vec3{1, 1, 1}

	t.SetTranslation(translation)
	t.SetScale(scale)
}

// Rotate composes a rotation on the left of the current transform. Scale is
// reset to 1 for the multiply; translation and scale are then restored by
// overwrite, so only the orientation changes.
func (t *Transform) Rotate(angles Vec3) {
	translation := t.Translation()
	scale := t.scale
	t.SetScale(Vec3{1, 1, 1})

	t.m = RotateXYZ(angles).Mul(t.m)

	t.SetTranslation(translation)
	t.SetScale(scale)
}

// Mul returns t * other. The product carries unit cached scale.
func (t Transform) Mul(other Transform) Transform {
	return Transform{m: t.m.Mul(other.m), scale: Vec3{1, 1, 1}}
}

// MulVec4 returns t * v.
func (t Transform) MulVec4(v Vec4) Vec4 {
	return t.m.MulVec4(v)
}

// TransformVec3 applies t to the point v (w=1) and drops w.
func (t Transform) TransformVec3(v Vec3) Vec3 {
	return t.m.TransformPoint(v)
}
