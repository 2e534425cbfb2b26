package math

import (
	"math"
	"testing"
)

func TestNewTransform(t *testing.T) {
	tr := NewTransform()
	if tr.Matrix() != Identity() {
		t.Errorf("NewTransform matrix = %v, want identity", tr.Matrix())
	}
	if tr.Scale() != (Vec3{1, 1, 1}) {
		t.Errorf("NewTransform scale = %v, want (1,1,1)", tr.Scale())
	}
}

func TestSetScaleReplaces(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(Vec3{2, 2, 2})
	tr.SetScale(Vec3{3, 3, 3})

	got := Vec3{tr.At(0, 0), tr.At(1, 1), tr.At(2, 2)}
	if got != (Vec3{3, 3, 3}) {
		t.Errorf("diagonal after SetScale(2) then SetScale(3) = %v, want (3,3,3)", got)
	}
	if tr.Scale() != (Vec3{3, 3, 3}) {
		t.Errorf("cached scale = %v, want (3,3,3)", tr.Scale())
	}
}

func TestScaleByCompounds(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(Vec3{2, 3, 4})
	tr.ScaleBy(Vec3{2, 2, 0.5})

	want := Vec3{4, 6, 2}
	if tr.Scale() != want {
		t.Errorf("ScaleBy scale = %v, want %v", tr.Scale(), want)
	}
	got := Vec3{tr.At(0, 0), tr.At(1, 1), tr.At(2, 2)}
	if got != want {
		t.Errorf("ScaleBy diagonal = %v, want %v", got, want)
	}
}

func TestTranslationLeavesScale(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(Vec3{2, 2, 2})
	tr.SetTranslation(Vec3{1, 2, 3})
	tr.Translate(Vec3{1, 1, 1})

	if tr.Translation() != (Vec3{2, 3, 4}) {
		t.Errorf("Translation = %v, want (2,3,4)", tr.Translation())
	}
	if tr.Scale() != (Vec3{2, 2, 2}) || tr.At(0, 0) != 2 {
		t.Errorf("translation changed scale: cached %v, diagonal %v", tr.Scale(), tr.At(0, 0))
	}
}

func TestRotatePreservesTranslationAndScale(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(Vec3{2, 2, 2})
	tr.SetTranslation(Vec3{4, -1, 7})

	tr.Rotate(Vec3{0.3, 1.1, -0.4})
	tr.Rotate(Vec3{0, float32(math.Pi / 2), 0})

	if tr.Translation() != (Vec3{4, -1, 7}) {
		t.Errorf("Rotate changed translation: %v", tr.Translation())
	}
	if tr.Scale() != (Vec3{2, 2, 2}) {
		t.Errorf("Rotate changed scale: %v", tr.Scale())
	}
}

func TestRotateComposesOnTheLeft(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(Vec3{0, float32(math.Pi / 2), 0})
	tr.Rotate(Vec3{float32(math.Pi / 2), 0, 0})

	// Y first, then X: (1,0,0) -> (0,0,-1) -> (0,1,0)
	got := tr.TransformVec3(Vec3{1, 0, 0})
	if abs(got.X) > 1e-5 || abs(got.Y-1) > 1e-5 || abs(got.Z) > 1e-5 {
		t.Errorf("composed rotation: got %v, want (0,1,0)", got)
	}
}

func TestSetRotationOverwrites(t *testing.T) {
	tr := NewTransform()
	tr.SetTranslation(Vec3{1, 2, 3})
	tr.Rotate(Vec3{0.7, 0.2, 0.1})

	tr.SetRotation(Vec3{0, float32(math.Pi / 2), 0})

	want := RotateY(float32(math.Pi / 2))
	want[12], want[13], want[14] = 1, 2, 3
	assertMat4Near(t, "SetRotation", tr.Matrix(), want)
}

func TestSetRotationKeepsScale(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(Vec3{3, 3, 3})
	tr.SetRotation(Vec3{})

	if tr.Scale() != (Vec3{3, 3, 3}) {
		t.Errorf("SetRotation scale = %v, want (3,3,3)", tr.Scale())
	}
	got := Vec3{tr.At(0, 0), tr.At(1, 1), tr.At(2, 2)}
	if got != (Vec3{3, 3, 3}) {
		t.Errorf("SetRotation diagonal = %v, want (3,3,3)", got)
	}
}

func TestSetRowOutOfRange(t *testing.T) {
	tr := NewTransform()
	before := tr.Matrix()

	tr.SetRow(4, Vec3{9, 9, 9})
	tr.SetRow(-1, Vec3{9, 9, 9})
	tr.SetRow4(7, Vec4{9, 9, 9, 9})

	if tr.Matrix() != before {
		t.Errorf("out-of-range SetRow modified matrix: %v", tr.Matrix())
	}
}

func TestSetRow(t *testing.T) {
	tr := NewTransform()
	tr.SetRow(1, Vec3{4, 5, 6})
	tr.SetRow4(3, Vec4{0, 0, -1, 0})

	if tr.At(1, 0) != 4 || tr.At(1, 1) != 5 || tr.At(1, 2) != 6 || tr.At(1, 3) != 0 {
		t.Errorf("SetRow(1) wrote %v", tr.Matrix())
	}
	if tr.At(3, 2) != -1 || tr.At(3, 3) != 0 {
		t.Errorf("SetRow4(3) wrote %v", tr.Matrix())
	}
}

func TestTransformVec3DropsW(t *testing.T) {
	tr := NewTransform()
	tr.SetTranslation(Vec3{1, 1, 1})
	tr.SetScale(Vec3{2, 2, 2})

	got := tr.TransformVec3(Vec3{1, 2, 3})
	want := Vec3{3, 5, 7}
	if got != want {
		t.Errorf("TransformVec3 = %v, want %v", got, want)
	}
}

func TestMulResetsScale(t *testing.T) {
	a := NewTransform()
	a.SetScale(Vec3{2, 2, 2})
	b := NewTransform()
	b.SetTranslation(Vec3{1, 0, 0})

	p := a.Mul(b)
	if p.Scale() != (Vec3{1, 1, 1}) {
		t.Errorf("product cached scale = %v, want (1,1,1)", p.Scale())
	}
	if got := p.TransformVec3(Vec3{}); got != (Vec3{2, 0, 0}) {
		t.Errorf("product applied to origin = %v, want (2,0,0)", got)
	}
}
