package math

// Rect2 is an axis-aligned integer rectangle. Min is the top-left corner and
// Max the bottom-right corner under the active screen convention.
type Rect2 struct {
	Min, Max Vec2i
}

// NewRect2 builds a rectangle from its top-left corner and size.
func NewRect2(x, y, width, height int32) Rect2 {
	return Rect2{
		Min: Vec2i{x, y},
		Max: Vec2i{x + width, y + lowerBy*height},
	}
}

// Left returns the minimum x.
func (r Rect2) Left() int32 { return r.Min.X }

// Right returns the maximum x.
func (r Rect2) Right() int32 { return r.Max.X }

// Top returns the y of the top edge.
func (r Rect2) Top() int32 { return r.Min.Y }

// Bottom returns the y of the bottom edge.
func (r Rect2) Bottom() int32 { return r.Max.Y }

// Width returns Max.X - Min.X.
func (r Rect2) Width() int32 { return r.Max.X - r.Min.X }

// Height is never negative, whichever way the y axis points.
func (r Rect2) Height() int32 {
	h := r.Max.Y - r.Min.Y
	if h < 0 {
		return -h
	}
	return h
}

// SetX moves the rectangle horizontally, keeping its width.
func (r *Rect2) SetX(x int32) {
	w := r.Width()
	r.Min.X = x
	r.Max.X = x + w
}

// SetY moves the rectangle vertically, keeping its height.
func (r *Rect2) SetY(y int32) {
	h := r.Height()
	r.Min.Y = y
	r.Max.Y = y + lowerBy*h
}

// SetPos moves the top-left corner to p.
func (r *Rect2) SetPos(p Vec2i) {
	r.SetX(p.X)
	r.SetY(p.Y)
}

// MoveLeft shifts the rectangle left by amount.
func (r *Rect2) MoveLeft(amount int32) { r.SetX(r.Min.X - amount) }

// MoveRight shifts the rectangle right by amount.
func (r *Rect2) MoveRight(amount int32) { r.SetX(r.Min.X + amount) }

// MoveUp shifts the rectangle towards the top of the screen.
func (r *Rect2) MoveUp(amount int32) { r.SetY(r.Min.Y - lowerBy*amount) }

// MoveDown shifts the rectangle towards the bottom of the screen.
func (r *Rect2) MoveDown(amount int32) { r.SetY(r.Min.Y + lowerBy*amount) }

// Contains reports whether p lies strictly inside the rectangle.
func (r Rect2) Contains(p Vec2i) bool {
	if p.X <= r.Left() || p.X >= r.Right() {
		return false
	}
	if lowerBy > 0 {
		return p.Y > r.Top() && p.Y < r.Bottom()
	}
	return p.Y < r.Top() && p.Y > r.Bottom()
}

// Rect2f is the float counterpart of Rect2.
type Rect2f struct {
	Min, Max Vec2
}

// NewRect2f builds a rectangle from its top-left corner and size.
func NewRect2f(x, y, width, height float32) Rect2f {
	return Rect2f{
		Min: Vec2{x, y},
		Max: Vec2{x + width, y + float32(lowerBy)*height},
	}
}

// Left returns the minimum x.
func (r Rect2f) Left() float32 { return r.Min.X }

// Right returns the maximum x.
func (r Rect2f) Right() float32 { return r.Max.X }

// Top returns the y of the top edge.
func (r Rect2f) Top() float32 { return r.Min.Y }

// Bottom returns the y of the bottom edge.
func (r Rect2f) Bottom() float32 { return r.Max.Y }

// Width returns Max.X - Min.X.
func (r Rect2f) Width() float32 { return r.Max.X - r.Min.X }

// Height is never negative, whichever way the y axis points.
func (r Rect2f) Height() float32 {
	h := r.Max.Y - r.Min.Y
	if h < 0 {
		return -h
	}
	return h
}

// SetX moves the rectangle horizontally, keeping its width.
func (r *Rect2f) SetX(x float32) {
	w := r.Width()
	r.Min.X = x
	r.Max.X = x + w
}

// SetY moves the rectangle vertically, keeping its height.
func (r *Rect2f) SetY(y float32) {
	h := r.Height()
	r.Min.Y = y
	r.Max.Y = y + float32(lowerBy)*h
}

// SetPos moves the top-left corner to p.
func (r *Rect2f) SetPos(p Vec2) {
	r.SetX(p.X)
	r.SetY(p.Y)
}
