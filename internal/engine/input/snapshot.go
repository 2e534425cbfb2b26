package input

import "github.com/Faultbox/meadow/pkg/math"

// Controller is the held state of the directional and action keys.
type Controller struct {
	Up, Down, Left, Right bool
	Action                bool
}

// Mouse is the pointer position in window pixels and the held buttons.
type Mouse struct {
	Pos       math.Vec2i
	LeftDown  bool
	RightDown bool
}

// Snapshot is the input state at one frame.
type Snapshot struct {
	Mouse      Mouse
	Controller Controller
	Capture    bool // screenshot key held
}

// Released reports a release edge: held in prev, not held in cur.
func Released(prev, cur bool) bool {
	return prev && !cur
}

// PointerDelta returns cur - prev in window pixels.
func PointerDelta(prev, cur Snapshot) math.Vec2i {
	return cur.Mouse.Pos.Sub(prev.Mouse.Pos)
}
