package game

import (
	"github.com/Faultbox/meadow/internal/engine/camera"
	"github.com/Faultbox/meadow/internal/engine/field"
	"github.com/Faultbox/meadow/internal/engine/input"
	"github.com/Faultbox/meadow/pkg/math"
)

// TimeStep is how far the animation clock advances per frame.
const TimeStep = 0.03

// State is the simulation: the camera, the panned field transform, the wind
// flag and the animation clock. It is advanced once per frame by Update.
type State struct {
	Camera *camera.Camera
	Object math.Transform
	View   math.Transform

	WindActive bool
	Time       float32

	prev    input.Snapshot
	started bool
}

// NewState creates the state around cam with an identity object transform.
func NewState(cam *camera.Camera) *State {
	return &State{
		Camera: cam,
		Object: math.NewTransform(),
		View:   cam.View(),
	}
}

// Update applies one frame of input.
//
// Left drag pans the field, right drag orbits horizontally and zooms
// vertically, up and down change the camera height, and releasing the action
// key toggles the wind and restarts the clock.
func (s *State) Update(in input.Snapshot) {
	prev := s.prev
	if !s.started {
		// No previous pointer position yet, so no drag on the first frame.
		prev.Mouse.Pos = in.Mouse.Pos
		s.started = true
	}
	delta := input.PointerDelta(prev, in)
	cameraMoved := false

	if in.Mouse.LeftDown {
		s.Object.Translate(s.Camera.PanOffset(float32(delta.X), float32(delta.Y)))
	}

	if in.Mouse.RightDown {
		s.Camera.Orbit(float32(delta.X))
		s.Camera.Zoom(float32(-delta.Y))
		cameraMoved = true
	}

	if input.Released(prev.Controller.Action, in.Controller.Action) {
		s.WindActive = !s.WindActive
		s.Time = 0
	}

	if in.Controller.Up {
		cameraMoved = s.Camera.AdjustHeight(1) || cameraMoved
	} else if in.Controller.Down {
		cameraMoved = s.Camera.AdjustHeight(-1) || cameraMoved
	}

	if cameraMoved {
		s.View = s.Camera.View()
	}

	s.Time += TimeStep
	s.prev = in
}

// Frame assembles the renderer input for a viewport of the given size. The
// projection is rebuilt every frame so resizes need no notification.
func (s *State) Frame(width, height int) field.Frame {
	return field.Frame{
		Width:      width,
		Height:     height,
		View:       s.View,
		Projection: s.Camera.Projection(width, height),
		Object:     s.Object,
		CameraPos:  s.Camera.Position,
		Time:       s.Time,
		WindActive: s.WindActive,
	}
}
