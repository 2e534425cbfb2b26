// Package input turns SDL2 events into per-frame input snapshots.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Input accumulates held key and button state across SDL events.
type Input struct {
	state Snapshot
	quit  bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{}
}

// Update drains pending SDL events into the held state.
// Returns true once the window was closed or Escape was pressed.
func (i *Input) Update() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.apply(event)
	}
	return i.quit
}

// Snapshot returns the state after the last Update.
func (i *Input) Snapshot() Snapshot {
	return i.state
}

// Quit reports whether a quit was requested.
func (i *Input) Quit() bool {
	return i.quit
}

func (i *Input) apply(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.quit = true

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return
		}
		down := e.Type == sdl.KEYDOWN
		c := &i.state.Controller
		switch e.Keysym.Scancode {
		case sdl.SCANCODE_UP, sdl.SCANCODE_W:
			c.Up = down
		case sdl.SCANCODE_DOWN, sdl.SCANCODE_S:
			c.Down = down
		case sdl.SCANCODE_LEFT, sdl.SCANCODE_A:
			c.Left = down
		case sdl.SCANCODE_RIGHT, sdl.SCANCODE_D:
			c.Right = down
		case sdl.SCANCODE_SPACE:
			c.Action = down
		case sdl.SCANCODE_F12:
			i.state.Capture = down
		case sdl.SCANCODE_ESCAPE:
			if down {
				i.quit = true
			}
		}

	case *sdl.MouseMotionEvent:
		i.state.Mouse.Pos.X = e.X
		i.state.Mouse.Pos.Y = e.Y

	case *sdl.MouseButtonEvent:
		down := e.Type == sdl.MOUSEBUTTONDOWN
		i.state.Mouse.Pos.X = e.X
		i.state.Mouse.Pos.Y = e.Y
		switch e.Button {
		case sdl.BUTTON_LEFT:
			i.state.Mouse.LeftDown = down
		case sdl.BUTTON_RIGHT:
			i.state.Mouse.RightDown = down
		}

	case *sdl.WindowEvent:
		// Focus loss drops held state so a key released elsewhere does not stick.
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
			i.state.Controller = Controller{}
			i.state.Capture = false
			i.state.Mouse.LeftDown = false
			i.state.Mouse.RightDown = false
		}
	}
}
