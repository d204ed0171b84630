// Package input gathers SDL2 events and keyboard/mouse state into
// controls frames.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/wirecube/internal/game/controls"
)

// EventType classifies window events the game loop reacts to directly.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event is a processed window event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// keyMap binds scancodes to control keys.
var keyMap = map[sdl.Scancode]controls.Key{
	sdl.SCANCODE_W:      controls.KeyForward,
	sdl.SCANCODE_S:      controls.KeyBack,
	sdl.SCANCODE_A:      controls.KeyLeft,
	sdl.SCANCODE_D:      controls.KeyRight,
	sdl.SCANCODE_SPACE:  controls.KeyUp,
	sdl.SCANCODE_LSHIFT: controls.KeyDown,
}

// Input polls SDL once per frame.
type Input struct {
	events []Event
	frame  controls.Frame
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 4),
	}
}

// Update polls SDL events and samples the keyboard and relative mouse
// motion. Returns true if the window should close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.frame = controls.Frame{}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			i.frame.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				i.frame.Quit = true
			case sdl.SCANCODE_F12:
				i.frame.Screenshot = true
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.frame.ToggleEngage = true
			}
		}
	}

	state := sdl.GetKeyboardState()
	for code, key := range keyMap {
		if int(code) < len(state) && state[code] != 0 {
			i.frame.Keys[key] = true
		}
	}

	dx, dy, _ := sdl.GetRelativeMouseState()
	i.frame.MouseDX = float64(dx)
	i.frame.MouseDY = float64(dy)

	return i.frame.Quit
}

// Events returns the window events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Frame returns the control input from the last Update.
func (i *Input) Frame() controls.Frame {
	return i.frame
}

// SetCaptured grabs the mouse for mouselook, hiding the cursor and
// reporting relative motion only.
func (i *Input) SetCaptured(captured bool) {
	sdl.SetRelativeMouseMode(captured)
	// Drop motion accumulated while the mode was changing.
	sdl.GetRelativeMouseState()
}
