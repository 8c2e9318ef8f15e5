// Package input handles SDL2 input events for the viewer.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType enumerates processed input events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	DeltaX int
	DeltaY int
	Wheel  int
	Left   bool // left mouse button held during a mouse move
}

// Input polls SDL events and tracks held movement keys.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events. Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.held[e.Keysym.Scancode] = true
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				i.held[e.Keysym.Scancode] = false
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				DeltaX: int(e.XRel),
				DeltaY: int(e.YRel),
				Left:   e.State&sdl.ButtonLMask() != 0,
			})

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:  EventMouseWheel,
				Wheel: int(e.Y),
			})
		}
	}

	return false
}

// Events returns the events collected by the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Held reports whether a key is currently held down.
func (i *Input) Held(key sdl.Scancode) bool {
	return i.held[key]
}

// PanAxes returns the WASD pan direction as (-1|0|1, -1|0|1).
func (i *Input) PanAxes() (float32, float32) {
	var dx, dy float32
	if i.held[sdl.SCANCODE_A] {
		dx -= 1
	}
	if i.held[sdl.SCANCODE_D] {
		dx += 1
	}
	if i.held[sdl.SCANCODE_W] {
		dy += 1
	}
	if i.held[sdl.SCANCODE_S] {
		dy -= 1
	}
	return dx, dy
}
