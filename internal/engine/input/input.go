// Package input translates SDL2 events into controller events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshview/internal/engine/transform"
)

// Input drains the SDL event queue once per frame.
type Input struct {
	events []transform.Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]transform.Event, 0, 16),
	}
}

// Poll drains pending SDL events and returns them in arrival order.
// The returned slice is reused by the next call.
func (i *Input) Poll() []transform.Event {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := Translate(event); ok {
			i.events = append(i.events, e)
		}
	}

	return i.events
}

// Translate maps one SDL event to a controller event. Events the
// controller has no use for, and key auto-repeats, report false.
func Translate(event sdl.Event) (transform.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return transform.Event{Type: transform.EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return transform.Resize(int(e.Data1), int(e.Data2)), true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return transform.Event{}, false
		}
		key := keyFor(e.Keysym.Scancode)
		if key == transform.KeyUnknown {
			return transform.Event{}, false
		}
		if e.Type == sdl.KEYDOWN {
			return transform.KeyPress(key), true
		}
		return transform.KeyRelease(key), true

	case *sdl.MouseMotionEvent:
		return transform.CursorMove(float32(e.X), float32(e.Y)), true

	case *sdl.MouseButtonEvent:
		button := buttonFor(e.Button)
		if button == transform.ButtonNone {
			return transform.Event{}, false
		}
		ev := transform.Release(button)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev = transform.Press(button)
		}
		ev.X, ev.Y = float32(e.X), float32(e.Y)
		return ev, true

	case *sdl.MouseWheelEvent:
		dy := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		if dy == 0 {
			return transform.Event{}, false
		}
		return transform.Scroll(dy), true
	}

	return transform.Event{}, false
}

func buttonFor(b uint8) transform.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return transform.ButtonPrimary
	case sdl.BUTTON_RIGHT:
		return transform.ButtonSecondary
	}
	return transform.ButtonNone
}

var scancodeKeys = map[sdl.Scancode]transform.Key{
	sdl.SCANCODE_SPACE:  transform.KeySpace,
	sdl.SCANCODE_ESCAPE: transform.KeyEscape,
	sdl.SCANCODE_W:      transform.KeyW,
	sdl.SCANCODE_S:      transform.KeyS,
	sdl.SCANCODE_A:      transform.KeyA,
	sdl.SCANCODE_D:      transform.KeyD,
	sdl.SCANCODE_R:      transform.KeyR,
	sdl.SCANCODE_F:      transform.KeyF,
	sdl.SCANCODE_T:      transform.KeyT,
	sdl.SCANCODE_G:      transform.KeyG,
}

func keyFor(sc sdl.Scancode) transform.Key {
	return scancodeKeys[sc]
}
