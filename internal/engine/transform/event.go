package transform

// EventType identifies an input event kind.
type EventType int

// Event types produced by the input layer.
const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventScroll
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Button identifies a mouse button.
type Button uint8

// Mouse buttons.
const (
	ButtonNone      Button = iota
	ButtonPrimary          // left: rotates the model
	ButtonSecondary        // right: rotates the camera
)

// Key identifies a keyboard key the controller reacts to.
type Key uint8

// Keys.
const (
	KeyUnknown Key = iota
	KeySpace
	KeyEscape
	KeyW
	KeyS
	KeyA
	KeyD
	KeyR
	KeyF
	KeyT
	KeyG
)

// Event is one input event, in arrival order within a frame.
type Event struct {
	Type    EventType
	Key     Key
	Button  Button
	X, Y    float32 // cursor position, screen space (y grows downward)
	Width   int
	Height  int
	ScrollY float32
}

// Scroll returns a wheel event; positive dy scrolls away from the user.
func Scroll(dy float32) Event {
	return Event{Type: EventScroll, ScrollY: dy}
}

// Resize returns a framebuffer resize event.
func Resize(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Press returns a mouse button press event.
func Press(b Button) Event {
	return Event{Type: EventMouseDown, Button: b}
}

// Release returns a mouse button release event.
func Release(b Button) Event {
	return Event{Type: EventMouseUp, Button: b}
}

// KeyPress returns a key press event.
func KeyPress(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeyRelease returns a key release event.
func KeyRelease(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

// CursorMove returns a cursor motion event.
func CursorMove(x, y float32) Event {
	return Event{Type: EventMouseMove, X: x, Y: y}
}

// keySet is a bitmask of held keys.
type keySet uint32

func (s keySet) has(k Key) bool { return s&(1<<k) != 0 }

func (s *keySet) set(k Key, down bool) {
	if down {
		*s |= 1 << k
	} else {
		*s &^= 1 << k
	}
}
