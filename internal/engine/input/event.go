// Package input turns raw window events into viewer gestures.
package input

// EventType identifies a window or device event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Key is a keyboard key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF5
	KeyF12
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyF5:
		return "F5"
	case KeyF12:
		return "F12"
	default:
		return "unknown"
	}
}

// Button is a mouse button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool // Key held down
	Button Button

	// Pointer position, and for EventMouseMove the motion since the
	// previous event, in window pixels.
	X, Y   int
	DX, DY int

	Wheel float32 // Positive scrolls away from the user

	Width, Height int // EventWindowResize
}
