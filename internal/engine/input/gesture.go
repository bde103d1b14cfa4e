package input

// GestureKind identifies what a pointer gesture asks the camera to do.
type GestureKind int

const (
	GestureRotate GestureKind = iota
	GesturePan
	GestureZoom
)

// Gesture is one camera request derived from pointer input.
type Gesture struct {
	Kind   GestureKind
	DX, DY float32 // Rotate and pan, in pixels
	Zoom   float32 // Wheel steps, positive zooms in
}

// Tracker follows button state across events: a left drag rotates, a
// right or middle drag pans and the wheel zooms.
type Tracker struct {
	held   Button
	lastX  int
	lastY  int
	active bool
}

// Dragging reports whether a button is held.
func (t *Tracker) Dragging() bool {
	return t.active
}

// Reset forgets any held button, e.g. when the window loses focus.
func (t *Tracker) Reset() {
	t.active = false
	t.held = ButtonNone
}

// Feed consumes one event and returns the gesture it completes, if any.
func (t *Tracker) Feed(e Event) (Gesture, bool) {
	switch e.Type {
	case EventMouseDown:
		if t.active {
			return Gesture{}, false
		}
		t.active = true
		t.held = e.Button
		t.lastX, t.lastY = e.X, e.Y

	case EventMouseUp:
		if t.active && e.Button == t.held {
			t.Reset()
		}

	case EventMouseMove:
		if !t.active {
			return Gesture{}, false
		}
		dx, dy := e.DX, e.DY
		if dx == 0 && dy == 0 {
			dx, dy = e.X-t.lastX, e.Y-t.lastY
		}
		t.lastX, t.lastY = e.X, e.Y
		if dx == 0 && dy == 0 {
			return Gesture{}, false
		}

		g := Gesture{DX: float32(dx), DY: float32(dy)}
		switch t.held {
		case ButtonLeft:
			g.Kind = GestureRotate
		case ButtonRight, ButtonMiddle:
			g.Kind = GesturePan
		default:
			return Gesture{}, false
		}
		return g, true

	case EventMouseWheel:
		if e.Wheel == 0 {
			return Gesture{}, false
		}
		return Gesture{Kind: GestureZoom, Zoom: e.Wheel}, true
	}
	return Gesture{}, false
}
