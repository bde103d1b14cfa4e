package input

import "testing"

func TestTrackerLeftDragRotates(t *testing.T) {
	var tr Tracker

	if _, ok := tr.Feed(Event{Type: EventMouseDown, Button: ButtonLeft, X: 10, Y: 10}); ok {
		t.Error("expected no gesture on press")
	}
	if !tr.Dragging() {
		t.Fatal("expected tracker to be dragging")
	}

	g, ok := tr.Feed(Event{Type: EventMouseMove, X: 15, Y: 7, DX: 5, DY: -3})
	if !ok {
		t.Fatal("expected a gesture from the drag")
	}
	if g.Kind != GestureRotate || g.DX != 5 || g.DY != -3 {
		t.Errorf("expected rotate (5, -3), got %+v", g)
	}

	tr.Feed(Event{Type: EventMouseUp, Button: ButtonLeft})
	if tr.Dragging() {
		t.Error("expected drag to end on release")
	}
	if _, ok := tr.Feed(Event{Type: EventMouseMove, X: 20, Y: 20, DX: 5, DY: 13}); ok {
		t.Error("expected hover without buttons to do nothing")
	}
}

func TestTrackerPanButtons(t *testing.T) {
	for _, b := range []Button{ButtonRight, ButtonMiddle} {
		var tr Tracker
		tr.Feed(Event{Type: EventMouseDown, Button: b})
		g, ok := tr.Feed(Event{Type: EventMouseMove, DX: 2, DY: 4})
		if !ok || g.Kind != GesturePan {
			t.Errorf("button %d: expected pan, got %+v %v", b, g, ok)
		}
	}
}

func TestTrackerDeltaFromPosition(t *testing.T) {
	var tr Tracker
	tr.Feed(Event{Type: EventMouseDown, Button: ButtonLeft, X: 100, Y: 50})

	g, ok := tr.Feed(Event{Type: EventMouseMove, X: 110, Y: 45})
	if !ok {
		t.Fatal("expected a gesture")
	}
	if g.DX != 10 || g.DY != -5 {
		t.Errorf("expected delta (10, -5), got (%g, %g)", g.DX, g.DY)
	}
}

func TestTrackerKeepsFirstButton(t *testing.T) {
	var tr Tracker
	tr.Feed(Event{Type: EventMouseDown, Button: ButtonLeft})
	tr.Feed(Event{Type: EventMouseDown, Button: ButtonRight})

	g, _ := tr.Feed(Event{Type: EventMouseMove, DX: 1})
	if g.Kind != GestureRotate {
		t.Errorf("expected the first button to win, got %+v", g)
	}

	// Releasing the other button does not end the drag.
	tr.Feed(Event{Type: EventMouseUp, Button: ButtonRight})
	if !tr.Dragging() {
		t.Error("expected drag to continue")
	}
}

func TestTrackerWheel(t *testing.T) {
	var tr Tracker

	g, ok := tr.Feed(Event{Type: EventMouseWheel, Wheel: -2})
	if !ok || g.Kind != GestureZoom || g.Zoom != -2 {
		t.Errorf("expected zoom -2, got %+v %v", g, ok)
	}
	if _, ok := tr.Feed(Event{Type: EventMouseWheel}); ok {
		t.Error("expected zero wheel to be ignored")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyEscape:  "Escape",
		KeyF5:      "F5",
		KeyF12:     "F12",
		KeyUnknown: "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}
