package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/toyscene/internal/engine/input"
)

// Poll drains the SDL event queue, appending what the viewer understands
// to events.
func (w *Window) Poll(events []input.Event) []input.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				// Report the drawable size rather than the logical one
				width, height := w.Size()
				events = append(events, input.Event{
					Type:   input.EventWindowResize,
					Width:  width,
					Height: height,
				})
			}

		case *sdl.KeyboardEvent:
			typ := input.EventKeyDown
			if e.Type == sdl.KEYUP {
				typ = input.EventKeyUp
			}
			events = append(events, input.Event{
				Type:   typ,
				Key:    keyFromScancode(e.Keysym.Scancode),
				Repeat: e.Repeat != 0,
			})

		case *sdl.MouseMotionEvent:
			events = append(events, input.Event{
				Type: input.EventMouseMove,
				X:    int(e.X),
				Y:    int(e.Y),
				DX:   int(e.XRel),
				DY:   int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			typ := input.EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				typ = input.EventMouseUp
			}
			events = append(events, input.Event{
				Type:   typ,
				Button: buttonFromSDL(e.Button),
				X:      int(e.X),
				Y:      int(e.Y),
			})

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			events = append(events, input.Event{
				Type:  input.EventMouseWheel,
				Wheel: dy,
			})
		}
	}
	return events
}

func keyFromScancode(sc sdl.Scancode) input.Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return input.KeyEscape
	case sdl.SCANCODE_F5:
		return input.KeyF5
	case sdl.SCANCODE_F12:
		return input.KeyF12
	default:
		return input.KeyUnknown
	}
}

func buttonFromSDL(b uint8) input.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight
	default:
		return input.ButtonNone
	}
}
