// Package app owns the viewer's state and runs its render loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Faultbox/toyscene/internal/engine/camera"
	"github.com/Faultbox/toyscene/internal/engine/debug"
	"github.com/Faultbox/toyscene/internal/engine/input"
	"github.com/Faultbox/toyscene/internal/export"
	"github.com/Faultbox/toyscene/internal/logger"
	"github.com/Faultbox/toyscene/internal/scene"
)

// State is the lifecycle state of the render loop.
type State int32

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// ErrAlreadyRunning is returned when Run is called on a running App.
var ErrAlreadyRunning = errors.New("app: already running")

// Surface shows frames and produces input. Present is expected to block
// until the display is ready for the next frame.
type Surface interface {
	Poll(events []input.Event) []input.Event
	Present()
	Size() (int, int)
}

// Drawer renders a world through a camera.
type Drawer interface {
	Draw(w *scene.World, cam *camera.Perspective) error
	Resize(width, height int)
}

// PixelReader is implemented by drawers that can read back the frame.
type PixelReader interface {
	ReadPixels() ([]byte, int, int)
}

// Options configures the viewer's extra actions.
type Options struct {
	ExportFormat export.Format
	ExportName   string
	Saver        export.Saver // Nil disables F5

	Screenshots *debug.ScreenshotCapture // Nil disables F12

	LogFPS bool
}

// App holds everything the viewer needs for one session.
type App struct {
	World    *scene.World
	Camera   *camera.Perspective
	Controls *camera.OrbitControls

	surface Surface
	drawer  Drawer
	opts    Options

	tracker input.Tracker
	events  []input.Event
	capture bool

	state  atomic.Int32
	frames atomic.Uint64
}

// New builds an App around a finished world.
func New(world *scene.World, cam *camera.Perspective, controls *camera.OrbitControls,
	surface Surface, drawer Drawer, opts Options) *App {
	return &App{
		World:    world,
		Camera:   cam,
		Controls: controls,
		surface:  surface,
		drawer:   drawer,
		opts:     opts,
		events:   make([]input.Event, 0, 32),
	}
}

// State returns the loop state.
func (a *App) State() State {
	return State(a.state.Load())
}

// Frames returns the number of frames presented so far.
func (a *App) Frames() uint64 {
	return a.frames.Load()
}

// Stop asks the loop to finish after the current frame.
func (a *App) Stop() {
	a.state.Store(int32(StateStopped))
}

// Run draws frames until ctx is cancelled, the user quits or a frame
// fails. Cancellation and quitting return nil.
func (a *App) Run(ctx context.Context) error {
	if !a.state.CompareAndSwap(int32(StateStopped), int32(StateRunning)) {
		return ErrAlreadyRunning
	}
	defer a.Stop()

	a.resize(a.surface.Size())
	logger.Info("starting render loop")

	fpsFrames := 0
	fpsTimer := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			logger.Info("render loop cancelled", logger.Err(err))
			return nil
		}

		if err := a.tick(); err != nil {
			return err
		}
		if a.State() != StateRunning {
			logger.Info("render loop stopped", logger.Int("frames", int(a.Frames())))
			return nil
		}

		if a.opts.LogFPS {
			fpsFrames++
			if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
				logger.Debug("fps", logger.Float("fps", float64(fpsFrames)/elapsed.Seconds()))
				fpsFrames = 0
				fpsTimer = time.Now()
			}
		}
	}
}

// tick runs one frame: input, controls, draw, present.
func (a *App) tick() error {
	a.events = a.surface.Poll(a.events[:0])
	for _, e := range a.events {
		a.handle(e)
	}
	if a.State() != StateRunning {
		return nil
	}

	a.Controls.Update()

	if err := a.drawer.Draw(a.World, a.Camera); err != nil {
		return fmt.Errorf("draw frame %d: %w", a.Frames(), err)
	}
	if a.capture {
		a.capture = false
		a.screenshot()
	}
	a.surface.Present()
	a.frames.Add(1)
	return nil
}

func (a *App) handle(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		a.Stop()

	case input.EventWindowResize:
		a.resize(e.Width, e.Height)

	case input.EventKeyDown:
		if e.Repeat {
			return
		}
		switch e.Key {
		case input.KeyEscape:
			a.Stop()
		case input.KeyF5:
			a.Export()
		case input.KeyF12:
			a.capture = true
		}

	default:
		g, ok := a.tracker.Feed(e)
		if !ok {
			return
		}
		switch g.Kind {
		case input.GestureRotate:
			a.Controls.HandleDrag(g.DX, g.DY)
		case input.GesturePan:
			a.Controls.HandlePan(g.DX, g.DY)
		case input.GestureZoom:
			a.Controls.HandleZoom(g.Zoom)
		}
	}
}

func (a *App) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.Camera.SetViewport(width, height)
	a.Controls.SetViewport(width, height)
	a.drawer.Resize(width, height)
}

// Export offers the current world to the configured saver. Failures are
// logged and returned; the loop keeps running.
func (a *App) Export() (string, error) {
	if a.opts.Saver == nil {
		logger.Warn("export requested but no saver is configured")
		return "", nil
	}
	path, err := export.Offer(a.World, a.opts.ExportFormat, a.opts.Saver, a.opts.ExportName)
	if errors.Is(err, export.ErrCancelled) {
		logger.Info("export cancelled")
	}
	return path, err
}

func (a *App) screenshot() {
	reader, ok := a.drawer.(PixelReader)
	if !ok || a.opts.Screenshots == nil {
		logger.Warn("screenshots are not available")
		return
	}
	pixels, width, height := reader.ReadPixels()
	path, err := a.opts.Screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", logger.Err(err))
		return
	}
	logger.Info("screenshot saved", logger.String("path", path))
}
