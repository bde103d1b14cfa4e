// toyscene opens a window on the street scene. Drag to orbit, right-drag to
// pan, scroll to zoom, F5 exports the scene, F12 saves a screenshot and
// Escape quits.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Faultbox/toyscene/internal/app"
	"github.com/Faultbox/toyscene/internal/assembly"
	"github.com/Faultbox/toyscene/internal/config"
	"github.com/Faultbox/toyscene/internal/engine/debug"
	"github.com/Faultbox/toyscene/internal/engine/renderer"
	"github.com/Faultbox/toyscene/internal/engine/window"
	"github.com/Faultbox/toyscene/internal/export"
	"github.com/Faultbox/toyscene/internal/export/savedialog"
	"github.com/Faultbox/toyscene/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== toyscene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", logger.Err(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The world is complete before anything is drawn.
	world := assembly.Assemble()

	win, err := window.New(window.Config{
		Title:      "toyscene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	width, height := win.Size()
	rend, err := renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		MSAA:   cfg.Graphics.MSAA > 0,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer rend.Close()

	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return err
	}

	cam := app.NewCamera(cfg.Camera, width, height)
	controls := app.NewControls(cam, cfg.Camera, cfg.Controls)

	a := app.New(world, cam, controls, win, rend, app.Options{
		ExportFormat: format,
		ExportName:   filepath.Base(cfg.Export.Path),
		Saver:        saver(cfg.Export),
		Screenshots:  debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "toyscene"),
		LogFPS:       cfg.Debug.LogFPS,
	})

	return a.Run(ctx)
}

func saver(cfg config.ExportConfig) export.Saver {
	dir := filepath.Dir(cfg.Path)
	if cfg.Dialog {
		return savedialog.Saver{StartDir: dir}
	}
	return export.FileSaver{Dir: dir}
}
