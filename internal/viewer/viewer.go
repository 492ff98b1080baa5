// Package viewer wires the loader, controller, and renderer into the
// interactive frame loop.
package viewer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/transform"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/logger"
)

// App is one viewer session.
type App struct {
	cfg        *config.Config
	model      *model.Model
	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	controller *transform.Controller
}

// New loads the model and then opens the window. A model that fails to
// load is reported before any window or GL object exists.
func New(cfg *config.Config) (*App, error) {
	m, err := model.Load(cfg.Viewer.ModelPath)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, model: m}

	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	fbw, fbh := a.window.DrawableSize()
	a.renderer, err = renderer.New(
		renderer.Config{Width: fbw, Height: fbh},
		PayloadFor(m),
		LoadTextures(cfg.Viewer.Textures),
	)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	a.input = input.New()

	w, h := a.window.Size()
	a.controller = transform.New(ControllerConfig(cfg, w, h))

	logger.Info("viewer initialized", zap.String("model", m.Path))
	return a, nil
}

// Run drives the frame loop until the window is closed or ctx is done.
func (a *App) Run(ctx context.Context) error {
	logger.Info("starting frame loop")

	last := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			logger.Info("frame loop cancelled", zap.Error(err))
			return nil
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		events := a.input.Poll()
		for _, e := range events {
			if e.Type == transform.EventResize {
				a.renderer.Resize(a.window.DrawableSize())
			}
		}

		frame := a.controller.Update(events, dt)
		if frame.CloseRequested {
			logger.Info("close requested")
			return nil
		}

		a.renderer.Draw(frame)
		a.window.SwapBuffers()

		if frame.FPSUpdated {
			a.window.SetTitle(Title(a.cfg.Window.Title, frame.FPS))
			logger.Debug("fps", zap.Float64("fps", frame.FPS), zap.Float64("dt_ms", dt*1000))
		}
	}
}

// Close releases GL objects, then the window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
