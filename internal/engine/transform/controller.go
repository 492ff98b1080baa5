// Package transform owns the per-frame visual state of the viewer and
// updates it from the input events drained each frame.
package transform

import (
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/math"
)

// Config holds controller tuning.
type Config struct {
	Width, Height   int     // initial framebuffer size
	FieldOfView     float32 // initial zoom, degrees
	ZoomMin         float32
	ZoomMax         float32
	ZoomStep        float32 // degrees per wheel notch
	Near, Far       float32
	DragSensitivity float32 // radians per pixel
	IdleSpin        float32 // radians per frame
	BlendStep       float32 // blend change per frame
	CameraDistance  float32
	CameraStep      float32 // view translation per frame while a move key is held
	FreeCamera      bool    // right drag and move keys act on the view
}

// DefaultConfig returns the stock viewer tuning.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		FieldOfView:     45,
		ZoomMin:         1,
		ZoomMax:         179,
		ZoomStep:        2,
		Near:            0.1,
		Far:             100,
		DragSensitivity: 0.01,
		IdleSpin:        0.02,
		BlendStep:       0.01,
		CameraDistance:  3,
		CameraStep:      0.1,
		FreeCamera:      true,
	}
}

// State is all mutable visual state. It has a single writer, the
// Controller, and is read after each Update completes.
type State struct {
	Transformation math.Mat4 // accumulated model rotation
	View           math.Mat4
	Projection     math.Mat4
	Zoom           float32 // field of view, degrees
	Aspect         float32
	LastCursor     math.Vec2
	PrimaryDown    bool
	SecondaryDown  bool
	Blend          float32 // texture crossfade, always in [0,1]
	BlendDelta     float32
	Wireframe      bool

	held keySet
}

// Frame is what the renderer consumes each frame.
type Frame struct {
	Transformation math.Mat4
	View           math.Mat4
	Projection     math.Mat4
	Blend          float32
	Wireframe      bool
	CloseRequested bool
	FPS            float64
	FPSUpdated     bool
}

// Controller maps input events to the model, view, and projection matrices.
type Controller struct {
	cfg   Config
	state State
	fps   FPSMeter
	close bool
}

// New creates a controller with identity rotation, the camera pulled back
// by cfg.CameraDistance, and the blend fully on the second texture.
func New(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	aspect := float32(1)
	if cfg.Width > 0 && cfg.Height > 0 {
		aspect = float32(cfg.Width) / float32(cfg.Height)
	}

	c.state = State{
		Transformation: math.Identity(),
		View:           math.Translate(0, 0, -cfg.CameraDistance),
		Zoom:           cfg.FieldOfView,
		Aspect:         aspect,
		Blend:          1,
		BlendDelta:     cfg.BlendStep,
	}
	c.rebuildProjection()
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Update applies every event in order, then the frame tick, and returns the
// resulting frame. dt is the previous frame's duration in seconds.
func (c *Controller) Update(events []Event, dt float64) Frame {
	for _, e := range events {
		c.apply(e)
	}
	c.tick()
	updated := c.fps.Add(dt)

	return Frame{
		Transformation: c.state.Transformation,
		View:           c.state.View,
		Projection:     c.state.Projection,
		Blend:          c.state.Blend,
		Wireframe:      c.state.Wireframe,
		CloseRequested: c.close,
		FPS:            c.fps.FPS(),
		FPSUpdated:     updated,
	}
}

func (c *Controller) apply(e Event) {
	s := &c.state

	switch e.Type {
	case EventQuit:
		c.close = true

	case EventScroll:
		zoom := s.Zoom - e.ScrollY*c.cfg.ZoomStep
		s.Zoom = min(max(zoom, c.cfg.ZoomMin), c.cfg.ZoomMax)
		c.rebuildProjection()

	case EventResize:
		if e.Width > 0 && e.Height > 0 {
			s.Aspect = float32(e.Width) / float32(e.Height)
		}
		c.rebuildProjection()
		logger.Debug("projection resized",
			zap.Int("width", e.Width),
			zap.Int("height", e.Height),
			zap.Float32("aspect", s.Aspect),
		)

	case EventMouseDown, EventMouseUp:
		down := e.Type == EventMouseDown
		switch e.Button {
		case ButtonPrimary:
			s.PrimaryDown = down
		case ButtonSecondary:
			s.SecondaryDown = down
		}

	case EventKeyDown:
		s.held.set(e.Key, true)
		switch e.Key {
		case KeySpace:
			s.BlendDelta = -s.BlendDelta
		case KeyEscape:
			c.close = true
		case KeyT:
			s.Wireframe = true
		case KeyG:
			s.Wireframe = false
		}

	case EventKeyUp:
		s.held.set(e.Key, false)

	case EventMouseMove:
		c.drag(e.X, e.Y)
	}
}

// drag rotates in the current local frame: M = M * Rx(dy) * Ry(-dx).
func (c *Controller) drag(x, y float32) {
	s := &c.state

	dx := x - s.LastCursor.X
	dy := s.LastCursor.Y - y // screen y grows downward
	k := c.cfg.DragSensitivity

	if s.PrimaryDown {
		s.Transformation = s.Transformation.Mul(math.RotateX(dy * k)).Mul(math.RotateY(-dx * k))
	}
	if s.SecondaryDown && c.cfg.FreeCamera {
		s.View = s.View.Mul(math.RotateX(dy * k)).Mul(math.RotateY(-dx * k))
	}

	s.LastCursor = math.Vec2{X: x, Y: y}
}

func (c *Controller) tick() {
	s := &c.state

	s.Blend = min(max(s.Blend+s.BlendDelta, 0), 1)

	if !s.PrimaryDown && !s.SecondaryDown {
		s.Transformation = s.Transformation.Mul(math.RotateY(c.cfg.IdleSpin))
	}

	if c.cfg.FreeCamera {
		if move := c.cameraMove(); move != (math.Vec3{}) {
			s.View = s.View.Mul(math.Translate(move.X, move.Y, move.Z))
		}
	}
}

// cameraMove sums the view translation for the held move keys.
func (c *Controller) cameraMove() math.Vec3 {
	held := c.state.held
	step := c.cfg.CameraStep

	var v math.Vec3
	if held.has(KeyW) {
		v.Z += step
	}
	if held.has(KeyS) {
		v.Z -= step
	}
	if held.has(KeyA) {
		v.X += step
	}
	if held.has(KeyD) {
		v.X -= step
	}
	if held.has(KeyR) {
		v.Y -= step
	}
	if held.has(KeyF) {
		v.Y += step
	}
	return v
}

func (c *Controller) rebuildProjection() {
	c.state.Projection = math.Perspective(c.state.Zoom, c.state.Aspect, c.cfg.Near, c.cfg.Far)
}
