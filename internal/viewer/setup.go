package viewer

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/texture"
	"github.com/Faultbox/meshview/internal/engine/transform"
	"github.com/Faultbox/meshview/internal/logger"
)

// Fallback checkerboards, one palette per texture slot.
var fallbackColors = [2][2]color.RGBA{
	{{R: 230, G: 230, B: 230, A: 255}, {R: 60, G: 60, B: 70, A: 255}},
	{{R: 240, G: 150, B: 40, A: 255}, {R: 40, G: 90, B: 160, A: 255}},
}

const (
	fallbackSize  = 256
	fallbackCells = 8
)

// PayloadFor returns the renderer payload for a loaded model.
func PayloadFor(m *model.Model) renderer.Payload {
	return renderer.Payload{
		Positions: m.Positions,
		Indices:   m.Indices,
		Model:     m.Matrix,
	}
}

// LoadTextures decodes up to two images and flips them for GL upload.
// A missing path or an image that fails to load is replaced by a
// checkerboard, so a texture problem never stops the viewer.
func LoadTextures(paths []string) [2]*image.RGBA {
	var out [2]*image.RGBA
	for slot := range out {
		if slot < len(paths) && paths[slot] != "" {
			img, err := texture.Load(paths[slot])
			if err == nil {
				texture.FlipVertical(img)
				out[slot] = img
				logger.Debug("texture loaded",
					zap.Int("slot", slot),
					zap.String("path", paths[slot]),
					zap.Int("width", img.Rect.Dx()),
					zap.Int("height", img.Rect.Dy()),
				)
				continue
			}
			logger.Warn("texture unavailable, using checkerboard",
				zap.Int("slot", slot),
				zap.String("path", paths[slot]),
				zap.Error(err),
			)
		}
		pal := fallbackColors[slot]
		out[slot] = texture.Checkerboard(fallbackSize, fallbackCells, pal[0], pal[1])
	}
	return out
}

// ControllerConfig maps viewer settings onto the controller for a window
// of the given size.
func ControllerConfig(cfg *config.Config, width, height int) transform.Config {
	c := transform.DefaultConfig()
	c.Width = width
	c.Height = height
	c.FieldOfView = cfg.Viewer.FieldOfView
	c.CameraDistance = cfg.Viewer.CameraDistance
	c.DragSensitivity = cfg.Controls.DragSensitivity
	c.ZoomStep = cfg.Controls.ZoomStep
	c.IdleSpin = cfg.Controls.IdleSpin
	c.BlendStep = cfg.Controls.BlendStep
	c.CameraStep = cfg.Controls.CameraStep
	c.FreeCamera = cfg.Controls.FreeCamera
	return c
}

// Title formats the window title with the current frame rate.
func Title(base string, fps float64) string {
	return fmt.Sprintf("%s - %.0f fps", base, fps)
}
