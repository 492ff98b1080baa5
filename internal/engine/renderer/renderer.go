// Package renderer uploads a mesh once and draws it every frame.
package renderer

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/shader"
	"github.com/Faultbox/meshview/internal/engine/transform"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/math"
)

// Payload is the static mesh data uploaded at startup.
type Payload struct {
	Positions []float32 // x, y, z per vertex
	Indices   []uint32  // three per triangle
	Model     math.Mat4
}

// Config holds renderer configuration.
type Config struct {
	Width  int // drawable size in pixels
	Height int
}

// Renderer owns every GL object the viewer creates.
type Renderer struct {
	config  Config
	program *shader.Program
	model   math.Mat4

	vao, vbo, ebo uint32
	indexCount    int32
	textures      [2]uint32
}

// New initializes GL and uploads the payload and the two crossfade
// textures. It must be called with the window's context current.
func New(cfg Config, p Payload, textures [2]*image.RGBA) (*Renderer, error) {
	if len(p.Positions)%3 != 0 {
		return nil, fmt.Errorf("positions length %d is not a multiple of 3", len(p.Positions))
	}
	if len(p.Indices)%3 != 0 {
		return nil, fmt.Errorf("indices length %d is not a multiple of 3", len(p.Indices))
	}
	for i, img := range textures {
		if img == nil {
			return nil, fmt.Errorf("texture %d is nil", i)
		}
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)

	program, err := shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("building mesh program: %w", err)
	}

	r := &Renderer{
		config:  cfg,
		program: program,
		model:   p.Model,
	}
	r.uploadMesh(p)
	for i, img := range textures {
		r.textures[i] = uploadTexture(img)
	}

	r.program.Use()
	r.program.SetInt("uTextureA", 0)
	r.program.SetInt("uTextureB", 1)
	r.program.SetMat4("uModel", r.model)

	if code := gl.GetError(); code != gl.NO_ERROR {
		r.Close()
		return nil, errors.New(glErrorString(code))
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) uploadMesh(p Payload) {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(p.Positions) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(p.Positions)*4, unsafe.Pointer(&p.Positions[0]), gl.STATIC_DRAW)
	}

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	if len(p.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(p.Indices)*4, unsafe.Pointer(&p.Indices[0]), gl.STATIC_DRAW)
	}
	r.indexCount = int32(len(p.Indices))

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	// The element buffer binding is VAO state; only the array buffer is unbound.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", r.vao),
		zap.Int("vertices", len(p.Positions)/3),
		zap.Int32("indices", r.indexCount),
	)
}

func uploadTexture(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	logger.Debug("texture uploaded", zap.Uint32("id", id), zap.Int32("width", w), zap.Int32("height", h))
	return id
}

// Resize updates the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the framebuffer and draws the mesh with the frame's matrices.
func (r *Renderer) Draw(f transform.Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	mode, cull := rasterState(f.Wireframe)
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
	if cull {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	r.program.Use()
	r.program.SetMat4("uTransformation", f.Transformation)
	r.program.SetMat4("uView", f.View)
	r.program.SetMat4("uProjection", f.Projection)
	r.program.SetFloat("uBlend", f.Blend)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[0])
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[1])

	if r.indexCount > 0 {
		gl.BindVertexArray(r.vao)
		gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	}
}

// Close deletes every GL object the renderer created.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.textures[0] != 0 || r.textures[1] != 0 {
		gl.DeleteTextures(2, &r.textures[0])
		r.textures = [2]uint32{}
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}

// rasterState returns the polygon mode and whether back faces are culled.
// Wireframe shows the hidden edges too.
func rasterState(wireframe bool) (mode uint32, cull bool) {
	if wireframe {
		return gl.LINE, false
	}
	return gl.FILL, true
}

func glErrorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("GL error 0x%x", code)
}
