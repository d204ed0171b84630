// Package renderer draws polygon outlines with OpenGL.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wirecube/internal/engine/shader"
	"github.com/Faultbox/wirecube/internal/logger"
	"github.com/Faultbox/wirecube/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]uint8
	LineColor  [3]uint8
	LineWidth  float32
}

// polygon is a run of vertices in the frame buffer drawn as one line loop.
type polygon struct {
	first int32
	count int32
}

// Renderer batches polygon outlines for a frame and draws them as line
// loops in pixel coordinates. It implements mesh.Surface.
type Renderer struct {
	config Config

	program       *shader.Program
	locProjection int32
	locColor      int32

	vao uint32
	vbo uint32

	// Current frame
	vertices []float32
	polygons []polygon
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		vertices: make([]float32, 0, 256),
		polygons: make([]polygon, 0, 32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Draw order is decided on the CPU
	gl.Disable(gl.DEPTH_TEST)
	bg := cfg.Background
	gl.ClearColor(float32(bg[0])/255, float32(bg[1])/255, float32(bg[2])/255, 1.0)

	var err error
	r.program, err = shader.Compile(shader.OutlineVertex, shader.OutlineFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID))

	if r.locProjection, err = r.program.Uniform("uProjection"); err != nil {
		r.program.Delete()
		return nil, err
	}
	if r.locColor, err = r.program.Uniform("uColor"); err != nil {
		r.program.Delete()
		return nil, err
	}

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the screen and starts a new batch.
func (r *Renderer) Begin() {
	r.vertices = r.vertices[:0]
	r.polygons = r.polygons[:0]
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawPolygon queues the outline of a closed polygon.
func (r *Renderer) DrawPolygon(points []image.Point) {
	if len(points) < 2 {
		return
	}
	r.polygons = append(r.polygons, polygon{
		first: int32(len(r.vertices) / 2),
		count: int32(len(points)),
	})
	for _, p := range points {
		r.vertices = append(r.vertices, float32(p.X), float32(p.Y))
	}
}

// End uploads the batch and draws every queued outline in order.
func (r *Renderer) End() {
	if len(r.polygons) == 0 {
		return
	}

	r.program.Use()

	proj := math.PixelSpace(r.config.Width, r.config.Height)
	gl.UniformMatrix4fv(r.locProjection, 1, false, proj.Ptr())
	c := r.config.LineColor
	gl.Uniform3f(r.locColor, float32(c[0])/255, float32(c[1])/255, float32(c[2])/255)
	if r.config.LineWidth > 0 {
		gl.LineWidth(r.config.LineWidth)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*4, unsafe.Pointer(&r.vertices[0]), gl.STREAM_DRAW)

	for _, p := range r.polygons {
		gl.DrawArrays(gl.LINE_LOOP, p.first, p.count)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as RGBA rows, bottom row first.
// A zero-sized viewport (minimised window) yields no pixels.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	return pixels, w, h
}

// createBuffers creates the VAO/VBO for streamed outline vertices.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Position attribute (location = 0): x, y in pixels
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("outline buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
}
