// Package renderer draws a scene.World through a perspective camera with
// OpenGL 4.1.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/toyscene/internal/engine/camera"
	"github.com/Faultbox/toyscene/internal/engine/lighting"
	"github.com/Faultbox/toyscene/internal/engine/shader"
	"github.com/Faultbox/toyscene/internal/logger"
	"github.com/Faultbox/toyscene/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	MSAA   bool
}

// Renderer draws worlds. It must be created and used on the thread that
// owns the GL context.
type Renderer struct {
	config Config

	program   *shader.Program
	meshes    *meshCache
	env       *lighting.Environment
	instances []scene.Instance
}

// New creates a renderer. The OpenGL context must already exist.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: newMeshCache(),
		env:    lighting.NewEnvironment(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		logger.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		logger.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	if cfg.MSAA {
		gl.Enable(gl.MULTISAMPLE)
	}

	program, err := shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	r.program = program

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.meshes.release()
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize sets the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", logger.Int("width", width), logger.Int("height", height))
}

// Draw renders one frame of w as seen from cam.
func (r *Renderer) Draw(w *scene.World, cam *camera.Perspective) error {
	bg := w.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.env.Gather(w)
	r.program.Use()

	viewProj := cam.ProjectionMatrix().Mul(cam.ViewMatrix())
	r.program.SetMat4("uViewProj", (*[16]float32)(&viewProj))
	r.program.SetVec3("uAmbient", r.env.Ambient)
	r.program.SetVec3("uSunDir", r.env.SunDirection)
	r.program.SetVec3("uSunColor", r.env.SunColor)
	r.program.SetInt("uPointCount", int32(r.env.Points.Count()))
	r.program.SetVec3Array("uPointPositions", r.env.Points.Positions())
	r.program.SetVec3Array("uPointColors", r.env.Points.Colors())
	r.program.SetFloatArray("uPointRanges", r.env.Points.Ranges())

	r.instances = w.Instances(r.instances[:0])
	for _, in := range r.instances {
		if err := r.drawInstance(in); err != nil {
			return err
		}
	}
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

func (r *Renderer) drawInstance(in scene.Instance) error {
	n := in.Node
	if n.Geometry == nil || n.Material == nil {
		return fmt.Errorf("mesh node %q needs geometry and material", n.Name)
	}
	mat := n.Material

	mesh, err := r.meshes.get(n.Geometry, mat.Side)
	if err != nil {
		return fmt.Errorf("mesh node %q: %w", n.Name, err)
	}

	if mat.Side == scene.SideDouble {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}

	normal := in.Model.Mat3x3()
	r.program.SetMat4("uModel", (*[16]float32)(&in.Model))
	r.program.SetMat3("uNormalMatrix", &normal)
	r.program.SetVec3("uBaseColor", mat.Color.Array())
	r.program.SetVec3("uEmissive", mat.Emissive.Array())
	r.program.SetBool("uUnlit", mat.Unlit)
	r.program.SetBool("uVertexColors", mat.VertexColors)

	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	return nil
}

// ReadPixels returns the current back buffer as RGBA rows, bottom row
// first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}
