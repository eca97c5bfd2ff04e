package renderer

import (
	"context"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glpractice/camera"
	"github.com/richinsley/glpractice/filesystem"
	"github.com/richinsley/glpractice/geometry"
	"github.com/richinsley/glpractice/graphics"
	"github.com/richinsley/glpractice/model"
	"github.com/richinsley/glpractice/shader"
)

const (
	cameraVertexShader   = "resources/shaders/camera.vs"
	cameraFragmentShader = "resources/shaders/camera.fs"
	modelVertexShader    = "resources/shaders/model.vs"
	modelFragmentShader  = "resources/shaders/model.fs"
)

// GreenValue is the green channel of the uniform scene at time t, in [0, 1].
func GreenValue(t float64) float32 {
	return float32(math.Sin(t)/2.0 + 0.5)
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// ────────────────────────────────── triangle ──────────────────────────────────

// TriangleScene draws the triangle in a fixed colour without an index buffer.
type TriangleScene struct {
	program *shader.Program
	mesh    *geometry.Mesh
}

func (s *TriangleScene) Descriptor() Descriptor {
	return Descriptor{Name: "triangle", ClearColor: mgl32.Vec4{0, 0, 0, 1}}
}

func (s *TriangleScene) Init(ctx context.Context, dev graphics.Device, fsys *filesystem.FileSystem) error {
	p, err := shader.NewProgram(dev, shader.VertexSource(), shader.FixedFragmentSource())
	if err != nil {
		return err
	}
	m, err := geometry.NewTriangle(dev, false)
	if err != nil {
		p.Delete()
		return err
	}
	s.program, s.mesh = p, m
	return nil
}

func (s *TriangleScene) Draw(dev graphics.Device, frame Frame, width, height int) {
	s.program.Use()
	s.mesh.Draw(dev)
}

func (s *TriangleScene) Destroy(dev graphics.Device) {
	if s.mesh != nil {
		s.mesh.Destroy(dev)
	}
	if s.program != nil {
		s.program.Delete()
	}
}

// ────────────────────────────────── uniform ───────────────────────────────────

// UniformScene draws the indexed triangle with a green channel pulsing over time.
type UniformScene struct {
	program *shader.Program
	mesh    *geometry.Mesh
}

func (s *UniformScene) Descriptor() Descriptor {
	return Descriptor{Name: "uniform", ClearColor: mgl32.Vec4{0, 0, 0, 1}}
}

func (s *UniformScene) Init(ctx context.Context, dev graphics.Device, fsys *filesystem.FileSystem) error {
	p, err := shader.NewProgram(dev, shader.VertexSource(), shader.UniformFragmentSource())
	if err != nil {
		return err
	}
	m, err := geometry.NewTriangle(dev, true)
	if err != nil {
		p.Delete()
		return err
	}
	s.program, s.mesh = p, m
	return nil
}

func (s *UniformScene) Draw(dev graphics.Device, frame Frame, width, height int) {
	s.program.Use()
	s.program.SetVec4(shader.ColorUniform, mgl32.Vec4{0, GreenValue(frame.Time), 0, 1})
	s.mesh.Draw(dev)
}

func (s *UniformScene) Destroy(dev graphics.Device) {
	if s.mesh != nil {
		s.mesh.Destroy(dev)
	}
	if s.program != nil {
		s.program.Delete()
	}
}

// ────────────────────────────────── camera ────────────────────────────────────

// cameraSceneBase holds what the camera and model scenes share: a program
// with model, view and projection uniforms and the camera feeding them.
type cameraSceneBase struct {
	program *shader.Program
	camera  *camera.Camera
}

func (b *cameraSceneBase) Camera() *camera.Camera {
	return b.camera
}

func (b *cameraSceneBase) setMatrices(modelMatrix mgl32.Mat4, width, height int) {
	b.program.SetMat4("projection", b.camera.Projection(aspect(width, height)))
	b.program.SetMat4("view", b.camera.ViewMatrix())
	b.program.SetMat4("model", modelMatrix)
}

// CameraTriangleScene draws the triangle, spinning about the Y axis, through the camera.
type CameraTriangleScene struct {
	cameraSceneBase
	mesh *geometry.Mesh
}

func NewCameraTriangleScene() *CameraTriangleScene {
	return &CameraTriangleScene{cameraSceneBase: cameraSceneBase{camera: camera.New(mgl32.Vec3{0, 0, 3})}}
}

func (s *CameraTriangleScene) Descriptor() Descriptor {
	return Descriptor{Name: "camera", DepthTest: true, ClearColor: mgl32.Vec4{0.2, 0.3, 0.3, 1}}
}

func (s *CameraTriangleScene) Init(ctx context.Context, dev graphics.Device, fsys *filesystem.FileSystem) error {
	p, err := shader.LoadProgram(ctx, dev, fsys, cameraVertexShader, cameraFragmentShader)
	if err != nil {
		return err
	}
	m, err := geometry.NewTriangle(dev, true)
	if err != nil {
		p.Delete()
		return err
	}
	s.program, s.mesh = p, m
	return nil
}

func (s *CameraTriangleScene) Draw(dev graphics.Device, frame Frame, width, height int) {
	s.program.Use()
	spin := mgl32.HomogRotate3DY(float32(frame.Time))
	s.setMatrices(spin, width, height)
	s.mesh.Draw(dev)
}

func (s *CameraTriangleScene) Destroy(dev graphics.Device) {
	if s.mesh != nil {
		s.mesh.Destroy(dev)
	}
	if s.program != nil {
		s.program.Delete()
	}
}

// ────────────────────────────────── model ─────────────────────────────────────

// ModelScene draws an OBJ model lit by a directional light.
type ModelScene struct {
	cameraSceneBase
	path  string
	model *model.Model
}

// LightDir points from the surface towards the light.
var LightDir = mgl32.Vec3{0.3, 1.0, 0.5}

func NewModelScene(path string) *ModelScene {
	return &ModelScene{
		cameraSceneBase: cameraSceneBase{camera: camera.New(mgl32.Vec3{0, 0, 3})},
		path:            path,
	}
}

func (s *ModelScene) Descriptor() Descriptor {
	return Descriptor{Name: "model", DepthTest: true, ClearColor: mgl32.Vec4{0.05, 0.05, 0.05, 1}}
}

func (s *ModelScene) Init(ctx context.Context, dev graphics.Device, fsys *filesystem.FileSystem) error {
	mdl, err := model.Load(fsys, s.path)
	if err != nil {
		return err
	}
	p, err := shader.LoadProgram(ctx, dev, fsys, modelVertexShader, modelFragmentShader)
	if err != nil {
		return err
	}
	if err := mdl.Upload(dev); err != nil {
		p.Delete()
		return fmt.Errorf("failed to upload model: %w", err)
	}
	s.program, s.model = p, mdl
	return nil
}

func (s *ModelScene) Draw(dev graphics.Device, frame Frame, width, height int) {
	s.program.Use()
	s.setMatrices(mgl32.Ident4(), width, height)
	s.program.SetVec3("viewPos", s.camera.Position)
	s.program.SetVec3("lightDir", LightDir.Normalize())
	s.model.Draw(dev)
}

func (s *ModelScene) Destroy(dev graphics.Device) {
	if s.model != nil {
		s.model.Destroy(dev)
	}
	if s.program != nil {
		s.program.Delete()
	}
}
