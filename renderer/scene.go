package renderer

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glpractice/camera"
	"github.com/richinsley/glpractice/filesystem"
	"github.com/richinsley/glpractice/graphics"
	"github.com/richinsley/glpractice/options"
)

// Descriptor holds the fixed render state of a scene.
type Descriptor struct {
	Name       string
	DepthTest  bool
	ClearColor mgl32.Vec4
}

// Scene owns the GPU resources of one program variant and draws a frame.
type Scene interface {
	Descriptor() Descriptor
	// Init compiles shaders and uploads geometry. On error no resource
	// stays allocated.
	Init(ctx context.Context, dev graphics.Device, fsys *filesystem.FileSystem) error
	Draw(dev graphics.Device, frame Frame, width, height int)
	Destroy(dev graphics.Device)
}

// CameraScene is a scene viewed through a user-driven camera.
type CameraScene interface {
	Scene
	Camera() *camera.Camera
}

// NewScene returns the scene for the selected variant.
func NewScene(opts *options.Options) (Scene, error) {
	switch *opts.Variant {
	case "triangle":
		return &TriangleScene{}, nil
	case "uniform":
		return &UniformScene{}, nil
	case "camera":
		return NewCameraTriangleScene(), nil
	case "model":
		return NewModelScene(*opts.ModelPath), nil
	}
	return nil, fmt.Errorf("unknown variant %q", *opts.Variant)
}
