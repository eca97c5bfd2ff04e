package renderer

import (
	"log"

	"github.com/richinsley/glpractice/graphics"
	"github.com/richinsley/glpractice/options"
)

type Renderer struct {
	window    graphics.Context
	dev       graphics.Device
	scene     Scene
	input     *InputController
	timer     FrameTimer
	wireframe bool
	width     int
	height    int
}

// NewRenderer prepares fixed render state for an initialised scene and,
// unless recording, hooks the window's input up to it.
func NewRenderer(window graphics.Context, dev graphics.Device, scene Scene, opts *options.Options) *Renderer {
	r := &Renderer{
		window: window,
		dev:    dev,
		scene:  scene,
		width:  *opts.Width,
		height: *opts.Height,
	}

	desc := scene.Descriptor()
	if desc.DepthTest {
		dev.Enable(graphics.DepthTest)
	}
	r.SetWireframe(*opts.Wireframe)

	if *opts.Record {
		return r
	}
	window.RegisterKeyCallback(graphics.KeyTab, func() {
		r.SetWireframe(!r.wireframe)
	})
	if cs, ok := scene.(CameraScene); ok {
		r.input = NewInputController(cs.Camera(), r.width, r.height)
		r.input.Attach(window)
		window.CaptureCursor(true)
	}
	return r
}

// SetWireframe switches between line and fill polygon rasterisation.
func (r *Renderer) SetWireframe(on bool) {
	r.wireframe = on
	if on {
		r.dev.PolygonMode(graphics.Line)
	} else {
		r.dev.PolygonMode(graphics.Fill)
	}
}

func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// Run draws frames until the window is asked to close.
func (r *Renderer) Run() {
	log.Printf("Rendering %s scene", r.scene.Descriptor().Name)
	for !r.window.ShouldClose() {
		frame := r.timer.Tick(r.window.Time())
		r.window.PollEvents()
		r.processInput(frame)

		width, height := r.window.GetFramebufferSize()
		r.renderFrame(frame, width, height)
		r.window.SwapBuffers()
	}
}

func (r *Renderer) processInput(frame Frame) {
	if r.window.KeyDown(graphics.KeyEscape) {
		r.window.SetShouldClose(true)
	}
	if r.input != nil {
		r.input.Move(r.window, frame.Delta)
	}
}

func (r *Renderer) renderFrame(frame Frame, width, height int) {
	desc := r.scene.Descriptor()
	r.dev.Viewport(0, 0, width, height)
	c := desc.ClearColor
	r.dev.ClearColor(c[0], c[1], c[2], c[3])
	mask := graphics.ColorBufferBit
	if desc.DepthTest {
		mask |= graphics.DepthBufferBit
	}
	r.dev.Clear(mask)
	r.scene.Draw(r.dev, frame, width, height)
}

// Shutdown releases the scene's GPU resources.
func (r *Renderer) Shutdown() {
	r.scene.Destroy(r.dev)
}
