package renderer

import (
	"github.com/richinsley/glpractice/camera"
	"github.com/richinsley/glpractice/graphics"
)

var movementKeys = []struct {
	key graphics.Key
	dir camera.Movement
}{
	{graphics.KeyW, camera.Forward},
	{graphics.KeyS, camera.Backward},
	{graphics.KeyA, camera.Left},
	{graphics.KeyD, camera.Right},
	{graphics.KeySpace, camera.Up},
	{graphics.KeyLeftShift, camera.Down},
}

// InputController turns window input into camera motion. It remembers the
// last cursor position so it can forward offsets.
type InputController struct {
	camera     *camera.Camera
	lastX      float64
	lastY      float64
	firstMouse bool
}

// NewInputController starts with the cursor assumed at the centre of a
// width x height window.
func NewInputController(cam *camera.Camera, width, height int) *InputController {
	return &InputController{
		camera:     cam,
		lastX:      float64(width) / 2,
		lastY:      float64(height) / 2,
		firstMouse: true,
	}
}

// Attach registers the cursor and scroll callbacks on window.
func (ic *InputController) Attach(window graphics.Context) {
	window.SetCursorPosCallback(ic.CursorMoved)
	window.SetScrollCallback(ic.Scrolled)
}

// CursorMoved looks around by the offset from the previous position. The
// first event only records the position so the view does not jump.
func (ic *InputController) CursorMoved(x, y float64) {
	if ic.firstMouse {
		ic.lastX = x
		ic.lastY = y
		ic.firstMouse = false
	}
	xoffset := x - ic.lastX
	yoffset := ic.lastY - y // window y grows downwards
	ic.lastX = x
	ic.lastY = y
	ic.camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
}

func (ic *InputController) Scrolled(xoff, yoff float64) {
	ic.camera.ProcessMouseScroll(float32(yoff))
}

// Move applies every held movement key for dt seconds.
func (ic *InputController) Move(window graphics.Context, dt float32) {
	for _, mk := range movementKeys {
		if window.KeyDown(mk.key) {
			ic.camera.ProcessKeyboard(mk.dir, dt)
		}
	}
}
