package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glpractice/graphics"
	"github.com/richinsley/glpractice/options"
)

// Context wraps a GLFW window and routes its input callbacks to the
// functions registered by the renderer.
type Context struct {
	window *glfw.Window
	// A map to store functions to be called on key presses.
	keyCallbacks map[graphics.Key]func()
	cursorPos    func(x, y float64)
	scroll       func(xoff, yoff float64)
}

// New creates the window and its OpenGL context. When visible is false
// the window stays hidden, which is how record mode renders.
func New(opts *options.Options, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, *opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, *opts.GLMinor)
	// Core profile indicates that the code won't be backward compatible
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if *opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[graphics.Key]func()),
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetScrollCallback(c.glfwScrollCallback)

	win.MakeContextCurrent()
	if *opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key graphics.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if callback, ok := c.keyCallbacks[fromGLFWKey(key)]; ok {
		callback()
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, x, y float64) {
	if c.cursorPos != nil {
		c.cursorPos(x, y)
	}
}

func (c *Context) glfwScrollCallback(w *glfw.Window, xoff, yoff float64) {
	if c.scroll != nil {
		c.scroll(xoff, yoff)
	}
}

func (c *Context) SetCursorPosCallback(f func(x, y float64)) {
	c.cursorPos = f
}

func (c *Context) SetScrollCallback(f func(xoff, yoff float64)) {
	c.scroll = f
}

func (c *Context) KeyDown(key graphics.Key) bool {
	k, ok := toGLFWKey(key)
	if !ok {
		return false
	}
	return c.window.GetKey(k) == glfw.Press
}

func (c *Context) CaptureCursor(capture bool) {
	if capture {
		c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		c.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// Shutdown only destroys the window; GLFW itself is released by TerminateGraphics.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

var _ graphics.Context = (*Context)(nil)
