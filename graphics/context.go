package graphics

// Key identifies a keyboard key independently of the windowing library.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeyTab
	KeySpace
	KeyLeftShift
)

// Context defines the interface for a window that owns an OpenGL context.
type Context interface {
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	PollEvents()
	SwapBuffers()
	GetFramebufferSize() (int, int)
	Time() float64
	// KeyDown reports whether key is currently held.
	KeyDown(key Key) bool
	// RegisterKeyCallback runs f each time key is pressed.
	RegisterKeyCallback(key Key, f func())
	SetCursorPosCallback(f func(x, y float64))
	SetScrollCallback(f func(xoff, yoff float64))
	// CaptureCursor hides and locks the cursor to the window when true.
	CaptureCursor(capture bool)
}
