package graphicstest

import "github.com/richinsley/glpractice/graphics"

// Context is a scripted window. It closes itself after FrameLimit swaps
// when FrameLimit is positive.
type Context struct {
	Width, Height int
	FrameLimit    int
	// TimeStep is added to the clock on every swap.
	TimeStep float64
	// OnPoll runs inside PollEvents with the number of completed frames.
	OnPoll func(frame int)

	Keys      map[graphics.Key]bool
	Captured  bool
	Closed    bool
	Swaps     int
	Polls     int
	Shutdowns int

	now          float64
	keyCallbacks map[graphics.Key]func()
	cursor       func(x, y float64)
	scroll       func(xoff, yoff float64)
}

func NewContext(width, height int) *Context {
	return &Context{
		Width:        width,
		Height:       height,
		TimeStep:     1.0 / 60.0,
		Keys:         make(map[graphics.Key]bool),
		keyCallbacks: make(map[graphics.Key]func()),
	}
}

func (c *Context) Shutdown() { c.Shutdowns++ }

func (c *Context) ShouldClose() bool {
	return c.Closed || (c.FrameLimit > 0 && c.Swaps >= c.FrameLimit)
}

func (c *Context) SetShouldClose(v bool) { c.Closed = v }

func (c *Context) PollEvents() {
	c.Polls++
	if c.OnPoll != nil {
		c.OnPoll(c.Swaps)
	}
}

func (c *Context) SwapBuffers() {
	c.Swaps++
	c.now += c.TimeStep
}

func (c *Context) GetFramebufferSize() (int, int) { return c.Width, c.Height }
func (c *Context) Time() float64                  { return c.now }

// SetTime moves the clock.
func (c *Context) SetTime(t float64) { c.now = t }

func (c *Context) KeyDown(key graphics.Key) bool { return c.Keys[key] }

func (c *Context) RegisterKeyCallback(key graphics.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) SetCursorPosCallback(f func(x, y float64))    { c.cursor = f }
func (c *Context) SetScrollCallback(f func(xoff, yoff float64)) { c.scroll = f }
func (c *Context) CaptureCursor(capture bool)                   { c.Captured = capture }

// Press runs the callback registered for key, if any.
func (c *Context) Press(key graphics.Key) {
	if f, ok := c.keyCallbacks[key]; ok {
		f()
	}
}

// MoveCursor delivers a cursor position event.
func (c *Context) MoveCursor(x, y float64) {
	if c.cursor != nil {
		c.cursor(x, y)
	}
}

// Scroll delivers a scroll event.
func (c *Context) Scroll(xoff, yoff float64) {
	if c.scroll != nil {
		c.scroll(xoff, yoff)
	}
}

var _ graphics.Context = (*Context)(nil)
