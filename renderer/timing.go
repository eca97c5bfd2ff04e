package renderer

// Frame is the timing of one loop iteration.
type Frame struct {
	Time  float64 // seconds since the clock started
	Delta float32 // seconds since the previous frame
	Index int
}

// FrameTimer turns clock readings into frames. Only the previous reading
// is kept.
type FrameTimer struct {
	last    float64
	index   int
	started bool
}

// Tick returns the frame for clock reading now. The first frame has a zero
// delta, whatever the clock read when it started.
func (t *FrameTimer) Tick(now float64) Frame {
	if !t.started {
		t.last = now
		t.started = true
	}
	f := Frame{
		Time:  now,
		Delta: float32(now - t.last),
		Index: t.index,
	}
	t.last = now
	t.index++
	return f
}
