package renderer

import (
	"fmt"
	"log"
	"time"

	"github.com/richinsley/glpractice/graphics"
)

// FrameSink consumes RGBA frames rendered offscreen. The pixel slice is
// reused once WriteFrame returns.
type FrameSink interface {
	WriteFrame(pixels []byte) error
	Close() error
}

// OffscreenTarget is a framebuffer with an RGBA8 colour texture and a
// depth renderbuffer.
type OffscreenTarget struct {
	dev               graphics.Device
	fbo               uint32
	textureID         uint32
	depthRenderbuffer uint32
	width             int
	height            int
}

func NewOffscreenTarget(dev graphics.Device, width, height int) (*OffscreenTarget, error) {
	ot := &OffscreenTarget{dev: dev, width: width, height: height}

	ot.fbo = dev.GenFramebuffer()
	dev.BindFramebuffer(ot.fbo)
	ot.textureID = dev.GenTexture()
	dev.ColorTexture(ot.textureID, width, height)
	ot.depthRenderbuffer = dev.GenRenderbuffer()
	dev.DepthRenderbuffer(ot.depthRenderbuffer, width, height)
	complete := dev.FramebufferComplete()
	dev.BindFramebuffer(0)

	if !complete {
		ot.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete")
	}
	return ot, nil
}

// FrameSize is the byte size of one RGBA frame.
func (ot *OffscreenTarget) FrameSize() int {
	return ot.width * ot.height * 4
}

func (ot *OffscreenTarget) Bind() {
	ot.dev.BindFramebuffer(ot.fbo)
}

func (ot *OffscreenTarget) Unbind() {
	ot.dev.BindFramebuffer(0)
}

// ReadPixels copies the bound target into dst, bottom row first.
func (ot *OffscreenTarget) ReadPixels(dst []byte) error {
	if len(dst) < ot.FrameSize() {
		return fmt.Errorf("pixel buffer holds %d bytes, need %d", len(dst), ot.FrameSize())
	}
	ot.dev.ReadPixels(0, 0, ot.width, ot.height, dst)
	return nil
}

func (ot *OffscreenTarget) Destroy() {
	if ot.fbo == 0 {
		return
	}
	ot.dev.DeleteFramebuffer(ot.fbo)
	ot.dev.DeleteTexture(ot.textureID)
	ot.dev.DeleteRenderbuffer(ot.depthRenderbuffer)
	ot.fbo = 0
}

// FrameCount is the number of frames recorded for duration at fps.
func FrameCount(duration time.Duration, fps int) int {
	return int(duration * time.Duration(fps) / time.Second)
}

// RunOffscreen renders duration's worth of frames at fixed time steps of
// 1/fps seconds and writes each to sink. The sink is always closed.
func (r *Renderer) RunOffscreen(sink FrameSink, duration time.Duration, fps int) error {
	log.Println("Starting in record mode...")
	target, err := NewOffscreenTarget(r.dev, r.width, r.height)
	if err != nil {
		sink.Close()
		return err
	}
	defer target.Destroy()

	totalFrames := FrameCount(duration, fps)
	timeStep := 1.0 / float64(fps)
	pixels := make([]byte, target.FrameSize())

	for i := 0; i < totalFrames; i++ {
		frame := r.timer.Tick(float64(i) * timeStep)

		target.Bind()
		r.renderFrame(frame, r.width, r.height)
		err := target.ReadPixels(pixels)
		target.Unbind()
		if err != nil {
			sink.Close()
			return fmt.Errorf("failed to read frame %d: %w", i, err)
		}

		if err := sink.WriteFrame(pixels); err != nil {
			sink.Close()
			return fmt.Errorf("failed to write frame %d: %w", i, err)
		}
		if fps > 0 && (i+1)%fps == 0 {
			log.Printf("Recorded %d/%d frames", i+1, totalFrames)
		}
	}
	return sink.Close()
}
