package app

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/richinsley/glpractice/graphics"
	"github.com/richinsley/glpractice/graphics/graphicstest"
	"github.com/richinsley/glpractice/options"
	"github.com/richinsley/glpractice/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	frames int
	closed bool
}

func (s *fakeSink) WriteFrame([]byte) error { s.frames++; return nil }
func (s *fakeSink) Close() error            { s.closed = true; return nil }

type fakePlatform struct {
	initErr, windowErr, deviceErr, sinkErr error

	dev        *graphicstest.Device
	window     *graphicstest.Context
	sink       *fakeSink
	visible    bool
	inits      int
	terminates int
}

func newPlatform() *fakePlatform {
	w := graphicstest.NewContext(800, 600)
	w.FrameLimit = 2
	return &fakePlatform{dev: graphicstest.NewDevice(), window: w, sink: &fakeSink{}}
}

func (p *fakePlatform) Init() error { p.inits++; return p.initErr }
func (p *fakePlatform) Terminate()  { p.terminates++ }

func (p *fakePlatform) NewContext(opts *options.Options, visible bool) (graphics.Context, error) {
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	p.visible = visible
	return p.window, nil
}

func (p *fakePlatform) NewDevice() (graphics.Device, error) {
	if p.deviceErr != nil {
		return nil, p.deviceErr
	}
	return p.dev, nil
}

func (p *fakePlatform) NewFrameSink(opts *options.Options) (renderer.FrameSink, error) {
	if p.sinkErr != nil {
		return nil, p.sinkErr
	}
	return p.sink, nil
}

func newOptions(t *testing.T, args ...string) *options.Options {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := options.New(fs)
	require.NoError(t, fs.Parse(args))
	return opts
}

func TestRunInteractive(t *testing.T) {
	p := newPlatform()
	code := Run(newOptions(t), p)
	assert.Equal(t, ExitOK, code)
	assert.True(t, p.visible)
	assert.Equal(t, 2, p.window.Swaps)
	assert.Equal(t, 2, p.dev.Draws())
	assert.Equal(t, 1, p.window.Shutdowns)
	assert.Equal(t, 1, p.terminates)
	assert.Equal(t, 1, p.dev.Count("DeleteProgram"), "scene resources are released")
}

func TestStartupFailuresExitWithoutDrawing(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name      string
		args      []string
		setup     func(p *fakePlatform)
		shutdowns int
	}{
		{"invalid options", []string{"-width", "0"}, func(p *fakePlatform) {}, 0},
		{"platform init", nil, func(p *fakePlatform) { p.initErr = boom }, 0},
		{"window creation", nil, func(p *fakePlatform) { p.windowErr = boom }, 0},
		{"gl load", nil, func(p *fakePlatform) { p.deviceErr = boom }, 1},
		{"shader compile", nil, func(p *fakePlatform) {
			p.dev.FailCompile[graphics.VertexShader] = "0:1: error"
		}, 1},
		{"shader link", nil, func(p *fakePlatform) { p.dev.FailLink = "link error" }, 1},
		{"missing shader file", []string{"-variant", "camera", "-root", t.TempDir()}, func(p *fakePlatform) {}, 1},
		{"missing model", []string{"-variant", "model", "-root", t.TempDir()}, func(p *fakePlatform) {}, 1},
	}
	for _, tt := range tests {
		p := newPlatform()
		tt.setup(p)
		code := Run(newOptions(t, tt.args...), p)
		assert.Equal(t, ExitFailure, code, tt.name)
		assert.Zero(t, p.dev.Draws(), tt.name)
		assert.Zero(t, p.window.Swaps, tt.name)
		assert.Equal(t, tt.shutdowns, p.window.Shutdowns, tt.name)
		if p.inits > 0 {
			assert.Equal(t, 1, p.terminates, tt.name)
		}
	}
}

func TestRunRecord(t *testing.T) {
	p := newPlatform()
	code := Run(newOptions(t, "-record", "-duration", "500ms", "-fps", "10", "-width", "4", "-height", "4"), p)
	assert.Equal(t, ExitOK, code)
	assert.False(t, p.visible, "record mode uses a hidden window")
	assert.Equal(t, 5, p.sink.frames)
	assert.True(t, p.sink.closed)
	assert.Zero(t, p.window.Swaps)
	assert.Equal(t, 1, p.terminates)
}

func TestRunRecordFailures(t *testing.T) {
	p := newPlatform()
	p.sinkErr = errors.New("no ffmpeg")
	assert.Equal(t, ExitFailure, Run(newOptions(t, "-record"), p))
	assert.Zero(t, p.dev.Draws())

	p = newPlatform()
	p.dev.Incomplete = true
	assert.Equal(t, ExitFailure, Run(newOptions(t, "-record"), p))
	assert.True(t, p.sink.closed)
	assert.Zero(t, p.dev.Draws())
}
