package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/richinsley/glpractice/app"
	"github.com/richinsley/glpractice/encoder"
	"github.com/richinsley/glpractice/gldevice"
	"github.com/richinsley/glpractice/glfwcontext"
	"github.com/richinsley/glpractice/graphics"
	"github.com/richinsley/glpractice/options"
	"github.com/richinsley/glpractice/renderer"
)

// desktop runs on GLFW windows and the go-gl OpenGL bindings.
type desktop struct{}

func (desktop) Init() error { return glfwcontext.InitGraphics() }
func (desktop) Terminate()  { glfwcontext.TerminateGraphics() }

func (desktop) NewContext(opts *options.Options, visible bool) (graphics.Context, error) {
	ctx, err := glfwcontext.New(opts, visible)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

func (desktop) NewDevice() (graphics.Device, error) {
	dev, err := gldevice.New()
	if err != nil {
		return nil, err
	}
	return dev, nil
}

func (desktop) NewFrameSink(opts *options.Options) (renderer.FrameSink, error) {
	enc, err := encoder.New(encoder.ConfigFromOptions(opts, runtime.GOOS))
	if err != nil {
		return nil, err
	}
	return enc, nil
}

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	opts := options.New(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("OpenGL practice programs")
		flag.PrintDefaults()
		return
	}

	os.Exit(app.Run(opts, desktop{}))
}
