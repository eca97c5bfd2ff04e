// Package app acquires the window, graphics device and scene in order and
// runs the render loop, giving up with exit code 1 at the first failure.
package app

import (
	"context"
	"log"

	"github.com/richinsley/glpractice/filesystem"
	"github.com/richinsley/glpractice/graphics"
	"github.com/richinsley/glpractice/options"
	"github.com/richinsley/glpractice/renderer"
)

// Platform provides the native resources a run needs.
type Platform interface {
	Init() error
	Terminate()
	// NewContext creates the window and makes its context current. Record
	// mode asks for a hidden window.
	NewContext(opts *options.Options, visible bool) (graphics.Context, error)
	// NewDevice loads the graphics API for the current context.
	NewDevice() (graphics.Device, error)
	// NewFrameSink opens the destination of recorded frames.
	NewFrameSink(opts *options.Options) (renderer.FrameSink, error)
}

const (
	ExitOK      = 0
	ExitFailure = 1
)

// Run executes one program run and returns the process exit code.
func Run(opts *options.Options, platform Platform) int {
	if err := opts.Validate(); err != nil {
		log.Printf("Invalid options: %v", err)
		return ExitFailure
	}
	scene, err := renderer.NewScene(opts)
	if err != nil {
		log.Printf("Failed to select scene: %v", err)
		return ExitFailure
	}

	if err := platform.Init(); err != nil {
		log.Printf("Failed to initialize GLFW: %v", err)
		platform.Terminate()
		return ExitFailure
	}
	defer platform.Terminate()

	window, err := platform.NewContext(opts, !*opts.Record)
	if err != nil {
		log.Printf("Failed to create GLFW window: %v", err)
		return ExitFailure
	}
	defer window.Shutdown()

	dev, err := platform.NewDevice()
	if err != nil {
		log.Printf("Failed to initialize OpenGL: %v", err)
		return ExitFailure
	}

	fsys := filesystem.New(*opts.Root)
	log.Printf("Loading assets from %s", fsys.Root())
	if err := scene.Init(context.Background(), dev, fsys); err != nil {
		log.Printf("Failed to initialize %s scene: %v", *opts.Variant, err)
		return ExitFailure
	}
	r := renderer.NewRenderer(window, dev, scene, opts)
	defer r.Shutdown()

	if !*opts.Record {
		log.Println("Starting interactive render loop...")
		r.Run()
		return ExitOK
	}

	sink, err := platform.NewFrameSink(opts)
	if err != nil {
		log.Printf("Failed to start encoder: %v", err)
		return ExitFailure
	}
	if err := r.RunOffscreen(sink, *opts.Duration, *opts.FPS); err != nil {
		log.Printf("Offscreen rendering failed: %v", err)
		return ExitFailure
	}
	log.Printf("Successfully rendered to %s", *opts.OutputFile)
	return ExitOK
}
