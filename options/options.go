package options

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// RootEnv names the environment variable consulted when -root is not set.
const RootEnv = "GLPRACTICE_ROOT"

// Variants lists the supported program variants in tutorial order.
var Variants = []string{"triangle", "uniform", "camera", "model"}

type Options struct {
	Variant    *string
	Width      *int
	Height     *int
	Title      *string
	GLMajor    *int
	GLMinor    *int
	Resizable  *bool
	VSync      *bool
	Wireframe  *bool
	Root       *string // asset root, falls back to $GLPRACTICE_ROOT then "."
	ModelPath  *string // OBJ model used by the model variant, relative to Root
	Help       *bool
	Record     *bool
	Duration   *time.Duration
	FPS        *int
	OutputFile *string
	FFmpegPath *string
	Codec      *string // h264 or hevc
	HWAccel    *bool
}

// New registers every option on fs and returns the bound set.
func New(fs *flag.FlagSet) *Options {
	return &Options{
		Variant:    fs.String("variant", "uniform", "Program variant: triangle, uniform, camera or model"),
		Width:      fs.Int("width", 800, "Window width"),
		Height:     fs.Int("height", 600, "Window height"),
		Title:      fs.String("title", "OpenGL", "Window title"),
		GLMajor:    fs.Int("gl-major", 4, "Requested OpenGL context major version"),
		GLMinor:    fs.Int("gl-minor", 1, "Requested OpenGL context minor version"),
		Resizable:  fs.Bool("resizable", false, "Allow the window to be resized"),
		VSync:      fs.Bool("vsync", true, "Synchronise buffer swaps with the display"),
		Wireframe:  fs.Bool("wireframe", false, "Start in wireframe polygon mode (toggle with Tab)"),
		Root:       fs.String("root", os.Getenv(RootEnv), "Asset root directory (from "+RootEnv+" env var if not set)"),
		ModelPath:  fs.String("model", "resources/objects/cube.obj", "Wavefront OBJ model for the model variant"),
		Help:       fs.Bool("help", false, "Show help message"),
		Record:     fs.Bool("record", false, "Render offscreen and encode to -output instead of opening a window"),
		Duration:   fs.Duration("duration", 5*time.Second, "Duration to record"),
		FPS:        fs.Int("fps", 60, "Frames per second for recording"),
		OutputFile: fs.String("output", "output.mp4", "Output file name for recording"),
		FFmpegPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Codec:      fs.String("codec", "h264", "Video codec for recording: h264 or hevc"),
		HWAccel:    fs.Bool("hwaccel", false, "Use the platform hardware encoder (NVENC or VideoToolbox) when recording"),
	}
}

// Validate reports the first option that cannot be used to start the program.
func (o *Options) Validate() error {
	known := false
	for _, v := range Variants {
		if *o.Variant == v {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown variant %q (want one of %v)", *o.Variant, Variants)
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if *o.GLMajor < 3 || (*o.GLMajor == 3 && *o.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is too old, need at least 3.3", *o.GLMajor, *o.GLMinor)
	}
	if *o.Record {
		if *o.FPS <= 0 {
			return fmt.Errorf("invalid frame rate %d", *o.FPS)
		}
		if *o.Duration <= 0 {
			return fmt.Errorf("invalid record duration %v", *o.Duration)
		}
		if *o.OutputFile == "" {
			return fmt.Errorf("record mode needs an output file")
		}
	}
	switch *o.Codec {
	case "h264", "hevc":
	default:
		return fmt.Errorf("unknown codec %q", *o.Codec)
	}
	return nil
}
