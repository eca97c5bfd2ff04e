// Package encoder pipes raw RGBA frames into an ffmpeg process.
package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/richinsley/glpractice/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type Config struct {
	Width      int
	Height     int
	FPS        int
	OutputFile string
	FFmpegPath string
	Codec      string // h264 or hevc
	// GOOS selects the hardware encoder when HWAccel is set; empty means
	// software encoding.
	GOOS    string
	HWAccel bool
}

// ConfigFromOptions reads the recording options. goos is the platform
// hardware encoders are picked for.
func ConfigFromOptions(opts *options.Options, goos string) Config {
	return Config{
		Width:      *opts.Width,
		Height:     *opts.Height,
		FPS:        *opts.FPS,
		OutputFile: *opts.OutputFile,
		FFmpegPath: *opts.FFmpegPath,
		Codec:      *opts.Codec,
		GOOS:       goos,
		HWAccel:    *opts.HWAccel,
	}
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d", c.FPS)
	}
	if c.OutputFile == "" {
		return errors.New("no output file")
	}
	return nil
}

// FrameSize is the byte size of one RGBA frame.
func (c Config) FrameSize() int {
	return c.Width * c.Height * 4
}

// videoEncoder picks the ffmpeg encoder for the codec, preferring the
// platform's hardware encoder when asked to.
func videoEncoder(cfg Config) string {
	hevc := cfg.Codec == "hevc"
	if cfg.HWAccel {
		switch cfg.GOOS {
		case "linux", "windows":
			if hevc {
				return "hevc_nvenc"
			}
			return "h264_nvenc"
		case "darwin":
			if hevc {
				return "hevc_videotoolbox"
			}
			return "h264_videotoolbox"
		}
	}
	if hevc {
		return "libx265"
	}
	return "libx264"
}

func getArgs(cfg Config) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"framerate": cfg.FPS,
	}

	// Rows arrive bottom first.
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     videoEncoder(cfg),
		"pix_fmt": "yuv420p",
	}
	if strings.HasSuffix(outputArgs["c:v"].(string), "_nvenc") {
		outputArgs["preset"] = "p2"
	}
	if cfg.Codec == "hevc" && strings.EqualFold(filepath.Ext(cfg.OutputFile), ".mp4") {
		outputArgs["tag:v"] = "hvc1"
	}
	return
}

func newStream(cfg Config, r io.Reader) *ffmpeg.Stream {
	inputArgs, outputArgs := getArgs(cfg)
	stream := ffmpeg.Input("pipe:", inputArgs).
		Output(cfg.OutputFile, outputArgs).
		OverWriteOutput().WithInput(r).ErrorToStdOut()
	if cfg.FFmpegPath != "" {
		stream = stream.SetFfmpegPath(cfg.FFmpegPath)
	}
	return stream
}

// Encoder feeds frames to a running ffmpeg process over a pipe.
type Encoder struct {
	cfg        Config
	pipeWriter *io.PipeWriter
	errc       chan error
	frames     int

	closeOnce sync.Once
	closeErr  error
}

// New starts ffmpeg writing cfg.OutputFile.
func New(cfg Config) (*Encoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	pipeReader, pipeWriter := io.Pipe()
	e := &Encoder{
		cfg:        cfg,
		pipeWriter: pipeWriter,
		errc:       make(chan error, 1),
	}
	log.Printf("Encoding %dx%d@%d with %s to %s", cfg.Width, cfg.Height, cfg.FPS, videoEncoder(cfg), cfg.OutputFile)

	stream := newStream(cfg, pipeReader)
	go func() {
		err := stream.Run()
		// Unblock writers if ffmpeg stops reading early.
		if err != nil {
			pipeReader.CloseWithError(fmt.Errorf("ffmpeg: %w", err))
		} else {
			pipeReader.Close()
		}
		e.errc <- err
	}()
	return e, nil
}

// WriteFrame sends one RGBA frame.
func (e *Encoder) WriteFrame(pixels []byte) error {
	if len(pixels) != e.cfg.FrameSize() {
		return fmt.Errorf("frame has %d bytes, want %d", len(pixels), e.cfg.FrameSize())
	}
	if _, err := e.pipeWriter.Write(pixels); err != nil {
		return fmt.Errorf("failed to write frame %d to ffmpeg: %w", e.frames, err)
	}
	e.frames++
	return nil
}

// Close ends the input stream and waits for ffmpeg to finish.
func (e *Encoder) Close() error {
	e.closeOnce.Do(func() {
		e.pipeWriter.Close()
		if err := <-e.errc; err != nil {
			e.closeErr = fmt.Errorf("ffmpeg failed: %w", err)
			return
		}
		log.Printf("Wrote %d frames to %s", e.frames, e.cfg.OutputFile)
	})
	return e.closeErr
}
