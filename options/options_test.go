package options

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Options {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	o := New(fs)
	require.NoError(t, fs.Parse(args))
	return o
}

func TestDefaults(t *testing.T) {
	t.Setenv(RootEnv, "")
	o := parse(t)
	assert.Equal(t, "uniform", *o.Variant)
	assert.Equal(t, 800, *o.Width)
	assert.Equal(t, 600, *o.Height)
	assert.Equal(t, 4, *o.GLMajor)
	assert.Equal(t, 1, *o.GLMinor)
	assert.False(t, *o.Resizable)
	assert.False(t, *o.Record)
	assert.Equal(t, 5*time.Second, *o.Duration)
	assert.NoError(t, o.Validate())
}

func TestRootFromEnvironment(t *testing.T) {
	t.Setenv(RootEnv, "/srv/assets")
	o := parse(t)
	assert.Equal(t, "/srv/assets", *o.Root)

	o = parse(t, "-root", "/elsewhere")
	assert.Equal(t, "/elsewhere", *o.Root)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{"camera variant", []string{"-variant", "camera"}, true},
		{"model variant", []string{"-variant", "model"}, true},
		{"unknown variant", []string{"-variant", "cube"}, false},
		{"zero width", []string{"-width", "0"}, false},
		{"negative height", []string{"-height", "-1"}, false},
		{"gl 3.2", []string{"-gl-major", "3", "-gl-minor", "2"}, false},
		{"gl 3.3", []string{"-gl-major", "3", "-gl-minor", "3"}, true},
		{"gl 2.1", []string{"-gl-major", "2", "-gl-minor", "1"}, false},
		{"record", []string{"-record"}, true},
		{"record zero fps", []string{"-record", "-fps", "0"}, false},
		{"record zero duration", []string{"-record", "-duration", "0s"}, false},
		{"record no output", []string{"-record", "-output", ""}, false},
		{"zero fps without record", []string{"-fps", "0"}, true},
		{"hevc", []string{"-codec", "hevc"}, true},
		{"vp9", []string{"-codec", "vp9"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parse(t, tt.args...).Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
