package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/richinsley/glpractice/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootResolution(t *testing.T) {
	t.Setenv(options.RootEnv, "")
	assert.Equal(t, ".", New("").Root())

	t.Setenv(options.RootEnv, "/from/env")
	assert.Equal(t, "/from/env", New("").Root())
	assert.Equal(t, "/explicit", New("/explicit").Root())
}

func TestPath(t *testing.T) {
	f := New("/assets")
	assert.Equal(t, filepath.Join("/assets", "shaders", "camera.vs"), f.Path("shaders/camera.vs"))
	assert.Equal(t, "/abs/model.obj", f.Path("/abs/model.obj"))

	m := NewFS(fstest.MapFS{})
	assert.Equal(t, "shaders/camera.vs", m.Path("./shaders//camera.vs"))
}

func TestReadFileFromFS(t *testing.T) {
	f := NewFS(fstest.MapFS{
		"resources/shaders/a.vs": {Data: []byte("void main() {}")},
	})
	data, err := f.ReadFile("resources/shaders/a.vs")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", string(data))

	_, err = f.ReadFile("resources/shaders/missing.vs")
	assert.Error(t, err)

	r, err := f.Open("./resources/shaders/a.vs")
	require.NoError(t, err)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", string(b))
}

func TestReadFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "objects"), 0o755))
	target := filepath.Join(dir, "objects", "tri.obj")
	require.NoError(t, os.WriteFile(target, []byte("v 0 0 0\n"), 0o644))

	f := New(dir)
	data, err := f.ReadFile("objects/tri.obj")
	require.NoError(t, err)
	assert.Equal(t, "v 0 0 0\n", string(data))

	// Absolute paths bypass the root.
	other := New(t.TempDir())
	data, err = other.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "v 0 0 0\n", string(data))
}

func TestReadFileAboveRoot(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "root")
	require.NoError(t, os.Mkdir(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "m.obj"), []byte("v 1 2 3\n"), 0o644))

	f := New(root)
	assert.Equal(t, filepath.Join(dir, "m.obj"), f.Path("../m.obj"))

	data, err := f.ReadFile("../m.obj")
	require.NoError(t, err)
	assert.Equal(t, "v 1 2 3\n", string(data))

	r, err := f.Open("../m.obj")
	require.NoError(t, err)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "v 1 2 3\n", string(b))

	_, err = f.ReadFile("../missing.obj")
	assert.Error(t, err)

	// Map-backed file systems have no parent to climb to.
	_, err = NewFS(fstest.MapFS{}).ReadFile("../m.obj")
	assert.Error(t, err)
}
