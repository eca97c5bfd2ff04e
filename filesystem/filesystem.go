// Package filesystem resolves asset paths (shaders, models) against a root
// directory so the program can run from any working directory.
package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/richinsley/glpractice/options"
)

type FileSystem struct {
	root string
	fsys fs.FS
}

// New roots the file system at root, or at $GLPRACTICE_ROOT when root is
// empty, or at the working directory when both are empty.
func New(root string) *FileSystem {
	if root == "" {
		root = os.Getenv(options.RootEnv)
	}
	if root == "" {
		root = "."
	}
	return &FileSystem{root: root, fsys: os.DirFS(root)}
}

// NewFS serves paths from fsys. Path then returns slash-separated paths.
func NewFS(fsys fs.FS) *FileSystem {
	return &FileSystem{fsys: fsys}
}

// Root returns the directory relative paths are resolved against.
func (f *FileSystem) Root() string {
	return f.root
}

// Path returns the location of rel on disk. Absolute paths are returned unchanged.
func (f *FileSystem) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	if f.root == "" {
		return path.Clean(filepath.ToSlash(rel))
	}
	return filepath.Join(f.root, rel)
}

func (f *FileSystem) name(rel string) string {
	return path.Clean(filepath.ToSlash(rel))
}

// onDisk reports whether rel must be read through the OS rather than fsys:
// absolute paths, and paths that climb out of a directory root.
func (f *FileSystem) onDisk(rel string) bool {
	if filepath.IsAbs(rel) {
		return true
	}
	return f.root != "" && !fs.ValidPath(f.name(rel))
}

// Open opens rel for reading.
func (f *FileSystem) Open(rel string) (io.ReadCloser, error) {
	if f.onDisk(rel) {
		return os.Open(f.Path(rel))
	}
	return f.fsys.Open(f.name(rel))
}

// ReadFile returns the contents of rel.
func (f *FileSystem) ReadFile(rel string) ([]byte, error) {
	if f.onDisk(rel) {
		return os.ReadFile(f.Path(rel))
	}
	return fs.ReadFile(f.fsys, f.name(rel))
}
