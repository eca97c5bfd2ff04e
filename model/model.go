package model

import (
	"fmt"
	"log"

	"github.com/richinsley/glpractice/filesystem"
	"github.com/richinsley/glpractice/geometry"
	"github.com/richinsley/glpractice/graphics"
)

// Layout is the attribute layout of decoded vertices.
var Layout = geometry.Layout{
	{Index: 0, Size: 3}, // position
	{Index: 1, Size: 3}, // normal
	{Index: 2, Size: 2}, // uv
}

// Model is a decoded OBJ file and, once uploaded, its GPU meshes.
type Model struct {
	Path   string
	Data   []MeshData
	meshes []*geometry.Mesh
}

// Load decodes the OBJ file at path.
func Load(fsys *filesystem.FileSystem, path string) (*Model, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model: %w", err)
	}
	defer f.Close()

	dec, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, w := range dec.Warnings {
		log.Printf("%s: %s", path, w)
	}
	m := &Model{Path: path}
	for _, d := range dec.Meshes() {
		if len(d.Indices) > 0 {
			m.Data = append(m.Data, d)
		}
	}
	if len(m.Data) == 0 {
		return nil, fmt.Errorf("%s: model has no faces", path)
	}
	return m, nil
}

// Upload creates one mesh per decoded object. Meshes already created are
// destroyed when a later one fails.
func (m *Model) Upload(dev graphics.Device) error {
	for _, d := range m.Data {
		mesh, err := geometry.NewMesh(dev, d.Vertices, d.Indices, Layout)
		if err != nil {
			m.Destroy(dev)
			return fmt.Errorf("%s: %s: %w", m.Path, d.Name, err)
		}
		m.meshes = append(m.meshes, mesh)
	}
	return nil
}

func (m *Model) Draw(dev graphics.Device) {
	for _, mesh := range m.meshes {
		mesh.Draw(dev)
	}
}

func (m *Model) Destroy(dev graphics.Device) {
	for _, mesh := range m.meshes {
		mesh.Destroy(dev)
	}
	m.meshes = nil
}
