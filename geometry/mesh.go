package geometry

import (
	"errors"
	"fmt"

	"github.com/richinsley/glpractice/graphics"
)

// Device is the graphics device meshes upload to.
type Device = graphics.Device

const floatSize = 4

// Attribute is one float vector attribute of an interleaved vertex.
type Attribute struct {
	Index uint32
	Size  int32 // number of float components
}

type Layout []Attribute

// Stride returns the vertex size in floats.
func (l Layout) Stride() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Mesh is static vertex data resident on the GPU.
type Mesh struct {
	vao, vbo, ebo uint32
	vertexCount   int32
	indexCount    int32
}

// NewMesh uploads interleaved vertices, and indices when non-empty, and
// describes the attribute layout in a new vertex array.
func NewMesh(dev Device, vertices []float32, indices []uint32, layout Layout) (*Mesh, error) {
	stride := layout.Stride()
	if stride == 0 {
		return nil, errors.New("mesh layout has no attributes")
	}
	if len(vertices) == 0 {
		return nil, errors.New("mesh has no vertices")
	}
	if len(vertices)%stride != 0 {
		return nil, fmt.Errorf("mesh has %d floats, not a multiple of the %d float stride", len(vertices), stride)
	}
	vertexCount := len(vertices) / stride
	for i, idx := range indices {
		if int(idx) >= vertexCount {
			return nil, fmt.Errorf("index %d at position %d is out of range for %d vertices", idx, i, vertexCount)
		}
	}

	m := &Mesh{
		vertexCount: int32(vertexCount),
		indexCount:  int32(len(indices)),
	}
	m.vao = dev.GenVertexArray()
	m.vbo = dev.GenBuffer()
	if len(indices) > 0 {
		m.ebo = dev.GenBuffer()
	}

	// Bind the vertex array first, then the buffers, then describe the attributes.
	dev.BindVertexArray(m.vao)

	dev.BindBuffer(graphics.ArrayBuffer, m.vbo)
	dev.BufferFloat32(graphics.ArrayBuffer, vertices)

	if m.ebo != 0 {
		dev.BindBuffer(graphics.ElementArrayBuffer, m.ebo)
		dev.BufferUint32(graphics.ElementArrayBuffer, indices)
	}

	offset := 0
	for _, a := range layout {
		dev.VertexAttribPointer(a.Index, a.Size, int32(stride*floatSize), offset*floatSize)
		dev.EnableVertexAttribArray(a.Index)
		offset += int(a.Size)
	}

	// The attribute pointers captured the VBO so it can be unbound. The
	// element buffer binding is part of the vertex array state and stays.
	dev.BindBuffer(graphics.ArrayBuffer, 0)
	dev.BindVertexArray(0)

	return m, nil
}

func (m *Mesh) Indexed() bool {
	return m.indexCount > 0
}

// Count returns the number of vertices a draw call consumes.
func (m *Mesh) Count() int32 {
	if m.Indexed() {
		return m.indexCount
	}
	return m.vertexCount
}

func (m *Mesh) Draw(dev Device) {
	dev.BindVertexArray(m.vao)
	if m.Indexed() {
		dev.DrawElements(m.indexCount)
	} else {
		dev.DrawArrays(0, m.vertexCount)
	}
}

func (m *Mesh) Destroy(dev Device) {
	if m.vao == 0 {
		return
	}
	dev.DeleteVertexArray(m.vao)
	dev.DeleteBuffer(m.vbo)
	if m.ebo != 0 {
		dev.DeleteBuffer(m.ebo)
	}
	*m = Mesh{}
}
