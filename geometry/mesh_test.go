package geometry

import (
	"testing"

	"github.com/richinsley/glpractice/graphics"
	"github.com/richinsley/glpractice/graphics/graphicstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleUploadMatchesData(t *testing.T) {
	dev := graphicstest.NewDevice()
	m, err := NewTriangle(dev, true)
	require.NoError(t, err)

	// vao=1 vbo=2 ebo=3
	assert.Equal(t, []float32{
		0.0, 0.5, 0.0,
		0.5, -0.5, 0.0,
		-0.5, -0.5, 0.0,
	}, dev.Floats[2])
	assert.Equal(t, []uint32{0, 1, 2}, dev.Indices[3])
	assert.True(t, m.Indexed())
	assert.Equal(t, int32(3), m.Count())

	attr := dev.Named("VertexAttribPointer")
	require.Len(t, attr, 1)
	assert.Equal(t, []any{uint32(0), int32(3), int32(12), 0}, attr[0].Args)
}

func TestUploadOrder(t *testing.T) {
	dev := graphicstest.NewDevice()
	_, err := NewTriangle(dev, true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GenVertexArray", "GenBuffer", "GenBuffer",
		"BindVertexArray",
		"BindBuffer", "BufferFloat32",
		"BindBuffer", "BufferUint32",
		"VertexAttribPointer", "EnableVertexAttribArray",
		"BindBuffer", "BindVertexArray",
	}, dev.Names())

	binds := dev.Named("BindBuffer")
	last := binds[len(binds)-1]
	assert.Equal(t, []any{graphics.ArrayBuffer, uint32(0)}, last.Args, "only the array buffer is unbound")
	vaos := dev.Named("BindVertexArray")
	assert.Equal(t, uint32(0), vaos[len(vaos)-1].Args[0])
}

func TestDrawIndexedAndArrays(t *testing.T) {
	dev := graphicstest.NewDevice()
	indexed, err := NewTriangle(dev, true)
	require.NoError(t, err)
	plain, err := NewTriangle(dev, false)
	require.NoError(t, err)
	dev.Reset()

	indexed.Draw(dev)
	plain.Draw(dev)
	assert.Equal(t, []any{int32(3)}, dev.Named("DrawElements")[0].Args)
	assert.Equal(t, []any{int32(0), int32(3)}, dev.Named("DrawArrays")[0].Args)
	assert.False(t, plain.Indexed())
}

func TestInterleavedLayout(t *testing.T) {
	dev := graphicstest.NewDevice()
	layout := Layout{{Index: 0, Size: 3}, {Index: 1, Size: 3}, {Index: 2, Size: 2}}
	assert.Equal(t, 8, layout.Stride())

	vertices := make([]float32, 8*4)
	_, err := NewMesh(dev, vertices, []uint32{0, 1, 2, 0, 2, 3}, layout)
	require.NoError(t, err)

	attr := dev.Named("VertexAttribPointer")
	require.Len(t, attr, 3)
	assert.Equal(t, []any{uint32(1), int32(3), int32(32), 12}, attr[1].Args)
	assert.Equal(t, []any{uint32(2), int32(2), int32(32), 24}, attr[2].Args)
}

func TestNewMeshValidation(t *testing.T) {
	dev := graphicstest.NewDevice()

	_, err := NewMesh(dev, nil, nil, PositionLayout)
	assert.Error(t, err)
	_, err = NewMesh(dev, []float32{1, 2}, nil, PositionLayout)
	assert.Error(t, err)
	_, err = NewMesh(dev, TriangleVertices, []uint32{0, 1, 3}, PositionLayout)
	assert.Error(t, err)
	_, err = NewMesh(dev, TriangleVertices, nil, Layout{})
	assert.Error(t, err)
	assert.Empty(t, dev.Calls, "validation happens before any GPU call")
}

func TestDestroy(t *testing.T) {
	dev := graphicstest.NewDevice()
	m, err := NewTriangle(dev, true)
	require.NoError(t, err)
	m.Destroy(dev)
	m.Destroy(dev)
	assert.Equal(t, 1, dev.Count("DeleteVertexArray"))
	assert.Equal(t, 2, dev.Count("DeleteBuffer"))
}
