package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quad = `# a unit quad
mtllib quad.mtl
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl red
s off
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestDecodeQuad(t *testing.T) {
	dec, err := Decode(strings.NewReader(quad))
	require.NoError(t, err)
	require.Len(t, dec.Objects, 1)
	assert.Equal(t, "quad", dec.Objects[0].Name)
	assert.Len(t, dec.Vertices, 4)
	assert.Len(t, dec.Uvs, 4)
	assert.Len(t, dec.Normals, 1)
	require.Len(t, dec.Warnings, 1)
	assert.Equal(t, "obj: line 2: mtllib not read: quad.mtl", dec.Warnings[0])

	meshes := dec.Meshes()
	require.Len(t, meshes, 1)
	m := meshes[0]
	assert.Equal(t, "red", m.Material)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices, "fan triangulation")
	require.Len(t, m.Vertices, 4*VertexSize)
	// Third corner: position, normal, uv.
	assert.Equal(t, []float32{1, 1, 0, 0, 0, 1, 1, 1}, m.Vertices[2*VertexSize:3*VertexSize])
}

func TestDecodeIndexForms(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vt 0.5 0.5
vn 0 0 1
f 1 2 3
f 1/1 2/1 3/1
f 1//1 2//1 3//1
f -3/-1/-1 -2/-1/-1 -1/-1/-1
`
	dec, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, dec.Objects, 1)
	assert.Equal(t, "default", dec.Objects[0].Name)
	faces := dec.Objects[0].Faces
	require.Len(t, faces, 4)

	assert.Equal(t, []int{0, 1, 2}, faces[0].Vertices)
	assert.Equal(t, []int{noIndex, noIndex, noIndex}, faces[0].Uvs)
	assert.Equal(t, []int{noIndex, noIndex, noIndex}, faces[0].Normals)

	assert.Equal(t, []int{0, 0, 0}, faces[1].Uvs)
	assert.Equal(t, []int{noIndex, noIndex, noIndex}, faces[1].Normals)

	assert.Equal(t, []int{noIndex, noIndex, noIndex}, faces[2].Uvs)
	assert.Equal(t, []int{0, 0, 0}, faces[2].Normals)

	assert.Equal(t, faces[3].Vertices, faces[0].Vertices, "negative indices are relative to the end")
	assert.Equal(t, []int{0, 0, 0}, faces[3].Uvs)
}

func TestMissingNormalsUseFaceNormal(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	dec, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	m := dec.Meshes()[0]
	for i := 0; i < 3; i++ {
		n := m.Vertices[i*VertexSize+3 : i*VertexSize+6]
		assert.InDeltaSlice(t, []float32{0, 0, 1}, n, 1e-6)
	}
}

func TestSharedCornersAreDeduplicated(t *testing.T) {
	// Two triangles of a quad sharing an edge and a normal.
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
f 1//1 3//1 4//1
`
	dec, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	m := dec.Meshes()[0]
	assert.Len(t, m.Vertices, 4*VertexSize)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
}

func TestObjectsAndMaterialsSplitMeshes(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
o a
usemtl m1
f 1 2 3
usemtl m2
f 1 2 3
g b
f 1 2 3
`
	dec, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, dec.Objects, 2)
	meshes := dec.Meshes()
	require.Len(t, meshes, 3)
	assert.Equal(t, "m1", meshes[0].Material)
	assert.Equal(t, "m2", meshes[1].Material)
	assert.Equal(t, "m2", meshes[2].Material, "material carries over into the next group")
}

func TestUnknownStatementsWarn(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
l 1 2
f 1 2 3
`
	dec, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, dec.Warnings, 1)
	assert.Contains(t, dec.Warnings[0], "line 4")
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"empty":        "# nothing here\n",
		"short vertex": "v 1 2\n",
		"bad float":    "v 1 x 3\n",
		"short face":   "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"zero index":   "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"out of range": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"bad uv":       "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n",
		"bad corner":   "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1/1 2 3\n",
	}
	for name, src := range tests {
		_, err := Decode(strings.NewReader(src))
		assert.Error(t, err, name)
	}
}
