package geometry

// TriangleVertices holds the positions of the tutorial triangle.
var TriangleVertices = []float32{
	0.0, 0.5, 0.0, // top middle
	0.5, -0.5, 0.0, // bottom right
	-0.5, -0.5, 0.0, // bottom left
}

// TriangleIndices draws TriangleVertices as one triangle.
var TriangleIndices = []uint32{
	0, 1, 2,
}

// PositionLayout is a single vec3 position at location 0.
var PositionLayout = Layout{{Index: 0, Size: 3}}

// NewTriangle uploads the tutorial triangle, indexed when indexed is true.
func NewTriangle(dev Device, indexed bool) (*Mesh, error) {
	var indices []uint32
	if indexed {
		indices = TriangleIndices
	}
	return NewMesh(dev, TriangleVertices, indices, PositionLayout)
}
