package surface

// MinRings and MinSegments are the smallest grid dimensions that still give
// one ring of quads and a well-formed polygon in angle. Build clamps to them.
const (
	MinRings    = 2
	MinSegments = 3
)

// Resolution is the discretization of the surface grid: Rings radial samples
// by Segments angular samples, endpoints included on both axes.
type Resolution struct {
	Rings    int
	Segments int
}

// Clamp raises the dimensions to their minimums.
func (r Resolution) Clamp() Resolution {
	if r.Rings < MinRings {
		r.Rings = MinRings
	}
	if r.Segments < MinSegments {
		r.Segments = MinSegments
	}
	return r
}

// VertexCount returns Rings*Segments after clamping.
func (r Resolution) VertexCount() int {
	r = r.Clamp()
	return r.Rings * r.Segments
}

// IndexWidth is the integer width of the mesh index buffer.
type IndexWidth int

// Supported index widths.
const (
	Index16 IndexWidth = 16
	Index32 IndexWidth = 32
)

// MaxNarrowVertices is the largest vertex count addressable by 16-bit indices.
const MaxNarrowVertices = 65535

// SelectIndexWidth picks the minimal index width for the given vertex count.
// The second result is true when the wide width was forced; renderers without
// guaranteed 32-bit index support should treat it as a warning and degrade.
func SelectIndexWidth(vertexCount int) (IndexWidth, bool) {
	if vertexCount > MaxNarrowVertices {
		return Index32, true
	}
	return Index16, false
}

// Mesh is the finished artifact handed to the renderer. Buffers are flat and
// vertex-major; exactly one of Indices16/Indices32 is populated according to
// IndexWidth. The caller owns the mesh; Build never retains or reuses it.
type Mesh struct {
	Positions []float32 // 3 per vertex
	Normals   []float32 // 3 per vertex, unit length or (0,0,1) fallback
	UVs       []float32 // 2 per vertex, each component in [0,1]

	Indices16 []uint16
	Indices32 []uint32

	IndexCount int
	IndexWidth IndexWidth
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return m.IndexCount / 3
}
