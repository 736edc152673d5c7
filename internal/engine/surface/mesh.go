package surface

import (
	"fmt"
	"math"
)

// DefaultMaxVertices caps Build allocations. Rings*Segments above the cap is
// rejected instead of attempting a multi-hundred-megabyte artifact.
const DefaultMaxVertices = 1 << 22

// vertexIndex is the row-major addressing rule shared by the grid and index
// builders: vertex (ring i, segment j) lives at i*segments + j.
func vertexIndex(i, j, segments int) int {
	return i*segments + j
}

// Build generates the full mesh artifact for the given resolution and
// parameters: positions, UVs, the triangle index buffer at the minimal index
// width, and area-weighted vertex normals. Every call returns a fresh,
// independently owned artifact.
func Build(res Resolution, p Params) (*Mesh, error) {
	return BuildWithLimit(res, p, DefaultMaxVertices)
}

// BuildWithLimit is Build with an explicit vertex cap. A cap of zero or less
// disables the limit.
func BuildWithLimit(res Resolution, p Params, maxVertices int) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	res = res.Clamp()
	vertexCount := res.Rings * res.Segments
	if maxVertices > 0 && vertexCount > maxVertices {
		return nil, fmt.Errorf("%w: %dx%d grid needs %d vertices (limit %d)",
			ErrResourceLimit, res.Rings, res.Segments, vertexCount, maxVertices)
	}

	positions, uvs := buildGrid(res, p)
	indices := buildIndices(res)
	normals := ComputeNormals(positions, indices, vertexCount)

	width, _ := SelectIndexWidth(vertexCount)
	mesh := &Mesh{
		Positions:  positions,
		Normals:    normals,
		UVs:        uvs,
		IndexCount: len(indices),
		IndexWidth: width,
	}
	if width == Index16 {
		narrow := make([]uint16, len(indices))
		for k, idx := range indices {
			narrow[k] = uint16(idx)
		}
		mesh.Indices16 = narrow
	} else {
		mesh.Indices32 = indices
	}
	return mesh, nil
}

// buildGrid fills the position and UV buffers in row-major vertex order.
// Radius runs [0, Radius] over the rings, angle runs [0, 2*pi] over the
// segments, both endpoints included. The last angular column geometrically
// duplicates the first; the seam is deliberately not index-welded.
func buildGrid(res Resolution, p Params) (positions, uvs []float32) {
	vertexCount := res.Rings * res.Segments
	positions = make([]float32, 3*vertexCount)
	uvs = make([]float32, 2*vertexCount)

	for i := 0; i < res.Rings; i++ {
		radialFrac := float64(i) / float64(res.Rings-1)
		r := p.Radius * radialFrac
		t := float32(i) / float32(res.Rings-1)

		for j := 0; j < res.Segments; j++ {
			u := 2 * math.Pi * float64(j) / float64(res.Segments-1)
			x, y, z := Sample(r, u, p)

			v := vertexIndex(i, j, res.Segments)
			positions[3*v+0] = x
			positions[3*v+1] = y
			positions[3*v+2] = z
			uvs[2*v+0] = float32(j) / float32(res.Segments-1)
			uvs[2*v+1] = t
		}
	}
	return positions, uvs
}

// buildIndices emits two triangles per grid quad with a fixed diagonal:
// (a,b,c) then (b,d,c) for corners a=(i,j), b=(i+1,j), c=(i,j+1),
// d=(i+1,j+1). The winding is what keeps every face normal pointing to the
// same side of the surface; the normal pass depends on it.
func buildIndices(res Resolution) []uint32 {
	quadCount := (res.Rings - 1) * (res.Segments - 1)
	indices := make([]uint32, 0, 6*quadCount)

	for i := 0; i < res.Rings-1; i++ {
		for j := 0; j < res.Segments-1; j++ {
			a := uint32(vertexIndex(i, j, res.Segments))
			b := uint32(vertexIndex(i+1, j, res.Segments))
			c := uint32(vertexIndex(i, j+1, res.Segments))
			d := uint32(vertexIndex(i+1, j+1, res.Segments))

			indices = append(indices,
				a, b, c,
				b, d, c,
			)
		}
	}
	return indices
}
