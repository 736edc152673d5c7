package surface

import "math"

// normalEpsilon is the length floor below which an accumulated vertex normal
// is considered degenerate and replaced by the +Z fallback.
const normalEpsilon = 1e-12

// ComputeNormals derives per-vertex normals from the position buffer and the
// triangle index list. Each triangle contributes the raw cross product of its
// edge vectors to all three of its vertices; the magnitude is twice the
// triangle area, so the accumulated sum is an area-weighted average once
// normalized. Accumulation completes fully before any vertex is normalized.
//
// Vertices whose accumulated vector cancels to (near) zero, such as the apex
// ring at r=0 where triangles collapse to zero area, get the (0,0,1) fallback
// instead of a NaN.
func ComputeNormals(positions []float32, indices []uint32, vertexCount int) []float32 {
	normals := make([]float32, 3*vertexCount)

	for k := 0; k+2 < len(indices); k += 3 {
		i0 := indices[k+0]
		i1 := indices[k+1]
		i2 := indices[k+2]

		p0x, p0y, p0z := positions[3*i0], positions[3*i0+1], positions[3*i0+2]

		e1x := positions[3*i1+0] - p0x
		e1y := positions[3*i1+1] - p0y
		e1z := positions[3*i1+2] - p0z
		e2x := positions[3*i2+0] - p0x
		e2y := positions[3*i2+1] - p0y
		e2z := positions[3*i2+2] - p0z

		nx := e1y*e2z - e1z*e2y
		ny := e1z*e2x - e1x*e2z
		nz := e1x*e2y - e1y*e2x

		for _, vi := range [3]uint32{i0, i1, i2} {
			normals[3*vi+0] += nx
			normals[3*vi+1] += ny
			normals[3*vi+2] += nz
		}
	}

	for v := 0; v < vertexCount; v++ {
		nx := normals[3*v+0]
		ny := normals[3*v+1]
		nz := normals[3*v+2]

		length := math.Sqrt(float64(nx*nx + ny*ny + nz*nz))
		if length > normalEpsilon {
			inv := float32(1.0 / length)
			normals[3*v+0] = nx * inv
			normals[3*v+1] = ny * inv
			normals[3*v+2] = nz * inv
		} else {
			normals[3*v+0] = 0
			normals[3*v+1] = 0
			normals[3*v+2] = 1
		}
	}

	return normals
}
