package mesh

import "github.com/flightgear-scenery/tgcore/primitives"

// SmoothVertexNormals computes the area-weighted average face normal
// at every vertex, per tgconstruct_math.cxx's smoothing pass: each
// vertex's normal is the normalized sum of its incident faces'
// normals, each weighted by that face's area. extraFaces carries
// faces from neighboring tiles that also touch one of these vertices
// by index (a shared-boundary vertex's normal must agree across the
// tile seam, which is why neighbor faces are folded in here rather
// than computed tile-by-tile in isolation).
func SmoothVertexNormals(numVerts int, faces []primitives.Triangle, extraFaces []primitives.Triangle) [][3]float64 {
	sum := make([][3]float64, numVerts)

	accumulate := func(faces []primitives.Triangle) {
		for _, f := range faces {
			w := f.Area
			for _, v := range [3]int{f.V0, f.V1, f.V2} {
				if v < 0 || v >= numVerts {
					continue
				}
				sum[v][0] += f.NormalX * w
				sum[v][1] += f.NormalY * w
				sum[v][2] += f.NormalZ * w
			}
		}
	}
	accumulate(faces)
	accumulate(extraFaces)

	out := make([][3]float64, numVerts)
	for i, s := range sum {
		nx, ny, nz := normalizeUp(s[0], s[1], s[2])
		out[i] = [3]float64{nx, ny, nz}
	}
	return out
}
