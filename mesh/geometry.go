package mesh

import (
	"math"

	"github.com/flightgear-scenery/tgcore/primitives"
)

// degenerateAreaM2 and degenerateAxisEpsilon mirror
// tgconstruct_math.cxx's calc_normal degenerate-triangle test: a
// triangle is treated as degenerate if its area is vanishingly small
// or if two of its vertices coincide on some ECEF axis within
// SG_EPSILON.
const (
	degenerateAreaM2      = 1e-12
	degenerateAxisEpsilon = 1e-9
)

// ComputeFaceGeometry fills in Area/NormalX/Y/Z for every triangle in
// triangles, given the mesh's vertices (already split into
// longitude/latitude) and a per-vertex elevation in meters. Tiles
// with enough triangles to be worth the SoA packing cost are routed
// through ComputeFaceGeometryBatch instead.
func ComputeFaceGeometry(verts []primitives.Point2, elevM []float64, triangles []primitives.Triangle) {
	if len(triangles) >= batchThreshold {
		ComputeFaceGeometryBatch(verts, elevM, triangles)
		return
	}
	for i := range triangles {
		t := &triangles[i]
		p0 := primitives.NewPoint3(verts[t.V0], elevM[t.V0])
		p1 := primitives.NewPoint3(verts[t.V1], elevM[t.V1])
		p2 := primitives.NewPoint3(verts[t.V2], elevM[t.V2])

		area, nx, ny, nz := faceNormal(p0, p1, p2)
		t.Area = area
		t.NormalX, t.NormalY, t.NormalZ = nx, ny, nz
	}
}

// faceNormal computes a triangle's area (via the half cross-product
// magnitude, treated as the flat-triangle approximation to the true
// spherical-triangle area on the WGS84 sphere) and its outward unit
// normal via normalize(cross(v2-v1, v3-v1)). When the triangle is
// degenerate (near-zero area, or two vertices that coincide on some
// ECEF axis), the fallback normal is normalize(v1) — the local "up"
// direction at the first vertex — exactly as calc_normal falls back
// when cross() has nothing reliable to work with.
func faceNormal(p0, p1, p2 primitives.Point3) (area, nx, ny, nz float64) {
	x0, y0, z0 := p0.ECEF()
	x1, y1, z1 := p1.ECEF()
	x2, y2, z2 := p2.ECEF()

	e1x, e1y, e1z := x1-x0, y1-y0, z1-z0
	e2x, e2y, e2z := x2-x0, y2-y0, z2-z0

	cx := e1y*e2z - e1z*e2y
	cy := e1z*e2x - e1x*e2z
	cz := e1x*e2y - e1y*e2x

	length := math.Sqrt(cx*cx + cy*cy + cz*cz)
	area = length / 2

	if isDegenerate(area, x0, y0, z0, x1, y1, z1, x2, y2, z2) {
		return area, normalizeUp(x0, y0, z0)
	}

	return area, cx / length, cy / length, cz / length
}

func isDegenerate(area, x0, y0, z0, x1, y1, z1, x2, y2, z2 float64) bool {
	if area < degenerateAreaM2 {
		return true
	}
	coincident := func(a, b float64) bool { return math.Abs(a-b) < degenerateAxisEpsilon }
	return (coincident(x0, x1) && coincident(y0, y1) && coincident(z0, z1)) ||
		(coincident(x0, x2) && coincident(y0, y2) && coincident(z0, z2)) ||
		(coincident(x1, x2) && coincident(y1, y2) && coincident(z1, z2))
}

func normalizeUp(x, y, z float64) (nx, ny, nz float64) {
	length := math.Sqrt(x*x + y*y + z*z)
	if length == 0 {
		return 0, 0, 1
	}
	return x / length, y / length, z / length
}
