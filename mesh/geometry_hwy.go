package mesh

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/flightgear-scenery/tgcore/primitives"
)

// BaseBatchFaceNormals computes, for a batch of triangles stored in
// Structure-of-Arrays layout (one ECEF coordinate per vertex per
// lane), the outward unit normal and area for each triangle. Mirrors
// the teacher's BaseBatchCrossProduct/BaseDotProductConstBatch shape:
// SoA inputs, ProcessWithTail main/tail loop, MaskLoad/MaskStore for
// the remainder.
//
// It does not apply the degenerate-triangle fallback — callers run
// isDegenerate on the scalar outputs (area, and the original
// coordinates) afterward and overwrite any degenerate lane with
// normalizeUp, since that branch is rare enough not to be worth
// vectorizing.
func BaseBatchFaceNormals[T hwy.Floats](
	x0, y0, z0 []T,
	x1, y1, z1 []T,
	x2, y2, z2 []T,
	nx, ny, nz []T,
	area []T,
) {
	size := min(len(x0), len(y0), len(z0), len(x1), len(y1), len(z1), len(x2), len(y2), len(z2), len(nx), len(ny), len(nz), len(area))

	half := hwy.Set(T(0.5))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx0 := hwy.Load(x0[offset:])
			vy0 := hwy.Load(y0[offset:])
			vz0 := hwy.Load(z0[offset:])
			vx1 := hwy.Load(x1[offset:])
			vy1 := hwy.Load(y1[offset:])
			vz1 := hwy.Load(z1[offset:])
			vx2 := hwy.Load(x2[offset:])
			vy2 := hwy.Load(y2[offset:])
			vz2 := hwy.Load(z2[offset:])

			e1x := hwy.Sub(vx1, vx0)
			e1y := hwy.Sub(vy1, vy0)
			e1z := hwy.Sub(vz1, vz0)
			e2x := hwy.Sub(vx2, vx0)
			e2y := hwy.Sub(vy2, vy0)
			e2z := hwy.Sub(vz2, vz0)

			cx := hwy.Sub(hwy.Mul(e1y, e2z), hwy.Mul(e1z, e2y))
			cy := hwy.Sub(hwy.Mul(e1z, e2x), hwy.Mul(e1x, e2z))
			cz := hwy.Sub(hwy.Mul(e1x, e2y), hwy.Mul(e1y, e2x))

			lenSq := hwy.FMA(cz, cz, hwy.FMA(cy, cy, hwy.Mul(cx, cx)))
			length := hwy.Sqrt(lenSq)
			inv := hwy.Div(hwy.Set(T(1)), length)

			hwy.Store(hwy.Mul(cx, inv), nx[offset:])
			hwy.Store(hwy.Mul(cy, inv), ny[offset:])
			hwy.Store(hwy.Mul(cz, inv), nz[offset:])
			hwy.Store(hwy.Mul(length, half), area[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vx0 := hwy.MaskLoad(mask, x0[offset:])
			vy0 := hwy.MaskLoad(mask, y0[offset:])
			vz0 := hwy.MaskLoad(mask, z0[offset:])
			vx1 := hwy.MaskLoad(mask, x1[offset:])
			vy1 := hwy.MaskLoad(mask, y1[offset:])
			vz1 := hwy.MaskLoad(mask, z1[offset:])
			vx2 := hwy.MaskLoad(mask, x2[offset:])
			vy2 := hwy.MaskLoad(mask, y2[offset:])
			vz2 := hwy.MaskLoad(mask, z2[offset:])

			e1x := hwy.Sub(vx1, vx0)
			e1y := hwy.Sub(vy1, vy0)
			e1z := hwy.Sub(vz1, vz0)
			e2x := hwy.Sub(vx2, vx0)
			e2y := hwy.Sub(vy2, vy0)
			e2z := hwy.Sub(vz2, vz0)

			cx := hwy.Sub(hwy.Mul(e1y, e2z), hwy.Mul(e1z, e2y))
			cy := hwy.Sub(hwy.Mul(e1z, e2x), hwy.Mul(e1x, e2z))
			cz := hwy.Sub(hwy.Mul(e1x, e2y), hwy.Mul(e1y, e2x))

			lenSq := hwy.FMA(cz, cz, hwy.FMA(cy, cy, hwy.Mul(cx, cx)))
			length := hwy.Sqrt(lenSq)
			inv := hwy.Div(hwy.Set(T(1)), length)

			hwy.MaskStore(mask, hwy.Mul(cx, inv), nx[offset:])
			hwy.MaskStore(mask, hwy.Mul(cy, inv), ny[offset:])
			hwy.MaskStore(mask, hwy.Mul(cz, inv), nz[offset:])
			hwy.MaskStore(mask, hwy.Mul(length, half), area[offset:])
		},
	)
}

// batchThreshold is the triangle count at or above which ComputeFaceGeometry
// routes through the SIMD SoA path instead of the plain scalar loop;
// below it the per-lane setup cost isn't worth paying.
const batchThreshold = 64

// ComputeFaceGeometryBatch is the SIMD counterpart of
// ComputeFaceGeometry: it packs every triangle's ECEF vertex
// coordinates into Structure-of-Arrays form, runs
// BaseBatchFaceNormals once over the whole batch, then patches any
// degenerate lane with the scalar normalizeUp fallback.
func ComputeFaceGeometryBatch(verts []primitives.Point2, elevM []float64, triangles []primitives.Triangle) {
	n := len(triangles)
	x0 := make([]float64, n)
	y0 := make([]float64, n)
	z0 := make([]float64, n)
	x1 := make([]float64, n)
	y1 := make([]float64, n)
	z1 := make([]float64, n)
	x2 := make([]float64, n)
	y2 := make([]float64, n)
	z2 := make([]float64, n)
	nx := make([]float64, n)
	ny := make([]float64, n)
	nz := make([]float64, n)
	area := make([]float64, n)

	for i, t := range triangles {
		p0 := primitives.NewPoint3(verts[t.V0], elevM[t.V0])
		p1 := primitives.NewPoint3(verts[t.V1], elevM[t.V1])
		p2 := primitives.NewPoint3(verts[t.V2], elevM[t.V2])
		x0[i], y0[i], z0[i] = p0.ECEF()
		x1[i], y1[i], z1[i] = p1.ECEF()
		x2[i], y2[i], z2[i] = p2.ECEF()
	}

	BaseBatchFaceNormals[float64](x0, y0, z0, x1, y1, z1, x2, y2, z2, nx, ny, nz, area)

	for i := range triangles {
		if isDegenerate(area[i], x0[i], y0[i], z0[i], x1[i], y1[i], z1[i], x2[i], y2[i], z2[i]) {
			nx[i], ny[i], nz[i] = normalizeUp(x0[i], y0[i], z0[i])
		}
		triangles[i].Area = area[i]
		triangles[i].NormalX, triangles[i].NormalY, triangles[i].NormalZ = nx[i], ny[i], nz[i]
	}
}
