// Package polyutil implements the cleanup passes every contour goes
// through before it is handed to the clipper or the tessellator:
// dropping degenerate contours, collapsing near-duplicate vertices,
// and removing collinear triples. Each pass is idempotent — running it
// twice in a row produces the same result as running it once.
package polyutil

import (
	"github.com/flightgear-scenery/tgcore/geodesy"
	"github.com/flightgear-scenery/tgcore/primitives"
)

// MinContourVertices is the fewest vertices a contour can have and
// still describe a region (a triangle).
const MinContourVertices = 3

// RemoveBadContours drops any contour with fewer than
// MinContourVertices points or zero signed area from a polygon's
// contour list. The outer contour is never dropped even if malformed,
// since a polygon with no outer ring has nothing left to describe;
// callers should check Polygon.IsEmpty after this pass.
func RemoveBadContours(poly primitives.Polygon) primitives.Polygon {
	if len(poly.Contours) == 0 {
		return poly
	}
	out := make([]primitives.Contour, 0, len(poly.Contours))
	out = append(out, poly.Contours[0])
	for _, c := range poly.Contours[1:] {
		if c.Size() < MinContourVertices {
			continue
		}
		if c.SignedArea() == 0 {
			continue
		}
		out = append(out, c)
	}
	poly.Contours = out
	return poly
}

// DuplicateVertexEpsilonM is the distance below which two consecutive
// vertices are considered the same point (1cm).
const DuplicateVertexEpsilonM = 0.01

// RemoveDuplicateVertices collapses consecutive vertices within
// DuplicateVertexEpsilonM of each other, measured in the contour's own
// local tangent-plane frame so the epsilon is a true distance rather
// than a longitude-dependent degree tolerance.
func RemoveDuplicateVertices(c primitives.Contour) primitives.Contour {
	n := c.Size()
	if n < 2 {
		return c
	}

	tangent := localTangent(c)
	out := make([]primitives.Point2, 0, n)
	out = append(out, c.Points[0])
	lastX, lastY := tangent.ToLocal(c.Points[0].Lon, c.Points[0].Lat)

	for i := 1; i < n; i++ {
		p := c.Points[i]
		x, y := tangent.ToLocal(p.Lon, p.Lat)
		dx, dy := x-lastX, y-lastY
		if dx*dx+dy*dy < DuplicateVertexEpsilonM*DuplicateVertexEpsilonM {
			continue
		}
		out = append(out, p)
		lastX, lastY = x, y
	}

	// Check wraparound: if the closing edge collapses the last kept
	// point onto the first, drop it too.
	if len(out) > 1 {
		x0, y0 := tangent.ToLocal(out[0].Lon, out[0].Lat)
		xl, yl := tangent.ToLocal(out[len(out)-1].Lon, out[len(out)-1].Lat)
		dx, dy := xl-x0, yl-y0
		if dx*dx+dy*dy < DuplicateVertexEpsilonM*DuplicateVertexEpsilonM {
			out = out[:len(out)-1]
		}
	}

	return primitives.Contour{Points: out, Hole: c.Hole}
}

// DegeneracyAreaEpsilonM2 is the triangle-area threshold (square
// meters) below which a vertex is considered collinear with its
// neighbors and removed. Fixed rather than left as the
// latitude-dependent squared-degree constant the original carried —
// see DESIGN.md's Open Question resolution.
const DegeneracyAreaEpsilonM2 = 1e-4

// ReduceDegeneracy removes vertices that form a near-zero-area
// triangle with their immediate neighbors (collinear triples),
// measured in local meters.
func ReduceDegeneracy(c primitives.Contour) primitives.Contour {
	if c.Size() < MinContourVertices+1 {
		return c
	}

	tangent := localTangent(c)
	kept := append([]primitives.Point2(nil), c.Points...)

	changed := true
	for changed && len(kept) > MinContourVertices {
		changed = false
		next := make([]primitives.Point2, 0, len(kept))
		n := len(kept)
		for i := 0; i < n; i++ {
			prev := kept[(i-1+n)%n]
			cur := kept[i]
			nxt := kept[(i+1)%n]

			px, py := tangent.ToLocal(prev.Lon, prev.Lat)
			cx, cy := tangent.ToLocal(cur.Lon, cur.Lat)
			nx, ny := tangent.ToLocal(nxt.Lon, nxt.Lat)

			area2 := (cx-px)*(ny-py) - (nx-px)*(cy-py)
			if area2 < 0 {
				area2 = -area2
			}
			if area2/2 < DegeneracyAreaEpsilonM2 {
				changed = true
				continue // drop cur
			}
			next = append(next, cur)
		}
		if len(next) < MinContourVertices {
			break
		}
		kept = next
	}

	return primitives.Contour{Points: kept, Hole: c.Hole}
}

func localTangent(c primitives.Contour) geodesy.Tangent {
	ref := c.Points[0]
	return geodesy.NewTangent(ref.Lon, ref.Lat)
}
