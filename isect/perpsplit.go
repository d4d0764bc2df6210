package isect

import (
	"github.com/flightgear-scenery/tgcore/geodesy"
	"github.com/flightgear-scenery/tgcore/primitives"
)

// perpEpsilonDeg is how close a perpendicular-split intersection must
// land to an existing contour vertex before it is treated as a
// duplicate and dropped rather than inserted.
const perpEpsilonDeg = 1e-9

// splitPerpendiculars walks every vertex of the left contour and casts
// a ray perpendicular to the edge's course through it, splitting
// whichever right-contour segment that ray crosses and inserting the
// crossing point there. A multi-segment constraint can bend one
// contour without bending the other at the same place; this keeps the
// two contours carrying matching cross-sections wherever that happens,
// instead of letting the unsplit side skip straight past.
func (e *Edge) splitPerpendiculars() error {
	verts := append([]primitives.Point2(nil), e.LeftContour...)
	perpDeg := normalizeDeg(e.courseDeg - 90)

	for _, v := range verts {
		rayLon, rayLat, _, err := geodesy.Direct(v.Lon, v.Lat, perpDeg, sideExtensionM)
		if err != nil {
			return err
		}
		ray := primitives.Line{A: v, B: primitives.NewPoint2(rayLon, rayLat)}

		idx, p, ok := intersectContour(ray, e.RightContour)
		if !ok {
			continue
		}
		if nearAnyVertex(p, e.RightContour, perpEpsilonDeg) {
			continue
		}
		e.RightContour = insertAfter(e.RightContour, idx, p)
	}
	return nil
}

// intersectContour returns the index of the first contour segment
// (contour[i], contour[i+1]) the ray crosses, the crossing point, and
// whether a crossing was found at all.
func intersectContour(ray primitives.Line, contour []primitives.Point2) (int, primitives.Point2, bool) {
	for i := 0; i+1 < len(contour); i++ {
		seg := primitives.Segment{A: contour[i], B: contour[i+1]}
		if p, ok := ray.Intersect(seg); ok {
			return i, p, true
		}
	}
	return 0, primitives.Point2{}, false
}

func nearAnyVertex(p primitives.Point2, contour []primitives.Point2, eps float64) bool {
	for _, v := range contour {
		if p.ApproxEqual(v, eps) {
			return true
		}
	}
	return false
}

// insertAfter returns contour with p inserted immediately after index i.
func insertAfter(contour []primitives.Point2, i int, p primitives.Point2) []primitives.Point2 {
	out := make([]primitives.Point2, 0, len(contour)+1)
	out = append(out, contour[:i+1]...)
	out = append(out, p)
	out = append(out, contour[i+1:]...)
	return out
}
