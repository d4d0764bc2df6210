package clipper

import (
	"math"

	cl "github.com/CWBudde/Go-Clipper2"
	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// fillRule is fixed at NonZero for every Boolean composition in this
// package — see DESIGN.md's Open Question resolution. The original
// terragear code selects NonZero unconditionally for every polygon it
// builds, never EvenOdd.
const fillRule = cl.NonZero

func booleanOp(op cl.ClipType, subject, clip primitives.Polygon) (primitives.Polygon, error) {
	if subject.IsEmpty() && clip.IsEmpty() {
		return primitives.Polygon{}, nil
	}

	c := cl.NewClipper64()
	if !subject.IsEmpty() {
		c.AddPaths(toPaths64(subject), cl.PathTypeSubject, false)
	}
	if !clip.IsEmpty() {
		c.AddPaths(toPaths64(clip), cl.PathTypeClip, false)
	}

	var solution cl.Paths64
	if err := c.Execute(op, fillRule, &solution); err != nil {
		return primitives.Polygon{}, tgerr.Wrap(tgerr.KindNumericalDegenerate, "clipper.booleanOp", err)
	}

	return pathsToPolygon(solution), nil
}

// Union composes the geometric union of a and b. Either operand may
// be empty, in which case the result is the other operand.
func Union(a, b primitives.Polygon) (primitives.Polygon, error) {
	return booleanOp(cl.Union, a, b)
}

// Difference subtracts b from a. An empty a yields an empty result;
// an empty b returns a unchanged.
func Difference(a, b primitives.Polygon) (primitives.Polygon, error) {
	if a.IsEmpty() {
		return primitives.Polygon{}, nil
	}
	if b.IsEmpty() {
		return a, nil
	}
	return booleanOp(cl.Difference, a, b)
}

// Intersection returns the overlap of a and b. Either operand being
// empty yields an empty result.
func Intersection(a, b primitives.Polygon) (primitives.Polygon, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return primitives.Polygon{}, nil
	}
	return booleanOp(cl.Intersection, a, b)
}

// pathsToPolygon reassembles Clipper2's flat path list into a single
// Polygon: the largest-area ring becomes the outer contour, every
// other ring becomes a hole. This mirrors how every caller in this
// domain consumes clipper output — one composed shape with holes, not
// a multi-polygon set.
func pathsToPolygon(paths cl.Paths64) primitives.Polygon {
	if len(paths) == 0 {
		return primitives.Polygon{}
	}

	contours := make([]primitives.Contour, len(paths))
	outerIdx := 0
	maxArea := -1.0
	for i, p := range paths {
		contours[i] = fromPath64(p, false)
		area := math.Abs(contours[i].SignedArea())
		if area > maxArea {
			maxArea = area
			outerIdx = i
		}
	}

	contours[0], contours[outerIdx] = contours[outerIdx], contours[0]
	for i := 1; i < len(contours); i++ {
		contours[i].Hole = true
	}

	return primitives.Polygon{Contours: contours}
}
