// Package clipper wraps github.com/CWBudde/Go-Clipper2's integer-coordinate
// Vatti-algorithm engine with the degree<->fixed-point conversion,
// Boolean composition, offset/expansion, and long-edge splitting this
// geometry core needs on top of it.
package clipper

import (
	cl "github.com/CWBudde/Go-Clipper2"
	"github.com/flightgear-scenery/tgcore/primitives"
)

// Scale is the fixed degree<->int64 conversion factor. Clipper2 only
// operates on integer coordinates; 1e9 gives sub-millimeter precision
// at the equator (1 degree of longitude is ~111km, so 1e9 units per
// degree is ~0.1mm per unit) while staying well inside int64 range for
// coordinates across the full [-180,180] longitude span.
const Scale = 1e9

func toPoint64(p primitives.Point2) cl.Point64 {
	return cl.Point64{
		X: int64(roundHalfToEven(p.Lon * Scale)),
		Y: int64(roundHalfToEven(p.Lat * Scale)),
	}
}

func fromPoint64(p cl.Point64) primitives.Point2 {
	return primitives.NewPoint2(float64(p.X)/Scale, float64(p.Y)/Scale)
}

// roundHalfToEven implements banker's rounding so that repeated
// scale/unscale round trips of values sitting exactly on a .5 boundary
// don't drift in a consistent direction.
func roundHalfToEven(v float64) float64 {
	floor := float64(int64(v))
	if v < 0 {
		floor = float64(int64(v))
		if v != floor {
			floor -= 1
		}
	}
	diff := v - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		// exactly .5: round to even
		if int64(floor)%2 == 0 {
			return floor
		}
		return floor + 1
	}
}

func toPath64(c primitives.Contour) cl.Path64 {
	path := make(cl.Path64, c.Size())
	for i, p := range c.Points {
		path[i] = toPoint64(p)
	}
	return path
}

func fromPath64(path cl.Path64, hole bool) primitives.Contour {
	points := make([]primitives.Point2, len(path))
	for i, p := range path {
		points[i] = fromPoint64(p)
	}
	return primitives.Contour{Points: points, Hole: hole}
}

func toPaths64(poly primitives.Polygon) cl.Paths64 {
	paths := make(cl.Paths64, len(poly.Contours))
	for i, c := range poly.Contours {
		paths[i] = toPath64(c)
	}
	return paths
}
