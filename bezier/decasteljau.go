package bezier

import "github.com/flightgear-scenery/tgcore/primitives"

// Detail is the fixed number of line segments each curved join is
// subdivided into (BEZIER_DETAIL in the original).
const Detail = 8

func lerp(a, b float64, t float64) float64 { return a + (b-a)*t }

// quadraticLocation evaluates a quadratic Bezier through p0, cp, p1 at
// parameter t via de Casteljau's algorithm.
func quadraticLocation(p0, cp, p1 primitives.Point2, t float64) primitives.Point2 {
	ax, ay := lerp(p0.Lon, cp.Lon, t), lerp(p0.Lat, cp.Lat, t)
	bx, by := lerp(cp.Lon, p1.Lon, t), lerp(cp.Lat, p1.Lat, t)
	return primitives.NewPoint2(lerp(ax, bx, t), lerp(ay, by, t))
}

// cubicLocation evaluates a cubic Bezier through p0, cp1, cp2, p1 at
// parameter t via de Casteljau's algorithm.
func cubicLocation(p0, cp1, cp2, p1 primitives.Point2, t float64) primitives.Point2 {
	ax, ay := lerp(p0.Lon, cp1.Lon, t), lerp(p0.Lat, cp1.Lat, t)
	bx, by := lerp(cp1.Lon, cp2.Lon, t), lerp(cp1.Lat, cp2.Lat, t)
	cx, cy := lerp(cp2.Lon, p1.Lon, t), lerp(cp2.Lat, p1.Lat, t)

	dx, dy := lerp(ax, bx, t), lerp(ay, by, t)
	ex, ey := lerp(bx, cx, t), lerp(by, cy, t)

	return primitives.NewPoint2(lerp(dx, ex, t), lerp(dy, ey, t))
}
