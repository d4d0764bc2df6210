package airport

import (
	"sort"

	"github.com/flightgear-scenery/tgcore/primitives"
)

// ConvexHull returns the convex hull of points as a CCW contour, via
// Andrew's monotone chain: sort by (lon,lat), then build the lower and
// upper chains, popping any point that doesn't make a left turn.
// Structurally the same scan-and-pop shape as the teacher's
// ConvexHullQuery.getMonotoneChain, adapted from S2's spherical Sign
// test to a planar cross-product turn test since this domain works in
// plain lon/lat degrees.
func ConvexHull(points []primitives.Point2) primitives.Contour {
	pts := append([]primitives.Point2(nil), points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Lon != pts[j].Lon {
			return pts[i].Lon < pts[j].Lon
		}
		return pts[i].Lat < pts[j].Lat
	})
	pts = dedupeSorted(pts)

	if len(pts) < 3 {
		return primitives.Contour{Points: pts}
	}

	lower := buildChain(pts)
	upper := buildChain(reversed(pts))

	// Drop each chain's last point (it's the other chain's first).
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return primitives.Contour{Points: hull}
}

func buildChain(pts []primitives.Point2) []primitives.Point2 {
	chain := make([]primitives.Point2, 0, len(pts))
	for _, p := range pts {
		for len(chain) >= 2 && !isLeftTurn(chain[len(chain)-2], chain[len(chain)-1], p) {
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
	}
	return chain
}

func isLeftTurn(a, b, c primitives.Point2) bool {
	cross := (b.Lon-a.Lon)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lon-a.Lon)
	return cross > 0
}

func dedupeSorted(pts []primitives.Point2) []primitives.Point2 {
	out := pts[:0]
	for i, p := range pts {
		if i == 0 || !p.Equal(pts[i-1]) {
			out = append(out, p)
		}
	}
	return out
}

func reversed(pts []primitives.Point2) []primitives.Point2 {
	out := make([]primitives.Point2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
