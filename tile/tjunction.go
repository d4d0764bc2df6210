package tile

import (
	"math"

	"github.com/flightgear-scenery/tgcore/primitives"
)

// insertOnEdge splits the edge between c.At(i) and c.At(i+1) with p if
// p lies within eps of that edge's line and strictly between its
// endpoints, returning the updated contour and whether an insertion
// happened. p already equal to an existing vertex is a no-op
// (reported as "not inserted" since nothing changed).
func insertOnEdge(c primitives.Contour, p primitives.Point2, eps float64) (primitives.Contour, bool) {
	n := c.Size()
	for i := 0; i < n; i++ {
		a := c.At(i)
		b := c.At(i + 1)
		if p.Equal(a) || p.Equal(b) {
			return c, false
		}
		if !pointNearSegment(p, a, b, eps) {
			continue
		}
		points := make([]primitives.Point2, 0, n+1)
		points = append(points, c.Points[:i+1]...)
		points = append(points, p)
		points = append(points, c.Points[i+1:]...)
		return primitives.Contour{Points: points, Hole: c.Hole}, true
	}
	return c, false
}

// pointNearSegment reports whether p lies within eps of the segment
// a-b and within the segment's span (not merely its infinite line).
func pointNearSegment(p, a, b primitives.Point2, eps float64) bool {
	abx, aby := b.Lon-a.Lon, b.Lat-a.Lat
	apx, apy := p.Lon-a.Lon, p.Lat-a.Lat

	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return false
	}
	tParam := (apx*abx + apy*aby) / lenSq
	if tParam <= 0 || tParam >= 1 {
		return false
	}

	// Perpendicular distance from p to the infinite line through a,b.
	cross := apx*aby - apy*abx
	dist := math.Abs(cross) / math.Sqrt(lenSq)
	return dist <= eps
}

// mergeSharedPoints inserts every point in pts into poly's outer
// contour and holes wherever it lies on an existing edge but isn't
// already a vertex, per step 8 (T-junction repair against neighbor
// points).
func mergeSharedPoints(poly primitives.Polygon, pts []primitives.Point2, eps float64) primitives.Polygon {
	for _, p := range pts {
		for ci, c := range poly.Contours {
			updated, inserted := insertOnEdge(c, p, eps)
			if inserted {
				poly.Contours[ci] = updated
				break
			}
		}
	}
	return poly
}

// fixTJunctionsGlobal snaps any vertex of any feature that lies within
// eps of another feature's edge onto that edge (step 9), catching
// T-junctions between land-class/pavement polygons placed within the
// same tile (not just across the tile boundary).
func fixTJunctionsGlobal(features []Feature, eps float64) {
	for owner := range features {
		for ci, c := range features[owner].Polygon.Contours {
			for vi := 0; vi < c.Size(); vi++ {
				v := c.At(vi)
				for other := range features {
					if other == owner {
						continue
					}
					for oci, oc := range features[other].Polygon.Contours {
						updated, inserted := insertOnEdge(oc, v, eps)
						if inserted {
							features[other].Polygon.Contours[oci] = updated
						}
					}
				}
			}
			features[owner].Polygon.Contours[ci] = c
		}
	}
}

// tJunctionEps resolves the T-junction snap tolerance to use: the
// operator's --nudge override (spec.md §6) when configured, falling
// back to the default tJunctionEpsilonDeg.
func tJunctionEps(cfg StageConfig) float64 {
	if cfg.NudgeDeg > 0 {
		return cfg.NudgeDeg
	}
	return tJunctionEpsilonDeg
}
