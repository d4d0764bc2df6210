package airport

import (
	"math"

	"github.com/flightgear-scenery/tgcore/geodesy"
	"github.com/flightgear-scenery/tgcore/primitives"
)

// expandPoint finds the heading and distance to offset cur outward by
// distM, given its neighbors, following ExpandPoint: average the unit
// directions from cur to prev and cur to next, take that average as
// the offset heading, then solve the offset distance by the sine rule
// against the heading toward next.
func expandPoint(prev, cur, next primitives.Point2, distM float64) (headingDeg, offsetM float64, err error) {
	tangent := geodesy.NewTangent(cur.Lon, cur.Lat)
	px, py := tangent.ToLocal(prev.Lon, prev.Lat)
	nx, ny := tangent.ToLocal(next.Lon, next.Lat)

	d1x, d1y := normalize2(px, py)
	d2x, d2y := normalize2(nx, ny)
	avgX, avgY := normalize2(d1x+d2x, d1y+d2y)

	avgLon, avgLat := tangent.FromLocal(avgX, avgY)
	offsetDir, _, _, err := geodesy.Inverse(cur.Lon, cur.Lat, avgLon, avgLat)
	if err != nil {
		return 0, 0, err
	}

	nextDir, _, _, err := geodesy.Inverse(cur.Lon, cur.Lat, next.Lon, next.Lat)
	if err != nil {
		return 0, 0, err
	}

	sinTerm := math.Sin((offsetDir - nextDir) * math.Pi / 180)
	if sinTerm == 0 {
		return offsetDir, distM, nil
	}
	return offsetDir, distM / sinTerm, nil
}

func normalize2(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// thetaBetween returns the interior angle in degrees at cur formed by
// prev-cur-next.
func thetaBetween(prev, cur, next primitives.Point2) (float64, error) {
	tangent := geodesy.NewTangent(cur.Lon, cur.Lat)
	px, py := tangent.ToLocal(prev.Lon, prev.Lat)
	nx, ny := tangent.ToLocal(next.Lon, next.Lat)

	d1x, d1y := normalize2(px, py)
	d2x, d2y := normalize2(nx, ny)
	dot := d1x*d2x + d1y*d2y
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return math.Acos(dot) * 180 / math.Pi, nil
}

// ExpandContour offsets every vertex of src outward by distM meters,
// following ExpandContour/ExpandPoint's three-case branch on the
// interior angle theta at each vertex: a sharp turn (theta<90) clamps
// the offset to twice distM so it doesn't overshoot into a spike; a
// near-straight run (theta close to 180) blows up the sine-rule math,
// so the offset is set to exactly distM; every other angle uses the
// sine-rule offset unclamped.
func ExpandContour(src primitives.Contour, distM float64) (primitives.Contour, error) {
	n := src.Size()
	out := make([]primitives.Point2, 0, n)

	for i := 0; i < n; i++ {
		prev := src.At(i - 1)
		cur := src.At(i)
		next := src.At(i + 1)

		theta, err := thetaBetween(prev, cur, next)
		if err != nil {
			return primitives.Contour{}, err
		}
		heading, offset, err := expandPoint(prev, cur, next, distM)
		if err != nil {
			return primitives.Contour{}, err
		}

		switch {
		case theta < 90.0:
			if offset > distM*2.0 {
				offset = distM * 2.0
			}
		case math.Abs(theta-180.0) < 0.1:
			offset = distM
		}

		lon, lat, _, err := geodesy.Direct(cur.Lon, cur.Lat, heading, offset)
		if err != nil {
			return primitives.Contour{}, err
		}
		out = append(out, primitives.NewPoint2(lon, lat))
	}

	return primitives.Contour{Points: out}, nil
}
