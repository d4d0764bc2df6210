package clipper

import (
	"math"

	"github.com/flightgear-scenery/tgcore/geodesy"
	"github.com/flightgear-scenery/tgcore/primitives"
)

// SplitLongEdges interpolates additional vertices into c so that no
// edge exceeds maxM meters of great-circle distance. The airport
// composer applies it to each pavement polygon after clipping it
// against the pavement already placed.
func SplitLongEdges(c primitives.Contour, maxM float64) (primitives.Contour, error) {
	if c.Size() < 2 || maxM <= 0 {
		return c, nil
	}

	out := make([]primitives.Point2, 0, c.Size())
	n := c.Size()
	for i := 0; i < n; i++ {
		a := c.At(i)
		b := c.At(i + 1)
		out = append(out, a)

		course, _, distM, err := geodesy.Inverse(a.Lon, a.Lat, b.Lon, b.Lat)
		if err != nil {
			return primitives.Contour{}, err
		}
		if distM <= maxM {
			continue
		}

		segments := int(math.Ceil(distM / maxM))
		step := distM / float64(segments)
		for s := 1; s < segments; s++ {
			lon, lat, _, err := geodesy.Direct(a.Lon, a.Lat, course, step*float64(s))
			if err != nil {
				return primitives.Contour{}, err
			}
			out = append(out, primitives.NewPoint2(lon, lat))
		}
	}

	return primitives.Contour{Points: out, Hole: c.Hole}, nil
}
