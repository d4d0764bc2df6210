package tile

import (
	"fmt"
	"math"

	"github.com/flightgear-scenery/tgcore/primitives"
)

// Side names one of a tile's four shared edges.
type Side int

const (
	North Side = iota
	South
	East
	West
)

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the side a neighbor would see this shared edge as,
// e.g. this tile's North edge is its northern neighbor's South edge.
func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return s
	}
}

// Bucket identifies a tile's fixed geographic grid cell: a
// one-degree-aligned span of longitude/latitude, named by its
// southwest corner. A real deployment subdivides degrees further at
// high latitude (as the original bucket scheme does to keep tiles
// roughly square); this core only needs stable identity and bounds,
// so it keeps the one-degree grid and leaves finer subdivision to the
// orchestrator.
type Bucket struct {
	LonIndex, LatIndex int
}

// NewBucket returns the bucket containing the given geodetic point.
func NewBucket(lon, lat float64) Bucket {
	return Bucket{LonIndex: int(math.Floor(lon)), LatIndex: int(math.Floor(lat))}
}

// Bounds returns the bucket's geodetic bounding rectangle.
func (b Bucket) Bounds() primitives.Rectangle {
	return primitives.Rectangle{
		Min: primitives.Point2{Lon: float64(b.LonIndex), Lat: float64(b.LatIndex)},
		Max: primitives.Point2{Lon: float64(b.LonIndex + 1), Lat: float64(b.LatIndex + 1)},
	}
}

// Neighbor returns the adjacent bucket across the given side.
func (b Bucket) Neighbor(s Side) Bucket {
	switch s {
	case North:
		return Bucket{LonIndex: b.LonIndex, LatIndex: b.LatIndex + 1}
	case South:
		return Bucket{LonIndex: b.LonIndex, LatIndex: b.LatIndex - 1}
	case East:
		return Bucket{LonIndex: b.LonIndex + 1, LatIndex: b.LatIndex}
	case West:
		return Bucket{LonIndex: b.LonIndex - 1, LatIndex: b.LatIndex}
	default:
		return b
	}
}

// IndexStr names the bucket the way gen_index_str names a bucket path
// component, used only for diagnostics.
func (b Bucket) IndexStr() string {
	return fmt.Sprintf("%d%d", b.LonIndex, b.LatIndex)
}

// OnSide reports whether p lies on the given side of the bucket,
// within snapEpsilonDeg of the boundary line.
func (b Bucket) OnSide(p primitives.Point2, s Side) bool {
	bounds := b.Bounds()
	switch s {
	case North:
		return math.Abs(p.Lat-bounds.Max.Lat) <= snapEpsilonDeg
	case South:
		return math.Abs(p.Lat-bounds.Min.Lat) <= snapEpsilonDeg
	case East:
		return math.Abs(p.Lon-bounds.Max.Lon) <= snapEpsilonDeg
	case West:
		return math.Abs(p.Lon-bounds.Min.Lon) <= snapEpsilonDeg
	default:
		return false
	}
}

// snapEpsilonDeg is the edge-snap tolerance used to decide whether a
// polygon vertex lies "exactly" on a tile side, in degrees (one unit
// of this module's Clipper scale, roughly 0.1mm at the equator).
const snapEpsilonDeg = 1e-9
