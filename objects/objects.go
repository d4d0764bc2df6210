// Package objects holds the small point-feature types scattered around
// an airport that aren't part of its pavement geometry: windsocks,
// beacons, and taxiway/runway signs.
package objects

import "github.com/flightgear-scenery/tgcore/primitives"

// Windsock is a single windsock placement.
type Windsock struct {
	Pos primitives.Point2
	Lit bool
}

// Beacon is a single airport beacon placement. Code follows the
// apt.dat beacon-type numbering (1=civilian, 2=military, etc.) and is
// passed through opaquely — this package doesn't interpret it.
type Beacon struct {
	Pos  primitives.Point2
	Code int
}

// Sign is a single taxiway/runway sign placement. Definition is the
// apt.dat sign-text mini-language string (e.g. "{14-L,R}"), passed
// through opaquely.
type Sign struct {
	Pos        primitives.Point2
	HeadingDeg float64
	Size       int
	Definition string
}

// CustomObjectSet groups every point-feature placement contributed to
// one tile; a tile holds its set in the tile.Tile.Objects field.
type CustomObjectSet struct {
	Windsocks []Windsock
	Beacons   []Beacon
	Signs     []Sign
}
