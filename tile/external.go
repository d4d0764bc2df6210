package tile

import (
	"io"

	"github.com/flightgear-scenery/tgcore/primitives"
)

// ElevationSource samples the elevation grid at a geodetic point, in
// meters. It is the core's only dependency on raw raster I/O — the
// orchestrator supplies the implementation (spec.md §2's explicit
// Non-goal: "raw elevation-grid file readers... the core consumes an
// elevation sampling service").
type ElevationSource func(lon, lat float64) (float64, error)

// LandCoverClassifier resolves a geodetic point to a land-cover area
// type when the optional --cover raster is configured; area types
// follow the same enum materialForSurfaceType's sibling table uses
// for pavement.
type LandCoverClassifier interface {
	Classify(p primitives.Point2) (areaType int, err error)
}

// NeighborSource supplies a reader for a named neighbor's shared-edge
// record, or a nil reader (treated as an absent/ocean neighbor) if
// none is available yet — per the error-handling policy's "missing
// neighbor stage record: treat as if neighbor is ocean".
type NeighborSource interface {
	SharedEdgeReader(bucket Bucket, side Side, stage int) (io.ReadCloser, error)
}
