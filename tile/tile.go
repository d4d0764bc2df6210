// Package tile implements the three-stage per-tile construction state
// machine, grounded step-for-step on tgconstruct.cxx's
// ConstructBucketStage1/2/3: loading land-class polygons, clipping
// them against each other in priority order, reconciling shared
// boundaries with neighboring tiles (T-junction repair, elevation
// averaging, normal smoothing across the seam), tessellating, and
// emitting a triangulated mesh plus custom-object placements.
package tile

import (
	"sort"

	"github.com/flightgear-scenery/tgcore/diag"
	"github.com/flightgear-scenery/tgcore/objects"
	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// Feature is one land-class or pavement polygon tracked by a Tile,
// tagged by area type (pavement features use AreaTypePavement and
// carry their material/TexParams directly on Polygon).
type Feature struct {
	AreaType int
	Polygon  primitives.Polygon

	// NodeIndices parallels Polygon.TessVertices once
	// LookupNodesPerVertex (stage 2, step 12) has run: NodeIndices[i]
	// is the tile-wide Node index for TessVertices[i].
	NodeIndices []int

	// texCoords parallels Polygon.TessVertices once
	// CalcTextureCoordinates (stage 3, step 20) has run.
	texCoords [][2]float64
}

// TexCoords returns the per-vertex texture coordinates computed for
// this feature in stage 3, parallel to Polygon.TessVertices. Empty
// before RunStage3 runs.
func (f Feature) TexCoords() [][2]float64 { return f.texCoords }

// AreaTypePavement tags an airport pavement Feature, keeping it out
// of the land-class priority-clip pass (§4.8 step 4 only concerns
// land-class polygons; pavement geometry arrives already composed by
// the airport package's ClosedPoly.BuildBtg).
const AreaTypePavement = -1

// StageConfig carries everything a stage needs from outside the
// core: the elevation sampling service, the optional land-cover
// classifier, neighbor shared-edge record access, and a diagnostics
// sink. Per spec.md §2's Non-goals, raw file/raster I/O lives in the
// orchestrator; StageConfig only holds the narrow service seams the
// core calls into.
type StageConfig struct {
	Elev           ElevationSource
	Cover          LandCoverClassifier
	Neighbors      NeighborSource
	WriteShared    func(bucket Bucket, side Side, stage int) (ShareWriter, error)
	IgnoreLandmass bool
	NudgeDeg       float64
	Diag           diag.Diagnostics
}

// ShareWriter is the narrow write side of shared-edge persistence: an
// io.Writer plus Close, so the caller can flush to a file, a buffer,
// or a test double.
type ShareWriter interface {
	Write(p []byte) (int, error)
	Close() error
}

// tJunctionEpsilonDeg is T_EPS: the distance within which a foreign
// node is considered to lie "on" another polygon's edge and gets
// snapped onto it.
const tJunctionEpsilonDeg = 1e-9

// Tile is the per-tile construction state machine. A zero Tile is not
// usable; use NewTile.
type Tile struct {
	Bucket  Bucket
	Nodes   *NodeSet
	Objects objects.CustomObjectSet

	Features []Feature

	isOcean bool

	sharedStage1 map[Side][]primitives.Point2
	sharedStage2 map[Side]SharedEdgeRecord

	diag diag.Diagnostics
}

// NewTile returns a fresh Tile for the given bucket.
func NewTile(b Bucket) *Tile {
	return &Tile{
		Bucket:       b,
		Nodes:        NewNodeSet(),
		sharedStage1: make(map[Side][]primitives.Point2),
		sharedStage2: make(map[Side]SharedEdgeRecord),
	}
}

// AddFeature registers a land-class or pavement polygon with the
// tile, before RunStage1 runs. Loading land-class/pavement polygon
// files is the orchestrator's job (spec.md §2's Non-goals); this is
// the seam it hands parsed polygons through.
func (t *Tile) AddFeature(areaType int, poly primitives.Polygon) {
	t.Features = append(t.Features, Feature{AreaType: areaType, Polygon: poly})
}

// IsOceanTile reports whether stage 1 found no land-class polygons.
func (t *Tile) IsOceanTile() bool { return t.isOcean }

func (t *Tile) logf(level string, msg string, args ...any) {
	if t.diag == nil {
		return
	}
	switch level {
	case "debug":
		t.diag.Debug(msg, args...)
	case "info":
		t.diag.Info(msg, args...)
	case "warn":
		t.diag.Warn(msg, args...)
	default:
		t.diag.Alert(msg, args...)
	}
}

// sortedAreaTypes returns the distinct land-class area types present
// on the tile, in ascending order. ClipLandclassPolys (stage 1, step
// 4) walks this list from highest to lowest and treats a larger
// AreaType value as higher priority — a concrete, documented
// resolution of spec.md's "numerically lower-priority classes
// overwritten by higher" (see DESIGN.md).
func (t *Tile) sortedAreaTypes() []int {
	seen := make(map[int]bool)
	var out []int
	for _, f := range t.Features {
		if f.AreaType == AreaTypePavement {
			continue
		}
		if !seen[f.AreaType] {
			seen[f.AreaType] = true
			out = append(out, f.AreaType)
		}
	}
	sort.Ints(out)
	return out
}

func requireElev(cfg StageConfig, op string) error {
	if cfg.Elev == nil {
		return tgerr.New(tgerr.KindMissingResource, op, "no elevation source configured")
	}
	return nil
}
