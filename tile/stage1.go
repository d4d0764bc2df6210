package tile

import (
	"context"

	"github.com/flightgear-scenery/tgcore/clipper"
	"github.com/flightgear-scenery/tgcore/polyutil"
	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// elevGridSamples is the side length of the uniform elevation grid
// LoadElevationArray seeds the Node set with — a stand-in for reading
// an actual raster's sample spacing, since raw elevation-grid readers
// are out of this core's scope.
const elevGridSamples = 9

// RunStage1 runs the per-tile-only steps: load the elevation grid,
// load and clip land-class polygons, clean them, and save the
// stage-1 shared-edge record. If no land-class polygons were
// registered the tile is marked ocean and stage 1 stops early, per
// step 2 ("don't build the tile if there is no 2d data... it must be
// ocean").
func (t *Tile) RunStage1(ctx context.Context, cfg StageConfig) error {
	t.diag = cfg.Diag

	// STEP 1: load elevation grid, seed Node set with grid samples.
	if err := t.loadElevationArray(cfg, true); err != nil {
		return err
	}

	// STEP 2: load land-class polygons (already registered via
	// AddFeature by the orchestrator before calling RunStage1).
	// --ignore-landmass (spec.md §6) forces construction to proceed
	// even when no land-class polygon was registered, for synthetic
	// or partial-coverage test tiles that would otherwise short-circuit
	// here.
	if len(t.sortedAreaTypes()) == 0 && !cfg.IgnoreLandmass {
		t.isOcean = true
		t.logf("info", "tile has no land-class polygons, marking ocean", "bucket", t.Bucket.IndexStr())
		return nil
	}

	// STEP 3: optional land-cover raster.
	if cfg.Cover != nil {
		if err := t.loadLandCover(cfg); err != nil {
			return err
		}
	}

	// STEP 4: clip land-class polygons in priority order.
	if err := t.clipLandclassPolys(); err != nil {
		return err
	}

	// STEP 5: clean clipped polygons.
	t.cleanClippedPolys()

	// STEP 6: save stage-1 shared-edge record.
	return t.saveSharedEdgeData1(cfg)
}

func (t *Tile) loadElevationArray(cfg StageConfig, addNodes bool) error {
	if !addNodes {
		// Stage 2/3 reload the same grid in a multi-process
		// deployment; this single-process Tile already has the
		// samples in Nodes, so there is nothing further to do.
		return nil
	}
	if err := requireElev(cfg, "tile.loadElevationArray"); err != nil {
		return err
	}

	bounds := t.Bucket.Bounds()
	dLon := (bounds.Max.Lon - bounds.Min.Lon) / float64(elevGridSamples-1)
	dLat := (bounds.Max.Lat - bounds.Min.Lat) / float64(elevGridSamples-1)

	for i := 0; i < elevGridSamples; i++ {
		for j := 0; j < elevGridSamples; j++ {
			lon := bounds.Min.Lon + float64(i)*dLon
			lat := bounds.Min.Lat + float64(j)*dLat
			elevM, err := cfg.Elev(lon, lat)
			if err != nil {
				return tgerr.Wrap(tgerr.KindMissingResource, "tile.loadElevationArray", err)
			}
			idx, err := t.Nodes.Add(primitives.NewPoint2(lon, lat))
			if err != nil {
				return err
			}
			t.Nodes.At(idx).Pos.Elevation = elevM
		}
	}
	return nil
}

func (t *Tile) loadLandCover(cfg StageConfig) error {
	for i := range t.Features {
		f := &t.Features[i]
		if f.AreaType != AreaTypePavement {
			continue
		}
		outer := f.Polygon.Outer()
		if outer.Size() == 0 {
			continue
		}
		at, err := cfg.Cover.Classify(outer.At(0))
		if err != nil {
			return tgerr.Wrap(tgerr.KindMissingResource, "tile.loadLandCover", err)
		}
		_ = at
	}
	return nil
}

// clipLandclassPolys clips lower-priority land-class polygons against
// the union of every already-processed higher-priority one, so higher
// priority classes overwrite lower (spec.md §6). AreaType values are
// treated as the priority ranking directly: the larger the value, the
// higher the priority (see DESIGN.md).
func (t *Tile) clipLandclassPolys() error {
	areaTypes := t.sortedAreaTypes()
	// Walk from highest priority (last, largest) to lowest, tracking
	// the union of everything already claimed.
	var claimed primitives.Polygon
	for i := len(areaTypes) - 1; i >= 0; i-- {
		at := areaTypes[i]
		for fi := range t.Features {
			f := &t.Features[fi]
			if f.AreaType != at {
				continue
			}
			if !claimed.IsEmpty() {
				clipped, err := clipper.Difference(f.Polygon, claimed)
				if err != nil {
					return tgerr.Wrap(tgerr.KindNumericalDegenerate, "tile.clipLandclassPolys", err)
				}
				f.Polygon = clipped
			}
			if f.Polygon.IsEmpty() {
				continue
			}
			union, err := clipper.Union(f.Polygon, claimed)
			if err != nil {
				return tgerr.Wrap(tgerr.KindNumericalDegenerate, "tile.clipLandclassPolys", err)
			}
			claimed = union
		}
	}
	return nil
}

func (t *Tile) cleanClippedPolys() {
	for i := range t.Features {
		poly := t.Features[i].Polygon
		poly = polyutil.RemoveBadContours(poly)
		for ci, c := range poly.Contours {
			c = polyutil.RemoveDuplicateVertices(c)
			c = polyutil.ReduceDegeneracy(c)
			poly.Contours[ci] = c
		}
		t.Features[i].Polygon = poly
	}
}

func (t *Tile) saveSharedEdgeData1(cfg StageConfig) error {
	sides := []Side{North, South, East, West}
	for _, side := range sides {
		var points []primitives.Point2
		for _, f := range t.Features {
			if f.Polygon.IsEmpty() {
				continue
			}
			for _, c := range f.Polygon.Contours {
				for i := 0; i < c.Size(); i++ {
					p := c.At(i)
					if t.Bucket.OnSide(p, side) {
						points = append(points, p)
					}
				}
			}
		}
		t.sharedStage1[side] = points

		if cfg.WriteShared == nil {
			continue
		}
		w, err := cfg.WriteShared(t.Bucket, side, 1)
		if err != nil {
			return tgerr.Wrap(tgerr.KindMissingResource, "tile.saveSharedEdgeData1", err)
		}
		rec := SharedEdgeRecord{Bucket: t.Bucket, Side: side, Stage: 1, Points: points}
		if err := WriteSharedEdgeRecord(w, rec); err != nil {
			_ = w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return tgerr.Wrap(tgerr.KindMissingResource, "tile.saveSharedEdgeData1", err)
		}
	}
	return nil
}
