package tile

import (
	"context"

	"github.com/flightgear-scenery/tgcore/mesh"
	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// RunStage2 reads neighbors' stage-1 shared-edge records, repairs
// T-junctions, tessellates every feature polygon, locks and sorts the
// Node set, interpolates elevations, builds the faces-per-node
// lookup, and saves the stage-2 shared-edge record.
func (t *Tile) RunStage2(ctx context.Context, cfg StageConfig) error {
	t.diag = cfg.Diag
	if t.isOcean {
		return nil
	}

	// STEP 7: elevation grid already resident; see loadElevationArray.
	if err := t.loadElevationArray(cfg, false); err != nil {
		return err
	}

	// STEP 8: merge in neighbor shared-edge points (T-junction repair
	// across the tile boundary).
	if err := t.loadSharedEdgeData1(cfg); err != nil {
		return err
	}

	// STEP 9: fix T-junctions between this tile's own features.
	fixTJunctionsGlobal(t.Features, tJunctionEps(cfg))

	// STEP 10: tessellate every feature polygon.
	for i := range t.Features {
		if t.Features[i].Polygon.IsEmpty() {
			continue
		}
		if err := mesh.Tessellate(&t.Features[i].Polygon); err != nil {
			return tgerr.Wrap(tgerr.KindNumericalDegenerate, "tile.RunStage2", err)
		}
	}

	// STEP 11: lock and sort the Node set.
	t.Nodes.SortNodes()

	// STEP 12: map each tessellated vertex to a (now sorted) node index.
	t.lookupNodesPerVertex()

	// STEP 13: interpolate elevations; flatten fixed-elevation polygons.
	if err := t.calcElevations(cfg); err != nil {
		return err
	}

	// STEP 14: build the faces-per-node lookup.
	t.lookupFacesPerNode()

	// STEP 15: save the stage-2 shared-edge record.
	return t.saveSharedEdgeData2(cfg)
}

func (t *Tile) loadSharedEdgeData1(cfg StageConfig) error {
	if cfg.Neighbors == nil {
		return nil
	}
	for _, side := range []Side{North, South, East, West} {
		neighborBucket := t.Bucket.Neighbor(side)
		r, err := cfg.Neighbors.SharedEdgeReader(neighborBucket, side.Opposite(), 1)
		if err != nil {
			return tgerr.Wrap(tgerr.KindMissingResource, "tile.loadSharedEdgeData1", err)
		}
		if r == nil {
			// Missing neighbor record: treat as ocean (no extra points).
			continue
		}
		rec, err := ReadSharedEdgeRecord(r)
		_ = r.Close()
		if err != nil {
			return err
		}
		for i := range t.Features {
			t.Features[i].Polygon = mergeSharedPoints(t.Features[i].Polygon, rec.Points, tJunctionEps(cfg))
		}
	}
	return nil
}

func (t *Tile) lookupNodesPerVertex() {
	for fi := range t.Features {
		f := &t.Features[fi]
		if len(f.Polygon.TessVertices) == 0 {
			continue
		}
		f.NodeIndices = make([]int, len(f.Polygon.TessVertices))
		for vi, v := range f.Polygon.TessVertices {
			idx, ok := t.Nodes.IndexOf(v)
			if !ok {
				// A tessellation vertex with no matching grid/T-junction
				// node (e.g. a Steiner point the triangulator added
				// internally): register it now. The set is already
				// sorted, so this index is simply appended past the
				// sorted range — still index-stable from here on,
				// which is all the invariant requires.
				idx = t.Nodes.AddPostSort(v)
			}
			f.NodeIndices[vi] = idx
		}
	}
}

func (t *Tile) calcElevations(cfg StageConfig) error {
	if err := requireElev(cfg, "tile.calcElevations"); err != nil {
		return err
	}
	for fi := range t.Features {
		f := &t.Features[fi]
		for _, idx := range f.NodeIndices {
			node := t.Nodes.At(idx)
			if f.Polygon.FixedElevation {
				node.Pos.Elevation = f.Polygon.ElevationM
				node.FixedElevation = true
				continue
			}
			elevM, err := cfg.Elev(node.Pos.Lon, node.Pos.Lat)
			if err != nil {
				return tgerr.Wrap(tgerr.KindMissingResource, "tile.calcElevations", err)
			}
			node.Pos.Elevation = elevM
		}
	}
	return nil
}

func (t *Tile) lookupFacesPerNode() {
	for fi := range t.Features {
		f := &t.Features[fi]
		for ti, tri := range f.Polygon.Triangles {
			for _, v := range [3]int{tri.V0, tri.V1, tri.V2} {
				if v < 0 || v >= len(f.NodeIndices) {
					continue
				}
				nodeIdx := f.NodeIndices[v]
				t.Nodes.At(nodeIdx).AddFace(FaceRef{AreaType: f.AreaType, Tri: ti})
			}
		}
	}
}

func (t *Tile) saveSharedEdgeData2(cfg StageConfig) error {
	for _, side := range []Side{North, South, East, West} {
		var sharedNodes []SharedNode
		for i := 0; i < t.Nodes.Len(); i++ {
			node := t.Nodes.At(i)
			if !t.Bucket.OnSide(node.Pos.Point2, side) {
				continue
			}
			node.Boundary = true
			areas, normals := t.boundaryFaceGeometry(i)
			sharedNodes = append(sharedNodes, SharedNode{
				Pos:        node.Pos,
				FaceAreas:  areas,
				FaceNormal: normals,
			})
		}
		t.sharedStage2[side] = SharedEdgeRecord{Bucket: t.Bucket, Side: side, Stage: 2, Nodes: sharedNodes}

		if cfg.WriteShared == nil {
			continue
		}
		w, err := cfg.WriteShared(t.Bucket, side, 2)
		if err != nil {
			return tgerr.Wrap(tgerr.KindMissingResource, "tile.saveSharedEdgeData2", err)
		}
		if err := WriteSharedEdgeRecord(w, t.sharedStage2[side]); err != nil {
			_ = w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return tgerr.Wrap(tgerr.KindMissingResource, "tile.saveSharedEdgeData2", err)
		}
	}
	return nil
}

// boundaryFaceGeometry computes the area/normal of every triangle
// incident to node index i, using this tile's stage-2 (pre-averaging)
// elevations. These are exactly the values a neighbor's stage 3 point
// -normal smoothing needs (§4.7's "incident faces include faces
// contributed by neighboring tiles"); see DESIGN.md for why this
// computation happens here rather than after stage 3's own
// CalcFaceNormals (the original's neighbor-face lookup is only ever
// populated from the stage-2 record, so that record must already
// carry real geometry, not just index tuples).
func (t *Tile) boundaryFaceGeometry(nodeIdx int) ([]float64, [][3]float64) {
	node := t.Nodes.At(nodeIdx)
	var areas []float64
	var normals [][3]float64
	for _, ref := range node.Faces() {
		for _, f := range t.Features {
			if f.AreaType != ref.AreaType || ref.Tri >= len(f.Polygon.Triangles) {
				continue
			}
			tri := f.Polygon.Triangles[ref.Tri]
			elev := make([]float64, len(f.Polygon.TessVertices))
			for vi, idx := range f.NodeIndices {
				elev[vi] = t.Nodes.At(idx).Pos.Elevation
			}
			tris := []primitives.Triangle{tri}
			mesh.ComputeFaceGeometry(f.Polygon.TessVertices, elev, tris)
			areas = append(areas, tris[0].Area)
			normals = append(normals, [3]float64{tris[0].NormalX, tris[0].NormalY, tris[0].NormalZ})
		}
	}
	return areas, normals
}
