package tile

import (
	"context"

	"github.com/flightgear-scenery/tgcore/mesh"
	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// RunStage3 reads neighbors' stage-2 shared-edge records, averages
// elevation at shared boundary nodes, computes final face areas and
// normals, smooths vertex normals (folding in neighbor faces), and
// computes texture coordinates. The resulting in-memory mesh is
// available afterward via Mesh; this module stops at the triangulated,
// textured, normaled mesh and never serializes it — byte-level BTG
// writing is an external collaborator's job (spec.md §2 Non-goals).
func (t *Tile) RunStage3(ctx context.Context, cfg StageConfig) error {
	t.diag = cfg.Diag
	if t.isOcean {
		return nil
	}

	// STEP 16: load neighboring stage-2 faces/elevations.
	neighborRecords, err := t.loadSharedEdgeDataStage2(cfg)
	if err != nil {
		return err
	}

	// STEP 17: average elevation at shared boundary nodes.
	t.averageEdgeElevations(neighborRecords)

	// STEP 18: compute final face areas and normals.
	var allTriangles []primitives.Triangle
	for fi := range t.Features {
		f := &t.Features[fi]
		if len(f.Polygon.Triangles) == 0 {
			continue
		}
		elev := make([]float64, len(f.Polygon.TessVertices))
		for vi, idx := range f.NodeIndices {
			elev[vi] = t.Nodes.At(idx).Pos.Elevation
		}
		mesh.ComputeFaceGeometry(f.Polygon.TessVertices, elev, f.Polygon.Triangles)
		// Triangles index the feature's TessVertices; re-index them by
		// tile-wide Node for the per-node normal smoothing below.
		for _, tri := range f.Polygon.Triangles {
			tri.V0, tri.V1, tri.V2 = f.NodeIndices[tri.V0], f.NodeIndices[tri.V1], f.NodeIndices[tri.V2]
			allTriangles = append(allTriangles, tri)
		}
	}

	// STEP 19: smooth vertex normals, including neighbor faces.
	t.smoothVertexNormals(allTriangles, neighborRecords)

	// STEP 20: compute texture coordinates.
	for fi := range t.Features {
		if len(t.Features[fi].Polygon.TessVertices) == 0 {
			continue
		}
		coords, err := mesh.ComputeTexCoords(&t.Features[fi].Polygon)
		if err != nil {
			return tgerr.Wrap(tgerr.KindNumericalDegenerate, "tile.RunStage3", err)
		}
		t.Features[fi].texCoords = coords
	}

	// STEP 21/22: the finished node/normal/triangle tables are exposed
	// in memory via Mesh, texture coordinates via each Feature's
	// TexCoords, and placements via t.Objects; nothing further to
	// compute. Assembling bytes for a .btg/.stg pair is out of scope.
	return nil
}

func (t *Tile) loadSharedEdgeDataStage2(cfg StageConfig) (map[Side]SharedEdgeRecord, error) {
	out := make(map[Side]SharedEdgeRecord)
	if cfg.Neighbors == nil {
		return out, nil
	}
	for _, side := range []Side{North, South, East, West} {
		neighborBucket := t.Bucket.Neighbor(side)
		r, err := cfg.Neighbors.SharedEdgeReader(neighborBucket, side.Opposite(), 2)
		if err != nil {
			return nil, tgerr.Wrap(tgerr.KindMissingResource, "tile.loadSharedEdgeDataStage2", err)
		}
		if r == nil {
			continue // missing neighbor record: treat as ocean
		}
		rec, err := ReadSharedEdgeRecord(r)
		_ = r.Close()
		if err != nil {
			return nil, err
		}
		out[side] = rec
	}
	return out, nil
}

// averageEdgeElevations replaces each shared boundary node's
// elevation with the mean of this tile's own (pre-average) value and
// the matching neighbor node's value, by exact position match within
// snapEpsilonDeg. A node present on more than one side (a tile
// corner) is averaged once per matching neighbor it finds, in side
// order — consistent since every contributing tile computes the same
// mean of the same pair.
func (t *Tile) averageEdgeElevations(neighborRecords map[Side]SharedEdgeRecord) {
	for _, side := range []Side{North, South, East, West} {
		rec, ok := neighborRecords[side]
		if !ok {
			continue
		}
		for i := 0; i < t.Nodes.Len(); i++ {
			node := t.Nodes.At(i)
			if !t.Bucket.OnSide(node.Pos.Point2, side) {
				continue
			}
			for _, sn := range rec.Nodes {
				if sn.Pos.Point2.ApproxEqual(node.Pos.Point2, snapEpsilonDeg) {
					node.Pos.Elevation = (node.Pos.Elevation + sn.Pos.Elevation) / 2
					break
				}
			}
		}
	}
}

func (t *Tile) smoothVertexNormals(allTriangles []primitives.Triangle, neighborRecords map[Side]SharedEdgeRecord) {
	normals := mesh.SmoothVertexNormals(t.Nodes.Len(), allTriangles, nil)
	for i := 0; i < t.Nodes.Len(); i++ {
		t.Nodes.At(i).Normal = normals[i]
	}
	// Re-smooth boundary nodes with their matching neighbor faces
	// folded in, since the plain pass above only knows about this
	// tile's own triangles.
	for side, rec := range neighborRecords {
		for i := 0; i < t.Nodes.Len(); i++ {
			node := t.Nodes.At(i)
			if !t.Bucket.OnSide(node.Pos.Point2, side) {
				continue
			}
			var extra []primitives.Triangle
			for _, sn := range rec.Nodes {
				if !sn.Pos.Point2.ApproxEqual(node.Pos.Point2, snapEpsilonDeg) {
					continue
				}
				for k := range sn.FaceAreas {
					extra = append(extra, primitives.Triangle{
						Area: sn.FaceAreas[k],
						NormalX: sn.FaceNormal[k][0], NormalY: sn.FaceNormal[k][1], NormalZ: sn.FaceNormal[k][2],
					})
				}
			}
			if len(extra) == 0 {
				continue
			}
			incident := incidentTriangles(node, t.Features)
			renormed := mesh.SmoothVertexNormals(1, reindexToZero(incident), extra)
			node.Normal = renormed[0]
		}
	}
}

func incidentTriangles(node *Node, features []Feature) []primitives.Triangle {
	var out []primitives.Triangle
	for _, ref := range node.Faces() {
		for _, f := range features {
			if f.AreaType == ref.AreaType && ref.Tri < len(f.Polygon.Triangles) {
				out = append(out, f.Polygon.Triangles[ref.Tri])
			}
		}
	}
	return out
}

// reindexToZero rewrites a set of triangles so every vertex index
// points at node 0, for feeding into a single-node SmoothVertexNormals
// call — only Area/Normal matter to that pass, but V0/V1/V2 must be
// in range for the accumulation loop to count them.
func reindexToZero(tris []primitives.Triangle) []primitives.Triangle {
	out := make([]primitives.Triangle, len(tris))
	for i, tr := range tris {
		tr.V0, tr.V1, tr.V2 = 0, 0, 0
		out[i] = tr
	}
	return out
}
