package tile

import "github.com/flightgear-scenery/tgcore/primitives"

// TriGroup is the triangle list for a single material, mirroring the
// BTG format's material-indexed triangle strips (the per-stage step
// 21 grouping, kept here as a plain slice since this core doesn't
// strip-ify or serialize).
type TriGroup struct {
	Material  string
	Triangles []primitives.Triangle
}

// TileMesh is the finished, in-memory result of a tile's three
// construction stages: a deduplicated node table (each carrying its
// averaged elevation and smoothed normal) and triangles grouped by
// material. Texture coordinates are not part of it; they stay on each
// Feature (Feature.TexCoords). An external
// collaborator serializes this into a .btg file and a matching .stg
// object-placement file; this core stops here (spec.md §2 Non-goals).
type TileMesh struct {
	Bucket    Bucket
	Nodes     []Node
	TriGroups []TriGroup
}

// Mesh assembles the TileMesh from the tile's current state. Call
// after RunStage3 returns successfully; calling it earlier yields a
// mesh with stale or zero elevations/normals.
func (t *Tile) Mesh() TileMesh {
	nodes := make([]Node, t.Nodes.Len())
	for i := 0; i < t.Nodes.Len(); i++ {
		nodes[i] = *t.Nodes.At(i)
	}

	groups := make(map[string]*TriGroup)
	var order []string
	for _, f := range t.Features {
		if len(f.Polygon.Triangles) == 0 {
			continue
		}
		g, ok := groups[f.Polygon.Material]
		if !ok {
			g = &TriGroup{Material: f.Polygon.Material}
			groups[f.Polygon.Material] = g
			order = append(order, f.Polygon.Material)
		}
		g.Triangles = append(g.Triangles, f.Polygon.Triangles...)
	}
	triGroups := make([]TriGroup, 0, len(order))
	for _, m := range order {
		triGroups = append(triGroups, *groups[m])
	}

	return TileMesh{Bucket: t.Bucket, Nodes: nodes, TriGroups: triGroups}
}
