// Package mesh turns a cleaned, clipped primitives.Polygon into a
// triangulated, normal- and texture-coordinate-bearing mesh, grounded
// on tgconstruct.cxx's tessellation step and tgconstruct_math.cxx's
// differential-geometry formulas.
package mesh

import (
	"github.com/iceisfun/gomesh/cdt"
	gmtypes "github.com/iceisfun/gomesh/types"

	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// Tessellate triangulates poly's outer contour and holes with
// gomesh/cdt's constrained Delaunay triangulator and stores the
// result in poly.TessVertices/poly.Triangles. Triangle.Area/Normal
// fields are left zero; ComputeFaceGeometry fills them in once
// elevations are known.
//
// cdt.BuildWithConstraints takes exactly a Polygon's shape (outer
// points, hole point rings, extra constraint edges), which is why it
// was picked over hand-rolling ear clipping.
func Tessellate(poly *primitives.Polygon) error {
	if poly.IsEmpty() {
		return tgerr.New(tgerr.KindInvariantViolation, "mesh.Tessellate", "polygon has no usable outer boundary")
	}

	outer := toGomeshPoints(poly.Outer())
	var holes [][]gmtypes.Point
	for _, h := range poly.Holes() {
		holes = append(holes, toGomeshPoints(h))
	}

	result, err := cdt.BuildWithConstraints(outer, holes, nil)
	if err != nil {
		return tgerr.Wrap(tgerr.KindInvariantViolation, "mesh.Tessellate", err)
	}

	verts := make([]primitives.Point2, len(result.Vertices))
	for i, v := range result.Vertices {
		verts[i] = primitives.NewPoint2(v.X, v.Y)
	}

	tris := make([]primitives.Triangle, len(result.Triangles))
	for i, t := range result.Triangles {
		tris[i] = primitives.Triangle{V0: t[0], V1: t[1], V2: t[2]}
	}

	poly.TessVertices = verts
	poly.Triangles = tris
	return nil
}

func toGomeshPoints(c primitives.Contour) []gmtypes.Point {
	n := c.Size()
	out := make([]gmtypes.Point, n)
	for i := 0; i < n; i++ {
		p := c.At(i)
		out[i] = gmtypes.Point{X: p.Lon, Y: p.Lat}
	}
	return out
}
