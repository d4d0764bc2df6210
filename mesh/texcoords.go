package mesh

import (
	"math"

	"github.com/flightgear-scenery/tgcore/geodesy"
	"github.com/flightgear-scenery/tgcore/primitives"
)

// landClassTileM is the default terrain texture tile size in meters
// for materials with no entry, mirroring the land-class texture table
// used by the original construction pipeline (pavement carries its
// own TexParams; only terrain falls back to this table).
const landClassTileM = 600.0

// landClassTileSizes keys a handful of representative land-class
// materials to the tile size the original's land-class table assigns
// them (grass/crop textures repeat at a much finer scale than bare
// rock or water).
var landClassTileSizes = map[string]float64{
	"grass_rwy":  600.0,
	"dirt_rwy":   600.0,
	"ocean":      1000.0,
	"lake":       1000.0,
	"urban":      400.0,
	"suburban":   400.0,
	"cropland":   600.0,
	"rock":       800.0,
}

// ComputeTexCoords derives a 2D texture coordinate for every tessellated
// vertex of poly, via the reference-point-and-heading method for
// TexMethodPavement (poly.TexParams is taken as given) and via the
// land-class tile-size table for TexMethodTerrain. Coordinates are
// computed in poly's local tangent plane (meters from Ref), scaled by
// tile size, and rotated by heading — the planar analogue of
// sgCalcTexCoords.
func ComputeTexCoords(poly *primitives.Polygon) ([][2]float64, error) {
	tileW, tileH, heading, ref := resolveTexParams(poly)

	tangent := geodesy.NewTangent(ref.Lon, ref.Lat)
	sin, cos := math.Sincos(heading * math.Pi / 180)

	out := make([][2]float64, len(poly.TessVertices))
	for i, v := range poly.TessVertices {
		x, y := tangent.ToLocal(v.Lon, v.Lat)
		// Rotate into the texture's heading-aligned frame before
		// scaling by tile size, so a non-zero HeadingDeg rotates the
		// texture rather than the geometry.
		rx := x*cos + y*sin
		ry := -x*sin + y*cos
		out[i] = [2]float64{rx / tileW, ry / tileH}
	}
	return out, nil
}

func resolveTexParams(poly *primitives.Polygon) (tileW, tileH, heading float64, ref primitives.Point2) {
	if poly.TexMethod == primitives.TexMethodPavement {
		tp := poly.TexParams
		return tp.TileWidthM, tp.TileHeightM, tp.HeadingDeg, tp.Ref
	}

	size := landClassTileSizes[poly.Material]
	if size == 0 {
		size = landClassTileM
	}
	ref = poly.Outer().At(0)
	return size, size, 0, ref
}
