package mesh

import (
	"math"
	"testing"

	"github.com/flightgear-scenery/tgcore/primitives"
)

func flatTriangle() ([]primitives.Point2, []float64, []primitives.Triangle) {
	verts := []primitives.Point2{
		{Lon: 0, Lat: 0},
		{Lon: 0.001, Lat: 0},
		{Lon: 0, Lat: 0.001},
	}
	elev := []float64{0, 0, 0}
	tris := []primitives.Triangle{{V0: 0, V1: 1, V2: 2}}
	return verts, elev, tris
}

func TestComputeFaceGeometryProducesUnitNormal(t *testing.T) {
	verts, elev, tris := flatTriangle()
	ComputeFaceGeometry(verts, elev, tris)

	nx, ny, nz := tris[0].NormalX, tris[0].NormalY, tris[0].NormalZ
	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if math.Abs(length-1) > 1e-6 {
		t.Fatalf("expected a unit normal, got length %v", length)
	}
	if tris[0].Area <= 0 {
		t.Fatalf("expected a positive face area, got %v", tris[0].Area)
	}
}

func TestComputeFaceGeometryDegenerateFallsBackToUp(t *testing.T) {
	verts := []primitives.Point2{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 0}, {Lon: 0, Lat: 0}}
	elev := []float64{0, 0, 0}
	tris := []primitives.Triangle{{V0: 0, V1: 1, V2: 2}}
	ComputeFaceGeometry(verts, elev, tris)

	wantX, wantY, wantZ := normalizeUp(primitivesECEF(verts[0], 0))
	if tris[0].NormalX != wantX || tris[0].NormalY != wantY || tris[0].NormalZ != wantZ {
		t.Fatalf("expected the degenerate fallback normal, got (%v,%v,%v)", tris[0].NormalX, tris[0].NormalY, tris[0].NormalZ)
	}
}

func primitivesECEF(p primitives.Point2, elevM float64) (x, y, z float64) {
	return primitives.NewPoint3(p, elevM).ECEF()
}

func TestComputeFaceGeometryBatchMatchesScalarPath(t *testing.T) {
	verts, elev, scalarTris := flatTriangle()
	batchTris := append([]primitives.Triangle(nil), scalarTris...)

	ComputeFaceGeometry(verts, elev, scalarTris)
	ComputeFaceGeometryBatch(verts, elev, batchTris)

	if math.Abs(scalarTris[0].Area-batchTris[0].Area) > 1e-9 {
		t.Fatalf("scalar and batch areas disagree: %v vs %v", scalarTris[0].Area, batchTris[0].Area)
	}
	if math.Abs(scalarTris[0].NormalZ-batchTris[0].NormalZ) > 1e-9 {
		t.Fatalf("scalar and batch normals disagree: %v vs %v", scalarTris[0].NormalZ, batchTris[0].NormalZ)
	}
}

func TestSmoothVertexNormalsAveragesIncidentFaces(t *testing.T) {
	verts, elev, tris := flatTriangle()
	// A second triangle sharing the edge V0-V2 so vertex 0 has two
	// incident faces of equal area and the same normal.
	tris = append(tris, primitives.Triangle{V0: 0, V1: 2, V2: 3})
	verts = append(verts, primitives.Point2{Lon: -0.001, Lat: 0.001})
	elev = append(elev, 0)
	ComputeFaceGeometry(verts, elev, tris)

	normals := SmoothVertexNormals(len(verts), tris, nil)
	n := normals[0]
	length := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if math.Abs(length-1) > 1e-6 {
		t.Fatalf("expected a unit smoothed normal, got length %v", length)
	}
}

func TestSmoothVertexNormalsIncludesNeighborTileFaces(t *testing.T) {
	verts, elev, tris := flatTriangle()
	ComputeFaceGeometry(verts, elev, tris)

	withoutNeighbor := SmoothVertexNormals(len(verts), tris, nil)

	neighbor := []primitives.Triangle{{V0: 0, V1: 1, V2: 2, Area: tris[0].Area,
		NormalX: -tris[0].NormalX, NormalY: -tris[0].NormalY, NormalZ: -tris[0].NormalZ}}
	withNeighbor := SmoothVertexNormals(len(verts), tris, neighbor)

	if withoutNeighbor[0] == withNeighbor[0] {
		t.Fatalf("expected folding in a neighbor face to change the smoothed normal")
	}
}

func TestComputeTexCoordsPavementUsesRefAndHeading(t *testing.T) {
	poly := &primitives.Polygon{
		Contours:  []primitives.Contour{primitives.NewContour([]primitives.Point2{{Lon: 0, Lat: 0}, {Lon: 0.01, Lat: 0}, {Lon: 0.01, Lat: 0.01}, {Lon: 0, Lat: 0.01}}, false)},
		TexMethod: primitives.TexMethodPavement,
		TexParams: primitives.TexParams{Ref: primitives.Point2{Lon: 0, Lat: 0}, TileWidthM: 5, TileHeightM: 5},
		TessVertices: []primitives.Point2{{Lon: 0, Lat: 0}, {Lon: 0.01, Lat: 0}},
	}
	coords, err := ComputeTexCoords(poly)
	if err != nil {
		t.Fatalf("ComputeTexCoords returned error: %v", err)
	}
	if len(coords) != 2 {
		t.Fatalf("expected one coordinate per tessellated vertex, got %d", len(coords))
	}
	if coords[0][0] != 0 || coords[0][1] != 0 {
		t.Fatalf("expected the reference vertex to map to (0,0), got %v", coords[0])
	}
}

func TestComputeTexCoordsTerrainFallsBackToLandClassTable(t *testing.T) {
	poly := &primitives.Polygon{
		Contours:     []primitives.Contour{primitives.NewContour([]primitives.Point2{{Lon: 0, Lat: 0}, {Lon: 0.01, Lat: 0}, {Lon: 0.01, Lat: 0.01}}, false)},
		TexMethod:    primitives.TexMethodTerrain,
		Material:     "urban",
		TessVertices: []primitives.Point2{{Lon: 0, Lat: 0}},
	}
	coords, err := ComputeTexCoords(poly)
	if err != nil {
		t.Fatalf("ComputeTexCoords returned error: %v", err)
	}
	if len(coords) != 1 {
		t.Fatalf("expected one coordinate, got %d", len(coords))
	}
}
