package airport

import (
	"math"
	"testing"

	"github.com/flightgear-scenery/tgcore/bezier"
	"github.com/flightgear-scenery/tgcore/primitives"
)

func square(x0, y0, x1, y1 float64) []bezier.BezNode {
	pts := []primitives.Point2{
		{Lon: x0, Lat: y0}, {Lon: x1, Lat: y0}, {Lon: x1, Lat: y1}, {Lon: x0, Lat: y1},
	}
	nodes := make([]bezier.BezNode, len(pts))
	for i, p := range pts {
		nodes[i] = bezier.NewBezNode(p)
	}
	return nodes
}

func TestMaterialForSurfaceType(t *testing.T) {
	cases := map[int]string{1: "pa_tiedown", 2: "pc_tiedown", 3: "grass_rwy", 14: "grass_rwy"}
	for st, want := range cases {
		got, err := materialForSurfaceType(st)
		if err != nil {
			t.Fatalf("surface type %d: unexpected error %v", st, err)
		}
		if got != want {
			t.Errorf("surface type %d: expected %q, got %q", st, want, got)
		}
	}
}

func TestMaterialForUnknownSurfaceTypeErrors(t *testing.T) {
	if _, err := materialForSurfaceType(99); err == nil {
		t.Fatalf("expected an error for an unknown surface type")
	}
}

func TestClosedPolySquareTaxiwayScenario(t *testing.T) {
	poly := NewPavementPoly("taxiway A", PavementInfo{SurfaceType: 1, TextureHeadingDeg: 0})
	for _, n := range square(0, 0, 0.001, 0.001) {
		poly.AddNode(n)
	}
	if err := poly.CloseCurContour(); err != nil {
		t.Fatalf("CloseCurContour returned error: %v", err)
	}
	if poly.Hull.Size() < 3 {
		t.Fatalf("expected a convex hull with at least 3 points, got %d", poly.Hull.Size())
	}

	if err := poly.Finish(); err != nil {
		t.Fatalf("Finish returned error: %v", err)
	}
	if len(poly.PreTess.Contours) != 1 {
		t.Fatalf("expected one contour (just the boundary), got %d", len(poly.PreTess.Contours))
	}

	var accum, base, clearing primitives.Polygon
	built, err := poly.BuildBtg(&accum, &base, &clearing)
	if err != nil {
		t.Fatalf("BuildBtg returned error: %v", err)
	}
	if built == nil {
		t.Fatalf("expected a built poly")
	}
	if built.Material != "pa_tiedown" {
		t.Errorf("expected pa_tiedown material, got %q", built.Material)
	}
	if base.IsEmpty() {
		t.Errorf("expected the airport base to have grown")
	}
}

func TestClosedPolyWithHoleScenario(t *testing.T) {
	poly := NewPavementPoly("apron with hole", PavementInfo{SurfaceType: 1})
	for _, n := range square(0, 0, 0.01, 0.01) {
		poly.AddNode(n)
	}
	if err := poly.CloseCurContour(); err != nil {
		t.Fatalf("boundary CloseCurContour: %v", err)
	}
	for _, n := range square(0.003, 0.003, 0.006, 0.006) {
		poly.AddNode(n)
	}
	if err := poly.CloseCurContour(); err != nil {
		t.Fatalf("hole CloseCurContour: %v", err)
	}

	if err := poly.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(poly.PreTess.Contours) != 2 {
		t.Fatalf("expected boundary + hole, got %d contours", len(poly.PreTess.Contours))
	}
}

func TestConvexHullOfSquareIsSquare(t *testing.T) {
	pts := []primitives.Point2{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1},
		{Lon: 0.5, Lat: 0.5}, // interior point, should not survive
	}
	hull := ConvexHull(pts)
	if hull.Size() != 4 {
		t.Fatalf("expected a 4-point hull, got %d", hull.Size())
	}
}

func TestExpandContourStraightRunUsesExactDistance(t *testing.T) {
	// A long straight run along one latitude line: theta ~180 at every
	// interior vertex.
	src := primitives.NewContour([]primitives.Point2{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 2, Lat: 0},
	}, false)
	expanded, err := ExpandContour(src, 10.0)
	if err != nil {
		t.Fatalf("ExpandContour returned error: %v", err)
	}
	if expanded.Size() != src.Size() {
		t.Fatalf("expected ExpandContour to preserve vertex count")
	}
	// The middle vertex (genuinely straight) should move roughly
	// perpendicular by ~10m, not some blown-up distance.
	mid := expanded.At(1)
	orig := src.At(1)
	if math.Abs(mid.Lat-orig.Lat) > 0.001 {
		t.Errorf("expected a small perpendicular offset, got a %v degree shift", mid.Lat-orig.Lat)
	}
}
