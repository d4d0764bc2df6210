package polyutil

import (
	"testing"

	"github.com/flightgear-scenery/tgcore/primitives"
)

func TestRemoveBadContoursDropsSlivers(t *testing.T) {
	outer := primitives.NewContour([]primitives.Point2{
		{Lon: 0, Lat: 0}, {Lon: 10, Lat: 0}, {Lon: 10, Lat: 10}, {Lon: 0, Lat: 10},
	}, false)
	tooFew := primitives.NewContour([]primitives.Point2{{Lon: 1, Lat: 1}, {Lon: 2, Lat: 2}}, true)
	poly := primitives.Polygon{Contours: []primitives.Contour{outer, tooFew}}

	cleaned := RemoveBadContours(poly)
	if len(cleaned.Contours) != 1 {
		t.Fatalf("expected the undersized hole to be dropped, got %d contours", len(cleaned.Contours))
	}
}

func TestRemoveDuplicateVerticesCollapsesCloseVertices(t *testing.T) {
	c := primitives.NewContour([]primitives.Point2{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 0.00000001}, // well within 1cm at any latitude
		{Lon: 1, Lat: 0},
		{Lon: 1, Lat: 1},
	}, false)
	cleaned := RemoveDuplicateVertices(c)
	if cleaned.Size() != 3 {
		t.Fatalf("expected 3 vertices after collapsing the near-duplicate, got %d", cleaned.Size())
	}
}

func TestRemoveDuplicateVerticesIdempotent(t *testing.T) {
	c := primitives.NewContour([]primitives.Point2{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1},
	}, false)
	once := RemoveDuplicateVertices(c)
	twice := RemoveDuplicateVertices(once)
	if once.Size() != twice.Size() {
		t.Errorf("expected idempotent result, got %d then %d", once.Size(), twice.Size())
	}
}

func TestReduceDegeneracyRemovesCollinearPoint(t *testing.T) {
	c := primitives.NewContour([]primitives.Point2{
		{Lon: 0, Lat: 0},
		{Lon: 0.5, Lat: 0}, // collinear with its neighbors
		{Lon: 1, Lat: 0},
		{Lon: 1, Lat: 1},
		{Lon: 0, Lat: 1},
	}, false)
	reduced := ReduceDegeneracy(c)
	if reduced.Size() != 4 {
		t.Fatalf("expected the collinear point removed (4 vertices left), got %d", reduced.Size())
	}
}

func TestReduceDegeneracyIdempotent(t *testing.T) {
	c := primitives.NewContour([]primitives.Point2{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1},
	}, false)
	once := ReduceDegeneracy(c)
	twice := ReduceDegeneracy(once)
	if once.Size() != twice.Size() {
		t.Errorf("expected idempotent result, got %d then %d", once.Size(), twice.Size())
	}
}

func TestReduceDegeneracyKeepsMinimumTriangle(t *testing.T) {
	c := primitives.NewContour([]primitives.Point2{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 0, Lat: 1},
	}, false)
	reduced := ReduceDegeneracy(c)
	if reduced.Size() != MinContourVertices {
		t.Errorf("expected a minimal triangle to survive untouched, got %d vertices", reduced.Size())
	}
}
