package clipper

import (
	"testing"

	"github.com/flightgear-scenery/tgcore/geodesy"
	"github.com/flightgear-scenery/tgcore/primitives"
)

func square(x0, y0, x1, y1 float64) primitives.Polygon {
	outer := primitives.NewContour([]primitives.Point2{
		{Lon: x0, Lat: y0}, {Lon: x1, Lat: y0}, {Lon: x1, Lat: y1}, {Lon: x0, Lat: y1},
	}, false)
	return primitives.NewPolygon(outer, nil)
}

func TestScaleRoundTrip(t *testing.T) {
	p := primitives.Point2{Lon: -122.375, Lat: 37.6188}
	got := fromPoint64(toPoint64(p))
	if !got.ApproxEqual(p, 1e-7) {
		t.Errorf("round trip drifted: got %v, want %v", got, p)
	}
}

func TestUnionWithEmptyIsIdentity(t *testing.T) {
	a := square(0, 0, 1, 1)
	result, err := Union(a, primitives.Polygon{})
	if err != nil {
		t.Fatalf("Union returned error: %v", err)
	}
	if result.IsEmpty() {
		t.Fatalf("expected non-empty union with an empty operand")
	}
}

func TestDifferenceWithEmptyClipIsIdentity(t *testing.T) {
	a := square(0, 0, 1, 1)
	result, err := Difference(a, primitives.Polygon{})
	if err != nil {
		t.Fatalf("Difference returned error: %v", err)
	}
	if result.IsEmpty() {
		t.Fatalf("expected a unchanged when clip is empty")
	}
}

func TestDifferenceOfEmptySubjectIsEmpty(t *testing.T) {
	result, err := Difference(primitives.Polygon{}, square(0, 0, 1, 1))
	if err != nil {
		t.Fatalf("Difference returned error: %v", err)
	}
	if !result.IsEmpty() {
		t.Fatalf("expected empty result when subject is empty")
	}
}

func TestIntersectionOfEmptyIsEmpty(t *testing.T) {
	result, err := Intersection(primitives.Polygon{}, square(0, 0, 1, 1))
	if err != nil {
		t.Fatalf("Intersection returned error: %v", err)
	}
	if !result.IsEmpty() {
		t.Fatalf("expected empty result when either operand is empty")
	}
}

func TestExpandOfEmptyIsEmpty(t *testing.T) {
	result, err := Expand(primitives.Polygon{}, 20)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if !result.IsEmpty() {
		t.Fatalf("expected empty result expanding an empty polygon")
	}
}

func TestSplitLongEdgesBoundsEdgeLength(t *testing.T) {
	c := primitives.NewContour([]primitives.Point2{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1},
	}, false)
	split, err := SplitLongEdges(c, 1000) // 1km max, ~111km-long edges
	if err != nil {
		t.Fatalf("SplitLongEdges returned error: %v", err)
	}
	if split.Size() <= c.Size() {
		t.Fatalf("expected SplitLongEdges to add vertices, got %d (was %d)", split.Size(), c.Size())
	}
	for i := 0; i < split.Size(); i++ {
		a, b := split.At(i), split.At(i+1)
		d, err := geodesy.DistanceM(a.Lon, a.Lat, b.Lon, b.Lat)
		if err != nil {
			t.Fatalf("DistanceM returned error: %v", err)
		}
		if d > 1000 {
			t.Errorf("edge %d is %.1fm long, want <= 1000m", i, d)
		}
	}
}

func TestSplitLongEdgesNoopBelowThreshold(t *testing.T) {
	c := primitives.NewContour([]primitives.Point2{
		{Lon: 0, Lat: 0}, {Lon: 0.001, Lat: 0}, {Lon: 0.001, Lat: 0.001}, {Lon: 0, Lat: 0.001},
	}, false)
	split, err := SplitLongEdges(c, 1000)
	if err != nil {
		t.Fatalf("SplitLongEdges returned error: %v", err)
	}
	if split.Size() != c.Size() {
		t.Errorf("expected no added vertices for short edges, got %d (was %d)", split.Size(), c.Size())
	}
}
