package primitives

import (
	"math"
	"testing"
)

func TestPoint2Normalization(t *testing.T) {
	p := NewPoint2(190, 100)
	if p.Lon != -170 {
		t.Errorf("expected lon wrapped to -170, got %v", p.Lon)
	}
	if p.Lat != 90 {
		t.Errorf("expected lat clamped to 90, got %v", p.Lat)
	}
}

func TestContourSignedArea(t *testing.T) {
	square := NewContour([]Point2{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1},
	}, false)
	area := square.SignedArea()
	if math.Abs(area-1.0) > 1e-12 {
		t.Errorf("expected area 1, got %v", area)
	}
	if square.Reversed().SignedArea() != -area {
		t.Errorf("reversed contour should negate signed area")
	}
}

func TestContourAtWraps(t *testing.T) {
	c := NewContour([]Point2{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}, false)
	if !c.At(2).Equal(c.At(0)) {
		t.Errorf("At should wrap modulo size")
	}
}

func TestLineIntersect(t *testing.T) {
	l := Line{A: Point2{Lon: 0, Lat: -1}, B: Point2{Lon: 0, Lat: 1}}
	s := Segment{A: Point2{Lon: -1, Lat: 0}, B: Point2{Lon: 1, Lat: 0}}
	p, ok := l.Intersect(s)
	if !ok {
		t.Fatal("expected intersection")
	}
	if math.Abs(p.Lon) > 1e-9 || math.Abs(p.Lat) > 1e-9 {
		t.Errorf("expected origin, got %v", p)
	}
}

func TestLineOrientedSide(t *testing.T) {
	l := Line{A: Point2{Lon: 0, Lat: 0}, B: Point2{Lon: 1, Lat: 0}}
	left := Point2{Lon: 0.5, Lat: 1}
	right := Point2{Lon: 0.5, Lat: -1}
	if l.OrientedSide(left) <= 0 {
		t.Errorf("expected positive side for point above the line")
	}
	if l.OrientedSide(right) >= 0 {
		t.Errorf("expected negative side for point below the line")
	}
}

func TestRectangleExpandAndContains(t *testing.T) {
	r := EmptyRectangle()
	r = r.ExpandToInclude(Point2{Lon: 1, Lat: 2})
	r = r.ExpandToInclude(Point2{Lon: -1, Lat: -2})
	if !r.Contains(Point2{Lon: 0, Lat: 0}) {
		t.Errorf("expected origin inside bounds")
	}
	if r.Contains(Point2{Lon: 5, Lat: 5}) {
		t.Errorf("expected far point outside bounds")
	}
}

func TestPolygonOuterAndHoles(t *testing.T) {
	outer := NewContour([]Point2{{Lon: 0, Lat: 0}, {Lon: 10, Lat: 0}, {Lon: 10, Lat: 10}, {Lon: 0, Lat: 10}}, false)
	hole := NewContour([]Point2{{Lon: 3, Lat: 3}, {Lon: 7, Lat: 3}, {Lon: 7, Lat: 7}, {Lon: 3, Lat: 7}}, true)
	poly := NewPolygon(outer, []Contour{hole})

	if poly.NumContours() != 2 {
		t.Fatalf("expected 2 contours, got %d", poly.NumContours())
	}
	if poly.Contours[1].Hole != true {
		t.Errorf("expected second contour to be flagged as a hole")
	}
	if len(poly.Holes()) != 1 {
		t.Errorf("expected one hole from Holes()")
	}
}

func TestPoint3ECEFRoundTrip(t *testing.T) {
	p := NewPoint3(Point2{Lon: 10, Lat: 20}, 100)
	x, y, z := p.ECEF()
	r := math.Sqrt(x*x + y*y + z*z)
	// Earth radius plus elevation, roughly.
	if r < 6.3e6 || r > 6.4e6 {
		t.Errorf("unexpected ECEF radius %v", r)
	}
}
