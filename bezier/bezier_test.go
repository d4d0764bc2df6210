package bezier

import (
	"math"
	"testing"

	"github.com/flightgear-scenery/tgcore/primitives"
)

func TestFlattenAllLinearRoundTrips(t *testing.T) {
	pts := []primitives.Point2{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1},
	}
	nodes := make([]BezNode, len(pts))
	for i, p := range pts {
		nodes[i] = NewBezNode(p)
	}
	c := NewBezContour(nodes, false)
	flat := c.Flatten()

	if flat.Size() != len(pts) {
		t.Fatalf("expected %d points for an all-linear contour, got %d", len(pts), flat.Size())
	}
	for i, p := range pts {
		if !flat.At(i).Equal(p) {
			t.Errorf("point %d: expected %v, got %v", i, p, flat.At(i))
		}
	}
}

func TestFlattenCubicQuarterCircle(t *testing.T) {
	// A single cubic join approximating a quarter circle from (1,0) to
	// (0,1), control points placed at the standard circle-approximation
	// offset, closed by a linear return leg through the origin.
	const k = 0.5523
	n0 := NewBezNode(primitives.Point2{Lon: 1, Lat: 0}).WithNextCp(primitives.Point2{Lon: 1, Lat: k})
	n1 := NewBezNode(primitives.Point2{Lon: 0, Lat: 1}).WithPrevCp(primitives.Point2{Lon: k, Lat: 1})
	n2 := NewBezNode(primitives.Point2{Lon: 0, Lat: 0})

	c := NewBezContour([]BezNode{n0, n1, n2}, false)
	flat := c.Flatten()

	// n0->n1 is cubic (Detail points), n1->n2 and n2->n0 are linear (1 point each).
	if flat.Size() != Detail+2 {
		t.Fatalf("expected %d points, got %d", Detail+2, flat.Size())
	}

	// Every flattened point on the curved span should lie roughly on
	// the unit circle (within the cubic approximation's error).
	for i := 0; i < Detail; i++ {
		p := flat.At(i)
		r := math.Hypot(p.Lon, p.Lat)
		if math.Abs(r-1) > 0.01 {
			t.Errorf("point %d: radius %v too far from unit circle", i, r)
		}
	}
}

func TestFlattenQuadraticBorrowsNeighborCp(t *testing.T) {
	n0 := NewBezNode(primitives.Point2{Lon: 0, Lat: 0})
	n1 := NewBezNode(primitives.Point2{Lon: 2, Lat: 0}).WithPrevCp(primitives.Point2{Lon: 1, Lat: 1})
	c := NewBezContour([]BezNode{n0, n1}, false)
	flat := c.Flatten()

	// n0->n1 is quadratic (borrowing n1's prev cp), n1->n0 is linear.
	if flat.Size() != Detail+1 {
		t.Fatalf("expected %d points, got %d", Detail+1, flat.Size())
	}
	// The midpoint of the curve should bulge toward the control point,
	// i.e. have positive latitude.
	mid := flat.At(Detail / 2)
	if mid.Lat <= 0 {
		t.Errorf("expected quadratic bulge toward control point, got %v", mid)
	}
}
