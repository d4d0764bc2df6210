package isect

import (
	"testing"

	"github.com/flightgear-scenery/tgcore/primitives"
)

func TestAddEdgeComputesHullGeometry(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(primitives.Point2{Lon: 0, Lat: 0})
	b := g.AddNode(primitives.Point2{Lon: 0, Lat: 1})

	id, err := g.AddEdge(a, b, 20, 1)
	if err != nil {
		t.Fatalf("AddEdge returned error: %v", err)
	}
	e := g.Edge(id)

	length, err := e.GetLength()
	if err != nil {
		t.Fatalf("GetLength returned error: %v", err)
	}
	if length < 100000 || length > 112000 {
		t.Errorf("expected ~111km between one degree of latitude, got %v", length)
	}

	if e.BotLeft.Equal(e.BotRight) {
		t.Errorf("expected BotLeft and BotRight to differ by the corridor width")
	}
}

func TestCompleteWithNoMSCornersProducesSimpleContour(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(primitives.Point2{Lon: 0, Lat: 0})
	b := g.AddNode(primitives.Point2{Lon: 0, Lat: 1})
	id, err := g.AddEdge(a, b, 20, 1)
	if err != nil {
		t.Fatalf("AddEdge returned error: %v", err)
	}
	e := g.Edge(id)
	// recomputeGeometry already seeded conBotRight/conTopRight/etc from
	// the unconstrained hull corners; no MS constraint was proposed, so
	// Complete should reconcile to the plain four-point contour without
	// any test-side patching.
	if err := e.Complete(); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	if len(e.RightContour) != 4 {
		t.Fatalf("expected a 4-point right contour with no MS corners, got %d", len(e.RightContour))
	}
	if len(e.LeftContour) != 4 {
		t.Fatalf("expected a 4-point left contour with no MS corners, got %d", len(e.LeftContour))
	}
}

func TestIntersectConstraintsAndSidesResolvesSingleSegmentCorner(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(primitives.Point2{Lon: 0, Lat: 0})
	b := g.AddNode(primitives.Point2{Lon: 0, Lat: 1})
	id, err := g.AddEdge(a, b, 20, 1)
	if err != nil {
		t.Fatalf("AddEdge returned error: %v", err)
	}
	e := g.Edge(id)

	// A neighboring edge proposes a single point near this edge's
	// bottom-right corner but not exactly on it.
	constraint := []primitives.Point2{{Lon: e.BotRight.Lon + 0.0005, Lat: e.BotRight.Lat}}
	e.IntersectConstraintsAndSides(true, nil, constraint)

	if e.corners.conBotRight.Equal(primitives.Point2{}) {
		t.Fatalf("expected conBotRight to be resolved to a non-zero point")
	}
	if !e.SideR.IsOn(e.corners.conBotRight, 1e-6) {
		t.Errorf("expected resolved corner to lie on SideR, got %+v", e.corners.conBotRight)
	}
}

func TestCompleteSplitsPerpendicularsForAsymmetricContours(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(primitives.Point2{Lon: 0, Lat: 0})
	b := g.AddNode(primitives.Point2{Lon: 0, Lat: 1})
	id, err := g.AddEdge(a, b, 20, 1)
	if err != nil {
		t.Fatalf("AddEdge returned error: %v", err)
	}
	e := g.Edge(id)

	bend := primitives.Point2{Lon: e.TopLeft.Lon - 0.01, Lat: (e.BotLeft.Lat + e.TopLeft.Lat) / 2}
	e.corners.msTopLeft.points = []primitives.Point2{bend}
	e.corners.msTopLeft.state = SlotValid

	if err := e.Complete(); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	if len(e.RightContour) <= 4 {
		t.Errorf("expected splitPerpendiculars to insert a matching vertex into the right contour, got %d points", len(e.RightContour))
	}
}

func TestApplyConstraintCommitsProposedSlots(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(primitives.Point2{Lon: 0, Lat: 0})
	b := g.AddNode(primitives.Point2{Lon: 0, Lat: 1})
	id, err := g.AddEdge(a, b, 20, 1)
	if err != nil {
		t.Fatalf("AddEdge returned error: %v", err)
	}
	e := g.Edge(id)

	cons := []primitives.Point2{{Lon: 0.0001, Lat: 0.1}, {Lon: 0.0002, Lat: 0.2}}
	e.SetLeftConstraint(true, cons)
	if e.corners.msBotLeft.state != SlotProposed {
		t.Fatalf("expected bottom-left slot Proposed after SetLeftConstraint, got %v", e.corners.msBotLeft.state)
	}

	e.ApplyConstraint(true)
	if e.corners.msBotLeft.state != SlotValid {
		t.Fatalf("expected bottom-left slot Valid after ApplyConstraint(true), got %v", e.corners.msBotLeft.state)
	}
}

func TestApplyConstraintRejectClearsSlot(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(primitives.Point2{Lon: 0, Lat: 0})
	b := g.AddNode(primitives.Point2{Lon: 0, Lat: 1})
	id, err := g.AddEdge(a, b, 20, 1)
	if err != nil {
		t.Fatalf("AddEdge returned error: %v", err)
	}
	e := g.Edge(id)

	e.SetRightConstraint(true, []primitives.Point2{{Lon: 0.0001, Lat: 0.1}})
	e.ApplyConstraint(false)
	if e.corners.msBotRight.state != SlotEmpty {
		t.Fatalf("expected bottom-right slot Empty after rejection, got %v", e.corners.msBotRight.state)
	}
	if !e.corners.msBotRight.empty() {
		t.Errorf("expected points cleared on rejection")
	}
}

func TestSplitPreservesEndpointBookkeeping(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(primitives.Point2{Lon: 0, Lat: 0})
	b := g.AddNode(primitives.Point2{Lon: 0, Lat: 2})
	id, err := g.AddEdge(a, b, 20, 1)
	if err != nil {
		t.Fatalf("AddEdge returned error: %v", err)
	}
	mid := g.AddNode(primitives.Point2{Lon: 0, Lat: 1})

	e := g.Edge(id)
	second, err := e.Split(mid)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}

	if e.Dst != mid {
		t.Errorf("expected first half to end at the split node")
	}
	if second.Src != mid || second.Dst != b {
		t.Errorf("expected second half to run from split node to original destination")
	}

	found := false
	for _, eid := range g.EdgesAt(b) {
		if eid == second.ID() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected destination node to reference the new second-half edge")
	}
}
