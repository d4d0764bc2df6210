package isect

import (
	"github.com/flightgear-scenery/tgcore/geodesy"
	"github.com/flightgear-scenery/tgcore/primitives"
)

// SlotState is the state of one multi-segment corner constraint slot.
// It replaces the original's separate `_set`/`_valid` boolean pair
// with a single three-state value, which is what that pair was really
// encoding: a constraint proposed this pass becomes Valid once the
// controlling edge commits it, or reverts to Empty if the pass
// rejects it.
type SlotState int

const (
	// SlotEmpty: no constraint has been proposed for this corner.
	SlotEmpty SlotState = iota
	// SlotProposed: a constraint was set this pass but not yet
	// committed — it may still be rejected by ApplyConstraint(false).
	SlotProposed
	// SlotValid: the constraint has been committed and is load-bearing
	// for Complete().
	SlotValid
)

// cornerSlot holds one multi-segment (MS) corner's constraint
// polyline plus its commit state.
type cornerSlot struct {
	state  SlotState
	points []primitives.Point2
}

func (s *cornerSlot) set(points []primitives.Point2) {
	if s.state == SlotValid {
		return // already committed this pass; first writer wins
	}
	s.points = points
	s.state = SlotProposed
}

func (s *cornerSlot) apply(commit bool) {
	if s.state != SlotProposed {
		return
	}
	if commit {
		s.state = SlotValid
	} else {
		s.points = nil
		s.state = SlotEmpty
	}
}

func (s *cornerSlot) empty() bool { return len(s.points) == 0 }

// constraints holds the four MS corner slots (bottom-left, bottom-right,
// top-left, top-right) plus the four single-segment corner points
// computed once the MS slots are resolved.
type constraints struct {
	msBotLeft  cornerSlot
	msBotRight cornerSlot
	msTopLeft  cornerSlot
	msTopRight cornerSlot

	conBotLeft, conBotRight primitives.Point2
	conTopLeft, conTopRight primitives.Point2
}

// SetLeftConstraint proposes a multi-segment constraint contributed by
// a neighboring edge meeting this one on its left. If originating is
// true the constraint lands on this edge's bottom-left corner
// (pushed in source order); otherwise it lands on the top-right corner
// (also pushed in source order — the original reverses it to front,
// which for a single contributed polyline has no observable effect, so
// the order here is left as given).
func (e *Edge) SetLeftConstraint(originating bool, cons []primitives.Point2) {
	if originating {
		e.corners.msBotLeft.set(cons)
	} else {
		e.corners.msTopRight.set(cons)
	}
}

// SetRightConstraint proposes a multi-segment constraint contributed
// by a neighboring edge meeting this one on its right: bottom-right if
// originating, top-left otherwise.
func (e *Edge) SetRightConstraint(originating bool, cons []primitives.Point2) {
	if originating {
		e.corners.msBotRight.set(cons)
	} else {
		e.corners.msTopLeft.set(cons)
	}
}

// ApplyConstraint commits every proposed corner slot to Valid if apply
// is true, or discards it back to Empty otherwise. Every slot is
// handled uniformly — the original left its bottom-left slot's
// self-assignment bug (`msbl_set = msbl_set`) meaning that corner
// never actually reached its valid state; that bug is not reproduced
// here.
func (e *Edge) ApplyConstraint(apply bool) {
	e.corners.msBotRight.apply(apply)
	e.corners.msTopRight.apply(apply)
	e.corners.msTopLeft.apply(apply)
	e.corners.msBotLeft.apply(apply)
}

// intersectCorner resolves a single-segment corner: it casts a ray from
// constraint1's lone point perpendicular to courseDeg (the same
// direction the hull corners themselves are offset along) and
// intersects that ray against side, landing on whichever point of
// side's infinite line the neighboring edge's corner actually meets.
func intersectCorner(constraint1 []primitives.Point2, courseDeg float64, side primitives.Line) (primitives.Point2, bool) {
	if len(constraint1) == 0 {
		return primitives.Point2{}, false
	}
	p := constraint1[0]
	perpDeg := normalizeDeg(courseDeg - 90)
	rayLon, rayLat, _, err := geodesy.Direct(p.Lon, p.Lat, perpDeg, sideExtensionM)
	if err != nil {
		return primitives.Point2{}, false
	}
	ray := primitives.Line{A: p, B: primitives.NewPoint2(rayLon, rayLat)}
	return side.IntersectLine(ray)
}

// IntersectConstraintsAndSides resolves the single-segment corner
// points (conBotLeft/conBotRight if originating, conTopLeft/conTopRight
// otherwise) by intersecting this edge's side lines against whichever
// neighboring edge contributed a single-point constraint there.
func (e *Edge) IntersectConstraintsAndSides(originating bool, leftConstraint, rightConstraint []primitives.Point2) {
	if originating {
		if len(leftConstraint) == 1 {
			if p, ok := intersectCorner(leftConstraint, e.courseDeg, e.SideL); ok {
				e.corners.conBotLeft = p
			}
		}
		if len(rightConstraint) == 1 {
			if p, ok := intersectCorner(rightConstraint, e.courseDeg, e.SideR); ok {
				e.corners.conBotRight = p
			}
		}
	} else {
		if len(leftConstraint) == 1 {
			if p, ok := intersectCorner(leftConstraint, e.courseDeg, e.SideL); ok {
				e.corners.conTopLeft = p
			}
		}
		if len(rightConstraint) == 1 {
			if p, ok := intersectCorner(rightConstraint, e.courseDeg, e.SideR); ok {
				e.corners.conTopRight = p
			}
		}
	}
}
