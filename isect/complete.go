package isect

import "github.com/flightgear-scenery/tgcore/primitives"

// onSideEpsilonDeg is the tolerance used when testing whether an
// endpoint of a multi-segment constraint polyline lands on this
// edge's side line.
const onSideEpsilonDeg = 1e-7

// Complete reconciles this edge's corner constraints into simple
// right and left boundary contours. Four cases per side, mirroring
// the original's per-side decision table: no multi-segment (MS)
// corners on that side (use the plain corner-intersection points),
// MS only at the starting corner, MS only at the ending corner, or MS
// at both — each producing a different splice of the MS polyline with
// the single-segment corner points and the edge's own endpoints. Once
// both contours are built, splitPerpendiculars reconciles any
// cross-section mismatch an MS constraint introduced on only one side.
func (e *Edge) Complete() error {
	start := e.g.Node(e.Src).Pos
	end := e.g.Node(e.Dst).Pos

	e.RightContour = buildSide(
		start, end,
		e.corners.msBotRight, e.corners.msTopRight,
		e.corners.conBotRight, e.corners.conTopRight,
		e.SideR,
	)
	e.LeftContour = buildSide(
		end, start,
		e.corners.msTopLeft, e.corners.msBotLeft,
		e.corners.conTopLeft, e.corners.conBotLeft,
		e.SideL,
	)

	return e.splitPerpendiculars()
}

// buildSide builds one boundary contour (right or left) from near/far
// endpoints, the MS slot nearest the near endpoint and the one nearest
// the far endpoint, the corresponding single-segment corner points,
// and the side line used to test where an MS polyline's loose end
// lands.
func buildSide(near, far primitives.Point2, msNear, msFar cornerSlot, conNear, conFar primitives.Point2, side primitives.Line) []primitives.Point2 {
	switch {
	case msNear.empty() && msFar.empty():
		return []primitives.Point2{near, conNear, conFar, far}

	case !msNear.empty() && msFar.empty():
		out := make([]primitives.Point2, 0, len(msNear.points)+3)
		if !near.Equal(msNear.points[0]) {
			out = append(out, near)
		}
		out = append(out, msNear.points...)
		last := msNear.points[len(msNear.points)-1]
		if side.IsOn(last, onSideEpsilonDeg) {
			out = append(out, conFar, far)
		} else {
			out = append(out, far)
		}
		return out

	case msNear.empty() && !msFar.empty():
		out := make([]primitives.Point2, 0, len(msFar.points)+3)
		out = append(out, near)
		first := msFar.points[0]
		if side.IsOn(first, onSideEpsilonDeg) {
			out = append(out, conNear)
		}
		out = append(out, msFar.points...)
		return out

	default:
		out := make([]primitives.Point2, 0, len(msNear.points)+len(msFar.points)+1)
		if !near.Equal(msNear.points[0]) {
			out = append(out, near)
		}
		out = append(out, msNear.points...)
		out = append(out, msFar.points...)
		return out
	}
}
