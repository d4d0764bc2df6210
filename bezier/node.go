// Package bezier flattens ordered contours of cubic/quadratic/linear
// Bezier joins into the piecewise-linear Contour used by the rest of
// the geometry core.
package bezier

import "github.com/flightgear-scenery/tgcore/primitives"

// BezNode is one control point of a BezContour: a location plus
// optional incoming/outgoing control points. Each join from a node to
// the next is classified by two control points: this node's NextCp and
// the next node's PrevCp. With neither the join is a straight edge;
// with exactly one it is a quadratic curve using that one; with both
// it is a cubic curve.
type BezNode struct {
	Loc     primitives.Point2
	PrevCp  primitives.Point2
	NextCp  primitives.Point2
	hasPrev bool
	hasNext bool
}

// NewBezNode returns a node with neither control point set (a corner).
func NewBezNode(loc primitives.Point2) BezNode {
	return BezNode{Loc: loc}
}

// WithNextCp returns a copy of n with an outgoing control point set,
// used when the curve from this node to the next is quadratic or
// cubic.
func (n BezNode) WithNextCp(cp primitives.Point2) BezNode {
	n.NextCp = cp
	n.hasNext = true
	return n
}

// WithPrevCp returns a copy of n with an incoming control point set,
// used when the curve from the previous node to this one is
// quadratic or cubic.
func (n BezNode) WithPrevCp(cp primitives.Point2) BezNode {
	n.PrevCp = cp
	n.hasPrev = true
	return n
}

// HasNextCp reports whether this node has an outgoing control point.
// The join leaving it can still be curved through the next node's
// PrevCp.
func (n BezNode) HasNextCp() bool { return n.hasNext }

// HasPrevCp reports whether this node has an incoming control point.
// The join arriving at it can still be curved through the previous
// node's NextCp.
func (n BezNode) HasPrevCp() bool { return n.hasPrev }
