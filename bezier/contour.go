package bezier

import "github.com/flightgear-scenery/tgcore/primitives"

// BezContour is an ordered, implicitly-closed sequence of BezNode: the
// last node joins back to the first, matching every contour in this
// domain being a closed ring.
type BezContour struct {
	Nodes []BezNode
	Hole  bool
}

// NewBezContour builds a BezContour from nodes.
func NewBezContour(nodes []BezNode, hole bool) BezContour {
	return BezContour{Nodes: append([]BezNode(nil), nodes...), Hole: hole}
}

func (c BezContour) at(i int) BezNode {
	n := len(c.Nodes)
	i %= n
	if i < 0 {
		i += n
	}
	return c.Nodes[i]
}

type joinKind int

const (
	joinLinear joinKind = iota
	joinQuadratic
	joinCubic
)

// Flatten subdivides every curved join at Detail points and returns
// the resulting piecewise-linear Contour. Each node contributes its
// own vertex plus, for curved joins, Detail-1 interpolated points
// before the next node's vertex.
func (c BezContour) Flatten() primitives.Contour {
	n := len(c.Nodes)
	if n == 0 {
		return primitives.Contour{Hole: c.Hole}
	}
	out := make([]primitives.Point2, 0, n*Detail)

	for i := 0; i < n; i++ {
		cur := c.at(i)
		next := c.at(i + 1)

		kind, cp1, cp2 := joinLinear, primitives.Point2{}, primitives.Point2{}
		switch {
		case cur.HasNextCp() && next.HasPrevCp():
			kind, cp1, cp2 = joinCubic, cur.NextCp, next.PrevCp
		case cur.HasNextCp():
			kind, cp1 = joinQuadratic, cur.NextCp
		case next.HasPrevCp():
			kind, cp1 = joinQuadratic, next.PrevCp
		}

		if kind == joinLinear {
			out = append(out, cur.Loc)
			continue
		}

		curLoc := cur.Loc
		for p := 0; p < Detail; p++ {
			t := (1.0 / float64(Detail)) * float64(p+1)
			var nextLoc primitives.Point2
			if kind == joinQuadratic {
				nextLoc = quadraticLocation(cur.Loc, cp1, next.Loc, t)
			} else {
				nextLoc = cubicLocation(cur.Loc, cp1, cp2, next.Loc, t)
			}
			out = append(out, curLoc)
			curLoc = nextLoc
		}
	}

	return primitives.Contour{Points: out, Hole: c.Hole}
}
