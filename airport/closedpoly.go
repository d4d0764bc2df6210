package airport

import (
	"github.com/flightgear-scenery/tgcore/bezier"
	"github.com/flightgear-scenery/tgcore/clipper"
	"github.com/flightgear-scenery/tgcore/isect"
	"github.com/flightgear-scenery/tgcore/polyutil"
	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// PavementInfo carries the texture parameters that distinguish a
// pavement ClosedPoly from a plain boundary one.
type PavementInfo struct {
	SurfaceType       int
	Smoothness        float64
	TextureHeadingDeg float64
}

// ClosedKind tags a ClosedPoly as either textured pavement or a plain
// user-defined boundary (no material, no texturing, used only to grow
// the airport base/clearing rings).
type ClosedKind struct {
	Pavement *PavementInfo
}

// IsPavement reports whether this poly carries pavement texture info.
func (k ClosedKind) IsPavement() bool { return k.Pavement != nil }

// LinearFeature mirrors one contour (boundary or hole) of a pavement
// ClosedPoly as an edge-marking corridor: the same contour, walked
// again through the intersection graph so its corners get widened and
// reconciled the way any other linear feature's would.
type LinearFeature struct {
	Description string
	Hole        bool

	bez bezier.BezContour
}

// ClosedPoly accumulates an airport pavement or boundary polygon one
// Bezier contour at a time, grounded on ClosedPoly's
// AddNode/CloseCurContour/CreateConvexHull/Finish/BuildBtg sequence.
type ClosedPoly struct {
	Kind        ClosedKind
	Description string

	boundary     *bezier.BezContour
	holes        []bezier.BezContour
	curContour   []bezier.BezNode
	curHole      bool

	// LinearFeatures mirrors every contour closed so far when this poly
	// is pavement, labelled per spec as a boundary or hole edge-marking
	// strip. BuildBtg turns these into widened corridor polygons via
	// BuildLinearFeatureCorridors.
	LinearFeatures []LinearFeature

	Hull primitives.Contour

	// PreTess is the flattened, not-yet-cleaned polygon built by
	// Finish. BuildBtg consumes and cleans it.
	PreTess primitives.Polygon
}

// NewClosedPoly starts a plain boundary poly (no pavement texture).
func NewClosedPoly(description string) *ClosedPoly {
	return &ClosedPoly{Kind: ClosedKind{}, Description: description}
}

// NewPavementPoly starts a textured pavement poly.
func NewPavementPoly(description string, info PavementInfo) *ClosedPoly {
	return &ClosedPoly{Kind: ClosedKind{Pavement: &info}, Description: description}
}

// AddNode appends a node to the contour currently being recorded.
func (p *ClosedPoly) AddNode(node bezier.BezNode) {
	p.curContour = append(p.curContour, node)
}

// CloseCurContour finishes the contour currently being recorded: the
// first one closed becomes the boundary, every subsequent one becomes
// a hole.
func (p *ClosedPoly) CloseCurContour() error {
	if len(p.curContour) == 0 {
		return tgerr.New(tgerr.KindInvariantViolation, "airport.CloseCurContour", "no nodes recorded")
	}

	if p.boundary == nil {
		bc := bezier.NewBezContour(p.curContour, false)
		p.boundary = &bc
		if err := p.createConvexHull(); err != nil {
			return err
		}
		if p.Kind.IsPavement() {
			p.LinearFeatures = append(p.LinearFeatures, LinearFeature{
				Description: p.Description + " - boundary",
				Hole:        false,
				bez:         bc,
			})
		}
	} else {
		hc := bezier.NewBezContour(p.curContour, true)
		p.holes = append(p.holes, hc)
		if p.Kind.IsPavement() {
			p.LinearFeatures = append(p.LinearFeatures, LinearFeature{
				Description: p.Description + " - hole",
				Hole:        true,
				bez:         hc,
			})
		}
	}
	p.curContour = nil
	return nil
}

func (p *ClosedPoly) createConvexHull() error {
	if p.boundary == nil || len(p.boundary.Nodes) <= 2 {
		return tgerr.New(tgerr.KindMalformedInput, "airport.CreateConvexHull", "boundary too small")
	}
	pts := make([]primitives.Point2, len(p.boundary.Nodes))
	for i, n := range p.boundary.Nodes {
		pts[i] = n.Loc
	}
	p.Hull = ConvexHull(pts)
	return nil
}

// Finish flattens the recorded boundary and holes into PreTess.
func (p *ClosedPoly) Finish() error {
	if p.boundary == nil {
		return tgerr.New(tgerr.KindInvariantViolation, "airport.Finish", "no boundary recorded")
	}

	outer := p.boundary.Flatten()
	contours := []primitives.Contour{outer}
	for _, h := range p.holes {
		contours = append(contours, h.Flatten())
	}
	p.PreTess = primitives.Polygon{Contours: contours}
	return nil
}

// BuiltPoly is the result of BuildBtg: the cleaned, clipped, split
// polygon ready for tessellation, its material, and its texture
// parameters.
type BuiltPoly struct {
	Polygon   primitives.Polygon
	Material  string
	TexParams primitives.TexParams

	// Corridors holds one widened strip per edge of each LinearFeature
	// mirrored from this poly's contours (boundary plus holes), built by
	// BuildLinearFeatureCorridors.
	Corridors []BuiltPoly
}

// splitThresholdM is the edge length above which BuildBtg inserts
// extra vertices, per the original's tgPolygonSplitLongEdges(..., 400.0).
const splitThresholdM = 400.0

// baseExpandM and clearingExpandM are the airport base/clearing ring
// offsets for pavement polys.
const (
	baseExpandM     = 20.0
	clearingExpandM = 50.0
)

// BuildBtg cleans, clips against accum (every pavement poly placed so
// far), splits long edges, and (for pavement polys) grows the airport
// base/clearing rings. accum, aptBase, and aptClearing are updated in
// place; BuildBtg returns a nil *BuiltPoly and a nil error for a poly
// with no boundary.
func (p *ClosedPoly) BuildBtg(accum, aptBase, aptClearing *primitives.Polygon) (*BuiltPoly, error) {
	if !p.Kind.IsPavement() {
		return nil, tgerr.New(tgerr.KindInvariantViolation, "airport.BuildBtg", "boundary-only poly has no BuildBtg result")
	}
	if len(p.PreTess.Contours) == 0 {
		return nil, nil
	}

	material, err := materialForSurfaceType(p.Kind.Pavement.SurfaceType)
	if err != nil {
		return nil, err
	}

	cleaned := cleanPolygon(p.PreTess)

	clipped, err := clipper.Difference(cleaned, *accum)
	if err != nil {
		return nil, err
	}

	split, err := splitPolygonEdges(clipped, splitThresholdM)
	if err != nil {
		return nil, err
	}

	*accum, err = clipper.Union(cleaned, *accum)
	if err != nil {
		return nil, err
	}

	if aptBase != nil {
		base, err := clipper.Expand(cleaned, baseExpandM)
		if err != nil {
			return nil, err
		}
		safeBase, err := clipper.Expand(cleaned, clearingExpandM)
		if err != nil {
			return nil, err
		}
		*aptClearing, err = clipper.Union(safeBase, *aptClearing)
		if err != nil {
			return nil, err
		}
		*aptBase, err = clipper.Union(base, *aptBase)
		if err != nil {
			return nil, err
		}
	}

	tex := primitives.TexParams{
		Ref:         cleaned.Outer().At(0),
		TileWidthM:  5.0,
		TileHeightM: 5.0,
		HeadingDeg:  p.Kind.Pavement.TextureHeadingDeg,
	}

	corridors, err := p.BuildLinearFeatureCorridors()
	if err != nil {
		return nil, err
	}

	return &BuiltPoly{Polygon: split, Material: material, TexParams: tex, Corridors: corridors}, nil
}

// linearFeatureWidthM is the corridor width used when mirroring a
// pavement contour as an edge-marking linear feature.
const linearFeatureWidthM = 2.0

// BuildLinearFeatureCorridors walks every contour this poly recorded
// (boundary plus holes) and runs it back through the intersection
// graph as a closed chain of corridor edges: one node per flattened
// vertex, one edge per side, each widened to linearFeatureWidthM and
// completed into a left/right contour pair. The two contours of each
// edge are joined into a single corridor strip polygon, so the result
// is what actually exercises isect's corner-constraint resolution and
// perpendicular-split pass from production code rather than only from
// the isect package's own tests.
func (p *ClosedPoly) BuildLinearFeatureCorridors() ([]BuiltPoly, error) {
	if !p.Kind.IsPavement() {
		return nil, nil
	}
	material, err := materialForSurfaceType(p.Kind.Pavement.SurfaceType)
	if err != nil {
		return nil, err
	}

	var out []BuiltPoly
	for _, lf := range p.LinearFeatures {
		contour := lf.bez.Flatten()
		n := len(contour.Points)
		if n < 2 {
			continue
		}

		g := isect.NewGraph()
		nodeIDs := make([]isect.NodeID, n)
		for i, pt := range contour.Points {
			nodeIDs[i] = g.AddNode(pt)
		}

		for i := 0; i < n; i++ {
			src := nodeIDs[i]
			dst := nodeIDs[(i+1)%n]
			edgeID, err := g.AddEdge(src, dst, linearFeatureWidthM, p.Kind.Pavement.SurfaceType)
			if err != nil {
				return nil, err
			}
			e := g.Edge(edgeID)
			if err := e.Complete(); err != nil {
				return nil, err
			}

			strip := corridorStrip(e.LeftContour, e.RightContour)
			if strip.IsEmpty() {
				continue
			}
			out = append(out, BuiltPoly{
				Polygon:  strip,
				Material: material,
				TexParams: primitives.TexParams{
					Ref:         contour.Points[i],
					TileWidthM:  5.0,
					TileHeightM: 5.0,
				},
			})
		}
	}
	return out, nil
}

// corridorStrip joins one edge's left and right boundary contours into
// a single closed ring: the left contour (which runs end to start)
// followed by the right contour (which runs start to end).
func corridorStrip(left, right []primitives.Point2) primitives.Polygon {
	if len(left) == 0 || len(right) == 0 {
		return primitives.Polygon{}
	}
	points := make([]primitives.Point2, 0, len(left)+len(right))
	points = append(points, left...)
	points = append(points, right...)
	return primitives.Polygon{Contours: []primitives.Contour{{Points: points}}}
}

// BuildBoundaryBtg handles the non-pavement (user-defined border)
// BuildBtg overload: it only grows the base/clearing rings with a
// small, fixed offset (2m/5m) rather than the pavement 20m/50m,
// since user-defined boundaries are sometimes drawn exactly on an
// edge.
func (p *ClosedPoly) BuildBoundaryBtg(aptBase, aptClearing *primitives.Polygon) error {
	if len(p.PreTess.Contours) == 0 {
		return nil
	}
	cleaned := cleanPolygon(p.PreTess)

	base, err := clipper.Expand(cleaned, 2.0)
	if err != nil {
		return err
	}
	safeBase, err := clipper.Expand(cleaned, 5.0)
	if err != nil {
		return err
	}
	*aptClearing, err = clipper.Union(safeBase, *aptClearing)
	if err != nil {
		return err
	}
	*aptBase, err = clipper.Union(base, *aptBase)
	return err
}

func cleanPolygon(poly primitives.Polygon) primitives.Polygon {
	poly = polyutil.RemoveBadContours(poly)
	for i, c := range poly.Contours {
		c = polyutil.RemoveDuplicateVertices(c)
		c = polyutil.ReduceDegeneracy(c)
		poly.Contours[i] = c
	}
	return poly
}

func splitPolygonEdges(poly primitives.Polygon, maxM float64) (primitives.Polygon, error) {
	for i, c := range poly.Contours {
		split, err := clipper.SplitLongEdges(c, maxM)
		if err != nil {
			return primitives.Polygon{}, err
		}
		poly.Contours[i] = split
	}
	return poly, nil
}
