package isect

import (
	"github.com/flightgear-scenery/tgcore/geodesy"
	"github.com/flightgear-scenery/tgcore/primitives"
)

// sideExtensionM is how far past each hull corner the left/right side
// lines are extended, so a neighboring edge's constraint intersection
// never lands exactly on the corner itself.
const sideExtensionM = 10.0

// Edge is one widened corridor segment: a corner hull (BotLeft,
// BotRight, TopLeft, TopRight) offset perpendicular to the Src->Dst
// course by Width/2, plus the two side lines (SideL, SideR) that
// neighboring edges' constraints get intersected against.
type Edge struct {
	id   EdgeID
	g    *Graph
	Src  NodeID
	Dst  NodeID

	WidthM      float64
	SurfaceType int

	BotLeft, BotRight primitives.Point2
	TopLeft, TopRight primitives.Point2
	SideL, SideR      primitives.Line

	// courseDeg is the Src->Dst geodetic course, kept so later corner
	// constraints (IntersectConstraintsAndSides) and the perpendicular
	// -split pass can cast rays perpendicular to it without
	// recomputing geodesy.Inverse every time.
	courseDeg float64

	// RightContour and LeftContour are populated by Complete.
	RightContour []primitives.Point2
	LeftContour  []primitives.Point2

	corners constraints
}

func newEdge(g *Graph, src, dst NodeID, widthM float64, surfaceType int) (*Edge, error) {
	e := &Edge{g: g, Src: src, Dst: dst, WidthM: widthM, SurfaceType: surfaceType}
	if err := e.recomputeGeometry(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Edge) recomputeGeometry() error {
	start := e.g.Node(e.Src).Pos
	end := e.g.Node(e.Dst).Pos

	course, _, _, err := geodesy.Inverse(start.Lon, start.Lat, end.Lon, end.Lat)
	if err != nil {
		return err
	}
	e.courseDeg = course
	leftCourse := normalizeDeg(course - 90)

	blLon, blLat, _, err := geodesy.Direct(start.Lon, start.Lat, leftCourse, e.WidthM/2)
	if err != nil {
		return err
	}
	brLon, brLat, _, err := geodesy.Direct(start.Lon, start.Lat, leftCourse, -e.WidthM/2)
	if err != nil {
		return err
	}
	tlLon, tlLat, _, err := geodesy.Direct(end.Lon, end.Lat, leftCourse, e.WidthM/2)
	if err != nil {
		return err
	}
	trLon, trLat, _, err := geodesy.Direct(end.Lon, end.Lat, leftCourse, -e.WidthM/2)
	if err != nil {
		return err
	}

	e.BotLeft = primitives.NewPoint2(blLon, blLat)
	e.BotRight = primitives.NewPoint2(brLon, brLat)
	e.TopLeft = primitives.NewPoint2(tlLon, tlLat)
	e.TopRight = primitives.NewPoint2(trLon, trLat)

	// Every corner constraint defaults to the unconstrained hull corner;
	// IntersectConstraintsAndSides/SetLeftConstraint+ApplyConstraint
	// override these once a neighboring edge actually contributes a
	// constraint at that corner. Without this, an edge with no
	// neighbors (or whose neighbors never apply) would reconcile to a
	// degenerate (0,0) corner in Complete.
	e.corners.conBotLeft = e.BotLeft
	e.corners.conBotRight = e.BotRight
	e.corners.conTopLeft = e.TopLeft
	e.corners.conTopRight = e.TopRight

	sideBLLon, sideBLLat, _, err := geodesy.Direct(e.BotLeft.Lon, e.BotLeft.Lat, course, -sideExtensionM)
	if err != nil {
		return err
	}
	sideTLLon, sideTLLat, _, err := geodesy.Direct(e.TopLeft.Lon, e.TopLeft.Lat, course, sideExtensionM)
	if err != nil {
		return err
	}
	sideBRLon, sideBRLat, _, err := geodesy.Direct(e.BotRight.Lon, e.BotRight.Lat, course, -sideExtensionM)
	if err != nil {
		return err
	}
	sideTRLon, sideTRLat, _, err := geodesy.Direct(e.TopRight.Lon, e.TopRight.Lat, course, sideExtensionM)
	if err != nil {
		return err
	}

	e.SideL = primitives.Line{A: primitives.NewPoint2(sideBLLon, sideBLLat), B: primitives.NewPoint2(sideTLLon, sideTLLat)}
	e.SideR = primitives.Line{A: primitives.NewPoint2(sideBRLon, sideBRLat), B: primitives.NewPoint2(sideTRLon, sideTRLat)}
	return nil
}

// ID returns the edge's arena ID.
func (e *Edge) ID() EdgeID { return e.id }

// GetHeading returns the course in degrees from Src to Dst if
// originating is true, or Dst to Src otherwise.
func (e *Edge) GetHeading(originating bool) (float64, error) {
	a, b := e.g.Node(e.Src).Pos, e.g.Node(e.Dst).Pos
	if !originating {
		a, b = b, a
	}
	course, _, _, err := geodesy.Inverse(a.Lon, a.Lat, b.Lon, b.Lat)
	return course, err
}

// GetLength returns the Src->Dst ellipsoidal distance in meters.
func (e *Edge) GetLength() (float64, error) {
	a, b := e.g.Node(e.Src).Pos, e.g.Node(e.Dst).Pos
	_, _, dist, err := geodesy.Inverse(a.Lon, a.Lat, b.Lon, b.Lat)
	return dist, err
}

// Split breaks e into two edges at newEnd: e is shortened to end at
// newEnd, and a new edge from newEnd to e's old destination is
// returned. Used when a neighboring corridor's hull corner lands
// partway along e rather than exactly at a shared node.
func (e *Edge) Split(newEnd NodeID) (*Edge, error) {
	oldDst := e.Dst
	e.g.detachEdge(oldDst, e.id)

	e.Dst = newEnd
	if err := e.recomputeGeometry(); err != nil {
		return nil, err
	}
	e.g.nodes[newEnd].edgeIDs = append(e.g.nodes[newEnd].edgeIDs, e.id)

	newID, err := e.g.AddEdge(newEnd, oldDst, e.WidthM, e.SurfaceType)
	if err != nil {
		return nil, err
	}
	return e.g.Edge(newID), nil
}

func normalizeDeg(d float64) float64 {
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}
