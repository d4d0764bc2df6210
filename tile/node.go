package tile

import (
	"sort"

	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// FaceRef is a weak, index-based back-reference from a Node to one of
// the triangles that uses it, identified by which land-class polygon
// (AreaType, shape, segment) it came from and which of that polygon's
// triangles it is — mirroring TGFaceList's (area,shape,segment,tri)
// tuple.
type FaceRef struct {
	AreaType int
	Shape    int
	Segment  int
	Tri      int
}

// Node is a deduplicated vertex of the tile mesh. Its longitude and
// latitude are set at creation and never mutated; its elevation is
// re-sampled during CalcElevations and averaged with neighbor tiles'
// values in stage 3, both after SortNodes locks the set.
type Node struct {
	Pos            primitives.Point3
	Boundary       bool
	FixedElevation bool
	Normal         [3]float64
	faces          []FaceRef
}

// AddFace records that triangle ref uses this node.
func (n *Node) AddFace(ref FaceRef) { n.faces = append(n.faces, ref) }

// Faces returns every triangle reference recorded against this node.
func (n Node) Faces() []FaceRef { return n.faces }

// NodeSet is the tile's arena of deduplicated nodes: a plain append
// during stage 1, then sorted exactly once per step 11 ("Optimize the node list... no
// more nodes can be added from this point on"). Positions recovered
// by index after sorting are bit-exact, never epsilon-compared.
type NodeSet struct {
	nodes  []Node
	byPos  map[primitives.Point2]int
	sorted bool
}

// NewNodeSet returns an empty, appendable node set.
func NewNodeSet() *NodeSet {
	return &NodeSet{byPos: make(map[primitives.Point2]int)}
}

// Add inserts pos if it is not already present (by exact Point2
// equality) and returns its index, or returns the existing node's
// index. Add panics-by-error once the set has been sorted, since
// sorted indices must stay index-stable for every later step.
func (s *NodeSet) Add(pos primitives.Point2) (int, error) {
	if s.sorted {
		return 0, tgerr.New(tgerr.KindInvariantViolation, "tile.NodeSet.Add", "node added after SortNodes")
	}
	if i, ok := s.byPos[pos]; ok {
		return i, nil
	}
	i := len(s.nodes)
	s.nodes = append(s.nodes, Node{Pos: primitives.NewPoint3(pos, 0)})
	s.byPos[pos] = i
	return i, nil
}

// IndexOf returns the index of the node at pos, exactly as recorded
// by Add — used by LookupNodesPerVertex (step 12) to map a
// triangulation's output vertex positions back onto this set's
// indices after sorting.
func (s *NodeSet) IndexOf(pos primitives.Point2) (int, bool) {
	i, ok := s.byPos[pos]
	return i, ok
}

// Len returns the number of distinct nodes.
func (s *NodeSet) Len() int { return len(s.nodes) }

// At returns a pointer to the node at index i, so callers can set its
// elevation, boundary flag, or normal in place.
func (s *NodeSet) At(i int) *Node { return &s.nodes[i] }

// SortNodes sorts the node arena by (lon,lat) exactly once, rebuilds
// the position index against the new indices, and forbids further
// Add calls, per step 11 ("Optimize the node list... linear add is
// faster than sorted add. no more nodes can be added from this point
// on"). Calling it twice is a no-op.
func (s *NodeSet) SortNodes() {
	if s.sorted {
		return
	}
	sort.SliceStable(s.nodes, func(i, j int) bool {
		a, b := s.nodes[i].Pos.Point2, s.nodes[j].Pos.Point2
		if a.Lon != b.Lon {
			return a.Lon < b.Lon
		}
		return a.Lat < b.Lat
	})
	s.byPos = make(map[primitives.Point2]int, len(s.nodes))
	for i, n := range s.nodes {
		s.byPos[n.Pos.Point2] = i
	}
	s.sorted = true
}

// Sorted reports whether SortNodes has already run.
func (s *NodeSet) Sorted() bool { return s.sorted }

// AddPostSort appends a node discovered after SortNodes has already
// run (a triangulator-introduced Steiner point with no matching grid
// or T-junction vertex). It bypasses the "no adds after sort" latch
// deliberately: such a node still needs a stable index, and nothing
// downstream assumes the whole set stays sorted, only that an index
// once handed out never changes position.
func (s *NodeSet) AddPostSort(pos primitives.Point2) int {
	if i, ok := s.byPos[pos]; ok {
		return i
	}
	i := len(s.nodes)
	s.nodes = append(s.nodes, Node{Pos: primitives.NewPoint3(pos, 0)})
	s.byPos[pos] = i
	return i
}
