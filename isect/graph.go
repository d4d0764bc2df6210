// Package isect builds and resolves the intersection-edge skeleton for
// widened linear features (roads, taxiways, runways): a graph of
// corridor edges sharing nodes at junctions, each edge carrying the
// per-corner constraints contributed by the edges that meet it, which
// are then reconciled into a simple left/right boundary contour.
package isect

import "github.com/flightgear-scenery/tgcore/primitives"

// NodeID and EdgeID are stable arena indices into a Graph, never raw
// pointers — the same pattern the teacher's BuilderGraph uses for its
// Vertices/Edges slices, generalized from S2's unit-sphere Point to
// this domain's geodetic Point2.
type NodeID int32
type EdgeID int32

// IntersectionNode is a junction where one or more corridor edges
// meet.
type IntersectionNode struct {
	ID       NodeID
	Pos      primitives.Point2
	edgeIDs  []EdgeID
}

// Graph owns the node and edge arenas for one intersection skeleton.
type Graph struct {
	nodes []IntersectionNode
	edges []*Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a new node at pos and returns its ID.
func (g *Graph) AddNode(pos primitives.Point2) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, IntersectionNode{ID: id, Pos: pos})
	return id
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) *IntersectionNode {
	return &g.nodes[id]
}

// NumNodes returns the number of nodes in the arena.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id EdgeID) *Edge {
	return g.edges[id]
}

// NumEdges returns the number of edges in the arena.
func (g *Graph) NumEdges() int { return len(g.edges) }

// AddEdge builds a corridor edge between src and dst of the given
// width (meters), appends it to the arena, and records the
// association on both endpoint nodes.
func (g *Graph) AddEdge(src, dst NodeID, widthM float64, surfaceType int) (EdgeID, error) {
	e, err := newEdge(g, src, dst, widthM, surfaceType)
	if err != nil {
		return 0, err
	}
	id := EdgeID(len(g.edges))
	e.id = id
	g.edges = append(g.edges, e)
	g.nodes[src].edgeIDs = append(g.nodes[src].edgeIDs, id)
	g.nodes[dst].edgeIDs = append(g.nodes[dst].edgeIDs, id)
	return id, nil
}

// EdgesAt returns the IDs of every edge touching node id.
func (g *Graph) EdgesAt(id NodeID) []EdgeID {
	return g.nodes[id].edgeIDs
}

func (g *Graph) detachEdge(node NodeID, edge EdgeID) {
	ids := g.nodes[node].edgeIDs
	for i, id := range ids {
		if id == edge {
			g.nodes[node].edgeIDs = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}
