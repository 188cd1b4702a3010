package core

import "fmt"

// AddNode appends a node holding data and returns its id.
// Ids are assigned densely starting at 0.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(data N) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, data)
	g.out = append(g.out, nil)

	return id
}

// HasNode reports whether id was returned by AddNode on this graph.
func (g *Graph[N]) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns a copy of the payload stored at id.
func (g *Graph[N]) Node(id NodeID) (N, error) {
	if !g.HasNode(id) {
		var zero N
		return zero, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.nodes[id], nil
}

// SetNode replaces the payload stored at id.
// The graph is left untouched when id is unknown.
func (g *Graph[N]) SetNode(id NodeID, data N) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	g.nodes[id] = data

	return nil
}

// AddEdge appends a directed edge from→to and returns its id.
//
// Steps:
//  1. Validate both endpoints; on failure nothing is stored.
//  2. Append the edge to the edge arena.
//  3. Append its id to the adjacency list of from.
//
// Parallel edges and self-loops are accepted.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(from, to NodeID) (EdgeID, error) {
	if !g.HasNode(from) {
		return -1, fmt.Errorf("%w: edge source %d", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return -1, fmt.Errorf("%w: edge target %d", ErrNodeNotFound, to)
	}

	eid := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to})
	g.out[from] = append(g.out[from], eid)

	return eid, nil
}

// Successors returns the targets of every edge leaving id, in the order the
// edges were added. A target appears once per parallel edge.
//
// Complexity: O(out-degree).
func (g *Graph[N]) Successors(id NodeID) ([]NodeID, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	succ := make([]NodeID, 0, len(g.out[id]))
	for _, eid := range g.out[id] {
		succ = append(succ, g.edges[eid].To)
	}

	return succ, nil
}

// OutEdges returns copies of the edges leaving id in insertion order.
func (g *Graph[N]) OutEdges(id NodeID) ([]Edge, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	edges := make([]Edge, 0, len(g.out[id]))
	for _, eid := range g.out[id] {
		edges = append(edges, g.edges[eid])
	}

	return edges, nil
}

// Edges returns a copy of every edge in insertion order.
func (g *Graph[N]) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return edges
}

// Order returns the number of nodes.
func (g *Graph[N]) Order() int { return len(g.nodes) }

// Size returns the number of edges, parallel edges counted separately.
func (g *Graph[N]) Size() int { return len(g.edges) }
