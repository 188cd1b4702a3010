// Package core provides the arena-backed directed multigraph that the grid
// packages of lvgrid are built on.
//
// A Graph[N] owns a dense slice of node payloads and a slice of edges.
// Every node is addressed by a NodeID, an opaque index handed out by AddNode
// that stays valid for the lifetime of the graph: nodes are never removed,
// so ids are never reused or shifted.
//
// Edges are directed and carry no weight of their own. Weights are supplied
// at query time (see package dijkstra), which lets the same storage serve
// different movement rules. Parallel edges and self-loops are accepted and
// kept; nothing is deduplicated.
//
// Adjacency is stored as per-source lists of edge ids, so Successors and
// OutEdges return edges in the order they were added:
//
//	g := core.NewGraph[string]()
//	a := g.AddNode("A")
//	b := g.AddNode("B")
//	_, _ = g.AddEdge(a, b)
//	_, _ = g.AddEdge(a, b) // kept: Successors(a) == [b b]
//
// Core Methods:
//
//	AddNode(data N) NodeID                         // O(1) amortized
//	AddEdge(from, to NodeID) (EdgeID, error)       // O(1) amortized
//	Node(id) (N, error) / SetNode(id, N) error     // O(1)
//	Successors(id) ([]NodeID, error)               // O(out-degree)
//	OutEdges(id) ([]Edge, error)                   // O(out-degree)
//	Edges() []Edge                                 // O(E)
//	Order() int / Size() int                       // O(1)
//
// Errors:
//
//	ErrNodeNotFound – an id that was never returned by AddNode.
//
// Concurrency: a Graph has a single owner and performs no locking. Callers
// that share one across goroutines must synchronize externally.
package core
