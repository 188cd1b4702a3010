package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node id that does not exist.
	ErrNodeNotFound = errors.New("core: node not found")
)

// NodeID is the stable index of a node inside its Graph.
type NodeID int

// EdgeID is the stable index of an edge inside its Graph.
type EdgeID int

// InvalidNode is never returned by AddNode; use it as an "unset" marker.
const InvalidNode NodeID = -1

// Edge is a directed link From→To.
type Edge struct {
	ID   EdgeID
	From NodeID
	To   NodeID
}

// GraphOption configures storage of a Graph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	nodeCap int
	edgeCap int
}

// WithNodeCapacity preallocates room for n nodes.
func WithNodeCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.nodeCap = n
		}
	}
}

// WithEdgeCapacity preallocates room for n edges.
func WithEdgeCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.edgeCap = n
		}
	}
}

// Graph is a directed multigraph whose nodes hold a payload of type N.
//
// nodes[id] is the payload of node id; out[id] lists the EdgeIDs leaving id
// in insertion order; edges[eid] is the edge itself.
type Graph[N any] struct {
	nodes []N
	out   [][]EdgeID
	edges []Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any requested preallocation.
func NewGraph[N any](opts ...GraphOption) *Graph[N] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{
		nodes: make([]N, 0, cfg.nodeCap),
		out:   make([][]EdgeID, 0, cfg.nodeCap),
		edges: make([]Edge, 0, cfg.edgeCap),
	}
}
