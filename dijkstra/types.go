// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes of a directed graph whose edge weights are
// non-negative. Edges carry no weight in core.Graph; the cost of each edge
// is supplied by a WeightFn (unit weight by default).
//
// Options:
//
//	– Source:           id of the starting node (required, must exist in the graph).
//	– Target:           optional node; the search stops once its distance is final.
//	– WithWeight:       per-edge cost function (default: 1 for every edge).
//	– WithReturnPath:   also return the predecessor map for path reconstruction.
//	– WithMaxDistance:  optional cap on distances to explore; nodes beyond it are skipped.
//	– WithInfEdgeThreshold: edges whose weight is >= threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if Source was never set.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target node does not exist in the graph.
//	– ErrNegativeWeight  if the weight function yields a negative cost.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvgrid/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source node was configured.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target node does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates that the weight function returned a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// WeightFn returns the cost of traversing e. It must be pure.
type WeightFn func(e core.Edge) int64

// UnitWeight assigns cost 1 to every edge.
func UnitWeight(core.Edge) int64 { return 1 }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node (required).
// Target           – node whose finalization ends the search; core.InvalidNode disables it.
// Weight           – edge cost function; nil means UnitWeight.
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – nodes farther than this are not explored. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight ≥ this are skipped. Default math.MaxInt64.
type Options struct {
	Source           core.NodeID
	Target           core.NodeID
	Weight           WeightFn
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node. It must be supplied on every call.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target makes the search stop as soon as id has been finalized.
// Distances to other nodes may then be partial.
func Target(id core.NodeID) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithWeight sets the per-edge cost function. A nil fn keeps UnitWeight.
func WithWeight(fn WeightFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max are not explored.
// Panics with ErrBadMaxDistance when max is negative.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge whose weight is ≥ threshold as impassable.
// Panics with ErrBadInfThreshold when threshold is not positive.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source, Target:   core.InvalidNode (Source must be overridden).
//   - Weight:           UnitWeight.
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64.
//   - InfEdgeThreshold: math.MaxInt64.
func DefaultOptions() Options {
	return Options{
		Source:           core.InvalidNode,
		Target:           core.InvalidNode,
		Weight:           UnitWeight,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
