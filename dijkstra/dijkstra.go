// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - Edge costs come from Options.Weight; every edge is pre-scanned once so a
//     negative cost fails fast before any distance is published.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable “wall”.
//   - Exploration stops once the minimum tentative distance exceeds MaxDistance,
//     or once Target has been popped from the frontier.
//   - A “lazy” decrease-key strategy is used: duplicates are pushed into the
//     heap and stale entries are ignored when popped.
//   - Unreachable nodes have no entry in the distance map.
package dijkstra

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvgrid/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of g
// reachable through directed edges.
//
// Returns:
//
//   - dist: node → minimum distance from the source. Unreachable nodes are absent.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v ends with the edge u→v.
//     The source has no entry.
//   - err:  a sentinel error for invalid input.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source and, if set, Target must exist (ErrVertexNotFound).
//  4. No edge may weigh less than zero (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[N any](g *core.Graph[N], opts ...Option) (map[core.NodeID]int64, map[core.NodeID]core.NodeID, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == core.InvalidNode {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != core.InvalidNode && !g.HasNode(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}

	// Pre-scan every edge so a bad weight function fails before any work.
	for _, e := range g.Edges() {
		if w := cfg.Weight(e); w < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, w)
		}
	}

	r := &runner[N]{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]int64),
		visited: mapset.New[core.NodeID](),
		pq: heap.New[nodeItem](func(a, b nodeItem) bool {
			return a.dist < b.dist
		}),
	}
	if cfg.ReturnPath {
		r.prev = make(map[core.NodeID]core.NodeID)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N any] struct {
	g       *core.Graph[N]
	options Options
	dist    map[core.NodeID]int64       // best known distance; present only once reached
	prev    map[core.NodeID]core.NodeID // nil unless ReturnPath
	visited mapset.Set[core.NodeID]     // finalized nodes
	pq      *heap.Heap[nodeItem]
}

// init seeds the frontier with the source at distance zero.
func (r *runner[N]) init() {
	r.dist[r.options.Source] = 0
	r.pq.Push(nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop. It repeatedly extracts the closest unfinalized
// node and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - Target has just been finalized.
func (r *runner[N]) process() error {
	for r.pq.Size() > 0 {
		item, _ := r.pq.Pop()
		u := item.id

		// Stale heap entry.
		if r.visited.Has(u) {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited.Put(u)

		if u == r.options.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves the tentative distance of
// its target when the path through u is strictly shorter.
//
// Assumes r.dist[u] is final.
func (r *runner[N]) relax(u core.NodeID) error {
	edges, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %d: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range edges {
		v := e.To
		w := r.options.Weight(e)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		r.pq.Push(nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a frontier entry: a node and its tentative distance.
type nodeItem struct {
	id   core.NodeID
	dist int64
}

// PathTo walks prev back from target to source and returns the node sequence
// source…target. It returns nil when target was not reached.
func PathTo(prev map[core.NodeID]core.NodeID, source, target core.NodeID) []core.NodeID {
	if source == target {
		return []core.NodeID{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}
	var rev []core.NodeID
	for at := target; ; {
		rev = append(rev, at)
		if at == source {
			break
		}
		p, ok := prev[at]
		if !ok {
			return nil
		}
		at = p
	}
	path := make([]core.NodeID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path
}
