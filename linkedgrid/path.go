package linkedgrid

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/core"
	"github.com/katalvlaran/lvgrid/dijkstra"
)

// PathOption configures a shortest-path query over the grid's links.
type PathOption func(*pathConfig)

type pathConfig struct {
	target  *Coord
	weight  func(from, to Coord) int64
	maxDist *int64
}

// WithTarget stops the search once the distance to c is final.
func WithTarget(c Coord) PathOption {
	return func(pc *pathConfig) {
		pc.target = &c
	}
}

// WithWeight sets the cost of following a link from→to.
// Without it every link costs 1.
func WithWeight(fn func(from, to Coord) int64) PathOption {
	return func(pc *pathConfig) {
		pc.weight = fn
	}
}

// WithMaxDistance leaves cells farther than d out of the result.
func WithMaxDistance(d int64) PathOption {
	return func(pc *pathConfig) {
		pc.maxDist = &d
	}
}

// search translates coordinates to node ids and runs dijkstra.
func (g *Grid[T]) search(src Coord, returnPath bool, opts []PathOption) (map[core.NodeID]int64, map[core.NodeID]core.NodeID, core.NodeID, error) {
	var pc pathConfig
	for _, opt := range opts {
		opt(&pc)
	}

	srcID, err := g.nodeID(src)
	if err != nil {
		return nil, nil, core.InvalidNode, err
	}
	dopts := []dijkstra.Option{dijkstra.Source(srcID)}

	dstID := core.InvalidNode
	if pc.target != nil {
		if dstID, err = g.nodeID(*pc.target); err != nil {
			return nil, nil, core.InvalidNode, err
		}
		dopts = append(dopts, dijkstra.Target(dstID))
	}
	if pc.weight != nil {
		dopts = append(dopts, dijkstra.WithWeight(func(e core.Edge) int64 {
			return pc.weight(g.coordOf(e.From), g.coordOf(e.To))
		}))
	}
	if pc.maxDist != nil {
		dopts = append(dopts, dijkstra.WithMaxDistance(*pc.maxDist))
	}
	if returnPath {
		dopts = append(dopts, dijkstra.WithReturnPath())
	}

	dist, prev, err := dijkstra.Dijkstra(g.graph, dopts...)
	if err != nil {
		return nil, nil, core.InvalidNode, fmt.Errorf("linkedgrid: shortest path from %v: %w", src, err)
	}

	return dist, prev, dstID, nil
}

// ShortestPaths returns the distance from src to every cell reachable
// through links. Cells with no path are absent from the map.
// With WithTarget, only the target's distance is guaranteed minimal.
func (g *Grid[T]) ShortestPaths(src Coord, opts ...PathOption) (map[Coord]int64, error) {
	dist, _, _, err := g.search(src, false, opts)
	if err != nil {
		return nil, err
	}
	out := make(map[Coord]int64, len(dist))
	for id, d := range dist {
		out[g.coordOf(id)] = d
	}

	return out, nil
}

// Distance returns the shortest distance src→dst and whether dst is reachable.
func (g *Grid[T]) Distance(src, dst Coord, opts ...PathOption) (int64, bool, error) {
	opts = append(opts, WithTarget(dst))
	dist, _, dstID, err := g.search(src, false, opts)
	if err != nil {
		return 0, false, err
	}
	d, ok := dist[dstID]

	return d, ok, nil
}

// Path returns the cells of one shortest route src…dst, both included.
// It fails with ErrNoPath when dst cannot be reached.
func (g *Grid[T]) Path(src, dst Coord, opts ...PathOption) ([]Coord, error) {
	opts = append(opts, WithTarget(dst))
	_, prev, dstID, err := g.search(src, true, opts)
	if err != nil {
		return nil, err
	}
	srcID := g.indices[src.Y][src.X]
	ids := dijkstra.PathTo(prev, srcID, dstID)
	if ids == nil {
		return nil, fmt.Errorf("%w: %v→%v", ErrNoPath, src, dst)
	}
	path := make([]Coord, len(ids))
	for i, id := range ids {
		path[i] = g.coordOf(id)
	}

	return path, nil
}
