// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// directed multigraphs of package core.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from a single source node to every
//     reachable node in O((V + E) log V) time.
//   - Edge costs are supplied by a WeightFn; the default is one per edge,
//     which makes the result a hop count.
//   - The frontier is a binary min-heap ordered by tentative distance.
//     Ties are broken arbitrarily.
//
// Key features:
//
//   - Functional options keep the call signature stable.
//   - Target: stop as soon as one node's distance is final.
//   - ReturnPath: return a predecessor map; PathTo rebuilds the node sequence.
//   - MaxDistance: ignore anything farther than a cap.
//   - InfEdgeThreshold: treat any edge with weight ≥ threshold as impassable.
//
// Result shape:
//
//	func Dijkstra[N any](
//	    g *core.Graph[N],
//	    opts ...Option,
//	) (dist map[core.NodeID]int64, prev map[core.NodeID]core.NodeID, err error)
//
//	  - dist: dist[v] = minimal distance from Source to v. Unreachable nodes
//	    have no entry; there is no "infinite" sentinel.
//	  - prev: prev[v] = predecessor of v on one shortest path. Nil unless
//	    WithReturnPath() is given.
//
// When Target is set the distances of nodes other than the target may be
// tentative (not yet minimal) or missing.
//
// Thread safety: Dijkstra only reads g. Mutating g concurrently is a data race.
package dijkstra
