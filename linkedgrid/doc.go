// Package linkedgrid provides a fixed-size rectangular grid whose cells are
// nodes of a directed graph.
//
// Every cell of a width×height grid is materialized once by New and is never
// removed. Adjacency is not implied by geometry: callers add directed links
// between cells with TryLink according to their own rules (elevation limits,
// falling directions, containment), and then enumerate Neighbors or run
// shortest-path queries over exactly those links.
//
//	g := linkedgrid.New(3, 3, func(x, y int) int { return x + y })
//	_ = g.TryLink(linkedgrid.Coord{X: 0, Y: 0}, linkedgrid.Coord{X: 1, Y: 0})
//	next, _ := g.Neighbors(linkedgrid.Coord{X: 0, Y: 0}) // [(1,0)]
//
// Storage:
//
//   - Cells live in a core.Graph arena. A [y][x] table of core.NodeIDs gives
//     O(1) coordinate→node resolution.
//   - Nodes are created column-major (x outer, y inner), so the node id of
//     (x,y) is x*height+y and the init function passed to New is called in
//     that order, exactly once per cell.
//   - Links are directed, may be asymmetric, and are never deduplicated.
//
// Errors:
//
//	ErrOutOfBounds – any coordinate outside [0,width)×[0,height).
//	                 Returned as *OutOfBoundsError; match with errors.Is.
//	ErrNoPath      – Path found no route between two cells.
//
// No operation partially mutates the grid: a failed TryLink or SetData
// leaves links and payloads exactly as they were.
//
// Concurrency: a Grid has one owner. It performs no locking.
package linkedgrid
