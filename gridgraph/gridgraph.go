package gridgraph

import (
	"github.com/katalvlaran/lvgrid/linkedgrid"
)

// LinkNeighbors links every cell of g to each in-bounds neighbour selected
// by conn for which rule returns true. It returns the number of links added.
//
// Cells are swept column-major (x outer, y inner) and, per cell, neighbours
// are tried in Offsets(conn) order, so Neighbors of any cell lists its
// targets clockwise from north.
func LinkNeighbors[T any](g *linkedgrid.Grid[T], conn Connectivity, rule Rule[T]) (int, error) {
	return LinkOffsets(g, Offsets(conn), rule)
}

// LinkOffsets is LinkNeighbors with an explicit list of (dx, dy) offsets.
// Offsets that leave the grid are skipped silently.
//
// Complexity: O(W×H×len(offsets)).
func LinkOffsets[T any](g *linkedgrid.Grid[T], offsets [][2]int, rule Rule[T]) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	added := 0
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			from := linkedgrid.Coord{X: x, Y: y}
			src, err := g.At(from)
			if err != nil {
				return added, err
			}
			for _, d := range offsets {
				to := from.Add(d[0], d[1])
				if !g.InBounds(to) {
					continue
				}
				if rule != nil {
					dst, err := g.At(to)
					if err != nil {
						return added, err
					}
					if !rule(src, dst) {
						continue
					}
				}
				if err = g.TryLink(from, to); err != nil {
					return added, err
				}
				added++
			}
		}
	}

	return added, nil
}
