package gridgraph

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvgrid/linkedgrid"
)

// ConnectedComponents groups the cells of g that are joined by links,
// ignoring link direction. A cell without links forms its own component.
//
// Components are ordered by their first cell in row-major order; within a
// component cells appear in breadth-first order from that first cell.
//
// Time:   O(W×H + L), where L is the number of links.
// Memory: O(W×H + L).
func ConnectedComponents[T any](g *linkedgrid.Grid[T]) ([][]linkedgrid.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	// Undirected view of the links.
	adj := make(map[linkedgrid.Coord][]linkedgrid.Coord)
	var err error
	g.Visit(func(x, y int) {
		if err != nil {
			return
		}
		from := linkedgrid.Coord{X: x, Y: y}
		nb, nerr := g.Neighbors(from)
		if nerr != nil {
			err = nerr
			return
		}
		for _, p := range nb {
			to := p.Coord()
			adj[from] = append(adj[from], to)
			adj[to] = append(adj[to], from)
		}
	})
	if err != nil {
		return nil, err
	}

	seen := mapset.New[linkedgrid.Coord]()
	var comps [][]linkedgrid.Coord
	g.Visit(func(x, y int) {
		start := linkedgrid.Coord{X: x, Y: y}
		if seen.Has(start) {
			return
		}
		seen.Put(start)
		queue := []linkedgrid.Coord{start}
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen.Has(v) {
					seen.Put(v)
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	})

	return comps, nil
}

// Reachable returns every cell reachable from start by following links
// forward, start included, in breadth-first order.
func Reachable[T any](g *linkedgrid.Grid[T], start linkedgrid.Coord) ([]linkedgrid.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if _, err := g.At(start); err != nil {
		return nil, err
	}

	seen := mapset.New[linkedgrid.Coord]()
	seen.Put(start)
	queue := []linkedgrid.Coord{start}
	for qi := 0; qi < len(queue); qi++ {
		nb, err := g.Neighbors(queue[qi])
		if err != nil {
			return nil, err
		}
		for _, p := range nb {
			c := p.Coord()
			if !seen.Has(c) {
				seen.Put(c)
				queue = append(queue, c)
			}
		}
	}

	return queue, nil
}
