package linkedgrid

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/core"
)

// Grid is a width×height grid of payloads of type T joined by directed links.
type Grid[T any] struct {
	width, height int
	graph         *core.Graph[Point[T]]
	indices       [][]core.NodeID // indices[y][x]
}

// New builds a width×height grid, calling init once for every coordinate.
// Cells are created column-major: x in the outer loop, y in the inner one.
// A non-positive width or height yields an empty grid.
//
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, init func(x, y int) T) *Grid[T] {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	g := &Grid[T]{
		width:   width,
		height:  height,
		graph:   core.NewGraph[Point[T]](core.WithNodeCapacity(width * height)),
		indices: make([][]core.NodeID, height),
	}
	for y := range g.indices {
		g.indices[y] = make([]core.NodeID, width)
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			g.indices[y][x] = g.graph.AddNode(Point[T]{X: x, Y: y, Data: init(x, y)})
		}
	}

	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of cells, width*height.
func (g *Grid[T]) Len() int { return g.graph.Order() }

// Links returns the number of links added so far, duplicates included.
func (g *Grid[T]) Links() int { return g.graph.Size() }

// InBounds reports whether c lies within the grid.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid[T]) outOfBounds(c Coord) error {
	return &OutOfBoundsError{Coord: c, Width: g.width, Height: g.height}
}

// nodeID resolves c, failing with *OutOfBoundsError.
func (g *Grid[T]) nodeID(c Coord) (core.NodeID, error) {
	if !g.InBounds(c) {
		return core.InvalidNode, g.outOfBounds(c)
	}

	return g.indices[c.Y][c.X], nil
}

// coordOf inverts the column-major id layout.
func (g *Grid[T]) coordOf(id core.NodeID) Coord {
	return Coord{X: int(id) / g.height, Y: int(id) % g.height}
}

// TryLink adds a directed link from→to. Both coordinates are checked before
// anything is stored; on failure the grid is unchanged.
// Linking the same pair twice stores two links.
func (g *Grid[T]) TryLink(from, to Coord) error {
	u, err := g.nodeID(from)
	if err != nil {
		return err
	}
	v, err := g.nodeID(to)
	if err != nil {
		return err
	}
	if _, err = g.graph.AddEdge(u, v); err != nil {
		return fmt.Errorf("linkedgrid: link %v→%v: %w", from, to, err)
	}

	return nil
}

// Neighbors returns the cells reached by one outgoing link of c, in the order
// the links were added. A cell linked twice appears twice. The result is
// empty, not nil, when c has no links.
//
// No spatial order is implied; callers sort the result when they need one.
func (g *Grid[T]) Neighbors(c Coord) ([]Point[T], error) {
	id, err := g.nodeID(c)
	if err != nil {
		return nil, err
	}
	succ, err := g.graph.Successors(id)
	if err != nil {
		return nil, err
	}
	out := make([]Point[T], 0, len(succ))
	for _, s := range succ {
		p, err := g.graph.Node(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// At returns the cell at c.
func (g *Grid[T]) At(c Coord) (Point[T], error) {
	id, err := g.nodeID(c)
	if err != nil {
		return Point[T]{}, err
	}

	return g.graph.Node(id)
}

// Data returns the payload at (x, y).
func (g *Grid[T]) Data(x, y int) (T, error) {
	p, err := g.At(Coord{X: x, Y: y})
	if err != nil {
		var zero T
		return zero, err
	}

	return p.Data, nil
}

// SetData replaces the payload at (x, y). Links are not affected.
func (g *Grid[T]) SetData(x, y int, data T) error {
	c := Coord{X: x, Y: y}
	id, err := g.nodeID(c)
	if err != nil {
		return err
	}

	return g.graph.SetNode(id, Point[T]{X: x, Y: y, Data: data})
}

// Visit calls fn for every coordinate in row-major order (y outer, x inner).
func (g *Grid[T]) Visit(fn func(x, y int)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y)
		}
	}
}
