package sparsegrid

var _ Canvas[int] = (*Grid[int])(nil)

// Grid is a sparse coordinate map with an incrementally tracked bounding box.
type Grid[T any] struct {
	cells  map[Coord]T
	bounds Bounds
	render Renderer[T]
}

// New returns an empty grid that draws cells with render.
// It panics if render is nil.
func New[T any](render Renderer[T]) *Grid[T] {
	if render == nil {
		panic("sparsegrid: nil renderer")
	}

	return &Grid[T]{
		cells:  make(map[Coord]T),
		render: render,
	}
}

// Get returns the payload at c and whether c was ever written.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	v, ok := g.cells[c]
	return v, ok
}

// Set stores v at c, replacing any earlier value, and widens the bounding
// box to include c. The first write seeds the box with the single point c.
func (g *Grid[T]) Set(c Coord, v T) {
	if len(g.cells) == 0 {
		g.bounds = Bounds{Min: c, Max: c}
	} else {
		g.bounds = g.bounds.extend(c)
	}
	g.cells[c] = v
}

// Bounds returns the smallest rectangle containing every written cell.
// For an empty grid it is the zero rectangle; see Empty.
func (g *Grid[T]) Bounds() Bounds {
	return g.bounds
}

// Empty reports whether nothing has been written yet.
func (g *Grid[T]) Empty() bool {
	return len(g.cells) == 0
}

// Len returns the number of distinct cells written.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Each calls fn for every written cell in unspecified order.
func (g *Grid[T]) Each(fn func(c Coord, v T)) {
	for c, v := range g.cells {
		fn(c, v)
	}
}

// Count returns how many written cells in window satisfy pred.
func (g *Grid[T]) Count(window Bounds, pred func(T) bool) int {
	n := 0
	if window.Width()*window.Height() <= len(g.cells) {
		for y := window.Min.Y; y <= window.Max.Y; y++ {
			for x := window.Min.X; x <= window.Max.X; x++ {
				if v, ok := g.cells[Coord{X: x, Y: y}]; ok && pred(v) {
					n++
				}
			}
		}
		return n
	}
	for c, v := range g.cells {
		if window.Contains(c) && pred(v) {
			n++
		}
	}

	return n
}
