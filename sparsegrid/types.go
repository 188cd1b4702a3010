package sparsegrid

import "fmt"

// Coord addresses one cell anywhere in the signed integer plane.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is an inclusive axis-aligned rectangle.
type Bounds struct {
	Min, Max Coord
}

// Contains reports whether c lies inside b, edges included.
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X && c.Y >= b.Min.Y && c.Y <= b.Max.Y
}

// Width is the number of columns covered by b; zero when inverted.
func (b Bounds) Width() int {
	return max(0, b.Max.X-b.Min.X+1)
}

// Height is the number of rows covered by b; zero when inverted.
func (b Bounds) Height() int {
	return max(0, b.Max.Y-b.Min.Y+1)
}

// extend widens b to include c.
func (b Bounds) extend(c Coord) Bounds {
	b.Min.X = min(b.Min.X, c.X)
	b.Min.Y = min(b.Min.Y, c.Y)
	b.Max.X = max(b.Max.X, c.X)
	b.Max.Y = max(b.Max.Y, c.Y)

	return b
}

func (b Bounds) String() string {
	return fmt.Sprintf("%v-%v", b.Min, b.Max)
}

// Renderer maps a payload to the single rune that represents it on screen.
type Renderer[T any] func(T) rune

// Canvas is the read/write/draw contract shared by sparse grids.
type Canvas[T any] interface {
	Get(c Coord) (T, bool)
	Set(c Coord, v T)
	Draw(window Bounds) []string
}
