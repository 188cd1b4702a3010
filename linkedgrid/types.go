package linkedgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for linkedgrid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("linkedgrid: coordinate out of bounds")

	// ErrNoPath indicates that no chain of links connects two cells.
	ErrNoPath = errors.New("linkedgrid: no path between cells")
)

// Coord addresses one cell. Components are signed so that callers can
// compute neighbours such as (x-1, y) and let the grid reject them.
type Coord struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Point is a materialized cell: its coordinate and its payload.
type Point[T any] struct {
	X, Y int
	Data T
}

// Coord returns the coordinate of p.
func (p Point[T]) Coord() Coord {
	return Coord{X: p.X, Y: p.Y}
}

// OutOfBoundsError reports the offending coordinate and the grid extents.
type OutOfBoundsError struct {
	Coord         Coord
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("linkedgrid: %v outside %dx%d grid", e.Coord, e.Width, e.Height)
}

// Is makes errors.Is(err, ErrOutOfBounds) succeed.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
