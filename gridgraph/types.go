package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvgrid/linkedgrid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates a nil *linkedgrid.Grid was supplied.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Rule decides whether from may be linked to to.
// A nil Rule accepts every pair.
type Rule[T any] func(from, to linkedgrid.Point[T]) bool

// Offsets returns the (dx, dy) neighbour offsets for conn, clockwise from north.
// The slice is freshly allocated on every call.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}
