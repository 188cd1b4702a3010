// Package sparsegrid provides an unbounded 2D grid that stores only the
// cells that were written and tracks their bounding box incrementally.
//
// A Grid[T] maps signed (x, y) coordinates to payloads. Reading a cell that
// was never written reports it as absent, which is distinct from a cell that
// was explicitly set to the zero value. Every Set widens the bounding box to
// include the written coordinate; the box never shrinks.
//
// Rendering:
//
//   - A Renderer[T] maps one payload to one rune. It is fixed at construction
//     and should be pure.
//   - Draw renders an inclusive window with a column ruler on top (labels at
//     multiples of 5, digits stacked vertically) and a row ruler on the left.
//     Absent cells are drawn as the renderer's image of T's zero value.
//
//	   0    5
//	   0    0
//
//	 0 S....
//	 1 ..B..
//
// Bounds before the first write:
//
//	Bounds() of an empty grid is the zero rectangle (0,0)-(0,0), which is
//	indistinguishable from a grid holding a single cell at the origin.
//	Check Empty() before trusting it.
//
// Concurrency: a Grid has one owner and performs no locking.
package sparsegrid
