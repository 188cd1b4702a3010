// Package gridgraph adds geometry-driven helpers on top of linkedgrid.
//
// A linkedgrid.Grid has no implied adjacency; callers decide which cells are
// joined. Most callers derive links from the same few patterns: each cell
// looks at its orthogonal (Conn4) or full (Conn8) neighbourhood, or at a
// custom list of offsets, and a Rule over the two payloads decides whether
// the link exists. This package does that sweep once, and analyses the
// resulting link structure.
//
// What:
//
//   - LinkNeighbors: link every cell to the Conn4/Conn8 neighbours a Rule accepts.
//   - LinkOffsets:   the same for an arbitrary offset list, e.g. the three
//     cells below a falling grain of sand.
//   - ConnectedComponents: groups of cells joined by links in either direction.
//   - Reachable:     every cell reachable from one start cell along links.
//
// Complexity:
//
//   - LinkNeighbors / LinkOffsets: O(W×H×d) where d is the number of offsets.
//   - ConnectedComponents:         O(W×H + L) where L is the number of links.
//   - Reachable:                   O(W×H + L).
//
// Errors:
//
//   - ErrNilGrid: a nil grid was passed.
//   - linkedgrid.ErrOutOfBounds: the start cell of Reachable is outside the grid.
package gridgraph
