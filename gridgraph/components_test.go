package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/gridgraph"
	"github.com/katalvlaran/lvgrid/linkedgrid"
)

// land links orthogonal land cells (value 1) only.
func land(t *testing.T, rows [][]int) *linkedgrid.Grid[int] {
	g := linkedgrid.New(len(rows[0]), len(rows), func(x, y int) int { return rows[y][x] })
	both := func(from, to linkedgrid.Point[int]) bool { return from.Data == 1 && to.Data == 1 }
	_, err := gridgraph.LinkNeighbors(g, gridgraph.Conn4, both)
	require.NoError(t, err)
	return g
}

// TestConnectedComponents_Islands:
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Land forms islands of 4 and 2 cells; each water cell is a singleton.
func TestConnectedComponents_Islands(t *testing.T) {
	g := land(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	comps, err := gridgraph.ConnectedComponents(g)
	require.NoError(t, err)

	var sizes []int
	total := 0
	for _, c := range comps {
		sizes = append(sizes, len(c))
		total += len(c)
	}
	require.Equal(t, 12, total, "every cell belongs to exactly one component")
	// Row-major order of first cells: (0,0) water, (1,0) island, (3,0), (2,1), (3,1), (0,2), (1,2), (2,2) island.
	require.Equal(t, []int{1, 4, 1, 1, 1, 1, 1, 2}, sizes)
	require.Equal(t, linkedgrid.Coord{X: 1, Y: 0}, comps[1][0])
}

// TestConnectedComponents_IgnoresDirection joins cells linked one way only.
func TestConnectedComponents_IgnoresDirection(t *testing.T) {
	g := linkedgrid.New(3, 1, func(int, int) int { return 0 })
	require.NoError(t, g.TryLink(linkedgrid.Coord{X: 2}, linkedgrid.Coord{X: 1}))
	require.NoError(t, g.TryLink(linkedgrid.Coord{X: 1}, linkedgrid.Coord{X: 0}))

	comps, err := gridgraph.ConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 3)
}

func TestReachable(t *testing.T) {
	g := linkedgrid.New(3, 1, func(int, int) int { return 0 })
	require.NoError(t, g.TryLink(linkedgrid.Coord{X: 0}, linkedgrid.Coord{X: 1}))
	require.NoError(t, g.TryLink(linkedgrid.Coord{X: 1}, linkedgrid.Coord{X: 2}))
	require.NoError(t, g.TryLink(linkedgrid.Coord{X: 1}, linkedgrid.Coord{X: 0}))

	got, err := gridgraph.Reachable(g, linkedgrid.Coord{X: 0})
	require.NoError(t, err)
	require.Equal(t, []linkedgrid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, got)

	got, err = gridgraph.Reachable(g, linkedgrid.Coord{X: 2})
	require.NoError(t, err)
	require.Equal(t, []linkedgrid.Coord{{X: 2, Y: 0}}, got)

	_, err = gridgraph.Reachable(g, linkedgrid.Coord{X: 3})
	require.ErrorIs(t, err, linkedgrid.ErrOutOfBounds)
}
