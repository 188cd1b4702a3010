package linkedgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/linkedgrid"
)

// rightDown links every cell to its right and lower neighbour.
func rightDown(t *testing.T, w, h int) *linkedgrid.Grid[int] {
	g := linkedgrid.New(w, h, func(x, y int) int { return 0 })
	g.Visit(func(x, y int) {
		c := linkedgrid.Coord{X: x, Y: y}
		if x+1 < w {
			require.NoError(t, g.TryLink(c, c.Add(1, 0)))
		}
		if y+1 < h {
			require.NoError(t, g.TryLink(c, c.Add(0, 1)))
		}
	})
	return g
}

func TestDistance_RightDownGrid(t *testing.T) {
	g := rightDown(t, 3, 3)

	d, ok, err := g.Distance(linkedgrid.Coord{}, linkedgrid.Coord{X: 2, Y: 2})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(4), d)

	// Links are one-way: the origin is unreachable from the far corner.
	_, ok, err = g.Distance(linkedgrid.Coord{X: 2, Y: 2}, linkedgrid.Coord{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestShortestPaths_AllCells(t *testing.T) {
	g := rightDown(t, 4, 3)
	dist, err := g.ShortestPaths(linkedgrid.Coord{})
	require.NoError(t, err)
	require.Len(t, dist, 12)
	for c, d := range dist {
		require.Equal(t, int64(c.X+c.Y), d, "%v", c)
	}

	// From (1,1) only the lower-right quadrant is reachable.
	dist, err = g.ShortestPaths(linkedgrid.Coord{X: 1, Y: 1})
	require.NoError(t, err)
	require.Len(t, dist, 6)
	_, ok := dist[linkedgrid.Coord{X: 0, Y: 2}]
	require.False(t, ok)
}

func TestShortestPaths_WeightAndMax(t *testing.T) {
	g := rightDown(t, 3, 1)
	// Horizontal step into x=2 costs 5.
	weight := func(from, to linkedgrid.Coord) int64 {
		if to.X == 2 {
			return 5
		}
		return 1
	}
	dist, err := g.ShortestPaths(linkedgrid.Coord{}, linkedgrid.WithWeight(weight))
	require.NoError(t, err)
	require.Equal(t, int64(6), dist[linkedgrid.Coord{X: 2}])

	dist, err = g.ShortestPaths(linkedgrid.Coord{}, linkedgrid.WithWeight(weight), linkedgrid.WithMaxDistance(3))
	require.NoError(t, err)
	require.Equal(t, map[linkedgrid.Coord]int64{{X: 0}: 0, {X: 1}: 1}, dist)
}

func TestShortestPaths_OutOfBounds(t *testing.T) {
	g := rightDown(t, 2, 2)
	_, err := g.ShortestPaths(linkedgrid.Coord{X: 2, Y: 0})
	require.ErrorIs(t, err, linkedgrid.ErrOutOfBounds)
	_, _, err = g.Distance(linkedgrid.Coord{}, linkedgrid.Coord{X: 0, Y: 9})
	require.ErrorIs(t, err, linkedgrid.ErrOutOfBounds)
}

func TestPath(t *testing.T) {
	g := linkedgrid.New(3, 2, func(x, y int) int { return 0 })
	// (0,0)→(0,1)→(1,1)→(2,1)→(2,0), plus a dead end at (1,0).
	steps := [][2]linkedgrid.Coord{
		{{0, 0}, {0, 1}},
		{{0, 1}, {1, 1}},
		{{1, 1}, {2, 1}},
		{{2, 1}, {2, 0}},
		{{0, 0}, {1, 0}},
	}
	for _, s := range steps {
		require.NoError(t, g.TryLink(s[0], s[1]))
	}

	path, err := g.Path(linkedgrid.Coord{}, linkedgrid.Coord{X: 2, Y: 0})
	require.NoError(t, err)
	require.Equal(t, []linkedgrid.Coord{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 0}}, path)

	path, err = g.Path(linkedgrid.Coord{X: 1, Y: 1}, linkedgrid.Coord{X: 1, Y: 1})
	require.NoError(t, err)
	require.Equal(t, []linkedgrid.Coord{{1, 1}}, path)

	_, err = g.Path(linkedgrid.Coord{X: 1, Y: 0}, linkedgrid.Coord{})
	require.ErrorIs(t, err, linkedgrid.ErrNoPath)
}
