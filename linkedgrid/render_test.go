package linkedgrid_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/linkedgrid"
)

func glyph(b bool) rune {
	if b {
		return '#'
	}
	return '.'
}

func TestDrawRange(t *testing.T) {
	g := linkedgrid.New(4, 3, func(x, y int) bool { return x == y })

	var buf bytes.Buffer
	require.NoError(t, g.DrawRange(&buf, linkedgrid.Coord{}, 4, 3, glyph))
	require.Equal(t, "#...\n.#..\n..#.\n", buf.String())

	buf.Reset()
	require.NoError(t, g.DrawRange(&buf, linkedgrid.Coord{X: 1, Y: 1}, 2, 2, glyph))
	require.Equal(t, "#.\n.#\n", buf.String())
}

func TestDrawRange_OutOfBounds(t *testing.T) {
	g := linkedgrid.New(4, 3, func(int, int) bool { return false })
	cases := []struct {
		name   string
		corner linkedgrid.Coord
		w, h   int
	}{
		{"NegativeCorner", linkedgrid.Coord{X: -1, Y: 0}, 2, 2},
		{"TooWide", linkedgrid.Coord{X: 2, Y: 0}, 3, 1},
		{"TooTall", linkedgrid.Coord{X: 0, Y: 1}, 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := g.DrawRange(&buf, tc.corner, tc.w, tc.h, glyph)
			require.ErrorIs(t, err, linkedgrid.ErrOutOfBounds)
			require.Zero(t, buf.Len(), "nothing may be written on failure")
		})
	}
}

func TestDrawRange_Empty(t *testing.T) {
	g := linkedgrid.New(2, 2, func(int, int) bool { return true })
	var buf bytes.Buffer
	require.NoError(t, g.DrawRange(&buf, linkedgrid.Coord{X: 9, Y: 9}, 0, 5, glyph))
	require.Zero(t, buf.Len())
}
