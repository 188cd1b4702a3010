package sparsegrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/sparsegrid"
)

func window(x0, y0, x1, y1 int) sparsegrid.Bounds {
	return sparsegrid.Bounds{Min: sparsegrid.Coord{X: x0, Y: y0}, Max: sparsegrid.Coord{X: x1, Y: y1}}
}

// TestDraw_DefaultFill covers the single-beacon scenario.
func TestDraw_DefaultFill(t *testing.T) {
	g := sparsegrid.New(glyph)
	g.Set(sparsegrid.Coord{}, beacon)

	lines := g.Draw(window(0, 0, 1, 1))
	require.Equal(t, []string{
		"  0",
		"",
		"0 B.",
		"1 ..",
	}, lines)
}

func TestDraw_Rulers(t *testing.T) {
	g := sparsegrid.New(glyph)
	g.Set(sparsegrid.Coord{X: -2, Y: 9}, sensor)
	g.Set(sparsegrid.Coord{X: 10, Y: 11}, beacon)

	// Labels 0, 5 and 10 sit above x=0, x=5 and x=10, two digits stacked;
	// row labels are right-aligned to two characters.
	lines := g.Draw(window(-2, 9, 11, 11))
	require.Equal(t, []string{
		"               1",
		"     0    5    0",
		"",
		" 9 S.............",
		"10 ..............",
		"11 ............B.",
	}, lines)
}

func TestDraw_NegativeLabels(t *testing.T) {
	g := sparsegrid.New(glyph)
	g.Set(sparsegrid.Coord{X: -5, Y: -1}, sensor)

	lines := g.Draw(window(-5, -1, 0, -1))
	require.Equal(t, []string{
		"   -",
		"   5    0",
		"",
		"-1 S.....",
	}, lines)
}

func TestDraw_Inverted(t *testing.T) {
	g := sparsegrid.New(glyph)
	g.Set(sparsegrid.Coord{X: 1, Y: 1}, sensor)
	lines := g.Draw(window(3, 3, 1, 1))
	require.Equal(t, []string{"", ""}, lines)
}

func TestDrawBounds(t *testing.T) {
	g := sparsegrid.New(glyph)
	require.Nil(t, g.DrawBounds())
	require.Equal(t, "", g.String())

	g.Set(sparsegrid.Coord{X: 5, Y: 0}, sensor)
	g.Set(sparsegrid.Coord{X: 6, Y: 1}, covered)
	require.Equal(t, []string{
		"  5",
		"",
		"0 S.",
		"1 .#",
	}, g.DrawBounds())
	require.Equal(t, "  5\n\n0 S.\n1 .#", g.String())
}
