package linkedgrid

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DrawRange writes the width×height rectangle whose top-left cell is corner,
// one text line per row, each cell rendered to a single rune.
//
// The whole rectangle must lie inside the grid. It is checked before any
// output is produced; an *OutOfBoundsError names the first corner outside.
// A zero width or height writes nothing.
func (g *Grid[T]) DrawRange(w io.Writer, corner Coord, width, height int, render func(T) rune) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if !g.InBounds(corner) {
		return g.outOfBounds(corner)
	}
	if far := corner.Add(width-1, height-1); !g.InBounds(far) {
		return g.outOfBounds(far)
	}

	var sb strings.Builder
	sb.Grow((width + 1) * height)
	for y := corner.Y; y < corner.Y+height; y++ {
		for x := corner.X; x < corner.X+width; x++ {
			p, err := g.graph.Node(g.indices[y][x])
			if err != nil {
				return err
			}
			sb.WriteRune(render(p.Data))
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("linkedgrid: draw: %w", err)
	}

	return nil
}

// PrintRange is DrawRange to standard output.
func (g *Grid[T]) PrintRange(corner Coord, width, height int, render func(T) rune) error {
	return g.DrawRange(os.Stdout, corner, width, height, render)
}
