package sparsegrid

import (
	"fmt"
	"strconv"
	"strings"
)

// rulerStep is the spacing of column labels.
const rulerStep = 5

// Draw renders the inclusive window as text lines:
//
//   - one ruler line per digit of the widest column label; labels sit above
//     every column whose x is a multiple of 5, digits right-aligned and read
//     top to bottom,
//   - an empty separator line,
//   - one line per row: the y label right-aligned to the widest row label,
//     a space, then one rune per cell.
//
// Cells that were never written are drawn as render(zero T).
// An inverted window yields the ruler and separator only.
func (g *Grid[T]) Draw(window Bounds) []string {
	var zero T
	blank := g.render(zero)

	minX, maxX := window.Min.X, window.Max.X
	// First label column at or right of the window's left edge.
	firstLabel, pad := minX, 0
	for firstLabel%rulerStep != 0 {
		firstLabel++
		pad++
	}

	xLen := max(len(strconv.Itoa(firstLabel)), len(strconv.Itoa(maxX)))
	yLen := max(len(strconv.Itoa(window.Min.Y)), len(strconv.Itoa(window.Max.Y)))

	var labels []string
	for l := firstLabel; l <= maxX; l += rulerStep {
		labels = append(labels, fmt.Sprintf("%*d", xLen, l))
	}

	lines := make([]string, 0, xLen+1+window.Height())
	lead := strings.Repeat(" ", pad+yLen+1)
	gap := strings.Repeat(" ", rulerStep-1)
	for i := 0; i < xLen; i++ {
		digits := make([]string, len(labels))
		for j, l := range labels {
			digits[j] = l[i : i+1]
		}
		lines = append(lines, strings.TrimRight(lead+strings.Join(digits, gap), " "))
	}
	lines = append(lines, "")

	var row strings.Builder
	for y := window.Min.Y; y <= window.Max.Y; y++ {
		row.Reset()
		fmt.Fprintf(&row, "%*d ", yLen, y)
		for x := minX; x <= maxX; x++ {
			if v, ok := g.cells[Coord{X: x, Y: y}]; ok {
				row.WriteRune(g.render(v))
			} else {
				row.WriteRune(blank)
			}
		}
		lines = append(lines, row.String())
	}

	return lines
}

// DrawBounds draws the current bounding box, or returns nil when the grid
// is empty.
func (g *Grid[T]) DrawBounds() []string {
	if g.Empty() {
		return nil
	}

	return g.Draw(g.bounds)
}

// String draws the bounding box as a single newline-joined block.
func (g *Grid[T]) String() string {
	return strings.Join(g.DrawBounds(), "\n")
}
