package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/trappedknight/internal/knight"
	"github.com/papapumpkin/trappedknight/internal/spiral"
)

// recentTrail is how many of the latest moves are drawn in the recent style.
const recentTrail = 8

// Board renders a window of the lattice centred on the knight.
type Board struct {
	Width  int  // available columns
	Height int  // available rows
	Labels bool // draw spiral labels instead of glyphs
}

// cellWidth is the number of columns one lattice square occupies.
func (b Board) cellWidth() int {
	if b.Labels {
		return 5
	}
	return 2
}

// Dims returns how many lattice squares fit across and down.
func (b Board) Dims() (cols, rows int) {
	return max(1, b.Width/b.cellWidth()), max(1, b.Height)
}

// View draws the window around the knight's current square, one text line
// per lattice row, highest y first.
func (b Board) View(path *knight.Path) string {
	cols, rows := b.Dims()
	center := path.Last().Point
	x0 := center.X - cols/2
	y0 := center.Y + rows/2

	candidates := make(map[spiral.Point]bool)
	for _, c := range path.Candidates() {
		candidates[c.Point] = true
	}
	recent := make(map[spiral.Point]bool, recentTrail)
	elements := path.Elements()
	for i := max(0, len(elements)-1-recentTrail); i < len(elements)-1; i++ {
		recent[elements[i].Point] = true
	}

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		var sb strings.Builder
		for c := 0; c < cols; c++ {
			pt := spiral.P(x0+c, y0-r)
			sb.WriteString(b.cell(path, pt, center, candidates, recent))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func (b Board) cell(path *knight.Path, pt, center spiral.Point, candidates, recent map[spiral.Point]bool) string {
	var (
		glyph string
		style lipgloss.Style
	)
	switch {
	case pt == center:
		glyph, style = glyphKnight, styleCellKnight
	case pt == path.Start().Point:
		glyph, style = glyphStart, styleCellStart
	case recent[pt]:
		glyph, style = glyphVisited, styleCellRecent
	case path.Visited(pt):
		glyph, style = glyphVisited, styleCellVisited
	case candidates[pt]:
		glyph, style = glyphCandidate, styleCellCandidate
	default:
		glyph, style = glyphEmpty, styleCellEmpty
	}

	if b.Labels {
		return style.Render(fmt.Sprintf("%4d", spiral.LabelOf(pt))) + " "
	}
	return style.Render(glyph) + " "
}
