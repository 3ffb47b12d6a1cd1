package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/papapumpkin/trappedknight/internal/ansi"
	"github.com/papapumpkin/trappedknight/internal/knight"
	"github.com/papapumpkin/trappedknight/internal/spiral"
)

// Printer writes knight output. Results go to Out as plain text; progress and
// diagnostics go to Err with ANSI styling.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Printer bound to stdout and stderr.
func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Lattice prints a label grid, each label right-justified in four columns.
func (p *Printer) Lattice(labels [][]int) {
	fmt.Fprintln(p.Out, "Lattice:")
	for _, row := range labels {
		fmt.Fprint(p.Out, "    ")
		for _, l := range row {
			fmt.Fprintf(p.Out, "%4d ", l)
		}
		fmt.Fprintln(p.Out)
	}
}

// Path prints the trail, one element per line.
func (p *Printer) Path(elements []knight.Element) {
	fmt.Fprintln(p.Out, "\nPath:")
	for _, e := range elements {
		fmt.Fprintf(p.Out, "    %s\n", e)
	}
}

// Label prints a single point with its label.
func (p *Printer) Label(pt spiral.Point) {
	ring := spiral.RingOf(pt)
	pos, ok := spiral.EdgePositionOf(pt)
	if !ok {
		fmt.Fprintf(p.Out, "%s\t%d\tring 0\n", pt, spiral.LabelOf(pt))
		return
	}
	fmt.Fprintf(p.Out, "%s\t%d\tring %d %s+%d\n", pt, spiral.LabelOf(pt), ring.Number, pos.Edge, pos.Offset)
}

// Outcome reports how a run ended.
func (p *Printer) Outcome(path *knight.Path) {
	last := path.Last()
	moves := path.Len() - 1
	if path.Trapped() {
		fmt.Fprintf(p.Err, "%s on %d at %s after %d moves\n",
			ansi.Styled("✗ trapped", ansi.Red, ansi.Bold), last.Label, last.Point, moves)
		return
	}
	fmt.Fprintf(p.Err, "%s at %d %s after %d moves\n",
		ansi.Styled("◆ stopped", ansi.Yellow, ansi.Bold), last.Label, last.Point, moves)
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, "%s%s\n", ansi.Styled("error: ", ansi.Red, ansi.Bold), msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.Err, ansi.Styled(msg, ansi.Dim))
}
