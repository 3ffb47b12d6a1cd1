package spiral

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeRing indicates a ring number below zero.
	ErrNegativeRing = errors.New("spiral: ring number must be non-negative")
	// ErrInvalidLabel indicates a spiral label below one or above MaxLabel.
	ErrInvalidLabel = errors.New("spiral: label out of range")
)

// MaxRing is the outermost ring whose labels all fit in an int, and MaxLabel
// is the last label on it. Points with a coordinate beyond ±MaxRing have no
// representable label.
var (
	MaxRing  = maxRing()
	MaxLabel = Ring{Number: MaxRing}.MaximumValue()
)

// maxRing finds the largest n with (2n+1)² ≤ math.MaxInt.
func maxRing() int {
	w := int(math.Sqrt(float64(math.MaxInt)))
	if w%2 == 0 {
		w--
	}
	for w > 1 && w > math.MaxInt/w {
		w -= 2
	}
	return (w - 1) / 2
}

// Edge identifies the side of a ring a point lies on. The numeric value is
// the edge's order in the spiral walk.
type Edge int

const (
	// Right holds points with x = n and y ≠ -n.
	Right Edge = iota
	// Top holds points with y = n and x ≠ n.
	Top
	// Left holds points with x = -n and y ≠ n.
	Left
	// Bottom holds points with y = -n and x ≠ -n.
	Bottom
)

// String returns the lowercase edge name.
func (e Edge) String() string {
	switch e {
	case Right:
		return "right"
	case Top:
		return "top"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("edge(%d)", int(e))
	}
}

// EdgePosition locates a point on its ring: the edge it belongs to and its
// distance from that edge's first (lowest-labelled) point. Offset lies in
// [0, EdgeLength()-1].
type EdgePosition struct {
	Edge   Edge
	Offset int
}

// Ring is a concentric square ring of the spiral. Ring 0 is the origin alone.
// Use NewRing or RingOf to obtain one; the zero value is ring 0.
type Ring struct {
	Number int
}

// NewRing returns the ring with the given number, or ErrNegativeRing when
// number is negative.
func NewRing(number int) (Ring, error) {
	if number < 0 {
		return Ring{}, fmt.Errorf("%w: got %d", ErrNegativeRing, number)
	}
	return Ring{Number: number}, nil
}

// Width is the side length of the ring's bounding square, 2n+1.
func (r Ring) Width() int {
	return 2*r.Number + 1
}

// MinimumValue is the smallest label on the ring: 1 for ring 0, otherwise one
// more than the previous ring's maximum, (2n-1)²+1.
func (r Ring) MinimumValue() int {
	if r.Number == 0 {
		return 1
	}
	inner := 2*r.Number - 1
	return inner*inner + 1
}

// MaximumValue is the largest label on the ring, (2n+1)².
func (r Ring) MaximumValue() int {
	w := r.Width()
	return w * w
}

// EdgeLength is the number of points on each edge, 2n. Ring 0 has no edges
// and reports 0.
func (r Ring) EdgeLength() int {
	return 2 * r.Number
}

// PointLattice returns every point of the ring's bounding square, one row per
// y from +n down to -n, each row ordered by x from -n to +n.
func (r Ring) PointLattice() [][]Point {
	n := r.Number
	rows := make([][]Point, 0, r.Width())
	for y := n; y >= -n; y-- {
		row := make([]Point, 0, r.Width())
		for x := -n; x <= n; x++ {
			row = append(row, Point{X: x, Y: y})
		}
		rows = append(rows, row)
	}
	return rows
}

// LabelLattice is PointLattice with every point replaced by its label.
func (r Ring) LabelLattice() [][]int {
	points := r.PointLattice()
	labels := make([][]int, len(points))
	for i, row := range points {
		labels[i] = make([]int, len(row))
		for j, p := range row {
			labels[i][j] = LabelOf(p)
		}
	}
	return labels
}

// RingOf returns the ring containing p, numbered max(|x|, |y|).
func RingOf(p Point) Ring {
	return Ring{Number: max(abs(p.X), abs(p.Y))}
}

// PointLattice returns the bounding square of ring n. See Ring.PointLattice.
func PointLattice(n int) ([][]Point, error) {
	r, err := NewRing(n)
	if err != nil {
		return nil, err
	}
	return r.PointLattice(), nil
}

// LabelLattice returns PointLattice(n) with every point replaced by its label.
func LabelLattice(n int) ([][]int, error) {
	r, err := NewRing(n)
	if err != nil {
		return nil, err
	}
	return r.LabelLattice(), nil
}
