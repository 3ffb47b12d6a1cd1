package spiral

import (
	"fmt"
	"math"
)

// EdgePositionOf locates p on its ring. It reports false for the origin,
// which sits on ring 0 and has no edges.
//
// Corners are resolved by checking right, top, left and bottom in that order,
// so the top-right corner is on the right edge, the top-left on the top edge,
// the bottom-left on the left edge and the bottom-right on the bottom edge.
func EdgePositionOf(p Point) (EdgePosition, bool) {
	n := RingOf(p).Number
	if n == 0 {
		return EdgePosition{}, false
	}
	switch {
	case p.X == n && p.Y != -n:
		return EdgePosition{Edge: Right, Offset: p.Y + n - 1}, true
	case p.Y == n:
		return EdgePosition{Edge: Top, Offset: n - p.X - 1}, true
	case p.X == -n:
		return EdgePosition{Edge: Left, Offset: n - p.Y - 1}, true
	default:
		return EdgePosition{Edge: Bottom, Offset: p.X + n - 1}, true
	}
}

// LabelOf returns the spiral label of p.
func LabelOf(p Point) int {
	ring := RingOf(p)
	pos, ok := EdgePositionOf(p)
	if !ok {
		return 1
	}
	return ring.MinimumValue() + int(pos.Edge)*ring.EdgeLength() + pos.Offset
}

// PointOf returns the point carrying the given label, the inverse of LabelOf.
// Labels outside [1, MaxLabel] return ErrInvalidLabel.
func PointOf(label int) (Point, error) {
	if label < 1 || label > MaxLabel {
		return Point{}, fmt.Errorf("%w: got %d", ErrInvalidLabel, label)
	}
	if label == 1 {
		return Origin, nil
	}

	ring := ringForLabel(label)
	n := ring.Number
	k := label - ring.MinimumValue()
	offset := k % ring.EdgeLength()

	switch Edge(k / ring.EdgeLength()) {
	case Right:
		return Point{X: n, Y: offset - n + 1}, nil
	case Top:
		return Point{X: n - offset - 1, Y: n}, nil
	case Left:
		return Point{X: -n, Y: n - offset - 1}, nil
	default:
		return Point{X: offset - n + 1, Y: -n}, nil
	}
}

// ringForLabel finds the ring n with (2n-1)² < label ≤ (2n+1)² for a label
// in [2, MaxLabel]. The float estimate is clamped to MaxRing, so no ring
// maximum overflows, and then corrected in both directions.
func ringForLabel(label int) Ring {
	n := int(math.Ceil((math.Sqrt(float64(label)) - 1) / 2))
	r := Ring{Number: min(max(n, 0), MaxRing)}
	for r.MaximumValue() < label {
		r.Number++
	}
	for r.Number > 0 && r.MinimumValue() > label {
		r.Number--
	}
	return r
}
