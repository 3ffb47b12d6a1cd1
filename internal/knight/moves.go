package knight

import "github.com/papapumpkin/trappedknight/internal/spiral"

// offsets are the eight knight jumps in a fixed order.
var offsets = [8][2]int{
	{1, 2}, {-1, 2}, {-2, 1}, {-2, -1},
	{-1, -2}, {1, -2}, {2, -1}, {2, 1},
}

// Destinations returns the eight points a knight standing on p can jump to.
// The lattice is unbounded, so every destination is always legal.
func Destinations(p spiral.Point) [8]spiral.Point {
	var out [8]spiral.Point
	for i, o := range offsets {
		out[i] = p.Add(o[0], o[1])
	}
	return out
}
