// Package spiral numbers the integer lattice with a counter-clockwise square
// spiral and answers geometry questions about that numbering.
//
// The origin carries label 1. Ring i is the set of points at Chebyshev
// distance exactly i from the origin; its labels run from (2i-1)²+1 up to
// (2i+1)², starting just above the bottom-right corner and walking the right,
// top, left and bottom edges in that order:
//
//	37  36  35  34  33  32  31
//	38  17  16  15  14  13  30
//	39  18   5   4   3  12  29
//	40  19   6   1   2  11  28
//	41  20   7   8   9  10  27
//	42  21  22  23  24  25  26
//	43  44  45  46  47  48  49
//
// Coordinates are supported while max(|x|, |y|) ≤ MaxRing, the outermost
// ring whose labels fit in an int; labels are supported up to MaxLabel. Ring
// arithmetic outside that domain overflows and is not checked.
//
// Operations:
//
//   - RingOf:         ring containing a point, O(1).
//   - EdgePositionOf: edge and offset of a point on its ring, O(1).
//   - LabelOf:        spiral label of a point, O(1).
//   - PointOf:        inverse of LabelOf, O(1).
//   - PointLattice:   the (2n+1)×(2n+1) square of points for ring n, O(n²).
//   - LabelLattice:   PointLattice mapped through LabelOf, O(n²).
//
// Errors:
//
//   - ErrNegativeRing: a ring number below zero was requested.
//   - ErrInvalidLabel: a label below one or above MaxLabel was requested.
package spiral
