package knight

import (
	"fmt"

	"github.com/papapumpkin/trappedknight/internal/spiral"
)

// Element pairs a visited point with its spiral label. Elements are ordered
// by label only; the point never takes part in comparisons.
type Element struct {
	Point spiral.Point
	Label int
}

// NewElement labels p.
func NewElement(p spiral.Point) Element {
	return Element{Point: p, Label: spiral.LabelOf(p)}
}

// Less reports whether e has a lower label than other.
func (e Element) Less(other Element) bool {
	return e.Label < other.Label
}

// Equal reports whether e and other carry the same label.
func (e Element) Equal(other Element) bool {
	return e.Label == other.Label
}

func (e Element) String() string {
	return fmt.Sprintf("%4d\t%s", e.Label, e.Point)
}
