package knight

import (
	"slices"

	"github.com/papapumpkin/trappedknight/internal/spiral"
)

// Path is the knight's trail so far. It always holds at least the starting
// element, never repeats a point, and only grows through Step.
type Path struct {
	elements []Element
	visited  map[spiral.Point]struct{}
	trapped  bool
}

// Option configures a new Path.
type Option func(*options)

type options struct {
	start spiral.Point
}

// WithStart places the knight on p instead of the origin.
func WithStart(p spiral.Point) Option {
	return func(o *options) { o.start = p }
}

// New returns a path whose only element is the starting point.
func New(opts ...Option) *Path {
	o := options{start: spiral.Origin}
	for _, opt := range opts {
		opt(&o)
	}
	return &Path{
		elements: []Element{NewElement(o.start)},
		visited:  map[spiral.Point]struct{}{o.start: {}},
	}
}

// Step moves the knight to its lowest-labelled unvisited destination and
// returns the new element. It returns false, and leaves the path untouched,
// when no such destination exists; from then on every call returns false.
func (p *Path) Step() (Element, bool) {
	if p.trapped {
		return Element{}, false
	}

	next, ok := p.best()
	if !ok {
		p.trapped = true
		return Element{}, false
	}

	p.elements = append(p.elements, next)
	p.visited[next.Point] = struct{}{}
	return next, true
}

// best picks the minimum-label unvisited destination from the current point.
func (p *Path) best() (Element, bool) {
	var (
		next  Element
		found bool
	)
	for _, d := range Destinations(p.Last().Point) {
		if p.Visited(d) {
			continue
		}
		e := NewElement(d)
		if !found || e.Less(next) {
			next, found = e, true
		}
	}
	return next, found
}

// Advance takes up to n steps and returns how many were taken and whether
// the knight is trapped afterwards.
func (p *Path) Advance(n int) (int, bool) {
	taken := 0
	for taken < n {
		if _, ok := p.Step(); !ok {
			break
		}
		taken++
	}
	return taken, p.trapped
}

// Run steps until the knight is trapped and returns the full trail.
func (p *Path) Run() []Element {
	for {
		if _, ok := p.Step(); !ok {
			return p.Elements()
		}
	}
}

// Candidates returns the unvisited destinations from the current point in
// ascending label order. The first entry, if any, is what Step will choose.
func (p *Path) Candidates() []Element {
	var out []Element
	for _, d := range Destinations(p.Last().Point) {
		if !p.Visited(d) {
			out = append(out, NewElement(d))
		}
	}
	slices.SortFunc(out, func(a, b Element) int { return a.Label - b.Label })
	return out
}

// Elements returns a copy of the trail in visiting order.
func (p *Path) Elements() []Element {
	return slices.Clone(p.elements)
}

// Len is the number of elements on the trail, including the start.
func (p *Path) Len() int {
	return len(p.elements)
}

// Start is the first element of the trail.
func (p *Path) Start() Element {
	return p.elements[0]
}

// Last is the knight's current position.
func (p *Path) Last() Element {
	return p.elements[len(p.elements)-1]
}

// Visited reports whether the knight has stood on pt.
func (p *Path) Visited(pt spiral.Point) bool {
	_, ok := p.visited[pt]
	return ok
}

// VisitedCount is the size of the visited set. It always equals Len.
func (p *Path) VisitedCount() int {
	return len(p.visited)
}

// Trapped reports whether a Step has already found no legal move.
func (p *Path) Trapped() bool {
	return p.trapped
}

// ContainingRing is the smallest ring whose bounding square holds every
// visited point.
func (p *Path) ContainingRing() spiral.Ring {
	var ring spiral.Ring
	for _, e := range p.elements {
		if r := spiral.RingOf(e.Point); r.Number > ring.Number {
			ring = r
		}
	}
	return ring
}

// ContainingLattice is the point lattice of ContainingRing.
func (p *Path) ContainingLattice() [][]spiral.Point {
	return p.ContainingRing().PointLattice()
}
