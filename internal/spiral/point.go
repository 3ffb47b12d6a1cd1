package spiral

import "fmt"

// Point is a lattice point with integer coordinates. Points are comparable
// and can be used directly as map keys.
type Point struct {
	X int
	Y int
}

// Origin is the point (0, 0), which carries spiral label 1.
var Origin = Point{}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns a new Point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
