package internal

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Point is an immutable planar coordinate. Points are plain values, so two
// points with the same coordinates are the same point, and points can be used
// directly as map keys.
type Point r2.Point

func (p Point) DistanceTo(q Point) float64 {
	return r2.Point(p).Sub(r2.Point(q)).Norm()
}

// Translate the point. This is only used to move a finished mesh into image
// space; growth never shifts points.
func (p Point) Shift(dx, dy float64) Point {
	return Point(r2.Point(p).Add(r2.Point{X: dx, Y: dy}))
}

// Lexicographic order on X, then Y. This is the total order used to
// canonicalize edges and triangles.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Cross product of (b - a) and (c - a). Positive when a, b, c wind
// counterclockwise, negative when clockwise, and zero when collinear.
func Cross(a, b, c Point) float64 {
	return r2.Point(b).Sub(r2.Point(a)).Cross(r2.Point(c).Sub(r2.Point(a)))
}

type PointSet map[Point]struct{}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}
