package internal

import "fmt"

// Edge is an undirected segment between two points. Always build edges with
// NewEdge so that the endpoints are stored in canonical order, which makes
// Edge{a, b} and Edge{b, a} compare (and hash) as equal.
type Edge struct {
	P1, P2 Point
}

func NewEdge(a, b Point) Edge {
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{a, b}
}

func (e Edge) Points() [2]Point {
	return [2]Point{e.P1, e.P2}
}

func (e Edge) Length() float64 {
	return e.P1.DistanceTo(e.P2)
}

// Shifting both endpoints by the same amount keeps their relative order, so the
// result is still canonical.
func (e Edge) Shift(dx, dy float64) Edge {
	return Edge{e.P1.Shift(dx, dy), e.P2.Shift(dx, dy)}
}

func (e Edge) String() string {
	return fmt.Sprintf("Edge(%v, %v)", e.P1, e.P2)
}

type EdgeSet map[Edge]struct{}

func (set EdgeSet) Add(e Edge) {
	set[e] = struct{}{}
}

func (set EdgeSet) Contains(e Edge) bool {
	_, ok := set[e]
	return ok
}

// Distinct edges of a list of triangles, in first seen order. Shared edges
// between neighboring triangles are only returned once.
func DistinctEdges(triangles []Triangle) []Edge {
	seen := make(EdgeSet)
	var result []Edge
	for _, tri := range triangles {
		for _, e := range tri.Edges() {
			if seen.Contains(e) {
				continue
			}
			seen.Add(e)
			result = append(result, e)
		}
	}
	return result
}

// Distinct vertices of a list of triangles, in first seen order.
func DistinctPoints(triangles []Triangle) []Point {
	seen := make(PointSet)
	var result []Point
	for _, tri := range triangles {
		for _, p := range tri.Points() {
			if seen.Contains(p) {
				continue
			}
			seen.Add(p)
			result = append(result, p)
		}
	}
	return result
}
