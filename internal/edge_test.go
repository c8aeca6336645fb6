package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeEquality(t *testing.T) {
	pairs := [][2]Point{
		{{0, 0}, {1, 1}},
		{{5, -2}, {-3, 7}},
		{{2, 3}, {2, 1}},
	}
	for _, pair := range pairs {
		p1, p2 := pair[0], pair[1]
		assert.Equal(t, NewEdge(p1, p2), NewEdge(p2, p1), "edge %v-%v", p1, p2)
		assert.True(t, NewEdge(p1, p2) == NewEdge(p2, p1))

		set := make(EdgeSet)
		set.Add(NewEdge(p1, p2))
		assert.True(t, set.Contains(NewEdge(p2, p1)))
		assert.Len(t, set, 1)
	}
}

func TestEdgeLengthAndShift(t *testing.T) {
	e := NewEdge(Point{3, 4}, Point{0, 0})
	assert.Equal(t, 5.0, e.Length())
	assert.Equal(t, Point{0, 0}, e.P1, "endpoints are stored in canonical order")

	shifted := e.Shift(10, 10)
	assert.Equal(t, NewEdge(Point{10, 10}, Point{13, 14}), shifted)
	assert.Equal(t, e.Length(), shifted.Length())
}

func TestDistinctEdges(t *testing.T) {
	// Two triangles sharing the edge (1,0)-(0,1)
	triangles := []Triangle{
		{Point{0, 0}, Point{1, 0}, Point{0, 1}},
		{Point{1, 0}, Point{1, 1}, Point{0, 1}},
	}
	edges := DistinctEdges(triangles)
	assert.Len(t, edges, 5)
	assert.ElementsMatch(t, []Edge{
		NewEdge(Point{0, 0}, Point{1, 0}),
		NewEdge(Point{1, 0}, Point{0, 1}),
		NewEdge(Point{0, 1}, Point{0, 0}),
		NewEdge(Point{1, 0}, Point{1, 1}),
		NewEdge(Point{1, 1}, Point{0, 1}),
	}, edges)

	points := DistinctPoints(triangles)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, points)
}
