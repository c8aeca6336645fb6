package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceTo(t *testing.T) {
	a := Point{0, 0}
	b := Point{3, 4}
	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
	assert.Zero(t, b.DistanceTo(b))
	assert.Positive(t, Point{1e-9, 0}.DistanceTo(a))
}

func TestShift(t *testing.T) {
	p := Point{1, 2}
	assert.Equal(t, Point{11, -3}, p.Shift(10, -5))
	assert.Equal(t, Point{1, 2}, p, "shift must not modify the receiver")
	assert.Equal(t, p, p.Shift(0, 0))
}

func TestPointLess(t *testing.T) {
	assert.True(t, Point{0, 5}.Less(Point{1, 0}))
	assert.True(t, Point{1, 0}.Less(Point{1, 1}))
	assert.False(t, Point{1, 1}.Less(Point{1, 1}))
	assert.False(t, Point{2, 0}.Less(Point{1, 9}))
}

func TestCross(t *testing.T) {
	a, b := Point{0, 0}, Point{1, 0}
	assert.Positive(t, Cross(a, b, Point{0, 1}), "counterclockwise")
	assert.Negative(t, Cross(a, b, Point{0, -1}), "clockwise")
	assert.Zero(t, Cross(a, b, Point{5, 0}), "collinear")
}

func TestPointSet(t *testing.T) {
	set := make(PointSet)
	set.Add(Point{1, 2})
	assert.True(t, set.Contains(Point{1, 2}), "points compare by value")
	assert.False(t, set.Contains(Point{2, 1}))
}
