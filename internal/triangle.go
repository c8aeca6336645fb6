package internal

import (
	"fmt"
	"math"
)

// A triangle keeps its vertices in construction order. Angles() reports
// angles in that order, but equality is over the vertex set only (see Key).
type Triangle struct {
	A, B, C Point
}

// Canonical, comparable form of a triangle's vertex set: the vertices sorted
// by Point.Less.
type TriangleKey [3]Point

type TriangleSet map[TriangleKey]struct{}

func (set TriangleSet) Add(t Triangle) {
	set[t.Key()] = struct{}{}
}

func (set TriangleSet) Contains(t Triangle) bool {
	_, ok := set[t.Key()]
	return ok
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.A, t.B), NewEdge(t.B, t.C), NewEdge(t.C, t.A)}
}

func (t Triangle) Key() TriangleKey {
	k := TriangleKey{t.A, t.B, t.C}
	// Three element insertion sort
	if k[1].Less(k[0]) {
		k[0], k[1] = k[1], k[0]
	}
	if k[2].Less(k[1]) {
		k[1], k[2] = k[2], k[1]
		if k[1].Less(k[0]) {
			k[0], k[1] = k[1], k[0]
		}
	}
	return k
}

func (t Triangle) Equal(other Triangle) bool {
	return t.Key() == other.Key()
}

// A point is inside the triangle if the cross products against all three
// edges have the same sign. A zero cross product has no sign, so points on the
// boundary (or on the extension of an edge through a vertex) are contained.
// There is deliberately no tolerance here.
func (t Triangle) Contains(p Point) bool {
	sign1 := sign(Cross(t.A, t.B, p))
	sign2 := sign(Cross(t.B, t.C, p))
	sign3 := sign(Cross(t.C, t.A, p))

	hasNegative := sign1 < 0 || sign2 < 0 || sign3 < 0
	hasPositive := sign1 > 0 || sign2 > 0 || sign3 > 0

	return !(hasNegative && hasPositive)
}

// Interior angles at A, B and C in degrees, by the law of cosines. The angle
// at C is derived from the other two so the sum is exactly 180. Degenerate
// triangles produce NaN, which is propagated rather than reported.
func (t Triangle) Angles() [3]float64 {
	ab := t.A.DistanceTo(t.B)
	bc := t.B.DistanceTo(t.C)
	ca := t.C.DistanceTo(t.A)

	angleA := degrees(math.Acos((ab*ab + ca*ca - bc*bc) / (2 * ab * ca)))
	angleB := degrees(math.Acos((ab*ab + bc*bc - ca*ca) / (2 * ab * bc)))
	angleC := 180 - angleA - angleB

	return [3]float64{angleA, angleB, angleC}
}

// Smallest interior angle. NaN if any angle is NaN, so a degenerate triangle
// can never pass a ">= threshold" check.
func (t Triangle) MinAngle() float64 {
	angles := t.Angles()
	return math.Min(angles[0], math.Min(angles[1], angles[2]))
}

// Twice the signed area is the cross product; positive for counterclockwise
// triangles.
func (t Triangle) SignedArea() float64 {
	return Cross(t.A, t.B, t.C) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// True for triangles with repeated vertices or collinear vertices.
func (t Triangle) IsDegenerate() bool {
	return t.A == t.B || t.B == t.C || t.C == t.A || Cross(t.A, t.B, t.C) == 0
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(%v, %v, %v)", t.A, t.B, t.C)
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func degrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}
