package internal

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const hullEps = 1e-10

// Convex hull of a planar point set, counterclockwise. Fewer than three
// distinct points, or collinear points, have no hull and return nil.
//
// QuickHull works in three dimensions and does not accept flat input, so the
// points are lifted onto the top and bottom faces of a prism. The prism's
// hull projects straight down onto the planar hull.
func ConvexHull(points []Point) []Point {
	distinct := make([]Point, 0, len(points))
	seen := make(PointSet)
	for _, p := range points {
		if !seen.Contains(p) {
			seen.Add(p)
			distinct = append(distinct, p)
		}
	}
	if len(distinct) < 3 || collinear(distinct) {
		return nil
	}

	height := prismHeight(distinct)
	n := len(distinct)
	lifted := make([]r3.Vector, 0, 2*n)
	for _, p := range distinct {
		lifted = append(lifted, r3.Vector{X: p.X, Y: p.Y, Z: 0})
	}
	for _, p := range distinct {
		lifted = append(lifted, r3.Vector{X: p.X, Y: p.Y, Z: height})
	}

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(lifted, true, true, hullEps)

	onHull := make(map[int]struct{})
	for _, idx := range hull.Indices {
		onHull[idx%n] = struct{}{}
	}
	result := make([]Point, 0, len(onHull))
	for idx := range onHull {
		result = append(result, distinct[idx])
	}
	sortCounterclockwise(result)
	return result
}

// Areas of the mesh and of its convex hull. MeshArea is the plain sum of the
// triangle areas; grown triangles may overlap, so it can count some area twice.
type Coverage struct {
	MeshArea float64
	HullArea float64
}

func (c Coverage) Ratio() float64 {
	if c.HullArea == 0 {
		return 0
	}
	return c.MeshArea / c.HullArea
}

func MeasureCoverage(m *Mesh) Coverage {
	var meshArea float64
	for _, tri := range m.Triangles {
		meshArea += math.Abs(planar.Area(TriangleToPolygon(tri)))
	}
	hull := ConvexHull(m.Points)
	var hullArea float64
	if hull != nil {
		hullArea = math.Abs(planar.Area(ringPolygon(hull)))
	}
	return Coverage{MeshArea: meshArea, HullArea: hullArea}
}

// Closed orb polygon for a triangle, in vertex order.
func TriangleToPolygon(tri Triangle) orb.Polygon {
	points := tri.Points()
	return ringPolygon(points[:])
}

func ringPolygon(points []Point) orb.Polygon {
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

func collinear(points []Point) bool {
	a, b := points[0], points[1]
	for _, c := range points[2:] {
		if Cross(a, b, c) != 0 {
			return false
		}
	}
	return true
}

// Use the largest extent so the prism isn't a sliver compared to its base.
func prismHeight(points []Point) float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return math.Max(maxX-minX, maxY-minY)
}

// Hull points are in convex position, so sorting by angle around their
// centroid puts them in counterclockwise order.
func sortCounterclockwise(points []Point) {
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(points))
	cy /= float64(len(points))
	sort.Slice(points, func(i, j int) bool {
		ai := math.Atan2(points[i].Y-cy, points[i].X-cx)
		aj := math.Atan2(points[j].Y-cy, points[j].X-cx)
		return ai < aj
	})
}
