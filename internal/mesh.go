package internal

// Mesh holds the growth registries. Both lists are append-only and kept in
// insertion order: Points is used for spacing checks, Triangles for coverage,
// nearest-triangle search and rendering.
type Mesh struct {
	Points    []Point
	Triangles []Triangle

	pointSet    PointSet
	triangleSet TriangleSet
}

func NewMesh() *Mesh {
	return &Mesh{
		pointSet:    make(PointSet),
		triangleSet: make(TriangleSet),
	}
}

// Register the seed triangle. The seed is the only triangle which is added
// together with all three of its points.
func (m *Mesh) addSeed(tri Triangle) {
	if len(m.Points) != 0 || len(m.Triangles) != 0 {
		fatalf("mesh already seeded with %d points", len(m.Points))
	}
	for _, p := range tri.Points() {
		m.addPoint(p)
	}
	m.appendTriangle(tri)
}

// Register a grown point and the triangle connecting it to the mesh.
func (m *Mesh) addGrowth(p Point, tri Triangle) {
	m.addPoint(p)
	m.appendTriangle(tri)
}

func (m *Mesh) addPoint(p Point) {
	if m.pointSet.Contains(p) {
		fatalf("point %v is already registered", p)
	}
	m.pointSet.Add(p)
	m.Points = append(m.Points, p)
}

// This is pulled out so that it's easy to add instrumentation.
func (m *Mesh) appendTriangle(tri Triangle) {
	for _, p := range tri.Points() {
		if !m.pointSet.Contains(p) {
			fatalf("triangle %v uses unregistered point %v", tri, p)
		}
	}
	if m.triangleSet.Contains(tri) {
		fatalf("triangle %v is already in the mesh", tri)
	}
	m.triangleSet.Add(tri)
	m.Triangles = append(m.Triangles, tri)
}

func (m *Mesh) HasPoint(p Point) bool {
	return m.pointSet.Contains(p)
}

func (m *Mesh) HasTriangle(t Triangle) bool {
	return m.triangleSet.Contains(t)
}

// True if any point is strictly closer than minDistance to p.
func (m *Mesh) TooClose(p Point, minDistance float64) bool {
	for _, q := range m.Points {
		if q.DistanceTo(p) < minDistance {
			return true
		}
	}
	return false
}

// True if every point is strictly farther than maxDistance from p. An empty
// mesh is never too far.
func (m *Mesh) TooFar(p Point, maxDistance float64) bool {
	if len(m.Points) == 0 {
		return false
	}
	for _, q := range m.Points {
		if q.DistanceTo(p) <= maxDistance {
			return false
		}
	}
	return true
}

// True if p is inside or on the boundary of any triangle.
func (m *Mesh) Covers(p Point) bool {
	for _, tri := range m.Triangles {
		if tri.Contains(p) {
			return true
		}
	}
	return false
}

// The triangle whose nearest vertex is closest to p. Ties go to the triangle
// that was added first. Returns false on an empty mesh.
func (m *Mesh) ClosestTriangle(p Point) (Triangle, bool) {
	var (
		best     Triangle
		bestDist float64
		found    bool
	)
	for _, tri := range m.Triangles {
		dist := nearestVertexDistance(tri, p)
		if !found || dist < bestDist {
			best, bestDist, found = tri, dist, true
		}
	}
	return best, found
}

func nearestVertexDistance(tri Triangle, p Point) float64 {
	return minFloat(tri.A.DistanceTo(p), tri.B.DistanceTo(p), tri.C.DistanceTo(p))
}

// The two vertices of tri nearest to p, nearest first. Ties keep vertex order
// A, B, C.
func NearestTwoVertices(tri Triangle, p Point) (Point, Point) {
	vertices := tri.Points()
	var dists [3]float64
	for i, v := range vertices {
		dists[i] = v.DistanceTo(p)
	}
	// Stable three element insertion sort, carrying the distances along
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && dists[j] < dists[j-1]; j-- {
			dists[j], dists[j-1] = dists[j-1], dists[j]
			vertices[j], vertices[j-1] = vertices[j-1], vertices[j]
		}
	}
	return vertices[0], vertices[1]
}

// Sum of the triangle areas.
func (m *Mesh) Area() float64 {
	var area float64
	for _, tri := range m.Triangles {
		area += tri.Area()
	}
	return area
}
