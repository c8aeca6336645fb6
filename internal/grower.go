package internal

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/osuushi/meshgrow/dbg"
	"github.com/pkg/errors"
)

// Grower runs the mesh growth loop. It owns its mesh until Run returns.
//
// Every insertion samples candidate points until one passes, in order:
//  1. the spacing filter: not strictly closer than MinDistance to any point,
//     and not strictly farther than MaxDistance from all points
//  2. the coverage filter: not inside or on any existing triangle
//  3. the quality gate: the triangle made from the candidate and the two
//     nearest vertices of the closest triangle has no angle below MinAngle
//
// A rejected candidate is thrown away entirely; the next attempt starts from a
// new random point.
type Grower struct {
	config Config
	rng    *rand.Rand
	mesh   *Mesh
	stats  Stats
	logger *slog.Logger
}

func NewGrower(config Config) (*Grower, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Grower{
		config: config,
		//nolint:gosec
		rng:    rand.New(rand.NewSource(config.Seed)),
		mesh:   NewMesh(),
		logger: Logger(),
	}, nil
}

func (g *Grower) Mesh() *Mesh {
	return g.mesh
}

func (g *Grower) Stats() Stats {
	return g.stats
}

// Seed the mesh and perform all configured insertions. On a stall, the
// partially grown mesh is returned along with a *GrowthStalledError.
func (g *Grower) Run() (*Mesh, error) {
	g.logger.Info("growing mesh",
		"insertions", g.config.Insertions,
		"width", g.config.Width,
		"height", g.config.Height,
		"seed", g.config.Seed)
	if g.logger.Enabled(context.Background(), slog.LevelDebug) {
		g.logger.Debug("growth config", "config", dbg.Dump(g.config))
	}
	if g.config.MinDistance > g.config.MaxDistance {
		g.logger.Warn("min distance exceeds max distance, no candidate can be accepted",
			"min_distance", g.config.MinDistance,
			"max_distance", g.config.MaxDistance)
	}

	if err := g.Seed(); err != nil {
		return g.mesh, err
	}
	for g.stats.Inserted < g.config.Insertions {
		if err := g.Step(); err != nil {
			g.logger.Error("growth stalled", "stats", g.stats)
			return g.mesh, err
		}
	}

	g.logger.Info("mesh grown",
		"points", len(g.mesh.Points),
		"triangles", len(g.mesh.Triangles),
		"stats", g.stats)
	return g.mesh, nil
}

// Add the seed triangle. Random seed points are integer coordinates in
// [0, MaxDistance] on both axes. Random seeds with repeated or collinear
// vertices are drawn again.
func (g *Grower) Seed() error {
	if g.config.SeedTriangle != nil {
		g.mesh.addSeed(*g.config.SeedTriangle)
		g.logAccepted("seed triangle", *g.config.SeedTriangle)
		return nil
	}

	limit := int(g.config.MaxDistance)
	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		tri := Triangle{
			A: g.randomPoint(limit, limit),
			B: g.randomPoint(limit, limit),
			C: g.randomPoint(limit, limit),
		}
		if tri.IsDegenerate() {
			g.stats.SeedResamples++
			continue
		}
		g.mesh.addSeed(tri)
		g.logAccepted("seed triangle", tri)
		return nil
	}
	return &GrowthStalledError{
		Target:   g.config.Insertions,
		Attempts: g.config.MaxAttempts,
		Stats:    g.stats,
	}
}

// Perform one insertion, sampling up to MaxAttempts candidates.
func (g *Grower) Step() error {
	if len(g.mesh.Triangles) == 0 {
		fatalf("cannot grow an unseeded mesh")
	}
	for attempt := 1; attempt <= g.config.MaxAttempts; attempt++ {
		g.stats.Attempts++
		candidate := g.randomPoint(g.config.Width, g.config.Height)
		tri, rejection, ok := g.tryCandidate(candidate)
		if !ok {
			g.stats.reject(rejection)
			continue
		}

		g.mesh.addGrowth(candidate, tri)
		g.stats.Inserted++
		g.logAccepted("triangle added", tri, "attempts", attempt)
		return nil
	}
	return &GrowthStalledError{
		Inserted: g.stats.Inserted,
		Target:   g.config.Insertions,
		Attempts: g.config.MaxAttempts,
		Stats:    g.stats,
	}
}

// Run one candidate through the filters. Returns the triangle that would be
// added, or the reason the candidate was rejected.
func (g *Grower) tryCandidate(candidate Point) (Triangle, Rejection, bool) {
	if g.mesh.TooClose(candidate, g.config.MinDistance) {
		return Triangle{}, RejectTooClose, false
	}
	if g.mesh.TooFar(candidate, g.config.MaxDistance) {
		return Triangle{}, RejectTooFar, false
	}
	if g.mesh.Covers(candidate) {
		return Triangle{}, RejectCovered, false
	}

	closest, ok := g.mesh.ClosestTriangle(candidate)
	if !ok {
		fatalf("no triangle found for candidate %v", candidate)
	}
	first, second := NearestTwoVertices(closest, candidate)
	tri := Triangle{first, second, candidate}

	// NaN fails this comparison, so degenerate triangles are rejected here
	if !(tri.MinAngle() >= g.config.MinAngle) {
		return Triangle{}, RejectLowQuality, false
	}
	return tri, 0, true
}

// Random point with integer coordinates in [0, maxX] x [0, maxY].
func (g *Grower) randomPoint(maxX, maxY int) Point {
	return Point{
		X: float64(g.rng.Intn(maxX + 1)),
		Y: float64(g.rng.Intn(maxY + 1)),
	}
}

func (g *Grower) logAccepted(msg string, tri Triangle, args ...any) {
	if !g.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	args = append([]any{
		"name", dbg.Name(tri.Key()),
		"triangle", tri.String(),
		"min_angle", tri.MinAngle(),
	}, args...)
	g.logger.Debug(msg, args...)
}
