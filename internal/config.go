package internal

import (
	"math"

	"github.com/pkg/errors"
)

const (
	DefaultInsertions  = 200
	DefaultWidth       = 4000
	DefaultHeight      = 4000
	DefaultMinDistance = 200
	DefaultMaxDistance = 500
	DefaultMinAngle    = 30
	DefaultMaxAttempts = 100_000
)

// Config holds every tunable of a growth run.
type Config struct {
	// Number of points (and triangles) added after the seed triangle.
	Insertions int `yaml:"insertions"`

	// Candidates are sampled with integer coordinates in [0, Width] x [0, Height].
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// A candidate strictly closer than MinDistance to any point is rejected, as
	// is a candidate strictly farther than MaxDistance from every point.
	// MaxDistance also bounds the seed triangle's coordinates.
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`

	// Smallest acceptable interior angle of a new triangle, in degrees.
	MinAngle float64 `yaml:"min_angle"`

	// Candidates sampled per insertion before giving up with ErrGrowthStalled.
	MaxAttempts int `yaml:"max_attempts"`

	// Seed for the random source. Runs with the same config and seed produce the
	// same mesh.
	Seed int64 `yaml:"seed"`

	// Optional fixed seed triangle. When nil, the seed triangle is random.
	SeedTriangle *Triangle `yaml:"seed_triangle"`
}

func DefaultConfig() Config {
	return Config{
		Insertions:  DefaultInsertions,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MinDistance: DefaultMinDistance,
		MaxDistance: DefaultMaxDistance,
		MinAngle:    DefaultMinAngle,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate rejects configurations that make no sense at all. Configurations
// which are merely unsatisfiable (e.g. MinDistance > MaxDistance) are allowed,
// and end in ErrGrowthStalled instead.
func (c Config) Validate() error {
	switch {
	case c.Insertions < 0:
		return errors.Errorf("insertions must not be negative, got %d", c.Insertions)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("canvas must have a positive size, got %dx%d", c.Width, c.Height)
	case c.Width == math.MaxInt || c.Height == math.MaxInt:
		// Coordinates are drawn from [0, Width] and [0, Height]
		return errors.Errorf("canvas is too large, got %dx%d", c.Width, c.Height)
	case !(c.MinDistance >= 0) || !(c.MaxDistance >= 0):
		return errors.Errorf("distances must be non-negative numbers, got min %g, max %g", c.MinDistance, c.MaxDistance)
	case math.IsInf(c.MaxDistance, 0) || c.MaxDistance >= math.MaxInt:
		// Seed coordinates are drawn from [0, MaxDistance]
		return errors.Errorf("max distance is too large, got %g", c.MaxDistance)
	case !(c.MinAngle >= 0 && c.MinAngle <= 60):
		// No triangle has a smallest angle above 60 degrees
		return errors.Errorf("min angle must be within [0, 60] degrees, got %g", c.MinAngle)
	case c.MaxAttempts <= 0:
		return errors.Errorf("max attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.SeedTriangle != nil && c.SeedTriangle.IsDegenerate() {
		return errors.Errorf("seed triangle is degenerate: %v", *c.SeedTriangle)
	}
	return nil
}
