// A randomized mesh grower for Go.
//
// This package grows a planar triangle mesh outward from a random seed
// triangle. Each step samples random points until one lies in the band
// between a minimum and maximum distance from the existing points, outside
// every existing triangle, and forms a triangle with no angle below a quality
// threshold when connected to the two nearest vertices of the closest
// triangle. The render package draws the result.
package meshgrow

import (
	"log/slog"

	"github.com/osuushi/meshgrow/internal"
)

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type Mesh = internal.Mesh
type Config = internal.Config
type Stats = internal.Stats
type Coverage = internal.Coverage
type GrowthStalledError = internal.GrowthStalledError

// Matches (with errors.Is) the error returned when growth cannot make
// progress within Config.MaxAttempts candidates.
var ErrGrowthStalled = internal.ErrGrowthStalled

// Default configuration: 200 insertions on a 4000x4000 canvas, points kept
// 200 to 500 units apart, and no triangle angle below 30 degrees.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

func NewEdge(a, b Point) Edge {
	return internal.NewEdge(a, b)
}

// Grow a mesh according to the config.
//
// If growth stalls, the partially grown mesh is returned together with a
// *GrowthStalledError, so callers may still render what was grown.
func Grow(config Config) (mesh *Mesh, stats Stats, err error) {
	defer func() {
		recoveredErr := internal.HandleGrowPanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			err = recoveredErr
		}
	}()
	grower, err := internal.NewGrower(config)
	if err != nil {
		return nil, Stats{}, err
	}
	mesh, err = grower.Run()
	return mesh, grower.Stats(), err
}

// Areas of the mesh and its convex hull.
func MeasureCoverage(mesh *Mesh) Coverage {
	return internal.MeasureCoverage(mesh)
}

// SetLogger configures the logger used while growing. By default nothing is
// logged. Pass nil to restore that.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
