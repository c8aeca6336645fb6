package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrGrowthStalled is matched (with errors.Is) by every GrowthStalledError.
var ErrGrowthStalled = errors.New("growth stalled")

// Returned when no candidate was accepted within the attempt budget, which
// happens when the configuration can't be satisfied or the reachable area of
// the canvas is used up.
type GrowthStalledError struct {
	// Points added after the seed before the stall
	Inserted int
	// Requested number of insertions
	Target int
	// Candidates tried for the insertion that stalled
	Attempts int
	Stats    Stats
}

func (e *GrowthStalledError) Error() string {
	return fmt.Sprintf("growth stalled after %d of %d insertions: no candidate accepted in %d attempts",
		e.Inserted, e.Target, e.Attempts)
}

func (e *GrowthStalledError) Is(target error) bool {
	return target == ErrGrowthStalled
}
