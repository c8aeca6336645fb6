package internal

import (
	"fmt"
	"log/slog"
)

// Rejection reasons for a candidate point, in the order the checks are made.
type Rejection int

const (
	RejectTooClose Rejection = iota
	RejectTooFar
	RejectCovered
	RejectLowQuality
	rejectionCount
)

func (r Rejection) String() string {
	switch r {
	case RejectTooClose:
		return "too_close"
	case RejectTooFar:
		return "too_far"
	case RejectCovered:
		return "covered"
	case RejectLowQuality:
		return "low_quality"
	}
	return fmt.Sprintf("Rejection(%d)", int(r))
}

// Counters for a growth run.
type Stats struct {
	// Points added after the seed
	Inserted int
	// Candidates sampled by the growth loop, accepted or not
	Attempts int
	// Random seed triangles thrown away for being degenerate
	SeedResamples int

	Rejections [rejectionCount]int
}

func (s *Stats) reject(r Rejection) {
	s.Rejections[r]++
}

func (s Stats) Rejected(r Rejection) int {
	return s.Rejections[r]
}

// Fraction of sampled candidates that were accepted.
func (s Stats) AcceptanceRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Inserted) / float64(s.Attempts)
}

func (s Stats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("inserted", s.Inserted),
		slog.Int("attempts", s.Attempts),
		slog.Int("seed_resamples", s.SeedResamples),
	}
	for r := Rejection(0); r < rejectionCount; r++ {
		attrs = append(attrs, slog.Int(r.String(), s.Rejections[r]))
	}
	return slog.GroupValue(attrs...)
}
