// Package market maps an offer's compensation onto a reference salary
// distribution and yields a percentile and median. Lookup misses never
// surface as errors; the chain degrades down to a neutral default so that
// scoring always has a benchmark to work with.
package market

import "context"

// Range is a salary distribution summary for one position/level cell.
type Range struct {
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// Source supplies salary ranges for canonical (position, level) pairs.
// The boolean result distinguishes a miss from an error; both cause the
// benchmarker to fall through to the next source.
type Source interface {
	Range(ctx context.Context, position, level string) (Range, bool, error)
}

// Canonical experience levels used as table keys.
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelStaff     = "staff"
	LevelPrincipal = "principal"
	LevelDirector  = "director"
)
