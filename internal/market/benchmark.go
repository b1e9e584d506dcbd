package market

import (
	"context"

	"offercompare-backend/internal/shared/telemetry"
)

// Benchmark is the market position of one compensation figure.
type Benchmark struct {
	Percentile      float64 `json:"marketPercentile"`
	Median          float64 `json:"marketMedian"`
	Range           Range   `json:"marketRange"`
	Category        string  `json:"category"`
	Competitiveness string  `json:"competitiveness"`
	Level           string  `json:"level"`
}

// Benchmarker resolves salary ranges through an ordered source chain,
// typically a Postgres source followed by the embedded tables.
type Benchmarker struct {
	Sources []Source
}

// NewBenchmarker builds a benchmarker over the given sources; with none
// supplied it uses the embedded tables alone.
func NewBenchmarker(sources ...Source) *Benchmarker {
	if len(sources) == 0 {
		sources = []Source{StaticSource{}}
	}
	return &Benchmarker{Sources: sources}
}

// Assess places total compensation within the reference distribution for the
// position/level, adjusted by the location multiplier. It always produces a
// benchmark: when every source misses, the result degrades to the 50th
// percentile with the offer's own compensation as the median.
func (b *Benchmarker) Assess(ctx context.Context, position, location, level string, yearsExperience, universalLevel int, totalComp float64) Benchmark {
	canonical := InferLevelOrDefault(level, position, yearsExperience, universalLevel)
	r, ok := b.resolve(ctx, NormalizePosition(position), canonical)
	if !ok {
		telemetry.Warn("market.lookup_miss", map[string]any{
			"position": position,
			"level":    canonical,
			"fallback": "neutral percentile",
		})
		return Benchmark{
			Percentile:      50,
			Median:          totalComp,
			Range:           Range{Min: totalComp, Median: totalComp, Max: totalComp},
			Category:        "Market Rate",
			Competitiveness: "Competitive",
			Level:           canonical,
		}
	}

	multiplier := LocationMultiplier(location)
	adjusted := Range{
		Min:    r.Min * multiplier,
		Median: r.Median * multiplier,
		Max:    r.Max * multiplier,
	}

	percentile, category := percentileWithin(totalComp, adjusted)
	return Benchmark{
		Percentile:      percentile,
		Median:          adjusted.Median,
		Range:           adjusted,
		Category:        category,
		Competitiveness: competitiveness(percentile),
		Level:           canonical,
	}
}

func (b *Benchmarker) resolve(ctx context.Context, position, level string) (Range, bool) {
	for _, src := range b.Sources {
		r, ok, err := src.Range(ctx, position, level)
		if err != nil {
			telemetry.Warn("market.source_error", map[string]any{
				"position": position,
				"level":    level,
				"error":    err.Error(),
			})
			continue
		}
		if ok {
			return r, true
		}
	}
	return Range{}, false
}

// InferLevelOrDefault prefers an explicit canonical level over inference.
func InferLevelOrDefault(level, position string, yearsExperience, universalLevel int) string {
	switch level {
	case LevelEntry, LevelMid, LevelSenior, LevelStaff, LevelPrincipal, LevelDirector:
		return level
	}
	return InferLevel(position, yearsExperience, universalLevel)
}

// percentileWithin interpolates linearly: at or below the minimum maps to the
// 10th percentile, minimum to median spans 10-50, median to maximum spans
// 50-90, and anything above the maximum is capped at 95.
func percentileWithin(salary float64, r Range) (float64, string) {
	switch {
	case salary <= r.Min:
		return 10, "Below Market"
	case salary <= r.Median:
		span := r.Median - r.Min
		if span <= 0 {
			return 50, "Market Rate"
		}
		return 10 + (salary-r.Min)/span*40, "Market Rate"
	case salary <= r.Max:
		span := r.Max - r.Median
		if span <= 0 {
			return 50, "Market Rate"
		}
		return 50 + (salary-r.Median)/span*40, "Above Market"
	default:
		return 95, "Top Tier"
	}
}

func competitiveness(percentile float64) string {
	switch {
	case percentile >= 75:
		return "Highly Competitive"
	case percentile >= 50:
		return "Competitive"
	case percentile >= 25:
		return "Fair"
	default:
		return "Below Average"
	}
}
