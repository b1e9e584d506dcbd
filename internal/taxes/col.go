package taxes

import (
	"strings"

	"offercompare-backend/internal/shared/telemetry"
)

// BaselineAnnualExpenses is the national-baseline annual living cost for a
// single person; per-location multipliers scale it.
const BaselineAnnualExpenses = 60000.0

const remoteMultiplier = 0.50

// Cost-of-living multipliers against the national baseline (1.0). Derived
// from a San Francisco = 1.0 index compressed to major hubs.
var expenseMultipliers = map[string]float64{
	"San Francisco, CA":  1.00,
	"San Jose, CA":       0.95,
	"Palo Alto, CA":      1.10,
	"Mountain View, CA":  1.05,
	"New York, NY":       0.85,
	"Manhattan, NY":      0.90,
	"Brooklyn, NY":       0.75,
	"Seattle, WA":        0.78,
	"Los Angeles, CA":    0.70,
	"San Diego, CA":      0.65,
	"Boston, MA":         0.72,
	"Cambridge, MA":      0.75,
	"Washington, DC":     0.68,
	"Chicago, IL":        0.55,
	"Denver, CO":         0.58,
	"Boulder, CO":        0.58,
	"Portland, OR":       0.60,
	"Austin, TX":         0.52,
	"Dallas, TX":         0.48,
	"Houston, TX":        0.45,
	"Atlanta, GA":        0.45,
	"Miami, FL":          0.50,
	"Orlando, FL":        0.45,
	"Phoenix, AZ":        0.42,
	"Las Vegas, NV":      0.40,
	"Salt Lake City, UT": 0.45,
	"Minneapolis, MN":    0.50,
	"Detroit, MI":        0.35,
	"Pittsburgh, PA":     0.38,
	"Philadelphia, PA":   0.55,
	"Raleigh, NC":        0.40,
	"Durham, NC":         0.40,
	"Nashville, TN":      0.42,
	"Arlington, VA":      0.68,
}

// Common shorthand for locations, mapped to table keys.
var locationSynonyms = map[string]string{
	"sf":             "San Francisco, CA",
	"san francisco":  "San Francisco, CA",
	"bay area":       "San Francisco, CA",
	"silicon valley": "San Jose, CA",
	"nyc":            "New York, NY",
	"new york":       "New York, NY",
	"manhattan":      "Manhattan, NY",
	"brooklyn":       "Brooklyn, NY",
	"la":             "Los Angeles, CA",
	"los angeles":    "Los Angeles, CA",
	"seattle":        "Seattle, WA",
	"boston":         "Boston, MA",
	"cambridge":      "Cambridge, MA",
	"austin":         "Austin, TX",
	"dallas":         "Dallas, TX",
	"houston":        "Houston, TX",
	"chicago":        "Chicago, IL",
	"denver":         "Denver, CO",
	"portland":       "Portland, OR",
	"atlanta":        "Atlanta, GA",
	"miami":          "Miami, FL",
	"phoenix":        "Phoenix, AZ",
	"vegas":          "Las Vegas, NV",
	"las vegas":      "Las Vegas, NV",
	"slc":            "Salt Lake City, UT",
	"salt lake city": "Salt Lake City, UT",
	"minneapolis":    "Minneapolis, MN",
	"philadelphia":   "Philadelphia, PA",
	"philly":         "Philadelphia, PA",
	"pittsburgh":     "Pittsburgh, PA",
	"raleigh":        "Raleigh, NC",
	"durham":         "Durham, NC",
	"nashville":      "Nashville, TN",
	"dc":             "Washington, DC",
	"washington":     "Washington, DC",
	"detroit":        "Detroit, MI",
}

// ExpenseEstimate is the annual-cost estimate for one location.
type ExpenseEstimate struct {
	Location   string  `json:"location"`
	Multiplier float64 `json:"multiplier"`
	Annual     float64 `json:"estimatedAnnualExpenses"`
}

// EstimateAnnualExpenses scales the baseline annual expense figure by the
// location's cost-of-living multiplier. Unknown locations fall back to the
// national baseline (multiplier 1.0) and are logged, never failed.
func EstimateAnnualExpenses(location string) ExpenseEstimate {
	normalized := NormalizeLocation(location)

	multiplier := 1.0
	switch {
	case IsRemote(location):
		multiplier = remoteMultiplier
	default:
		m, ok := expenseMultipliers[normalized]
		if ok {
			multiplier = m
		} else {
			telemetry.Warn("col.lookup_miss", map[string]any{
				"location": location,
				"fallback": "national baseline",
			})
		}
	}

	return ExpenseEstimate{
		Location:   normalized,
		Multiplier: multiplier,
		Annual:     BaselineAnnualExpenses * multiplier,
	}
}

// NormalizeLocation resolves shorthand ("sf", "nyc") and case variants to the
// canonical "City, ST" table keys. Unrecognized locations pass through
// unchanged.
func NormalizeLocation(location string) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return trimmed
	}
	lower := strings.ToLower(trimmed)
	if canonical, ok := locationSynonyms[lower]; ok {
		return canonical
	}
	for known := range expenseMultipliers {
		if strings.EqualFold(known, trimmed) {
			return known
		}
	}
	return trimmed
}

// IsRemote reports whether the location names a remote position.
func IsRemote(location string) bool {
	return strings.Contains(strings.ToLower(location), "remote")
}
