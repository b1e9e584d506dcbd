package positions

import (
	"sort"
	"strings"
)

// UniversalLevel describes one step of the universal seniority scale (1-8).
type UniversalLevel struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var universalLevels = []UniversalLevel{
	{1, "Junior", "Entry level / New grad"},
	{2, "Mid-Level", "Individual contributor with some experience"},
	{3, "Senior", "Senior individual contributor / Tech lead"},
	{4, "Staff", "High-level individual contributor / Multi-team lead"},
	{5, "Senior Staff / Principal", "Organization-wide influence"},
	{6, "Principal II / Distinguished", "Strategic technical leadership"},
	{7, "Distinguished II / Fellow", "Industry-level influence"},
	{8, "Senior Fellow", "Top-tier technical visionary"},
}

// Internal company ladders mapped to the universal scale.
var companyLevelMap = map[string]map[string]int{
	"google": {
		"L3": 1, "L4": 2, "L5": 3, "L6": 4, "L7": 5, "L8": 6, "L9": 7, "L10": 8,
	},
	"microsoft": {
		"59": 1, "60": 1, "61": 2, "62": 3, "63": 3, "64": 4, "65": 5, "66": 6, "67": 7, "68": 8,
		"SDE": 1, "SDE II": 2, "SENIOR SDE": 3, "PRINCIPAL SDE": 4, "PARTNER SDE": 6,
	},
	"meta": {
		"E3": 1, "E4": 2, "E5": 3, "E6": 4, "E7": 5, "E8": 6, "E9": 7,
	},
	"amazon": {
		"L4": 1, "L5": 2, "L6": 3, "L7": 4, "L8": 5, "L10": 7,
	},
	"nvidia": {
		"IC1": 1, "IC2": 2, "IC3": 3, "IC4": 4, "IC5": 5, "IC6": 6, "IC7": 7, "IC8": 8,
	},
	"apple": {
		"ICT2": 1, "ICT3": 2, "ICT4": 3, "ICT5": 4, "ICT6": 5,
	},
	"linkedin": {
		"IND1": 1, "IND2": 2, "IND3": 3, "IND4": 4, "IND5": 5, "IND6": 6,
	},
	"stripe": {
		"L1": 1, "L2": 2, "L3": 3, "L4": 4, "L5": 5,
	},
	"uber": {
		"L3": 1, "L4": 2, "L5": 3, "L6": 4, "L7": 5,
	},
	"salesforce": {
		"AMTS": 1, "MTS": 2, "SMTS": 3, "LMTS": 4, "PRINCIPAL": 5,
	},
	"databricks": {
		"L3": 1, "L4": 2, "L5": 3, "L6": 4,
	},
	"snowflake": {
		"L3": 1, "L4": 2, "L5": 3, "L6": 4, "L7": 5,
	},
	"airbnb": {
		"L3": 1, "L4": 2, "L5": 3, "L6": 4, "L7": 5,
	},
}

// Universal maps a company-internal level string ("61", "E5", "IC3") to the
// universal 1-8 scale. Unknown companies or levels report false; callers fall
// back to title/experience inference.
func Universal(company, level string) (int, bool) {
	ladder, ok := companyLevelMap[strings.ToLower(strings.TrimSpace(company))]
	if !ok {
		return 0, false
	}
	v, ok := ladder[strings.ToUpper(strings.TrimSpace(level))]
	return v, ok
}

// Suggestions returns the known internal levels for a company, sorted for
// stable display. Unknown companies get the universal level names instead.
func Suggestions(company string) []string {
	ladder, ok := companyLevelMap[strings.ToLower(strings.TrimSpace(company))]
	if !ok {
		out := make([]string, 0, len(universalLevels))
		for _, ul := range universalLevels {
			out = append(out, ul.Name)
		}
		return out
	}
	out := make([]string, 0, len(ladder))
	for lvl := range ladder {
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool {
		if ladder[out[i]] != ladder[out[j]] {
			return ladder[out[i]] < ladder[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// Scale returns the universal level scale.
func Scale() []UniversalLevel {
	out := make([]UniversalLevel, len(universalLevels))
	copy(out, universalLevels)
	return out
}
