package market

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Embedded reference distribution, per role family and level. The figures are
// San Francisco-baseline USD; location multipliers adjust them.
var salaryTables = map[string]map[string]Range{
	"Software Engineer": {
		LevelEntry:     {Min: 85000, Median: 110000, Max: 140000},
		LevelMid:       {Min: 120000, Median: 150000, Max: 190000},
		LevelSenior:    {Min: 160000, Median: 200000, Max: 280000},
		LevelStaff:     {Min: 220000, Median: 280000, Max: 400000},
		LevelPrincipal: {Min: 300000, Median: 380000, Max: 550000},
	},
	"Data Scientist": {
		LevelEntry:  {Min: 95000, Median: 125000, Max: 160000},
		LevelMid:    {Min: 135000, Median: 170000, Max: 220000},
		LevelSenior: {Min: 180000, Median: 230000, Max: 320000},
		LevelStaff:  {Min: 250000, Median: 320000, Max: 450000},
	},
	"Product Manager": {
		LevelEntry:    {Min: 110000, Median: 140000, Max: 180000},
		LevelMid:      {Min: 150000, Median: 190000, Max: 250000},
		LevelSenior:   {Min: 200000, Median: 260000, Max: 350000},
		LevelDirector: {Min: 280000, Median: 370000, Max: 500000},
	},
	"Engineering Manager": {
		LevelSenior: {Min: 180000, Median: 240000, Max: 330000},
		LevelStaff:  {Min: 230000, Median: 300000, Max: 420000},
	},
	"UX Designer": {
		LevelEntry:  {Min: 75000, Median: 95000, Max: 125000},
		LevelMid:    {Min: 105000, Median: 135000, Max: 175000},
		LevelSenior: {Min: 150000, Median: 190000, Max: 250000},
	},
	"DevOps Engineer": {
		LevelEntry:  {Min: 90000, Median: 115000, Max: 145000},
		LevelMid:    {Min: 125000, Median: 160000, Max: 205000},
		LevelSenior: {Min: 170000, Median: 220000, Max: 300000},
	},
	"Site Reliability Engineer": {
		LevelEntry:  {Min: 100000, Median: 130000, Max: 165000},
		LevelMid:    {Min: 140000, Median: 180000, Max: 230000},
		LevelSenior: {Min: 185000, Median: 240000, Max: 330000},
	},
	"Security Engineer": {
		LevelEntry:  {Min: 105000, Median: 135000, Max: 170000},
		LevelMid:    {Min: 145000, Median: 185000, Max: 240000},
		LevelSenior: {Min: 195000, Median: 250000, Max: 340000},
	},
}

const fallbackRoleFamily = "Software Engineer"

// Title shorthand resolved before the table lookup.
var positionSynonyms = map[string]string{
	"swe":                       "Software Engineer",
	"se":                        "Software Engineer",
	"software engineer":         "Software Engineer",
	"sr. swe":                   "Senior Software Engineer",
	"sr swe":                    "Senior Software Engineer",
	"sr. software engineer":     "Senior Software Engineer",
	"sr software engineer":      "Senior Software Engineer",
	"pm":                        "Product Manager",
	"sr. pm":                    "Senior Product Manager",
	"sr pm":                     "Senior Product Manager",
	"em":                        "Engineering Manager",
	"sr. em":                    "Senior Engineering Manager",
	"ds":                        "Data Scientist",
	"sr. ds":                    "Senior Data Scientist",
	"uxd":                       "UX Designer",
	"sr. ux":                    "Senior UX Designer",
	"sre":                       "Site Reliability Engineer",
	"site reliability engineer": "Site Reliability Engineer",
}

// StaticSource serves the embedded tables, resolving position titles to the
// nearest role family.
type StaticSource struct{}

// Range returns the embedded range for the position's role family. The
// Software Engineer family is the fallback for unknown roles, so a miss only
// happens for a level the family has no data for.
func (StaticSource) Range(ctx context.Context, position, level string) (Range, bool, error) {
	_ = ctx
	family := RoleFamily(position)
	levels, ok := salaryTables[family]
	if !ok {
		levels = salaryTables[fallbackRoleFamily]
	}
	r, ok := levels[level]
	return r, ok, nil
}

// NormalizePosition resolves shorthand titles ("swe", "sr. pm") and
// title-cases unknown ones.
func NormalizePosition(position string) string {
	trimmed := strings.TrimSpace(position)
	lower := strings.ToLower(trimmed)
	if canonical, ok := positionSynonyms[lower]; ok {
		return canonical
	}
	words := strings.Fields(lower)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// RoleFamily strips seniority qualifiers from a normalized title and maps it
// to a table key, defaulting to the Software Engineer family.
func RoleFamily(position string) string {
	normalized := NormalizePosition(position)
	stripped := strings.TrimSpace(strings.NewReplacer(
		"Senior ", "",
		"Staff ", "",
		"Principal ", "",
		"Junior ", "",
		"Lead ", "",
	).Replace(normalized))

	if _, ok := salaryTables[stripped]; ok {
		return stripped
	}
	if _, ok := salaryTables[normalized]; ok {
		return normalized
	}
	return fallbackRoleFamily
}

// InferLevel derives a canonical level from a universal level number (when
// known), the title's seniority keywords, and finally years of experience.
func InferLevel(position string, yearsExperience, universalLevel int) string {
	if universalLevel > 0 {
		switch {
		case universalLevel <= 1:
			return LevelEntry
		case universalLevel == 2:
			return LevelMid
		case universalLevel == 3:
			return LevelSenior
		case universalLevel == 4:
			return LevelStaff
		default:
			return LevelPrincipal
		}
	}

	lower := strings.ToLower(position)
	switch {
	case strings.Contains(lower, "principal"), strings.Contains(lower, "distinguished"):
		return LevelPrincipal
	case strings.Contains(lower, "staff"):
		return LevelStaff
	case strings.Contains(lower, "director"):
		return LevelDirector
	case strings.Contains(lower, "senior"), strings.Contains(lower, "sr."), strings.Contains(lower, "lead"), strings.Contains(lower, "manager"):
		return LevelSenior
	}

	switch {
	case yearsExperience >= 10:
		return LevelPrincipal
	case yearsExperience >= 7:
		return LevelStaff
	case yearsExperience >= 5:
		return LevelSenior
	case yearsExperience >= 2:
		return LevelMid
	case yearsExperience > 0:
		return LevelEntry
	}
	return LevelMid
}

// Location salary multipliers relative to the San Francisco baseline.
var locationMultipliers = map[string]float64{
	"San Francisco, CA": 1.00,
	"San Jose, CA":      0.98,
	"Palo Alto, CA":     1.02,
	"New York, NY":      0.95,
	"Seattle, WA":       0.90,
	"Los Angeles, CA":   0.85,
	"Boston, MA":        0.88,
	"Chicago, IL":       0.75,
	"Austin, TX":        0.80,
	"Denver, CO":        0.78,
	"Atlanta, GA":       0.70,
	"Dallas, TX":        0.72,
	"Phoenix, AZ":       0.68,
	"Miami, FL":         0.70,
	"Portland, OR":      0.82,
	"San Diego, CA":     0.83,
	"Washington, DC":    0.85,
	"Philadelphia, PA":  0.78,
	"Minneapolis, MN":   0.75,
	"Detroit, MI":       0.65,
	"Remote":            0.85,
}

const defaultLocationMultiplier = 0.85

// LocationMultiplier returns the salary multiplier for a location, defaulting
// for unrecognized ones.
func LocationMultiplier(location string) float64 {
	trimmed := strings.TrimSpace(location)
	for known, m := range locationMultipliers {
		if strings.EqualFold(known, trimmed) {
			return m
		}
	}
	if strings.Contains(strings.ToLower(trimmed), "remote") {
		return locationMultipliers["Remote"]
	}
	return defaultLocationMultiplier
}
