// Package positions carries the static catalogs backing the offer form:
// common position titles and per-company leveling ladders mapped onto a
// universal scale.
package positions

import "sort"

var commonPositions = map[string][]string{
	"Engineering": {
		"Software Engineer",
		"Senior Software Engineer",
		"Staff Software Engineer",
		"Principal Software Engineer",
		"Frontend Engineer",
		"Backend Engineer",
		"Full Stack Engineer",
		"DevOps Engineer",
		"Site Reliability Engineer",
		"Security Engineer",
		"Mobile Engineer (iOS)",
		"Mobile Engineer (Android)",
	},
	"Management": {
		"Engineering Manager",
		"Senior Engineering Manager",
		"Director of Engineering",
		"Product Manager",
		"Senior Product Manager",
		"Director of Product",
		"Technical Program Manager",
	},
	"Data": {
		"Data Scientist",
		"Senior Data Scientist",
		"Data Engineer",
		"Machine Learning Engineer",
		"Data Analyst",
	},
	"Design": {
		"UX Designer",
		"Senior UX Designer",
		"Product Designer",
		"UX Researcher",
	},
}

// Catalog returns a flat, alphabetically sorted list of all position titles.
func Catalog() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, titles := range commonPositions {
		for _, t := range titles {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// Categories returns the catalog grouped by category, with titles in their
// curated order.
func Categories() map[string][]string {
	out := make(map[string][]string, len(commonPositions))
	for category, titles := range commonPositions {
		out[category] = append([]string(nil), titles...)
	}
	return out
}
