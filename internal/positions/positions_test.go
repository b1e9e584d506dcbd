package positions

import (
	"sort"
	"testing"
)

func TestCatalogSortedAndDeduplicated(t *testing.T) {
	catalog := Catalog()
	if len(catalog) == 0 {
		t.Fatalf("expected a non-empty catalog")
	}
	if !sort.StringsAreSorted(catalog) {
		t.Fatalf("expected catalog sorted")
	}
	seen := map[string]bool{}
	for _, title := range catalog {
		if seen[title] {
			t.Fatalf("duplicate title %q", title)
		}
		seen[title] = true
	}
	if !seen["Senior Software Engineer"] {
		t.Fatalf("expected Senior Software Engineer in catalog")
	}
}

func TestCategoriesReturnsCopies(t *testing.T) {
	a := Categories()
	a["Engineering"][0] = "mutated"
	b := Categories()
	if b["Engineering"][0] == "mutated" {
		t.Fatalf("expected Categories to return independent copies")
	}
}

func TestUniversalLevelLookup(t *testing.T) {
	cases := []struct {
		company string
		level   string
		want    int
		ok      bool
	}{
		{"Google", "L5", 3, true},
		{"google", "l5", 3, true},
		{"Microsoft", "63", 3, true},
		{"Stripe", "L3", 3, true},
		{"Google", "L99", 0, false},
		{"Unknown Co", "L5", 0, false},
	}
	for _, tc := range cases {
		got, ok := Universal(tc.company, tc.level)
		if tc.want > 0 && (!ok || got != tc.want) {
			t.Errorf("Universal(%q, %q): expected (%d, true), got (%d, %v)", tc.company, tc.level, tc.want, got, ok)
		}
		if tc.want == 0 && ok {
			t.Errorf("Universal(%q, %q): expected a miss, got %d", tc.company, tc.level, got)
		}
	}
}

func TestSuggestionsSortedByLadder(t *testing.T) {
	got := Suggestions("Google")
	if len(got) == 0 {
		t.Fatalf("expected suggestions for Google")
	}
	for i := 1; i < len(got); i++ {
		a, _ := Universal("Google", got[i-1])
		b, _ := Universal("Google", got[i])
		if a > b {
			t.Fatalf("expected ladder order, got %v", got)
		}
	}

	// Unknown companies fall back to the universal level names.
	if s := Suggestions("Unknown Co"); len(s) != 8 || s[0] != "Junior" {
		t.Fatalf("expected universal names for unknown company, got %v", s)
	}
}

func TestScaleCoversOneThroughEight(t *testing.T) {
	scale := Scale()
	if len(scale) != 8 {
		t.Fatalf("expected 8 universal levels, got %d", len(scale))
	}
	for i, lvl := range scale {
		if lvl.Level != i+1 {
			t.Fatalf("expected level %d at position %d, got %d", i+1, i, lvl.Level)
		}
		if lvl.Name == "" {
			t.Fatalf("level %d: expected a name", lvl.Level)
		}
	}
}
