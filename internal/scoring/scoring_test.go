package scoring

import (
	"math"
	"testing"

	"offercompare-backend/internal/offers"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.05
}

func normOffer(id string, netPay float64) offers.NormalizedOffer {
	return offers.NormalizedOffer{
		Offer: offers.Offer{
			ID:          id,
			WLBScore:    8,
			GrowthScore: 6,
		},
		EstimatedNetPay: netPay,
	}
}

func equalWeights() offers.Preferences {
	return offers.Preferences{Salary: 1, Equity: 1, WorkLifeBalance: 1, Growth: 1, Culture: 1, Benefits: 1}
}

func TestScoreRelativeToBatchMax(t *testing.T) {
	a := normOffer("a", 100000)
	a.Equity = 50000
	b := normOffer("b", 80000)

	scored := Score([]offers.NormalizedOffer{a, b}, equalWeights())

	if got := scored[0].Breakdown[CriterionSalary].SubScore; got != 10 {
		t.Fatalf("expected batch-max salary sub-score 10, got %v", got)
	}
	if got := scored[1].Breakdown[CriterionSalary].SubScore; got != 8 {
		t.Fatalf("expected proportional salary sub-score 8, got %v", got)
	}
	if got := scored[0].Breakdown[CriterionEquity].SubScore; got != 10 {
		t.Fatalf("expected equity sub-score 10, got %v", got)
	}
	if got := scored[1].Breakdown[CriterionEquity].SubScore; got != 0 {
		t.Fatalf("expected zero equity sub-score, got %v", got)
	}
}

func TestScoreZeroMaxYieldsZeroSubScores(t *testing.T) {
	a := normOffer("a", 0)
	b := normOffer("b", 0)
	scored := Score([]offers.NormalizedOffer{a, b}, equalWeights())
	for _, s := range scored {
		if s.Breakdown[CriterionSalary].SubScore != 0 || s.Breakdown[CriterionEquity].SubScore != 0 {
			t.Fatalf("expected zero sub-scores when the batch max is zero, got %+v", s.Breakdown)
		}
	}
}

func TestScoreCultureTracksBenefits(t *testing.T) {
	a := normOffer("a", 100000)
	a.BenefitsGrade = offers.GradeAPlus
	b := normOffer("b", 90000)
	b.BenefitsGrade = offers.GradeC

	scored := Score([]offers.NormalizedOffer{a, b}, equalWeights())
	for i, s := range scored {
		culture := s.Breakdown[CriterionCulture].SubScore
		benefits := s.Breakdown[CriterionBenefits].SubScore
		if culture != benefits {
			t.Errorf("offer %d: expected culture %v to equal benefits %v", i, culture, benefits)
		}
	}
	if scored[0].Breakdown[CriterionCulture].SubScore != 10 {
		t.Fatalf("expected A+ culture sub-score 10, got %v", scored[0].Breakdown[CriterionCulture].SubScore)
	}
}

func TestScoreWeightScaleInvariance(t *testing.T) {
	batch := []offers.NormalizedOffer{normOffer("a", 100000), normOffer("b", 70000)}
	small := offers.Preferences{Salary: 0.35, Equity: 0.15, WorkLifeBalance: 0.2, Growth: 0.15, Culture: 0.08, Benefits: 0.07}
	big := offers.Preferences{Salary: 35, Equity: 15, WorkLifeBalance: 20, Growth: 15, Culture: 8, Benefits: 7}

	a := Score(batch, small)
	b := Score(batch, big)
	for i := range a {
		if !approxEqual(a[i].TotalScore, b[i].TotalScore) {
			t.Errorf("offer %d: expected scale-invariant totals, got %v vs %v", i, a[i].TotalScore, b[i].TotalScore)
		}
	}
}

func TestScoreIsBatchRelative(t *testing.T) {
	a := normOffer("a", 100000)
	weaker := normOffer("b", 50000)
	stronger := normOffer("c", 200000)

	withWeaker := Score([]offers.NormalizedOffer{a, weaker}, equalWeights())
	withStronger := Score([]offers.NormalizedOffer{a, stronger}, equalWeights())

	if withWeaker[0].TotalScore <= withStronger[0].TotalScore {
		t.Fatalf("expected the same offer to score higher against a weaker batch: %v vs %v",
			withWeaker[0].TotalScore, withStronger[0].TotalScore)
	}
}

func TestScoreTotalAndBreakdownConsistent(t *testing.T) {
	a := normOffer("a", 120000)
	a.Equity = 30000
	a.BenefitsGrade = offers.GradeA
	b := normOffer("b", 100000)

	scored := Score([]offers.NormalizedOffer{a, b}, offers.DefaultPreferences())
	for _, s := range scored {
		if len(s.Breakdown) != 6 {
			t.Fatalf("expected 6 criteria in breakdown, got %d", len(s.Breakdown))
		}
		var sum float64
		for _, c := range s.Breakdown {
			sum += c.SubScore * c.Weight * 10
		}
		if !approxEqual(sum, s.TotalScore) {
			t.Errorf("expected breakdown to reproduce total %v, got %v", s.TotalScore, sum)
		}
		if s.TotalScore < 0 || s.TotalScore > 100 {
			t.Errorf("total score out of range: %v", s.TotalScore)
		}
	}
}

func TestScoreStrengthsAndImprovements(t *testing.T) {
	a := normOffer("a", 100000)
	a.Equity = 40000
	a.BenefitsGrade = offers.GradeA
	b := normOffer("b", 60000)

	scored := Score([]offers.NormalizedOffer{a, b}, equalWeights())
	if len(scored[0].TopStrengths) != 3 {
		t.Fatalf("expected 3 strengths, got %v", scored[0].TopStrengths)
	}
	if len(scored[0].ImprovementAreas) != 2 {
		t.Fatalf("expected 2 improvement areas, got %v", scored[0].ImprovementAreas)
	}
	// Salary and equity hit the batch max of 10, so both must appear.
	found := map[string]bool{}
	for _, s := range scored[0].TopStrengths {
		found[s] = true
	}
	if !found[CriterionSalary] || !found[CriterionEquity] {
		t.Fatalf("expected salary and equity among strengths, got %v", scored[0].TopStrengths)
	}
	// Growth (6) is the weakest criterion for this offer.
	if scored[0].ImprovementAreas[0] != CriterionGrowth {
		t.Fatalf("expected growth as the top improvement area, got %v", scored[0].ImprovementAreas)
	}
}

func TestRatingLabels(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{92, "Excellent"},
		{80, "Excellent"},
		{75, "Very Good"},
		{65, "Good"},
		{55, "Fair"},
		{30, "Below Average"},
	}
	for _, tc := range cases {
		if got := Rating(tc.score); got != tc.want {
			t.Errorf("Rating(%v): expected %q, got %q", tc.score, tc.want, got)
		}
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	batch := []offers.NormalizedOffer{normOffer("a", 100000), normOffer("b", 90000)}
	before := batch[0]
	_ = Score(batch, equalWeights())
	if batch[0] != before {
		t.Fatalf("expected input batch untouched")
	}
}
