// Package scoring turns normalized offers and user weights into a 0-100
// composite score per offer. Salary and equity sub-scores are scaled against
// the batch maximum, so a total score is only meaningful within the batch it
// was computed in.
package scoring

import (
	"math"
	"sort"

	"offercompare-backend/internal/offers"
)

// Criterion identifiers used as breakdown keys.
const (
	CriterionSalary   = "salary"
	CriterionEquity   = "equity"
	CriterionWLB      = "work_life_balance"
	CriterionGrowth   = "career_growth"
	CriterionCulture  = "company_culture"
	CriterionBenefits = "benefits_quality"
)

// Score computes total scores and per-criterion breakdowns for the whole
// batch. Weights are normalized once up front; the input slice is not
// mutated.
func Score(batch []offers.NormalizedOffer, prefs offers.Preferences) []offers.ScoredOffer {
	weights := prefs.Normalized()
	maxNetPay := maxOf(batch, func(o offers.NormalizedOffer) float64 { return o.EstimatedNetPay })
	maxEquity := maxOf(batch, func(o offers.NormalizedOffer) float64 { return o.Equity })

	scored := make([]offers.ScoredOffer, len(batch))
	for i, o := range batch {
		scored[i] = scoreOne(o, weights, maxNetPay, maxEquity)
	}
	return scored
}

func scoreOne(o offers.NormalizedOffer, weights offers.Preferences, maxNetPay, maxEquity float64) offers.ScoredOffer {
	subs := map[string]float64{
		CriterionSalary:   relativeToMax(o.EstimatedNetPay, maxNetPay),
		CriterionEquity:   relativeToMax(o.Equity, maxEquity),
		CriterionWLB:      o.WLBValue(),
		CriterionGrowth:   o.GrowthValue(),
		CriterionBenefits: o.BenefitsValue(),
	}
	// Offers carry no separate culture attribute; the benefits grade stands
	// in for it.
	subs[CriterionCulture] = subs[CriterionBenefits]

	weightFor := map[string]float64{
		CriterionSalary:   weights.Salary,
		CriterionEquity:   weights.Equity,
		CriterionWLB:      weights.WorkLifeBalance,
		CriterionGrowth:   weights.Growth,
		CriterionCulture:  weights.Culture,
		CriterionBenefits: weights.Benefits,
	}

	breakdown := make(map[string]offers.Contribution, len(subs))
	var composite float64
	for criterion, sub := range subs {
		w := weightFor[criterion]
		weighted := sub * w
		composite += weighted
		breakdown[criterion] = offers.Contribution{
			SubScore: round1(sub),
			Weight:   w,
			Weighted: round1(weighted * 10),
		}
	}

	total := round1(composite * 10)
	return offers.ScoredOffer{
		NormalizedOffer:  o,
		TotalScore:       total,
		Rating:           Rating(total),
		Breakdown:        breakdown,
		TopStrengths:     topCriteria(subs, 3, true),
		ImprovementAreas: topCriteria(subs, 2, false),
	}
}

// Rating labels a 0-100 total score.
func Rating(total float64) string {
	switch {
	case total >= 80:
		return "Excellent"
	case total >= 70:
		return "Very Good"
	case total >= 60:
		return "Good"
	case total >= 50:
		return "Fair"
	default:
		return "Below Average"
	}
}

// relativeToMax scales a value against the batch maximum onto 0-10. A zero
// maximum means nobody has anything to compare, so every sub-score is zero.
func relativeToMax(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return value / max * 10
}

func maxOf(batch []offers.NormalizedOffer, get func(offers.NormalizedOffer) float64) float64 {
	var max float64
	for _, o := range batch {
		if v := get(o); v > max {
			max = v
		}
	}
	return max
}

func topCriteria(subs map[string]float64, n int, best bool) []string {
	keys := make([]string, 0, len(subs))
	for k := range subs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if subs[keys[i]] != subs[keys[j]] {
			if best {
				return subs[keys[i]] > subs[keys[j]]
			}
			return subs[keys[i]] < subs[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if n > len(keys) {
		n = len(keys)
	}
	return keys[:n]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
