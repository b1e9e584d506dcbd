// Package ranking orders scored offers and derives the cross-offer figures
// that depend on the final order.
package ranking

import "offercompare-backend/internal/offers"

// Result carries the ranked batch plus the financial winner, which can differ
// from the top-ranked offer when preference weights favor non-monetary
// criteria.
type Result struct {
	Ordered           []offers.ScoredOffer
	FinancialWinnerID string
}

// Aggregate assigns ranks 1..N by total score (descending), breaking ties by
// net savings and then by input order. Score gaps are measured against the
// next lower rank; the last offer has a gap of zero. The input slice is left
// untouched.
func Aggregate(scored []offers.ScoredOffer) Result {
	ordered := make([]offers.ScoredOffer, len(scored))
	copy(ordered, scored)

	// Insertion sort keeps equal offers in input order, which is the final
	// tie-break.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ranksBefore(ordered[j], ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	for i := range ordered {
		ordered[i].Rank = i + 1
		if i+1 < len(ordered) {
			ordered[i].ScoreGap = ordered[i].TotalScore - ordered[i+1].TotalScore
		} else {
			ordered[i].ScoreGap = 0
		}
	}

	return Result{
		Ordered:           ordered,
		FinancialWinnerID: financialWinner(scored),
	}
}

func ranksBefore(a, b offers.ScoredOffer) bool {
	if a.TotalScore != b.TotalScore {
		return a.TotalScore > b.TotalScore
	}
	return a.NetSavings > b.NetSavings
}

// financialWinner picks the offer with the highest net savings, breaking ties
// by total score and then by input order. It runs over the input-order slice
// so the tie-break is independent of the rank order.
func financialWinner(scored []offers.ScoredOffer) string {
	if len(scored) == 0 {
		return ""
	}
	best := 0
	for i := 1; i < len(scored); i++ {
		if scored[i].NetSavings > scored[best].NetSavings ||
			(scored[i].NetSavings == scored[best].NetSavings && scored[i].TotalScore > scored[best].TotalScore) {
			best = i
		}
	}
	return scored[best].ID
}
