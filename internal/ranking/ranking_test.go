package ranking

import (
	"testing"

	"offercompare-backend/internal/offers"
)

func scoredOffer(id string, total, netSavings float64) offers.ScoredOffer {
	return offers.ScoredOffer{
		NormalizedOffer: offers.NormalizedOffer{
			Offer:      offers.Offer{ID: id},
			NetSavings: netSavings,
		},
		TotalScore: total,
	}
}

func TestAggregateOrdersByScore(t *testing.T) {
	res := Aggregate([]offers.ScoredOffer{
		scoredOffer("low", 60, 0),
		scoredOffer("high", 90, 0),
		scoredOffer("mid", 75, 0),
	})

	want := []string{"high", "mid", "low"}
	for i, id := range want {
		if res.Ordered[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, res.Ordered[i].ID)
		}
	}
}

func TestAggregateRanksArePermutation(t *testing.T) {
	res := Aggregate([]offers.ScoredOffer{
		scoredOffer("a", 70, 0),
		scoredOffer("b", 70, 0),
		scoredOffer("c", 80, 0),
		scoredOffer("d", 65, 0),
	})

	seen := map[int]bool{}
	for _, o := range res.Ordered {
		seen[o.Rank] = true
	}
	for rank := 1; rank <= len(res.Ordered); rank++ {
		if !seen[rank] {
			t.Fatalf("expected rank %d assigned exactly once, got %v", rank, seen)
		}
	}
}

func TestAggregateTieBreakByNetSavingsThenInputOrder(t *testing.T) {
	res := Aggregate([]offers.ScoredOffer{
		scoredOffer("first", 80, 10000),
		scoredOffer("richer", 80, 20000),
		scoredOffer("second", 80, 10000),
	})

	want := []string{"richer", "first", "second"}
	for i, id := range want {
		if res.Ordered[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q (tie-break)", i, id, res.Ordered[i].ID)
		}
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	batch := []offers.ScoredOffer{
		scoredOffer("a", 75, 5000),
		scoredOffer("b", 75, 5000),
		scoredOffer("c", 75, 5000),
	}
	first := Aggregate(batch)
	for i := 0; i < 5; i++ {
		again := Aggregate(batch)
		for j := range first.Ordered {
			if first.Ordered[j].ID != again.Ordered[j].ID {
				t.Fatalf("run %d: expected stable order, got %q at %d", i, again.Ordered[j].ID, j)
			}
		}
	}
}

func TestAggregateScoreGaps(t *testing.T) {
	res := Aggregate([]offers.ScoredOffer{
		scoredOffer("a", 90, 0),
		scoredOffer("b", 82, 0),
		scoredOffer("c", 70, 0),
	})

	if res.Ordered[0].ScoreGap != 8 {
		t.Fatalf("expected gap 8, got %v", res.Ordered[0].ScoreGap)
	}
	if res.Ordered[1].ScoreGap != 12 {
		t.Fatalf("expected gap 12, got %v", res.Ordered[1].ScoreGap)
	}
	if res.Ordered[2].ScoreGap != 0 {
		t.Fatalf("expected last gap 0, got %v", res.Ordered[2].ScoreGap)
	}
}

func TestFinancialWinnerCanDivergeFromTopRank(t *testing.T) {
	res := Aggregate([]offers.ScoredOffer{
		scoredOffer("balanced", 90, 40000),
		scoredOffer("cash-heavy", 70, 90000),
	})

	if res.Ordered[0].ID != "balanced" {
		t.Fatalf("expected balanced ranked first, got %q", res.Ordered[0].ID)
	}
	if res.FinancialWinnerID != "cash-heavy" {
		t.Fatalf("expected cash-heavy as financial winner, got %q", res.FinancialWinnerID)
	}
}

func TestFinancialWinnerTieBreak(t *testing.T) {
	res := Aggregate([]offers.ScoredOffer{
		scoredOffer("a", 60, 50000),
		scoredOffer("b", 80, 50000),
	})
	if res.FinancialWinnerID != "b" {
		t.Fatalf("expected score tie-break to pick b, got %q", res.FinancialWinnerID)
	}

	res = Aggregate([]offers.ScoredOffer{
		scoredOffer("x", 70, 50000),
		scoredOffer("y", 70, 50000),
	})
	if res.FinancialWinnerID != "x" {
		t.Fatalf("expected input order to pick x, got %q", res.FinancialWinnerID)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	batch := []offers.ScoredOffer{
		scoredOffer("a", 60, 0),
		scoredOffer("b", 90, 0),
	}
	_ = Aggregate(batch)
	if batch[0].ID != "a" || batch[0].Rank != 0 {
		t.Fatalf("expected input slice untouched, got %+v", batch[0])
	}
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(nil)
	if len(res.Ordered) != 0 || res.FinancialWinnerID != "" {
		t.Fatalf("expected empty result, got %+v", res)
	}
}
