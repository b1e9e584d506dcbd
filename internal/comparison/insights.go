package comparison

import (
	"fmt"

	"offercompare-backend/internal/offers"
	"offercompare-backend/internal/ranking"
	"offercompare-backend/internal/scoring"
)

// negotiationOptions derives deterministic negotiation pointers for one offer
// from its market position and compensation mix. No text generation involved.
func negotiationOptions(o offers.ScoredOffer) []string {
	var out []string

	switch {
	case o.MarketPercentile < 25:
		out = append(out, "Compensation is below market average - consider negotiating")
	case o.MarketPercentile > 75:
		out = append(out, "Compensation is highly competitive for this role and location")
	}

	if headroom := o.MarketMedian - o.TotalCompensation; headroom > 0 {
		out = append(out, fmt.Sprintf("Market median suggests roughly $%.0f of negotiation headroom", headroom))
	}

	if o.TotalCompensation > 0 {
		equityShare := o.Equity / o.TotalCompensation * 100
		bonusShare := o.Bonus / o.TotalCompensation * 100
		switch {
		case equityShare > 40:
			out = append(out, "High equity component - evaluate vesting schedule and company prospects")
		case equityShare < 10:
			out = append(out, "Low equity component - may indicate an established company or room to ask for more")
		}
		if bonusShare > 25 {
			out = append(out, "Significant bonus component - understand the performance criteria")
		}
	}

	return out
}

// reasoning builds the deterministic bullet list supporting the verdict.
func reasoning(ranked ranking.Result) []string {
	if len(ranked.Ordered) == 0 {
		return nil
	}

	top := ranked.Ordered[0]
	out := []string{
		fmt.Sprintf("%s ranks first with a total score of %.1f (%s)", top.Company, top.TotalScore, top.Rating),
	}
	if len(top.TopStrengths) > 0 {
		out = append(out, fmt.Sprintf("%s leads on %s", top.Company, criterionList(top.TopStrengths)))
	}

	for _, o := range ranked.Ordered {
		if o.ID != ranked.FinancialWinnerID {
			continue
		}
		if o.Rank == 1 {
			out = append(out, fmt.Sprintf("%s is also the financial winner with estimated net savings of $%.0f", o.Company, o.NetSavings))
		} else {
			out = append(out, fmt.Sprintf("%s is the financial winner with estimated net savings of $%.0f despite ranking #%d", o.Company, o.NetSavings, o.Rank))
		}
		break
	}

	return out
}

var criterionNames = map[string]string{
	scoring.CriterionSalary:   "salary",
	scoring.CriterionEquity:   "equity",
	scoring.CriterionWLB:      "work-life balance",
	scoring.CriterionGrowth:   "career growth",
	scoring.CriterionCulture:  "company culture",
	scoring.CriterionBenefits: "benefits",
}

func criterionList(criteria []string) string {
	out := ""
	for i, c := range criteria {
		name, ok := criterionNames[c]
		if !ok {
			name = c
		}
		switch {
		case i == 0:
			out = name
		case i == len(criteria)-1:
			out += " and " + name
		default:
			out += ", " + name
		}
	}
	return out
}
