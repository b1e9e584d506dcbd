package comparison

import (
	"context"
	"fmt"
	"strings"
	"time"

	"offercompare-backend/internal/llm"
	"offercompare-backend/internal/offers"
	"offercompare-backend/internal/shared/telemetry"
)

// NarrativeFallback replaces any narrative section the language model could
// not produce. The numeric report is never affected.
const NarrativeFallback = "Analysis unavailable"

const analystSystemPrompt = "You are an expert career advisor and compensation analyst providing comprehensive job offer analysis."

// narrate fills the report's narrative fields. Every LLM call shares one
// deadline; any failure downgrades that section to the fallback text and is
// logged, never returned.
func (s *Service) narrate(ctx context.Context, report *Report, prefs offers.Preferences, reportID string) {
	timeout := s.NarrativeTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := newRetryingLLM(s.LLM, reportID)
	if client == nil {
		client = llm.PlaceholderClient{}
	}

	report.Analysis = s.generate(ctx, client, reportID, "analysis", buildAnalysisPrompt(*report, prefs))
	for i := range report.RankedOffers {
		prompt := buildRecommendationPrompt(report.RankedOffers[i].ScoredOffer)
		report.RankedOffers[i].Recommendation = s.generate(ctx, client, reportID, "recommendation", prompt)
	}
	report.DecisionFramework = s.generate(ctx, client, reportID, "decision_framework", buildFrameworkPrompt(len(report.RankedOffers)))
}

func (s *Service) generate(ctx context.Context, client llm.Client, reportID, section, prompt string) string {
	text, err := client.Generate(ctx, prompt)
	if err != nil {
		telemetry.Warn("narrative.generation_failed", map[string]any{
			"report_id": reportID,
			"section":   section,
			"provider":  s.Provider,
			"error":     err.Error(),
		})
		return NarrativeFallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return NarrativeFallback
	}
	return text
}

func buildAnalysisPrompt(report Report, prefs offers.Preferences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", analystSystemPrompt)
	fmt.Fprintf(&b, "Analyze these %d job offers and provide comprehensive insights:\n\n", len(report.RankedOffers))
	fmt.Fprintf(&b, "USER PRIORITIES: salary=%.2f equity=%.2f work_life_balance=%.2f career_growth=%.2f company_culture=%.2f benefits=%.2f\n\n",
		prefs.Salary, prefs.Equity, prefs.WorkLifeBalance, prefs.Growth, prefs.Culture, prefs.Benefits)
	b.WriteString("OFFERS SUMMARY:\n")
	for _, o := range report.RankedOffers {
		fmt.Fprintf(&b, "\n%s - %s (%s)\n", o.Company, o.Position, o.Location)
		fmt.Fprintf(&b, "- Base Salary: $%.0f\n", o.BaseSalary)
		fmt.Fprintf(&b, "- Total Comp: $%.0f\n", o.TotalCompensation)
		fmt.Fprintf(&b, "- Estimated Net Pay (After Tax): $%.0f\n", o.EstimatedNetPay)
		fmt.Fprintf(&b, "- Market Percentile: %.0f\n", o.MarketPercentile)
		fmt.Fprintf(&b, "- Score: %.1f\n", o.TotalScore)
	}
	if len(report.RankedOffers) > 0 {
		fmt.Fprintf(&b, "\nTOP CHOICE: %s\n", report.RankedOffers[0].Company)
	}
	b.WriteString(`
Please provide:
1. Executive summary of the offer comparison
2. Detailed analysis of each offer's strengths and weaknesses, mentioning the estimated net pay for each offer
3. Risk factors and considerations for each offer
4. Career trajectory implications (1-5 year outlook)
5. Negotiation opportunities and strategies
6. Final recommendation with reasoning
7. Red flags or concerns to watch out for
8. Questions to ask each company before deciding

Focus on actionable insights for decision-making.
`)
	return b.String()
}

func buildRecommendationPrompt(o offers.ScoredOffer) string {
	var b strings.Builder
	b.WriteString("Provide a focused recommendation for this specific offer:\n\n")
	fmt.Fprintf(&b, "Company: %s\n", o.Company)
	fmt.Fprintf(&b, "Position: %s\n", o.Position)
	fmt.Fprintf(&b, "Location: %s\n", o.Location)
	fmt.Fprintf(&b, "Total Compensation: $%.0f\n", o.TotalCompensation)
	fmt.Fprintf(&b, "Estimated Net Pay (After Tax): $%.0f\n", o.EstimatedNetPay)
	fmt.Fprintf(&b, "Total Score: %.1f\n", o.TotalScore)
	b.WriteString(`
Based on the analysis, should this offer be:
1. Strongly Recommended
2. Recommended with Conditions
3. Neutral/Consider Carefully
4. Not Recommended

Provide 2-3 key reasons for your recommendation, considering the take-home pay after taxes.
`)
	return b.String()
}

func buildFrameworkPrompt(offerCount int) string {
	return fmt.Sprintf(`Create a decision framework for choosing between these %d offers.

Provide:
1. Top 3 decision criteria to focus on
2. Deal-breakers to watch for
3. Questions to ask yourself before deciding
4. Timeline recommendations for decision-making
5. How to handle counteroffers

Keep it practical and actionable.
`, offerCount)
}
