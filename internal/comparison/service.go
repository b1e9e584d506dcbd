package comparison

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"offercompare-backend/internal/llm"
	"offercompare-backend/internal/market"
	"offercompare-backend/internal/offers"
	"offercompare-backend/internal/positions"
	"offercompare-backend/internal/ranking"
	"offercompare-backend/internal/scoring"
	"offercompare-backend/internal/shared/telemetry"
	"offercompare-backend/internal/taxes"
)

// Service runs the comparison pipeline: validate, enrich, score, rank, and
// narrate. Everything before the narrative stage is deterministic.
type Service struct {
	Market           *market.Benchmarker
	LLM              llm.Client
	Provider         string
	Model            string
	NarrativeTimeout time.Duration
}

// NewService constructs a Service. A nil benchmarker falls back to the
// embedded salary tables.
func NewService(bench *market.Benchmarker, client llm.Client, provider, model string, narrativeTimeout time.Duration) *Service {
	if bench == nil {
		bench = market.NewBenchmarker()
	}
	if client == nil {
		client = llm.PlaceholderClient{}
	}
	return &Service{
		Market:           bench,
		LLM:              client,
		Provider:         provider,
		Model:            model,
		NarrativeTimeout: narrativeTimeout,
	}
}

// Compare produces a full report for the request. Enrichment failures inside
// a single offer never surface as errors; they degrade to documented
// fallbacks. Only input validation can fail.
func (s *Service) Compare(ctx context.Context, req Request) (Report, error) {
	if len(req.Offers) == 0 {
		return Report{}, fmt.Errorf("%w: %s", offers.ErrInvalidInput, ErrNoOffers)
	}
	if err := offers.Validate(req.Offers); err != nil {
		return Report{}, err
	}

	prefs := offers.DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	batch := offers.AssignIDs(req.Offers)
	reportID := uuid.NewString()
	start := time.Now()

	normalized := s.enrich(ctx, batch, prefs)
	scored := scoring.Score(normalized, prefs)
	ranked := ranking.Aggregate(scored)

	report := Report{
		ID:                reportID,
		GeneratedAt:       time.Now().UTC(),
		Verdict:           Verdict(ranked.Ordered),
		Reasoning:         reasoning(ranked),
		FinancialWinnerID: ranked.FinancialWinnerID,
		WeightsUsed:       prefs.Normalized(),
		SummaryStats:      summarize(normalized, scored),
	}
	report.RankedOffers = make([]RankedOffer, len(ranked.Ordered))
	for i, o := range ranked.Ordered {
		report.RankedOffers[i] = RankedOffer{
			ScoredOffer:        o,
			NegotiationOptions: negotiationOptions(o),
		}
	}

	s.narrate(ctx, &report, prefs, reportID)

	telemetry.Info("comparison.complete", map[string]any{
		"report_id":   reportID,
		"offer_count": len(batch),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return report, nil
}

// enrich runs tax, cost-of-living, and market enrichment for every offer
// concurrently. Each goroutine writes only its own slot, so the result order
// matches the input order and the output is identical to a sequential run.
func (s *Service) enrich(ctx context.Context, batch []offers.Offer, prefs offers.Preferences) []offers.NormalizedOffer {
	normalized := make([]offers.NormalizedOffer, len(batch))

	var wg sync.WaitGroup
	for i, o := range batch {
		wg.Add(1)
		go func(i int, o offers.Offer) {
			defer wg.Done()
			normalized[i] = s.enrichOne(ctx, o, prefs)
		}(i, o)
	}
	wg.Wait()

	return normalized
}

func (s *Service) enrichOne(ctx context.Context, o offers.Offer, prefs offers.Preferences) offers.NormalizedOffer {
	totalComp := o.TotalCompensation()

	// Remote offers are taxed and cost-estimated at the candidate's base
	// location when one is known.
	residence := o.Location
	if taxes.IsRemote(o.Location) && prefs.BaseLocation != "" {
		residence = prefs.BaseLocation
	}

	tax := taxes.EstimateTax(residence, totalComp)
	netPay := taxes.NetPay(totalComp, tax)
	expenses := taxes.EstimateAnnualExpenses(residence)

	universal := 0
	if lvl, ok := positions.Universal(o.Company, o.Level); ok {
		universal = lvl
	}
	bench := s.Market.Assess(ctx, o.Position, o.Location, o.Level, o.YearsExperience, universal, totalComp)

	return offers.NormalizedOffer{
		Offer:                   o,
		TotalCompensation:       totalComp,
		EstimatedTax:            tax.Total,
		EstimatedNetPay:         netPay,
		EstimatedAnnualExpenses: expenses.Annual,
		NetSavings:              netPay - expenses.Annual,
		MarketPercentile:        bench.Percentile,
		MarketMedian:            bench.Median,
	}
}

// Verdict summarizes the batch outcome in one sentence, with gap phrasing
// that reflects how decisive the lead is.
func Verdict(ordered []offers.ScoredOffer) string {
	if len(ordered) == 0 {
		return "No offers to compare"
	}
	top := ordered[0]
	if len(ordered) == 1 {
		return fmt.Sprintf("Single offer from %s with score %.1f", top.Company, top.TotalScore)
	}

	second := ordered[1]
	gap := top.TotalScore - second.TotalScore
	verdict := fmt.Sprintf("Top choice: %s (Score: %.1f)", top.Company, top.TotalScore)
	switch {
	case gap < 5:
		verdict += fmt.Sprintf(". Very close race with %s (Gap: %.1f)", second.Company, gap)
	case gap < 15:
		verdict += fmt.Sprintf(". Clear but not overwhelming lead over %s (Gap: %.1f)", second.Company, gap)
	default:
		verdict += fmt.Sprintf(". Strong lead over %s (Gap: %.1f)", second.Company, gap)
	}
	return verdict
}

func summarize(normalized []offers.NormalizedOffer, scored []offers.ScoredOffer) SummaryStats {
	if len(normalized) == 0 {
		return SummaryStats{}
	}

	stats := SummaryStats{
		MinTotalComp: normalized[0].TotalCompensation,
		MaxTotalComp: normalized[0].TotalCompensation,
		MinNetPay:    normalized[0].EstimatedNetPay,
		MaxNetPay:    normalized[0].EstimatedNetPay,
		MinScore:     scored[0].TotalScore,
		MaxScore:     scored[0].TotalScore,
	}
	var sumComp, sumNet, sumScore float64
	for i, o := range normalized {
		sumComp += o.TotalCompensation
		sumNet += o.EstimatedNetPay
		sumScore += scored[i].TotalScore
		if o.TotalCompensation < stats.MinTotalComp {
			stats.MinTotalComp = o.TotalCompensation
		}
		if o.TotalCompensation > stats.MaxTotalComp {
			stats.MaxTotalComp = o.TotalCompensation
		}
		if o.EstimatedNetPay < stats.MinNetPay {
			stats.MinNetPay = o.EstimatedNetPay
		}
		if o.EstimatedNetPay > stats.MaxNetPay {
			stats.MaxNetPay = o.EstimatedNetPay
		}
		if scored[i].TotalScore < stats.MinScore {
			stats.MinScore = scored[i].TotalScore
		}
		if scored[i].TotalScore > stats.MaxScore {
			stats.MaxScore = scored[i].TotalScore
		}
	}
	n := float64(len(normalized))
	stats.AvgTotalComp = sumComp / n
	stats.AvgNetPay = sumNet / n
	stats.AvgScore = sumScore / n
	return stats
}
