package comparison

import (
	"time"

	"offercompare-backend/internal/offers"
)

// RankedOffer is a scored offer together with its narrative recommendation
// and deterministic negotiation pointers.
type RankedOffer struct {
	offers.ScoredOffer
	Recommendation     string   `json:"recommendation,omitempty"`
	NegotiationOptions []string `json:"negotiationOptions,omitempty"`
}

// SummaryStats aggregates batch-level compensation and score figures.
type SummaryStats struct {
	MinTotalComp float64 `json:"minTotalComp"`
	MaxTotalComp float64 `json:"maxTotalComp"`
	AvgTotalComp float64 `json:"avgTotalComp"`
	MinNetPay    float64 `json:"minNetPay"`
	MaxNetPay    float64 `json:"maxNetPay"`
	AvgNetPay    float64 `json:"avgNetPay"`
	MinScore     float64 `json:"minScore"`
	MaxScore     float64 `json:"maxScore"`
	AvgScore     float64 `json:"avgScore"`
}

// Report is the full comparison result returned to the caller. The numeric
// fields are always populated; the narrative fields fall back to a stub when
// the language model is unavailable.
type Report struct {
	ID                string             `json:"reportId"`
	GeneratedAt       time.Time          `json:"generatedAt"`
	Verdict           string             `json:"verdict"`
	Reasoning         []string           `json:"reasoning"`
	RankedOffers      []RankedOffer      `json:"rankedOffers"`
	FinancialWinnerID string             `json:"financialWinnerId"`
	Analysis          string             `json:"analysis"`
	DecisionFramework string             `json:"decisionFramework"`
	WeightsUsed       offers.Preferences `json:"weightsUsed"`
	SummaryStats      SummaryStats       `json:"summaryStats"`
}

// Request is the POST body for a comparison.
type Request struct {
	Offers      []offers.Offer      `json:"offers"`
	Preferences *offers.Preferences `json:"preferences,omitempty"`
}
