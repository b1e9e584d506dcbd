package offers

// Offer is one job opportunity under consideration. Financial fields are
// annual USD amounts. An offer is immutable once handed to the pipeline;
// enrichment stages return new values instead of mutating it.
type Offer struct {
	ID              string  `json:"id"`
	Company         string  `json:"company"`
	Position        string  `json:"position"`
	Location        string  `json:"location"`
	Level           string  `json:"level,omitempty"`
	BaseSalary      float64 `json:"baseSalary"`
	Equity          float64 `json:"equity"`
	Bonus           float64 `json:"bonus"`
	SigningBonus    float64 `json:"signingBonus"`
	YearsExperience int     `json:"yearsExperience,omitempty"`
	BenefitsGrade   Grade   `json:"benefitsGrade,omitempty"`
	WLBGrade        Grade   `json:"wlbGrade,omitempty"`
	GrowthGrade     Grade   `json:"growthGrade,omitempty"`
	WLBScore        float64 `json:"wlbScore,omitempty"`
	GrowthScore     float64 `json:"growthScore,omitempty"`
}

// TotalCompensation is always recomputed as base + equity + bonus. The signing
// bonus is a one-time payment and stays out of the recurring total. Any total
// supplied on input is ignored.
func (o Offer) TotalCompensation() float64 {
	return o.BaseSalary + o.Equity + o.Bonus
}

// WLBValue returns the 1-10 work-life-balance score, preferring an explicit
// numeric score over the grade mapping.
func (o Offer) WLBValue() float64 {
	return numericOrGrade(o.WLBScore, o.WLBGrade)
}

// GrowthValue returns the 1-10 career-growth score, preferring an explicit
// numeric score over the grade mapping.
func (o Offer) GrowthValue() float64 {
	return numericOrGrade(o.GrowthScore, o.GrowthGrade)
}

// BenefitsValue returns the 1-10 benefits score derived from the grade.
func (o Offer) BenefitsValue() float64 {
	return o.BenefitsGrade.Score()
}

func numericOrGrade(score float64, grade Grade) float64 {
	if score > 0 {
		if score > 10 {
			return 10
		}
		if score < 1 {
			return 1
		}
		return score
	}
	return grade.Score()
}

// NormalizedOffer is an Offer enriched with tax, cost-of-living, and market
// figures. TotalCompensation here is the recomputed value.
type NormalizedOffer struct {
	Offer
	TotalCompensation       float64 `json:"totalCompensation"`
	EstimatedTax            float64 `json:"estimatedTax"`
	EstimatedNetPay         float64 `json:"estimatedNetPay"`
	EstimatedAnnualExpenses float64 `json:"estimatedAnnualExpenses"`
	NetSavings              float64 `json:"netSavings"`
	MarketPercentile        float64 `json:"marketPercentile"`
	MarketMedian            float64 `json:"marketMedian"`
}

// Contribution is one criterion's share of a total score.
type Contribution struct {
	SubScore float64 `json:"subScore"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// ScoredOffer is a NormalizedOffer plus its weighted score and rank.
// TotalScore is on a 0-100 scale and is only comparable within the batch it
// was computed in, since salary and equity sub-scores are scaled against the
// batch maximum.
type ScoredOffer struct {
	NormalizedOffer
	TotalScore       float64                 `json:"totalScore"`
	Rating           string                  `json:"rating"`
	Breakdown        map[string]Contribution `json:"scoreBreakdown"`
	TopStrengths     []string                `json:"topStrengths"`
	ImprovementAreas []string                `json:"improvementAreas"`
	Rank             int                     `json:"rank"`
	ScoreGap         float64                 `json:"scoreGap"`
}
