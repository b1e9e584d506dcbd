package offers

// Preferences holds the user's scoring weights and base location. Weights are
// non-negative and need not sum to one; Normalized rescales them before use.
type Preferences struct {
	Salary          float64 `json:"salary"`
	Equity          float64 `json:"equity"`
	WorkLifeBalance float64 `json:"wlb"`
	Growth          float64 `json:"growth"`
	Culture         float64 `json:"culture"`
	Benefits        float64 `json:"benefits"`

	// BaseLocation is used for tax and expense estimates when an offer's
	// location is Remote.
	BaseLocation string `json:"baseLocation,omitempty"`
}

// DefaultPreferences mirrors the default weighting applied when the caller
// supplies no weights at all.
func DefaultPreferences() Preferences {
	return Preferences{
		Salary:          0.35,
		Equity:          0.15,
		WorkLifeBalance: 0.20,
		Growth:          0.15,
		Culture:         0.08,
		Benefits:        0.07,
	}
}

// Normalized returns a copy with weights divided by their sum, so the
// absolute scale of the supplied weights never changes scoring. Negative
// weights are treated as zero. When the sum is zero the weights are returned
// as supplied; every total score is then zero, which still ranks offers
// deterministically via the tie-break.
func (p Preferences) Normalized() Preferences {
	q := p
	q.Salary = clampWeight(q.Salary)
	q.Equity = clampWeight(q.Equity)
	q.WorkLifeBalance = clampWeight(q.WorkLifeBalance)
	q.Growth = clampWeight(q.Growth)
	q.Culture = clampWeight(q.Culture)
	q.Benefits = clampWeight(q.Benefits)

	total := q.sum()
	if total == 0 {
		return q
	}
	q.Salary /= total
	q.Equity /= total
	q.WorkLifeBalance /= total
	q.Growth /= total
	q.Culture /= total
	q.Benefits /= total
	return q
}

func (p Preferences) sum() float64 {
	return clampWeight(p.Salary) + clampWeight(p.Equity) + clampWeight(p.WorkLifeBalance) +
		clampWeight(p.Growth) + clampWeight(p.Culture) + clampWeight(p.Benefits)
}

func clampWeight(w float64) float64 {
	if w < 0 {
		return 0
	}
	return w
}
