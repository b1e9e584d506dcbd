// Package taxes estimates net take-home pay and annual living expenses from a
// free-text location and gross compensation. All rates and multipliers are
// illustrative constants kept as static tables; they approximate relative
// differences between locations, not legal tax liability.
package taxes

import (
	"strings"

	"offercompare-backend/internal/shared/telemetry"
)

// Federal bracket table, single filer. Illustrative.
type bracket struct {
	upTo float64 // upper bound of the bracket, 0 means unbounded
	rate float64
}

var federalBrackets = []bracket{
	{upTo: 11600, rate: 0.10},
	{upTo: 47150, rate: 0.12},
	{upTo: 100525, rate: 0.22},
	{upTo: 191950, rate: 0.24},
	{upTo: 243725, rate: 0.32},
	{upTo: 609350, rate: 0.35},
	{upTo: 0, rate: 0.37},
}

const (
	ficaRate     = 0.0765
	ficaWageBase = 168600
)

// Flat effective state income-tax rates keyed by state abbreviation.
// Zero-tax states are listed explicitly so they count as recognized.
var stateRates = map[string]float64{
	"CA": 0.093,
	"NY": 0.0685,
	"MA": 0.05,
	"OR": 0.099,
	"IL": 0.0495,
	"GA": 0.0549,
	"AZ": 0.025,
	"CO": 0.044,
	"MN": 0.0785,
	"PA": 0.0307,
	"NC": 0.045,
	"UT": 0.0465,
	"VA": 0.0575,
	"MI": 0.0425,
	"DC": 0.085,
	"NJ": 0.0637,
	"MD": 0.0475,
	"OH": 0.035,
	"WI": 0.053,
	"MO": 0.048,
	"WA": 0,
	"TX": 0,
	"FL": 0,
	"NV": 0,
	"TN": 0,
	"AK": 0,
	"SD": 0,
	"WY": 0,
	"NH": 0,
}

// Estimate is the tax breakdown for one offer.
type Estimate struct {
	Federal       float64 `json:"federal"`
	State         float64 `json:"state"`
	FICA          float64 `json:"fica"`
	Total         float64 `json:"total"`
	EffectiveRate float64 `json:"effectiveRate"`
	StateCode     string  `json:"stateCode,omitempty"`
}

// EstimateTax combines the federal bracket table, a per-state flat rate, and
// FICA into one estimate for the given gross compensation. Unrecognized or
// malformed locations degrade to federal+FICA only; they never fail.
func EstimateTax(location string, grossComp float64) Estimate {
	if grossComp <= 0 {
		return Estimate{}
	}

	est := Estimate{
		Federal: federalTax(grossComp),
		FICA:    ficaTax(grossComp),
	}

	state, ok := ParseState(location)
	if ok {
		est.StateCode = state
		est.State = grossComp * stateRates[state]
	} else {
		telemetry.Warn("tax.state_lookup_miss", map[string]any{
			"location": location,
			"fallback": "federal+fica",
		})
	}

	est.Total = est.Federal + est.State + est.FICA
	est.EffectiveRate = est.Total / grossComp
	return est
}

// ParseState extracts the state abbreviation from a "City, ST" location by
// splitting on the last comma. It reports false for locations it cannot
// recognize.
func ParseState(location string) (string, bool) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return "", false
	}
	idx := strings.LastIndex(trimmed, ",")
	if idx < 0 {
		return "", false
	}
	code := strings.ToUpper(strings.TrimSpace(trimmed[idx+1:]))
	if len(code) != 2 {
		return "", false
	}
	if _, ok := stateRates[code]; !ok {
		return "", false
	}
	return code, true
}

func federalTax(gross float64) float64 {
	var tax, lower float64
	for _, b := range federalBrackets {
		upper := b.upTo
		if upper == 0 || gross < upper {
			tax += (gross - lower) * b.rate
			return tax
		}
		tax += (upper - lower) * b.rate
		lower = upper
	}
	return tax
}

func ficaTax(gross float64) float64 {
	taxable := gross
	if taxable > ficaWageBase {
		taxable = ficaWageBase
	}
	return taxable * ficaRate
}

// NetPay returns gross minus the estimated tax, clamped at zero.
func NetPay(gross float64, est Estimate) float64 {
	net := gross - est.Total
	if net < 0 {
		return 0
	}
	return net
}
