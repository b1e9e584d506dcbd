package comparison

import "offercompare-backend/internal/offers"

// SampleOffers returns the canned demo batch used by the demo endpoint and
// local smoke testing.
func SampleOffers() []offers.Offer {
	return []offers.Offer{
		{
			ID:              "offer_1",
			Company:         "Google",
			Position:        "Senior Software Engineer",
			Location:        "Seattle, WA",
			BaseSalary:      180000,
			Equity:          50000,
			Bonus:           20000,
			YearsExperience: 6,
			BenefitsGrade:   offers.GradeA,
			WLBGrade:        offers.GradeB,
			GrowthGrade:     offers.GradeA,
		},
		{
			ID:              "offer_2",
			Company:         "Microsoft",
			Position:        "Senior Software Engineer",
			Location:        "Seattle, WA",
			BaseSalary:      175000,
			Equity:          40000,
			Bonus:           25000,
			YearsExperience: 6,
			BenefitsGrade:   offers.GradeA,
			WLBGrade:        offers.GradeAPlus,
			GrowthGrade:     offers.GradeB,
		},
		{
			ID:              "offer_3",
			Company:         "Stripe",
			Position:        "Senior Software Engineer",
			Location:        "Remote",
			BaseSalary:      170000,
			Equity:          60000,
			Bonus:           15000,
			YearsExperience: 6,
			BenefitsGrade:   offers.GradeBPlus,
			WLBGrade:        offers.GradeA,
			GrowthGrade:     offers.GradeAPlus,
		},
	}
}
