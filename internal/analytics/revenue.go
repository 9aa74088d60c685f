// Package analytics derives the dashboard figures from a filtered record set:
// revenue estimates under the pricing assumptions, weekly aggregation, and
// the KPI summary row.
package analytics

import "github.com/arkose/analytics-api/internal/models"

// EstimateFlat prices every climbing entry at the flat per-entry rate and
// every dish/starter at its menu price.
func EstimateFlat(records []models.DailyRecord, pricing models.PricingAssumptions) models.RevenueEstimate {
	return estimate(records, pricing.PricePerEntry, pricing)
}

// EstimateMix replaces the flat entry price with the weighted average session
// price implied by the customer-mix split, then applies the flat formula. An
// inconsistent split (shares above 100%) is flagged on the result but still
// priced with the clamped unit share.
func EstimateMix(records []models.DailyRecord, mix models.MixAssumptions, pricing models.PricingAssumptions) models.RevenueEstimate {
	est := estimate(records, mix.WeightedSessionPrice(), pricing)
	est.Inconsistent = mix.Inconsistent()
	return est
}

func estimate(records []models.DailyRecord, sessionPrice float64, pricing models.PricingAssumptions) models.RevenueEstimate {
	var sport, food float64
	var attendance int
	for _, r := range records {
		sport += float64(r.Attendance) * sessionPrice
		food += float64(r.MealsServed)*pricing.PricePerDish + float64(r.Starters)*pricing.PricePerStarter
		attendance += r.Attendance
	}

	est := models.RevenueEstimate{
		SportRevenue: sport,
		FoodRevenue:  food,
		TotalRevenue: sport + food,
	}
	if est.TotalRevenue > 0 {
		est.FoodSharePct = food / est.TotalRevenue * 100
	}
	if attendance > 0 {
		est.AvgSpendPerVisitor = est.TotalRevenue / float64(attendance)
	}
	return est
}
