package models

// PricingAssumptions is the flat-rate revenue model: one average price per
// climbing entry, dish, and starter. Values track the 2025 price list.
type PricingAssumptions struct {
	PricePerEntry   float64 `json:"price_per_entry"`
	PricePerDish    float64 `json:"price_per_dish"`
	PricePerStarter float64 `json:"price_per_starter"`
}

// DefaultPricing returns the reference 2025 tariffs.
func DefaultPricing() PricingAssumptions {
	return PricingAssumptions{
		PricePerEntry:   15.0,
		PricePerDish:    15.5,
		PricePerStarter: 7.0,
	}
}

// MixAssumptions is the segmented revenue model: attendance splits across
// subscribers, 10-session packs, and unitary visitors, each with its own
// effective price per session. The unit share is whatever the other two
// segments leave over.
type MixAssumptions struct {
	SubscriberPrice float64 `json:"subscriber_price"`
	SubscriberShare float64 `json:"subscriber_share"`
	PackPrice       float64 `json:"pack_price"`
	PackShare       float64 `json:"pack_share"`
	UnitPrice       float64 `json:"unit_price"`
}

// DefaultMix returns the reference segmentation: 40% subscribers at 10€,
// 30% packs at 15€, the remainder unitary at 17€.
func DefaultMix() MixAssumptions {
	return MixAssumptions{
		SubscriberPrice: 10.0,
		SubscriberShare: 0.40,
		PackPrice:       15.0,
		PackShare:       0.30,
		UnitPrice:       17.0,
	}
}

// UnitShare is the attendance share left for unitary visitors, clamped at
// zero when subscribers and packs already claim more than 100%.
func (m MixAssumptions) UnitShare() float64 {
	rest := 1.0 - (m.SubscriberShare + m.PackShare)
	if rest < 0 {
		return 0
	}
	return rest
}

// Inconsistent reports whether the configured shares sum above 100%. The
// estimate still proceeds with the clamped unit share; callers surface the
// flag to the user.
func (m MixAssumptions) Inconsistent() bool {
	return m.SubscriberShare+m.PackShare > 1.0
}

// WeightedSessionPrice is the average price paid per climbing session under
// the configured segment split.
func (m MixAssumptions) WeightedSessionPrice() float64 {
	return m.SubscriberPrice*m.SubscriberShare +
		m.PackPrice*m.PackShare +
		m.UnitPrice*m.UnitShare()
}

// RevenueEstimate is the output of either revenue strategy over a filtered
// record set.
type RevenueEstimate struct {
	TotalRevenue       float64 `json:"total_revenue"`
	SportRevenue       float64 `json:"sport_revenue"`
	FoodRevenue        float64 `json:"food_revenue"`
	FoodSharePct       float64 `json:"food_share_pct"`
	AvgSpendPerVisitor float64 `json:"avg_spend_per_visitor"`
	// Inconsistent is set by the mix strategy when segment shares sum above
	// 100% and the unit share was clamped to zero.
	Inconsistent bool `json:"inconsistent,omitempty"`
}
