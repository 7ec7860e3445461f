package logistics

import (
	"fmt"
	"math"

	"sokoway/models"
)

// QuoteRequest carries everything needed to price a delivery over a
// measured distance. Category is optional; when empty it is resolved from
// the distance. PartnerPricing, when set, replaces the platform rules.
type QuoteRequest struct {
	DistanceKm     float64              `json:"distance"`
	Category       models.RouteCategory `json:"category,omitempty"`
	RatePerKm      float64              `json:"ratePerKm,omitempty"`
	PartnerPricing *models.PricingRules `json:"partnerPricing,omitempty"`
}

// DetermineRouteCategory classifies a route by distance. The 50 km boundary
// is inclusive on the intracity side.
func DetermineRouteCategory(distanceKm float64) models.RouteCategory {
	if distanceKm <= intracityMaxKm {
		return models.RouteCategoryIntracity
	}
	return models.RouteCategoryIntercity
}

// CalculateDeliveryPrice computes a bounded delivery price from distance and
// a per-km rate. The base price distance*rate is clamped to the resolved
// category's min/max charges and rounded to a whole currency unit.
//
// Invalid numeric input (negative or NaN distance, non-positive rate) is
// rejected with a QuoteError rather than silently zeroed.
func CalculateDeliveryPrice(req QuoteRequest) (models.RouteQuote, error) {
	if math.IsNaN(req.DistanceKm) || req.DistanceKm < 0 {
		return models.RouteQuote{}, NewQuoteError("distance must be a non-negative number")
	}

	rules := DefaultPlatformPricing
	if req.PartnerPricing != nil {
		rules = *req.PartnerPricing
	}

	rate := req.RatePerKm
	if rate == 0 {
		rate = rules.RatePerKm
	}
	if math.IsNaN(rate) || rate <= 0 {
		return models.RouteQuote{}, NewQuoteError("rate per km must be a positive number")
	}

	category := req.Category
	if category == "" {
		category = DetermineRouteCategory(req.DistanceKm)
	}

	limits := rules.Intercity
	if category == models.RouteCategoryIntracity {
		limits = rules.Intracity
	}

	calculated := math.Round(req.DistanceKm * rate)

	price := req.DistanceKm * rate
	if price < limits.MinCharge {
		price = limits.MinCharge
	}
	if price > limits.MaxCharge {
		price = limits.MaxCharge
	}
	final := math.Round(price)

	return models.RouteQuote{
		DistanceKm:      math.Round(req.DistanceKm*10) / 10,
		Category:        category,
		RatePerKm:       rate,
		CalculatedPrice: calculated,
		MinCharge:       limits.MinCharge,
		MaxCharge:       limits.MaxCharge,
		FinalPrice:      final,
		Breakdown: models.QuoteBreakdown{
			BaseCalculation: fmt.Sprintf("%gkm × %g/km = %g", req.DistanceKm, rate, calculated),
			AppliedRule:     appliedRule(final, limits),
		},
	}, nil
}

func appliedRule(final float64, limits models.CategoryLimits) string {
	switch final {
	case limits.MinCharge:
		return fmt.Sprintf("Minimum charge applied (%g)", limits.MinCharge)
	case limits.MaxCharge:
		return fmt.Sprintf("Maximum charge applied (%g)", limits.MaxCharge)
	default:
		return "Standard rate applied"
	}
}
