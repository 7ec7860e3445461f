package logistics

import (
	"math"
	"sort"

	"sokoway/models"
)

// EnhancedQuoteRequest extends a distance quote with the item weight, the
// selected delivery speed and any add-on services. ItemValue is only needed
// when a percentage-fee service (e.g. insurance) is selected.
type EnhancedQuoteRequest struct {
	QuoteRequest
	WeightKg  float64  `json:"weight"`
	SpeedTier string   `json:"speedTier,omitempty"`
	Services  []string `json:"services,omitempty"`
	ItemValue float64  `json:"itemValue,omitempty"`
}

// CalculateEnhancedPrice composes the full delivery price in a fixed order:
// base distance price, weight-bracket multiplier, delivery-speed multiplier,
// flat service fees, percentage service fees on the item value, then the
// category clamp and whole-unit rounding. Reordering the steps would change
// prices, so the sequence is part of the contract.
func CalculateEnhancedPrice(req EnhancedQuoteRequest) (models.EnhancedQuote, error) {
	if math.IsNaN(req.WeightKg) || req.WeightKg < 0 {
		return models.EnhancedQuote{}, NewQuoteError("weight must be a non-negative number")
	}
	if math.IsNaN(req.ItemValue) || req.ItemValue < 0 {
		return models.EnhancedQuote{}, NewQuoteError("item value must be a non-negative number")
	}

	base, err := CalculateDeliveryPrice(req.QuoteRequest)
	if err != nil {
		return models.EnhancedQuote{}, err
	}

	price := req.DistanceKm * base.RatePerKm

	bracket := WeightBracketFor(req.WeightKg)
	price *= bracket.Multiplier

	speedMultiplier := 1.0
	speedID := ""
	if req.SpeedTier != "" {
		speed, ok := DeliverySpeeds[req.SpeedTier]
		if !ok {
			return models.EnhancedQuote{}, NewQuoteError("unknown delivery speed tier: " + req.SpeedTier)
		}
		speedMultiplier = speed.Multiplier
		speedID = speed.ID
	}
	price *= speedMultiplier

	fees, err := serviceFees(req.Services, req.ItemValue)
	if err != nil {
		return models.EnhancedQuote{}, err
	}
	for _, f := range fees {
		price += f.Amount
	}

	limits := models.CategoryLimits{MinCharge: base.MinCharge, MaxCharge: base.MaxCharge}
	if price < limits.MinCharge {
		price = limits.MinCharge
	}
	if price > limits.MaxCharge {
		price = limits.MaxCharge
	}
	final := math.Round(price)

	quote := base
	quote.CalculatedPrice = math.Round(req.DistanceKm * base.RatePerKm * bracket.Multiplier * speedMultiplier)
	quote.FinalPrice = final
	quote.Breakdown.AppliedRule = appliedRule(final, limits)

	return models.EnhancedQuote{
		RouteQuote:       quote,
		WeightBracket:    bracket.ID,
		WeightMultiplier: bracket.Multiplier,
		SpeedTier:        speedID,
		SpeedMultiplier:  speedMultiplier,
		ServiceFees:      fees,
	}, nil
}

// serviceFees resolves add-on IDs to fee lines. Flat fees come first, then
// percentage fees, matching the composition order of the price.
func serviceFees(ids []string, itemValue float64) ([]models.FeeLine, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	fees := make([]models.FeeLine, 0, len(ids))
	for _, id := range ids {
		svc, ok := AdditionalServices[id]
		if !ok {
			return nil, NewQuoteError("unknown additional service: " + id)
		}
		amount := svc.Value
		if svc.Type == models.ServiceFeePercentage {
			amount = svc.Value * itemValue
		}
		fees = append(fees, models.FeeLine{ID: svc.ID, Type: svc.Type, Amount: amount})
	}
	sort.SliceStable(fees, func(i, j int) bool {
		return fees[i].Type == models.ServiceFeeFlat && fees[j].Type == models.ServiceFeePercentage
	})
	return fees, nil
}
