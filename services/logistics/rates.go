package logistics

import (
	"math"

	"sokoway/models"
)

// intracityMaxKm is the distance threshold (inclusive) below which a route
// is priced as intracity.
const intracityMaxKm = 50.0

// DefaultPlatformPricing applies whenever a partner has not registered an
// override of their own.
var DefaultPlatformPricing = models.PricingRules{
	RatePerKm: 500,
	Intracity: models.CategoryLimits{MinCharge: 2000, MaxCharge: 10000},
	Intercity: models.CategoryLimits{MinCharge: 2000, MaxCharge: 20000},
}

// RecommendedPricing is the advisory corridor shown to partners configuring
// their own rates.
var RecommendedPricing = struct {
	RatePerKm models.RecommendedRange
	Intracity models.CategoryLimits
	Intercity models.CategoryLimits
}{
	RatePerKm: models.RecommendedRange{Min: 300, Default: 500, Max: 1000},
	Intracity: models.CategoryLimits{MinCharge: 2000, MaxCharge: 10000},
	Intercity: models.CategoryLimits{MinCharge: 2000, MaxCharge: 20000},
}

// WeightBrackets are ordered, contiguous and cover [0, +Inf). Bracket
// selection is by containment of the item weight; multipliers never
// decrease across the table.
var WeightBrackets = []models.WeightBracket{
	{ID: "light", Label: "Light (0-5 kg)", MinKg: 0, MaxKg: 5, Multiplier: 1.0},
	{ID: "medium", Label: "Medium (5-20 kg)", MinKg: 5, MaxKg: 20, Multiplier: 1.3},
	{ID: "heavy", Label: "Heavy (20-50 kg)", MinKg: 20, MaxKg: 50, Multiplier: 1.6},
	{ID: "bulk", Label: "Bulk (50+ kg)", MinKg: 50, MaxKg: math.Inf(1), Multiplier: 2.0},
}

// DeliverySpeeds are the selectable service-speed tiers.
var DeliverySpeeds = map[string]models.DeliverySpeed{
	"same_day": {ID: "same_day", Label: "Same Day", Multiplier: 2.5},
	"next_day": {ID: "next_day", Label: "Next Day", Multiplier: 1.8},
	"express":  {ID: "express", Label: "Express (2-3 days)", Multiplier: 1.5},
	"standard": {ID: "standard", Label: "Standard (3-5 days)", Multiplier: 1.0},
	"economy":  {ID: "economy", Label: "Economy (5-7 days)", Multiplier: 0.8},
}

// AdditionalServices are the optional add-ons a sender can attach to a
// delivery. Percentage fees apply to the declared item value.
var AdditionalServices = map[string]models.AdditionalService{
	"insurance":        {ID: "insurance", Label: "Insurance Coverage", Type: models.ServiceFeePercentage, Value: 0.02},
	"signature":        {ID: "signature", Label: "Signature Required", Type: models.ServiceFeeFlat, Value: 50},
	"fragile_handling": {ID: "fragile_handling", Label: "Fragile Handling", Type: models.ServiceFeeFlat, Value: 100},
	"cold_chain":       {ID: "cold_chain", Label: "Cold Chain (Refrigerated)", Type: models.ServiceFeeFlat, Value: 300},
	"hazardous":        {ID: "hazardous", Label: "Hazardous Materials", Type: models.ServiceFeeFlat, Value: 500},
	"weekend_delivery": {ID: "weekend_delivery", Label: "Weekend Delivery", Type: models.ServiceFeePercentage, Value: 0.3},
	"remote_area":      {ID: "remote_area", Label: "Remote Area Fee", Type: models.ServiceFeeFlat, Value: 200},
}

// sanityBounds holds the absolute per-km price bounds keyed by currency.
// The table ships with NGN defaults; deployments register other currencies
// at startup via RegisterSanityBounds.
var sanityBounds = map[string]models.RateSanityBounds{
	"NGN": {MinPerKm: 20, MaxPerKm: 500},
}

// defaultSanityBounds is used for currencies with no registered entry.
var defaultSanityBounds = models.RateSanityBounds{MinPerKm: 20, MaxPerKm: 500}

// RegisterSanityBounds installs per-km sanity bounds for a currency.
// Intended for startup configuration; not safe for concurrent use with
// in-flight validations.
func RegisterSanityBounds(currency string, bounds models.RateSanityBounds) {
	sanityBounds[currency] = bounds
}

// SanityBoundsFor returns the per-km bounds for a currency, falling back to
// the platform default when the currency is unknown or empty.
func SanityBoundsFor(currency string) models.RateSanityBounds {
	if b, ok := sanityBounds[currency]; ok {
		return b
	}
	return defaultSanityBounds
}

// WeightBracketFor returns the bracket containing the given weight.
// The lower bound is exclusive except for the first bracket, so boundary
// weights land in the lighter bracket (5 kg is still "light").
func WeightBracketFor(weightKg float64) models.WeightBracket {
	for _, b := range WeightBrackets {
		if weightKg <= b.MaxKg {
			return b
		}
	}
	return WeightBrackets[len(WeightBrackets)-1]
}
