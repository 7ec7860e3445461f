package models

import (
	"encoding/json"
	"math"
)

// CategoryLimits bound the final price for one route category.
type CategoryLimits struct {
	MinCharge float64 `bson:"minCharge" json:"minCharge"`
	MaxCharge float64 `bson:"maxCharge" json:"maxCharge"`
}

// PricingRules is the platform-wide rule set for distance pricing.
// A logistics partner may register an override of the same shape.
type PricingRules struct {
	RatePerKm float64        `bson:"ratePerKm" json:"ratePerKm"`
	Intracity CategoryLimits `bson:"intracity" json:"intracity"`
	Intercity CategoryLimits `bson:"intercity" json:"intercity"`
}

// WeightBracket maps an item-weight interval to a price multiplier.
// Brackets are ordered, contiguous and cover [0, +Inf); multipliers are
// non-decreasing.
type WeightBracket struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	MinKg      float64 `json:"min"`
	MaxKg      float64 `json:"max"`
	Multiplier float64 `json:"multiplier"`
}

// MarshalJSON renders the open-ended bracket with a null upper bound, since
// JSON has no representation for +Inf.
func (b WeightBracket) MarshalJSON() ([]byte, error) {
	type alias struct {
		ID         string   `json:"id"`
		Label      string   `json:"label"`
		MinKg      float64  `json:"min"`
		MaxKg      *float64 `json:"max"`
		Multiplier float64  `json:"multiplier"`
	}
	a := alias{ID: b.ID, Label: b.Label, MinKg: b.MinKg, Multiplier: b.Multiplier}
	if !math.IsInf(b.MaxKg, 1) {
		a.MaxKg = &b.MaxKg
	}
	return json.Marshal(a)
}

// DeliverySpeed is a selectable service-speed tier.
type DeliverySpeed struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// ServiceFeeType distinguishes flat fees from percentage fees. Percentage
// fees apply to the declared item value, not to the transport price.
type ServiceFeeType string

const (
	ServiceFeeFlat       ServiceFeeType = "flat"
	ServiceFeePercentage ServiceFeeType = "percentage"
)

// AdditionalService is an optional add-on with its fee rule.
type AdditionalService struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Type  ServiceFeeType `json:"type"`
	Value float64        `json:"value"`
}

// QuoteBreakdown explains which pricing rule produced the final price.
// Informational only; nothing downstream computes from it.
type QuoteBreakdown struct {
	BaseCalculation string `json:"baseCalculation"`
	AppliedRule     string `json:"appliedRule"`
}

// RouteQuote is the computed price for a delivery over a given distance.
// It is derived data; the core never persists it.
type RouteQuote struct {
	DistanceKm      float64        `json:"distance"`
	Category        RouteCategory  `json:"category"`
	RatePerKm       float64        `json:"ratePerKm"`
	CalculatedPrice float64        `json:"calculatedPrice"`
	MinCharge       float64        `json:"minCharge"`
	MaxCharge       float64        `json:"maxCharge"`
	FinalPrice      float64        `json:"finalPrice"`
	Breakdown       QuoteBreakdown `json:"breakdown"`
}

// FeeLine is one applied add-on fee inside an enhanced quote.
type FeeLine struct {
	ID     string         `json:"id"`
	Type   ServiceFeeType `json:"type"`
	Amount float64        `json:"amount"`
}

// EnhancedQuote extends RouteQuote with the weight, speed and add-on fee
// composition. The multiplier/fee application order is fixed so identical
// inputs always reproduce the same price.
type EnhancedQuote struct {
	RouteQuote
	WeightBracket    string    `json:"weightBracket,omitempty"`
	WeightMultiplier float64   `json:"weightMultiplier"`
	SpeedTier        string    `json:"speedTier,omitempty"`
	SpeedMultiplier  float64   `json:"speedMultiplier"`
	ServiceFees      []FeeLine `json:"serviceFees,omitempty"`
}

// RecommendedRange is the advisory corridor the platform suggests for a
// partner-configurable value.
type RecommendedRange struct {
	Min     float64 `json:"min"`
	Default float64 `json:"default"`
	Max     float64 `json:"max"`
}

// RateSanityBounds are the absolute per-kilometre bounds, denominated in one
// currency, outside which a route price is flagged as suspicious.
type RateSanityBounds struct {
	MinPerKm float64 `json:"minPerKm"`
	MaxPerKm float64 `json:"maxPerKm"`
}
