package logistics

import (
	"math"
	"testing"
)

func TestWeightBracketFor(t *testing.T) {
	cases := []struct {
		name   string
		weight float64
		want   string
	}{
		{"zero weight", 0, "light"},
		{"light", 3, "light"},
		{"light upper boundary", 5, "light"},
		{"medium", 12, "medium"},
		{"medium upper boundary", 20, "medium"},
		{"heavy", 35, "heavy"},
		{"heavy upper boundary", 50, "heavy"},
		{"bulk", 51, "bulk"},
		{"very heavy bulk", 4000, "bulk"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeightBracketFor(tc.weight); got.ID != tc.want {
				t.Fatalf("expected bracket %q got %q", tc.want, got.ID)
			}
		})
	}
}

func TestCalculateEnhancedPrice(t *testing.T) {
	cases := []struct {
		name      string
		req       EnhancedQuoteRequest
		wantFinal float64
	}{
		{
			// 10km * 500 = 5000, light (x1.0), no speed, no services.
			name:      "base only",
			req:       EnhancedQuoteRequest{QuoteRequest: QuoteRequest{DistanceKm: 10}, WeightKg: 2},
			wantFinal: 5000,
		},
		{
			// 10km * 500 = 5000 * 1.3 (medium) = 6500.
			name:      "weight multiplier",
			req:       EnhancedQuoteRequest{QuoteRequest: QuoteRequest{DistanceKm: 10}, WeightKg: 10},
			wantFinal: 6500,
		},
		{
			// 5000 * 1.3 (medium) * 1.5 (express) = 9750.
			name: "weight then speed",
			req: EnhancedQuoteRequest{
				QuoteRequest: QuoteRequest{DistanceKm: 10},
				WeightKg:     10,
				SpeedTier:    "express",
			},
			wantFinal: 9750,
		},
		{
			// 5000 * 2.5 (same day) = 12500, clamped at the intracity max 10000.
			name: "clamp applies after multipliers",
			req: EnhancedQuoteRequest{
				QuoteRequest: QuoteRequest{DistanceKm: 10},
				WeightKg:     2,
				SpeedTier:    "same_day",
			},
			wantFinal: 10000,
		},
		{
			// 5000 * 0.8 (economy) = 4000.
			name: "economy discount",
			req: EnhancedQuoteRequest{
				QuoteRequest: QuoteRequest{DistanceKm: 10},
				WeightKg:     2,
				SpeedTier:    "economy",
			},
			wantFinal: 4000,
		},
		{
			// 5000 + 100 (fragile) + 50 (signature) = 5150.
			name: "flat service fees",
			req: EnhancedQuoteRequest{
				QuoteRequest: QuoteRequest{DistanceKm: 10},
				WeightKg:     2,
				Services:     []string{"fragile_handling", "signature"},
			},
			wantFinal: 5150,
		},
		{
			// 5000 + 0.02 * 50000 (insurance on item value) = 6000.
			name: "percentage fee on item value",
			req: EnhancedQuoteRequest{
				QuoteRequest: QuoteRequest{DistanceKm: 10},
				WeightKg:     2,
				Services:     []string{"insurance"},
				ItemValue:    50000,
			},
			wantFinal: 6000,
		},
		{
			// 6km * 500 = 3000 * 1.3 (medium) * 1.8 (next day) = 7020
			// + 300 (cold chain) + 0.3 * 2000 (weekend) = 7920.
			name: "full composition order",
			req: EnhancedQuoteRequest{
				QuoteRequest: QuoteRequest{DistanceKm: 6},
				WeightKg:     8,
				SpeedTier:    "next_day",
				Services:     []string{"cold_chain", "weekend_delivery"},
				ItemValue:    2000,
			},
			wantFinal: 7920,
		},
		{
			// 2km * 500 = 1000 * 1.0 = 1000, lifted to the intracity min 2000.
			name: "minimum applies after fees",
			req: EnhancedQuoteRequest{
				QuoteRequest: QuoteRequest{DistanceKm: 2},
				WeightKg:     1,
			},
			wantFinal: 2000,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateEnhancedPrice(tc.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.FinalPrice != tc.wantFinal {
				t.Errorf("final price = %v, want %v", got.FinalPrice, tc.wantFinal)
			}
		})
	}
}

func TestCalculateEnhancedPriceFeeLines(t *testing.T) {
	got, err := CalculateEnhancedPrice(EnhancedQuoteRequest{
		QuoteRequest: QuoteRequest{DistanceKm: 10},
		WeightKg:     2,
		Services:     []string{"insurance", "signature"},
		ItemValue:    10000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.ServiceFees) != 2 {
		t.Fatalf("expected 2 fee lines, got %d", len(got.ServiceFees))
	}
	// Flat fees are listed before percentage fees.
	if got.ServiceFees[0].ID != "signature" || got.ServiceFees[0].Amount != 50 {
		t.Errorf("first fee = %+v, want flat signature fee of 50", got.ServiceFees[0])
	}
	if got.ServiceFees[1].ID != "insurance" || got.ServiceFees[1].Amount != 200 {
		t.Errorf("second fee = %+v, want insurance fee of 200", got.ServiceFees[1])
	}
}

func TestCalculateEnhancedPriceErrors(t *testing.T) {
	cases := []struct {
		name string
		req  EnhancedQuoteRequest
	}{
		{"negative weight", EnhancedQuoteRequest{QuoteRequest: QuoteRequest{DistanceKm: 5}, WeightKg: -1}},
		{"NaN weight", EnhancedQuoteRequest{QuoteRequest: QuoteRequest{DistanceKm: 5}, WeightKg: math.NaN()}},
		{"negative item value", EnhancedQuoteRequest{QuoteRequest: QuoteRequest{DistanceKm: 5}, ItemValue: -200}},
		{"unknown speed tier", EnhancedQuoteRequest{QuoteRequest: QuoteRequest{DistanceKm: 5}, SpeedTier: "teleport"}},
		{"unknown service", EnhancedQuoteRequest{QuoteRequest: QuoteRequest{DistanceKm: 5}, Services: []string{"gift_wrap"}}},
		{"invalid base distance", EnhancedQuoteRequest{QuoteRequest: QuoteRequest{DistanceKm: -5}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CalculateEnhancedPrice(tc.req); err == nil {
				t.Fatal("expected an error, got nil")
			}
		})
	}
}

func TestWeightBracketsCoverAllWeights(t *testing.T) {
	// The table must be contiguous from zero with non-decreasing multipliers.
	prevMax := 0.0
	prevMult := 0.0
	for _, b := range WeightBrackets {
		if b.MinKg != prevMax {
			t.Errorf("bracket %q starts at %v, expected %v", b.ID, b.MinKg, prevMax)
		}
		if b.Multiplier < prevMult {
			t.Errorf("bracket %q multiplier %v decreases from %v", b.ID, b.Multiplier, prevMult)
		}
		prevMax = b.MaxKg
		prevMult = b.Multiplier
	}
	if !math.IsInf(prevMax, 1) {
		t.Errorf("last bracket ends at %v, expected +Inf", prevMax)
	}
}
