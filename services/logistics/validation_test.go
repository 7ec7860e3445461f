package logistics

import (
	"reflect"
	"testing"

	"sokoway/models"
)

func ngnBounds() models.RateSanityBounds {
	return SanityBoundsFor("NGN")
}

func warningTypes(warnings []models.ValidationWarning) []string {
	types := make([]string, 0, len(warnings))
	for _, w := range warnings {
		types = append(types, w.Type)
	}
	return types
}

func TestCheckDuplicateRoute(t *testing.T) {
	lagosAbuja := models.Route{
		From: "Lagos", To: "Abuja",
		RouteType: models.RouteTypeIntercity,
		Country:   "Nigeria", State: "Lagos", City: "Lagos",
	}
	ikejaLocal := models.Route{
		From: "Ikeja", To: "Lekki",
		RouteType: models.RouteTypeIntracity,
		Country:   "Nigeria", State: "Lagos", City: "Lagos",
	}

	cases := []struct {
		name     string
		proposed models.Route
		existing []models.Route
		wantDup  bool
	}{
		{
			name:     "no existing routes",
			proposed: lagosAbuja,
			existing: nil,
			wantDup:  false,
		},
		{
			name:     "exact intercity duplicate",
			proposed: lagosAbuja,
			existing: []models.Route{lagosAbuja},
			wantDup:  true,
		},
		{
			name: "reversed direction is still a duplicate",
			proposed: models.Route{
				From: "Abuja", To: "Lagos",
				RouteType: models.RouteTypeIntercity,
			},
			existing: []models.Route{lagosAbuja},
			wantDup:  true,
		},
		{
			name: "different corridor",
			proposed: models.Route{
				From: "Lagos", To: "Ibadan",
				RouteType: models.RouteTypeIntercity,
			},
			existing: []models.Route{lagosAbuja},
			wantDup:  false,
		},
		{
			name: "intracity collides on locality not endpoints",
			proposed: models.Route{
				From: "Victoria Island", To: "Yaba",
				RouteType: models.RouteTypeIntracity,
				Country:   "Nigeria", State: "Lagos", City: "Lagos",
			},
			existing: []models.Route{ikejaLocal},
			wantDup:  true,
		},
		{
			name: "intracity in another city is fine",
			proposed: models.Route{
				From: "Wuse", To: "Garki",
				RouteType: models.RouteTypeIntracity,
				Country:   "Nigeria", State: "FCT", City: "Abuja",
			},
			existing: []models.Route{ikejaLocal},
			wantDup:  false,
		},
		{
			name:     "intracity never collides with intercity",
			proposed: ikejaLocal,
			existing: []models.Route{lagosAbuja},
			wantDup:  false,
		},
		{
			name: "international matches reversed international",
			proposed: models.Route{
				From: "Accra", To: "Lagos",
				RouteType: models.RouteTypeInternational,
			},
			existing: []models.Route{{
				From: "Lagos", To: "Accra",
				RouteType: models.RouteTypeInternational,
			}},
			wantDup: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckDuplicateRoute(tc.proposed, tc.existing)
			if got.IsDuplicate != tc.wantDup {
				t.Fatalf("IsDuplicate = %v, want %v", got.IsDuplicate, tc.wantDup)
			}
			if tc.wantDup && got.Warning == "" {
				t.Error("expected a duplicate warning message")
			}
			if tc.wantDup && len(got.Duplicates) == 0 {
				t.Error("expected offending routes to be listed")
			}
		})
	}
}

func TestValidatePricingDeviation(t *testing.T) {
	// Market suggests 10000 for a 100km route; at the default rate the
	// per-km value stays inside the NGN bounds so only the deviation
	// buckets fire.
	const suggested, distance = 10000, 100.0

	cases := []struct {
		name      string
		price     float64
		wantTypes []string
		wantValid bool
	}{
		{"way below market", 1000, []string{"pricing_too_low", "price_per_km_low"}, false},
		{"moderately below market", 6000, []string{"pricing_low"}, true},
		{"exactly 50 percent below is a warning", 5000, []string{"pricing_low"}, true},
		{"exactly 30 percent below passes", 7000, nil, true},
		{"at market", 10000, nil, true},
		{"exactly 30 percent above passes", 13000, nil, true},
		{"moderately above market", 14000, []string{"pricing_high"}, true},
		{"exactly 50 percent above is a warning", 15000, []string{"pricing_high"}, true},
		{"way above market", 16000, []string{"pricing_too_high"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidatePricing(tc.price, suggested, distance, ngnBounds())
			if !reflect.DeepEqual(warningTypes(got.Warnings), tc.wantTypes) && !(len(got.Warnings) == 0 && tc.wantTypes == nil) {
				t.Errorf("warnings = %v, want %v", warningTypes(got.Warnings), tc.wantTypes)
			}
			if got.IsValid != tc.wantValid {
				t.Errorf("IsValid = %v, want %v", got.IsValid, tc.wantValid)
			}
		})
	}
}

func TestValidatePricingPerKmBounds(t *testing.T) {
	// 10000 over 600km is 16.7/km, under the NGN floor of 20, while the
	// market deviation is zero. The per-km check fires independently.
	got := ValidatePricing(10000, 10000, 600, ngnBounds())
	if types := warningTypes(got.Warnings); !reflect.DeepEqual(types, []string{"price_per_km_low"}) {
		t.Errorf("warnings = %v, want [price_per_km_low]", types)
	}
	if !got.IsValid {
		t.Error("per-km findings are warnings, check should stay valid")
	}

	// 10000 over 10km is 1000/km, over the NGN ceiling of 500.
	got = ValidatePricing(10000, 10000, 10, ngnBounds())
	if types := warningTypes(got.Warnings); !reflect.DeepEqual(types, []string{"price_per_km_high"}) {
		t.Errorf("warnings = %v, want [price_per_km_high]", types)
	}

	// A looser registered currency accepts the same rate.
	loose := models.RateSanityBounds{MinPerKm: 1, MaxPerKm: 5000}
	got = ValidatePricing(10000, 10000, 10, loose)
	if len(got.Warnings) != 0 {
		t.Errorf("warnings = %v, want none under loose bounds", warningTypes(got.Warnings))
	}
}

func TestValidateEstimatedTime(t *testing.T) {
	hours := func(min, max float64) models.TimeRange {
		return models.TimeRange{Min: min, Max: max, Unit: models.TimeUnitHours}
	}

	cases := []struct {
		name      string
		estimate  models.TimeRange
		distance  float64
		routeType models.RouteType
		wantTypes []string
		wantValid bool
	}{
		{
			// 300km / 2.5h = 120 km/h, impossible in city traffic.
			name:     "intracity too fast",
			estimate: hours(2, 3), distance: 300,
			routeType: models.RouteTypeIntracity,
			wantTypes: []string{"unrealistic_time"}, wantValid: false,
		},
		{
			// 20km / 2h = 10 km/h, suspiciously slow.
			name:     "intracity too slow",
			estimate: hours(2, 2), distance: 20,
			routeType: models.RouteTypeIntracity,
			wantTypes: []string{"excessive_time"}, wantValid: true,
		},
		{
			name:     "intracity plausible",
			estimate: hours(1, 2), distance: 30,
			routeType: models.RouteTypeIntracity,
			wantTypes: nil, wantValid: true,
		},
		{
			// 350km / 2.5h = 140 km/h on the highway.
			name:     "intercity too fast",
			estimate: hours(2, 3), distance: 350,
			routeType: models.RouteTypeIntercity,
			wantTypes: []string{"unrealistic_time"}, wantValid: false,
		},
		{
			// 300km / 2.5h = 120 km/h sits exactly on the intercity limit.
			name:     "intercity at the limit passes",
			estimate: hours(2, 3), distance: 300,
			routeType: models.RouteTypeIntercity,
			wantTypes: nil, wantValid: true,
		},
		{
			// 100km / 4h = 25 km/h for highway travel.
			name:     "intercity too slow",
			estimate: hours(4, 4), distance: 100,
			routeType: models.RouteTypeIntercity,
			wantTypes: []string{"excessive_time"}, wantValid: true,
		},
		{
			// 500km / 5h = 100 km/h cross-border is only a warning.
			name:     "international optimistic is never an error",
			estimate: hours(5, 5), distance: 500,
			routeType: models.RouteTypeInternational,
			wantTypes: []string{"unrealistic_time"}, wantValid: true,
		},
		{
			// 450km / 5h = 90 km/h, flagged the same way for interstate.
			name:     "interstate optimistic",
			estimate: hours(5, 5), distance: 450,
			routeType: models.RouteTypeInterstate,
			wantTypes: []string{"unrealistic_time"}, wantValid: true,
		},
		{
			// 2 days average out to 48 hours; 600km / 48h = 12.5 km/h
			// is fine for a multi-day international leg.
			name: "international multi day",
			estimate: models.TimeRange{
				Min: 2, Max: 2, Unit: models.TimeUnitDays,
			},
			distance:  600,
			routeType: models.RouteTypeInternational,
			wantTypes: nil, wantValid: true,
		},
		{
			name:     "zero duration skips the check",
			estimate: hours(0, 0), distance: 300,
			routeType: models.RouteTypeIntracity,
			wantTypes: nil, wantValid: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateEstimatedTime(tc.estimate, tc.distance, tc.routeType)
			if !reflect.DeepEqual(warningTypes(got.Warnings), tc.wantTypes) && !(len(got.Warnings) == 0 && tc.wantTypes == nil) {
				t.Errorf("warnings = %v, want %v", warningTypes(got.Warnings), tc.wantTypes)
			}
			if got.IsValid != tc.wantValid {
				t.Errorf("IsValid = %v, want %v", got.IsValid, tc.wantValid)
			}
		})
	}
}

func TestValidateTimeText(t *testing.T) {
	// Recognized text defers to the structured check.
	got := ValidateTimeText("2-3 hours", 300, models.RouteTypeIntracity)
	if got.IsValid {
		t.Error("expected the unrealistic speed to invalidate the check")
	}

	// Unrecognized text yields a single formatting warning and stays valid.
	got = ValidateTimeText("soonish", 300, models.RouteTypeIntracity)
	if !got.IsValid {
		t.Error("formatting problems must not invalidate the route")
	}
	if types := warningTypes(got.Warnings); !reflect.DeepEqual(types, []string{"invalid_time_format"}) {
		t.Errorf("warnings = %v, want [invalid_time_format]", types)
	}
}

func TestValidateDistance(t *testing.T) {
	gps := func(v float64) *float64 { return &v }

	cases := []struct {
		name      string
		user      float64
		gps       *float64
		wantTypes []string
		wantValid bool
	}{
		{"no measurement skips", 100, nil, nil, true},
		{"zero measurement skips", 100, gps(0), nil, true},
		{"exact match", 100, gps(100), nil, true},
		{"within tolerance", 110, gps(100), nil, true},
		{"exactly 15 percent passes", 115, gps(100), nil, true},
		{"moderate variance", 120, gps(100), []string{"distance_variance"}, true},
		{"exactly 30 percent is a warning", 130, gps(100), []string{"distance_variance"}, true},
		{"large mismatch", 140, gps(100), []string{"distance_mismatch"}, false},
		{"understated distance", 60, gps(100), []string{"distance_mismatch"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateDistance(tc.user, tc.gps)
			if !reflect.DeepEqual(warningTypes(got.Warnings), tc.wantTypes) && !(len(got.Warnings) == 0 && tc.wantTypes == nil) {
				t.Errorf("warnings = %v, want %v", warningTypes(got.Warnings), tc.wantTypes)
			}
			if got.IsValid != tc.wantValid {
				t.Errorf("IsValid = %v, want %v", got.IsValid, tc.wantValid)
			}
		})
	}
}

func TestValidateRouteAggregation(t *testing.T) {
	gps := 100.0
	route := models.Route{
		From: "Lagos", To: "Abuja",
		RouteType:     models.RouteTypeIntercity,
		DistanceKm:    100,
		Price:         10000,
		Currency:      "NGN",
		EstimatedTime: "2-3 hours",
	}
	market := models.MarketData{SuggestedPrice: 10000, GPSDistanceKm: &gps}

	t.Run("clean route", func(t *testing.T) {
		got := ValidateRoute(route, nil, market)
		if !got.IsValid {
			t.Errorf("IsValid = false, warnings: %v", warningTypes(got.Warnings))
		}
		if !got.CanProceed {
			t.Error("CanProceed must always be true")
		}
		if got.Severity != models.SeverityOK {
			t.Errorf("severity = %s, want ok", got.Severity)
		}
	})

	t.Run("error finding invalidates but never blocks", func(t *testing.T) {
		bad := route
		bad.Price = 1000 // 90% below market
		got := ValidateRoute(bad, nil, market)
		if got.IsValid {
			t.Error("expected IsValid = false for an error-severity finding")
		}
		if !got.CanProceed {
			t.Error("CanProceed must always be true")
		}
		if got.Severity != models.SeverityError {
			t.Errorf("severity = %s, want error", got.Severity)
		}
	})

	t.Run("duplicate warning comes first", func(t *testing.T) {
		slow := route
		slow.EstimatedTime = "soonish"
		got := ValidateRoute(slow, []models.Route{route}, market)
		if len(got.Warnings) < 2 {
			t.Fatalf("expected duplicate and time warnings, got %v", warningTypes(got.Warnings))
		}
		if got.Warnings[0].Type != "duplicate_route" {
			t.Errorf("first warning = %s, want duplicate_route", got.Warnings[0].Type)
		}
		if !got.IsValid {
			t.Error("warning-severity findings must keep the route valid")
		}
	})

	t.Run("missing inputs skip checks", func(t *testing.T) {
		sparse := models.Route{
			From: "Lagos", To: "Abuja",
			RouteType: models.RouteTypeIntercity,
		}
		got := ValidateRoute(sparse, nil, models.MarketData{})
		if !got.IsValid || len(got.Warnings) != 0 {
			t.Errorf("expected a clean result, got warnings %v", warningTypes(got.Warnings))
		}
		if !got.Details.Pricing.IsValid || !got.Details.Time.IsValid || !got.Details.Distance.IsValid {
			t.Error("skipped checks must report valid")
		}
	})

	t.Run("no market reference skips pricing only", func(t *testing.T) {
		got := ValidateRoute(route, nil, models.MarketData{GPSDistanceKm: &gps})
		if len(got.Details.Pricing.Warnings) != 0 {
			t.Errorf("pricing warnings = %v, want none without a reference", warningTypes(got.Details.Pricing.Warnings))
		}
	})

	t.Run("repeated validation is deterministic", func(t *testing.T) {
		first := ValidateRoute(route, []models.Route{route}, market)
		for i := 0; i < 5; i++ {
			again := ValidateRoute(route, []models.Route{route}, market)
			if !reflect.DeepEqual(first, again) {
				t.Fatal("repeated validation of the same route diverged")
			}
		}
	})
}

func TestFormatValidationMessage(t *testing.T) {
	t.Run("nil for a clean result", func(t *testing.T) {
		res := ValidateRoute(models.Route{RouteType: models.RouteTypeIntercity}, nil, models.MarketData{})
		if got := FormatValidationMessage(res); got != nil {
			t.Errorf("expected nil summary, got %+v", got)
		}
	})

	t.Run("partitions errors and warnings", func(t *testing.T) {
		res := models.ValidationResult{
			Warnings: []models.ValidationWarning{
				{Type: "pricing_low", Severity: models.SeverityWarning, Message: "low"},
				{Type: "pricing_too_high", Severity: models.SeverityError, Message: "too high"},
				{Type: "distance_variance", Severity: models.SeverityWarning, Message: "variance"},
			},
		}
		got := FormatValidationMessage(res)
		if got == nil {
			t.Fatal("expected a summary")
		}
		if !got.HasErrors || got.ErrorCount != 1 {
			t.Errorf("errors = %d (has=%v), want 1", got.ErrorCount, got.HasErrors)
		}
		if !got.HasWarnings || got.WarningCount != 2 {
			t.Errorf("warnings = %d (has=%v), want 2", got.WarningCount, got.HasWarnings)
		}
		if got.PrimaryMessage != "too high" {
			t.Errorf("primary = %q, want the first error message", got.PrimaryMessage)
		}
	})

	t.Run("falls back to the first warning", func(t *testing.T) {
		res := models.ValidationResult{
			Warnings: []models.ValidationWarning{
				{Type: "pricing_low", Severity: models.SeverityWarning, Message: "low"},
			},
		}
		got := FormatValidationMessage(res)
		if got == nil || got.PrimaryMessage != "low" {
			t.Fatalf("summary = %+v, want primary message %q", got, "low")
		}
	})
}
