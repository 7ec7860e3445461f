package logistics

import (
	"fmt"
	"math"

	"sokoway/models"
)

// okResult is the outcome of a check whose required inputs were absent.
// Missing data skips a check; it never manufactures a finding.
func okResult() models.CheckResult {
	return models.CheckResult{IsValid: true, Severity: models.SeverityOK}
}

func severityOf(warnings []models.ValidationWarning) models.Severity {
	sev := models.SeverityOK
	for _, w := range warnings {
		if w.Severity == models.SeverityError {
			return models.SeverityError
		}
		sev = models.SeverityWarning
	}
	return sev
}

func checkResult(warnings []models.ValidationWarning) models.CheckResult {
	sev := severityOf(warnings)
	return models.CheckResult{
		IsValid:  sev != models.SeverityError,
		Warnings: warnings,
		Severity: sev,
	}
}

// CheckDuplicateRoute reports existing routes that already cover the
// proposed corridor. Intracity routes collide on locality (country, state
// and city all equal); intercity and international routes collide on the
// from/to pair in either direction.
func CheckDuplicateRoute(newRoute models.Route, existing []models.Route) models.DuplicateResult {
	var duplicates []models.Route
	for _, route := range existing {
		if newRoute.RouteType == models.RouteTypeIntracity && route.RouteType == models.RouteTypeIntracity {
			if route.Country == newRoute.Country && route.State == newRoute.State && route.City == newRoute.City {
				duplicates = append(duplicates, route)
			}
			continue
		}
		if isLongHaul(newRoute.RouteType) && isLongHaul(route.RouteType) {
			if (route.From == newRoute.From && route.To == newRoute.To) ||
				(route.From == newRoute.To && route.To == newRoute.From) {
				duplicates = append(duplicates, route)
			}
		}
	}

	res := models.DuplicateResult{
		IsDuplicate: len(duplicates) > 0,
		Duplicates:  duplicates,
	}
	if res.IsDuplicate {
		res.Warning = fmt.Sprintf("You already have %d route(s) for this location. Adding this will create duplicate routes.", len(duplicates))
	}
	return res
}

func isLongHaul(t models.RouteType) bool {
	return t == models.RouteTypeIntercity || t == models.RouteTypeInternational
}

// ValidatePricing checks a proposed price against the market reference and
// against absolute per-km sanity bounds for the deployment currency. The two
// checks are independent: a price can sit inside the market band and still be
// flagged on its per-km rate.
func ValidatePricing(price, suggestedPrice, distanceKm float64, bounds models.RateSanityBounds) models.CheckResult {
	var warnings []models.ValidationWarning

	deviation := (price - suggestedPrice) / suggestedPrice * 100

	switch {
	case deviation < -50:
		warnings = append(warnings, models.ValidationWarning{
			Type:           "pricing_too_low",
			Severity:       models.SeverityError,
			Message:        fmt.Sprintf("Price is %.0f%% below market rate. This may not cover costs.", math.Abs(deviation)),
			Recommendation: fmt.Sprintf("Consider pricing between %.0f - %.0f", suggestedPrice*0.7, suggestedPrice*1.3),
		})
	case deviation < -30:
		warnings = append(warnings, models.ValidationWarning{
			Type:           "pricing_low",
			Severity:       models.SeverityWarning,
			Message:        fmt.Sprintf("Price is %.0f%% below market rate.", math.Abs(deviation)),
			Recommendation: "Ensure this pricing is sustainable for your business.",
		})
	}

	switch {
	case deviation > 50:
		warnings = append(warnings, models.ValidationWarning{
			Type:           "pricing_too_high",
			Severity:       models.SeverityError,
			Message:        fmt.Sprintf("Price is %.0f%% above market rate. Customers may choose competitors.", deviation),
			Recommendation: fmt.Sprintf("Consider pricing between %.0f - %.0f", suggestedPrice*0.7, suggestedPrice*1.3),
		})
	case deviation > 30:
		warnings = append(warnings, models.ValidationWarning{
			Type:           "pricing_high",
			Severity:       models.SeverityWarning,
			Message:        fmt.Sprintf("Price is %.0f%% above market rate.", deviation),
			Recommendation: "This may reduce your competitiveness.",
		})
	}

	pricePerKm := price / distanceKm
	if pricePerKm < bounds.MinPerKm {
		warnings = append(warnings, models.ValidationWarning{
			Type:           "price_per_km_low",
			Severity:       models.SeverityWarning,
			Message:        fmt.Sprintf("Rate of %.0f/km seems very low.", pricePerKm),
			Recommendation: "Review typical per-km rates for this corridor before publishing.",
		})
	}
	if pricePerKm > bounds.MaxPerKm {
		warnings = append(warnings, models.ValidationWarning{
			Type:           "price_per_km_high",
			Severity:       models.SeverityWarning,
			Message:        fmt.Sprintf("Rate of %.0f/km seems very high.", pricePerKm),
			Recommendation: "Customers may find this excessive.",
		})
	}

	return checkResult(warnings)
}

// ValidateEstimatedTime checks whether a structured time estimate implies a
// physically plausible average speed for the route type.
func ValidateEstimatedTime(estimate models.TimeRange, distanceKm float64, routeType models.RouteType) models.CheckResult {
	hours := estimate.Hours()
	if hours <= 0 {
		return okResult()
	}
	speed := distanceKm / hours

	var warnings []models.ValidationWarning
	switch routeType {
	case models.RouteTypeIntracity:
		if speed > 100 {
			warnings = append(warnings, models.ValidationWarning{
				Type:           "unrealistic_time",
				Severity:       models.SeverityError,
				Message:        fmt.Sprintf("%gkm at this estimate requires %.0f km/h average speed - unrealistic for city traffic.", distanceKm, speed),
				Recommendation: fmt.Sprintf("For %gkm intracity, allow at least %.0f-%.0f hours.", distanceKm, math.Ceil(distanceKm/40), math.Ceil(distanceKm/30)),
			})
		} else if speed < 15 {
			warnings = append(warnings, models.ValidationWarning{
				Type:           "excessive_time",
				Severity:       models.SeverityWarning,
				Message:        fmt.Sprintf("The estimate seems excessive for %gkm.", distanceKm),
				Recommendation: "Consider if this time estimate is accurate.",
			})
		}
	case models.RouteTypeIntercity:
		if speed > 120 {
			warnings = append(warnings, models.ValidationWarning{
				Type:           "unrealistic_time",
				Severity:       models.SeverityError,
				Message:        fmt.Sprintf("%gkm at this estimate requires %.0f km/h - too fast for safe highway travel.", distanceKm, speed),
				Recommendation: fmt.Sprintf("For %gkm intercity, allow at least %.0f-%.0f hours.", distanceKm, math.Ceil(distanceKm/80), math.Ceil(distanceKm/60)),
			})
		} else if speed < 30 {
			warnings = append(warnings, models.ValidationWarning{
				Type:           "excessive_time",
				Severity:       models.SeverityWarning,
				Message:        fmt.Sprintf("The estimate seems excessive for %gkm highway travel.", distanceKm),
				Recommendation: "Typical intercity delivery averages 60-80 km/h.",
			})
		}
	case models.RouteTypeInternational, models.RouteTypeInterstate:
		if speed > 80 {
			warnings = append(warnings, models.ValidationWarning{
				Type:           "unrealistic_time",
				Severity:       models.SeverityWarning,
				Message:        fmt.Sprintf("The estimate may be too optimistic for %gkm cross-border delivery (border delays, customs).", distanceKm),
				Recommendation: "Consider adding buffer time for cross-border processes.",
			})
		}
	}

	return checkResult(warnings)
}

// ValidateTimeText is the free-text boundary in front of
// ValidateEstimatedTime. An unrecognized estimate yields a single
// low-severity formatting warning and leaves the check valid.
func ValidateTimeText(estimate string, distanceKm float64, routeType models.RouteType) models.CheckResult {
	tr, ok := ParseTimeEstimate(estimate)
	if !ok {
		return models.CheckResult{
			IsValid: true,
			Warnings: []models.ValidationWarning{{
				Type:           "invalid_time_format",
				Severity:       models.SeverityWarning,
				Message:        `Time format not recognized. Use format like "2-3 hours" or "1-2 days".`,
				Recommendation: "Please specify estimated time clearly.",
			}},
			Severity: models.SeverityWarning,
		}
	}
	return ValidateEstimatedTime(tr, distanceKm, routeType)
}

// ValidateDistance compares the partner-entered distance with an externally
// measured one. With no measurement available the check is skipped.
func ValidateDistance(userDistanceKm float64, gpsDistanceKm *float64) models.CheckResult {
	if gpsDistanceKm == nil || *gpsDistanceKm <= 0 {
		return okResult()
	}
	gps := *gpsDistanceKm
	percentDiff := math.Abs(userDistanceKm-gps) / gps * 100

	var warnings []models.ValidationWarning
	if percentDiff > 30 {
		warnings = append(warnings, models.ValidationWarning{
			Type:           "distance_mismatch",
			Severity:       models.SeverityError,
			Message:        fmt.Sprintf("Your distance (%gkm) differs significantly from the measured distance (%gkm).", userDistanceKm, gps),
			Recommendation: fmt.Sprintf("Please verify. Measurement shows %gkm for this route.", gps),
		})
	} else if percentDiff > 15 {
		warnings = append(warnings, models.ValidationWarning{
			Type:           "distance_variance",
			Severity:       models.SeverityWarning,
			Message:        fmt.Sprintf("Distance variance detected. Measurement shows %gkm vs your %gkm.", gps, userDistanceKm),
			Recommendation: "Consider using the measured distance for accuracy.",
		})
	}

	return checkResult(warnings)
}

// ValidateRoute runs every advisory check a proposed route qualifies for.
// The duplicate check always runs; pricing, time and distance run only when
// their inputs are present. The aggregated result is advisory: CanProceed is
// always true, and IsValid is false exactly when an error-severity finding
// exists.
func ValidateRoute(route models.Route, existingRoutes []models.Route, market models.MarketData) models.ValidationResult {
	details := models.ValidationDetails{
		Duplicate: CheckDuplicateRoute(route, existingRoutes),
		Pricing:   okResult(),
		Time:      okResult(),
		Distance:  okResult(),
	}

	if route.Price > 0 && market.SuggestedPrice > 0 && route.DistanceKm > 0 {
		details.Pricing = ValidatePricing(route.Price, market.SuggestedPrice, route.DistanceKm, SanityBoundsFor(route.Currency))
	}
	if route.EstimatedTime != "" && route.DistanceKm > 0 {
		details.Time = ValidateTimeText(route.EstimatedTime, route.DistanceKm, route.RouteType)
	}
	if route.DistanceKm > 0 {
		details.Distance = ValidateDistance(route.DistanceKm, market.GPSDistanceKm)
	}

	var all []models.ValidationWarning
	all = append(all, details.Pricing.Warnings...)
	all = append(all, details.Time.Warnings...)
	all = append(all, details.Distance.Warnings...)

	if details.Duplicate.IsDuplicate {
		dup := models.ValidationWarning{
			Type:           "duplicate_route",
			Severity:       models.SeverityWarning,
			Message:        details.Duplicate.Warning,
			Recommendation: "You can proceed, but consider updating the existing route instead.",
		}
		all = append([]models.ValidationWarning{dup}, all...)
	}

	sev := severityOf(all)
	return models.ValidationResult{
		IsValid:    sev != models.SeverityError,
		CanProceed: true,
		Warnings:   all,
		Severity:   sev,
		Details:    details,
	}
}

// FormatValidationMessage partitions a result's warnings for display and
// picks the single primary message (first error, else first warning). It
// returns nil when there is nothing to show.
func FormatValidationMessage(result models.ValidationResult) *models.ValidationSummary {
	if len(result.Warnings) == 0 {
		return nil
	}

	var errs, others []models.ValidationWarning
	for _, w := range result.Warnings {
		if w.Severity == models.SeverityError {
			errs = append(errs, w)
		} else {
			others = append(others, w)
		}
	}

	primary := ""
	if len(errs) > 0 {
		primary = errs[0].Message
	} else if len(others) > 0 {
		primary = others[0].Message
	}

	return &models.ValidationSummary{
		HasErrors:      len(errs) > 0,
		HasWarnings:    len(others) > 0,
		ErrorCount:     len(errs),
		WarningCount:   len(others),
		Errors:         errs,
		Warnings:       others,
		PrimaryMessage: primary,
	}
}
