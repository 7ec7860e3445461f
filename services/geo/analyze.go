package geo

import (
	"context"
	"encoding/json"

	"sokoway/models"
	"sokoway/utils"

	"go.uber.org/zap"
)

// AnalyzeRoute geocodes the pickup and delivery addresses, measures the
// driving route between them and classifies the corridor. Results are cached
// because route forms re-query the same pair on every edit.
func (s *GoogleGeoService) AnalyzeRoute(ctx context.Context, pickup, delivery string) (*models.RouteAnalysis, error) {
	cacheKey := utils.GeoCachePrefix + pickup + "|" + delivery
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached models.RouteAnalysis
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	pickupPlace, err := s.Geocode(ctx, pickup)
	if err != nil {
		return nil, err
	}
	deliveryPlace, err := s.Geocode(ctx, delivery)
	if err != nil {
		return nil, err
	}

	dr, err := s.directions(ctx, pickup, delivery)
	if err != nil {
		return nil, err
	}
	leg := dr.Routes[0].Legs[0]

	analysis := &models.RouteAnalysis{
		DistanceKm:  float64(leg.Distance.Value) / 1000,
		Distance:    leg.Distance,
		Duration:    leg.Duration,
		Pickup:      *pickupPlace,
		Delivery:    *deliveryPlace,
		IsSameCity:  sameNonEmpty(pickupPlace.Components.City, deliveryPlace.Components.City),
		IsSameState: sameNonEmpty(pickupPlace.Components.State, deliveryPlace.Components.State),
	}
	analysis.RouteType = classify(analysis)

	if s.cache != nil {
		if raw, err := json.Marshal(analysis); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, utils.GeoCacheTTL).Err(); err != nil {
				s.logger.Debug("geo cache set failed", zap.Error(err))
			}
		}
	}

	return analysis, nil
}

func sameNonEmpty(a, b string) bool {
	return a != "" && a == b
}

func classify(a *models.RouteAnalysis) models.RouteType {
	switch {
	case a.IsSameCity:
		return models.RouteTypeIntracity
	case a.IsSameState:
		return models.RouteTypeIntercity
	case sameNonEmpty(a.Pickup.Components.Country, a.Delivery.Components.Country):
		return models.RouteTypeInterstate
	default:
		return models.RouteTypeInternational
	}
}
