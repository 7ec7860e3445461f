package logistics

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"sokoway/config"
	"sokoway/models"
	"sokoway/utils"

	"go.uber.org/zap"
)

// QuoteDelivery prices a delivery for a partner, applying the partner's
// pricing override when one is registered.
func (s *DefaultLogisticsService) QuoteDelivery(ctx context.Context, partnerID string, req QuoteRequest) (models.RouteQuote, error) {
	if req.PartnerPricing == nil && partnerID != "" {
		pricing, err := s.PartnerPricing(ctx, partnerID)
		if err != nil {
			return models.RouteQuote{}, err
		}
		req.PartnerPricing = pricing
	}
	return CalculateDeliveryPrice(req)
}

// QuoteEnhanced prices a delivery with the full weight/speed/add-on
// composition.
func (s *DefaultLogisticsService) QuoteEnhanced(ctx context.Context, partnerID string, req EnhancedQuoteRequest) (models.EnhancedQuote, error) {
	if req.PartnerPricing == nil && partnerID != "" {
		pricing, err := s.PartnerPricing(ctx, partnerID)
		if err != nil {
			return models.EnhancedQuote{}, err
		}
		req.PartnerPricing = pricing
	}
	return CalculateEnhancedPrice(req)
}

// ValidateProposedRoute assembles the inputs the pure validator needs: the
// partner's existing routes, the cached market reference price and an
// externally measured distance from the geo provider. Any of those that
// cannot be obtained is simply left out; the validator skips the
// corresponding check.
func (s *DefaultLogisticsService) ValidateProposedRoute(ctx context.Context, route models.Route) (*models.ValidationResult, error) {
	if route.Currency == "" {
		route.Currency = config.AppConfig.DefaultCurrency
	}

	existing, err := s.RouteRepo.GetByPartnerID(ctx, route.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing routes: %w", err)
	}

	market := models.MarketData{}
	if price, ok := s.suggestedPrice(ctx, route.From, route.To); ok {
		market.SuggestedPrice = price
	}

	if s.Geo != nil && route.From != "" && route.To != "" {
		analysis, err := s.Geo.AnalyzeRoute(ctx, route.From, route.To)
		if err != nil {
			// Provider failure means insufficient data, never a finding.
			s.Logger.Debug("route analysis unavailable", zap.Error(err))
		} else if analysis != nil && analysis.DistanceKm > 0 {
			gps := analysis.DistanceKm
			market.GPSDistanceKm = &gps
			if route.RouteType == "" {
				route.RouteType = analysis.RouteType
			}
		}
	}

	result := ValidateRoute(route, existing, market)
	return &result, nil
}

// CreateRoute validates and persists a partner route. Validation findings
// are advisory: the route is stored even when findings exist, and the caller
// receives them alongside the stored route.
func (s *DefaultLogisticsService) CreateRoute(ctx context.Context, route models.Route) (*models.Route, *models.ValidationResult, error) {
	if route.Currency == "" {
		route.Currency = config.AppConfig.DefaultCurrency
	}

	result, err := s.ValidateProposedRoute(ctx, route)
	if err != nil {
		return nil, nil, err
	}

	id, err := s.RouteRepo.Create(ctx, route)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store route: %w", err)
	}
	route.ID = id

	return &route, result, nil
}

// ListRoutes returns the partner's routes.
func (s *DefaultLogisticsService) ListRoutes(ctx context.Context, partnerID string) ([]models.Route, error) {
	return s.RouteRepo.GetByPartnerID(ctx, partnerID)
}

// UpdateRoute persists changes to an existing route after an ownership check.
func (s *DefaultLogisticsService) UpdateRoute(ctx context.Context, route models.Route) error {
	stored, err := s.RouteRepo.GetByID(ctx, route.ID)
	if err != nil {
		return fmt.Errorf("route not found: %w", err)
	}
	if stored.PartnerID != route.PartnerID {
		return fmt.Errorf("route %s does not belong to partner %s", route.ID, route.PartnerID)
	}
	return s.RouteRepo.Update(ctx, route)
}

// DeleteRoute removes a route after an ownership check.
func (s *DefaultLogisticsService) DeleteRoute(ctx context.Context, partnerID, routeID string) error {
	stored, err := s.RouteRepo.GetByID(ctx, routeID)
	if err != nil {
		return fmt.Errorf("route not found: %w", err)
	}
	if stored.PartnerID != partnerID {
		return fmt.Errorf("route %s does not belong to partner %s", routeID, partnerID)
	}
	return s.RouteRepo.DeleteByID(ctx, routeID)
}

// PartnerPricing returns the partner's pricing override, or nil when the
// partner uses platform defaults.
func (s *DefaultLogisticsService) PartnerPricing(ctx context.Context, partnerID string) (*models.PricingRules, error) {
	partner, err := s.PartnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("partner not found: %w", err)
	}
	return partner.Pricing, nil
}

// SetPartnerPricing installs or clears a partner's pricing override after a
// basic shape check.
func (s *DefaultLogisticsService) SetPartnerPricing(ctx context.Context, partnerID string, pricing *models.PricingRules) error {
	if pricing != nil {
		if pricing.RatePerKm <= 0 {
			return NewQuoteError("rate per km must be a positive number")
		}
		for _, limits := range []models.CategoryLimits{pricing.Intracity, pricing.Intercity} {
			if limits.MinCharge < 0 || limits.MaxCharge < limits.MinCharge {
				return NewQuoteError("category limits must satisfy 0 <= min <= max")
			}
		}
	}
	return s.PartnerRepo.UpdatePricing(ctx, partnerID, pricing)
}

// suggestedPrice looks up the cached market reference for a corridor. The
// cache is directionless, matching duplicate detection.
func (s *DefaultLogisticsService) suggestedPrice(ctx context.Context, from, to string) (float64, bool) {
	if s.MarketCache == nil || from == "" || to == "" {
		return 0, false
	}
	raw, err := s.MarketCache.Get(ctx, utils.MarketRatePrefix+CorridorKey(from, to)).Result()
	if err != nil {
		return 0, false
	}
	var rate models.CorridorRate
	if err := json.Unmarshal([]byte(raw), &rate); err != nil || rate.SuggestedPrice <= 0 {
		return 0, false
	}
	return rate.SuggestedPrice, true
}

// CorridorKey canonicalizes a from/to pair so that both directions of a
// corridor share one market-rate entry.
func CorridorKey(from, to string) string {
	a := strings.ToLower(strings.TrimSpace(from))
	b := strings.ToLower(strings.TrimSpace(to))
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
