package logistics

import (
	"context"

	partnerRepo "sokoway/database/repository/partner"
	routeRepo "sokoway/database/repository/route"
	"sokoway/models"
	"sokoway/services/geo"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service is the orchestration layer around the pure pricing/validation
// functions: it resolves partner pricing overrides, loads existing routes,
// consults the geo provider and the market-rate cache, then delegates to the
// pure core.
type Service interface {
	QuoteDelivery(ctx context.Context, partnerID string, req QuoteRequest) (models.RouteQuote, error)
	QuoteEnhanced(ctx context.Context, partnerID string, req EnhancedQuoteRequest) (models.EnhancedQuote, error)
	ValidateProposedRoute(ctx context.Context, route models.Route) (*models.ValidationResult, error)
	CreateRoute(ctx context.Context, route models.Route) (*models.Route, *models.ValidationResult, error)
	ListRoutes(ctx context.Context, partnerID string) ([]models.Route, error)
	UpdateRoute(ctx context.Context, route models.Route) error
	DeleteRoute(ctx context.Context, partnerID, routeID string) error
	PartnerPricing(ctx context.Context, partnerID string) (*models.PricingRules, error)
	SetPartnerPricing(ctx context.Context, partnerID string, pricing *models.PricingRules) error
}

// DefaultLogisticsService implements Service.
type DefaultLogisticsService struct {
	RouteRepo   routeRepo.RouteRepository
	PartnerRepo partnerRepo.PartnerRepository
	Geo         geo.Service
	MarketCache *redis.Client
	Logger      *zap.Logger
}
