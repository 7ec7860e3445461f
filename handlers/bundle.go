package handlers

import (
	partnerRepo "sokoway/database/repository/partner"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups every route handler the router registers, together
// with the dependencies the auth middleware needs.
type HandlerBundle struct {
	PartnerRepo partnerRepo.PartnerRepository
	AuthCache   *redis.Client

	// Pricing and route validation endpoints.
	Quote         gin.HandlerFunc
	EnhancedQuote gin.HandlerFunc
	PricingTables gin.HandlerFunc
	ValidateRoute gin.HandlerFunc
	CreateRoute   gin.HandlerFunc
	ListRoutes    gin.HandlerFunc
	UpdateRoute   gin.HandlerFunc
	DeleteRoute   gin.HandlerFunc

	// Partner endpoints.
	RegisterPartner   gin.HandlerFunc
	GetPartner        gin.HandlerFunc
	GetPartnerPricing gin.HandlerFunc
	SetPartnerPricing gin.HandlerFunc

	// Geo endpoints.
	GetDirections gin.HandlerFunc
	Geocode       gin.HandlerFunc
	AnalyzeRoute  gin.HandlerFunc

	// Payment endpoints.
	CreateDeliveryCharge gin.HandlerFunc
}
