package routes

import (
	"net/http"
	"time"

	"sokoway/handlers"
	"sokoway/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLogisticsRoutes registers the pricing and route-validation
// endpoints. Quotes are public (the buyer checkout calls them); route
// management requires a partner session.
func RegisterLogisticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/logistics")
	{
		api.POST("/quote", hb.Quote)
		api.POST("/quote/enhanced", hb.EnhancedQuote)
		api.GET("/pricing/tables", hb.PricingTables)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthPartnerMiddleware(hb.PartnerRepo, hb.AuthCache))
		protected.POST("/routes/validate", hb.ValidateRoute)
		protected.POST("/routes", hb.CreateRoute)
		protected.GET("/routes", hb.ListRoutes)
		protected.PUT("/routes/:id", hb.UpdateRoute)
		protected.DELETE("/routes/:id", hb.DeleteRoute)
	}
}

// RegisterPartnerRoutes registers partner profile and pricing endpoints.
func RegisterPartnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/partners")
	{
		api.POST("/register", hb.RegisterPartner)
		api.GET("/id/:id", hb.GetPartner)
		api.GET("/id/:id/pricing", hb.GetPartnerPricing)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthPartnerMiddleware(hb.PartnerRepo, hb.AuthCache))
		protected.PUT("/id/:id/pricing", hb.SetPartnerPricing)
	}
}

// RegisterGeoRoutes registers the geo provider proxy endpoints.
func RegisterGeoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/geo")
	{
		api.GET("/directions", hb.GetDirections)
		api.GET("/geocode", hb.Geocode)
		api.GET("/analyze", hb.AnalyzeRoute)
	}
}

// RegisterPaymentRoutes registers the delivery-fee payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthPartnerMiddleware(hb.PartnerRepo, hb.AuthCache))
		api.POST("/delivery-charge", hb.CreateDeliveryCharge)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Sokoway"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLogisticsRoutes(r, hb)
	RegisterPartnerRoutes(r, hb)
	RegisterGeoRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
