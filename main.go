// File: sokoway/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sokoway/config"
	"sokoway/cron"
	"sokoway/database"
	partnerRepoPkg "sokoway/database/repository/partner"
	routeRepoPkg "sokoway/database/repository/route"
	"sokoway/handlers"
	"sokoway/middleware"
	"sokoway/models"
	"sokoway/routes"
	"sokoway/services/geo"
	"sokoway/services/logistics"
	"sokoway/services/payment"
	"sokoway/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	stripe.Key = config.AppConfig.StripeKey
	for _, b := range config.AppConfig.PricingBounds {
		logistics.RegisterSanityBounds(b.Currency, models.RateSanityBounds{
			MinPerKm: b.MinPerKm,
			MaxPerKm: b.MaxPerKm,
		})
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	routeRepo := routeRepoPkg.NewMongoRouteRepo()
	partnerRepo := partnerRepoPkg.NewMongoPartnerRepo()

	// services.
	geoService := geo.NewGoogleGeoService(config.AppConfig.GoogleAPIKey, utils.GetCacheClient(), logger)

	logisticsService := &logistics.DefaultLogisticsService{
		RouteRepo:   routeRepo,
		PartnerRepo: partnerRepo,
		Geo:         geoService,
		MarketCache: utils.GetMarketRateClient(),
		Logger:      logger,
	}

	paymentService := payment.NewStripePaymentHandler(logger)

	logisticsHandler := handlers.NewLogisticsHandler(logisticsService, logger)
	partnerHandler := handlers.NewPartnerHandler(partnerRepo, logisticsService, logger)
	geoHandler := handlers.NewGeoHandler(geoService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		PartnerRepo: partnerRepo,
		AuthCache:   utils.GetAuthCacheClient(),

		// Logistics endpoints.
		Quote:         logisticsHandler.QuoteHandler,
		EnhancedQuote: logisticsHandler.EnhancedQuoteHandler,
		PricingTables: logisticsHandler.PricingTablesHandler,
		ValidateRoute: logisticsHandler.ValidateRouteHandler,
		CreateRoute:   logisticsHandler.CreateRouteHandler,
		ListRoutes:    logisticsHandler.ListRoutesHandler,
		UpdateRoute:   logisticsHandler.UpdateRouteHandler,
		DeleteRoute:   logisticsHandler.DeleteRouteHandler,

		// Partner endpoints.
		RegisterPartner:   partnerHandler.RegisterPartnerHandler,
		GetPartner:        partnerHandler.GetPartnerHandler,
		GetPartnerPricing: partnerHandler.GetPartnerPricingHandler,
		SetPartnerPricing: partnerHandler.SetPartnerPricingHandler,

		// Geo endpoints.
		GetDirections: geoHandler.GetDirectionsHandler,
		Geocode:       geoHandler.GeocodeHandler,
		AnalyzeRoute:  geoHandler.AnalyzeRouteHandler,

		// Payment endpoints.
		CreateDeliveryCharge: paymentHandler.CreateDeliveryChargeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background market-rate aggregation.
	cron.InitMarketRateWorker(routeRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
