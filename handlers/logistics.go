package handlers

import (
	"net/http"

	"sokoway/models"
	"sokoway/services/logistics"
	"sokoway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LogisticsHandler exposes the pricing and route-validation engine over HTTP.
type LogisticsHandler struct {
	service logistics.Service
	logger  *zap.Logger
}

// NewLogisticsHandler returns a handler wired to the logistics service.
func NewLogisticsHandler(service logistics.Service, logger *zap.Logger) *LogisticsHandler {
	return &LogisticsHandler{service: service, logger: logger}
}

// partnerID reads the authenticated partner from the request context.
func partnerID(c *gin.Context) string {
	if id, exists := c.Get("partnerID"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// QuoteHandler prices a delivery over a measured distance.
// POST /api/logistics/quote
func (h *LogisticsHandler) QuoteHandler(c *gin.Context) {
	var req logistics.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quote request", err.Error())
		return
	}

	quote, err := h.service.QuoteDelivery(c.Request.Context(), partnerID(c), req)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Could not compute quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

// EnhancedQuoteHandler prices a delivery with weight, speed and add-on fees.
// POST /api/logistics/quote/enhanced
func (h *LogisticsHandler) EnhancedQuoteHandler(c *gin.Context) {
	var req logistics.EnhancedQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quote request", err.Error())
		return
	}

	quote, err := h.service.QuoteEnhanced(c.Request.Context(), partnerID(c), req)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Could not compute quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ValidateRouteHandler runs the advisory route checks. It always answers 200
// with the findings; whether to gate on them is the client's decision.
// POST /api/logistics/routes/validate
func (h *LogisticsHandler) ValidateRouteHandler(c *gin.Context) {
	var route models.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid route payload", err.Error())
		return
	}
	route.PartnerID = partnerID(c)

	result, err := h.service.ValidateProposedRoute(c.Request.Context(), route)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Validation failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"summary": logistics.FormatValidationMessage(*result),
	})
}

// CreateRouteHandler validates and stores a partner route. Findings are
// returned alongside the stored route.
// POST /api/logistics/routes
func (h *LogisticsHandler) CreateRouteHandler(c *gin.Context) {
	var route models.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid route payload", err.Error())
		return
	}
	route.PartnerID = partnerID(c)

	stored, result, err := h.service.CreateRoute(c.Request.Context(), route)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not create route", err.Error())
		return
	}

	h.logger.Info("route created",
		zap.String("routeId", stored.ID),
		zap.String("partnerId", stored.PartnerID),
		zap.String("severity", string(result.Severity)),
	)
	c.JSON(http.StatusCreated, gin.H{
		"route":      stored,
		"validation": result,
	})
}

// ListRoutesHandler returns the authenticated partner's routes.
// GET /api/logistics/routes
func (h *LogisticsHandler) ListRoutesHandler(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context(), partnerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list routes", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// UpdateRouteHandler updates one of the partner's routes.
// PUT /api/logistics/routes/:id
func (h *LogisticsHandler) UpdateRouteHandler(c *gin.Context) {
	var route models.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid route payload", err.Error())
		return
	}
	route.ID = c.Param("id")
	route.PartnerID = partnerID(c)

	if err := h.service.UpdateRoute(c.Request.Context(), route); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not update route", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteRouteHandler removes one of the partner's routes.
// DELETE /api/logistics/routes/:id
func (h *LogisticsHandler) DeleteRouteHandler(c *gin.Context) {
	if err := h.service.DeleteRoute(c.Request.Context(), partnerID(c), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not delete route", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// PricingTablesHandler returns the declarative pricing tables the client
// renders in its calculator UI.
// GET /api/logistics/pricing/tables
func (h *LogisticsHandler) PricingTablesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"platformPricing":    logistics.DefaultPlatformPricing,
		"recommendedPricing": logistics.RecommendedPricing,
		"weightBrackets":     logistics.WeightBrackets,
		"deliverySpeeds":     logistics.DeliverySpeeds,
		"additionalServices": logistics.AdditionalServices,
	})
}
