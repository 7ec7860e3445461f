package handlers

import (
	"net/http"

	"sokoway/services/geo"
	"sokoway/utils"

	"github.com/gin-gonic/gin"
)

// GeoHandler proxies the geo provider for clients that need directions or
// geocoding, and exposes the route analysis the validator consumes.
type GeoHandler struct {
	geo geo.Service
}

// NewGeoHandler returns a handler backed by the given geo service.
func NewGeoHandler(service geo.Service) *GeoHandler {
	return &GeoHandler{geo: service}
}

// GetDirectionsHandler returns the overview polyline between two points.
// GET /api/geo/directions?originLat=..&originLng=..&destLat=..&destLng=..
func (h *GeoHandler) GetDirectionsHandler(c *gin.Context) {
	originLat := c.Query("originLat")
	originLng := c.Query("originLng")
	destLat := c.Query("destLat")
	destLng := c.Query("destLng")

	if originLat == "" || originLng == "" || destLat == "" || destLng == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query parameters",
			"originLat, originLng, destLat and destLng are required")
		return
	}

	polyline, err := h.geo.Polyline(c.Request.Context(), originLat, originLng, destLat, destLng)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Directions unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"polyline": polyline})
}

// GeocodeHandler resolves an address to locality components.
// GET /api/geo/geocode?address=...
func (h *GeoHandler) GeocodeHandler(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query parameter", "address is required")
		return
	}

	place, err := h.geo.Geocode(c.Request.Context(), address)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Geocoding unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, place)
}

// AnalyzeRouteHandler measures and classifies a pickup/delivery pair.
// GET /api/geo/analyze?pickup=...&delivery=...
func (h *GeoHandler) AnalyzeRouteHandler(c *gin.Context) {
	pickup := c.Query("pickup")
	delivery := c.Query("delivery")
	if pickup == "" || delivery == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query parameters", "pickup and delivery are required")
		return
	}

	analysis, err := h.geo.AnalyzeRoute(c.Request.Context(), pickup, delivery)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Route analysis unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, analysis)
}
