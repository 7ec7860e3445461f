package handlers

import (
	"net/http"
	"time"

	partnerRepo "sokoway/database/repository/partner"
	"sokoway/models"
	"sokoway/services/logistics"
	"sokoway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartnerHandler manages logistics partner profiles and pricing overrides.
type PartnerHandler struct {
	partners  partnerRepo.PartnerRepository
	logistics logistics.Service
	logger    *zap.Logger
}

// NewPartnerHandler returns a handler for partner management endpoints.
func NewPartnerHandler(partners partnerRepo.PartnerRepository, svc logistics.Service, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{partners: partners, logistics: svc, logger: logger}
}

// RegisterPartnerHandler creates a partner profile and issues a session
// token. Identity verification beyond this is handled by the platform's
// account service.
// POST /api/partners/register
func (h *PartnerHandler) RegisterPartnerHandler(c *gin.Context) {
	var partner models.LogisticsPartner
	if err := c.ShouldBindJSON(&partner); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid partner payload", err.Error())
		return
	}
	if partner.BusinessName == "" || partner.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid partner payload", "businessName and email are required")
		return
	}

	id, err := h.partners.Create(c.Request.Context(), partner)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not register partner", err.Error())
		return
	}

	token, err := utils.GenerateToken(id, partner.Email, 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not issue token", err.Error())
		return
	}
	if err := h.partners.SetTokenHash(c.Request.Context(), id, utils.HashToken(token)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not persist session", err.Error())
		return
	}

	h.logger.Info("partner registered", zap.String("partnerId", id))
	c.JSON(http.StatusCreated, gin.H{"id": id, "token": token})
}

// GetPartnerHandler returns a partner profile.
// GET /api/partners/:id
func (h *PartnerHandler) GetPartnerHandler(c *gin.Context) {
	partner, err := h.partners.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Partner not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, partner)
}

// GetPartnerPricingHandler returns the partner's effective pricing rules:
// the override when one exists, else the platform defaults.
// GET /api/partners/:id/pricing
func (h *PartnerHandler) GetPartnerPricingHandler(c *gin.Context) {
	pricing, err := h.logistics.PartnerPricing(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Partner not found", err.Error())
		return
	}

	effective := logistics.DefaultPlatformPricing
	override := false
	if pricing != nil {
		effective = *pricing
		override = true
	}
	c.JSON(http.StatusOK, gin.H{"pricing": effective, "override": override})
}

// SetPartnerPricingHandler installs or clears the partner's pricing
// override. A null body clears it.
// PUT /api/partners/:id/pricing
func (h *PartnerHandler) SetPartnerPricingHandler(c *gin.Context) {
	if c.Param("id") != partnerID(c) {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "cannot modify another partner's pricing")
		return
	}

	var pricing *models.PricingRules
	if err := c.ShouldBindJSON(&pricing); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid pricing payload", err.Error())
		return
	}

	if err := h.logistics.SetPartnerPricing(c.Request.Context(), c.Param("id"), pricing); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Could not update pricing", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
