package handlers

import (
	"net/http"

	"sokoway/models"
	"sokoway/services/payment"
	"sokoway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes delivery-fee payment intent creation.
type PaymentHandler struct {
	payments payment.Handler
}

// NewPaymentHandler returns a handler backed by the payment gateway wrapper.
func NewPaymentHandler(payments payment.Handler) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateDeliveryChargeHandler creates a payment intent for a quoted delivery
// fee and returns the invoice with the client secret.
// POST /api/payments/delivery-charge
func (h *PaymentHandler) CreateDeliveryChargeHandler(c *gin.Context) {
	var req models.DeliveryChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid charge request", err.Error())
		return
	}

	invoice, err := h.payments.CreateDeliveryCharge(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Warn("delivery charge failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Payment gateway error", err.Error())
		return
	}
	c.JSON(http.StatusCreated, invoice)
}
