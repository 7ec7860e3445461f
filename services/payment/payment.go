package payment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"sokoway/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Handler creates gateway payment intents for quoted delivery fees.
// Checkout itself happens on the client against the returned client secret.
type Handler interface {
	CreateDeliveryCharge(ctx context.Context, req models.DeliveryChargeRequest) (*models.DeliveryInvoice, error)
}

// StripePaymentHandler implements Handler against Stripe.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler returns a Stripe-backed payment handler.
// stripe.Key must already be set at startup.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// CreateDeliveryCharge creates a payment intent for a delivery fee and
// returns the invoice record with the intent's client secret.
func (h *StripePaymentHandler) CreateDeliveryCharge(ctx context.Context, req models.DeliveryChargeRequest) (*models.DeliveryInvoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid delivery charge request: %w", err)
	}

	inv := &models.DeliveryInvoice{
		InvoiceID: uuid.New().String(),
		OrderID:   req.OrderID,
		PartnerID: req.PartnerID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	params.AddMetadata("orderId", req.OrderID)
	params.AddMetadata("partnerId", req.PartnerID)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		h.logger.Error("payment intent creation failed", zap.String("orderId", req.OrderID), zap.Error(err))
		return nil, fmt.Errorf("payment gateway error: %w", err)
	}

	inv.IntentID = pi.ID
	inv.ClientSecret = pi.ClientSecret
	inv.Status = string(pi.Status)

	h.logger.Info("delivery charge intent created",
		zap.String("orderId", req.OrderID),
		zap.String("intentId", pi.ID),
		zap.Float64("amount", req.Amount),
	)
	return inv, nil
}

func validateRequest(req models.DeliveryChargeRequest) error {
	switch {
	case req.OrderID == "":
		return fmt.Errorf("order ID is required")
	case req.PartnerID == "":
		return fmt.Errorf("partner ID is required")
	case math.IsNaN(req.Amount) || req.Amount <= 0:
		return fmt.Errorf("amount must be a positive number")
	case req.Currency == "":
		return fmt.Errorf("currency is required")
	}
	return nil
}
