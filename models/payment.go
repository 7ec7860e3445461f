package models

import "time"

// DeliveryChargeRequest asks the payment gateway for an intent covering a
// quoted delivery fee. Amount is the quote's final price in the route's
// currency; the checkout flow itself lives with the client.
type DeliveryChargeRequest struct {
	OrderID     string            `json:"orderId"`
	PartnerID   string            `json:"partnerId"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// DeliveryInvoice records the gateway intent created for a delivery fee.
type DeliveryInvoice struct {
	InvoiceID    string    `bson:"invoiceId" json:"invoiceId"`
	OrderID      string    `bson:"orderId" json:"orderId"`
	PartnerID    string    `bson:"partnerId" json:"partnerId"`
	Amount       float64   `bson:"amount" json:"amount"`
	Currency     string    `bson:"currency" json:"currency"`
	Status       string    `bson:"status" json:"status"`
	IntentID     string    `bson:"intentId,omitempty" json:"intentId,omitempty"`
	ClientSecret string    `bson:"-" json:"clientSecret,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
