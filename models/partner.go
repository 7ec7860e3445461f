package models

import "time"

// LogisticsPartner is a registered delivery operator on the platform.
// Pricing, when set, overrides the platform pricing rules for every quote
// computed against this partner.
type LogisticsPartner struct {
	ID              string        `bson:"id" json:"id"`
	BusinessName    string        `bson:"businessName" json:"businessName"`
	Email           string        `bson:"email" json:"email"`
	Phone           string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Country         string        `bson:"country,omitempty" json:"country,omitempty"`
	State           string        `bson:"state,omitempty" json:"state,omitempty"`
	City            string        `bson:"city,omitempty" json:"city,omitempty"`
	Currency        string        `bson:"currency" json:"currency"`
	Pricing         *PricingRules `bson:"pricing,omitempty" json:"pricing,omitempty"`
	StripeAccountID string        `bson:"stripeAccountID,omitempty" json:"stripeAccountID,omitempty"`
	Verified        bool          `bson:"verified" json:"verified"`
	TokenHash       string        `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}
