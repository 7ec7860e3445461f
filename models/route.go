package models

import "time"

// RouteCategory is the distance-threshold classification that governs which
// minimum/maximum price bounds apply to a delivery.
type RouteCategory string

const (
	RouteCategoryIntracity RouteCategory = "intracity"
	RouteCategoryIntercity RouteCategory = "intercity"
)

// RouteType is the finer route classification used for duplicate detection.
// It is related to, but distinct from, the pricing category.
type RouteType string

const (
	RouteTypeIntracity     RouteType = "intracity"
	RouteTypeIntercity     RouteType = "intercity"
	RouteTypeInterstate    RouteType = "interstate"
	RouteTypeInternational RouteType = "international"
)

// Route is a delivery corridor offered by a logistics partner.
// The pricing/validation core consumes these read-only; ownership stays with
// the partner and the persistence layer.
type Route struct {
	ID            string    `bson:"id" json:"id"`
	PartnerID     string    `bson:"partnerId" json:"partnerId"`
	From          string    `bson:"from" json:"from"`
	To            string    `bson:"to" json:"to"`
	DistanceKm    float64   `bson:"distanceKm" json:"distanceKm"`
	Price         float64   `bson:"price" json:"price"`
	Currency      string    `bson:"currency" json:"currency"`
	EstimatedTime string    `bson:"estimatedTime" json:"estimatedTime"`
	ServiceType   string    `bson:"serviceType,omitempty" json:"serviceType,omitempty"`
	RatePerKm     float64   `bson:"ratePerKm,omitempty" json:"ratePerKm,omitempty"`
	RouteType     RouteType `bson:"routeType" json:"routeType"`
	Country       string    `bson:"country,omitempty" json:"country,omitempty"`
	State         string    `bson:"state,omitempty" json:"state,omitempty"`
	City          string    `bson:"city,omitempty" json:"city,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
