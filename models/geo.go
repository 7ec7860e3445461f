package models

// TextValue mirrors the Google Maps distance/duration pair: a human-readable
// label plus the raw value (meters for distance, seconds for duration).
type TextValue struct {
	Text  string `bson:"text" json:"text"`
	Value int    `bson:"value" json:"value"`
}

// PlaceComponents are the locality components extracted from a geocoder
// result. Any of them may be empty when the geocoder could not resolve them.
type PlaceComponents struct {
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// GeocodedPlace is a resolved address with its locality components.
type GeocodedPlace struct {
	Address    string          `bson:"address" json:"address"`
	Components PlaceComponents `bson:"components" json:"components"`
}

// RouteAnalysis is the geo provider's view of a pickup/delivery pair.
// A nil analysis, or one with missing distance/duration, means the provider
// failed: downstream checks that need those fields are skipped, never failed.
type RouteAnalysis struct {
	RouteType   RouteType     `json:"routeType"`
	DistanceKm  float64       `json:"distanceKm"`
	Distance    TextValue     `json:"distance"`
	Duration    TextValue     `json:"duration"`
	Pickup      GeocodedPlace `json:"pickup"`
	Delivery    GeocodedPlace `json:"delivery"`
	IsSameCity  bool          `json:"isSameCity"`
	IsSameState bool          `json:"isSameState"`
}
