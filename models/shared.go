package models

// MarketRatePayload drives the background market-rate refresh task.
// An empty PartnerID means refresh every corridor on the platform.
type MarketRatePayload struct {
	PartnerID string `json:"partnerId,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// CorridorRate is a cached market reference price for a from/to corridor.
type CorridorRate struct {
	From           string  `json:"from"`
	To             string  `json:"to"`
	Currency       string  `json:"currency"`
	SuggestedPrice float64 `json:"suggestedPrice"`
	SampleSize     int     `json:"sampleSize"`
}
