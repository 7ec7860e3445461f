package geo

import (
	"context"

	"sokoway/models"
)

// Service wraps the external geo provider. The pricing and validation core
// never calls this directly; callers fetch an analysis first and feed its
// fields in as plain values.
type Service interface {
	// AnalyzeRoute geocodes both endpoints, measures the driving route and
	// classifies it. A provider failure returns an error; callers must treat
	// a missing analysis as "insufficient data", not as a validation finding.
	AnalyzeRoute(ctx context.Context, pickup, delivery string) (*models.RouteAnalysis, error)

	// Geocode resolves an address to its locality components.
	Geocode(ctx context.Context, address string) (*models.GeocodedPlace, error)

	// Polyline returns the overview polyline for a driving route.
	Polyline(ctx context.Context, originLat, originLng, destLat, destLng string) (string, error)
}
