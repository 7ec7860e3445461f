package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"sokoway/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	directionsEndpoint = "https://maps.googleapis.com/maps/api/directions/json"
	geocodeEndpoint    = "https://maps.googleapis.com/maps/api/geocode/json"
)

// GoogleGeoService talks to the Google Directions and Geocoding APIs and
// caches route analyses in Redis.
type GoogleGeoService struct {
	apiKey string
	client *http.Client
	cache  *redis.Client
	logger *zap.Logger
}

// NewGoogleGeoService builds a geo service with the given API key. The cache
// client may be nil, in which case every call goes to the provider.
func NewGoogleGeoService(apiKey string, cache *redis.Client, logger *zap.Logger) *GoogleGeoService {
	return &GoogleGeoService{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  cache,
		logger: logger,
	}
}

// directionsResponse is the subset of the Directions API payload we read.
type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance models.TextValue `json:"distance"`
			Duration models.TextValue `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// geocodeResponse is the subset of the Geocoding API payload we read.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

func (s *GoogleGeoService) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if s.apiKey == "" {
		return errors.New("geo provider API key not configured")
	}
	params.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("geo provider request failed: %w", err)
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}

func (s *GoogleGeoService) directions(ctx context.Context, origin, destination string) (*directionsResponse, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)

	var dr directionsResponse
	if err := s.get(ctx, directionsEndpoint, params, &dr); err != nil {
		return nil, err
	}
	if dr.Status != "OK" || len(dr.Routes) == 0 || len(dr.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found (status %s)", dr.Status)
	}
	return &dr, nil
}

// Geocode resolves an address to its locality components.
func (s *GoogleGeoService) Geocode(ctx context.Context, address string) (*models.GeocodedPlace, error) {
	params := url.Values{}
	params.Set("address", address)

	var gr geocodeResponse
	if err := s.get(ctx, geocodeEndpoint, params, &gr); err != nil {
		return nil, err
	}
	if gr.Status != "OK" || len(gr.Results) == 0 {
		return nil, fmt.Errorf("address could not be geocoded (status %s)", gr.Status)
	}

	place := &models.GeocodedPlace{Address: gr.Results[0].FormattedAddress}
	for _, comp := range gr.Results[0].AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				place.Components.City = comp.LongName
			case "administrative_area_level_1":
				place.Components.State = comp.LongName
			case "country":
				place.Components.Country = comp.LongName
			}
		}
	}
	return place, nil
}

// Polyline returns the overview polyline for a driving route between two
// coordinate pairs.
func (s *GoogleGeoService) Polyline(ctx context.Context, originLat, originLng, destLat, destLng string) (string, error) {
	origin := fmt.Sprintf("%s,%s", originLat, originLng)
	destination := fmt.Sprintf("%s,%s", destLat, destLng)

	dr, err := s.directions(ctx, origin, destination)
	if err != nil {
		return "", err
	}
	return dr.Routes[0].OverviewPolyline.Points, nil
}
