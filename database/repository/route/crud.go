package routeRepo

import (
	"context"
	"errors"
	"time"

	"sokoway/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new route and returns its ID.
func (r *mongoRouteRepo) Create(ctx context.Context, route models.Route) (string, error) {
	if route.ID == "" {
		route.ID = uuid.New().String()
	}
	route.CreatedAt = time.Now()
	route.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, route)
	if err != nil {
		return "", err
	}
	return route.ID, nil
}

// GetByID returns a route by its ID.
func (r *mongoRouteRepo) GetByID(ctx context.Context, id string) (*models.Route, error) {
	var route models.Route
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&route)
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// GetByPartnerID fetches every route belonging to a partner. Duplicate
// detection runs over this set.
func (r *mongoRouteRepo) GetByPartnerID(ctx context.Context, partnerID string) ([]models.Route, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"partnerId": partnerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var routes []models.Route
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// ListAll returns every route on the platform. The market-rate refresher
// aggregates over this set.
func (r *mongoRouteRepo) ListAll(ctx context.Context) ([]models.Route, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var routes []models.Route
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// Update replaces the mutable fields of an existing route.
func (r *mongoRouteRepo) Update(ctx context.Context, route models.Route) error {
	route.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"from":          route.From,
		"to":            route.To,
		"distanceKm":    route.DistanceKm,
		"price":         route.Price,
		"currency":      route.Currency,
		"estimatedTime": route.EstimatedTime,
		"serviceType":   route.ServiceType,
		"ratePerKm":     route.RatePerKm,
		"routeType":     route.RouteType,
		"country":       route.Country,
		"state":         route.State,
		"city":          route.City,
		"updatedAt":     route.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": route.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("route not found")
	}
	return nil
}

// DeleteByID removes a route by ID.
func (r *mongoRouteRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("route not found")
	}
	return nil
}
