package routeRepo

import (
	"context"

	"sokoway/database"
	"sokoway/models"
	"sokoway/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// RouteRepository persists logistics partner delivery routes.
type RouteRepository interface {
	Create(ctx context.Context, route models.Route) (string, error)
	GetByID(ctx context.Context, id string) (*models.Route, error)
	GetByPartnerID(ctx context.Context, partnerID string) ([]models.Route, error)
	ListAll(ctx context.Context) ([]models.Route, error)
	Update(ctx context.Context, route models.Route) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoRouteRepo struct {
	coll *mongo.Collection
}

// NewMongoRouteRepo returns a RouteRepository backed by MongoDB.
func NewMongoRouteRepo() RouteRepository {
	db := database.MongoClient.Database("sokoway")
	repo := &mongoRouteRepo{
		coll: db.Collection("partner_routes"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("route repo: %v", err)
	}
	return repo
}
