package partnerRepo

import (
	"context"

	"sokoway/database"
	"sokoway/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PartnerRepository persists logistics partner profiles, including their
// optional pricing-rule overrides.
type PartnerRepository interface {
	Create(ctx context.Context, partner models.LogisticsPartner) (string, error)
	GetByID(ctx context.Context, id string) (*models.LogisticsPartner, error)
	GetByEmail(ctx context.Context, email string) (*models.LogisticsPartner, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.LogisticsPartner, error)
	UpdatePricing(ctx context.Context, id string, pricing *models.PricingRules) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoPartnerRepo struct {
	coll *mongo.Collection
}

// NewMongoPartnerRepo returns a PartnerRepository backed by MongoDB.
func NewMongoPartnerRepo() PartnerRepository {
	db := database.MongoClient.Database("sokoway")
	return &mongoPartnerRepo{
		coll: db.Collection("logistics_partners"),
	}
}
