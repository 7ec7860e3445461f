package partnerRepo

import (
	"context"
	"errors"
	"time"

	"sokoway/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new partner profile and returns its ID.
func (r *mongoPartnerRepo) Create(ctx context.Context, partner models.LogisticsPartner) (string, error) {
	if partner.ID == "" {
		partner.ID = uuid.New().String()
	}
	partner.CreatedAt = time.Now()
	partner.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, partner)
	if err != nil {
		return "", err
	}
	return partner.ID, nil
}

// GetByID returns a partner by ID.
func (r *mongoPartnerRepo) GetByID(ctx context.Context, id string) (*models.LogisticsPartner, error) {
	var partner models.LogisticsPartner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

// GetByEmail returns a partner by email.
func (r *mongoPartnerRepo) GetByEmail(ctx context.Context, email string) (*models.LogisticsPartner, error) {
	var partner models.LogisticsPartner
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

// GetByTokenHash resolves the partner whose current session token hashes to
// the given value. Used by the auth middleware.
func (r *mongoPartnerRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.LogisticsPartner, error) {
	var partner models.LogisticsPartner
	if err := r.coll.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

// UpdatePricing installs or clears a partner's pricing override.
func (r *mongoPartnerRepo) UpdatePricing(ctx context.Context, id string, pricing *models.PricingRules) error {
	update := bson.M{"$set": bson.M{"pricing": pricing, "updatedAt": time.Now()}}
	if pricing == nil {
		update = bson.M{
			"$unset": bson.M{"pricing": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("partner not found")
	}
	return nil
}

// SetTokenHash stores the hash of the partner's active session token.
func (r *mongoPartnerRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("partner not found")
	}
	return nil
}

// DeleteByID removes a partner profile.
func (r *mongoPartnerRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("partner not found")
	}
	return nil
}
