package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

type LogoRepository struct {
	col *mongo.Collection
}

func NewLogoRepository(db *mongo.Database) *LogoRepository {
	return &LogoRepository{col: db.Collection("logo")}
}

func (r *LogoRepository) Get(ctx context.Context) (*models.Logo, error) {
	var logo models.Logo
	err := r.col.FindOne(ctx, bson.M{}).Decode(&logo)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &logo, nil
}

// Set upserts the single logo record. When one already exists its id is
// preserved and only imageUrl/updatedAt change.
func (r *LogoRepository) Set(ctx context.Context, imageURL string) (*models.Logo, error) {
	now := time.Now().UTC()

	existing, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		_, err := r.col.UpdateOne(
			ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"imageUrl": imageURL, "updatedAt": now}},
		)
		if err != nil {
			return nil, err
		}
		existing.ImageURL = imageURL
		existing.UpdatedAt = now
		return existing, nil
	}

	logo := models.Logo{
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.col.InsertOne(ctx, logo)
	if err != nil {
		return nil, err
	}
	logo.ID = res.InsertedID.(primitive.ObjectID)
	return &logo, nil
}

// Delete removes every logo record. Only one should exist, but stray
// duplicates are cleared too.
func (r *LogoRepository) Delete(ctx context.Context) error {
	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}
