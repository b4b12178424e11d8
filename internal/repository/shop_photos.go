package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

type ShopPhotoRepository struct {
	col *mongo.Collection
}

func NewShopPhotoRepository(db *mongo.Database) *ShopPhotoRepository {
	return &ShopPhotoRepository{col: db.Collection("shopPhotos")}
}

func (r *ShopPhotoRepository) List(ctx context.Context) ([]models.ShopPhoto, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	photos := []models.ShopPhoto{}
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *ShopPhotoRepository) Add(ctx context.Context, imageURL string) (*models.ShopPhoto, error) {
	now := time.Now().UTC()
	photo := models.ShopPhoto{
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.col.InsertOne(ctx, photo)
	if err != nil {
		return nil, err
	}

	photo.ID = res.InsertedID.(primitive.ObjectID)
	return &photo, nil
}

func (r *ShopPhotoRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	_, err = r.col.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
