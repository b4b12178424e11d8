package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureCarIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("cars").Indexes()

	statusCreatedIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("status_createdAt"),
	}

	log.Println("EnsureCarIndexes: creating status_createdAt index")
	_, err := indexes.CreateOne(ctx, statusCreatedIndex)
	if err != nil {
		log.Println("EnsureCarIndexes: status_createdAt index error:", err)
		return err
	}
	log.Println("EnsureCarIndexes: status_createdAt index created")
	return nil
}

func EnsureShopPhotoIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("shopPhotos").Indexes()

	createdIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	}

	log.Println("EnsureShopPhotoIndexes: creating createdAt_desc index")
	_, err := indexes.CreateOne(ctx, createdIndex)
	if err != nil {
		log.Println("EnsureShopPhotoIndexes: createdAt index error:", err)
		return err
	}
	log.Println("EnsureShopPhotoIndexes: createdAt_desc index created")
	return nil
}
