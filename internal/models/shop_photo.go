package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShopPhoto struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
