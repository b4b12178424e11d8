package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

// ErrInvalidID marks a malformed identifier on paths where the original id
// must exist (update, delete). Lookups treat a malformed id as not found.
var ErrInvalidID = errors.New("invalid id")

type CarRepository struct {
	col *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{col: db.Collection("cars")}
}

// CarFilter carries the listing query parameters. Status is tri-state: nil
// means the default public view (Available only), a pointer to "" means no
// status filter at all, anything else is matched exactly.
type CarFilter struct {
	Search    string
	MaxPrice  int64
	Year      int
	FuelType  string
	NoOfOwner string
	Status    *string
}

func buildCarFilter(f CarFilter) bson.M {
	query := bson.M{}

	if f.Status == nil {
		query["status"] = models.StatusAvailable
	} else if *f.Status != "" {
		query["status"] = *f.Status
	}

	if f.Search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": f.Search, "$options": "i"}},
			{"brand": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}

	if f.MaxPrice > 0 {
		query["price"] = bson.M{"$lte": f.MaxPrice}
	}

	if f.Year > 0 {
		query["year"] = bson.M{"$gte": f.Year}
	}

	if f.FuelType != "" {
		query["fuelType"] = f.FuelType
	}

	if f.NoOfOwner != "" {
		query["noOfOwner"] = bson.M{"$regex": f.NoOfOwner, "$options": "i"}
	}

	return query
}

func (r *CarRepository) GetCars(ctx context.Context, filter CarFilter) ([]models.Car, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, buildCarFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cars := []models.Car{}
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// GetCarByID returns the car and counts the read: the stored view counter is
// incremented in the same storage operation, so concurrent reads never lose
// an increment. The returned document carries the post-increment count.
// Every successful lookup is counted; there is no peek variant.
func (r *CarRepository) GetCarByID(ctx context.Context, id string) (*models.Car, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var car models.Car
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&car)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// CreateCar writes the draft with views zeroed and both timestamps set to
// now. Field validation happens at the API layer, not here.
func (r *CarRepository) CreateCar(ctx context.Context, car models.Car) (*models.Car, error) {
	now := time.Now().UTC()
	car.ID = primitive.NilObjectID
	car.Views = 0
	car.CreatedAt = now
	car.UpdatedAt = now
	if car.GalleryImages == nil {
		car.GalleryImages = []string{}
	}

	res, err := r.col.InsertOne(ctx, car)
	if err != nil {
		return nil, err
	}

	car.ID = res.InsertedID.(primitive.ObjectID)
	return &car, nil
}

// CarUpdate holds the partial update; nil fields are left untouched.
// CreatedAt and Views cannot be changed through this path.
type CarUpdate struct {
	Name          *string
	Brand         *string
	Year          *int
	FuelType      *string
	Transmission  *string
	Mileage       *int64
	Price         *int64
	Description   *string
	Status        *string
	MainImage     *string
	GalleryImages *[]string
	NoOfOwner     *string
	Color         *string
	InsuranceType *string
	EnginePower   *int64
	Variant       *string
}

func buildCarUpdate(u CarUpdate) bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Brand != nil {
		set["brand"] = *u.Brand
	}
	if u.Year != nil {
		set["year"] = *u.Year
	}
	if u.FuelType != nil {
		set["fuelType"] = *u.FuelType
	}
	if u.Transmission != nil {
		set["transmission"] = *u.Transmission
	}
	if u.Mileage != nil {
		set["mileage"] = *u.Mileage
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.MainImage != nil {
		set["mainImage"] = *u.MainImage
	}
	if u.GalleryImages != nil {
		set["galleryImages"] = *u.GalleryImages
	}
	if u.NoOfOwner != nil {
		set["noOfOwner"] = *u.NoOfOwner
	}
	if u.Color != nil {
		set["color"] = *u.Color
	}
	if u.InsuranceType != nil {
		set["insuranceType"] = *u.InsuranceType
	}
	if u.EnginePower != nil {
		set["enginePower"] = *u.EnginePower
	}
	if u.Variant != nil {
		set["variant"] = *u.Variant
	}
	return set
}

// UpdateCar merges the supplied fields into the document as one write and
// refreshes updatedAt. The post-update record is re-read with a plain find,
// so an update does not touch the view counter.
func (r *CarRepository) UpdateCar(ctx context.Context, id string, update CarUpdate) (*models.Car, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := buildCarUpdate(update)
	set["updatedAt"] = time.Now().UTC()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}

	var car models.Car
	if err := r.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&car); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

// DeleteCar removes the record. Deleting an id that no longer exists is not
// an error.
func (r *CarRepository) DeleteCar(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	_, err = r.col.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
