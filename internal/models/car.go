package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FuelPetrol   = "Petrol"
	FuelDiesel   = "Diesel"
	FuelElectric = "Electric"
	FuelHybrid   = "Hybrid"
	FuelCNG      = "CNG"

	TransmissionManual    = "Manual"
	TransmissionAutomatic = "Automatic"

	StatusAvailable = "Available"
	StatusSold      = "Sold"
)

type Car struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Brand         string             `bson:"brand" json:"brand"`
	Year          int                `bson:"year" json:"year"`
	FuelType      string             `bson:"fuelType" json:"fuelType"`
	Transmission  string             `bson:"transmission" json:"transmission"`
	Mileage       int64              `bson:"mileage" json:"mileage"`
	Price         int64              `bson:"price" json:"price"`
	Description   string             `bson:"description" json:"description"`
	Status        string             `bson:"status" json:"status"`
	MainImage     string             `bson:"mainImage" json:"mainImage"`
	GalleryImages []string           `bson:"galleryImages" json:"galleryImages"`
	NoOfOwner     string             `bson:"noOfOwner,omitempty" json:"noOfOwner,omitempty"`
	Color         string             `bson:"color,omitempty" json:"color,omitempty"`
	InsuranceType string             `bson:"insuranceType,omitempty" json:"insuranceType,omitempty"`
	EnginePower   int64              `bson:"enginePower,omitempty" json:"enginePower,omitempty"`
	Variant       string             `bson:"variant,omitempty" json:"variant,omitempty"`
	Views         int64              `bson:"views" json:"views"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
