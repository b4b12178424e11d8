package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"backend/internal/models"
)

func TestBuildCarFilterDefaultsToAvailable(t *testing.T) {
	query := buildCarFilter(CarFilter{})
	assert.Equal(t, bson.M{"status": models.StatusAvailable}, query)
}

func TestBuildCarFilterEmptyStatusMeansAllCars(t *testing.T) {
	empty := ""
	query := buildCarFilter(CarFilter{Status: &empty})
	_, hasStatus := query["status"]
	assert.False(t, hasStatus, "empty status sentinel must not filter by status")
	assert.Empty(t, query)
}

func TestBuildCarFilterExplicitStatus(t *testing.T) {
	sold := models.StatusSold
	query := buildCarFilter(CarFilter{Status: &sold})
	assert.Equal(t, models.StatusSold, query["status"])
}

func TestBuildCarFilterSearchMatchesNameOrBrand(t *testing.T) {
	query := buildCarFilter(CarFilter{Search: "swift"})

	or, ok := query["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or clause, got %+v", query)
	}
	assert.Len(t, or, 2)
	assert.Equal(t, bson.M{"$regex": "swift", "$options": "i"}, or[0]["name"])
	assert.Equal(t, bson.M{"$regex": "swift", "$options": "i"}, or[1]["brand"])
}

func TestBuildCarFilterMaxPriceIsInclusiveUpperBound(t *testing.T) {
	query := buildCarFilter(CarFilter{MaxPrice: 500000})
	assert.Equal(t, bson.M{"$lte": int64(500000)}, query["price"])
}

func TestBuildCarFilterYearIsInclusiveLowerBound(t *testing.T) {
	query := buildCarFilter(CarFilter{Year: 2018})
	assert.Equal(t, bson.M{"$gte": 2018}, query["year"])
}

func TestBuildCarFilterFuelTypeExactMatch(t *testing.T) {
	query := buildCarFilter(CarFilter{FuelType: models.FuelDiesel})
	assert.Equal(t, models.FuelDiesel, query["fuelType"])
}

func TestBuildCarFilterNoOfOwnerSubstring(t *testing.T) {
	query := buildCarFilter(CarFilter{NoOfOwner: "first"})
	assert.Equal(t, bson.M{"$regex": "first", "$options": "i"}, query["noOfOwner"])
}

func TestBuildCarFilterCombined(t *testing.T) {
	query := buildCarFilter(CarFilter{
		Search:   "city",
		MaxPrice: 800000,
		Year:     2019,
		FuelType: models.FuelPetrol,
	})

	assert.Equal(t, models.StatusAvailable, query["status"])
	assert.Contains(t, query, "$or")
	assert.Contains(t, query, "price")
	assert.Contains(t, query, "year")
	assert.Contains(t, query, "fuelType")
}

func TestBuildCarUpdateOnlySetFields(t *testing.T) {
	price := int64(350000)
	status := models.StatusSold
	set := buildCarUpdate(CarUpdate{Price: &price, Status: &status})

	assert.Equal(t, bson.M{"price": int64(350000), "status": models.StatusSold}, set)
}

func TestBuildCarUpdateNeverTouchesCreatedAtOrViews(t *testing.T) {
	name := "Alto"
	gallery := []string{"https://img/1.jpg"}
	set := buildCarUpdate(CarUpdate{Name: &name, GalleryImages: &gallery})

	_, hasCreated := set["createdAt"]
	_, hasViews := set["views"]
	assert.False(t, hasCreated)
	assert.False(t, hasViews)
	assert.Equal(t, gallery, set["galleryImages"])
}

func TestBuildCarUpdateEmptyInputIsEmptySet(t *testing.T) {
	set := buildCarUpdate(CarUpdate{})
	assert.Empty(t, set)
}
