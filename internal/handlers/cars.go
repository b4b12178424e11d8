package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/repository"
)

/*
GET /cars
- public
- no pagination: the whole filtered catalog is returned newest first
- status omitted → Available only; status present but empty → all cars
*/
// parseCarListQuery maps the listing query string onto a repository filter.
// A status param that is present but empty selects all cars; an absent or
// unknown status falls back to the public default (Available only).
func parseCarListQuery(values url.Values) repository.CarFilter {
	filter := repository.CarFilter{
		Search:    strings.TrimSpace(values.Get("search")),
		FuelType:  strings.TrimSpace(values.Get("fuelType")),
		NoOfOwner: strings.TrimSpace(values.Get("noOfOwner")),
	}

	if raw := strings.TrimSpace(values.Get("maxPrice")); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.MaxPrice = parsed
		}
	}

	if raw := strings.TrimSpace(values.Get("year")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filter.Year = parsed
		}
	}

	if _, present := values["status"]; present {
		status := values.Get("status")
		if status == "" || isValidStatus(status) {
			filter.Status = &status
		}
	}

	return filter
}

func GetCars(cars *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cars"
		defer handlePanic(c, route)

		filter := parseCarListQuery(c.Request.URL.Query())

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := cars.GetCars(ctx, filter)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d cars", route, len(result))
		c.JSON(http.StatusOK, result)
	}
}

/*
GET /cars/:id
Counting side effect: every successful fetch bumps the stored view counter,
and the response carries the post-increment value.
*/
func GetCar(cars *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cars/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		car, err := cars.GetCarByID(ctx, c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if car == nil {
			respondWithError(c, http.StatusNotFound, route, "car not found")
			return
		}

		c.JSON(http.StatusOK, car)
	}
}

func CreateCar(cars *repository.CarRepository, store ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cars"
		defer handlePanic(c, route)

		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			respondWithError(c, http.StatusUnsupportedMediaType, route, "multipart/form-data required")
			return
		}

		var req CarCreateRequest
		if err := c.ShouldBind(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		mainImageFile, err := c.FormFile("mainImage")
		if err != nil || mainImageFile.Size == 0 {
			respondWithError(c, http.StatusBadRequest, route, "main image is required")
			return
		}

		mainImage, err := uploadImage(c.Request.Context(), store, mainImageFile)
		if err != nil {
			log.Printf("[%s] main image upload failed: %v", route, err)
			respondUploadError(c, route, err)
			return
		}

		// Gallery uploads are best effort up to the first failure: a failing
		// image aborts the rest, already stored blobs are left in place.
		galleryImages := []string{}
		if form := c.Request.MultipartForm; form != nil {
			for _, file := range form.File["galleryImages"] {
				if file == nil || file.Size == 0 {
					continue
				}
				imageURL, err := uploadImage(c.Request.Context(), store, file)
				if err != nil {
					log.Printf("[%s] gallery image upload failed: %v", route, err)
					respondUploadError(c, route, err)
					return
				}
				galleryImages = append(galleryImages, imageURL)
			}
		}

		car := req.toCar()
		car.MainImage = mainImage
		car.GalleryImages = galleryImages

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		created, err := cars.CreateCar(ctx, car)
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] created car %s", route, created.ID.Hex())
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateCar(cars *repository.CarRepository, store ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cars/:id"
		defer handlePanic(c, route)

		id := c.Param("id")

		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			respondWithError(c, http.StatusUnsupportedMediaType, route, "multipart/form-data required")
			return
		}

		input, err := parseCarForm(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		update := repository.CarUpdate{}

		if input.NameSet {
			if input.Name == "" {
				respondWithError(c, http.StatusBadRequest, route, "name required")
				return
			}
			update.Name = &input.Name
		}
		if input.BrandSet {
			if input.Brand == "" {
				respondWithError(c, http.StatusBadRequest, route, "brand required")
				return
			}
			update.Brand = &input.Brand
		}
		if input.YearSet {
			update.Year = &input.Year
		}
		if input.FuelTypeSet {
			if !isValidFuelType(input.FuelType) {
				respondWithError(c, http.StatusBadRequest, route, "invalid fuelType")
				return
			}
			update.FuelType = &input.FuelType
		}
		if input.TransmissionSet {
			if !isValidTransmission(input.Transmission) {
				respondWithError(c, http.StatusBadRequest, route, "invalid transmission")
				return
			}
			update.Transmission = &input.Transmission
		}
		if input.MileageSet {
			if input.Mileage < 0 {
				respondWithError(c, http.StatusBadRequest, route, "mileage must be zero or greater")
				return
			}
			update.Mileage = &input.Mileage
		}
		if input.PriceSet {
			if input.Price < 0 {
				respondWithError(c, http.StatusBadRequest, route, "price must be zero or greater")
				return
			}
			update.Price = &input.Price
		}
		if input.DescriptionSet {
			update.Description = &input.Description
		}
		if input.StatusSet {
			if !isValidStatus(input.Status) {
				respondWithError(c, http.StatusBadRequest, route, "invalid status")
				return
			}
			update.Status = &input.Status
		}
		if input.NoOfOwnerSet {
			update.NoOfOwner = &input.NoOfOwner
		}
		if input.ColorSet {
			update.Color = &input.Color
		}
		if input.InsuranceTypeSet {
			if !isValidInsuranceType(input.InsuranceType) {
				respondWithError(c, http.StatusBadRequest, route, "invalid insuranceType")
				return
			}
			update.InsuranceType = &input.InsuranceType
		}
		if input.EnginePowerSet {
			if input.EnginePower < 0 {
				respondWithError(c, http.StatusBadRequest, route, "enginePower must be zero or greater")
				return
			}
			update.EnginePower = &input.EnginePower
		}
		if input.VariantSet {
			update.Variant = &input.Variant
		}

		// Main image is an optional override: no file means keep the stored one.
		if mainImageFile, err := c.FormFile("mainImage"); err == nil && mainImageFile.Size > 0 {
			mainImage, err := uploadImage(c.Request.Context(), store, mainImageFile)
			if err != nil {
				log.Printf("[%s] main image upload failed: %v", route, err)
				respondUploadError(c, route, err)
				return
			}
			update.MainImage = &mainImage
		}

		newGallery := []string{}
		if form := c.Request.MultipartForm; form != nil {
			for _, file := range form.File["galleryImages"] {
				if file == nil || file.Size == 0 {
					continue
				}
				imageURL, err := uploadImage(c.Request.Context(), store, file)
				if err != nil {
					log.Printf("[%s] gallery image upload failed: %v", route, err)
					respondUploadError(c, route, err)
					return
				}
				newGallery = append(newGallery, imageURL)
			}
		}

		// existingGallery replaces the stored list, new files append to it.
		// Without either, the gallery stays untouched.
		if input.ExistingSet {
			gallery := append(input.ExistingGallery, newGallery...)
			update.GalleryImages = &gallery
		} else if len(newGallery) > 0 {
			update.GalleryImages = &newGallery
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updated, err := cars.UpdateCar(ctx, id, update)
		if errors.Is(err, repository.ErrInvalidID) {
			respondWithError(c, http.StatusBadRequest, route, "invalid car id")
			return
		}
		if err != nil {
			log.Printf("[%s] update error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if updated == nil {
			respondWithError(c, http.StatusNotFound, route, "car not found")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteCar(cars *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cars/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		err := cars.DeleteCar(ctx, c.Param("id"))
		if errors.Is(err, repository.ErrInvalidID) {
			respondWithError(c, http.StatusBadRequest, route, "invalid car id")
			return
		}
		if err != nil {
			log.Printf("[%s] delete error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
