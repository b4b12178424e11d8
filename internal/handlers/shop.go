package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/repository"
)

/*
GET /logo
An unset logo is not an error: the response body is null.
*/
func GetLogo(logos *repository.LogoRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /logo"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		logo, err := logos.Get(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, logo)
	}
}

func SetLogo(logos *repository.LogoRepository, store ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /logo"
		defer handlePanic(c, route)

		imageFile, err := c.FormFile("image")
		if err != nil || imageFile.Size == 0 {
			respondWithError(c, http.StatusBadRequest, route, "image is required")
			return
		}

		imageURL, err := uploadImage(c.Request.Context(), store, imageFile)
		if err != nil {
			log.Printf("[%s] image upload failed: %v", route, err)
			respondUploadError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		logo, err := logos.Set(ctx, imageURL)
		if err != nil {
			log.Printf("[%s] set error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusCreated, logo)
	}
}

func DeleteLogo(logos *repository.LogoRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /logo"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := logos.Delete(ctx); err != nil {
			log.Printf("[%s] delete error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func GetShopPhotos(photos *repository.ShopPhotoRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /shop-photos"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := photos.List(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d photos", route, len(result))
		c.JSON(http.StatusOK, result)
	}
}

func AddShopPhoto(photos *repository.ShopPhotoRepository, store ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /shop-photos"
		defer handlePanic(c, route)

		imageFile, err := c.FormFile("image")
		if err != nil || imageFile.Size == 0 {
			respondWithError(c, http.StatusBadRequest, route, "image is required")
			return
		}

		imageURL, err := uploadImage(c.Request.Context(), store, imageFile)
		if err != nil {
			log.Printf("[%s] image upload failed: %v", route, err)
			respondUploadError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		photo, err := photos.Add(ctx, imageURL)
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusCreated, photo)
	}
}

func DeleteShopPhoto(photos *repository.ShopPhotoRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /shop-photos/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		err := photos.Delete(ctx, c.Param("id"))
		if errors.Is(err, repository.ErrInvalidID) {
			respondWithError(c, http.StatusBadRequest, route, "invalid photo id")
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
