package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/internal/blob"
)

// ImageStore is the blob side of an upload: persist the bytes, return a
// retrievable URL.
type ImageStore interface {
	SaveImage(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
}

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func respondUploadError(c *gin.Context, route string, err error) {
	var sizeErr *blob.SizeError
	if errors.As(err, &sizeErr) {
		respondWithError(c, http.StatusRequestEntityTooLarge, route, err.Error())
		return
	}

	var typeErr *blob.TypeError
	if errors.As(err, &typeErr) {
		respondWithError(c, http.StatusBadRequest, route, err.Error())
		return
	}

	if strings.Contains(err.Error(), "timeout") {
		respondWithError(c, http.StatusRequestTimeout, route, err.Error())
		return
	}

	respondWithError(c, http.StatusInternalServerError, route, err.Error())
}

// uploadImage validates the file before any storage round trip, then hands
// it to the blob store.
func uploadImage(ctx context.Context, store ImageStore, file *multipart.FileHeader) (string, error) {
	if err := blob.ValidateImage(file.Header.Get("Content-Type"), file.Size); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return store.SaveImage(ctx, file.Filename, file.Header.Get("Content-Type"), file.Size, src)
}
