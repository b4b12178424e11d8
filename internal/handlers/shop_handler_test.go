package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSetLogoRequiresImage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &fakeImageStore{url: "https://blob/logo.png"}
	r := gin.New()
	r.POST("/logo", SetLogo(nil, store))

	body, contentType := multipartBody(t, map[string]string{}, "", "", "", nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/logo", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "image is required") {
		t.Fatalf("expected image required error, got %s", w.Body.String())
	}
	if store.calls != 0 {
		t.Fatalf("expected no storage access, got %d calls", store.calls)
	}
}

func TestAddShopPhotoRejectsOversizedFileBeforeBlobStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &fakeImageStore{url: "https://blob/shop.jpg"}
	r := gin.New()
	r.POST("/shop-photos", AddShopPhoto(nil, store))

	oversized := make([]byte, 11<<20)
	body, contentType := multipartBody(t, map[string]string{}, "image", "shop.jpg", "image/jpeg", oversized)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/shop-photos", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "too large") {
		t.Fatalf("expected size-specific error, got %s", w.Body.String())
	}
	if store.calls != 0 {
		t.Fatalf("blob store must not be contacted, got %d calls", store.calls)
	}
}

func TestDeleteShopPhotoInvalidIDReturns400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/shop-photos/:id", DeleteShopPhoto(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/shop-photos/bad-id", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "invalid photo id") {
		t.Fatalf("expected invalid photo id error, got %s", w.Body.String())
	}
}
