package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newMultipartContext(t *testing.T, fields map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}
	_ = writer.Close()

	req := httptest.NewRequest("PUT", "/cars/1", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestParseCarFormTracksSetFields(t *testing.T) {
	c := newMultipartContext(t, map[string]string{
		"name":  "  Swift VXi ",
		"price": "450000",
	})

	parsed, err := parseCarForm(c)
	if err != nil {
		t.Fatalf("parseCarForm returned error: %v", err)
	}
	if !parsed.NameSet || parsed.Name != "Swift VXi" {
		t.Fatalf("expected trimmed name set, got %+v", parsed)
	}
	if !parsed.PriceSet || parsed.Price != 450000 {
		t.Fatalf("expected price=450000, got %+v", parsed)
	}
	if parsed.BrandSet || parsed.YearSet || parsed.StatusSet {
		t.Fatalf("expected omitted fields to stay unset, got %+v", parsed)
	}
}

func TestParseCarFormOmittedImageFieldsStayUnset(t *testing.T) {
	c := newMultipartContext(t, map[string]string{"status": "Sold"})

	parsed, err := parseCarForm(c)
	if err != nil {
		t.Fatalf("parseCarForm returned error: %v", err)
	}
	if parsed.ExistingSet {
		t.Fatalf("expected existing gallery unset, got %+v", parsed)
	}
	if !parsed.StatusSet || parsed.Status != "Sold" {
		t.Fatalf("expected status=Sold, got %+v", parsed)
	}
}

func TestParseCarFormExistingGalleryJSON(t *testing.T) {
	c := newMultipartContext(t, map[string]string{
		"existingGallery": `["https://img/1.jpg","https://img/2.jpg"]`,
	})

	parsed, err := parseCarForm(c)
	if err != nil {
		t.Fatalf("parseCarForm returned error: %v", err)
	}
	if !parsed.ExistingSet || len(parsed.ExistingGallery) != 2 {
		t.Fatalf("expected 2 existing gallery urls, got %+v", parsed)
	}
	if parsed.ExistingGallery[1] != "https://img/2.jpg" {
		t.Fatalf("expected ordered gallery, got %+v", parsed.ExistingGallery)
	}
}

func TestParseCarFormInvalidGalleryJSON(t *testing.T) {
	c := newMultipartContext(t, map[string]string{"existingGallery": "not-json"})

	if _, err := parseCarForm(c); err == nil {
		t.Fatal("expected error for malformed existingGallery")
	}
}

func TestParseCarFormRejectsNonNumericPrice(t *testing.T) {
	c := newMultipartContext(t, map[string]string{"price": "cheap"})

	if _, err := parseCarForm(c); err == nil {
		t.Fatal("expected error for non-numeric price")
	}
}

func TestEnumValidators(t *testing.T) {
	if !isValidFuelType("CNG") || isValidFuelType("Steam") {
		t.Fatal("fuel type validation broken")
	}
	if !isValidTransmission("Automatic") || isValidTransmission("CVT") {
		t.Fatal("transmission validation broken")
	}
	if !isValidStatus("Available") || isValidStatus("") {
		t.Fatal("status validation broken")
	}
	if !isValidInsuranceType("Zero Dep") || isValidInsuranceType("Full") {
		t.Fatal("insurance type validation broken")
	}
}

func TestCarCreateRequestDefaults(t *testing.T) {
	car := CarCreateRequest{
		Name:         "City",
		Brand:        "Honda",
		Year:         2020,
		FuelType:     "Petrol",
		Transmission: "Manual",
	}.toCar()

	if car.Status != "Available" {
		t.Fatalf("expected default status Available, got %q", car.Status)
	}
	if car.InsuranceType != "No insurance" {
		t.Fatalf("expected default insurance 'No insurance', got %q", car.InsuranceType)
	}
}
