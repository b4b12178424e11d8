package handlers

import (
	"net/url"
	"testing"
)

func TestParseCarListQueryStatusAbsentDefaultsToAvailable(t *testing.T) {
	filter := parseCarListQuery(url.Values{})
	if filter.Status != nil {
		t.Fatalf("expected nil status for absent param, got %q", *filter.Status)
	}
}

func TestParseCarListQueryEmptyStatusSelectsAllCars(t *testing.T) {
	values, _ := url.ParseQuery("status=")
	filter := parseCarListQuery(values)
	if filter.Status == nil || *filter.Status != "" {
		t.Fatalf("expected empty-string status sentinel, got %+v", filter.Status)
	}
}

func TestParseCarListQueryExplicitStatus(t *testing.T) {
	values, _ := url.ParseQuery("status=Sold")
	filter := parseCarListQuery(values)
	if filter.Status == nil || *filter.Status != "Sold" {
		t.Fatalf("expected status Sold, got %+v", filter.Status)
	}
}

func TestParseCarListQueryUnknownStatusFallsBackToDefault(t *testing.T) {
	values, _ := url.ParseQuery("status=Scrapped")
	filter := parseCarListQuery(values)
	if filter.Status != nil {
		t.Fatalf("expected unknown status to be ignored, got %q", *filter.Status)
	}
}

func TestParseCarListQueryNumericFilters(t *testing.T) {
	values, _ := url.ParseQuery("maxPrice=500000&year=2018&search=swift&fuelType=Diesel&noOfOwner=first")
	filter := parseCarListQuery(values)

	if filter.MaxPrice != 500000 {
		t.Fatalf("expected maxPrice=500000, got %d", filter.MaxPrice)
	}
	if filter.Year != 2018 {
		t.Fatalf("expected year=2018, got %d", filter.Year)
	}
	if filter.Search != "swift" || filter.FuelType != "Diesel" || filter.NoOfOwner != "first" {
		t.Fatalf("unexpected filter: %+v", filter)
	}
}

func TestParseCarListQueryIgnoresUnparseableNumbers(t *testing.T) {
	values, _ := url.ParseQuery("maxPrice=cheap&year=soon")
	filter := parseCarListQuery(values)

	if filter.MaxPrice != 0 || filter.Year != 0 {
		t.Fatalf("expected unparseable numbers ignored, got %+v", filter)
	}
}
