package handlers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
)

// CarCreateRequest is the typed draft bound from the create form. Binding
// runs the validator tags, so a draft that reaches the repository is already
// structurally sound.
type CarCreateRequest struct {
	Name          string `form:"name" binding:"required"`
	Brand         string `form:"brand" binding:"required"`
	Year          int    `form:"year" binding:"required,gte=1900"`
	FuelType      string `form:"fuelType" binding:"required,oneof=Petrol Diesel Electric Hybrid CNG"`
	Transmission  string `form:"transmission" binding:"required,oneof=Manual Automatic"`
	Mileage       int64  `form:"mileage" binding:"gte=0"`
	Price         int64  `form:"price" binding:"gte=0"`
	Description   string `form:"description"`
	Status        string `form:"status" binding:"omitempty,oneof=Available Sold"`
	NoOfOwner     string `form:"noOfOwner"`
	Color         string `form:"color"`
	InsuranceType string `form:"insuranceType" binding:"omitempty,oneof=Comprehensive 'No insurance' 'Third party' 'Zero Dep'"`
	EnginePower   int64  `form:"enginePower" binding:"gte=0"`
	Variant       string `form:"variant"`
}

func (r CarCreateRequest) toCar() models.Car {
	status := r.Status
	if status == "" {
		status = models.StatusAvailable
	}
	insurance := r.InsuranceType
	if insurance == "" {
		insurance = "No insurance"
	}
	return models.Car{
		Name:          strings.TrimSpace(r.Name),
		Brand:         strings.TrimSpace(r.Brand),
		Year:          r.Year,
		FuelType:      r.FuelType,
		Transmission:  r.Transmission,
		Mileage:       r.Mileage,
		Price:         r.Price,
		Description:   strings.TrimSpace(r.Description),
		Status:        status,
		NoOfOwner:     strings.TrimSpace(r.NoOfOwner),
		Color:         strings.TrimSpace(r.Color),
		InsuranceType: insurance,
		EnginePower:   r.EnginePower,
		Variant:       strings.TrimSpace(r.Variant),
	}
}

// carFormInput carries the update form. A Set flag distinguishes "field
// omitted" from "field sent empty", so partial updates preserve everything
// the form left out.
type carFormInput struct {
	Name             string
	NameSet          bool
	Brand            string
	BrandSet         bool
	Year             int
	YearSet          bool
	FuelType         string
	FuelTypeSet      bool
	Transmission     string
	TransmissionSet  bool
	Mileage          int64
	MileageSet       bool
	Price            int64
	PriceSet         bool
	Description      string
	DescriptionSet   bool
	Status           string
	StatusSet        bool
	NoOfOwner        string
	NoOfOwnerSet     bool
	Color            string
	ColorSet         bool
	InsuranceType    string
	InsuranceTypeSet bool
	EnginePower      int64
	EnginePowerSet   bool
	Variant          string
	VariantSet       bool
	ExistingGallery  []string
	ExistingSet      bool
}

func parseCarForm(c *gin.Context) (carFormInput, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return carFormInput{}, err
	}

	input := carFormInput{}

	// ---- STRING FIELDS ----

	if value, ok := c.GetPostForm("name"); ok {
		input.Name = strings.TrimSpace(value)
		input.NameSet = true
	}

	if value, ok := c.GetPostForm("brand"); ok {
		input.Brand = strings.TrimSpace(value)
		input.BrandSet = true
	}

	if value, ok := c.GetPostForm("description"); ok {
		input.Description = strings.TrimSpace(value)
		input.DescriptionSet = true
	}

	if value, ok := c.GetPostForm("fuelType"); ok {
		input.FuelType = strings.TrimSpace(value)
		input.FuelTypeSet = true
	}

	if value, ok := c.GetPostForm("transmission"); ok {
		input.Transmission = strings.TrimSpace(value)
		input.TransmissionSet = true
	}

	if value, ok := c.GetPostForm("status"); ok {
		input.Status = strings.TrimSpace(value)
		input.StatusSet = true
	}

	if value, ok := c.GetPostForm("noOfOwner"); ok {
		input.NoOfOwner = strings.TrimSpace(value)
		input.NoOfOwnerSet = true
	}

	if value, ok := c.GetPostForm("color"); ok {
		input.Color = strings.TrimSpace(value)
		input.ColorSet = true
	}

	if value, ok := c.GetPostForm("insuranceType"); ok {
		input.InsuranceType = strings.TrimSpace(value)
		input.InsuranceTypeSet = true
	}

	if value, ok := c.GetPostForm("variant"); ok {
		input.Variant = strings.TrimSpace(value)
		input.VariantSet = true
	}

	// ---- NUMBER FIELDS ----

	if value, ok := c.GetPostForm("year"); ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return carFormInput{}, err
		}
		input.Year = parsed
		input.YearSet = true
	}

	if value, ok := c.GetPostForm("mileage"); ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return carFormInput{}, err
		}
		input.Mileage = parsed
		input.MileageSet = true
	}

	if value, ok := c.GetPostForm("price"); ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return carFormInput{}, err
		}
		input.Price = parsed
		input.PriceSet = true
	}

	if value, ok := c.GetPostForm("enginePower"); ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return carFormInput{}, err
		}
		input.EnginePower = parsed
		input.EnginePowerSet = true
	}

	// ---- EXISTING GALLERY ----

	if value, ok := c.GetPostForm("existingGallery"); ok && strings.TrimSpace(value) != "" {
		var existing []string
		if err := json.Unmarshal([]byte(value), &existing); err != nil {
			return carFormInput{}, err
		}
		input.ExistingGallery = existing
		input.ExistingSet = true
	}

	return input, nil
}

func isValidFuelType(value string) bool {
	switch value {
	case models.FuelPetrol, models.FuelDiesel, models.FuelElectric, models.FuelHybrid, models.FuelCNG:
		return true
	}
	return false
}

func isValidTransmission(value string) bool {
	return value == models.TransmissionManual || value == models.TransmissionAutomatic
}

func isValidStatus(value string) bool {
	return value == models.StatusAvailable || value == models.StatusSold
}

func isValidInsuranceType(value string) bool {
	switch value {
	case "Comprehensive", "No insurance", "Third party", "Zero Dep":
		return true
	}
	return false
}
