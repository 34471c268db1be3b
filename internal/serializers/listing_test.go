package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travelnest/travelnest-backend/internal/models"
)

func TestListingInputValidate(t *testing.T) {
	in := ListingInput{
		Name:          "Cozy Studio",
		Description:   "Nice and central.",
		Location:      "Paris, France",
		PricePerNight: 85.5,
		Bedrooms:      1,
		Bathrooms:     1,
		MaxGuests:     2,
	}

	assert.Nil(t, in.Validate())
}

func TestListingInputValidateRejectsInvalid(t *testing.T) {
	in := ListingInput{
		Name:          "  ",
		Description:   "",
		Location:      "",
		PricePerNight: 0,
		Bedrooms:      -1,
		Bathrooms:     -1,
		MaxGuests:     0,
	}

	errs := in.Validate()

	assert.Len(t, errs, 7)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "pricePerNight")
	assert.Contains(t, errs, "maxGuests")
}

func TestListingInputApply(t *testing.T) {
	available := false
	in := ListingInput{
		Name:          "Penthouse Suite",
		Description:   "Top floor.",
		Location:      "Tokyo, Japan",
		PricePerNight: 300,
		Bedrooms:      3,
		Bathrooms:     2,
		MaxGuests:     6,
		IsAvailable:   &available,
	}

	listing := models.Listing{IsAvailable: true}
	in.Apply(&listing)

	assert.Equal(t, "Penthouse Suite", listing.Name)
	assert.Equal(t, float64(300), listing.PricePerNight)
	assert.Equal(t, 6, listing.MaxGuests)
	assert.False(t, listing.IsAvailable)
}

func TestListingInputApplyKeepsAvailabilityWhenOmitted(t *testing.T) {
	in := ListingInput{
		Name:          "Loft",
		Description:   "Open space.",
		Location:      "Berlin, Germany",
		PricePerNight: 90,
		MaxGuests:     2,
	}

	listing := models.Listing{IsAvailable: true}
	in.Apply(&listing)

	assert.True(t, listing.IsAvailable)
}
