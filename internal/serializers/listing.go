package serializers

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/travelnest/travelnest-backend/internal/models"
)

type ListingInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	MaxGuests     int     `json:"maxGuests"`
	IsAvailable   *bool   `json:"isAvailable"`
}

func (in *ListingInput) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required."
	}
	if strings.TrimSpace(in.Description) == "" {
		errs["description"] = "Description is required."
	}
	if strings.TrimSpace(in.Location) == "" {
		errs["location"] = "Location is required."
	}
	if in.PricePerNight <= 0 {
		errs["pricePerNight"] = "Price per night must be greater than 0."
	}
	if in.Bedrooms < 0 {
		errs["bedrooms"] = "Bedrooms cannot be negative."
	}
	if in.Bathrooms < 0 {
		errs["bathrooms"] = "Bathrooms cannot be negative."
	}
	if in.MaxGuests < 1 {
		errs["maxGuests"] = "Max guests must be at least 1."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Apply copies the validated input onto a listing record
func (in *ListingInput) Apply(l *models.Listing) {
	l.Name = in.Name
	l.Description = in.Description
	l.Location = in.Location
	l.PricePerNight = in.PricePerNight
	l.Bedrooms = in.Bedrooms
	l.Bathrooms = in.Bathrooms
	l.MaxGuests = in.MaxGuests
	if in.IsAvailable != nil {
		l.IsAvailable = *in.IsAvailable
	}
}

// ReviewStats carries the review aggregates for a listing. AverageRating
// is nil when the listing has no reviews.
type ReviewStats struct {
	TotalReviews  int64
	AverageRating *float64
}

type ListingResponse struct {
	ListingID     uuid.UUID    `json:"listingId"`
	Host          UserResponse `json:"host"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Location      string       `json:"location"`
	PricePerNight float64      `json:"pricePerNight"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	MaxGuests     int          `json:"maxGuests"`
	IsAvailable   bool         `json:"isAvailable"`
	AverageRating *float64     `json:"averageRating"`
	TotalReviews  int64        `json:"totalReviews"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func ToListingResponse(l *models.Listing, stats ReviewStats) ListingResponse {
	return ListingResponse{
		ListingID:     l.ListingID,
		Host:          ToUserResponse(&l.Host),
		Name:          l.Name,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		MaxGuests:     l.MaxGuests,
		IsAvailable:   l.IsAvailable,
		AverageRating: stats.AverageRating,
		TotalReviews:  stats.TotalReviews,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// ListingSummaryResponse is the reduced shape for list views. It carries no
// review aggregates so listing collections stay cheap to serve.
type ListingSummaryResponse struct {
	ListingID     uuid.UUID `json:"listingId"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"pricePerNight"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	MaxGuests     int       `json:"maxGuests"`
	IsAvailable   bool      `json:"isAvailable"`
	HostName      string    `json:"hostName"`
}

func ToListingSummaryResponse(l *models.Listing) ListingSummaryResponse {
	return ListingSummaryResponse{
		ListingID:     l.ListingID,
		Name:          l.Name,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		MaxGuests:     l.MaxGuests,
		IsAvailable:   l.IsAvailable,
		HostName:      l.Host.Username,
	}
}

func ToListingSummaryResponses(listings []models.Listing) []ListingSummaryResponse {
	out := make([]ListingSummaryResponse, 0, len(listings))
	for i := range listings {
		out = append(out, ToListingSummaryResponse(&listings[i]))
	}
	return out
}

type ListingDetailResponse struct {
	ListingResponse
	Reviews []ReviewResponse `json:"reviews"`
}

// ToListingDetailResponse expects reviews already ordered most-recent-first
func ToListingDetailResponse(l *models.Listing, stats ReviewStats, reviews []models.Review) ListingDetailResponse {
	return ListingDetailResponse{
		ListingResponse: ToListingResponse(l, stats),
		Reviews:         ToReviewResponses(reviews),
	}
}
