package serializers

import (
	"time"

	"github.com/google/uuid"
	"github.com/travelnest/travelnest-backend/internal/models"
)

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (in *ReviewInput) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if in.Rating < 1 || in.Rating > 5 {
		errs["rating"] = "Rating must be between 1 and 5."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type ReviewResponse struct {
	ReviewID   uuid.UUID    `json:"reviewId"`
	PropertyID uuid.UUID    `json:"propertyId"`
	User       UserResponse `json:"user"`
	Rating     int          `json:"rating"`
	Comment    string       `json:"comment"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func ToReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:   r.ReviewID,
		PropertyID: r.PropertyID,
		User:       ToUserResponse(&r.User),
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func ToReviewResponses(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, ToReviewResponse(&reviews[i]))
	}
	return out
}
