package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/travelnest/travelnest-backend/internal/models"
	"github.com/travelnest/travelnest-backend/internal/serializers"
	"gorm.io/gorm"
)

// GetListingReviews retrieves all reviews for a listing, newest first
func GetListingReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Listing not found"})
			return
		}

		var listing models.Listing
		if err := db.First(&listing, "listing_id = ?", listingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Listing not found"})
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").
			Where("property_id = ?", listing.ListingID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(200, serializers.ToReviewResponses(reviews))
	}
}

// CreateReview creates a review for a listing. A user may review a listing
// only once.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		listingId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Listing not found"})
			return
		}

		var listing models.Listing
		if err := db.First(&listing, "listing_id = ?", listingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Listing not found"})
			return
		}

		var input serializers.ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if verrs := input.Validate(); verrs != nil {
			c.JSON(400, gin.H{"errors": verrs})
			return
		}

		var existing models.Review
		err = db.Where("property_id = ? AND user_id = ?", listing.ListingID, userId).
			First(&existing).Error
		if err == nil {
			c.JSON(400, gin.H{"errors": serializers.ValidationErrors{
				"user": "You have already reviewed this property.",
			}})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(500, gin.H{"error": "Failed to check existing reviews"})
			return
		}

		review := models.Review{
			PropertyID: listing.ListingID,
			UserID:     userId,
			Rating:     input.Rating,
			Comment:    input.Comment,
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create review"})
			return
		}

		if err := db.First(&review.User, userId).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to load user"})
			return
		}

		c.JSON(201, serializers.ToReviewResponse(&review))
	}
}

// DeleteReview deletes a review. Only the author may delete it.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		reviewId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Review not found"})
			return
		}

		var review models.Review
		if err := db.First(&review, "review_id = ?", reviewId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Review not found"})
			return
		}

		if review.UserID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete review"})
			return
		}

		c.JSON(200, gin.H{"message": "Review deleted"})
	}
}
