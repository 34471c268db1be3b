package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/travelnest/travelnest-backend/internal/models"
	"github.com/travelnest/travelnest-backend/internal/serializers"
	"gorm.io/gorm"
)

// reviewStats computes the review aggregates for a listing. AVG over zero
// rows is NULL, which keeps averageRating absent for unreviewed listings.
func reviewStats(db *gorm.DB, listingID uuid.UUID) (serializers.ReviewStats, error) {
	var row struct {
		Count int64
		Avg   *float64
	}
	err := db.Model(&models.Review{}).
		Where("property_id = ?", listingID).
		Select("COUNT(*) AS count, AVG(rating) AS avg").
		Scan(&row).Error
	if err != nil {
		return serializers.ReviewStats{}, err
	}
	return serializers.ReviewStats{TotalReviews: row.Count, AverageRating: row.Avg}, nil
}

// GetListings retrieves all listings as summaries, optionally filtered by
// location and availability
func GetListings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Host").Order("created_at DESC")

		if location := c.Query("location"); location != "" {
			query = query.Where("location LIKE ?", "%"+location+"%")
		}
		if available := c.Query("available"); available == "true" {
			query = query.Where("is_available = ?", true)
		}

		var listings []models.Listing
		if err := query.Find(&listings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch listings"})
			return
		}

		c.JSON(200, serializers.ToListingSummaryResponses(listings))
	}
}

// CreateListing creates a new listing owned by the authenticated user
func CreateListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input serializers.ListingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if verrs := input.Validate(); verrs != nil {
			c.JSON(400, gin.H{"errors": verrs})
			return
		}

		listing := models.Listing{HostID: userId, IsAvailable: true}
		input.Apply(&listing)

		if err := db.Create(&listing).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create listing"})
			return
		}

		if err := db.First(&listing.Host, userId).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to load host"})
			return
		}

		c.JSON(201, serializers.ToListingResponse(&listing, serializers.ReviewStats{}))
	}
}

// GetListing retrieves a single listing with its review statistics and the
// full list of reviews, newest first
func GetListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Listing not found"})
			return
		}

		var listing models.Listing
		if err := db.Preload("Host").First(&listing, "listing_id = ?", listingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Listing not found"})
			return
		}

		stats, err := reviewStats(db, listing.ListingID)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch review statistics"})
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

		c.JSON(200, serializers.ToListingDetailResponse(&listing, stats, reviews))
	}
}

// UpdateListing updates a listing. Only the host may update it; a price
// change affects future bookings only.
func UpdateListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		listingId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Listing not found"})
			return
		}

		var listing models.Listing
		if err := db.Preload("Host").First(&listing, "listing_id = ?", listingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Listing not found"})
			return
		}

		if listing.HostID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		var input serializers.ListingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if verrs := input.Validate(); verrs != nil {
			c.JSON(400, gin.H{"errors": verrs})
			return
		}

		input.Apply(&listing)
		if err := db.Save(&listing).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update listing"})
			return
		}

		stats, err := reviewStats(db, listing.ListingID)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch review statistics"})
			return
		}

		c.JSON(200, serializers.ToListingResponse(&listing, stats))
	}
}

// DeleteListing deletes a listing and cascades to its bookings and reviews
// in one transaction. Only the host may delete it.
func DeleteListing(db *gorm.DB) gin.HandlerFunc {
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

		if listing.HostID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("property_id = ?", listing.ListingID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("property_id = ?", listing.ListingID).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			return tx.Delete(&listing).Error
		})
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete listing"})
			return
		}

		c.JSON(200, gin.H{"message": "Listing deleted"})
	}
}
