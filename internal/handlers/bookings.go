package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/travelnest/travelnest-backend/internal/models"
	"github.com/travelnest/travelnest-backend/internal/serializers"
	"gorm.io/gorm"
)

// CreateBooking handles the creation of a new booking. The total price is
// always computed server-side from the listing's current nightly rate, so a
// client-supplied amount can never tamper with it.
func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input serializers.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var listing *models.Listing
		if propertyId, err := uuid.Parse(input.PropertyID); err == nil {
			var l models.Listing
			if err := db.First(&l, "listing_id = ?", propertyId).Error; err != nil {
				c.JSON(404, gin.H{"error": "Listing not found"})
				return
			}
			listing = &l
		}

		params, verrs := input.Validate(listing)
		if verrs != nil {
			c.JSON(400, gin.H{"errors": verrs})
			return
		}

		if !listing.IsAvailable {
			c.JSON(400, gin.H{"errors": serializers.ValidationErrors{
				"propertyId": "This listing is not available for booking.",
			}})
			return
		}

		booking := models.Booking{
			PropertyID:   listing.ListingID,
			UserID:       userId,
			CheckInDate:  params.CheckInDate,
			CheckOutDate: params.CheckOutDate,
			Guests:       params.Guests,
			Status:       params.Status,
		}
		booking.ComputeTotalPrice(listing.PricePerNight)

		if err := db.Create(&booking).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create booking"})
			return
		}

		booking.Property = *listing
		if err := db.First(&booking.User, userId).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to load user"})
			return
		}

		c.JSON(201, serializers.ToBookingResponse(&booking))
	}
}

// GetBookings retrieves all bookings made by the authenticated user
func GetBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var bookings []models.Booking
		if err := db.Where("user_id = ?", userId).
			Preload("Property").
			Preload("User").
			Order("created_at DESC").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(200, serializers.ToBookingSummaryResponses(bookings))
	}
}

// GetHostBookings retrieves all bookings against the authenticated user's
// listings
func GetHostBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var bookings []models.Booking
		if err := db.Joins("JOIN listings ON listings.listing_id = bookings.property_id").
			Where("listings.host_id = ?", userId).
			Preload("Property").
			Preload("User").
			Order("bookings.created_at DESC").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(200, serializers.ToBookingSummaryResponses(bookings))
	}
}

// GetBooking retrieves detailed booking information. Only the guest or the
// listing's host may view it.
func GetBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		bookingId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		var booking models.Booking
		if err := db.Preload("Property").
			Preload("Property.Host").
			Preload("User").
			First(&booking, "booking_id = ?", bookingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if booking.UserID != userId && booking.Property.HostID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(200, serializers.ToBookingResponse(&booking))
	}
}

// UpdateBooking lets the guest change the dates or guest count of a pending
// booking. The total price is recomputed from the listing's current rate.
func UpdateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		bookingId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		var booking models.Booking
		if err := db.Preload("Property").
			Preload("User").
			First(&booking, "booking_id = ?", bookingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if booking.UserID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if booking.Status != models.BookingStatusPending {
			c.JSON(400, gin.H{"error": "Only pending bookings can be modified"})
			return
		}

		input := serializers.BookingInput{
			PropertyID:   booking.PropertyID.String(),
			CheckInDate:  booking.CheckInDate.Format("2006-01-02"),
			CheckOutDate: booking.CheckOutDate.Format("2006-01-02"),
			Guests:       booking.Guests,
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		input.PropertyID = booking.PropertyID.String() // the booked listing cannot change

		params, verrs := input.Validate(&booking.Property)
		if verrs != nil {
			c.JSON(400, gin.H{"errors": verrs})
			return
		}

		booking.CheckInDate = params.CheckInDate
		booking.CheckOutDate = params.CheckOutDate
		booking.Guests = params.Guests
		booking.ComputeTotalPrice(booking.Property.PricePerNight)

		if err := db.Save(&booking).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update booking"})
			return
		}

		c.JSON(200, serializers.ToBookingResponse(&booking))
	}
}

// UpdateBookingStatus updates the status of a booking. The guest may cancel;
// the host may confirm, cancel or complete.
func UpdateBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		bookingId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		var input struct {
			Status string `json:"status" binding:"required,oneof=pending confirmed canceled completed"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"errors": serializers.ValidationErrors{
				"status": "Status must be one of pending, confirmed, canceled, completed.",
			}})
			return
		}

		var booking models.Booking
		if err := db.Preload("Property").
			Preload("User").
			First(&booking, "booking_id = ?", bookingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		status := models.BookingStatus(input.Status)
		isGuest := booking.UserID == userId
		isHost := booking.Property.HostID == userId

		switch {
		case isHost:
			// hosts manage the full lifecycle
		case isGuest:
			if status != models.BookingStatusCanceled {
				c.JSON(403, gin.H{"error": "Guests may only cancel their bookings"})
				return
			}
		default:
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		booking.Status = status
		if err := db.Save(&booking).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update booking status"})
			return
		}

		c.JSON(200, serializers.ToBookingResponse(&booking))
	}
}
