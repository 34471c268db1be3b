package serializers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/travelnest/travelnest-backend/internal/models"
)

const dateLayout = "2006-01-02"

type BookingInput struct {
	PropertyID   string `json:"propertyId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Guests       int    `json:"guests"`
	Status       string `json:"status"`
}

// BookingParams holds the parsed, validated booking fields. The client never
// supplies total_price; it is derived from the listing at creation time.
type BookingParams struct {
	PropertyID   uuid.UUID
	CheckInDate  time.Time
	CheckOutDate time.Time
	Guests       int
	Status       models.BookingStatus
}

// Validate parses and checks the input. When listing is non-nil the guest
// count is additionally checked against its capacity, so all violations of a
// write are reported together.
func (in *BookingInput) Validate(listing *models.Listing) (BookingParams, ValidationErrors) {
	errs := ValidationErrors{}
	var params BookingParams

	propertyID, err := uuid.Parse(in.PropertyID)
	if err != nil {
		errs["propertyId"] = "Invalid property ID."
	}
	params.PropertyID = propertyID

	checkIn, err := time.Parse(dateLayout, in.CheckInDate)
	if err != nil {
		errs["checkInDate"] = "Check-in date must be in YYYY-MM-DD format."
	}
	checkOut, err := time.Parse(dateLayout, in.CheckOutDate)
	if err != nil {
		errs["checkOutDate"] = "Check-out date must be in YYYY-MM-DD format."
	}
	if errs["checkInDate"] == "" && errs["checkOutDate"] == "" && !checkOut.After(checkIn) {
		errs["checkOutDate"] = "Check-out date must be after check-in date."
	}
	params.CheckInDate = checkIn
	params.CheckOutDate = checkOut

	if in.Guests < 1 {
		errs["guests"] = "Number of guests must be at least 1."
	} else if listing != nil && in.Guests > listing.MaxGuests {
		errs["guests"] = fmt.Sprintf("Number of guests exceeds maximum capacity of %d.", listing.MaxGuests)
	}
	params.Guests = in.Guests

	params.Status = models.BookingStatusPending
	if in.Status != "" {
		switch models.BookingStatus(in.Status) {
		case models.BookingStatusPending, models.BookingStatusConfirmed,
			models.BookingStatusCanceled, models.BookingStatusCompleted:
			params.Status = models.BookingStatus(in.Status)
		default:
			errs["status"] = "Status must be one of pending, confirmed, canceled, completed."
		}
	}

	if len(errs) == 0 {
		return params, nil
	}
	return params, errs
}

type BookingResponse struct {
	BookingID    uuid.UUID              `json:"bookingId"`
	Property     ListingSummaryResponse `json:"property"`
	User         UserResponse           `json:"user"`
	CheckInDate  string                 `json:"checkInDate"`
	CheckOutDate string                 `json:"checkOutDate"`
	Guests       int                    `json:"guests"`
	TotalPrice   float64                `json:"totalPrice"`
	Status       models.BookingStatus   `json:"status"`
	DurationDays int                    `json:"durationDays"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		BookingID:    b.BookingID,
		Property:     ToListingSummaryResponse(&b.Property),
		User:         ToUserResponse(&b.User),
		CheckInDate:  b.CheckInDate.Format(dateLayout),
		CheckOutDate: b.CheckOutDate.Format(dateLayout),
		Guests:       b.Guests,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		DurationDays: b.DurationDays(),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// BookingSummaryResponse is the reduced shape for list views
type BookingSummaryResponse struct {
	BookingID    uuid.UUID            `json:"bookingId"`
	PropertyName string               `json:"propertyName"`
	UserName     string               `json:"userName"`
	CheckInDate  string               `json:"checkInDate"`
	CheckOutDate string               `json:"checkOutDate"`
	Guests       int                  `json:"guests"`
	TotalPrice   float64              `json:"totalPrice"`
	Status       models.BookingStatus `json:"status"`
	DurationDays int                  `json:"durationDays"`
}

func ToBookingSummaryResponse(b *models.Booking) BookingSummaryResponse {
	return BookingSummaryResponse{
		BookingID:    b.BookingID,
		PropertyName: b.Property.Name,
		UserName:     b.User.Username,
		CheckInDate:  b.CheckInDate.Format(dateLayout),
		CheckOutDate: b.CheckOutDate.Format(dateLayout),
		Guests:       b.Guests,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		DurationDays: b.DurationDays(),
	}
}

func ToBookingSummaryResponses(bookings []models.Booking) []BookingSummaryResponse {
	out := make([]BookingSummaryResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingSummaryResponse(&bookings[i]))
	}
	return out
}
