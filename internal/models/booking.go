package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	BookingID    uuid.UUID     `json:"bookingId" gorm:"column:booking_id;type:uuid;primaryKey"`
	PropertyID   uuid.UUID     `json:"propertyId" gorm:"column:property_id;type:uuid;not null;index"`
	Property     Listing       `json:"property" gorm:"foreignKey:PropertyID;references:ListingID"`
	UserID       uint          `json:"userId" gorm:"column:user_id;not null;index"`
	User         User          `json:"user" gorm:"foreignKey:UserID"`
	CheckInDate  time.Time     `json:"checkInDate" gorm:"column:check_in_date;type:date;not null"`
	CheckOutDate time.Time     `json:"checkOutDate" gorm:"column:check_out_date;type:date;not null"`
	Guests       int           `json:"guests" gorm:"default:1"`
	TotalPrice   float64       `json:"totalPrice" gorm:"column:total_price;type:decimal(10,2);not null"`
	Status       BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	return nil
}

// DurationDays returns the length of the stay in nights
func (b *Booking) DurationDays() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// ComputeTotalPrice derives the total price from the listing's current
// nightly rate and the booked date span
func (b *Booking) ComputeTotalPrice(pricePerNight float64) {
	b.TotalPrice = pricePerNight * float64(b.DurationDays())
}
