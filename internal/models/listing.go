package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Listing struct {
	ListingID     uuid.UUID `json:"listingId" gorm:"column:listing_id;type:uuid;primaryKey"`
	HostID        uint      `json:"hostId" gorm:"column:host_id;not null;index"`
	Host          User      `json:"host" gorm:"foreignKey:HostID"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text;not null"`
	Location      string    `json:"location" gorm:"not null"`
	PricePerNight float64   `json:"pricePerNight" gorm:"column:price_per_night;type:decimal(10,2);not null"`
	Bedrooms      int       `json:"bedrooms" gorm:"default:1"`
	Bathrooms     int       `json:"bathrooms" gorm:"default:1"`
	MaxGuests     int       `json:"maxGuests" gorm:"column:max_guests;default:2"`
	IsAvailable   bool      `json:"isAvailable" gorm:"column:is_available;default:true"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Listing) TableName() string {
	return "listings"
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	return nil
}
