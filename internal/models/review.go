package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ReviewID   uuid.UUID `json:"reviewId" gorm:"column:review_id;type:uuid;primaryKey"`
	PropertyID uuid.UUID `json:"propertyId" gorm:"column:property_id;type:uuid;not null;uniqueIndex:idx_reviews_property_user"`
	Property   Listing   `json:"property" gorm:"foreignKey:PropertyID;references:ListingID"`
	UserID     uint      `json:"userId" gorm:"column:user_id;not null;uniqueIndex:idx_reviews_property_user"`
	User       User      `json:"user" gorm:"foreignKey:UserID"`
	Rating     int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string    `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ReviewID == uuid.Nil {
		r.ReviewID = uuid.New()
	}
	return nil
}
