package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/travelnest/travelnest-backend/internal/models"
	"github.com/travelnest/travelnest-backend/internal/serializers"
)

func TestCreateReview(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host, 100, 4)

	input := serializers.ReviewInput{Rating: 5, Comment: "Amazing place!"}
	c, w := newTestContext(t, "POST", "/api/listings/"+listing.ListingID.String()+"/reviews", input, guest.ID,
		gin.Params{{Key: "id", Value: listing.ListingID.String()}})

	CreateReview(db)(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, float64(5), response["rating"])
	assert.Equal(t, "Amazing place!", response["comment"])

	user := response["user"].(map[string]interface{})
	assert.Equal(t, "guest", user["username"])
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host, 100, 4)

	for _, rating := range []int{0, 6} {
		input := serializers.ReviewInput{Rating: rating, Comment: "Out of range"}
		c, w := newTestContext(t, "POST", "/api/listings/"+listing.ListingID.String()+"/reviews", input, guest.ID,
			gin.Params{{Key: "id", Value: listing.ListingID.String()}})

		CreateReview(db)(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errs := fieldErrors(t, w)
		assert.Contains(t, errs, "rating")
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateReviewDuplicate(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	listing := createTestListing(t, db, host, 100, 4)

	input := serializers.ReviewInput{Rating: 4, Comment: "Nice stay."}
	c, w := newTestContext(t, "POST", "/api/listings/"+listing.ListingID.String()+"/reviews", input, guest.ID,
		gin.Params{{Key: "id", Value: listing.ListingID.String()}})
	CreateReview(db)(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = newTestContext(t, "POST", "/api/listings/"+listing.ListingID.String()+"/reviews", input, guest.ID,
		gin.Params{{Key: "id", Value: listing.ListingID.String()}})
	CreateReview(db)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetListingReviewsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")
	listing := createTestListing(t, db, host, 100, 4)

	older := models.Review{
		PropertyID: listing.ListingID,
		UserID:     first.ID,
		Rating:     3,
		Comment:    "Older review",
		CreatedAt:  time.Now().Add(-48 * time.Hour),
	}
	db.Create(&older)
	newer := models.Review{
		PropertyID: listing.ListingID,
		UserID:     second.ID,
		Rating:     5,
		Comment:    "Newer review",
		CreatedAt:  time.Now(),
	}
	db.Create(&newer)

	c, w := newTestContext(t, "GET", "/api/listings/"+listing.ListingID.String()+"/reviews", nil, 0,
		gin.Params{{Key: "id", Value: listing.ListingID.String()}})

	GetListingReviews(db)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	assert.Equal(t, "Newer review", response[0]["comment"])
	assert.Equal(t, "Older review", response[1]["comment"])
}

func TestDeleteReviewUnauthorized(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	listing := createTestListing(t, db, host, 100, 4)

	review := models.Review{PropertyID: listing.ListingID, UserID: author.ID, Rating: 4, Comment: "Mine"}
	db.Create(&review)

	c, w := newTestContext(t, "DELETE", "/api/reviews/"+review.ReviewID.String(), nil, other.ID,
		gin.Params{{Key: "id", Value: review.ReviewID.String()}})

	DeleteReview(db)(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteReviewByAuthor(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	author := createTestUser(t, db, "author")
	listing := createTestListing(t, db, host, 100, 4)

	review := models.Review{PropertyID: listing.ListingID, UserID: author.ID, Rating: 4, Comment: "Mine"}
	db.Create(&review)

	c, w := newTestContext(t, "DELETE", "/api/reviews/"+review.ReviewID.String(), nil, author.ID,
		gin.Params{{Key: "id", Value: review.ReviewID.String()}})

	DeleteReview(db)(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
