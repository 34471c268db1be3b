package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/travelnest/travelnest-backend/internal/database"
	"github.com/travelnest/travelnest-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestListing(t *testing.T, db *gorm.DB, host models.User, pricePerNight float64, maxGuests int) models.Listing {
	t.Helper()
	listing := models.Listing{
		HostID:        host.ID,
		Name:          "Cozy Studio Apartment",
		Description:   "A comfortable stay in the city center.",
		Location:      "Barcelona, Spain",
		PricePerNight: pricePerNight,
		Bedrooms:      1,
		Bathrooms:     1,
		MaxGuests:     maxGuests,
		IsAvailable:   true,
	}
	if err := db.Create(&listing).Error; err != nil {
		t.Fatalf("failed to create test listing: %v", err)
	}
	return listing
}

// newTestContext builds a gin context carrying an optional JSON body, an
// authenticated user and path parameters
func newTestContext(t *testing.T, method, path string, body interface{}, userID uint, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		c.Set("userId", userID)
	}
	c.Params = params
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return response
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	response := decodeBody(t, w)
	errs, ok := response["errors"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected per-field errors, got body: %s", w.Body.String())
	}
	return errs
}
