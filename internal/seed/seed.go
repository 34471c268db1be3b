package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/travelnest/travelnest-backend/internal/models"
	"gorm.io/gorm"
)

// Options controls how much synthetic data Run generates
type Options struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
	Clear    bool
}

// DefaultOptions mirrors the defaults of the seeding command
func DefaultOptions() Options {
	return Options{Users: 10, Listings: 20, Bookings: 50, Reviews: 100}
}

// Counts reports how many rows of each entity were created
type Counts struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
}

var propertyTypes = []string{
	"Cozy Studio Apartment",
	"Luxury Villa with Pool",
	"Modern Downtown Loft",
	"Beachfront Condo",
	"Mountain Cabin Retreat",
	"Historic Townhouse",
	"Penthouse Suite",
	"Garden View Apartment",
	"Rustic Farmhouse",
	"City Center Hotel Room",
}

var locations = []string{
	"New York, NY",
	"Los Angeles, CA",
	"Miami, FL",
	"Paris, France",
	"London, UK",
	"Tokyo, Japan",
	"Barcelona, Spain",
	"Amsterdam, Netherlands",
	"Sydney, Australia",
	"Rome, Italy",
	"Berlin, Germany",
	"San Francisco, CA",
	"Chicago, IL",
	"Seattle, WA",
	"Boston, MA",
}

var firstNames = []string{
	"Alice", "Brian", "Clara", "Daniel", "Elena", "Felix", "Grace", "Hassan",
	"Ines", "Jonas", "Kira", "Liam", "Maya", "Noah", "Olivia", "Pavel",
}

var lastNames = []string{
	"Anderson", "Brown", "Carter", "Diaz", "Evans", "Fischer", "Garcia",
	"Hansen", "Ivanov", "Johnson", "Kim", "Lopez", "Miller", "Nguyen",
}

var reviewComments = []string{
	"Amazing place! Highly recommended.",
	"Clean, comfortable, and great location.",
	"Perfect for a weekend getaway.",
	"Host was very responsive and helpful.",
	"Beautiful property with stunning views.",
	"Exactly as described, great value for money.",
	"Loved the amenities and the neighborhood.",
	"Could use some updates but overall good.",
	"Great experience, would book again!",
	"Nice place but a bit noisy at night.",
	"Excellent facilities and very clean.",
	"Perfect location for exploring the city.",
	"Host went above and beyond expectations.",
	"Good value for the price point.",
	"Comfortable bed and great wifi.",
}

var bookingStatuses = []models.BookingStatus{
	models.BookingStatusPending,
	models.BookingStatusConfirmed,
	models.BookingStatusCanceled,
	models.BookingStatusCompleted,
}

// weightedRating favors high ratings: 5/10/15/35/35 percent for 1..5 stars
func weightedRating(rng *rand.Rand) int {
	roll := rng.Intn(100)
	switch {
	case roll < 5:
		return 1
	case roll < 15:
		return 2
	case roll < 30:
		return 3
	case roll < 65:
		return 4
	default:
		return 5
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// Run populates the store with synthetic but invariant-respecting data.
// With Clear set, existing reviews, bookings and listings are deleted first;
// users are always preserved and topped up to the requested count.
func Run(db *gorm.DB, opts Options) (Counts, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var counts Counts

	if opts.Clear {
		if err := db.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
			return counts, fmt.Errorf("clearing reviews: %w", err)
		}
		if err := db.Where("1 = 1").Delete(&models.Booking{}).Error; err != nil {
			return counts, fmt.Errorf("clearing bookings: %w", err)
		}
		if err := db.Where("1 = 1").Delete(&models.Listing{}).Error; err != nil {
			return counts, fmt.Errorf("clearing listings: %w", err)
		}
	}

	users, created, err := seedUsers(db, rng, opts.Users)
	if err != nil {
		return counts, err
	}
	counts.Users = created

	listings, err := seedListings(db, rng, users, opts.Listings)
	if err != nil {
		return counts, err
	}
	counts.Listings = len(listings)

	bookings, err := seedBookings(db, rng, users, listings, opts.Bookings)
	if err != nil {
		return counts, err
	}
	counts.Bookings = bookings

	reviews, err := seedReviews(db, rng, users, listings, opts.Reviews)
	if err != nil {
		return counts, err
	}
	counts.Reviews = reviews

	return counts, nil
}

func seedUsers(db *gorm.DB, rng *rand.Rand, want int) ([]models.User, int, error) {
	var existing int64
	if err := db.Model(&models.User{}).Count(&existing).Error; err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	created := 0
	for i := int(existing); i < want; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		user := models.User{
			Username:  fmt.Sprintf("%s%s%d", first, last, i),
			Email:     fmt.Sprintf("%s.%s%d@example.com", first, last, i),
			FirstName: first,
			LastName:  last,
			Password:  "password123",
		}
		if err := user.HashPassword(); err != nil {
			return nil, created, fmt.Errorf("hashing password: %w", err)
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, created, fmt.Errorf("creating user: %w", err)
		}
		created++
	}

	var users []models.User
	if err := db.Limit(want).Find(&users).Error; err != nil {
		return nil, created, fmt.Errorf("loading users: %w", err)
	}
	return users, created, nil
}

func seedListings(db *gorm.DB, rng *rand.Rand, users []models.User, want int) ([]models.Listing, error) {
	if len(users) == 0 {
		return nil, nil
	}

	listings := make([]models.Listing, 0, want)
	for i := 0; i < want; i++ {
		host := users[rng.Intn(len(users))]
		listing := models.Listing{
			HostID:        host.ID,
			Name:          fmt.Sprintf("%s in %s", propertyTypes[rng.Intn(len(propertyTypes))], locations[rng.Intn(len(locations))]),
			Description:   "A comfortable stay with everything you need for your trip.",
			Location:      locations[rng.Intn(len(locations))],
			PricePerNight: round2(50 + rng.Float64()*450),
			Bedrooms:      1 + rng.Intn(5),
			Bathrooms:     1 + rng.Intn(4),
			MaxGuests:     1 + rng.Intn(10),
			IsAvailable:   rng.Intn(4) != 0, // 75% available
		}
		if err := db.Create(&listing).Error; err != nil {
			return nil, fmt.Errorf("creating listing: %w", err)
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func seedBookings(db *gorm.DB, rng *rand.Rand, users []models.User, listings []models.Listing, want int) (int, error) {
	if len(listings) == 0 || len(users) < 2 {
		return 0, nil
	}

	created := 0
	for i := 0; i < want; i++ {
		listing := listings[rng.Intn(len(listings))]
		guest, ok := pickGuest(rng, users, listing.HostID)
		if !ok {
			continue
		}

		checkIn := time.Now().AddDate(0, 0, rng.Intn(360)-180).Truncate(24 * time.Hour)
		nights := 1 + rng.Intn(14)
		checkOut := checkIn.AddDate(0, 0, nights)

		maxGuests := listing.MaxGuests
		if maxGuests > 6 {
			maxGuests = 6
		}

		booking := models.Booking{
			PropertyID:   listing.ListingID,
			UserID:       guest.ID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Guests:       1 + rng.Intn(maxGuests),
			Status:       bookingStatuses[rng.Intn(len(bookingStatuses))],
		}
		booking.ComputeTotalPrice(listing.PricePerNight)

		if err := db.Create(&booking).Error; err != nil {
			return created, fmt.Errorf("creating booking: %w", err)
		}
		created++
	}
	return created, nil
}

func seedReviews(db *gorm.DB, rng *rand.Rand, users []models.User, listings []models.Listing, want int) (int, error) {
	if len(listings) == 0 || len(users) < 2 {
		return 0, nil
	}

	type pair struct {
		userID    uint
		listingID string
	}
	seen := make(map[pair]bool)

	created := 0
	// Each (user, listing) pair may only review once, so give up after
	// enough failed draws rather than spinning forever
	for attempts := 0; created < want && attempts < want*3; attempts++ {
		listing := listings[rng.Intn(len(listings))]
		guest, ok := pickGuest(rng, users, listing.HostID)
		if !ok {
			continue
		}

		key := pair{userID: guest.ID, listingID: listing.ListingID.String()}
		if seen[key] {
			continue
		}
		seen[key] = true

		review := models.Review{
			PropertyID: listing.ListingID,
			UserID:     guest.ID,
			Rating:     weightedRating(rng),
			Comment:    reviewComments[rng.Intn(len(reviewComments))],
		}
		if err := db.Create(&review).Error; err != nil {
			return created, fmt.Errorf("creating review: %w", err)
		}
		created++
	}
	return created, nil
}

// pickGuest draws a user who is not the listing's host
func pickGuest(rng *rand.Rand, users []models.User, hostID uint) (models.User, bool) {
	candidates := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != hostID {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return models.User{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
