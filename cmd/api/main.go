package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/travelnest/travelnest-backend/internal/database"
	"github.com/travelnest/travelnest-backend/internal/handlers"
	"github.com/travelnest/travelnest-backend/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
		}

		// Listings are publicly browsable
		api.GET("/listings", handlers.GetListings(db))
		api.GET("/listings/:id", handlers.GetListing(db))
		api.GET("/listings/:id/reviews", handlers.GetListingReviews(db))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			users := protected.Group("/users")
			{
				users.GET("/profile", handlers.GetProfile(db))
				users.PUT("/profile", handlers.UpdateProfile(db))
			}

			listings := protected.Group("/listings")
			{
				listings.POST("", handlers.CreateListing(db))
				listings.PUT("/:id", handlers.UpdateListing(db))
				listings.DELETE("/:id", handlers.DeleteListing(db))
				listings.POST("/:id/reviews", handlers.CreateReview(db))
			}

			bookings := protected.Group("/bookings")
			{
				bookings.POST("", handlers.CreateBooking(db))
				bookings.GET("", handlers.GetBookings(db))
				bookings.GET("/host", handlers.GetHostBookings(db))
				bookings.GET("/:id", handlers.GetBooking(db))
				bookings.PATCH("/:id", handlers.UpdateBooking(db))
				bookings.PATCH("/:id/status", handlers.UpdateBookingStatus(db))
			}

			reviews := protected.Group("/reviews")
			{
				reviews.DELETE("/:id", handlers.DeleteReview(db))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
