package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/travelnest/travelnest-backend/internal/database"
	"github.com/travelnest/travelnest-backend/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()

	var opts seed.Options
	flag.IntVar(&opts.Users, "users", defaults.Users, "Number of users to create")
	flag.IntVar(&opts.Listings, "listings", defaults.Listings, "Number of listings to create")
	flag.IntVar(&opts.Bookings, "bookings", defaults.Bookings, "Number of bookings to create")
	flag.IntVar(&opts.Reviews, "reviews", defaults.Reviews, "Number of reviews to create")
	flag.BoolVar(&opts.Clear, "clear", false, "Clear existing data before seeding")
	flag.Parse()

	if opts.Users < 0 || opts.Listings < 0 || opts.Bookings < 0 || opts.Reviews < 0 {
		fmt.Fprintln(os.Stderr, "counts must not be negative")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	counts, err := seed.Run(db, opts)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("=== SEEDING COMPLETED ===")
	fmt.Printf("Users created:    %d\n", counts.Users)
	fmt.Printf("Listings created: %d\n", counts.Listings)
	fmt.Printf("Bookings created: %d\n", counts.Bookings)
	fmt.Printf("Reviews created:  %d\n", counts.Reviews)
}
