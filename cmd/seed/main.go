// Command seed loads demo content into the database.
package main

import (
	"log"

	"blogicum/internal/config"
	"blogicum/internal/database"
	"blogicum/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
	log.Println("📧 All demo users have the password: password123")
}
