package main

import (
	"fmt"
	"log"
	"time"

	"github.com/SatpalInfilogix/kular-fashion-web/config"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates and seeds the storefront content database
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("KULAR FASHION - Content Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to content database")

	migrate()
	seedContent()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Content Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the storefront: go run main.go")
	fmt.Println("2. Open http://localhost:8080/api/v1/content/home")
	fmt.Println()
}

func migrate() {
	if err := config.ContentGorm.AutoMigrate(
		&models.HeroBanner{},
		&models.FeaturedCategory{},
		&models.Testimonial{},
		&models.Brand{},
	); err != nil {
		log.Fatalf("Failed to migrate content tables: %v", err)
	}

	// Newsletter rows go through pgx, so the table is created directly.
	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()
	_, err := config.ContentDB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS newsletter_subscribers (
			email         TEXT PRIMARY KEY,
			subscribed_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		log.Fatalf("Failed to create newsletter table: %v", err)
	}

	log.Println("✓ Schema migrated")
}

func seedContent() {
	var count int64
	config.ContentGorm.Model(&models.HeroBanner{}).Count(&count)
	if count > 0 {
		log.Println("✓ Content already present, skipping seed")
		return
	}

	heroes := []models.HeroBanner{
		{
			Title:    "New Season, New You",
			Subtitle: "The autumn collection has landed",
			ImageID:  "kular/hero/autumn-collection",
			CTA:      datatypes.JSON([]byte(`{"label": "Shop Now", "href": "/products"}`)),
			Position: 1,
			Active:   true,
		},
		{
			Title:    "Up to 40% Off",
			Subtitle: "End of season sale on selected lines",
			ImageID:  "kular/hero/season-sale",
			CTA:      datatypes.JSON([]byte(`{"label": "Shop the Sale", "href": "/products?sale=1"}`)),
			Position: 2,
			Active:   true,
		},
	}
	if err := config.ContentGorm.Create(&heroes).Error; err != nil {
		log.Fatalf("Failed to seed hero banners: %v", err)
	}

	categories := []models.FeaturedCategory{
		{CategoryRef: "womens", Label: "Women", ImageID: "kular/categories/women", Position: 1, Active: true},
		{CategoryRef: "mens", Label: "Men", ImageID: "kular/categories/men", Position: 2, Active: true},
		{CategoryRef: "accessories", Label: "Accessories", ImageID: "kular/categories/accessories", Position: 3, Active: true},
	}
	if err := config.ContentGorm.Create(&categories).Error; err != nil {
		log.Fatalf("Failed to seed featured categories: %v", err)
	}

	testimonials := []models.Testimonial{
		{
			Author: "Priya S.",
			Quote:  "Beautiful quality and the delivery was faster than expected.",
			Rating: 5,
			Meta:   datatypes.JSON([]byte(`{"location": "Birmingham", "verified": true}`)),
			Active: true,
		},
		{
			Author: "James W.",
			Quote:  "The sizing guide was spot on. Will definitely order again.",
			Rating: 4,
			Meta:   datatypes.JSON([]byte(`{"location": "Leeds", "verified": true}`)),
			Active: true,
		},
	}
	if err := config.ContentGorm.Create(&testimonials).Error; err != nil {
		log.Fatalf("Failed to seed testimonials: %v", err)
	}

	brands := []models.Brand{
		{Name: "Aurelia", LogoID: "kular/brands/aurelia", Position: 1, Active: true},
		{Name: "Northway", LogoID: "kular/brands/northway", Position: 2, Active: true},
		{Name: "Velmont", LogoID: "kular/brands/velmont", Position: 3, Active: true},
	}
	if err := config.ContentGorm.Create(&brands).Error; err != nil {
		log.Fatalf("Failed to seed brands: %v", err)
	}

	log.Println("✓ Content seeded")
}
