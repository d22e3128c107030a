// Seed populates the database with sample retailers, products, and price
// observations for local development.
package main

import (
	"flag"
	"time"

	"price-tracker/internal/config"
	"price-tracker/internal/database"
	"price-tracker/internal/logger"
	"price-tracker/internal/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var dbURL = flag.String("db", "", "database connection string (defaults to DATABASE_URL)")

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.WithComponent("seed")

	dsn := cfg.DatabaseURL
	if *dbURL != "" {
		dsn = *dbURL
	}

	db, err := database.Initialize(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	seedRetailers(db)
	seedProducts(db)
	seedPrices(db)
	log.Info().Msg("database seeded")
}

func seedRetailers(db *gorm.DB) {
	retailers := []models.Retailer{
		{Name: "eBay", BaseURL: "https://www.ebay.com"},
		{Name: "Reverb", BaseURL: "https://reverb.com"},
		{Name: "PriceCharting", BaseURL: "https://www.pricecharting.com"},
		{Name: "TCGPlayer", BaseURL: "https://www.tcgplayer.com"},
	}
	for _, r := range retailers {
		var existing models.Retailer
		if err := db.Where("name = ?", r.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&r)
		}
	}
}

func seedProducts(db *gorm.DB) {
	products := []models.Product{
		{
			Name:        "MacBook Pro 14-inch M3 Pro",
			Category:    "mac",
			Description: "2023 MacBook Pro with M3 Pro chip, Space Black",
			ImageURL:    "https://example.com/macbook-pro-14.jpg",
			IsActive:    true,
		},
		{
			Name:        "MacBook Air 15-inch M2",
			Category:    "mac",
			Description: "2023 MacBook Air with M2 chip, Midnight",
			ImageURL:    "https://example.com/macbook-air-15.jpg",
			IsActive:    true,
		},
		{
			Name:        "Charizard EX",
			Category:    "pokemon",
			Description: "Ultra Rare Charizard card from Scarlet & Violet set",
			ImageURL:    "https://example.com/charizard-ex.jpg",
			IsActive:    true,
		},
		{
			Name:        "Pikachu VMAX",
			Category:    "pokemon",
			Description: "Rainbow Rare Pikachu from Vivid Voltage",
			ImageURL:    "https://example.com/pikachu-vmax.jpg",
			IsActive:    true,
		},
		{
			Name:        "Shure SM7B",
			Category:    "audio",
			Description: "Professional dynamic microphone for broadcast and podcasting",
			ImageURL:    "https://example.com/shure-sm7b.jpg",
			IsActive:    true,
		},
		{
			Name:        "Fender American Professional II Stratocaster",
			Category:    "audio",
			Description: "Professional electric guitar with V-Mod II pickups",
			ImageURL:    "https://example.com/fender-strat.jpg",
			IsActive:    true,
		},
	}
	for _, p := range products {
		var existing models.Product
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&p)
		}
	}
}

func seedPrices(db *gorm.DB) {
	samples := map[string]float64{
		"MacBook Pro 14-inch M3 Pro":                   1999.00,
		"MacBook Air 15-inch M2":                       1299.00,
		"Charizard EX":                                 45.00,
		"Pikachu VMAX":                                 120.00,
		"Shure SM7B":                                   399.00,
		"Fender American Professional II Stratocaster": 1599.00,
	}

	var retailers []models.Retailer
	db.Limit(2).Find(&retailers)
	if len(retailers) == 0 {
		return
	}

	now := time.Now().UTC()
	for name, base := range samples {
		var product models.Product
		if err := db.Where("name = ?", name).First(&product).Error; err != nil {
			continue
		}
		for _, retailer := range retailers {
			var count int64
			db.Model(&models.Price{}).
				Where("product_id = ? AND retailer_id = ?", product.ID, retailer.ID).
				Count(&count)
			if count > 0 {
				continue
			}

			price := base
			if retailer.Name == "eBay" {
				price = base * 0.9
			}
			db.Create(&models.Price{
				ProductID:  product.ID,
				RetailerID: retailer.ID,
				Price:      price,
				Currency:   "USD",
				Condition:  "new",
				ListingURL: retailer.BaseURL,
				ScrapedAt:  now,
			})
		}
	}
}
