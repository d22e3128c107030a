package models

import (
	"time"

	"gorm.io/gorm"
)

// Retailer represents a store whose listings we track
type Retailer struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"unique;not null"`
	BaseURL   string         `json:"base_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Product represents a tracked product
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Category    string         `json:"category" gorm:"index"` // mac, iphone, pokemon, audio, ...
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	SourceURL   string         `json:"source_url"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Price is a single price observation scraped from a retailer listing.
// Observations are append-only; they are never updated after insert.
type Price struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProductID    uint      `json:"product_id" gorm:"not null;index"`
	Product      Product   `json:"product" gorm:"foreignKey:ProductID"`
	RetailerID   uint      `json:"retailer_id" gorm:"not null;index"`
	Retailer     Retailer  `json:"retailer" gorm:"foreignKey:RetailerID"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency" gorm:"default:'USD'"`
	Condition    string    `json:"condition"` // new, used, NM, LP, ...
	ListingURL   string    `json:"listing_url"`
	ListingTitle string    `json:"listing_title"`
	ScrapedAt    time.Time `json:"scraped_at" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
}

// PriceAlert is a user-defined trigger on a product's price.
// TargetPrice is nullable: an alert without a target only fires on the
// percentage-drop path.
type PriceAlert struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ProductID     uint           `json:"product_id" gorm:"not null;index"`
	Product       Product        `json:"product" gorm:"foreignKey:ProductID"`
	Condition     string         `json:"condition" gorm:"default:'below'"` // below, above
	TargetPrice   *float64       `json:"target_price"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	LastTriggered *time.Time     `json:"last_triggered"`
	TriggerCount  int            `json:"trigger_count" gorm:"default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Alert conditions
const (
	ConditionBelow = "below"
	ConditionAbove = "above"
)
