package storage

import (
	"errors"
	"time"

	"price-tracker/internal/models"

	"gorm.io/gorm"
)

// Store wraps the GORM handle with the queries the alert engine and the
// HTTP layer need. Single-row lookups return (nil, nil) when nothing
// matches; every other error is passed through.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetActiveAlerts() ([]models.PriceAlert, error) {
	var alerts []models.PriceAlert
	if err := s.db.Where("is_active = ?", true).Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (s *Store) GetLatestPrice(productID uint) (*models.Price, error) {
	var price models.Price
	err := s.db.Where("product_id = ?", productID).
		Order("scraped_at DESC").First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (s *Store) GetPreviousPrice(productID, excludingID uint) (*models.Price, error) {
	var price models.Price
	err := s.db.Where("product_id = ? AND id <> ?", productID, excludingID).
		Order("scraped_at DESC").First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (s *Store) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) GetRetailer(id uint) (*models.Retailer, error) {
	var retailer models.Retailer
	err := s.db.First(&retailer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &retailer, nil
}

// UpdateAlert persists cooldown bookkeeping (last_triggered, trigger_count)
// along with any other changed fields.
func (s *Store) UpdateAlert(alert *models.PriceAlert) error {
	return s.db.Save(alert).Error
}

func (s *Store) CountActiveProducts() (int64, error) {
	var count int64
	err := s.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (s *Store) CountRecentPrices(since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.Price{}).Where("scraped_at >= ?", since).Count(&count).Error
	return count, err
}

func (s *Store) QueryPricesSince(ts time.Time) ([]models.Price, error) {
	var prices []models.Price
	if err := s.db.Where("scraped_at >= ?", ts).Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (s *Store) QueryOldestPriceBefore(productID uint, ts time.Time) (*models.Price, error) {
	var price models.Price
	err := s.db.Where("product_id = ? AND scraped_at < ?", productID, ts).
		Order("scraped_at DESC").First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// QueryPriceHistory returns a product's observations newest first, capped
// at limit when limit > 0.
func (s *Store) QueryPriceHistory(productID uint, limit int) ([]models.Price, error) {
	q := s.db.Where("product_id = ?", productID).Order("scraped_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var prices []models.Price
	if err := q.Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}
