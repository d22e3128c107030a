package database

import (
	"fmt"
	"time"

	"price-tracker/internal/logger"
	"price-tracker/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.Retailer{},
		&models.Product{},
		&models.Price{},
		&models.PriceAlert{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log := logger.WithComponent("database")
	log.Info().Msg("database initialized")
	return db, nil
}
