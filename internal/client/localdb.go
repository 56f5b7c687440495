package client

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"self-order-agent/internal/model"
)

// InitLocalDB opens the sqlite database backing the local warehouse
// fallback and migrates the three warehouse tables. Used when no GCP
// project is configured so the agent can run entirely offline.
func InitLocalDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	if err := db.AutoMigrate(
		&model.Order{},
		&model.MenuItem{},
		&model.Promo{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}

// SeedLocalCatalog inserts a small demo menu and one promo so a fresh local
// database has something to serve. Existing rows are left alone.
func SeedLocalCatalog(db *gorm.DB) error {
	menu := []model.MenuItem{
		{Name: "Chicken Satay", Price: 6.50},
		{Name: "Fried Rice", Price: 5.00},
		{Name: "Gado-Gado", Price: 4.75},
		{Name: "Iced Tea", Price: 1.50},
		{Name: "Nasi Goreng Special", Price: 7.25},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&menu).Error; err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}

	promos := []model.Promo{
		{PromoCode: "WELCOME10", Description: "10% off your first order", DiscountPercent: 10},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&promos).Error; err != nil {
		return fmt.Errorf("seed promos: %w", err)
	}

	return nil
}
