package services_test

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"staybook-backend/models"
)

// newTestDB opens a per-test in-memory SQLite database. TranslateError is on
// so duplicate-key handling behaves the same as against MySQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Amenity{},
		&models.HotelAmenity{},
		&models.HotelImage{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
