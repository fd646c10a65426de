package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"staybook-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "staybook_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the get-or-create login path relies on.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Amenity{},
		&models.HotelAmenity{},
		&models.HotelImage{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// SeedDatabase fills an empty database with a base amenity set and a few
// sample hotels so the featured and search endpoints have something to serve.
// Idempotent: skips any table that already has rows.
func SeedDatabase() {
	var amenityCount int64
	DB.Model(&models.Amenity{}).Count(&amenityCount)
	if amenityCount == 0 {
		amenities := []models.Amenity{
			{Name: "Free WiFi", Icon: "wifi"},
			{Name: "Pool", Icon: "pool"},
			{Name: "Spa", Icon: "spa"},
			{Name: "Free Parking", Icon: "parking"},
			{Name: "Breakfast Included", Icon: "breakfast"},
			{Name: "Fitness Center", Icon: "gym"},
		}
		if err := DB.Create(&amenities).Error; err != nil {
			log.Printf("warning: failed to seed amenities: %v", err)
		} else {
			log.Println("Amenities seeded")
		}
	}

	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		log.Println("Hotels already seeded")
		return
	}

	hotels := []models.Hotel{
		{
			Name:        "Grand Bosphorus Hotel",
			Description: "Waterfront hotel with a view over the Bosphorus strait.",
			Country:     "Turkey",
			City:        "Istanbul",
			Address:     "Ciragan Cad. 32, Besiktas",
			Latitude:    decPtr("41.043900"),
			Longitude:   decPtr("29.008600"),
			BasePrice:   dec("180.00"),
			Points:      95,
			Rating:      9.1,
			IsAvailable: true,
			IsFlagged:   true,
		},
		{
			Name:            "Cappadocia Cave Suites",
			Description:     "Boutique cave rooms carved into the Goreme hillside.",
			Country:         "Turkey",
			City:            "Nevsehir",
			Address:         "Gaferli Mah. Unlu Sok. 19, Goreme",
			Latitude:        decPtr("38.643100"),
			Longitude:       decPtr("34.828700"),
			BasePrice:       dec("140.00"),
			MemberPrice:     decPtr("119.00"),
			SpecialDiscount: 15,
			Points:          88,
			Rating:          8.8,
			IsAvailable:     true,
		},
		{
			Name:        "Antalya Beach Resort",
			Description: "All-inclusive resort on the Konyaalti shoreline.",
			Country:     "Turkey",
			City:        "Antalya",
			Address:     "Konyaalti Sahil 7",
			BasePrice:   dec("95.50"),
			Points:      72,
			Rating:      8.2,
			IsAvailable: true,
		},
	}
	if err := DB.Create(&hotels).Error; err != nil {
		log.Printf("warning: failed to seed hotels: %v", err)
		return
	}

	var amenities []models.Amenity
	DB.Limit(3).Find(&amenities)
	for _, hotel := range hotels {
		for _, amenity := range amenities {
			link := models.HotelAmenity{HotelID: hotel.ID, AmenityID: amenity.ID}
			if err := DB.Create(&link).Error; err != nil {
				log.Printf("warning: failed to link amenity %d to hotel %d: %v", amenity.ID, hotel.ID, err)
			}
		}
		image := models.HotelImage{
			HotelID: hotel.ID,
			Image:   fmt.Sprintf("hotel_images/%d-main.jpg", hotel.ID),
			Caption: hotel.Name,
			IsMain:  true,
		}
		if err := DB.Create(&image).Error; err != nil {
			log.Printf("warning: failed to seed image for hotel %d: %v", hotel.ID, err)
		}
	}
	log.Println("Hotels seeded")
}
