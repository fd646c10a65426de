package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"staybook-backend/models"
)

// CatalogService wraps *gorm.DB for read-only hotel queries. Hotels are
// maintained elsewhere; nothing here mutates them.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListFeatured returns the weekend recommendation set: available hotels by
// descending points then rating, capped at 10.
func (s *CatalogService) ListFeatured(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.WithContext(ctx).
		Preload("Amenities.Amenity").
		Where("is_available = ?", true).
		Order("points DESC").
		Order("rating DESC").
		Limit(10).
		Find(&hotels).Error
	if err != nil {
		return nil, fmt.Errorf("list featured hotels: %w", err)
	}
	return hotels, nil
}

// escapeLike neutralizes LIKE metacharacters so destination text matches
// literally. '!' is the escape character; unlike backslash it needs no string
// escaping of its own on either MySQL or SQLite.
var escapeLike = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Search matches destination as a case-insensitive substring of city, country
// or name. An empty destination applies no location filter. Check-in/check-out
// dates and guest counts are not part of the query yet.
func (s *CatalogService) Search(ctx context.Context, destination string) ([]models.Hotel, error) {
	q := s.DB.WithContext(ctx).
		Preload("Amenities.Amenity").
		Where("is_available = ?", true)

	if dest := strings.TrimSpace(destination); dest != "" {
		pattern := "%" + escapeLike.Replace(strings.ToLower(dest)) + "%"
		q = q.Where(
			"LOWER(city) LIKE ? ESCAPE '!' OR LOWER(country) LIKE ? ESCAPE '!' OR LOWER(name) LIKE ? ESCAPE '!'",
			pattern, pattern, pattern,
		)
	}

	var hotels []models.Hotel
	err := q.
		Order("rating DESC").
		Order("points DESC").
		Find(&hotels).Error
	if err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}
	return hotels, nil
}

// GetByID returns one available hotel with amenities and images, or
// ErrNotFound when the id is missing or the hotel is unavailable.
func (s *CatalogService) GetByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.WithContext(ctx).
		Preload("Amenities.Amenity").
		Preload("Images").
		Where("is_available = ?", true).
		First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hotel %d: %w", id, err)
	}
	return &hotel, nil
}
