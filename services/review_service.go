package services

import (
	"context"

	"gorm.io/gorm"

	"staybook-backend/models"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// ListForHotel returns the reviews of a hotel. Review submission and
// aggregation are not implemented yet, so this serves an empty collection.
func (s *ReviewService) ListForHotel(ctx context.Context, hotelID uint) ([]models.Review, error) {
	return []models.Review{}, nil
}

// Create accepts a review without persisting it; see ListForHotel.
func (s *ReviewService) Create(ctx context.Context) error {
	return nil
}
