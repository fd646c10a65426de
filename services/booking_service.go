package services

import (
	"context"

	"gorm.io/gorm"

	"staybook-backend/models"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// ListForUser returns the user's bookings. The bookings table is migrated but
// real booking flow (pricing, availability conflicts) has not landed, so this
// intentionally serves an empty collection for now.
func (s *BookingService) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return []models.Booking{}, nil
}

// Create accepts a booking request without persisting it; see ListForUser.
func (s *BookingService) Create(ctx context.Context) error {
	return nil
}
