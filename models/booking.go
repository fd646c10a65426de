package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"column:user_id;index" json:"user_id"`
	HotelID uint `gorm:"column:hotel_id;index" json:"hotel_id"`

	CheckIn  datatypes.Date `gorm:"column:check_in" json:"check_in"`
	CheckOut datatypes.Date `gorm:"column:check_out" json:"check_out"`
	Guests   uint           `json:"guests"`

	BasePrice       decimal.Decimal `gorm:"column:base_price;type:decimal(10,2)" json:"base_price"`
	DiscountApplied decimal.Decimal `gorm:"column:discount_applied;type:decimal(5,2);default:0" json:"discount_applied"`
	TotalPrice      decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)" json:"total_price"`

	// No transition rules are enforced on Status yet.
	Status string `gorm:"size:20;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}
