package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hotel is maintained by an administrative surface; the API only reads it.
type Hotel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:200" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Country     string `gorm:"size:100" json:"country"`
	City        string `gorm:"size:100" json:"city"`
	Address     string `gorm:"type:text" json:"address"`

	// Coordinates are nullable; responses serialize them as strings or null.
	Latitude  *decimal.Decimal `gorm:"type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude *decimal.Decimal `gorm:"type:decimal(9,6)" json:"longitude,omitempty"`

	BasePrice decimal.Decimal `gorm:"column:base_price;type:decimal(10,2)" json:"base_price"`
	// MemberPrice overrides the derived 10% discount when set and non-zero.
	MemberPrice     *decimal.Decimal `gorm:"column:member_price;type:decimal(10,2)" json:"member_price,omitempty"`
	SpecialDiscount uint             `gorm:"column:special_discount;default:0" json:"special_discount"`

	// Points is an administrator-assigned ranking score, the primary sort key
	// for the featured (weekend) listing.
	Points       uint    `gorm:"default:0" json:"points"`
	Rating       float64 `gorm:"type:decimal(3,2);default:0" json:"rating"`
	TotalReviews uint    `gorm:"column:total_reviews;default:0" json:"total_reviews"`

	// No gorm default here: a default-tagged bool would silently store false
	// as true on create, and the catalog filters on this column.
	IsAvailable bool `gorm:"column:is_available" json:"is_available"`
	IsFlagged   bool `gorm:"column:is_flagged;default:false" json:"is_flagged"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Amenities []HotelAmenity `gorm:"foreignKey:HotelID" json:"amenities,omitempty"`
	Images    []HotelImage   `gorm:"foreignKey:HotelID" json:"images,omitempty"`
}
