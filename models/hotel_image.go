package models

import "time"

// HotelImage belongs to exactly one hotel. IsMain marks the display image by
// convention only; the data layer does not enforce a single main image.
type HotelImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HotelID   uint      `gorm:"column:hotel_id;index" json:"hotel_id"`
	Image     string    `gorm:"size:255" json:"image"`
	Caption   string    `gorm:"size:200" json:"caption"`
	IsMain    bool      `gorm:"column:is_main;default:false" json:"is_main"`
	CreatedAt time.Time `json:"created_at"`
}
