package models

import "time"

// Review holds the overall rating plus the five service-specific sub-ratings
// shown on the hotel chart, each on a 1-10 scale. One review per user per
// hotel, enforced by the composite unique index.
type Review struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"column:hotel_id;uniqueIndex:idx_hotel_user_review" json:"hotel_id"`
	UserID  uint `gorm:"column:user_id;uniqueIndex:idx_hotel_user_review" json:"user_id"`

	OverallRating     uint `gorm:"column:overall_rating" json:"overall_rating"`
	CleanlinessRating uint `gorm:"column:cleanliness_rating" json:"cleanliness_rating"`
	StaffRating       uint `gorm:"column:staff_rating" json:"staff_rating"`
	FacilitiesRating  uint `gorm:"column:facilities_rating" json:"facilities_rating"`
	LocationRating    uint `gorm:"column:location_rating" json:"location_rating"`
	EnvironmentRating uint `gorm:"column:environment_rating" json:"environment_rating"`

	Title   string `gorm:"size:200" json:"title"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}
