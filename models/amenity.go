package models

type Amenity struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex" json:"name"`
	Icon string `gorm:"size:50" json:"icon,omitempty"`
}

// HotelAmenity links hotels and amenities; the composite unique index keeps a
// hotel from carrying the same amenity twice.
type HotelAmenity struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	HotelID   uint `gorm:"column:hotel_id;uniqueIndex:idx_hotel_amenity" json:"hotel_id"`
	AmenityID uint `gorm:"column:amenity_id;uniqueIndex:idx_hotel_amenity" json:"amenity_id"`

	Amenity Amenity `gorm:"foreignKey:AmenityID" json:"amenity"`
}
