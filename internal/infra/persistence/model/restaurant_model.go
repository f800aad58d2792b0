package model

import (
	"time"
)

// RestaurantModel mirrors the 'restaurants' table.
// Latitude and Longitude are either both set or both NULL.
type RestaurantModel struct {
	ID        string   `gorm:"type:varchar(128);primaryKey"`
	Name      string   `gorm:"type:varchar(255);not null"`
	Address   string   `gorm:"type:text"`
	Latitude  *float64 `gorm:"type:decimal(10,8)"`
	Longitude *float64 `gorm:"type:decimal(11,8)"`
	LogoRef   string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Locations []RestaurantLocationModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// RestaurantLocationModel mirrors the 'restaurant_locations' table.
type RestaurantLocationModel struct {
	ID           string   `gorm:"type:varchar(128);primaryKey"`
	RestaurantID string   `gorm:"type:varchar(128);primaryKey"`
	Name         string   `gorm:"type:varchar(255);not null"`
	Address      string   `gorm:"type:text"`
	Latitude     *float64 `gorm:"type:decimal(10,8)"`
	Longitude    *float64 `gorm:"type:decimal(11,8)"`
	LogoRef      string   `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantLocationModel) TableName() string {
	return "restaurant_locations"
}
