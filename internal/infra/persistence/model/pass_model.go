package model

import (
	"time"
)

// PassModel is the GORM-specific struct for the 'passes' table.
// Rows are never deleted, so there is no soft-delete column.
type PassModel struct {
	PassID       string     `gorm:"type:varchar(64);primaryKey"`
	UserID       *string    `gorm:"type:varchar(128);index:idx_passes_on_owner"`
	RestaurantID string     `gorm:"type:varchar(128);not null;index"`
	LocationID   string     `gorm:"type:varchar(128);not null"`
	Status       string     `gorm:"type:varchar(16);not null;default:active"`
	IsActive     bool       `gorm:"not null;default:true"`
	Points       int64      `gorm:"not null;default:0;check:points >= 0"`
	Visits       int64      `gorm:"not null;default:0;check:visits >= 0"`
	LastUsed     *time.Time `gorm:"column:last_used"`
	CreatedAt    time.Time  `gorm:"index:idx_passes_on_owner"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PassModel) TableName() string {
	return "passes"
}
