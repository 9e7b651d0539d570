package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorLocationModel is the GORM-specific struct for the 'vendor_locations' table.
// Rows are append-only; the latest recorded_at per vendor is the live position.
type VendorLocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;index:idx_vendor_locations_vendor_recorded,priority:1"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_vendor_locations_vendor_recorded,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (VendorLocationModel) TableName() string {
	return "vendor_locations"
}

// BuyerLocationModel is the GORM-specific struct for the 'buyer_locations' table.
// Each buyer keeps exactly one row, replaced on every position update.
type BuyerLocationModel struct {
	BuyerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	RadiusM   int       `gorm:"not null;default:300"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerLocationModel) TableName() string {
	return "buyer_locations"
}
