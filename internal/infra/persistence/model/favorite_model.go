package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
// The (buyer_id, vendor_id) pair carries a unique constraint.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_buyer_vendor,priority:1"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_buyer_vendor,priority:2;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
