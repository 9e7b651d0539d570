package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BuyerNotificationModel is the GORM-specific struct for the 'buyer_notifications' table.
// It represents a proximity event delivered to a buyer.
type BuyerNotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_buyer_notifications_buyer_created,priority:1"`
	VendorID  *uuid.UUID        `gorm:"type:uuid;index"`
	Type      string            `gorm:"type:varchar(30);not null"`
	Message   string            `gorm:"type:text;not null"`
	RadiusM   int               `gorm:"not null"`
	DistanceM float64           `gorm:"type:decimal(10,2);not null"`
	IsRead    bool              `gorm:"not null;default:false"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"index:idx_buyer_notifications_buyer_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (BuyerNotificationModel) TableName() string {
	return "buyer_notifications"
}
