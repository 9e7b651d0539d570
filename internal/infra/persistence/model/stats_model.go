package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorDailyStatsModel is the GORM-specific struct for the 'vendor_daily_stats' table.
// The (vendor_id, date) pair carries a unique constraint so increments can upsert.
type VendorDailyStatsModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vendor_daily_stats_vendor_date,priority:1"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_vendor_daily_stats_vendor_date,priority:2"`
	LiveViews   int       `gorm:"not null;default:0"`
	SearchHits  int       `gorm:"not null;default:0"`
	AutoUpdates int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (VendorDailyStatsModel) TableName() string {
	return "vendor_daily_stats"
}
