// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pklradar/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsRepository defines the interface for vendor daily statistics operations.
type StatsRepository interface {
	// IncrementDailyStat atomically bumps one counter of the vendor's stats
	// row for the given day, creating the row when it does not exist yet.
	IncrementDailyStat(ctx context.Context, vendorID uuid.UUID, day time.Time, field entity.StatField) error

	// FindDailyStats retrieves a vendor's daily stats rows, newest day first.
	FindDailyStats(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.VendorDailyStats, error)
}
