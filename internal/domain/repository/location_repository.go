// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pklradar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when no location has been recorded.
	ErrLocationNotFound = errors.New("location not found")
)

// LocationRepository defines the interface for location-related database operations.
type LocationRepository interface {
	// CreateVendorLocation appends a new entry to a vendor's location history.
	CreateVendorLocation(ctx context.Context, location *entity.VendorLocation) error

	// FindLatestVendorLocation retrieves the most recent location of a vendor
	// by recorded timestamp. Returns ErrLocationNotFound when the vendor has
	// never posted a location.
	FindLatestVendorLocation(ctx context.Context, vendorID uuid.UUID) (*entity.VendorLocation, error)

	// ListVendorLocations retrieves a vendor's location history, newest first.
	ListVendorLocations(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.VendorLocation, error)

	// UpsertBuyerLocation creates or replaces a buyer's single stored location.
	UpsertBuyerLocation(ctx context.Context, location *entity.BuyerLocation) error

	// FindBuyerLocation retrieves a buyer's stored location. Returns
	// ErrLocationNotFound when the buyer has never stored a position.
	FindBuyerLocation(ctx context.Context, buyerID uuid.UUID) (*entity.BuyerLocation, error)
}
