package usecase

import (
	"context"

	"pklradar/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorLocationOutput represents the result of a vendor location update
type VendorLocationOutput struct {
	Location  *entity.VendorLocation `json:"location"`
	Activated bool                   `json:"activated"`      // True when this update flipped the vendor from inactive to active
	Notified  int                    `json:"notified_count"` // Favoriters notified by the activation fan-out
}

// BuyerLocationOutput represents the result of a buyer location update
type BuyerLocationOutput struct {
	Location *entity.BuyerLocation `json:"location"`
	Notified int                   `json:"notified_count"` // Nearby-vendor notifications created by this update
}

// LocationUsecase defines the interface for location sharing use cases
type LocationUsecase interface {
	// UpdateVendorLocation appends a location to the caller's vendor profile,
	// marks the vendor active, and fans out activation notifications when the
	// vendor was previously inactive
	UpdateVendorLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) (*VendorLocationOutput, error)

	// DeactivateVendor marks the caller's vendor profile inactive
	DeactivateVendor(ctx context.Context, userID uuid.UUID) error

	// GetVendorLocationHistory retrieves the caller's recent location history
	GetVendorLocationHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.VendorLocation, error)

	// UpdateBuyerLocation stores the buyer's position and evaluates nearby
	// vendors. A nil radius keeps the previously stored radius, or the
	// default when none exists.
	UpdateBuyerLocation(ctx context.Context, buyerID uuid.UUID, latitude, longitude float64, radiusM *int) (*BuyerLocationOutput, error)
}
