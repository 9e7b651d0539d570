package usecase

import (
	"context"

	"pklradar/internal/domain/entity"
)

// ProximityUsecase defines the interface for proximity evaluation use cases.
// Both operations are synchronous scans gated by a per-pair cooldown window.
type ProximityUsecase interface {
	// EvaluateBuyerProximity scans all active verified vendors against the
	// buyer's stored location and creates a NEARBY notification for every
	// vendor within the buyer's radius, unless one was already created for
	// the pair inside the cooldown window. Returns the created notifications.
	EvaluateBuyerProximity(ctx context.Context, buyer *entity.BuyerLocation) ([]*entity.Notification, error)

	// EvaluateVendorActivation fans a FAVORITE_ACTIVE notification out to
	// every buyer who favorited the vendor and whose stored location is
	// within their own radius of the vendor's new position. The caller
	// detects the inactive-to-active transition; this method never infers it
	// from storage. Returns the created notifications.
	EvaluateVendorActivation(ctx context.Context, vendor *entity.Vendor, location *entity.VendorLocation) ([]*entity.Notification, error)
}
