// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultRadiusMeters is the search radius applied when a buyer has not chosen one.
	DefaultRadiusMeters = 300
)

// AllowedRadiusMeters lists the search radius values a buyer may choose from.
//
//nolint:gochecknoglobals
var AllowedRadiusMeters = []int{300, 500, 1000, 1500}

// IsAllowedRadius reports whether the given radius is one of the permitted values.
func IsAllowedRadius(radiusM int) bool {
	return slices.Contains(AllowedRadiusMeters, radiusM)
}

// VendorLocation is one entry of a vendor's append-only location history.
// The vendor's "current location" is always the entry with the latest RecordedAt.
type VendorLocation struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the location entry.
	VendorID   uuid.UUID `json:"vendor_id"`   // The ID of the vendor this location belongs to.
	Latitude   float64   `json:"latitude"`    // The geographic latitude in decimal degrees.
	Longitude  float64   `json:"longitude"`   // The geographic longitude in decimal degrees.
	RecordedAt time.Time `json:"recorded_at"` // Timestamp of when this position was captured.
}

// BuyerLocation is a buyer's single stored position with their chosen search radius.
type BuyerLocation struct {
	BuyerID   uuid.UUID `json:"buyer_id"`   // The ID of the buyer this location belongs to.
	Latitude  float64   `json:"latitude"`   // The geographic latitude in decimal degrees.
	Longitude float64   `json:"longitude"`  // The geographic longitude in decimal degrees.
	RadiusM   int       `json:"radius_m"`   // The search radius in meters, one of AllowedRadiusMeters.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last position update.
}

// FavoriterLocation bundles a favoriting buyer with their stored location, if
// any. It is used by the activation fan-out to avoid N+1 lookups; Location is
// nil when the buyer has never stored a position.
type FavoriterLocation struct {
	BuyerID  uuid.UUID      `json:"buyer_id"`
	Location *BuyerLocation `json:"location"`
}
