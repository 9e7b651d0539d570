// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite represents a buyer's interest in a vendor. The (buyer, vendor)
// pair is unique; it drives the fan-out when a favorited vendor turns active.
type Favorite struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the favorite.
	BuyerID   uuid.UUID `json:"buyer_id"`   // The ID of the buyer who favorited the vendor.
	VendorID  uuid.UUID `json:"vendor_id"`  // The ID of the favorited vendor.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the favorite was created.
}
