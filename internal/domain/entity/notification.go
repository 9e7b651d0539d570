// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the proximity event that produced a notification.
type NotificationType string

const (
	// NotificationTypeNearby is emitted when an active verified vendor is
	// within a buyer's search radius after the buyer posts a location.
	NotificationTypeNearby NotificationType = "NEARBY_PKL"
	// NotificationTypeFavoriteActive is emitted when a favorited vendor
	// transitions to active within the buyer's search radius.
	NotificationTypeFavoriteActive NotificationType = "FAVORITE_ACTIVE"
)

// Notification is a proximity event delivered to a buyer. It is created only
// by the proximity notifier and is immutable once created, except for the
// read flag which only the owning buyer may flip. Buyers poll for these;
// nothing is pushed.
type Notification struct {
	ID        uuid.UUID        `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	BuyerID   uuid.UUID        `json:"buyer_id"`   // The ID of the buyer who owns this notification.
	VendorID  *uuid.UUID       `json:"vendor_id"`  // Optional reference to the vendor the event is about.
	Type      NotificationType `json:"type"`       // The proximity event type.
	Message   string           `json:"message"`    // Human-readable message with distance rounded to whole meters.
	RadiusM   int              `json:"radius_m"`   // The buyer's search radius at evaluation time.
	DistanceM float64          `json:"distance_m"` // Full-precision distance in meters at evaluation time.
	IsRead    bool             `json:"is_read"`    // Whether the owning buyer has read the notification.
	Metadata  map[string]any   `json:"metadata"`   // Free-form metadata (distance, subject vendor id).
	CreatedAt time.Time        `json:"created_at"` // Timestamp of when the notification was created.
}
