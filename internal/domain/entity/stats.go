// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatField identifies one counter of a vendor's daily stats row.
type StatField string

const (
	// StatLiveViews counts buyer views of the vendor's live position.
	StatLiveViews StatField = "live_views"
	// StatSearchHits counts appearances in filtered or fuzzy search results.
	StatSearchHits StatField = "search_hits"
	// StatAutoUpdates counts location updates posted by the vendor.
	StatAutoUpdates StatField = "auto_updates"
)

// VendorDailyStats aggregates per-day activity counters for a vendor.
// The (vendor, date) pair is unique.
type VendorDailyStats struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the stats row.
	VendorID    uuid.UUID `json:"vendor_id"`    // The ID of the vendor these stats belong to.
	Date        time.Time `json:"date"`         // The local calendar day the counters cover.
	LiveViews   int       `json:"live_views"`   // Buyer views of the live position on this day.
	SearchHits  int       `json:"search_hits"`  // Search result appearances on this day.
	AutoUpdates int       `json:"auto_updates"` // Location updates posted on this day.
}
