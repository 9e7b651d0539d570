package service

import (
	"context"
)

// VendorActivationEvent represents a vendor going live, fanned out to
// downstream consumers after the in-process favoriter notifications are done.
type VendorActivationEvent struct {
	RequestID        string   `json:"request_id,omitempty"` // For distributed tracing
	VendorID         string   `json:"vendor_id"`
	BusinessName     string   `json:"business_name"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	NotifiedBuyerIDs []string `json:"notified_buyer_ids"` // Buyers already notified in-process
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVendorActivation publishes a vendor activation event for async processing
	PublishVendorActivation(ctx context.Context, event *VendorActivationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
