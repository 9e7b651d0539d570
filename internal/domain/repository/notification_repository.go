// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"pklradar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found
	// or is not owned by the requesting buyer.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new proximity notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// NotificationExistsWithin reports whether a notification of the same
	// (buyer, type, vendor) was already created within the lookback window.
	// The vendor filter is applied only when vendorID is non-nil. This is
	// the cooldown check; it is best-effort, not a uniqueness guarantee.
	NotificationExistsWithin(ctx context.Context, buyerID uuid.UUID, notifType entity.NotificationType, vendorID *uuid.UUID, window time.Duration) (bool, error)

	// FindNotificationsByBuyer retrieves a buyer's notifications, newest first.
	FindNotificationsByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnreadByBuyer counts the buyer's unread notifications.
	CountUnreadByBuyer(ctx context.Context, buyerID uuid.UUID) (int64, error)

	// MarkNotificationRead flips the read flag of a notification owned by the
	// buyer. Returns ErrNotificationNotFound when no owned row matches.
	MarkNotificationRead(ctx context.Context, buyerID, notificationID uuid.UUID) error
}
